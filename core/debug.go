package core

// detectDebugger reports whether the process is being traced by an attached
// debugger. Hook variable so tests can force either answer.
var detectDebugger = runningUnderDebugger

// DebuggerAttached reports whether a debugger or tracer is attached to the
// process. While attached, the executor suppresses timeout enforcement so
// items paused at a breakpoint are not spuriously cancelled.
func DebuggerAttached() bool {
	return detectDebugger()
}

// SetDebuggerDetection replaces the debugger probe. Passing nil restores the
// platform default. Intended for host applications with their own detection
// mechanism, and for tests.
func SetDebuggerDetection(probe func() bool) {
	if probe == nil {
		detectDebugger = runningUnderDebugger
		return
	}
	detectDebugger = probe
}
