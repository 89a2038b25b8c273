//go:build !linux

package core

// runningUnderDebugger has no portable detection mechanism outside Linux;
// timeout enforcement stays active. Override via SetDebuggerDetection if the
// host application knows better.
func runningUnderDebugger() bool {
	return false
}
