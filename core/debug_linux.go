//go:build linux

package core

import (
	"os"
	"strings"
)

// runningUnderDebugger checks the TracerPid field of /proc/self/status.
// A non-zero tracer pid means a ptrace-based debugger (delve, gdb, strace)
// is attached.
func runningUnderDebugger() bool {
	data, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if rest, ok := strings.CutPrefix(line, "TracerPid:"); ok {
			pid := strings.TrimSpace(rest)
			return pid != "" && pid != "0"
		}
	}
	return false
}
