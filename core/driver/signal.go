package driver

import (
	"os/signal"
	"syscall"
)

// IgnoreStopSignal makes the grading process ignore SIGTSTP for the rest of
// its lifetime. Children are unaffected, but a student shell with a broken
// job-control path that stops its whole group can no longer suspend the
// grading run. Installed once at startup; process exit cleans it up.
func IgnoreStopSignal() {
	signal.Ignore(syscall.SIGTSTP)
}
