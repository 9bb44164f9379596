// Package driver runs one scripted session through the external session
// driver (sdriver.pl) against a target shell and captures its output.
package driver

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// Driver invokes the session driver tool. The zero value is not usable;
// populate it from the suite configuration.
type Driver struct {
	// Path to the session driver executable, e.g. "./sdriver.pl".
	Path string
	// ShellArgs is handed to the driver's -a flag and forwarded to the
	// shell under test, e.g. "-p" to suppress the prompt.
	ShellArgs string
	// Timeout bounds the wall clock of a single invocation.
	Timeout time.Duration
}

// ExitError reports a driver invocation that exited nonzero. Output holds
// whatever the session produced before failing, for diagnostic printing.
type ExitError struct {
	Output string
	Err    error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("session driver failed: %v", e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// TimeoutError reports a driver invocation that exceeded its wall clock
// limit. No output is assumed usable.
type TimeoutError struct {
	Trace string
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("session %s timed out after %v", e.Trace, e.Limit)
}

// Run plays the given trace against the target shell and returns the raw
// captured standard output. The child runs in its own process group so a
// misbehaving shell that signals its group cannot reach the grader, and so
// a timeout can kill the driver together with any shells it spawned.
func (d *Driver) Run(trace, target string) (string, error) {
	cmd := exec.Command(d.Path, "-t", trace, "-s", target, "-a", d.ShellArgs)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return "", err
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", &ExitError{Output: stdout.String(), Err: err}
		}
		return stdout.String(), nil
	case <-time.After(d.Timeout):
		// Setpgid put the child at the head of its own group; negative
		// pid signals the whole group.
		syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		<-done
		return "", &TimeoutError{Trace: trace, Limit: d.Timeout}
	}
}
