package driver

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fakeDriver(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "fakedriver")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDriver_Run(t *testing.T) {
	// Echo back the parsed flags so the invocation contract is visible.
	path := fakeDriver(t, `echo "trace=$2 shell=$4 args=$6"`+"\n")

	d := &Driver{Path: path, ShellArgs: "-p", Timeout: 10 * time.Second}
	out, err := d.Run("trace01.txt", "./tsh")

	assert.Nil(t, err)
	assert.Equal(t, "trace=trace01.txt shell=./tsh args=-p\n", out)
}

func TestDriver_Run_nonzeroExit(t *testing.T) {
	path := fakeDriver(t, "echo partial output\nexit 3\n")

	d := &Driver{Path: path, ShellArgs: "-p", Timeout: 10 * time.Second}
	_, err := d.Run("trace01.txt", "./tsh")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("want *ExitError, got %v", err)
	}
	assert.Equal(t, "partial output\n", exitErr.Output)
}

func TestDriver_Run_timeout(t *testing.T) {
	path := fakeDriver(t, "sleep 30\n")

	d := &Driver{Path: path, ShellArgs: "-p", Timeout: 200 * time.Millisecond}

	start := time.Now()
	_, err := d.Run("trace01.txt", "./tsh")
	elapsed := time.Since(start)

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("want *TimeoutError, got %v", err)
	}
	assert.Equal(t, "trace01.txt", timeoutErr.Trace)
	assert.Less(t, int64(elapsed), int64(10*time.Second), "group kill should not wait for the child")
}

func TestDriver_Run_missingDriver(t *testing.T) {
	d := &Driver{Path: "./does-not-exist.pl", ShellArgs: "-p", Timeout: time.Second}

	_, err := d.Run("trace01.txt", "./tsh")
	assert.NotNil(t, err)
}
