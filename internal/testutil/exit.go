// Package testutil provides shared helpers for tests that need to observe
// real process exit statuses.
//
// The fatal comparison path ends in os.Exit, which cannot be intercepted
// inside a running test. ExitStatus uses the standard re-exec pattern: the
// parent test re-runs the current test binary filtered to itself with a
// marker variable set, and the child branch performs the fatal operation.
package testutil

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"testing"
)

// InChild reports whether the current process is the re-executed child for
// the given marker. Tests call this first and branch into the probe body
// when it returns true.
func InChild(marker string) bool {
	return os.Getenv(marker) != ""
}

// ExitStatus re-runs the current test binary filtered to the named test
// with marker set in the child's environment, and returns the child's exit
// code along with everything it wrote to stderr.
//
// A child that terminates cleanly reports code 0. Failures to start the
// child at all (as opposed to the child exiting nonzero) fail the test.
func ExitStatus(t *testing.T, test, marker string) (code int, stderr string) {
	t.Helper()

	cmd := exec.Command(os.Args[0], "-test.run=^"+test+"$")
	cmd.Env = append(os.Environ(), marker+"=1")

	var errBuf bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err == nil {
		return 0, errBuf.String()
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("re-exec %s: %v", test, err)
	}
	return exitErr.ExitCode(), errBuf.String()
}
