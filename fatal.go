package nominal

import (
	"fmt"
	"io"
	"os"
)

// Exit statuses for the fatal cross-family path. Distinct per operator,
// and distinct from the harness CLI's ordinary codes (0 success,
// 1 failure, 2 usage), so a process status alone identifies the misused
// operator.
const (
	// ExitCrossFamilyEqual is the process status after Equal is invoked
	// on operands from two different families.
	ExitCrossFamilyEqual = 3

	// ExitCrossFamilyNotEqual is the process status after NotEqual is
	// invoked on operands from two different families.
	ExitCrossFamilyNotEqual = 4
)

// fatalOut and exitFn are swapped by in-package tests to observe the
// diagnostic without dying. A replacement exitFn must not return.
var (
	fatalOut io.Writer = os.Stderr
	exitFn             = os.Exit
)

// fatalMismatch reports a cross-family comparison and terminates the
// process. A mismatch is a programming error at the call site, not a
// recoverable condition, so it is not surfaced as an error value.
func fatalMismatch(op string, a, b Value, code int) {
	fmt.Fprintf(fatalOut, "nominal: %s: cross-family comparison: %s vs %s\n", op, a, b)
	exitFn(code)
}
