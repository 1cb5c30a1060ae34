package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands. The fatal cross-family statuses (3 and 4)
// live in the nominal package and are deliberately disjoint from these.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Self-check failure
	ExitCommandError = 2 // Command error (bad flags, unknown op, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders command results in the selected format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Write renders v as JSON or YAML, or falls back to the text renderer for
// the default format. Text output goes through the supplied function so
// each command controls its human-readable shape.
func (f *OutputFormatter) Write(v any, text func(w io.Writer) error) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		if err := enc.Encode(v); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return text(f.Writer)
	}
}
