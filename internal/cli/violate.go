package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/nominal"
)

// ValidOps defines the operators violate can misuse.
var ValidOps = []string{"equal", "not-equal"}

// NewViolateCommand creates the violate command.
//
// Violate deliberately invokes the chosen polymorphic operator on operands
// from two different families. On success the process terminates with the
// operator's fatal status (nominal.ExitCrossFamilyEqual or
// nominal.ExitCrossFamilyNotEqual) and this command never returns; external
// harnesses observe the exit code. Returning at all is a failure.
func NewViolateCommand(opts *RootOptions) *cobra.Command {
	var op string

	cmd := &cobra.Command{
		Use:   "violate",
		Short: "Trigger a cross-family comparison on purpose",
		Long:  "Compares a Color against a Direction through the polymorphic path so the fatal exit status can be observed from outside.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "comparing %s against %s via %s\n", Red, North, op)
			}

			switch op {
			case "equal":
				nominal.Equal(Red, North)
			case "not-equal":
				nominal.NotEqual(Red, North)
			default:
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid op %q: must be one of %v", op, ValidOps))
			}

			// Unreachable unless the fatal path regressed.
			return errors.New("cross-family comparison returned instead of terminating")
		},
	}

	cmd.Flags().StringVar(&op, "op", "", "operator to misuse (equal|not-equal)")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}
