package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/nominal"
)

// Report is the result of a selfcheck run.
type Report struct {
	RunID  string        `json:"run_id" yaml:"run_id"`
	Checks []CheckResult `json:"checks" yaml:"checks"`
	Passed bool          `json:"passed" yaml:"passed"`
}

// CheckResult records one property check.
type CheckResult struct {
	Name   string `json:"name" yaml:"name"`
	Detail string `json:"detail" yaml:"detail"`
	Passed bool   `json:"passed" yaml:"passed"`
}

// NewSelfcheckCommand creates the selfcheck command.
//
// Selfcheck runs the comparison-protocol properties (reflexivity, symmetry,
// distinctness, cross-family detection, stability) over the demo Color and
// Direction families and renders a report. Cross-family checks use the
// non-fatal SameFamily probe; the fatal path is exercised by the violate
// command, which cannot report back.
func NewSelfcheckCommand(opts *RootOptions) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Run the comparison-protocol property checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := BuildReport(runID)

			formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if err := formatter.Write(report, report.writeText); err != nil {
				return WrapExitError(ExitCommandError, "failed to render report", err)
			}

			if !report.Passed {
				return NewExitError(ExitFailure, "self-check failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run-id", "", "fixed run ID for deterministic output (defaults to a new UUIDv7)")

	return cmd
}

// BuildReport runs all property checks and assembles the report. An empty
// runID is replaced with a fresh UUIDv7; tests pass a fixed one for golden
// comparison, mirroring how flow tokens are pinned elsewhere.
func BuildReport(runID string) *Report {
	if runID == "" {
		runID = uuid.Must(uuid.NewV7()).String()
	}

	checks := runChecks()
	passed := true
	for _, c := range checks {
		if !c.Passed {
			passed = false
		}
	}

	return &Report{RunID: runID, Checks: checks, Passed: passed}
}

func runChecks() []CheckResult {
	all := make([]nominal.Value, 0, len(colorMembers)+len(directionMembers))
	all = append(all, colorMembers...)
	all = append(all, directionMembers...)

	return []CheckResult{
		{
			Name:   "reflexivity",
			Detail: fmt.Sprintf("%d members equal to themselves", len(all)),
			Passed: checkReflexivity(all),
		},
		{
			Name:   "symmetry",
			Detail: "same-family pairs agree in both orders",
			Passed: checkSymmetry(colorMembers) && checkSymmetry(directionMembers),
		},
		{
			Name:   "distinctness",
			Detail: "distinct ordinals compare unequal within each family",
			Passed: checkDistinctness(colorMembers) && checkDistinctness(directionMembers),
		},
		{
			Name:   "cross_family_detection",
			Detail: "Color and Direction members never share a family",
			Passed: checkCrossFamily(colorMembers, directionMembers),
		},
		{
			Name:   "stability",
			Detail: "results unchanged across 100 repeated comparisons",
			Passed: checkStability(),
		},
	}
}

func checkReflexivity(members []nominal.Value) bool {
	for _, m := range members {
		if !nominal.Equal(m, m) || nominal.NotEqual(m, m) {
			return false
		}
	}
	return true
}

func checkSymmetry(family []nominal.Value) bool {
	for _, a := range family {
		for _, b := range family {
			if nominal.Equal(a, b) != nominal.Equal(b, a) {
				return false
			}
		}
	}
	return true
}

func checkDistinctness(family []nominal.Value) bool {
	for i, a := range family {
		for _, b := range family[i+1:] {
			if nominal.Equal(a, b) || !nominal.NotEqual(a, b) {
				return false
			}
		}
	}
	return true
}

func checkCrossFamily(left, right []nominal.Value) bool {
	for _, a := range left {
		for _, b := range right {
			if nominal.SameFamily(a, b) {
				return false
			}
		}
	}
	// Sanity: members do share a family with their own kin.
	return nominal.SameFamily(left[0], left[len(left)-1]) &&
		nominal.SameFamily(right[0], right[len(right)-1])
}

func checkStability() bool {
	for i := 0; i < 100; i++ {
		if nominal.Equal(Red, Green) || !nominal.Equal(North, North) {
			return false
		}
	}
	return true
}

// writeText renders the report for humans.
func (r *Report) writeText(w io.Writer) error {
	fmt.Fprintf(w, "run %s\n", r.RunID)
	for _, c := range r.Checks {
		status := "ok"
		if !c.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  %-24s %-4s %s\n", c.Name, status, c.Detail)
	}
	if r.Passed {
		fmt.Fprintln(w, "all checks passed")
	} else {
		fmt.Fprintln(w, "self-check FAILED")
	}
	return nil
}
