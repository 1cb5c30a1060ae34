package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestSelfcheckReportGolden pins the JSON report shape. The run ID is
// fixed so the output is deterministic.
//
// To regenerate the golden file, run:
//
//	go test ./internal/cli -run TestSelfcheckReportGolden -update
func TestSelfcheckReportGolden(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"selfcheck", "--format", "json", "--run-id", "test-run-0001"})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "selfcheck_report", buf.Bytes())
}
