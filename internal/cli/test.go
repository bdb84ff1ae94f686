package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/f2c/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update    bool   // regenerate golden files
	Filter    string // case filter (glob pattern)
	GoldenDir string // golden snapshot directory
}

// CaseResult holds the result of a single case execution.
type CaseResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <cases-dir>",
		Short: "Run conformance cases",
		Long: `Run YAML conformance cases through the parser and serializer.

Each case converts an input tree and checks path assertions against the
serialized output. Golden cases also compare the canonical output with a
snapshot in the golden directory (default: a "golden" directory next to
the cases directory).

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (invalid paths, malformed cases, etc.)

Examples:
  f2c test ./testdata/cases
  f2c test ./testdata/cases --filter "button*"
  f2c test ./testdata/cases --update
  f2c test ./testdata/cases --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by glob pattern on the case name")
	cmd.Flags().StringVar(&opts.GoldenDir, "golden-dir", "", "golden snapshot directory")

	return cmd
}

func runTests(opts *TestOptions, casesDir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	w := cmd.OutOrStdout()

	if info, err := os.Stat(casesDir); err != nil || !info.IsDir() {
		msg := fmt.Sprintf("cases directory not found: %s", casesDir)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	cases, err := harness.LoadCases(casesDir, opts.Filter)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load cases", err)
	}

	goldenDir := opts.GoldenDir
	if goldenDir == "" {
		goldenDir = filepath.Join(filepath.Dir(filepath.Clean(casesDir)), "golden")
	}

	runner := harness.NewRunner(harness.WithLogger(opts.logger(cmd)))
	result := TestResult{
		Cases: make([]CaseResult, 0, len(cases)),
		Total: len(cases),
	}

	for _, c := range cases {
		cr := runCase(runner, c, goldenDir, opts.Update)
		result.Cases = append(result.Cases, cr)
		if cr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}

		if formatter.Format != "json" {
			if cr.Pass {
				fmt.Fprintf(w, "✓ %s\n", cr.Name)
			} else {
				fmt.Fprintf(w, "✗ %s\n", cr.Name)
				for _, e := range cr.Errors {
					fmt.Fprintf(w, "  %s\n", e)
				}
			}
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if result.Total == 0 {
		fmt.Fprintln(w, "No cases found.")
	} else {
		fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}
	return nil
}

// runCase executes one case and, for golden cases, checks or updates its
// snapshot.
func runCase(runner *harness.Runner, c *harness.Case, goldenDir string, update bool) CaseResult {
	res, err := runner.Run(c)
	if err != nil {
		return CaseResult{Name: c.Name, Errors: []string{fmt.Sprintf("execution failed: %v", err)}}
	}

	if c.Golden && res.Serialized != nil {
		if err := harness.CheckGolden(goldenDir, c, res, update); err != nil {
			res.AddError(err.Error())
		}
	}
	return CaseResult{Name: c.Name, Pass: res.Pass, Errors: res.Errors}
}
