package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/f2c/internal/schema"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                     `json:"valid"`
	Errors []schema.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <serialized-file|->",
		Short: "Check a serialized document against the output schema",
		Long: `Check a serialized document against the CUE contract downstream consumers
rely on: closed objects, well-formed colors, no computed keys and content
that carries text or an icon.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	data, err := readInput(cmd, formatter, path)
	if err != nil {
		return err
	}

	errs := schema.Validate(data)
	opts.logger(cmd).Debug("validated", "input", path, "violations", len(errs))

	if len(errs) == 0 {
		if formatter.Format == "json" {
			return formatter.Success(ValidationResult{Valid: true})
		}
		return formatter.Success("✓ Document is valid")
	}

	code := errs[0].Code
	if code != schema.ErrInvalidJSON {
		code = ErrCodeSchemaViolation
	}

	if formatter.Format == "json" {
		_ = formatter.Error(code, fmt.Sprintf("%d schema violation(s)", len(errs)), ValidationResult{
			Valid:  false,
			Errors: errs,
		})
	} else {
		var buf strings.Builder
		fmt.Fprintf(&buf, "✗ %d schema violation(s)\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(&buf, "  %s\n", e.Error())
		}
		fmt.Fprint(formatter.Writer, buf.String())
	}
	return NewExitError(ExitFailure, "validation failed")
}
