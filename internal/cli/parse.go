package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/roach88/f2c/internal/figma"
	"github.com/roach88/f2c/internal/ir"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a node tree into IR",
		Long: `Parse a design-tool node tree (a file response, a single node or a node
list) into the full IR, including raw and computed values.

Reads stdin when the argument is "-".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, args[0], cmd)
		},
	}
}

func runParse(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	log := opts.logger(cmd)

	data, err := readInput(cmd, formatter, path)
	if err != nil {
		return err
	}

	p, err := opts.newParser()
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid parser options", err)
	}

	raw, err := figma.DecodeJSON(data)
	if err != nil {
		return invalidJSON(formatter, err)
	}
	doc, err := p.Parse(raw)
	if err != nil {
		return parseFailure(formatter, err)
	}

	log.Debug("parsed", "input", path, "nodes", ir.CountNodes(doc.Nodes), "depth", ir.TreeDepth(doc.Nodes))

	if formatter.Format == "json" {
		return formatter.Success(doc)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return encodeFailure(formatter, err)
	}
	return formatter.Success(out)
}
