package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/f2c/internal/ir"
	"github.com/roach88/f2c/internal/serializer"
)

// SerializeOptions holds flags for the serialize command.
type SerializeOptions struct {
	*RootOptions
	Canonical bool // emit RFC 8785 bytes instead of indented JSON
}

// NewSerializeCommand creates the serialize command.
func NewSerializeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SerializeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serialize <ir-file|->",
		Short: "Serialize an IR document into its compact form",
		Long: `Serialize an IR document (as produced by "f2c parse") into the compact form:
computed values replace raw ones and empty content is dropped.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSerialize(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Canonical, "canonical", false, "emit canonical (RFC 8785) JSON")

	return cmd
}

func runSerialize(opts *SerializeOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	data, err := readInput(cmd, formatter, path)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc ir.Document
	if err := dec.Decode(&doc); err != nil {
		return invalidJSON(formatter, err)
	}

	out := serializer.Serialize(&doc)
	opts.logger(cmd).Debug("serialized", "input", path, "nodes", ir.CountSerializedNodes(out.Nodes))

	if formatter.Format == "json" {
		return formatter.Success(out)
	}
	encoded, err := encodeSerialized(out, opts.Canonical)
	if err != nil {
		return encodeFailure(formatter, err)
	}
	return formatter.Success(encoded)
}

// encodeSerialized renders a serialized document canonically or indented.
func encodeSerialized(doc *ir.SerializedDocument, canonical bool) ([]byte, error) {
	if canonical {
		out, err := ir.MarshalCanonical(doc)
		if err != nil {
			return nil, fmt.Errorf("encode output: %w", err)
		}
		return out, nil
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	return out, nil
}
