package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/f2c/internal/figma"
	"github.com/roach88/f2c/internal/ir"
	"github.com/roach88/f2c/internal/serializer"
	"github.com/roach88/f2c/internal/store"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Output    string // output file (stdout if empty)
	Canonical bool   // emit RFC 8785 bytes instead of indented JSON
	Cache     string // SQLite cache path (overrides config cache-db)
}

// ConvertResult is the JSON payload of a convert run.
type ConvertResult struct {
	Key       string          `json:"key"`
	Cached    bool            `json:"cached"`
	NodeCount int             `json:"node_count"`
	Output    string          `json:"output,omitempty"`
	Document  json.RawMessage `json:"document,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <file|->",
		Short: "Parse and serialize a node tree in one step",
		Long: `Parse a design-tool node tree and serialize the IR into the compact form.

With a cache database, conversions are stored under a content hash of the
input tree and every option that affects the output, and repeated
conversions are served from the cache.

Examples:
  f2c convert button.json
  f2c convert button.json -o button.f2c.json --canonical
  f2c convert - --cache f2c.db < frame.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.Canonical, "canonical", false, "emit canonical (RFC 8785) JSON")
	cmd.Flags().StringVar(&opts.Cache, "cache", "", "SQLite conversion cache (overrides cache-db)")

	return cmd
}

func runConvert(opts *ConvertOptions, path string, cmd *cobra.Command) error {
	ctx := cmd.Context()
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

	key, err := ir.InputKey(raw, p.ScaleFactor(), p.MaxDepth())
	if err != nil {
		return invalidJSON(formatter, err)
	}
	log = log.With("key", key)

	st, err := opts.openCache()
	if err != nil {
		_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open cache", err)
	}
	if st != nil {
		defer st.Close()
	}

	result := ConvertResult{Key: key, Output: opts.Output}
	var canonical []byte

	if st != nil {
		conv, err := st.Get(ctx, key)
		switch {
		case err == nil:
			result.Cached = true
			result.NodeCount = conv.NodeCount
			canonical = conv.Document
			log.Debug("cache hit")
		case errors.Is(err, store.ErrNotFound):
			log.Debug("cache miss")
		default:
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitCommandError, "read cache", err)
		}
	}

	if canonical == nil {
		doc, err := p.Parse(raw)
		if err != nil {
			return parseFailure(formatter, err)
		}
		out := serializer.Serialize(doc)
		if canonical, err = ir.MarshalCanonical(out); err != nil {
			return encodeFailure(formatter, err)
		}
		result.NodeCount = ir.CountSerializedNodes(out.Nodes)

		if st != nil {
			written, err := st.Put(ctx, store.Conversion{
				Key:         key,
				ScaleFactor: p.ScaleFactor(),
				MaxDepth:    p.MaxDepth(),
				Document:    canonical,
				NodeCount:   result.NodeCount,
				IRVersion:   ir.Version,
			})
			if err != nil {
				_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
				return WrapExitError(ExitCommandError, "write cache", err)
			}
			log.Debug("cached conversion", "written", written)
		}
	}

	encoded := canonical
	if !opts.Canonical {
		var buf bytes.Buffer
		if err := json.Indent(&buf, canonical, "", "  "); err != nil {
			return encodeFailure(formatter, err)
		}
		encoded = buf.Bytes()
	}

	if opts.Output != "" {
		if err := writeOutput(formatter, opts.Output, encoded); err != nil {
			return err
		}
		log.Debug("wrote output", "path", opts.Output, "nodes", result.NodeCount)
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		return formatter.Success(fmt.Sprintf("Wrote %d node(s) to %s", result.NodeCount, opts.Output))
	}

	if formatter.Format == "json" {
		result.Document = canonical
		return formatter.Success(result)
	}
	return formatter.Success(encoded)
}

// openCache opens the conversion cache named by --cache or cache-db.
// It returns a nil store when no cache is configured.
func (o *ConvertOptions) openCache() (*store.Store, error) {
	path := o.Cache
	if path == "" && o.Config != nil {
		path = o.Config.CacheDB
	}
	if path == "" {
		return nil, nil
	}
	return store.Open(path)
}
