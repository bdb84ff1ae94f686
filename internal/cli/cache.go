package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/f2c/internal/store"
)

// CacheEntry is the listing form of one cached conversion.
type CacheEntry struct {
	Seq         int64   `json:"seq"`
	Key         string  `json:"key"`
	ScaleFactor float64 `json:"scale_factor"`
	MaxDepth    int     `json:"max_depth"`
	NodeCount   int     `json:"node_count"`
	IRVersion   string  `json:"ir_version"`
}

// NewCacheCommand creates the cache command group.
func NewCacheCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the conversion cache",
	}
	cmd.AddCommand(newCacheListCommand(rootOpts))
	return cmd
}

func newCacheListCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List cached conversions in insertion order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheList(rootOpts, dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "cache", "", "SQLite conversion cache (overrides cache-db)")

	return cmd
}

func runCacheList(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if dbPath == "" && opts.Config != nil {
		dbPath = opts.Config.CacheDB
	}
	if dbPath == "" {
		msg := "no cache configured: pass --cache or set cache-db"
		_ = formatter.Error(ErrCodeConfig, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open cache", err)
	}
	defer st.Close()

	convs, err := st.List(cmd.Context())
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list cache", err)
	}

	entries := make([]CacheEntry, len(convs))
	for i, c := range convs {
		entries[i] = CacheEntry{
			Seq:         c.Seq,
			Key:         c.Key,
			ScaleFactor: c.ScaleFactor,
			MaxDepth:    c.MaxDepth,
			NodeCount:   c.NodeCount,
			IRVersion:   c.IRVersion,
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(entries)
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "%d cached conversion(s)", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&buf, "\n%4d  %s  scale=%g depth=%d nodes=%d", e.Seq, e.Key[:12], e.ScaleFactor, e.MaxDepth, e.NodeCount)
	}
	return formatter.Success(buf.String())
}
