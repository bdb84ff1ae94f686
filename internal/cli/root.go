package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/f2c/internal/config"
	"github.com/roach88/f2c/internal/parser"
)

// RootOptions holds global flags and the state resolved from them before
// any subcommand runs.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	ConfigFile  string
	ScaleFactor float64
	MaxDepth    int

	// Config is the merged configuration (flags > env > file > defaults).
	Config *config.Config

	// TraceID correlates log lines and JSON responses of one invocation.
	TraceID string

	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON}

// NewRootCommand creates the root command for the f2c CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "f2c",
		Short: "f2c - design node trees to layout IR",
		Long: `Convert design-tool node trees into a scaled, flex-like layout IR and its
compact serialized form for downstream code generation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, config.KeyVerbose, "v", false, "verbose output")
	flags.StringVar(&opts.Format, config.KeyFormat, config.DefaultFormat, "output format (json|text)")
	flags.StringVar(&opts.ConfigFile, "config", "", "config file (default ./"+config.DefaultFileName+")")
	flags.Float64Var(&opts.ScaleFactor, config.KeyScaleFactor, config.DefaultScaleFactor, "multiplier applied to every computed value")
	flags.IntVar(&opts.MaxDepth, config.KeyMaxDepth, config.DefaultMaxDepth, "deepest node level to accept (0 disables the limit)")

	// Add subcommands
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewSerializeCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewCacheCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// resolve loads the layered configuration and builds the invocation logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{
		Flags:      cmd.Flags(),
		ConfigFile: o.ConfigFile,
	})
	if err != nil {
		// Format may be what failed to resolve, so report in the flag's format.
		formatter := &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
		if !isValidFormat(o.Format) {
			formatter.Format = config.FormatText
		}
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	o.Config = cfg
	o.Format = cfg.Format
	o.Verbose = cfg.Verbose
	o.ScaleFactor = cfg.ScaleFactor
	o.MaxDepth = cfg.MaxDepth

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate trace id: %w", err)
	}
	o.TraceID = id.String()

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With("trace_id", o.TraceID)
	o.Logger.Debug("configuration resolved",
		"command", cmd.Name(),
		"config_file", cfg.File,
		"scale_factor", cfg.ScaleFactor,
		"max_depth", cfg.MaxDepth,
	)
	return nil
}

// formatter returns an OutputFormatter bound to the command's writers.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
		TraceID:   o.TraceID,
	}
}

// logger returns the invocation logger, or a stderr logger when the
// command runs without the root pre-run (tests invoking a subcommand).
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// newParser builds a parser from the resolved scale factor and depth.
func (o *RootOptions) newParser() (*parser.Parser, error) {
	scale, depth := o.ScaleFactor, o.MaxDepth
	if o.Config != nil {
		scale, depth = o.Config.ScaleFactor, o.Config.MaxDepth
	}
	if scale == 0 {
		scale = parser.DefaultScaleFactor
	}
	return parser.New(parser.WithScaleFactor(scale), parser.WithMaxDepth(depth))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
