package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/f2c/internal/parser"
)

// stdinArg reads input from the command's stdin.
const stdinArg = "-"

// readInput reads the named file, or stdin for "-". Failures are reported
// through the formatter and returned as command errors.
func readInput(cmd *cobra.Command, f *OutputFormatter, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinArg {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		msg := fmt.Sprintf("cannot read input %s: %v", path, err)
		_ = f.Error(ErrCodeNotFound, msg, nil)
		return nil, WrapExitError(ExitCommandError, "read input", err)
	}
	return data, nil
}

// parseFailure maps a parser error onto a CLI error code and reports it.
func parseFailure(f *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	var details any

	var depthErr *parser.DepthError
	switch {
	case errors.Is(err, parser.ErrNotObject):
		code = ErrCodeNotObject
	case errors.As(err, &depthErr):
		code = ErrCodeDepthExceeded
		details = map[string]any{"limit": depthErr.Limit, "path": depthErr.Path}
	}

	_ = f.Error(code, err.Error(), details)
	return WrapExitError(ExitFailure, "parse failed", err)
}

// invalidJSON reports undecodable input.
func invalidJSON(f *OutputFormatter, err error) error {
	_ = f.Error(ErrCodeInvalidJSON, fmt.Sprintf("invalid JSON input: %v", err), nil)
	return WrapExitError(ExitFailure, "invalid JSON input", err)
}

// encodeFailure reports output that could not be encoded.
func encodeFailure(f *OutputFormatter, err error) error {
	_ = f.Error(ErrCodeGeneric, fmt.Sprintf("cannot encode output: %v", err), nil)
	return WrapExitError(ExitFailure, "encode output", err)
}

// writeOutput writes data to path, reporting failures as E007.
func writeOutput(f *OutputFormatter, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		_ = f.Error(ErrCodeWriteFailed, fmt.Sprintf("cannot write %s: %v", path, err), nil)
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}
