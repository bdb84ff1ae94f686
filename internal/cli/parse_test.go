package cli

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/f2c/internal/ir"
)

func TestParseCommand_Text(t *testing.T) {
	out, _, err := execute(t, "", "parse", buttonFixture)
	require.NoError(t, err)

	var doc ir.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, 4.0, doc.Metadata.ScaleFactor)
	assert.Equal(t, 120.0, doc.Nodes[0].Layout.Width)
	assert.Equal(t, 480.0, doc.Nodes[0].Layout.ComputedWidth)
	assert.Len(t, doc.Nodes[0].Children, 2)
}

func TestParseCommand_ScaleFactorFlag(t *testing.T) {
	out, _, err := execute(t, "", "parse", buttonFixture, "--scale-factor", "2")
	require.NoError(t, err)

	var doc ir.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 2.0, doc.Metadata.ScaleFactor)
	assert.Equal(t, 240.0, doc.Nodes[0].Layout.ComputedWidth)
}

func TestParseCommand_ScaleFactorEnv(t *testing.T) {
	for _, key := range []string{"F2C_MAX_DEPTH", "F2C_FORMAT", "F2C_CACHE_DB", "F2C_VERBOSE"} {
		t.Setenv(key, "")
	}
	t.Setenv("F2C_SCALE_FACTOR", "3")

	cmd := NewRootCommand()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs([]string{"parse", buttonFixture})
	require.NoError(t, cmd.Execute())

	var doc ir.Document
	require.NoError(t, json.Unmarshal([]byte(out.String()), &doc))
	assert.Equal(t, 360.0, doc.Nodes[0].Layout.ComputedWidth)
}

func TestParseCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "", "parse", buttonFixture, "--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	metadata, ok := data["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.0", metadata["version"])
	assert.Equal(t, "px", metadata["unit"])
}

func TestParseCommand_Stdin(t *testing.T) {
	input, err := os.ReadFile(buttonFixture)
	require.NoError(t, err)

	out, _, err := execute(t, string(input), "parse", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"computedWidth": 480`)
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		exitCode int
		errCode  string
	}{
		{
			name:     "missing file",
			args:     []string{"parse", "/nonexistent/tree.json"},
			exitCode: ExitCommandError,
			errCode:  ErrCodeNotFound,
		},
		{
			name:     "invalid JSON",
			stdin:    `{"id":`,
			args:     []string{"parse", "-"},
			exitCode: ExitFailure,
			errCode:  ErrCodeInvalidJSON,
		},
		{
			name:     "trailing data",
			stdin:    `{} {}`,
			args:     []string{"parse", "-"},
			exitCode: ExitFailure,
			errCode:  ErrCodeInvalidJSON,
		},
		{
			name:     "non-object root",
			stdin:    `[1, 2]`,
			args:     []string{"parse", "-"},
			exitCode: ExitFailure,
			errCode:  ErrCodeNotObject,
		},
		{
			name:     "depth exceeded",
			args:     []string{"parse", buttonFixture, "--max-depth", "1"},
			exitCode: ExitFailure,
			errCode:  ErrCodeDepthExceeded,
		},
		{
			name:     "missing argument",
			args:     []string{"parse"},
			exitCode: ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.stdin, append(tt.args, "--format", "json")...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, GetExitCode(err))
			if tt.errCode == "" {
				return
			}
			resp := decodeResponse(t, out)
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.errCode, resp.Error.Code)
		})
	}
}

func TestParseCommand_DepthDetails(t *testing.T) {
	out, _, err := execute(t, "", "parse", buttonFixture, "--max-depth", "1", "--format", "json")
	require.Error(t, err)

	resp := decodeResponse(t, out)
	require.NotNil(t, resp.Error)
	assert.Equal(t, map[string]any{"limit": 1.0, "path": "root.children[0]"}, resp.Error.Details)
}

func TestSerializeCommand_RoundTrip(t *testing.T) {
	irOut, _, err := execute(t, "", "parse", buttonFixture)
	require.NoError(t, err)

	out, _, err := execute(t, irOut, "serialize", "-", "--canonical")
	require.NoError(t, err)

	golden, err := os.ReadFile(buttonCanonical)
	require.NoError(t, err)
	assert.Equal(t, string(golden)+"\n", out)
}

func TestSerializeCommand_Indented(t *testing.T) {
	irOut, _, err := execute(t, "", "parse", buttonFixture)
	require.NoError(t, err)

	out, _, err := execute(t, irOut, "serialize", "-")
	require.NoError(t, err)

	var doc ir.SerializedDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 480.0, doc.Nodes[0].Layout.Width)
	assert.NotContains(t, out, "computed")
	assert.NotContains(t, out, "scaleFactor")
}

func TestSerializeCommand_RejectsUnknownFields(t *testing.T) {
	out, _, err := execute(t, `{"metadata":{},"nodes":[],"extra":1}`, "serialize", "-", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decodeResponse(t, out)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidJSON, resp.Error.Code)
}
