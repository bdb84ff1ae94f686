package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldenCases(t *testing.T) {
	cases, err := LoadCases(casesDir, "")
	require.NoError(t, err)

	for _, c := range cases {
		if !c.Golden {
			continue
		}
		t.Run(c.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, c))
		})
	}
}

func TestCheckGolden(t *testing.T) {
	c, err := LoadCase(filepath.Join(casesDir, "button.yaml"))
	require.NoError(t, err)
	result, err := Run(c)
	require.NoError(t, err)

	t.Run("matches stored snapshot", func(t *testing.T) {
		assert.NoError(t, CheckGolden("testdata/golden", c, result, false))
	})

	t.Run("update then compare", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "golden")
		require.ErrorIs(t, CheckGolden(dir, c, result, false), os.ErrNotExist)
		require.NoError(t, CheckGolden(dir, c, result, true))
		assert.NoError(t, CheckGolden(dir, c, result, false))
	})

	t.Run("mismatch", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, c.Name+GoldenSuffix), []byte("{}"), 0o644))
		assert.ErrorIs(t, CheckGolden(dir, c, result, false), ErrGoldenMismatch)
	})
}

func TestSnapshotBytes_NoOutput(t *testing.T) {
	_, err := SnapshotBytes("x", NewResult())
	assert.Error(t, err)
}
