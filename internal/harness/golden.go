package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/f2c/internal/ir"
)

// GoldenSuffix is the file extension of golden snapshots.
const GoldenSuffix = ".golden"

// Snapshot is the golden form of one case run.
type Snapshot struct {
	Case   string                 `json:"case"`
	Output *ir.SerializedDocument `json:"output"`
}

// SnapshotBytes renders the canonical golden bytes for a result.
func SnapshotBytes(name string, result *Result) ([]byte, error) {
	if result.Serialized == nil {
		return nil, fmt.Errorf("case %s: no output to snapshot", name)
	}
	return ir.MarshalCanonical(Snapshot{Case: name, Output: result.Serialized})
}

// RunWithGolden executes a case and compares its output against a golden
// file stored in testdata/golden/{case.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the case cannot run.
// Test failure (via goldie) occurs if output doesn't match the golden file.
func RunWithGolden(t *testing.T, c *Case) error {
	t.Helper()

	result, err := Run(c)
	if err != nil {
		return err
	}
	return AssertGolden(t, c.Name, result)
}

// AssertGolden compares an existing result against its golden file without
// re-running the case.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := SnapshotBytes(name, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(GoldenSuffix),
	)
	g.Assert(t, name, data)

	return nil
}

// ErrGoldenMismatch reports that output differs from the stored snapshot.
var ErrGoldenMismatch = errors.New("output does not match golden file")

// CheckGolden compares a result against dir/{name}.golden outside of go
// test. With update set, the snapshot is (re)written instead.
func CheckGolden(dir string, c *Case, result *Result, update bool) error {
	data, err := SnapshotBytes(c.Name, result)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, c.Name+GoldenSuffix)
	if update {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create golden dir: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write golden file: %w", err)
		}
		return nil
	}

	want, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read golden file: %w", err)
	}
	if !bytes.Equal(want, data) {
		return fmt.Errorf("%s: %w", path, ErrGoldenMismatch)
	}
	return nil
}
