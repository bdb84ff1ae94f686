package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Case defines one conformance case: an input tree, the parser options to
// convert it with and the expectations on the result.
type Case struct {
	// Name uniquely identifies this case and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this case validates.
	Description string `yaml:"description"`

	// ScaleFactor overrides the parser default when set.
	ScaleFactor *float64 `yaml:"scale_factor,omitempty"`

	// MaxDepth overrides the parser depth limit when set.
	MaxDepth *int `yaml:"max_depth,omitempty"`

	// Input is the raw node tree, inline.
	Input any `yaml:"input,omitempty"`

	// InputFile is a JSON file holding the raw tree. Relative paths are
	// resolved against the case file's directory by LoadCase.
	InputFile string `yaml:"input_file,omitempty"`

	// ExpectError is a substring the parse error must contain.
	// When set, the case passes only if parsing fails.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Assertions validate the serialized output.
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// Golden enables comparison of the canonical output with a snapshot.
	Golden bool `yaml:"golden,omitempty"`
}

// Assertion validates one property of the conversion output.
type Assertion struct {
	// Type is one of the Assert* constants. Empty means equals, or
	// absent when Absent is set.
	Type string `yaml:"type,omitempty"`

	// Path locates the value (used by equals and absent).
	Path string `yaml:"path,omitempty"`

	// Equals is the expected value at Path (used by equals).
	// A missing equals key expects null.
	Equals any `yaml:"equals,omitempty"`

	// Absent is shorthand for type: absent.
	Absent bool `yaml:"absent,omitempty"`

	// Count is the expected node total (used by node_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertEquals         = "equals"
	AssertAbsent         = "absent"
	AssertNoComputedKeys = "no_computed_keys"
	AssertNodeCount      = "node_count"
	AssertValidSchema    = "valid_schema"
)

// kind resolves the effective assertion type.
func (a Assertion) kind() string {
	if a.Type != "" {
		return a.Type
	}
	if a.Absent {
		return AssertAbsent
	}
	return AssertEquals
}

// LoadCase reads and parses a case YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	c, err := ParseCase(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if c.InputFile != "" && !filepath.IsAbs(c.InputFile) {
		c.InputFile = filepath.Join(filepath.Dir(path), c.InputFile)
	}
	return c, nil
}

// ParseCase decodes case YAML with strict field validation.
func ParseCase(data []byte) (*Case, error) {
	var c Case
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateCase(&c); err != nil {
		return nil, fmt.Errorf("invalid case: %w", err)
	}
	return &c, nil
}

// LoadCases loads every *.yaml case in dir, sorted by file name.
// A non-empty filter keeps only cases whose name matches the glob.
func LoadCases(dir, filter string) ([]*Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan cases: %w", err)
	}
	sort.Strings(paths)

	cases := make([]*Case, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		c, err := LoadCase(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("duplicate case name %q in %s and %s", c.Name, prev, path)
		}
		seen[c.Name] = path

		if filter != "" {
			match, err := filepath.Match(filter, c.Name)
			if err != nil {
				return nil, fmt.Errorf("bad filter %q: %w", filter, err)
			}
			if !match {
				continue
			}
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// validateCase checks that required fields are present and valid.
func validateCase(c *Case) error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Description == "" {
		return errors.New("description is required")
	}
	if (c.Input == nil) == (c.InputFile == "") {
		return errors.New("exactly one of input or input_file is required")
	}
	if c.ExpectError == "" && len(c.Assertions) == 0 && !c.Golden {
		return errors.New("case must declare assertions, golden or expect_error")
	}
	if c.ExpectError != "" && (len(c.Assertions) > 0 || c.Golden) {
		return errors.New("expect_error cases cannot carry assertions or golden")
	}

	for i, a := range c.Assertions {
		switch a.kind() {
		case AssertEquals, AssertAbsent:
			if a.Path == "" {
				return fmt.Errorf("assertion[%d]: %s requires path", i, a.kind())
			}
		case AssertNodeCount:
			if a.Count <= 0 {
				return fmt.Errorf("assertion[%d]: node_count requires a positive count", i)
			}
		case AssertNoComputedKeys, AssertValidSchema:
		default:
			return fmt.Errorf("assertion[%d]: unknown assertion type %q", i, a.Type)
		}
	}
	return nil
}
