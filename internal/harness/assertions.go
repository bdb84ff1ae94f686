package harness

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/roach88/f2c/internal/figma"
	"github.com/roach88/f2c/internal/schema"
)

// irPrefix routes a path to the IR document instead of the serialized one.
const irPrefix = "ir."

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Path     string // Path the assertion inspected, if any
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	if e.Path != "" {
		fmt.Fprintf(&buf, "  Path: %s\n", e.Path)
	}
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	return buf.String()
}

// EvaluateAssertions checks every assertion against a successful result and
// returns one message per failure, in declaration order.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	if len(assertions) == 0 {
		return nil
	}

	serialized, err := toJSONValue(result.Serialized)
	if err != nil {
		return []string{fmt.Sprintf("decode serialized output: %v", err)}
	}
	document, err := toJSONValue(result.Document)
	if err != nil {
		return []string{fmt.Sprintf("decode IR document: %v", err)}
	}

	var errors []string
	for _, a := range assertions {
		var aerr error
		switch a.kind() {
		case AssertEquals:
			aerr = assertEquals(serialized, document, a)
		case AssertAbsent:
			aerr = assertAbsent(serialized, document, a)
		case AssertNoComputedKeys:
			aerr = assertNoComputedKeys(serialized)
		case AssertNodeCount:
			aerr = assertNodeCount(result.NodeCount, a)
		case AssertValidSchema:
			aerr = assertValidSchema(result.Canonical)
		default:
			aerr = fmt.Errorf("unknown assertion type: %s", a.Type)
		}
		if aerr != nil {
			errors = append(errors, aerr.Error())
		}
	}
	return errors
}

func assertEquals(serialized, document any, a Assertion) error {
	actual, ok := Lookup(target(serialized, document, a.Path))
	if !ok {
		return &AssertionError{
			Type:     AssertEquals,
			Path:     a.Path,
			Expected: formatValue(a.Equals),
			Actual:   "path not found",
		}
	}
	if !valuesEqual(actual, a.Equals) {
		return &AssertionError{
			Type:     AssertEquals,
			Path:     a.Path,
			Expected: formatValue(a.Equals),
			Actual:   formatValue(actual),
		}
	}
	return nil
}

func assertAbsent(serialized, document any, a Assertion) error {
	actual, ok := Lookup(target(serialized, document, a.Path))
	if ok {
		return &AssertionError{
			Type:     AssertAbsent,
			Path:     a.Path,
			Expected: "path not present",
			Actual:   formatValue(actual),
		}
	}
	return nil
}

func assertNoComputedKeys(serialized any) error {
	var found []string
	collectComputedKeys(serialized, "", &found)
	if len(found) > 0 {
		return &AssertionError{
			Type:     AssertNoComputedKeys,
			Expected: "no keys starting with \"computed\"",
			Actual:   strings.Join(found, ", "),
		}
	}
	return nil
}

func assertNodeCount(actual int, a Assertion) error {
	if actual != a.Count {
		return &AssertionError{
			Type:     AssertNodeCount,
			Expected: fmt.Sprintf("%d nodes", a.Count),
			Actual:   fmt.Sprintf("%d nodes", actual),
		}
	}
	return nil
}

func assertValidSchema(canonical []byte) error {
	errs := schema.Validate(canonical)
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return &AssertionError{
		Type:     AssertValidSchema,
		Expected: "output satisfies the document schema",
		Actual:   strings.Join(msgs, "; "),
	}
}

// target picks the document a path addresses and strips the routing prefix.
func target(serialized, document any, path string) (any, string) {
	if rest, ok := strings.CutPrefix(path, irPrefix); ok {
		return document, rest
	}
	return serialized, path
}

// Lookup resolves a dotted path (nodes.0.style.border.width) against a
// decoded JSON value. Numeric segments index arrays; every other segment
// is an object key. An empty path returns the value itself.
func Lookup(v any, path string) (any, bool) {
	if path == "" {
		return v, true
	}
	cur := v
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

func collectComputedKeys(v any, path string, found *[]string) {
	switch node := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := joinPath(path, k)
			if strings.HasPrefix(k, "computed") {
				*found = append(*found, p)
			}
			collectComputedKeys(node[k], p, found)
		}
	case []any:
		for i, elem := range node {
			collectComputedKeys(elem, joinPath(path, strconv.Itoa(i)), found)
		}
	}
}

func joinPath(base, seg string) string {
	if base == "" {
		return seg
	}
	return base + "." + seg
}

// toJSONValue reduces a typed value to the generic shape encoding/json
// decodes into, so paths address JSON field names.
func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// valuesEqual compares a decoded JSON value with a YAML-declared expectation.
// YAML integers and JSON floats compare by numeric value.
func valuesEqual(actual, expected any) bool {
	return reflect.DeepEqual(normalize(actual), normalize(expected))
}

func normalize(v any) any {
	if n, ok := figma.Number(v); ok {
		return n
	}
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalize(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = normalize(elem)
		}
		return out
	}
	if obj, ok := figma.Object(v); ok {
		return normalize(obj)
	}
	return v
}

func formatValue(v any) string {
	data, err := json.Marshal(normalize(v))
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
