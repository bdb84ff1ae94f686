package figma

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
)

// ErrTrailingData reports input with more than one top-level JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// DecodeJSON decodes exactly one JSON value. Numbers stay json.Number so
// they are converted to float64 only when a field is read.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return v, nil
}

// Truthy reports whether v is truthy under the design-tool JSON convention:
// false, null, 0, NaN and "" are falsy; everything else, including empty
// objects and arrays, is truthy.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case map[string]any, []any:
		return true
	default:
		if n, ok := Number(v); ok {
			return n != 0
		}
		// Non-finite numbers: NaN is falsy, ±Inf is truthy.
		if f, ok := rawFloat(v); ok {
			return !math.IsNaN(f)
		}
		return true
	}
}

// Number extracts a finite number from any numeric Go type produced by
// encoding/json (float64, json.Number), yaml.v3 (int, float64) or
// hand-built maps. Non-numeric and non-finite values report false.
func Number(v any) (float64, bool) {
	f, ok := rawFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func rawFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Object returns v as a JSON object, normalizing the map[any]any shape some
// YAML decoders produce.
func Object(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case map[any]any:
		obj := make(map[string]any, len(val))
		for k, elem := range val {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			obj[key] = elem
		}
		return obj, true
	default:
		return nil, false
	}
}

// Array returns v as a JSON array.
func Array(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

func optNumber(obj map[string]any, key string) *float64 {
	if n, ok := Number(obj[key]); ok {
		return &n
	}
	return nil
}

func optString(obj map[string]any, key string) *string {
	if s, ok := obj[key].(string); ok {
		return &s
	}
	return nil
}

func optBool(obj map[string]any, key string) *bool {
	if b, ok := obj[key].(bool); ok {
		return &b
	}
	return nil
}

func optObject(obj map[string]any, key string) (map[string]any, bool) {
	return Object(obj[key])
}
