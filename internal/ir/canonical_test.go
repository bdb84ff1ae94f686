package ir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int", -100, "-100"},
		{"integral float", 480.0, "480"},
		{"fraction", 0.25, "0.25"},
		{"zero", 0, "0"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"null", nil, "null"},
		{"empty array", []any{}, "[]"},
		{"empty object", map[string]any{}, "{}"},
		{"array of numbers", []float64{1, 2.5, 3}, "[1,2.5,3]"},
		{"simple object", map[string]any{"a": 1}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalSortedKeys(t *testing.T) {
	obj := map[string]any{
		"zebra": 1,
		"alpha": 2,
		"beta":  3,
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"beta":3,"zebra":1}`, string(result))
}

func TestMarshalCanonicalStructUsesJSONTags(t *testing.T) {
	border := Border{Width: 1, ComputedWidth: 4, Color: "#FFFFFF", Style: BorderSolid}

	result, err := MarshalCanonical(border)
	require.NoError(t, err)
	assert.Equal(t, `{"color":"#FFFFFF","computedWidth":4,"style":"solid","width":1}`, string(result))
}

func TestMarshalCanonicalUTF16Ordering(t *testing.T) {
	// U+E000 vs U+10000 - UTF-16 order differs from UTF-8
	obj := map[string]any{
		"\uE000":     1, // UTF-16: 0xE000
		"\U00010000": 2, // UTF-16: 0xD800, 0xDC00 (surrogate pair)
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)

	expected := "{\"\U00010000\":2,\"\uE000\":1}"
	assert.Equal(t, expected, string(result))
}

func TestMarshalCanonicalNoHTMLEscape(t *testing.T) {
	result, err := MarshalCanonical("<b>Tom & Jerry</b>")
	require.NoError(t, err)
	assert.Equal(t, `"<b>Tom & Jerry</b>"`, string(result))
	assert.NotContains(t, string(result), "\\u003c")
	assert.NotContains(t, string(result), "\\u0026")
}

func TestMarshalCanonicalLineSeparators(t *testing.T) {
	t.Run("literal separator stays literal", func(t *testing.T) {
		result, err := MarshalCanonical("a\u2028b\u2029c")
		require.NoError(t, err)
		assert.Equal(t, "\"a\u2028b\u2029c\"", string(result))
	})

	t.Run("escaped backslash is preserved", func(t *testing.T) {
		result, err := MarshalCanonical(`\u2028`)
		require.NoError(t, err)
		assert.Equal(t, `"\\u2028"`, string(result))
	})
}

func TestMarshalCanonicalNFC(t *testing.T) {
	// "e" + combining acute accent normalizes to U+00E9
	result, err := MarshalCanonical("Cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"Caf\u00e9\"", string(result))
}

func TestMarshalCanonicalRejectsNonFinite(t *testing.T) {
	_, err := MarshalCanonical(math.Inf(1))
	assert.Error(t, err)

	_, err = MarshalCanonical(map[string]any{"x": math.NaN()})
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{123.456, "123.456"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := FormatNumber(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := FormatNumber(math.NaN())
	assert.Error(t, err)
}

func TestMarshalCanonicalDeterministic(t *testing.T) {
	doc := sampleDocument()

	first, err := MarshalCanonical(doc)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := MarshalCanonical(doc)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
