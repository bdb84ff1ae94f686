package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/f2c/internal/ir"
)

func solid(r, g, b float64) map[string]any {
	return map[string]any{"type": "SOLID", "color": map[string]any{"r": r, "g": g, "b": b}}
}

func TestStyleDefaults(t *testing.T) {
	n := parseOne(t, newParser(t), map[string]any{})

	assert.Equal(t, "transparent", n.Style.BackgroundColor)
	assert.Nil(t, n.Style.Border)
	assert.NotNil(t, n.Style.Shadows)
	assert.Empty(t, n.Style.Shadows)
	assert.Equal(t, ir.Corners{}, n.Style.BorderRadius)
	assert.Equal(t, 1.0, n.Style.Opacity)
	assert.Equal(t, ir.Visible, n.Style.Visibility)
}

func TestStyleBackgroundColor(t *testing.T) {
	hidden := solid(1, 0, 0)
	hidden["visible"] = false

	tests := []struct {
		name  string
		fills []any
		want  string
	}{
		{"empty fills", []any{}, "transparent"},
		{"first solid", []any{solid(0, 0, 1), solid(1, 0, 0)}, "#0000FF"},
		{"skips hidden", []any{hidden, solid(0, 1, 0)}, "#00FF00"},
		{"skips gradients", []any{map[string]any{"type": "GRADIENT_LINEAR"}, solid(1, 1, 1)}, "#FFFFFF"},
		{"solid without color stops the search", []any{map[string]any{"type": "SOLID"}, solid(1, 1, 1)}, "transparent"},
		{"paint opacity", []any{map[string]any{"type": "SOLID", "opacity": 0.4, "color": map[string]any{"r": 1.0, "g": 1.0, "b": 1.0}}}, "rgba(255,255,255,0.4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := parseOne(t, newParser(t), map[string]any{"fills": tt.fills})
			assert.Equal(t, tt.want, n.Style.BackgroundColor)
		})
	}
}

func TestStyleCornerRadius(t *testing.T) {
	p := newParser(t, WithScaleFactor(2))

	n := parseOne(t, p, map[string]any{"rectangleCornerRadii": []any{4.0, 8.0, 12.0, 16.0}, "cornerRadius": 99.0})
	assert.Equal(t, ir.Corners{4, 8, 12, 16}, n.Style.BorderRadius)
	assert.Equal(t, ir.Corners{8, 16, 24, 32}, n.Style.ComputedBorderRadius)

	n = parseOne(t, p, map[string]any{"cornerRadius": 6.0})
	assert.Equal(t, ir.Corners{6, 6, 6, 6}, n.Style.BorderRadius)
	assert.Equal(t, ir.Corners{12, 12, 12, 12}, n.Style.ComputedBorderRadius)

	n = parseOne(t, p, map[string]any{"rectangleCornerRadii": []any{4.0, 8.0}, "cornerRadius": 3.0})
	assert.Equal(t, ir.Corners{3, 3, 3, 3}, n.Style.BorderRadius, "malformed per-corner array falls back to the scalar")
}

func TestStyleBorder(t *testing.T) {
	p := newParser(t)

	n := parseOne(t, p, map[string]any{"strokes": []any{solid(0, 0, 0)}})
	require.NotNil(t, n.Style.Border)
	assert.Equal(t, ir.Border{Width: 1, ComputedWidth: 4, Color: "#000000", Style: ir.BorderSolid}, *n.Style.Border)

	n = parseOne(t, p, map[string]any{"strokes": []any{solid(1, 0, 0)}, "strokeWeight": 2.5})
	require.NotNil(t, n.Style.Border)
	assert.Equal(t, 2.5, n.Style.Border.Width)
	assert.Equal(t, 10.0, n.Style.Border.ComputedWidth)
	assert.Equal(t, "#FF0000", n.Style.Border.Color)

	n = parseOne(t, p, map[string]any{"strokes": []any{}, "strokeWeight": 2.0})
	assert.Nil(t, n.Style.Border, "no strokes means no border, not a zero-width one")

	n = parseOne(t, p, map[string]any{"strokes": []any{map[string]any{"type": "SOLID"}}})
	assert.Nil(t, n.Style.Border)

	hidden := solid(1, 0, 0)
	hidden["visible"] = false
	n = parseOne(t, p, map[string]any{"strokes": []any{hidden}})
	assert.Nil(t, n.Style.Border)
}

func TestStyleShadows(t *testing.T) {
	p := newParser(t, WithScaleFactor(2))

	n := parseOne(t, p, map[string]any{
		"effects": []any{
			map[string]any{
				"type":   "DROP_SHADOW",
				"offset": map[string]any{"x": 0.0, "y": 2.0},
				"radius": 4.0,
				"color":  map[string]any{"r": 0.0, "g": 0.0, "b": 0.0, "a": 0.1},
			},
			map[string]any{"type": "INNER_SHADOW", "radius": 3.0},
			map[string]any{"type": "DROP_SHADOW", "visible": false, "radius": 9.0},
			map[string]any{"type": "DROP_SHADOW", "offset": map[string]any{"x": -1.5}},
			map[string]any{"type": "LAYER_BLUR", "radius": 8.0},
		},
	})

	assert.Equal(t, []ir.Shadow{
		{X: 0, Y: 2, Blur: 4, ComputedX: 0, ComputedY: 4, ComputedBlur: 8, Color: "rgba(0,0,0,0.1)"},
		{X: -1.5, Y: 0, Blur: 0, ComputedX: -3, ComputedY: 0, ComputedBlur: 0, Color: "rgba(0,0,0,0.25)"},
	}, n.Style.Shadows)
}

func TestStyleOpacityAndVisibility(t *testing.T) {
	p := newParser(t)

	n := parseOne(t, p, map[string]any{"opacity": 0.5, "visible": false})
	assert.Equal(t, 0.5, n.Style.Opacity)
	assert.Equal(t, ir.Hidden, n.Style.Visibility)

	n = parseOne(t, p, map[string]any{"opacity": 0.0, "visible": true})
	assert.Equal(t, 0.0, n.Style.Opacity, "zero opacity is a value, not absent")
	assert.Equal(t, ir.Visible, n.Style.Visibility)

	n = parseOne(t, p, map[string]any{"opacity": 1.5})
	assert.Equal(t, 1.0, n.Style.Opacity, "opacity clamps to 1")

	n = parseOne(t, p, map[string]any{"opacity": -0.2})
	assert.Equal(t, 0.0, n.Style.Opacity, "opacity clamps to 0")

	n = parseOne(t, p, map[string]any{"visible": 0.0})
	assert.Equal(t, ir.Visible, n.Style.Visibility, "only an explicit false hides")
}
