package parser

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/f2c/internal/ir"
)

func TestComputeRounding(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		raw   float64
		want  float64
	}{
		{"integer scale", 4, 120, 480},
		{"tie rounds up", 1, 2.5, 3},
		{"small tie", 4, 0.125, 1},
		{"negative tie rounds away from zero", 4, -0.125, -1},
		{"below half", 2, 1.2, 2},
		{"fractional scale", 1.5, 3, 5},
		{"shrinking scale", 0.5, 5, 3},
		{"negative zero folds", 4, -0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(t, WithScaleFactor(tt.scale))
			got := p.compute(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.False(t, math.Signbit(got) && got == 0, "negative zero leaked")
		})
	}
}

// richNode exercises every scalable field at once.
func richNode() map[string]any {
	return map[string]any{
		"id":                  "1:1",
		"type":                "FRAME",
		"layoutMode":          "VERTICAL",
		"absoluteBoundingBox": map[string]any{"width": 333.3, "height": 17.75},
		"paddingTop":          1.1,
		"paddingRight":        2.25,
		"paddingBottom":       0.5,
		"paddingLeft":         7.0,
		"itemSpacing":         3.3,
		"rectangleCornerRadii": []any{
			1.5, 2.5, 0.4, 9.0,
		},
		"strokes":      []any{solid(0, 0, 0)},
		"strokeWeight": 1.25,
		"effects": []any{
			map[string]any{"type": "DROP_SHADOW", "offset": map[string]any{"x": -0.6, "y": 1.7}, "radius": 2.2},
		},
		"children": []any{
			map[string]any{
				"type":  "TEXT",
				"style": map[string]any{"fontSize": 13.5, "letterSpacing": -0.3},
			},
		},
	}
}

func TestComputedFieldsMatchScaledRaw(t *testing.T) {
	for _, scale := range []float64{1, 2, 2.5, 3.3, 4, 0.5, 0.1, 7.77} {
		p := newParser(t, WithScaleFactor(scale))
		doc, err := p.Parse(map[string]any{"nodes": []any{richNode()}})
		require.NoError(t, err)
		assert.Equal(t, scale, doc.Metadata.ScaleFactor)

		want := func(raw float64) float64 { return math.Round(raw * scale) }

		ir.Walk(doc.Nodes, func(n *ir.Node, _ int) bool {
			l := n.Layout
			assert.Equal(t, want(l.Width), l.ComputedWidth)
			assert.Equal(t, want(l.Height), l.ComputedHeight)
			assert.Equal(t, want(l.Padding.Top), l.ComputedPadding.Top)
			assert.Equal(t, want(l.Padding.Right), l.ComputedPadding.Right)
			assert.Equal(t, want(l.Padding.Bottom), l.ComputedPadding.Bottom)
			assert.Equal(t, want(l.Padding.Left), l.ComputedPadding.Left)
			assert.Equal(t, want(l.Gap), l.ComputedGap)

			for i, r := range n.Style.BorderRadius {
				assert.Equal(t, want(r), n.Style.ComputedBorderRadius[i])
			}
			if b := n.Style.Border; b != nil {
				assert.Equal(t, want(b.Width), b.ComputedWidth)
			}
			for _, s := range n.Style.Shadows {
				assert.Equal(t, want(s.X), s.ComputedX)
				assert.Equal(t, want(s.Y), s.ComputedY)
				assert.Equal(t, want(s.Blur), s.ComputedBlur)
			}
			if ty := n.Content.Typography; ty != nil {
				assert.Equal(t, want(ty.FontSize), ty.ComputedFontSize)
				assert.Equal(t, want(ty.LetterSpacing), ty.ComputedLetterSpacing)
			}
			return true
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	p := newParser(t, WithScaleFactor(3.3))

	a, err := p.Parse(map[string]any{"nodes": []any{richNode()}})
	require.NoError(t, err)
	b, err := p.Parse(map[string]any{"nodes": []any{richNode()}})
	require.NoError(t, err)

	ha, err := ir.DocumentHash(a)
	require.NoError(t, err)
	hb, err := ir.DocumentHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

func TestOverflowingRawValuesTakeDefaults(t *testing.T) {
	p := newParser(t)

	doc, err := p.Parse(map[string]any{"nodes": []any{
		map[string]any{
			"type":                "FRAME",
			"absoluteBoundingBox": map[string]any{"width": 1e308, "height": 10.0},
			"size":                map[string]any{"x": 50.0, "y": 1e308},
			"paddingTop":          1e308,
			"paddingLeft":         2.0,
			"itemSpacing":         -1e308,
			"cornerRadius":        1e308,
			"strokes":             []any{solid(0, 0, 0)},
			"strokeWeight":        1e308,
			"effects": []any{
				map[string]any{"type": "DROP_SHADOW", "offset": map[string]any{"x": 1e308, "y": 1.0}, "radius": -1e308},
			},
			"children": []any{
				map[string]any{
					"type":  "TEXT",
					"style": map[string]any{"fontSize": 1e308, "letterSpacing": 1e308},
				},
			},
		},
		map[string]any{
			"type":                 "RECTANGLE",
			"cornerRadius":         2.0,
			"rectangleCornerRadii": []any{1.0, 1e308, 1.0, 1.0},
		},
	}})
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 2)

	frame := doc.Nodes[0]
	assert.Equal(t, 50.0, frame.Layout.Width, "bounding box width falls back to size")
	assert.Equal(t, 200.0, frame.Layout.ComputedWidth)
	assert.Equal(t, 10.0, frame.Layout.Height)
	assert.Equal(t, 40.0, frame.Layout.ComputedHeight)
	assert.Equal(t, ir.Padding{Left: 2}, frame.Layout.Padding)
	assert.Equal(t, ir.Padding{Left: 8}, frame.Layout.ComputedPadding)
	assert.Equal(t, 0.0, frame.Layout.Gap)
	assert.Equal(t, 0.0, frame.Layout.ComputedGap)
	assert.Equal(t, ir.Corners{}, frame.Style.BorderRadius)
	assert.Equal(t, ir.Corners{}, frame.Style.ComputedBorderRadius)

	require.NotNil(t, frame.Style.Border)
	assert.Equal(t, 1.0, frame.Style.Border.Width)
	assert.Equal(t, 4.0, frame.Style.Border.ComputedWidth)

	require.Len(t, frame.Style.Shadows, 1)
	s := frame.Style.Shadows[0]
	assert.Equal(t, 0.0, s.X)
	assert.Equal(t, 0.0, s.ComputedX)
	assert.Equal(t, 4.0, s.ComputedY)
	assert.Equal(t, 0.0, s.Blur)
	assert.Equal(t, 0.0, s.ComputedBlur)

	require.Len(t, frame.Children, 1)
	ty := frame.Children[0].Content.Typography
	require.NotNil(t, ty)
	assert.Equal(t, 14.0, ty.FontSize)
	assert.Equal(t, 56.0, ty.ComputedFontSize)
	assert.Equal(t, 0.0, ty.LetterSpacing)
	assert.Equal(t, 0.0, ty.ComputedLetterSpacing)

	rect := doc.Nodes[1]
	assert.Equal(t, ir.Corners{2, 2, 2, 2}, rect.Style.BorderRadius, "radii array with an overflowing entry counts as absent")
	assert.Equal(t, ir.Corners{8, 8, 8, 8}, rect.Style.ComputedBorderRadius)

	_, err = json.Marshal(doc)
	require.NoError(t, err)
	_, err = ir.MarshalCanonical(doc)
	require.NoError(t, err)
}

func TestLargeRawValueKeptWhenProductIsFinite(t *testing.T) {
	p := newParser(t, WithScaleFactor(1))

	n := parseOne(t, p, map[string]any{
		"absoluteBoundingBox": map[string]any{"width": 1e308, "height": 10.0},
	})
	assert.Equal(t, 1e308, n.Layout.Width)
	assert.Equal(t, 1e308, n.Layout.ComputedWidth)
}
