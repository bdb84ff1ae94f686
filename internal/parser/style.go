package parser

import (
	"github.com/roach88/f2c/internal/figma"
	"github.com/roach88/f2c/internal/ir"
)

const defaultStrokeWeight = 1.0

func (p *Parser) style(n figma.Node) ir.Style {
	radius := p.cornerRadii(n)

	visibility := ir.Visible
	if n.Hidden() {
		visibility = ir.Hidden
	}

	return ir.Style{
		BackgroundColor:      backgroundColor(n.Fills),
		BorderRadius:         radius,
		ComputedBorderRadius: p.computeCorners(radius),
		Border:               p.border(n.Strokes, n.StrokeWeight),
		Shadows:              p.shadows(n.Effects),
		Opacity:              unit(numberOr(n.Opacity, 1.0)),
		Visibility:           visibility,
	}
}

// firstSolid returns the first SOLID paint that is not explicitly hidden.
// The search stops there even if that paint has no color.
func firstSolid(paints []figma.Paint) (figma.Paint, bool) {
	for _, paint := range paints {
		if paint.IsType(figma.PaintSolid) && paint.Shown() {
			return paint, true
		}
	}
	return figma.Paint{}, false
}

func backgroundColor(fills []figma.Paint) string {
	fill, ok := firstSolid(fills)
	if !ok || fill.Color == nil {
		return colorTransparent
	}
	return paintColor(fill.Opacity, *fill.Color)
}

// cornerRadii uses the per-corner array verbatim when present, otherwise
// replicates the scalar radius. An array with an unscalable entry counts
// as absent.
func (p *Parser) cornerRadii(n figma.Node) ir.Corners {
	if c := n.RectangleCornerRadii; c != nil && p.scalableCorners(*c) {
		return ir.Corners(*c)
	}
	r := numberOr(p.scalable(n.CornerRadius), 0)
	return ir.Corners{r, r, r, r}
}

func (p *Parser) scalableCorners(c [4]float64) bool {
	for i := range c {
		if p.scalable(&c[i]) == nil {
			return false
		}
	}
	return true
}

func (p *Parser) computeCorners(c ir.Corners) ir.Corners {
	var out ir.Corners
	for i, r := range c {
		out[i] = p.compute(r)
	}
	return out
}

// border is nil unless a visible SOLID stroke with a color exists.
func (p *Parser) border(strokes []figma.Paint, weight *float64) *ir.Border {
	stroke, ok := firstSolid(strokes)
	if !ok || stroke.Color == nil {
		return nil
	}
	width := numberOr(p.scalable(weight), defaultStrokeWeight)
	return &ir.Border{
		Width:         width,
		ComputedWidth: p.compute(width),
		Color:         paintColor(stroke.Opacity, *stroke.Color),
		Style:         ir.BorderSolid,
	}
}

func (p *Parser) shadows(effects []figma.Effect) []ir.Shadow {
	shadows := make([]ir.Shadow, 0, len(effects))
	for _, e := range effects {
		if !e.IsType(figma.EffectDropShadow) || !e.Shown() {
			continue
		}
		var x, y float64
		if e.Offset != nil {
			x = numberOr(p.scalable(e.Offset.X), 0)
			y = numberOr(p.scalable(e.Offset.Y), 0)
		}
		blur := numberOr(p.scalable(e.Radius), 0)
		shadows = append(shadows, ir.Shadow{
			X:            x,
			Y:            y,
			Blur:         blur,
			ComputedX:    p.compute(x),
			ComputedY:    p.compute(y),
			ComputedBlur: p.compute(blur),
			Color:        shadowColor(e.Color),
		})
	}
	return shadows
}
