package parser

import (
	"github.com/roach88/f2c/internal/figma"
	"github.com/roach88/f2c/internal/ir"
)

var alignKeywords = map[string]string{
	"MIN":      "flex-start",
	"MAX":      "flex-end",
	"CENTER":   "center",
	"BASELINE": "baseline",
}

var justifyKeywords = map[string]string{
	"MIN":           "flex-start",
	"MAX":           "flex-end",
	"CENTER":        "center",
	"SPACE_BETWEEN": "space-between",
}

const (
	defaultAlign   = "stretch"
	defaultJustify = "flex-start"
)

func (p *Parser) layout(n figma.Node) ir.Layout {
	width, height := p.boxSize(n)
	padding := ir.Padding{
		Top:    numberOr(p.scalable(n.PaddingTop), 0),
		Right:  numberOr(p.scalable(n.PaddingRight), 0),
		Bottom: numberOr(p.scalable(n.PaddingBottom), 0),
		Left:   numberOr(p.scalable(n.PaddingLeft), 0),
	}
	gap := numberOr(p.scalable(n.ItemSpacing), 0)

	display := ir.DisplayNone
	if n.AutoLayout {
		display = ir.DisplayFlex
	}
	direction := ir.DirectionVertical
	if n.LayoutMode != nil && *n.LayoutMode == "HORIZONTAL" {
		direction = ir.DirectionHorizontal
	}

	return ir.Layout{
		Display:         display,
		Direction:       direction,
		Align:           keyword(alignKeywords, n.CounterAxisAlignItems, defaultAlign),
		Justify:         keyword(justifyKeywords, n.PrimaryAxisAlignItems, defaultJustify),
		WidthMode:       sizingMode(n.LayoutSizingHorizontal),
		HeightMode:      sizingMode(n.LayoutSizingVertical),
		Width:           width,
		Height:          height,
		ComputedWidth:   p.compute(width),
		ComputedHeight:  p.compute(height),
		Padding:         padding,
		ComputedPadding: p.computePadding(padding),
		Gap:             gap,
		ComputedGap:     p.compute(gap),
	}
}

// boxSize prefers the bounding box, then the size vector, per axis.
func (p *Parser) boxSize(n figma.Node) (width, height float64) {
	var w, h *float64
	if n.AbsoluteBoundingBox != nil {
		w, h = p.scalable(n.AbsoluteBoundingBox.Width), p.scalable(n.AbsoluteBoundingBox.Height)
	}
	if n.Size != nil {
		if w == nil {
			w = p.scalable(n.Size.X)
		}
		if h == nil {
			h = p.scalable(n.Size.Y)
		}
	}
	return numberOr(w, 0), numberOr(h, 0)
}

func (p *Parser) computePadding(pad ir.Padding) ir.Padding {
	return ir.Padding{
		Top:    p.compute(pad.Top),
		Right:  p.compute(pad.Right),
		Bottom: p.compute(pad.Bottom),
		Left:   p.compute(pad.Left),
	}
}

func keyword(table map[string]string, v *string, def string) string {
	if v == nil {
		return def
	}
	if kw, ok := table[*v]; ok {
		return kw
	}
	return def
}

func sizingMode(v *string) ir.SizingMode {
	if v == nil {
		return ir.SizingFixed
	}
	switch *v {
	case "HUG":
		return ir.SizingHug
	case "FILL":
		return ir.SizingFill
	default:
		return ir.SizingFixed
	}
}
