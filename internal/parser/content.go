package parser

import (
	"strings"

	"github.com/roach88/f2c/internal/figma"
	"github.com/roach88/f2c/internal/ir"
)

const (
	defaultFontFamily = "Inter"
	defaultFontSize   = 14.0
	defaultFontWeight = 400.0
	defaultLineHeight = 1.2

	iconNamePrefix = "icon_"
)

// content fills text and typography for TEXT nodes and the icon marker for
// nodes flagged as icons. Everything else gets empty content.
func (p *Parser) content(n figma.Node) ir.Content {
	var c ir.Content

	if n.Type != nil && *n.Type == figma.TypeText {
		text := stringOr(n.Characters, "")
		c.Text = &text
		c.Typography = p.typography(n.Style)
	}

	// Best-effort heuristic: a component icon property or an "icon_" name.
	// The marker holds the node name, so a nameless node never gets one.
	if n.Name != nil && (n.ComponentIcon || strings.HasPrefix(*n.Name, iconNamePrefix)) {
		icon := *n.Name
		c.Icon = &icon
	}

	return c
}

func (p *Parser) typography(s *figma.TypeStyle) *ir.Typography {
	if s == nil {
		s = &figma.TypeStyle{}
	}
	fontSize := numberOr(p.scalable(s.FontSize), defaultFontSize)
	letterSpacing := numberOr(p.scalable(s.LetterSpacing), 0)

	return &ir.Typography{
		FontFamily:            stringOr(s.FontFamily, defaultFontFamily),
		FontSize:              fontSize,
		ComputedFontSize:      p.compute(fontSize),
		FontWeight:            numberOr(s.FontWeight, defaultFontWeight),
		LineHeight:            lineHeight(s),
		LetterSpacing:         letterSpacing,
		ComputedLetterSpacing: p.compute(letterSpacing),
	}
}

// lineHeight prefers a non-zero percent-of-font-size, then the direct ratio.
func lineHeight(s *figma.TypeStyle) float64 {
	if s.LineHeightPercentFontSize != nil && *s.LineHeightPercentFontSize != 0 {
		return *s.LineHeightPercentFontSize / 100
	}
	return numberOr(s.LineHeight, defaultLineHeight)
}
