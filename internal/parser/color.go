package parser

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/roach88/f2c/internal/figma"
)

const (
	colorTransparent = "transparent"

	// shadowFallbackColor is used for a drop shadow without a color.
	shadowFallbackColor = "rgba(0,0,0,0.25)"
)

// paintColor applies the color rule to a fill or stroke: rgba when the
// effective alpha is below 1, uppercase #RRGGBB otherwise. The paint
// opacity overrides the color's own alpha.
func paintColor(opacity *float64, c figma.Color) string {
	alpha := 1.0
	switch {
	case opacity != nil:
		alpha = *opacity
	case c.A != nil:
		alpha = *c.A
	}
	if unit(alpha) < 1 {
		return rgba(c, alpha)
	}
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

// shadowColor always renders rgba, whatever the alpha.
func shadowColor(c *figma.Color) string {
	if c == nil {
		return shadowFallbackColor
	}
	alpha := 1.0
	if c.A != nil {
		alpha = *c.A
	}
	return rgba(*c, alpha)
}

func rgba(c figma.Color, alpha float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", channel(c.R), channel(c.G), channel(c.B), formatAlpha(alpha))
}

// channel maps a unit-interval component onto 0-255.
func channel(v float64) int {
	return int(math.Max(0, math.Min(255, math.Round(v*255))))
}

// unit clamps v to [0,1], folding negative zero.
func unit(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v > 0:
		return v
	default:
		return 0
	}
}

var (
	hundred = big.NewRat(100, 1)
	half    = big.NewRat(1, 2)
)

// formatAlpha clamps to [0,1], rounds the exact binary value to two
// decimals with halves going up, and prints the shortest form (0.5, 1).
func formatAlpha(a float64) string {
	r := new(big.Rat).SetFloat64(unit(a))
	r.Mul(r, hundred).Add(r, half)
	n := new(big.Int).Quo(r.Num(), r.Denom())
	return strconv.FormatFloat(float64(n.Int64())/100, 'f', -1, 64)
}
