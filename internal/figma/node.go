package figma

// Node is one design-tool node. Nil pointers mean the field was absent or
// held a value of the wrong type.
type Node struct {
	ID   *string
	Name *string
	Type *string

	// LayoutMode is the auto-layout mode string (HORIZONTAL, VERTICAL, ...).
	// AutoLayout records whether the raw layoutMode value was truthy, which
	// is what decides flex display even for non-string values.
	LayoutMode *string
	AutoLayout bool

	PrimaryAxisAlignItems  *string
	CounterAxisAlignItems  *string
	LayoutSizingHorizontal *string
	LayoutSizingVertical   *string

	AbsoluteBoundingBox *Rect
	Size                *Vector

	PaddingTop    *float64
	PaddingRight  *float64
	PaddingBottom *float64
	PaddingLeft   *float64
	ItemSpacing   *float64

	CornerRadius *float64
	// RectangleCornerRadii is set only when the source exposes exactly four
	// numeric per-corner radii (top-left, top-right, bottom-right, bottom-left).
	RectangleCornerRadii *[4]float64

	Fills        []Paint
	Strokes      []Paint
	StrokeWeight *float64
	Effects      []Effect

	Opacity *float64
	Visible *bool

	Characters *string
	Style      *TypeStyle

	// ComponentIcon is the truthiness of componentProperties.icon.
	ComponentIcon bool

	// RawChildren holds the undecoded children in source order.
	RawChildren []any
}

// Rect is a bounding box; only its size is used.
type Rect struct {
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
}

// Vector is a 2D vector (size or shadow offset).
type Vector struct {
	X *float64
	Y *float64
}

// Paint is one fill or stroke entry.
type Paint struct {
	Type    *string
	Visible *bool
	Opacity *float64
	Color   *Color
}

// Color is a unit-interval RGB color with optional alpha. Missing channels
// decode as 0.
type Color struct {
	R, G, B float64
	A       *float64
}

// Effect is one entry of the effects list (shadows, blurs).
type Effect struct {
	Type    *string
	Visible *bool
	Offset  *Vector
	Radius  *float64
	Color   *Color
}

// TypeStyle is the text style sub-object of a TEXT node.
type TypeStyle struct {
	FontFamily                *string
	FontSize                  *float64
	FontWeight                *float64
	LineHeightPercentFontSize *float64
	LineHeight                *float64
	LetterSpacing             *float64
}

// Hidden reports whether the visible flag is explicitly false. Any other
// value, including absent, means visible.
func (n Node) Hidden() bool {
	return isFalse(n.Visible)
}

// Shown reports whether a paint is not explicitly hidden.
func (p Paint) Shown() bool {
	return !isFalse(p.Visible)
}

// Shown reports whether an effect is not explicitly hidden.
func (e Effect) Shown() bool {
	return !isFalse(e.Visible)
}

// IsType reports whether the entry has the given type tag.
func (p Paint) IsType(t string) bool {
	return p.Type != nil && *p.Type == t
}

// IsType reports whether the effect has the given type tag.
func (e Effect) IsType(t string) bool {
	return e.Type != nil && *e.Type == t
}

func isFalse(b *bool) bool {
	return b != nil && !*b
}

// Paint and effect type tags used by the parser.
const (
	PaintSolid       = "SOLID"
	EffectDropShadow = "DROP_SHADOW"
	TypeText         = "TEXT"
)
