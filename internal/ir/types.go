package ir

// Display is the container display mode.
type Display string

const (
	DisplayFlex Display = "flex"
	DisplayNone Display = "none"
)

// Direction is the main axis of a flex container.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// SizingMode is the categorical box-sizing mode of one axis.
type SizingMode string

const (
	SizingFixed SizingMode = "fixed" // literal size
	SizingHug   SizingMode = "hug"   // content-driven
	SizingFill  SizingMode = "fill"  // container-driven
)

// BorderStyle is the line style of a border.
type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderNone   BorderStyle = "none"
)

// Visibility of a node.
type Visibility string

const (
	Visible Visibility = "visible"
	Hidden  Visibility = "hidden"
)

// Document is the root of an IR tree.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Nodes    []Node   `json:"nodes"`
}

// Metadata describes how the numeric values of a document were produced.
// ScaleFactor is fixed for the whole document; it never varies per node.
type Metadata struct {
	Version     string  `json:"version"`
	ScaleFactor float64 `json:"scaleFactor"`
	Unit        string  `json:"unit"`
}

// Node is one element of the IR tree. A node exclusively owns its children.
type Node struct {
	Identity Identity `json:"identity"`
	Layout   Layout   `json:"layout"`
	Style    Style    `json:"style"`
	Content  Content  `json:"content"`
	Children []Node   `json:"children"`
}

// Identity carries the opaque identifiers copied from the source node.
// Type is an open design-tool tag (FRAME, TEXT, COMPONENT, ...), not validated.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Padding is a four-sided box.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Layout is a flex-like box model with raw and computed parallel fields.
// Enumerated fields have no computed counterpart.
type Layout struct {
	Display         Display    `json:"display"`
	Direction       Direction  `json:"direction"`
	Align           string     `json:"align"`
	Justify         string     `json:"justify"`
	WidthMode       SizingMode `json:"widthMode"`
	HeightMode      SizingMode `json:"heightMode"`
	Width           float64    `json:"width"`
	Height          float64    `json:"height"`
	ComputedWidth   float64    `json:"computedWidth"`
	ComputedHeight  float64    `json:"computedHeight"`
	Padding         Padding    `json:"padding"`
	ComputedPadding Padding    `json:"computedPadding"`
	Gap             float64    `json:"gap"`
	ComputedGap     float64    `json:"computedGap"`
}

// Corners holds per-corner radii in top-left, top-right, bottom-right,
// bottom-left order.
type Corners [4]float64

// Style holds the paint properties of a node.
type Style struct {
	BackgroundColor      string     `json:"backgroundColor"`
	BorderRadius         Corners    `json:"borderRadius"`
	ComputedBorderRadius Corners    `json:"computedBorderRadius"`
	Border               *Border    `json:"border"` // nil when the node has no qualifying stroke
	Shadows              []Shadow   `json:"shadows"`
	Opacity              float64    `json:"opacity"`
	Visibility           Visibility `json:"visibility"`
}

// Border is always whole: either every field is set or the border is absent.
type Border struct {
	Width         float64     `json:"width"`
	ComputedWidth float64     `json:"computedWidth"`
	Color         string      `json:"color"`
	Style         BorderStyle `json:"style"`
}

// Shadow is one drop shadow. Shadows keep source paint order.
type Shadow struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Blur         float64 `json:"blur"`
	ComputedX    float64 `json:"computedX"`
	ComputedY    float64 `json:"computedY"`
	ComputedBlur float64 `json:"computedBlur"`
	Color        string  `json:"color"`
}

// Content is the textual or iconic payload of a node.
// Typography is only ever set together with Text.
type Content struct {
	Text       *string     `json:"text,omitempty"`
	Typography *Typography `json:"typography,omitempty"`
	Icon       *string     `json:"icon,omitempty"`
}

// IsEmpty reports whether the content carries neither non-empty text nor an icon.
func (c Content) IsEmpty() bool {
	return !c.HasText() && !c.HasIcon()
}

// HasText reports whether the content carries non-empty text.
func (c Content) HasText() bool {
	return c.Text != nil && *c.Text != ""
}

// HasIcon reports whether the content carries an icon marker.
func (c Content) HasIcon() bool {
	return c.Icon != nil
}

// Typography describes text rendering. LineHeight is a unitless ratio and
// is never scaled.
type Typography struct {
	FontFamily            string  `json:"fontFamily"`
	FontSize              float64 `json:"fontSize"`
	ComputedFontSize      float64 `json:"computedFontSize"`
	FontWeight            float64 `json:"fontWeight"`
	LineHeight            float64 `json:"lineHeight"`
	LetterSpacing         float64 `json:"letterSpacing"`
	ComputedLetterSpacing float64 `json:"computedLetterSpacing"`
}
