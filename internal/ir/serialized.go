package ir

// SerializedDocument is the compact form handed to downstream consumers.
// Every numeric value is already scaled, so the scale factor is not carried.
type SerializedDocument struct {
	Metadata SerializedMetadata `json:"metadata"`
	Nodes    []SerializedNode   `json:"nodes"`
}

// SerializedMetadata is Metadata without the scale factor.
type SerializedMetadata struct {
	Version string `json:"version"`
	Unit    string `json:"unit"`
}

// SerializedNode mirrors Node with computed values promoted to plain names.
// Content is nil (and omitted from JSON) when the IR content was empty.
type SerializedNode struct {
	Identity Identity           `json:"identity"`
	Layout   SerializedLayout   `json:"layout"`
	Style    SerializedStyle    `json:"style"`
	Content  *SerializedContent `json:"content,omitempty"`
	Children []SerializedNode   `json:"children"`
}

// SerializedLayout holds computed sizes under the plain names.
type SerializedLayout struct {
	Display    Display    `json:"display"`
	Direction  Direction  `json:"direction"`
	Align      string     `json:"align"`
	Justify    string     `json:"justify"`
	WidthMode  SizingMode `json:"widthMode"`
	HeightMode SizingMode `json:"heightMode"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Padding    Padding    `json:"padding"`
	Gap        float64    `json:"gap"`
}

// SerializedStyle holds computed radii, border width and shadow offsets.
type SerializedStyle struct {
	BackgroundColor string             `json:"backgroundColor"`
	BorderRadius    Corners            `json:"borderRadius"`
	Border          *SerializedBorder  `json:"border"`
	Shadows         []SerializedShadow `json:"shadows"`
	Opacity         float64            `json:"opacity"`
	Visibility      Visibility         `json:"visibility"`
}

// SerializedBorder is Border with the computed width.
type SerializedBorder struct {
	Width float64     `json:"width"`
	Color string      `json:"color"`
	Style BorderStyle `json:"style"`
}

// SerializedShadow is Shadow with computed offsets and blur.
type SerializedShadow struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Blur  float64 `json:"blur"`
	Color string  `json:"color"`
}

// SerializedContent is only present for nodes with text or an icon.
type SerializedContent struct {
	Text       *string               `json:"text,omitempty"`
	Typography *SerializedTypography `json:"typography,omitempty"`
	Icon       *string               `json:"icon,omitempty"`
}

// SerializedTypography is Typography with computed font size and letter spacing.
type SerializedTypography struct {
	FontFamily    string  `json:"fontFamily"`
	FontSize      float64 `json:"fontSize"`
	FontWeight    float64 `json:"fontWeight"`
	LineHeight    float64 `json:"lineHeight"`
	LetterSpacing float64 `json:"letterSpacing"`
}
