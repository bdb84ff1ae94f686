// Package serializer projects an IR document onto its compact serialized
// form: computed values take over the plain field names, raw values and the
// scale factor are dropped, and empty content is omitted.
//
// The projection never computes, defaults or validates. It reads the IR
// only and always returns a fresh tree.
package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/f2c/internal/ir"
)

// Serialize converts doc into a SerializedDocument. A nil document yields
// an empty document with the current version and unit.
func Serialize(doc *ir.Document) *ir.SerializedDocument {
	if doc == nil {
		return &ir.SerializedDocument{
			Metadata: ir.SerializedMetadata{Version: ir.Version, Unit: ir.UnitPx},
			Nodes:    []ir.SerializedNode{},
		}
	}
	return &ir.SerializedDocument{
		Metadata: ir.SerializedMetadata{
			Version: doc.Metadata.Version,
			Unit:    doc.Metadata.Unit,
		},
		Nodes: serializeNodes(doc.Nodes),
	}
}

// Marshal returns the indented JSON form handed to prompt builders.
func Marshal(doc *ir.Document) ([]byte, error) {
	data, err := json.MarshalIndent(Serialize(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializer: marshal: %w", err)
	}
	return data, nil
}

// MarshalCanonical returns the RFC 8785 form of the serialized document,
// suitable for hashing and byte-level comparison.
func MarshalCanonical(doc *ir.Document) ([]byte, error) {
	data, err := ir.MarshalCanonical(Serialize(doc))
	if err != nil {
		return nil, fmt.Errorf("serializer: canonical: %w", err)
	}
	return data, nil
}

func serializeNodes(nodes []ir.Node) []ir.SerializedNode {
	out := make([]ir.SerializedNode, 0, len(nodes))
	for i := range nodes {
		out = append(out, serializeNode(&nodes[i]))
	}
	return out
}

func serializeNode(n *ir.Node) ir.SerializedNode {
	return ir.SerializedNode{
		Identity: n.Identity,
		Layout:   serializeLayout(n.Layout),
		Style:    serializeStyle(n.Style),
		Content:  serializeContent(n.Content),
		Children: serializeNodes(n.Children),
	}
}

func serializeLayout(l ir.Layout) ir.SerializedLayout {
	return ir.SerializedLayout{
		Display:    l.Display,
		Direction:  l.Direction,
		Align:      l.Align,
		Justify:    l.Justify,
		WidthMode:  l.WidthMode,
		HeightMode: l.HeightMode,
		Width:      l.ComputedWidth,
		Height:     l.ComputedHeight,
		Padding:    l.ComputedPadding,
		Gap:        l.ComputedGap,
	}
}

func serializeStyle(s ir.Style) ir.SerializedStyle {
	out := ir.SerializedStyle{
		BackgroundColor: s.BackgroundColor,
		BorderRadius:    s.ComputedBorderRadius,
		Shadows:         make([]ir.SerializedShadow, 0, len(s.Shadows)),
		Opacity:         s.Opacity,
		Visibility:      s.Visibility,
	}
	if s.Border != nil {
		out.Border = &ir.SerializedBorder{
			Width: s.Border.ComputedWidth,
			Color: s.Border.Color,
			Style: s.Border.Style,
		}
	}
	for _, sh := range s.Shadows {
		out.Shadows = append(out.Shadows, ir.SerializedShadow{
			X:     sh.ComputedX,
			Y:     sh.ComputedY,
			Blur:  sh.ComputedBlur,
			Color: sh.Color,
		})
	}
	return out
}

// serializeContent returns nil for empty content so the field is omitted.
// Text and its typography travel together: empty text drops both.
func serializeContent(c ir.Content) *ir.SerializedContent {
	if c.IsEmpty() {
		return nil
	}
	out := &ir.SerializedContent{}
	if c.HasText() {
		out.Text = copyString(c.Text)
		if ty := c.Typography; ty != nil {
			out.Typography = &ir.SerializedTypography{
				FontFamily:    ty.FontFamily,
				FontSize:      ty.ComputedFontSize,
				FontWeight:    ty.FontWeight,
				LineHeight:    ty.LineHeight,
				LetterSpacing: ty.ComputedLetterSpacing,
			}
		}
	}
	if c.HasIcon() {
		out.Icon = copyString(c.Icon)
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
