package figma

// Decode maps one JSON-like value onto a Node. A non-object value decodes
// to the zero Node, so every field falls back to its default downstream.
func Decode(v any) Node {
	obj, ok := Object(v)
	if !ok {
		return Node{}
	}

	n := Node{
		ID:   optString(obj, "id"),
		Name: optString(obj, "name"),
		Type: optString(obj, "type"),

		LayoutMode: optString(obj, "layoutMode"),
		AutoLayout: Truthy(obj["layoutMode"]),

		PrimaryAxisAlignItems:  optString(obj, "primaryAxisAlignItems"),
		CounterAxisAlignItems:  optString(obj, "counterAxisAlignItems"),
		LayoutSizingHorizontal: optString(obj, "layoutSizingHorizontal"),
		LayoutSizingVertical:   optString(obj, "layoutSizingVertical"),

		PaddingTop:    optNumber(obj, "paddingTop"),
		PaddingRight:  optNumber(obj, "paddingRight"),
		PaddingBottom: optNumber(obj, "paddingBottom"),
		PaddingLeft:   optNumber(obj, "paddingLeft"),
		ItemSpacing:   optNumber(obj, "itemSpacing"),

		CornerRadius:         optNumber(obj, "cornerRadius"),
		RectangleCornerRadii: decodeCorners(obj["rectangleCornerRadii"]),

		Fills:        decodePaints(obj["fills"]),
		Strokes:      decodePaints(obj["strokes"]),
		StrokeWeight: optNumber(obj, "strokeWeight"),
		Effects:      decodeEffects(obj["effects"]),

		Opacity: optNumber(obj, "opacity"),
		Visible: optBool(obj, "visible"),

		Characters: optString(obj, "characters"),
	}

	if box, ok := optObject(obj, "absoluteBoundingBox"); ok {
		n.AbsoluteBoundingBox = &Rect{
			X:      optNumber(box, "x"),
			Y:      optNumber(box, "y"),
			Width:  optNumber(box, "width"),
			Height: optNumber(box, "height"),
		}
	}
	if size, ok := optObject(obj, "size"); ok {
		n.Size = decodeVector(size)
	}
	if style, ok := optObject(obj, "style"); ok {
		n.Style = &TypeStyle{
			FontFamily:                optString(style, "fontFamily"),
			FontSize:                  optNumber(style, "fontSize"),
			FontWeight:                optNumber(style, "fontWeight"),
			LineHeightPercentFontSize: optNumber(style, "lineHeightPercentFontSize"),
			LineHeight:                optNumber(style, "lineHeight"),
			LetterSpacing:             optNumber(style, "letterSpacing"),
		}
	}
	if props, ok := optObject(obj, "componentProperties"); ok {
		n.ComponentIcon = Truthy(props["icon"])
	}
	if children, ok := Array(obj["children"]); ok {
		n.RawChildren = children
	}

	return n
}

func decodeVector(obj map[string]any) *Vector {
	return &Vector{X: optNumber(obj, "x"), Y: optNumber(obj, "y")}
}

func decodeColor(v any) *Color {
	obj, ok := Object(v)
	if !ok {
		return nil
	}
	c := &Color{A: optNumber(obj, "a")}
	c.R, _ = Number(obj["r"])
	c.G, _ = Number(obj["g"])
	c.B, _ = Number(obj["b"])
	return c
}

func decodeCorners(v any) *[4]float64 {
	arr, ok := Array(v)
	if !ok || len(arr) != 4 {
		return nil
	}
	var corners [4]float64
	for i, elem := range arr {
		n, ok := Number(elem)
		if !ok {
			return nil
		}
		corners[i] = n
	}
	return &corners
}

// decodePaints keeps source order. Non-object entries are dropped; they can
// never match a paint type anyway.
func decodePaints(v any) []Paint {
	arr, ok := Array(v)
	if !ok {
		return nil
	}
	paints := make([]Paint, 0, len(arr))
	for _, elem := range arr {
		obj, ok := Object(elem)
		if !ok {
			continue
		}
		paints = append(paints, Paint{
			Type:    optString(obj, "type"),
			Visible: optBool(obj, "visible"),
			Opacity: optNumber(obj, "opacity"),
			Color:   decodeColor(obj["color"]),
		})
	}
	return paints
}

func decodeEffects(v any) []Effect {
	arr, ok := Array(v)
	if !ok {
		return nil
	}
	effects := make([]Effect, 0, len(arr))
	for _, elem := range arr {
		obj, ok := Object(elem)
		if !ok {
			continue
		}
		e := Effect{
			Type:    optString(obj, "type"),
			Visible: optBool(obj, "visible"),
			Radius:  optNumber(obj, "radius"),
			Color:   decodeColor(obj["color"]),
		}
		if offset, ok := optObject(obj, "offset"); ok {
			e.Offset = decodeVector(offset)
		}
		effects = append(effects, e)
	}
	return effects
}
