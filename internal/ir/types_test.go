package ir

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// sampleDocument returns a two-node document shared by the package tests.
func sampleDocument() *Document {
	return &Document{
		Metadata: Metadata{Version: Version, ScaleFactor: 4, Unit: UnitPx},
		Nodes: []Node{
			{
				Identity: Identity{ID: "1:100", Name: "Button", Type: "COMPONENT"},
				Layout: Layout{
					Display: DisplayFlex, Direction: DirectionHorizontal,
					Align: "center", Justify: "center",
					WidthMode: SizingHug, HeightMode: SizingFixed,
					Width: 120, Height: 40, ComputedWidth: 480, ComputedHeight: 160,
				},
				Style: Style{
					BackgroundColor: "#3B82F6",
					Shadows:         []Shadow{},
					Opacity:         1,
					Visibility:      Visible,
				},
				Children: []Node{
					{
						Identity: Identity{ID: "1:101", Name: "Label", Type: "TEXT"},
						Style:    Style{BackgroundColor: "transparent", Shadows: []Shadow{}, Opacity: 1, Visibility: Visible},
						Content:  Content{Text: ptr("Submit")},
						Children: []Node{},
					},
				},
			},
		},
	}
}

func TestContentIsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		empty   bool
	}{
		{"zero value", Content{}, true},
		{"empty text", Content{Text: ptr("")}, true},
		{"text", Content{Text: ptr("Hi")}, false},
		{"empty icon name still counts", Content{Icon: ptr("")}, false},
		{"icon", Content{Icon: ptr("icon_close")}, false},
		{"typography alone", Content{Typography: &Typography{FontFamily: "Inter"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.content.IsEmpty())
		})
	}
}

func TestNodeJSONShape(t *testing.T) {
	node := sampleDocument().Nodes[0]

	data, err := json.Marshal(node)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))

	style := generic["style"].(map[string]any)
	assert.Nil(t, style["border"], "absent border encodes as null")
	assert.Contains(t, style, "border")
	assert.Equal(t, []any{}, style["shadows"])
	assert.Equal(t, []any{0.0, 0.0, 0.0, 0.0}, style["computedBorderRadius"])
	assert.Equal(t, map[string]any{}, generic["content"], "empty IR content encodes as {}")

	layout := generic["layout"].(map[string]any)
	assert.Equal(t, 480.0, layout["computedWidth"])
	assert.Equal(t, "horizontal", layout["direction"])
}

func TestSerializedNodeOmitsEmptyContent(t *testing.T) {
	node := SerializedNode{Children: []SerializedNode{}}
	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"content"`)

	node.Content = &SerializedContent{Icon: ptr("icon_x")}
	data, err = json.Marshal(node)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"content":{"icon":"icon_x"}`)
}
