package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentHashDeterminism(t *testing.T) {
	doc := sampleDocument()

	h1, err := DocumentHash(doc)
	require.NoError(t, err)
	h2, err := DocumentHash(sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, h1, h2, "DocumentHash must be deterministic")
	assert.Len(t, h1, 64, "SHA-256 hex is 64 characters")
}

func TestDocumentHashChangesWithContent(t *testing.T) {
	a := sampleDocument()
	b := sampleDocument()
	b.Nodes[0].Layout.ComputedWidth++

	ha, err := DocumentHash(a)
	require.NoError(t, err)
	hb, err := DocumentHash(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestDomainSeparation(t *testing.T) {
	v := map[string]any{"a": 1}

	h1, err := ContentHash(DomainDocument, v)
	require.NoError(t, err)
	h2, err := ContentHash(DomainSerialized, v)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "same payload under different domains must not collide")
}

func TestInputKey(t *testing.T) {
	raw := map[string]any{"id": "1:1", "type": "FRAME"}

	base := MustInputKey(raw, 4, 512)
	assert.Equal(t, base, MustInputKey(map[string]any{"type": "FRAME", "id": "1:1"}, 4, 512),
		"key order in the input must not matter")
	assert.NotEqual(t, base, MustInputKey(raw, 2, 512), "scale factor is part of the key")
	assert.NotEqual(t, base, MustInputKey(raw, 4, 0), "max depth is part of the key")
}
