package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentSource(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want string
	}{
		{"direct", map[string]any{"source": "wiki"}, "wiki"},
		{"from metadata", map[string]any{"metadata": map[string]any{"source": "forum"}}, "forum"},
		{"url fallback", map[string]any{"url": "https://example.com/p/1"}, "https://example.com/p/1"},
		{"direct wins", map[string]any{"source": "wiki", "url": "https://x"}, "wiki"},
		{"none", map[string]any{}, "unknown"},
		{"non-string ignored", map[string]any{"source": 7}, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentSource(tt.doc))
		})
	}
}

func TestDocumentType(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want string
	}{
		{"direct", map[string]any{"type": "item"}, "item"},
		{"from metadata", map[string]any{"metadata": map[string]any{"type": "zone"}}, "zone"},
		{"content_type fallback", map[string]any{"content_type": "guide"}, "guide"},
		{"none", map[string]any{}, "general"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentType(tt.doc))
		})
	}
}

func TestDocumentServer(t *testing.T) {
	s, ok := DocumentServer(map[string]any{"server": "eu-1"})
	assert.True(t, ok)
	assert.Equal(t, "eu-1", s)

	s, ok = DocumentServer(map[string]any{"metadata": map[string]any{"server": "us-2"}})
	assert.True(t, ok)
	assert.Equal(t, "us-2", s)

	_, ok = DocumentServer(map[string]any{})
	assert.False(t, ok)
}

func TestExtractTextBodyFields(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want string
	}{
		{"text", map[string]any{"text": "body text"}, "body text"},
		{"content", map[string]any{"content": "content text"}, "content text"},
		{"description", map[string]any{"description": "desc text"}, "desc text"},
		{"body", map[string]any{"body": "plain body"}, "plain body"},
		{"text wins over body", map[string]any{"text": "a", "body": "b"}, "a"},
		{"empty text falls through", map[string]any{"text": "", "body": "b"}, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractText(tt.doc))
		})
	}
}

func TestExtractTextSynthesized(t *testing.T) {
	doc := map[string]any{
		"id":       "npc_9",
		"type":     "npc",
		"name":     "Old Ferryman",
		"title":    "Keeper of the Crossing",
		"location": "river gate",
		"dialogue": "The water remembers.",
		"level":    12,
	}
	got := ExtractText(doc)
	want := "Name: Old Ferryman\n\n" +
		"Title: Keeper of the Crossing\n\n" +
		"Dialogue: The water remembers.\n\n" +
		"Location: river gate"
	assert.Equal(t, want, got)
}

func TestExtractTextNothingTextual(t *testing.T) {
	assert.Empty(t, ExtractText(map[string]any{"id": "x", "count": 3}))
	assert.Empty(t, ExtractText(map[string]any{}))
}
