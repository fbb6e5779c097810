package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// Loose documents arrive from scrapers and extractors with no fixed
// schema. These helpers probe the common field spellings.

// DocumentSource extracts the source of a loose document.
func DocumentSource(doc map[string]any) string {
	if s, ok := doc["source"].(string); ok {
		return s
	}
	if m, ok := doc["metadata"].(map[string]any); ok {
		if s, ok := m["source"].(string); ok {
			return s
		}
	}
	if s, ok := doc["url"].(string); ok {
		return s
	}
	return "unknown"
}

// DocumentType extracts the document type, defaulting to "general".
func DocumentType(doc map[string]any) string {
	if s, ok := doc["type"].(string); ok {
		return s
	}
	if m, ok := doc["metadata"].(map[string]any); ok {
		if s, ok := m["type"].(string); ok {
			return s
		}
	}
	if s, ok := doc["content_type"].(string); ok {
		return s
	}
	return "general"
}

// DocumentServer extracts the server context, if the document has one.
func DocumentServer(doc map[string]any) (string, bool) {
	if s, ok := doc["server"].(string); ok {
		return s, true
	}
	if m, ok := doc["metadata"].(map[string]any); ok {
		if s, ok := m["server"].(string); ok {
			return s, true
		}
	}
	return "", false
}

// bodyFields are probed in order for the document's main text.
var bodyFields = []string{"text", "content", "description", "body"}

// skipInSynthesis are fields never folded into synthesized text.
var skipInSynthesis = map[string]bool{
	"name": true, "title": true, "description": true,
	"id": true, "metadata": true, "type": true, "source": true, "server": true,
}

// ExtractText pulls the text content out of a loose document. When no
// body field exists, a "Key: value" rendition of the document's string
// properties is synthesized so the record still indexes. Returns "" when
// there is nothing textual at all.
func ExtractText(doc map[string]any) string {
	for _, field := range bodyFields {
		if s, ok := doc[field].(string); ok && s != "" {
			return s
		}
	}

	var parts []string
	if name, ok := doc["name"].(string); ok && name != "" {
		parts = append(parts, "Name: "+name)
	}
	if title, ok := doc["title"].(string); ok && title != "" {
		parts = append(parts, "Title: "+title)
	}

	// Remaining string properties, in stable order.
	keys := make([]string, 0, len(doc))
	for k := range doc {
		if !skipInSynthesis[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := doc[k].(string); ok && s != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", capitalize(k), s))
		}
	}

	return strings.Join(parts, "\n\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
