package types

// Document is an immutable chunking input: the raw text plus arbitrary
// metadata copied onto every chunk produced from it.
type Document struct {
	Text     string
	Metadata map[string]any
}

// CloneMetadata returns an independent shallow copy of a metadata map.
// Chunks must not share a mutable map with their source document or with
// each other.
func CloneMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
