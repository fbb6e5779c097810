package types

import (
	"encoding/json"
	"strings"
)

// Chunk represents a bounded span of document text emitted as one
// retrievable indexing unit. Chunks are produced fresh per chunking pass
// and are never mutated afterward; their identity is derived from content
// and position rather than a shared counter.
type Chunk struct {
	// Identification
	ID string // deterministic, derived from content + index

	// Content
	Text string

	// Position within one chunking pass
	Index       int // 0..TotalChunks-1
	TotalChunks int

	// Hierarchical tagging (set only by multi-resolution passes)
	Level        int
	Hierarchical bool
	Summary      bool

	// Passthrough metadata copied from the source document or field
	Metadata map[string]any
}

// MarshalJSON flattens the chunk into a single record: chunk fields plus
// passthrough metadata as top-level keys. Reserved chunk keys win over
// metadata keys of the same name.
func (c Chunk) MarshalJSON() ([]byte, error) {
	rec := make(map[string]any, len(c.Metadata)+7)
	for k, v := range c.Metadata {
		rec[k] = v
	}
	rec["chunk_id"] = c.ID
	rec["text"] = c.Text
	rec["chunk_index"] = c.Index
	rec["total_chunks"] = c.TotalChunks
	if c.Hierarchical {
		rec["level"] = c.Level
		rec["is_hierarchical"] = true
		if c.Summary {
			rec["is_summary"] = true
		}
	}
	return json.Marshal(rec)
}

// Validate checks the chunk invariants that hold for every chunk of a
// well-formed chunking pass.
func (c *Chunk) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return ErrEmptyText
	}
	if c.ID == "" {
		return ErrMissingID
	}
	if c.TotalChunks <= 0 {
		return ErrInvalidChunkCount
	}
	if c.Index < 0 || c.Index >= c.TotalChunks {
		return ErrIndexOutOfRange
	}
	return nil
}
