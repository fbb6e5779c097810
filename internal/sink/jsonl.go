// Package sink persists intermediate chunk output for downstream
// indexing collaborators: line-oriented JSON, per-type grouped files,
// and an optional SQLite store.
package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/loredex/semchunk/pkg/types"
)

// WriteJSONL writes one flat JSON record per chunk per line.
func WriteJSONL(w io.Writer, chunks []types.Chunk) error {
	enc := json.NewEncoder(w)
	for _, chunk := range chunks {
		if err := enc.Encode(chunk); err != nil {
			return fmt.Errorf("failed to encode chunk %s: %w", chunk.ID, err)
		}
	}
	return nil
}

// WriteGrouped writes chunks to dir as one JSON array per document type
// ({type}_chunks.json) plus a combined all_chunks.json. The type comes
// from each chunk's "type" metadata, defaulting to "general".
func WriteGrouped(dir string, chunks []types.Chunk) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	byType := make(map[string][]types.Chunk)
	for _, chunk := range chunks {
		docType := "general"
		if t, ok := chunk.Metadata["type"].(string); ok && t != "" {
			docType = t
		}
		byType[docType] = append(byType[docType], chunk)
	}

	for docType, group := range byType {
		path := filepath.Join(dir, docType+"_chunks.json")
		if err := writeJSONFile(path, group); err != nil {
			return err
		}
	}
	return writeJSONFile(filepath.Join(dir, "all_chunks.json"), chunks)
}

func writeJSONFile(path string, chunks []types.Chunk) error {
	data, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal chunks: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
