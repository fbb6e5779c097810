// Package types provides shared type definitions for the semchunk engine.
//
// This package defines the domain types exchanged between components:
// documents going in, chunks coming out.
//
// # Core Types
//
// Document is the raw chunking input:
//
//	doc := types.Document{
//	    Text:     pageText,
//	    Metadata: map[string]any{"source": "wiki", "title": "Verra"},
//	}
//
// Chunk is one retrievable indexing unit produced from a document:
//
//	chunk := types.Chunk{
//	    ID:          "chunk_0_a3f09b12",
//	    Text:        "The city of Verra sits on the western coast...",
//	    Index:       0,
//	    TotalChunks: 4,
//	}
//
// # Serialization
//
// Chunk marshals to a single flat JSON record: the chunk fields plus all
// passthrough metadata as top-level keys. This is the record format
// consumed by downstream indexing collaborators:
//
//	{"chunk_id":"chunk_0_a3f09b12","text":"...","chunk_index":0,
//	 "total_chunks":4,"source":"wiki","title":"Verra"}
//
// Hierarchical fields (level, is_hierarchical, is_summary) appear only on
// chunks produced by multi-resolution passes.
package types
