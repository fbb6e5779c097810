// Package chunker divides document text into size-bounded semantic chunks
// for embedding and retrieval.
//
// The chunker normalizes its input, collects candidate split offsets from
// the boundary catalogue, and then scores candidate chunk ends by how
// close they land to the target token size and how strong the boundary at
// that position is. Adjacent chunks share a bounded overlap so context
// survives a split.
//
// # Basic Usage
//
//	c, err := chunker.New(chunker.Options{
//	    TargetChunkSize: 512,
//	    OverlapSize:     50,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chunks := c.ChunkText(pageText, map[string]any{"source": "wiki"})
//	for _, chunk := range chunks {
//	    fmt.Printf("%s [%d/%d]: %d bytes\n",
//	        chunk.ID, chunk.Index+1, chunk.TotalChunks, len(chunk.Text))
//	}
//
// # Scoring
//
// Each candidate end gets combined = 0.7*size + 0.3*boundary. The size
// term is 1 - |tokens-target|/target and is intentionally not clamped:
// a grossly oversized candidate scores negative and loses even to the
// 0.1 boundary-only fallback. Scanning stops at the first candidate that
// reaches the maximum size.
//
// # Hierarchical Passes
//
// ChunkTextHierarchical repeats the full pass at growing target sizes
// (multiplier 2.5 per level by default) and tags each chunk with its
// level. The passes share no mutable state: sizes travel as explicit
// arguments, so levels and callers may run concurrently on one Chunker.
//
// # Determinism
//
// Chunk IDs are derived from content and index (chunk_<n>_<md5 prefix>).
// Re-chunking the same text with the same options reproduces the same
// IDs; re-chunking with different options replaces the whole list.
package chunker
