// Package walker extracts chunkable text from structured documents.
//
// Game-data records and other structured inputs arrive as nested trees of
// maps, arrays, and scalars. The walker resolves a configured set of
// field paths inside such a tree, runs each extracted text through the
// chunking pipeline, and tags the resulting chunks with where in the
// document they came from (doc_id, doc_type, field_path, array_index,
// item_id).
//
// Three kinds of paths are supported:
//
//   - top-level text fields: "description"
//   - dotted nested paths with subscripts: "details.lore", "sections[2].body"
//   - array fields whose elements are chunked individually: "effects"
//
// Unresolvable paths are silently skipped; a structured document missing
// half its fields still yields chunks for the other half.
package walker
