package walker

import (
	"fmt"

	"github.com/loredex/semchunk/internal/chunker"
	"github.com/loredex/semchunk/pkg/types"
)

// passthroughFields are the structured-document fields copied onto chunk
// metadata when present at the top level.
var passthroughFields = []string{"name", "title", "created_at", "updated_at", "author"}

// FieldSpec names which parts of a structured document carry chunkable
// text.
type FieldSpec struct {
	// TextFields are top-level fields chunked directly. They double as
	// the probe list for object elements inside array fields.
	TextFields []string
	// NestedTextFields are dotted paths, with optional [index] array
	// subscripts, e.g. "details.lore" or "sections[2].body".
	NestedTextFields []string
	// ArrayFields are paths to arrays whose elements are chunked one by
	// one.
	ArrayFields []string
}

// Walker resolves field paths inside structured documents and feeds the
// extracted text through a Chunker, attaching path-derived metadata.
type Walker struct {
	chunker *chunker.Chunker
}

// New creates a Walker around an existing Chunker.
func New(c *chunker.Chunker) *Walker {
	return &Walker{chunker: c}
}

// ChunkDocument walks one structured document. Paths that do not resolve
// produce no chunks and no error; the walk continues with the remaining
// fields. The result is the union of every per-field chunk list.
func (w *Walker) ChunkDocument(doc map[string]any, spec FieldSpec) []types.Chunk {
	var all []types.Chunk

	for _, field := range spec.TextFields {
		text, ok := doc[field].(string)
		if !ok || text == "" {
			continue
		}
		meta := w.baseMetadata(doc, field)
		for _, mf := range passthroughFields {
			if v, ok := doc[mf]; ok {
				meta[mf] = v
			}
		}
		all = append(all, w.chunker.ChunkText(text, meta)...)
	}

	for _, path := range spec.NestedTextFields {
		value, ok := Resolve(doc, path)
		if !ok {
			continue
		}
		text, ok := value.(string)
		if !ok || text == "" {
			continue
		}
		all = append(all, w.chunker.ChunkText(text, w.baseMetadata(doc, path))...)
	}

	for _, field := range spec.ArrayFields {
		all = append(all, w.chunkArrayField(doc, field, spec.TextFields)...)
	}

	return all
}

// chunkArrayField iterates one array field. Bare string elements are
// chunked directly; object elements are probed against the text-field
// list and chunked per matching subfield.
func (w *Walker) chunkArrayField(doc map[string]any, field string, textFields []string) []types.Chunk {
	value, ok := Resolve(doc, field)
	if !ok {
		return nil
	}
	arr, ok := value.([]any)
	if !ok {
		return nil
	}

	var all []types.Chunk
	for i, item := range arr {
		itemPath := fmt.Sprintf("%s[%d]", field, i)

		switch elem := item.(type) {
		case string:
			if elem == "" {
				continue
			}
			meta := w.baseMetadata(doc, itemPath)
			meta["array_index"] = i
			all = append(all, w.chunker.ChunkText(elem, meta)...)

		case map[string]any:
			for _, sub := range textFields {
				text, ok := elem[sub].(string)
				if !ok || text == "" {
					continue
				}
				meta := w.baseMetadata(doc, itemPath+"."+sub)
				meta["array_index"] = i
				if id, ok := elem["id"]; ok {
					meta["item_id"] = id
				}
				all = append(all, w.chunker.ChunkText(text, meta)...)
			}
		}
	}
	return all
}

// baseMetadata builds the metadata every structured chunk carries:
// document identity plus the field path it was cut from.
func (w *Walker) baseMetadata(doc map[string]any, fieldPath string) map[string]any {
	docID, ok := doc["id"]
	if !ok {
		docID = "unknown"
	}
	docType, ok := doc["type"]
	if !ok {
		docType = "unknown"
	}
	return map[string]any{
		"doc_id":     docID,
		"doc_type":   docType,
		"field_path": fieldPath,
	}
}
