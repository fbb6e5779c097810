package pipeline

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/loredex/semchunk/internal/chunker"
	"github.com/loredex/semchunk/pkg/types"
)

// Pipeline drives chunking across whole document collections. Chunking a
// single document is synchronous and CPU-bound, which makes the
// collection level embarrassingly parallel: a bounded worker pool with no
// locking around the chunker itself.
type Pipeline struct {
	chunker *chunker.Chunker
	log     zerolog.Logger
}

// Config controls one collection run.
type Config struct {
	// Workers bounds the pool; defaults to runtime.NumCPU().
	Workers int
	// Hierarchical switches each document to multi-resolution passes.
	Hierarchical bool
	// ProgressInterval is how many completed documents pass between
	// progress callbacks (default 10). The callback is observability
	// only: it may fire from any worker and carries no ordering
	// guarantee.
	ProgressInterval int
}

// ProgressFunc receives coarse progress updates: documents done so far
// and the collection total.
type ProgressFunc func(done, total int)

// New creates a Pipeline. The logger may be zerolog.Nop() for silent use.
func New(c *chunker.Chunker, log zerolog.Logger) *Pipeline {
	return &Pipeline{chunker: c, log: log}
}

// ChunkDocument extracts the named text fields from a loose document and
// chunks each, carrying the requested metadata fields plus a
// source_field marker.
func (p *Pipeline) ChunkDocument(doc map[string]any, textFields, metadataFields []string) []types.Chunk {
	meta := make(map[string]any, len(metadataFields))
	for _, field := range metadataFields {
		if v, ok := doc[field]; ok {
			meta[field] = v
		}
	}

	var all []types.Chunk
	for _, field := range textFields {
		text, ok := doc[field].(string)
		if !ok || text == "" {
			continue
		}
		fieldMeta := types.CloneMetadata(meta)
		if fieldMeta == nil {
			fieldMeta = make(map[string]any, 1)
		}
		fieldMeta["source_field"] = field
		all = append(all, p.chunker.ChunkText(text, fieldMeta)...)
	}
	return all
}

// ChunkCollection chunks every document concurrently and returns all
// chunks in document order. Per-document chunk lists keep their own
// 0..N-1 indexes; the collection imposes no cross-document numbering.
func (p *Pipeline) ChunkCollection(ctx context.Context, docs []types.Document, cfg *Config, progress ProgressFunc) ([]types.Chunk, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = 10
	}

	runID := uuid.NewString()
	started := time.Now()
	p.log.Info().
		Str("run_id", runID).
		Int("documents", len(docs)).
		Int("workers", workers).
		Bool("hierarchical", cfg.Hierarchical).
		Msg("chunking collection")

	results := make([][]types.Chunk, len(docs))
	var done int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range docs {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			doc := docs[i]
			if cfg.Hierarchical {
				results[i] = p.chunker.ChunkTextHierarchical(doc.Text, doc.Metadata)
			} else {
				results[i] = p.chunker.ChunkText(doc.Text, doc.Metadata)
			}

			if n := atomic.AddInt32(&done, 1); progress != nil && int(n)%interval == 0 {
				progress(int(n), len(docs))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.Chunk
	for _, chunks := range results {
		all = append(all, chunks...)
	}
	if progress != nil {
		progress(len(docs), len(docs))
	}

	p.log.Info().
		Str("run_id", runID).
		Int("chunks", len(all)).
		Dur("elapsed", time.Since(started)).
		Msg("collection chunked")
	return all, nil
}

// ChunkRawCollection accepts loose map-shaped documents as scraped or
// extracted upstream: it pulls out text and identity, skips duplicate
// document IDs within the run, and chunks the remainder concurrently.
func (p *Pipeline) ChunkRawCollection(ctx context.Context, raw []map[string]any, cfg *Config, progress ProgressFunc) ([]types.Chunk, error) {
	registry := NewRegistry()
	docs := make([]types.Document, 0, len(raw))

	for _, rd := range raw {
		text := ExtractText(rd)
		if text == "" {
			continue
		}

		docType := DocumentType(rd)
		if id, ok := rd["id"].(string); ok && id != "" {
			if !registry.Observe(docType, id) {
				p.log.Debug().Str("doc_id", id).Str("doc_type", docType).Msg("skipping duplicate document")
				continue
			}
		}

		meta := buildMetadata(rd)
		docs = append(docs, types.Document{Text: text, Metadata: meta})
	}

	return p.ChunkCollection(ctx, docs, cfg, progress)
}

// buildMetadata assembles chunk metadata from a loose document: its own
// metadata map, its document ID, and every scalar top-level property.
func buildMetadata(doc map[string]any) map[string]any {
	meta := make(map[string]any)
	if m, ok := doc["metadata"].(map[string]any); ok {
		for k, v := range m {
			meta[k] = v
		}
	}
	if id, ok := doc["id"]; ok {
		meta["document_id"] = id
	}
	for k, v := range doc {
		if k == "text" || k == "content" || k == "metadata" {
			continue
		}
		switch v.(type) {
		case string, int, int64, float64, bool:
			meta[k] = v
		}
	}

	meta["source"] = DocumentSource(doc)
	meta["type"] = DocumentType(doc)
	if server, ok := DocumentServer(doc); ok {
		meta["server"] = server
	}
	return meta
}
