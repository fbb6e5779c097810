// Package pipeline coordinates chunking across document collections.
//
// A single document chunks synchronously; the pipeline's job is the
// collection level: a bounded worker pool (errgroup, sized to the CPU
// count), coarse progress callbacks, duplicate-document skipping, and
// extraction of text and identity from loose, schema-less documents.
//
//	p := pipeline.New(c, log.Logger)
//	chunks, err := p.ChunkCollection(ctx, docs, &pipeline.Config{
//	    Workers:      8,
//	    Hierarchical: true,
//	}, func(done, total int) {
//	    fmt.Printf("%d/%d\n", done, total)
//	})
//
// The progress callback is observability only. It fires from worker
// goroutines at a coarse interval with no ordering guarantee; nothing
// correctness-related may depend on it.
package pipeline
