package chunker

import (
	"crypto/md5"
	"fmt"
	"math"
	"strings"

	"github.com/loredex/semchunk/internal/boundary"
	"github.com/loredex/semchunk/pkg/types"
)

// Score weights: closeness to the target size dominates, boundary quality
// breaks the near-ties.
const (
	sizeWeight     = 0.7
	boundaryWeight = 0.3

	// fallbackBoundaryScore applies when no catalogue pattern sits near a
	// candidate end. Size scores are deliberately unclamped and can go
	// negative, so a plain-boundary candidate can still outrank a badly
	// sized one.
	fallbackBoundaryScore = 0.1

	// boundaryWindow is how far (in bytes, exclusive) a recorded boundary
	// may sit from a candidate end and still count for it.
	boundaryWindow = 3
)

// Chunker splits normalized text into size-bounded chunks at semantic
// boundaries. A Chunker holds only immutable configuration, so one
// instance may serve any number of goroutines concurrently.
type Chunker struct {
	opts Options
}

// New creates a Chunker. Zero-valued options take package defaults;
// contradictory options are rejected here, never mid-pass.
func New(opts Options) (*Chunker, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Chunker{opts: opts}, nil
}

// Options returns the effective configuration.
func (c *Chunker) Options() Options {
	return c.opts
}

// ChunkText splits text into chunks at the configured target size,
// copying metadata onto every chunk. Empty or whitespace-only input
// yields no chunks and no error.
func (c *Chunker) ChunkText(text string, metadata map[string]any) []types.Chunk {
	return c.chunkAtSize(text, metadata, c.opts.TargetChunkSize, c.opts.MaxChunkSize)
}

// span is a half-open [start, end) byte range in normalized text.
type span struct {
	start, end int
}

// chunkAtSize runs one full pass at an explicit target/max size. Sizes
// are parameters rather than mutable state so hierarchical passes can run
// concurrently over the same Chunker.
func (c *Chunker) chunkAtSize(text string, metadata map[string]any, target, maxSize int) []types.Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	text = boundary.Normalize(text)
	set := boundary.Detect(text)
	spans := c.buildSpans(text, set, target, maxSize)

	chunks := make([]types.Chunk, 0, len(spans))
	for i, sp := range spans {
		body := strings.TrimSpace(text[sp.start:sp.end])
		chunks = append(chunks, types.Chunk{
			ID:          chunkID(body, i),
			Text:        body,
			Index:       i,
			TotalChunks: len(spans),
			Metadata:    types.CloneMetadata(metadata),
		})
	}
	return chunks
}

// buildSpans drives the start -> end -> next-start iteration across the
// whole text. It guarantees strict forward progress on every iteration
// and stops once a span reaches the end of the text.
func (c *Chunker) buildSpans(text string, set *boundary.Set, target, maxSize int) []span {
	var spans []span

	start := 0
	for start < len(text) {
		end := c.findBestEnd(text, set, start, target, maxSize)

		if strings.TrimSpace(text[start:end]) != "" {
			spans = append(spans, span{start: start, end: end})
		}

		// The pass is complete once a span touches the end of the text;
		// looping again would only re-emit overlapping tails.
		if end >= len(text) {
			break
		}

		next := c.nextStart(set, start, end)
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return spans
}

// findBestEnd scores every candidate end offset after start and returns
// the winner.
//
// Candidates below the minimum size are skipped. Qualifying candidates
// get a combined score of size closeness and boundary strength; scanning
// stops as soon as a candidate reaches the maximum size, so later, larger
// candidates are never considered. Ties go to the earliest offset. When
// nothing qualifies, the next split point wins, capped at
// start+maxSize bytes.
func (c *Chunker) findBestEnd(text string, set *boundary.Set, start, target, maxSize int) int {
	ends := set.After(start)
	if len(ends) == 0 {
		return len(text)
	}

	bestEnd := -1
	bestScore := math.Inf(-1)
	for _, end := range ends {
		count := c.opts.Counter.Count(text[start:end])
		if count < c.opts.MinChunkSize {
			continue
		}

		// Unclamped on purpose: badly oversized candidates go negative
		// and lose to boundary-only scores.
		sizeScore := 1 - math.Abs(float64(count-target))/float64(target)
		score := sizeWeight*sizeScore + boundaryWeight*c.boundaryScore(set, end, len(text))

		if score > bestScore {
			bestScore = score
			bestEnd = end
		}
		if count >= maxSize {
			break
		}
	}

	if bestEnd < 0 {
		// Nothing reached the minimum size anywhere: fall back to the
		// next split point, or start+maxSize, whichever is smaller.
		next := ends[0]
		if limit := start + maxSize; limit < next {
			return limit
		}
		return next
	}
	return bestEnd
}

// boundaryScore rates how good a split position is. Document edges are
// perfect; otherwise the strongest catalogue pattern within the window
// decides, and positions with no nearby pattern get the small fallback.
func (c *Chunker) boundaryScore(set *boundary.Set, pos, textLen int) float64 {
	if pos <= 0 || pos >= textLen {
		return 1.0
	}
	if rank, ok := set.StrongestNear(pos, boundaryWindow); ok {
		return 1.0 - float64(rank)/float64(boundary.PatternCount)
	}
	return fallbackBoundaryScore
}

// nextStart computes where the following chunk begins, bounded by the
// configured overlap. Smart overlap snaps to the preferred boundary
// inside the overlap window; otherwise the window start is used as-is.
func (c *Chunker) nextStart(set *boundary.Set, start, end int) int {
	windowStart := end - c.opts.OverlapSize
	if windowStart < start {
		windowStart = start
	}

	if !c.opts.NoSmartOverlap {
		if off, ok := set.FirstInRange(windowStart, end); ok {
			return off
		}
		return windowStart
	}

	if next := end - c.opts.OverlapSize; next > start {
		return next
	}
	return start + 1
}

// chunkID derives a deterministic identifier from chunk content and
// position. No registry or counter is involved, so concurrent passes
// never contend.
func chunkID(text string, index int) string {
	sum := md5.Sum([]byte(text))
	return fmt.Sprintf("chunk_%d_%x", index, sum[:4])
}
