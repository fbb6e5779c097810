package chunker

import (
	"math"

	"github.com/loredex/semchunk/pkg/types"
)

// ChunkTextHierarchical runs independent full-text passes at increasing
// target sizes and concatenates the results into one flat sequence. Level
// 0 is the configured size; each later level scales target and max by the
// configured multiplier. Chunks from levels above 0 are tagged as summary
// chunks.
//
// Every level receives its sizes as explicit parameters; nothing on the
// Chunker is mutated, so levels are safe to run while other goroutines
// chunk with the same instance.
func (c *Chunker) ChunkTextHierarchical(text string, metadata map[string]any) []types.Chunk {
	var all []types.Chunk
	for level := 0; level < c.opts.Levels; level++ {
		scale := math.Pow(c.opts.LevelSizeMultiplier, float64(level))
		target := int(float64(c.opts.TargetChunkSize) * scale)
		maxSize := int(float64(c.opts.MaxChunkSize) * scale)

		chunks := c.chunkAtSize(text, metadata, target, maxSize)
		for i := range chunks {
			chunks[i].Level = level
			chunks[i].Hierarchical = true
			chunks[i].Summary = level > 0
		}
		all = append(all, chunks...)
	}
	return all
}

// LevelSizes reports the effective (target, max) sizes per hierarchical
// level for the current configuration.
func (c *Chunker) LevelSizes() [][2]int {
	sizes := make([][2]int, c.opts.Levels)
	for level := 0; level < c.opts.Levels; level++ {
		scale := math.Pow(c.opts.LevelSizeMultiplier, float64(level))
		sizes[level] = [2]int{
			int(float64(c.opts.TargetChunkSize) * scale),
			int(float64(c.opts.MaxChunkSize) * scale),
		}
	}
	return sizes
}
