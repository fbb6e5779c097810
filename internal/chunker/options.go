package chunker

import (
	"errors"
	"fmt"

	"github.com/loredex/semchunk/internal/tokens"
)

// Default sizing, in tokens.
const (
	DefaultTargetChunkSize = 512
	DefaultMinChunkSize    = 128
	DefaultMaxChunkSize    = 1024
	DefaultOverlapSize     = 50

	DefaultLevels              = 3
	DefaultLevelSizeMultiplier = 2.5
)

// Options configures a Chunker. Zero-valued fields fall back to the
// package defaults; Validate rejects contradictory combinations before
// any chunking pass runs.
type Options struct {
	TargetChunkSize int // preferred chunk size in tokens
	MinChunkSize    int // candidates below this are not scored
	MaxChunkSize    int // scoring stops once a candidate reaches this
	OverlapSize     int // tokens-worth of text carried between chunks

	// NoSmartOverlap disables snapping the overlap start to a semantic
	// boundary. Smart overlap is on by default.
	NoSmartOverlap bool

	Levels              int     // hierarchical resolutions
	LevelSizeMultiplier float64 // size scale factor per level

	Counter tokens.Counter // token counter; defaults to word counting
}

// DefaultOptions returns the stock configuration: 512-token targets with
// bounded 50-token smart overlap and three hierarchical levels.
func DefaultOptions() Options {
	return Options{
		TargetChunkSize:     DefaultTargetChunkSize,
		MinChunkSize:        DefaultMinChunkSize,
		MaxChunkSize:        DefaultMaxChunkSize,
		OverlapSize:         DefaultOverlapSize,
		Levels:              DefaultLevels,
		LevelSizeMultiplier: DefaultLevelSizeMultiplier,
		Counter:             tokens.WordCounter{},
	}
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.TargetChunkSize == 0 {
		o.TargetChunkSize = def.TargetChunkSize
	}
	if o.MinChunkSize == 0 {
		o.MinChunkSize = def.MinChunkSize
	}
	if o.MaxChunkSize == 0 {
		o.MaxChunkSize = def.MaxChunkSize
	}
	if o.OverlapSize == 0 {
		o.OverlapSize = def.OverlapSize
	}
	if o.Levels == 0 {
		o.Levels = def.Levels
	}
	if o.LevelSizeMultiplier == 0 {
		o.LevelSizeMultiplier = def.LevelSizeMultiplier
	}
	if o.Counter == nil {
		o.Counter = def.Counter
	}
	return o
}

// Validate fails fast on caller contract violations so a bad
// configuration never reaches the middle of a pass.
func (o Options) Validate() error {
	if o.TargetChunkSize <= 0 {
		return errors.New("chunker: target chunk size must be positive")
	}
	if o.MinChunkSize <= 0 {
		return errors.New("chunker: min chunk size must be positive")
	}
	if o.MaxChunkSize <= 0 {
		return errors.New("chunker: max chunk size must be positive")
	}
	if o.MinChunkSize > o.MaxChunkSize {
		return fmt.Errorf("chunker: min chunk size %d exceeds max %d", o.MinChunkSize, o.MaxChunkSize)
	}
	if o.OverlapSize < 0 {
		return errors.New("chunker: overlap size cannot be negative")
	}
	if o.Levels < 1 {
		return errors.New("chunker: levels must be at least 1")
	}
	if o.LevelSizeMultiplier <= 0 {
		return errors.New("chunker: level size multiplier must be positive")
	}
	return nil
}
