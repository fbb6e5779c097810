// Package config loads chunking configuration from YAML, mapping it onto
// the chunker and walker option types with the same fail-fast validation
// used for programmatic construction.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/loredex/semchunk/internal/chunker"
	"github.com/loredex/semchunk/internal/walker"
)

// Config is the on-disk configuration shape.
type Config struct {
	Chunking ChunkingConfig `yaml:"chunking"`
	Fields   FieldsConfig   `yaml:"fields"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// ChunkingConfig mirrors chunker.Options. Omitted values take the
// chunker's defaults.
type ChunkingConfig struct {
	TargetChunkSize     int     `yaml:"target_chunk_size"`
	MinChunkSize        int     `yaml:"min_chunk_size"`
	MaxChunkSize        int     `yaml:"max_chunk_size"`
	OverlapSize         int     `yaml:"overlap_size"`
	SmartOverlap        *bool   `yaml:"smart_overlap"`
	Levels              int     `yaml:"levels"`
	LevelSizeMultiplier float64 `yaml:"level_size_multiplier"`
}

// FieldsConfig names the structured-document paths to chunk.
type FieldsConfig struct {
	TextFields       []string `yaml:"text_fields"`
	NestedTextFields []string `yaml:"nested_text_fields"`
	ArrayFields      []string `yaml:"array_fields"`
}

// PipelineConfig controls collection-level processing.
type PipelineConfig struct {
	Workers      int  `yaml:"workers"`
	Hierarchical bool `yaml:"hierarchical"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := chunker.New(cfg.ChunkerOptions()); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ChunkerOptions maps the chunking section onto chunker.Options.
func (c *Config) ChunkerOptions() chunker.Options {
	opts := chunker.Options{
		TargetChunkSize:     c.Chunking.TargetChunkSize,
		MinChunkSize:        c.Chunking.MinChunkSize,
		MaxChunkSize:        c.Chunking.MaxChunkSize,
		OverlapSize:         c.Chunking.OverlapSize,
		Levels:              c.Chunking.Levels,
		LevelSizeMultiplier: c.Chunking.LevelSizeMultiplier,
	}
	if c.Chunking.SmartOverlap != nil {
		opts.NoSmartOverlap = !*c.Chunking.SmartOverlap
	}
	return opts
}

// FieldSpec maps the fields section onto a walker.FieldSpec.
func (c *Config) FieldSpec() walker.FieldSpec {
	return walker.FieldSpec{
		TextFields:       c.Fields.TextFields,
		NestedTextFields: c.Fields.NestedTextFields,
		ArrayFields:      c.Fields.ArrayFields,
	}
}
