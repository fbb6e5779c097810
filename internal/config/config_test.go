package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loredex/semchunk/internal/chunker"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
chunking:
  target_chunk_size: 256
  min_chunk_size: 64
  max_chunk_size: 512
  overlap_size: 25
  smart_overlap: false
  levels: 2
  level_size_multiplier: 3.0
fields:
  text_fields: [description, lore]
  nested_text_fields: ["details.lore"]
  array_fields: [effects]
pipeline:
  workers: 4
  hierarchical: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	opts := cfg.ChunkerOptions()
	assert.Equal(t, 256, opts.TargetChunkSize)
	assert.Equal(t, 64, opts.MinChunkSize)
	assert.Equal(t, 512, opts.MaxChunkSize)
	assert.Equal(t, 25, opts.OverlapSize)
	assert.True(t, opts.NoSmartOverlap)
	assert.Equal(t, 2, opts.Levels)
	assert.InDelta(t, 3.0, opts.LevelSizeMultiplier, 1e-9)

	spec := cfg.FieldSpec()
	assert.Equal(t, []string{"description", "lore"}, spec.TextFields)
	assert.Equal(t, []string{"details.lore"}, spec.NestedTextFields)
	assert.Equal(t, []string{"effects"}, spec.ArrayFields)

	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.True(t, cfg.Pipeline.Hierarchical)
}

func TestLoadEmptyTakesDefaults(t *testing.T) {
	path := writeConfig(t, "chunking: {}\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	// Omitted values resolve to the chunker defaults at construction.
	c, err := chunker.New(cfg.ChunkerOptions())
	require.NoError(t, err)
	opts := c.Options()
	assert.Equal(t, chunker.DefaultTargetChunkSize, opts.TargetChunkSize)
	assert.False(t, opts.NoSmartOverlap, "smart overlap defaults to on")
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
chunking:
  min_chunk_size: 900
  max_chunk_size: 100
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "chunking: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}
