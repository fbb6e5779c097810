package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryObserve(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Observe("item", "a"))
	assert.False(t, r.Observe("item", "a"))
	assert.True(t, r.Observe("item", "b"))

	// Kinds are independent namespaces.
	assert.True(t, r.Observe("zone", "a"))

	assert.Equal(t, 2, r.Count("item"))
	assert.Equal(t, 1, r.Count("zone"))
	assert.Equal(t, 0, r.Count("npc"))
}

func TestRegistryIsolatedPerRun(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	assert.True(t, a.Observe("item", "x"))
	assert.True(t, b.Observe("item", "x"), "a fresh registry has no memory of other runs")
}
