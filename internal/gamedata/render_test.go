package gamedata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderItem(t *testing.T) {
	doc := RenderItem(map[string]any{
		"id":          "item_1",
		"name":        "River Blade",
		"quality":     "Rare",
		"type":        "Weapon",
		"subtype":     "Sword",
		"level":       12,
		"description": "Forged at the crossing.",
		"stats": []any{
			map[string]any{"name": "Attack", "value": 34},
			map[string]any{"name": "Speed", "value": 1.4},
			"Waterproof",
		},
	})

	want := strings.Join([]string{
		"Name: River Blade",
		"Quality: Rare",
		"Type: Weapon",
		"Subtype: Sword",
		"Level: 12",
		"Description: Forged at the crossing.",
		"Stats: Attack: 34, Speed: 1.4, Waterproof",
	}, "\n")
	assert.Equal(t, want, doc.Text)

	assert.Equal(t, "item_1", doc.Metadata["id"])
	assert.Equal(t, "item", doc.Metadata["type"])
	assert.Equal(t, "game_files", doc.Metadata["source"])
	assert.Equal(t, "River Blade", doc.Metadata["name"])
}

func TestRenderItemDefaults(t *testing.T) {
	doc := RenderItem(map[string]any{})

	want := strings.Join([]string{
		"Name: Unknown Item",
		"Quality: Common",
		"Type: Miscellaneous",
	}, "\n")
	assert.Equal(t, want, doc.Text)
	assert.NotEmpty(t, doc.Metadata["id"], "records without an ID get a generated one")
	assert.NotContains(t, doc.Metadata, "name")
}

func TestRenderZone(t *testing.T) {
	doc := RenderZone(map[string]any{
		"id":                 "zone_3",
		"name":               "Flooded Valley",
		"type":               "Dungeon",
		"region":             "East March",
		"level_range":        "10-15",
		"description":        "A drowned settlement.",
		"points_of_interest": []any{"Sunken Chapel", "Ferry Dock"},
		"resources":          []any{"Reeds", "Clay"},
	})

	assert.Contains(t, doc.Text, "Name: Flooded Valley")
	assert.Contains(t, doc.Text, "Region: East March")
	assert.Contains(t, doc.Text, "Points of Interest: Sunken Chapel, Ferry Dock")
	assert.Contains(t, doc.Text, "Resources: Reeds, Clay")
	assert.Equal(t, "zone", doc.Metadata["type"])
}

func TestRenderSkill(t *testing.T) {
	doc := RenderSkill(map[string]any{
		"id":         "skill_7",
		"name":       "Undertow",
		"category":   "Water",
		"level":      20,
		"class_name": "Tidecaller",
		"cooldown":   8.5,
		"cost":       30,
		"effects": []any{
			map[string]any{"id": "e1", "description": "Pulls the target under."},
			"Slows movement.",
			map[string]any{"note": "no description key"},
		},
	})

	assert.Contains(t, doc.Text, "Name: Undertow")
	assert.Contains(t, doc.Text, "Class: Tidecaller")
	assert.Contains(t, doc.Text, "Cooldown: 8.5")
	assert.Contains(t, doc.Text, "Cost: 30")
	assert.Contains(t, doc.Text, "Effects: Pulls the target under., Slows movement.")
	assert.Equal(t, "skill", doc.Metadata["type"])
}

func TestRenderNPC(t *testing.T) {
	doc := RenderNPC(map[string]any{
		"id":       "npc_9",
		"name":     "Old Ferryman",
		"type":     "Quest Giver",
		"level":    30,
		"faction":  "River Guild",
		"location": "Ferry Dock",
		"drops": []any{
			map[string]any{"name": "Worn Oar", "chance": 12.5},
			map[string]any{"name": "Copper Coin"},
			map[string]any{"chance": 99},
			"Ferry Token",
		},
	})

	assert.Contains(t, doc.Text, "Name: Old Ferryman")
	assert.Contains(t, doc.Text, "Faction: River Guild")
	assert.Contains(t, doc.Text, "Drops: Worn Oar (12.5%), Copper Coin, Ferry Token")
	require.Equal(t, "npc", doc.Metadata["type"])
	assert.Equal(t, "npc_9", doc.Metadata["id"])
}
