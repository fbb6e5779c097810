// Package gamedata renders structured game records (items, zones,
// skills, NPCs) into plain-text documents the chunking pipeline can
// ingest. Rendering only: reading and parsing game files happens
// upstream.
package gamedata

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/loredex/semchunk/pkg/types"
)

// RenderItem renders an item record.
func RenderItem(data map[string]any) types.Document {
	var b lineBuilder
	b.add("Name", getString(data, "name", "Unknown Item"))
	b.add("Quality", getString(data, "quality", "Common"))
	b.add("Type", getString(data, "type", "Miscellaneous"))
	b.addOptional("Subtype", data, "subtype")
	b.addOptionalNumber("Level", data, "level")
	b.addOptional("Description", data, "description")
	if stats := joinNamedValues(data["stats"], "name", "value"); stats != "" {
		b.add("Stats", stats)
	}
	return newDocument(data, "item", b.String())
}

// RenderZone renders a zone or map record.
func RenderZone(data map[string]any) types.Document {
	var b lineBuilder
	b.add("Name", getString(data, "name", "Unknown Zone"))
	b.add("Type", getString(data, "type", "Region"))
	b.add("Region", getString(data, "region", "Unknown"))
	b.addOptional("Level Range", data, "level_range")
	b.addOptional("Description", data, "description")
	if poi := joinStrings(data["points_of_interest"]); poi != "" {
		b.add("Points of Interest", poi)
	}
	if res := joinStrings(data["resources"]); res != "" {
		b.add("Resources", res)
	}
	return newDocument(data, "zone", b.String())
}

// RenderSkill renders a skill or ability record.
func RenderSkill(data map[string]any) types.Document {
	var b lineBuilder
	b.add("Name", getString(data, "name", "Unknown Skill"))
	b.add("Category", getString(data, "category", "General"))
	b.addOptionalNumber("Level", data, "level")
	b.addOptional("Class", data, "class_name")
	b.addOptionalNumber("Cooldown", data, "cooldown")
	b.addOptionalNumber("Cost", data, "cost")
	b.addOptional("Description", data, "description")
	if effects := joinDescriptions(data["effects"]); effects != "" {
		b.add("Effects", effects)
	}
	return newDocument(data, "skill", b.String())
}

// RenderNPC renders an NPC or monster record.
func RenderNPC(data map[string]any) types.Document {
	var b lineBuilder
	b.add("Name", getString(data, "name", "Unknown NPC"))
	b.add("Type", getString(data, "type", "Generic"))
	b.addOptionalNumber("Level", data, "level")
	b.addOptional("Faction", data, "faction")
	b.addOptional("Location", data, "location")
	b.addOptional("Description", data, "description")
	if drops := joinDrops(data["drops"]); drops != "" {
		b.add("Drops", drops)
	}
	return newDocument(data, "npc", b.String())
}

// newDocument pairs rendered text with metadata carrying the record's
// identity. Records missing an ID get a random one so duplicates stay
// distinguishable downstream.
func newDocument(data map[string]any, docType, text string) types.Document {
	id := getString(data, "id", "")
	if id == "" {
		id = uuid.NewString()
	}
	meta := map[string]any{
		"id":     id,
		"type":   docType,
		"source": "game_files",
	}
	if name := getString(data, "name", ""); name != "" {
		meta["name"] = name
	}
	return types.Document{Text: text, Metadata: meta}
}

// lineBuilder accumulates "Key: value" lines.
type lineBuilder struct {
	lines []string
}

func (b *lineBuilder) add(key, value string) {
	b.lines = append(b.lines, key+": "+value)
}

func (b *lineBuilder) addOptional(key string, data map[string]any, field string) {
	if s := getString(data, field, ""); s != "" {
		b.add(key, s)
	}
}

func (b *lineBuilder) addOptionalNumber(key string, data map[string]any, field string) {
	switch v := data[field].(type) {
	case int:
		b.add(key, fmt.Sprintf("%d", v))
	case int64:
		b.add(key, fmt.Sprintf("%d", v))
	case float64:
		b.add(key, strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.2f", v), "0"), ".0"))
	case string:
		if v != "" {
			b.add(key, v)
		}
	}
}

func (b *lineBuilder) String() string {
	return strings.Join(b.lines, "\n")
}

func getString(data map[string]any, field, fallback string) string {
	if s, ok := data[field].(string); ok && s != "" {
		return s
	}
	return fallback
}

// joinStrings flattens a []any of strings into "a, b, c".
func joinStrings(value any) string {
	arr, ok := value.([]any)
	if !ok {
		return ""
	}
	var parts []string
	for _, v := range arr {
		if s, ok := v.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// joinNamedValues flattens elements shaped like {name, value} maps, with
// bare strings passed through.
func joinNamedValues(value any, nameKey, valueKey string) string {
	arr, ok := value.([]any)
	if !ok {
		return ""
	}
	var parts []string
	for _, v := range arr {
		switch elem := v.(type) {
		case map[string]any:
			name, nok := elem[nameKey]
			val, vok := elem[valueKey]
			if nok && vok {
				parts = append(parts, fmt.Sprintf("%v: %v", name, val))
			}
		case string:
			if elem != "" {
				parts = append(parts, elem)
			}
		}
	}
	return strings.Join(parts, ", ")
}

// joinDescriptions flattens effect-style elements: maps contribute their
// description, bare strings pass through.
func joinDescriptions(value any) string {
	arr, ok := value.([]any)
	if !ok {
		return ""
	}
	var parts []string
	for _, v := range arr {
		switch elem := v.(type) {
		case map[string]any:
			if d, ok := elem["description"].(string); ok && d != "" {
				parts = append(parts, d)
			}
		case string:
			if elem != "" {
				parts = append(parts, elem)
			}
		}
	}
	return strings.Join(parts, ", ")
}

// joinDrops flattens drop-table elements, appending the drop chance when
// present.
func joinDrops(value any) string {
	arr, ok := value.([]any)
	if !ok {
		return ""
	}
	var parts []string
	for _, v := range arr {
		switch elem := v.(type) {
		case map[string]any:
			name, ok := elem["name"].(string)
			if !ok || name == "" {
				continue
			}
			if chance, ok := elem["chance"]; ok {
				parts = append(parts, fmt.Sprintf("%s (%v%%)", name, chance))
			} else {
				parts = append(parts, name)
			}
		case string:
			if elem != "" {
				parts = append(parts, elem)
			}
		}
	}
	return strings.Join(parts, ", ")
}
