package loader

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const minimalLocations = `{
  "start": "home",
  "locations": {
    "home": {"description": "A cozy cottage.", "exits": {"north": "market"}},
    "market": {"description": "A bustling market.", "exits": {"south": "home"}}
  }
}`

func TestOpenMinimalWorld(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locations.json", minimalLocations)

	store, err := Open(dir, discard())
	if err != nil {
		t.Fatalf("Open = %v", err)
	}
	if store.Start != "home" {
		t.Errorf("Start = %q, want home", store.Start)
	}
	if len(store.Locations) != 2 {
		t.Errorf("locations = %d, want 2", len(store.Locations))
	}
	if store.Locations["home"].ID != "home" {
		t.Error("location ID not backfilled from map key")
	}
	// Missing optional categories degrade to empty.
	if len(store.Items) != 0 || len(store.NPCs) != 0 || len(store.Quests) != 0 {
		t.Error("optional categories should be empty, not nil entries")
	}
}

func TestOpenRequiresLocations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "items.json", `{"items": {}}`)

	if _, err := Open(dir, discard()); err == nil {
		t.Fatal("Open without locations should fail")
	}
}

func TestOpenRequiresStart(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locations.json", `{"locations": {"home": {"description": "x", "exits": {}}}}`)

	if _, err := Open(dir, discard()); err == nil {
		t.Fatal("Open without start location should fail")
	}
}

func TestOpenYAMLCategory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locations.yaml", `
start: home
locations:
  home:
    description: A cozy cottage.
    exits: {}
`)

	store, err := Open(dir, discard())
	if err != nil {
		t.Fatalf("Open = %v", err)
	}
	if store.Locations["home"].Description != "A cozy cottage." {
		t.Errorf("YAML description = %q", store.Locations["home"].Description)
	}
}

func TestOpenLoadsItemsAndRecipes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locations.json", minimalLocations)
	writeFile(t, dir, "items.json", `{
  "items": {
    "crystal": {"description": "Glows softly.", "examine_text": "It hums.", "location": "market"},
    "string": {"description": "A bit of string.", "location": "home"},
    "charm": {"description": "A glowing charm.", "location": ""}
  },
  "recipes": {
    "glow_charm": {"name": "Glow Charm", "ingredients": ["crystal", "string"], "result": "charm", "description": "Shiny."}
  }
}`)

	store, err := Open(dir, discard())
	if err != nil {
		t.Fatalf("Open = %v", err)
	}
	if store.Items["crystal"].Location != "market" {
		t.Errorf("crystal location = %q", store.Items["crystal"].Location)
	}
	r, ok := store.Recipes["glow_charm"]
	if !ok {
		t.Fatal("recipe not loaded")
	}
	if r.Result != "charm" || len(r.Ingredients) != 2 {
		t.Errorf("recipe = %+v", r)
	}
}

func TestValidationCatchesBrokenReferences(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name: "dangling exit",
			file: "locations.json",
			content: `{"start": "home", "locations": {
				"home": {"description": "x", "exits": {"north": "nowhere"}}
			}}`,
			wantErr: "unknown location",
		},
		{
			name:    "item in unknown location",
			file:    "items.json",
			content: `{"items": {"rock": {"description": "x", "location": "void"}}}`,
			wantErr: "unknown location",
		},
		{
			name:    "npc in unknown location",
			file:    "npcs.json",
			content: `{"npcs": {"ghost": {"location": "void"}}}`,
			wantErr: "unknown location",
		},
		{
			name:    "recipe with unknown ingredient",
			file:    "items.json",
			content: `{"items": {}, "recipes": {"r": {"ingredients": ["nope"], "result": "nope"}}}`,
			wantErr: "unknown",
		},
		{
			name:    "quest with unknown prerequisite",
			file:    "quests.json",
			content: `{"quests": {"q": {"title": "Q", "prerequisites": ["missing"]}}}`,
			wantErr: "unknown prerequisite",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "locations.json" {
				writeFile(t, dir, "locations.json", `{"start": "home", "locations": {"home": {"description": "x", "exits": {}}}}`)
			}
			writeFile(t, dir, tt.file, tt.content)

			_, err := Open(dir, discard())
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLuaPackExtendsContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locations.json", minimalLocations)
	writeFile(t, dir, "extra.lua", `
Location "cave" {
  description = "A dim crystal cave.",
  exits = { south = "market" },
}

Item "crystal" {
  description = "Glows softly.",
  examine = "It hums with energy.",
  location = "cave",
}

NPC "hermit" {
  location = "cave",
  friendliness = 0.4,
  greetings = { neutral = { "Hm? A visitor." } },
  responses = { neutral = { "So it goes." } },
}

Template "cave" {
  "The cave glitters, {mood} as ever.",
}

Variables {
  mood = { "quiet", "restless" },
}
`)

	store, err := Open(dir, discard())
	if err != nil {
		t.Fatalf("Open = %v", err)
	}
	if _, ok := store.Locations["cave"]; !ok {
		t.Fatal("Lua location not merged")
	}
	if store.Items["crystal"].ExamineText != "It hums with energy." {
		t.Errorf("Lua item examine = %q", store.Items["crystal"].ExamineText)
	}
	npc, ok := store.NPCs["hermit"]
	if !ok {
		t.Fatal("Lua NPC not merged")
	}
	if npc.Friendliness != 0.4 || len(npc.Greetings["neutral"]) != 1 {
		t.Errorf("Lua NPC = %+v", npc)
	}
	if len(store.Templates["cave"]) != 1 {
		t.Errorf("Lua template pool = %v", store.Templates["cave"])
	}
	if len(store.Variables["mood"]) != 2 {
		t.Errorf("Lua variables = %v", store.Variables["mood"])
	}
}

func TestLuaPackOverridesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locations.json", minimalLocations)
	writeFile(t, dir, "override.lua", `
Location "home" {
  description = "A renovated cottage.",
  exits = { north = "market" },
}
`)

	store, err := Open(dir, discard())
	if err != nil {
		t.Fatalf("Open = %v", err)
	}
	if store.Locations["home"].Description != "A renovated cottage." {
		t.Errorf("override description = %q", store.Locations["home"].Description)
	}
}

func TestLuaValidationStillApplies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locations.json", minimalLocations)
	writeFile(t, dir, "broken.lua", `
Location "cave" {
  description = "x",
  exits = { south = "nowhere" },
}
`)

	if _, err := Open(dir, discard()); err == nil {
		t.Fatal("broken Lua references should fail validation")
	}
}
