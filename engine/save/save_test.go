package save

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/nathoo/shmoopland/engine"
	"github.com/nathoo/shmoopland/loader"
	"github.com/nathoo/shmoopland/types"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func saveTestStore() *loader.Store {
	return &loader.Store{
		Start: "home",
		Locations: map[string]types.Location{
			"home":   {ID: "home", Description: "Home.", Exits: map[string]string{"north": "market"}},
			"market": {ID: "market", Description: "Market.", Exits: map[string]string{"south": "home"}},
		},
		Items: map[string]types.Item{
			"map":     {ID: "map", Description: "A map.", Location: "home"},
			"crystal": {ID: "crystal", Description: "A glowing crystal.", Location: "home"},
			"string":  {ID: "string", Description: "A bit of string.", Location: "home"},
			"charm":   {ID: "charm", Description: "A crystal charm."},
		},
		NPCs: map[string]types.NPCDef{},
		Quests: map[string]types.Quest{
			"welcome_to_shmoopland": {
				ID:         "welcome_to_shmoopland",
				Title:      "Welcome",
				Objectives: []types.Objective{{Type: "visit_location", Target: "market"}},
				Rewards:    types.Reward{Experience: 25},
			},
		},
		Recipes: map[string]types.Recipe{
			"charm": {
				ID:          "charm",
				Name:        "Crystal Charm",
				Ingredients: []string{"crystal", "string"},
				Result:      "charm",
				Description: "Bind crystal and string.",
			},
		},
		Templates: map[string][]string{},
		Variables: map[string][]string{},
	}
}

func TestCaptureApplyRoundTrip(t *testing.T) {
	g := engine.New(saveTestStore(), 42, discard())
	g.Step("take map")
	g.Step("go north")

	data, err := Capture(g)
	if err != nil {
		t.Fatalf("Capture = %v", err)
	}

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if sd.Version != Version {
		t.Errorf("version = %q, want %q", sd.Version, Version)
	}

	restored := engine.New(saveTestStore(), 42, discard())
	Apply(restored, sd)

	w := restored.World()
	if w.Location != "market" {
		t.Errorf("restored location = %q, want market", w.Location)
	}
	if !w.HasItem("map") {
		t.Error("restored inventory missing map")
	}
	if !w.Visited["market"] {
		t.Error("restored visited set missing market")
	}
	if w.Experience != 25 {
		t.Errorf("restored experience = %d, want 25", w.Experience)
	}
	if !restored.Quests().IsCompleted("welcome_to_shmoopland") {
		t.Error("restored quest log lost the completion")
	}
}

func TestConsumedItemsStayGoneAfterLoad(t *testing.T) {
	g := engine.New(saveTestStore(), 3, discard())
	g.Step("take crystal")
	g.Step("take string")
	out := strings.Join(g.Step("craft charm").Output, "\n")
	if !strings.Contains(out, "You craft the charm.") {
		t.Fatalf("craft failed:\n%s", out)
	}

	data, err := Capture(g)
	if err != nil {
		t.Fatalf("Capture = %v", err)
	}
	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}

	restored := engine.New(saveTestStore(), 3, discard())
	Apply(restored, sd)

	w := restored.World()
	if _, ok := w.Item("crystal"); ok {
		t.Error("consumed crystal came back after load")
	}
	if _, ok := w.Item("string"); ok {
		t.Error("consumed string came back after load")
	}
	for _, id := range w.ItemsAt("home") {
		if id == "crystal" || id == "string" {
			t.Errorf("consumed %s lies at home after load", id)
		}
	}
	if !w.HasItem("charm") {
		t.Error("crafted charm missing after load")
	}
}

func TestRestoredRNGContinuesSequence(t *testing.T) {
	g := engine.New(saveTestStore(), 7, discard())
	g.Step("go north")
	g.Step("go south")

	data, err := Capture(g)
	if err != nil {
		t.Fatalf("Capture = %v", err)
	}
	sd, _ := Load(data)

	restored := engine.New(saveTestStore(), 7, discard())
	Apply(restored, sd)

	want := g.RNG().Intn(1 << 20)
	got := restored.RNG().Intn(1 << 20)
	if want != got {
		t.Errorf("restored RNG diverged: %d vs %d", got, want)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := Load([]byte("not json")); err == nil {
		t.Error("Load should fail on invalid JSON")
	}
}

func TestSaveFormatIsStableJSON(t *testing.T) {
	g := engine.New(saveTestStore(), 1, discard())
	data, err := Capture(g)
	if err != nil {
		t.Fatalf("Capture = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("save is not valid JSON: %v", err)
	}
	for _, key := range []string{"version", "location", "inventory", "quests", "skills", "rng_seed", "rng_position"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("save missing key %q", key)
		}
	}
}
