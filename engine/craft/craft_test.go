package craft

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nathoo/shmoopland/types"
)

func testRecipes() map[string]types.Recipe {
	return map[string]types.Recipe{
		"glow_charm": {
			ID:          "glow_charm",
			Name:        "Glow Charm",
			Ingredients: []string{"crystal", "string"},
			Result:      "charm",
			Description: "A softly glowing charm.",
		},
		"forge_blade": {
			ID:               "forge_blade",
			Name:             "Forged Blade",
			Ingredients:      []string{"iron"},
			Result:           "blade",
			RequiredLocation: "forge",
		},
	}
}

func TestAvailableFiltersByIngredientsAndLocation(t *testing.T) {
	b := NewBench(testRecipes())

	got := b.Available([]string{"crystal", "string", "iron"}, "market")
	if len(got) != 1 || got[0].ID != "glow_charm" {
		t.Errorf("Available at market = %v, want [glow_charm]", got)
	}

	got = b.Available([]string{"crystal", "string", "iron"}, "forge")
	if len(got) != 2 {
		t.Errorf("Available at forge = %d recipes, want 2", len(got))
	}

	got = b.Available([]string{"crystal"}, "market")
	if len(got) != 0 {
		t.Errorf("Available without ingredients = %v, want none", got)
	}
}

func TestCraftConsumesExactIngredients(t *testing.T) {
	b := NewBench(testRecipes())
	inventory := []string{"map", "crystal", "string", "coin"}

	result, remaining, err := b.Craft("glow_charm", inventory, "market")
	if err != nil {
		t.Fatalf("Craft = %v", err)
	}
	if result != "charm" {
		t.Errorf("result = %q, want charm", result)
	}
	if !reflect.DeepEqual(remaining, []string{"map", "coin"}) {
		t.Errorf("remaining = %v, want [map coin]", remaining)
	}
}

func TestCraftFailureLeavesInventoryUnchanged(t *testing.T) {
	b := NewBench(testRecipes())
	inventory := []string{"crystal"}

	tests := []struct {
		name     string
		recipe   string
		location string
	}{
		{"missing ingredients", "glow_charm", "market"},
		{"wrong location", "forge_blade", "market"},
		{"unknown recipe", "no_such_recipe", "market"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, remaining, err := b.Craft(tt.recipe, inventory, tt.location)
			if err == nil {
				t.Fatal("expected error")
			}
			if !reflect.DeepEqual(remaining, []string{"crystal"}) {
				t.Errorf("failed craft changed inventory: %v", remaining)
			}
		})
	}
}

func TestCraftAtRequiredLocation(t *testing.T) {
	b := NewBench(testRecipes())

	result, remaining, err := b.Craft("forge_blade", []string{"iron"}, "forge")
	if err != nil {
		t.Fatalf("Craft at forge = %v", err)
	}
	if result != "blade" {
		t.Errorf("result = %q, want blade", result)
	}
	if len(remaining) != 0 {
		t.Errorf("remaining = %v, want empty", remaining)
	}
}

func TestDetails(t *testing.T) {
	b := NewBench(testRecipes())

	card, ok := b.Details("forge_blade")
	if !ok {
		t.Fatal("Details(forge_blade) not found")
	}
	for _, want := range []string{"Forged Blade", "iron", "blade", "forge"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}

	if _, ok := b.Details("nope"); ok {
		t.Error("unknown recipe should report not found")
	}
}
