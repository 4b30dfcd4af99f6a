// Package craft implements recipe-based crafting: ingredient checks,
// optional location requirements, and atomic ingredient consumption.
package craft

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/shmoopland/types"
)

// Bench holds the known recipes for a session.
type Bench struct {
	recipes map[string]types.Recipe
}

// NewBench creates a bench over the given recipe definitions.
func NewBench(recipes map[string]types.Recipe) *Bench {
	if recipes == nil {
		recipes = map[string]types.Recipe{}
	}
	return &Bench{recipes: recipes}
}

// Recipe returns a recipe by ID.
func (b *Bench) Recipe(id string) (types.Recipe, bool) {
	r, ok := b.recipes[id]
	return r, ok
}

// Available returns recipes craftable with the given inventory at the
// given location, sorted by ID.
func (b *Bench) Available(inventory []string, location string) []types.Recipe {
	held := toSet(inventory)
	var out []types.Recipe
	for _, r := range b.recipes {
		if r.RequiredLocation != "" && r.RequiredLocation != location {
			continue
		}
		if hasAll(held, r.Ingredients) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Craft attempts a recipe against the inventory and location. On
// success it returns the result item ID and the remaining inventory
// with exactly the ingredient IDs removed; on failure the original
// inventory is returned unchanged alongside the error message.
func (b *Bench) Craft(id string, inventory []string, location string) (string, []string, error) {
	r, ok := b.recipes[id]
	if !ok {
		return "", inventory, fmt.Errorf("recipe not found")
	}
	if r.RequiredLocation != "" && r.RequiredLocation != location {
		return "", inventory, fmt.Errorf("you must be at the %s to craft this", r.RequiredLocation)
	}
	if !hasAll(toSet(inventory), r.Ingredients) {
		return "", inventory, fmt.Errorf("you don't have all required ingredients")
	}

	remaining := append([]string{}, inventory...)
	for _, ingredient := range r.Ingredients {
		for i, held := range remaining {
			if held == ingredient {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return r.Result, remaining, nil
}

// Details formats a human-readable recipe card.
func (b *Bench) Details(id string) (string, bool) {
	r, ok := b.recipes[id]
	if !ok {
		return "", false
	}
	card := fmt.Sprintf("Recipe: %s\nDescription: %s\nIngredients: %s\nCreates: %s",
		r.Name, r.Description, strings.Join(r.Ingredients, ", "), r.Result)
	if r.RequiredLocation != "" {
		card += "\nRequired Location: " + r.RequiredLocation
	}
	return card, true
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func hasAll(held map[string]bool, required []string) bool {
	for _, id := range required {
		if !held[id] {
			return false
		}
	}
	return true
}
