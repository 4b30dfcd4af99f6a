package loader

import (
	"fmt"
	"sort"

	"github.com/nathoo/shmoopland/types"
)

// validate checks that every cross-reference in the store resolves.
// All errors are collected so a broken world reports everything at once.
func validate(store *Store) error {
	var errs []string

	if _, ok := store.Locations[store.Start]; !ok {
		errs = append(errs, fmt.Sprintf("start location %q does not exist", store.Start))
	}

	for _, id := range sortedKeys(store.Locations) {
		loc := store.Locations[id]
		for _, dir := range sortedKeys(loc.Exits) {
			target := loc.Exits[dir]
			if _, ok := store.Locations[target]; !ok {
				errs = append(errs, fmt.Sprintf("location %q: exit %q leads to unknown location %q", id, dir, target))
			}
		}
	}

	for _, id := range sortedKeys(store.Items) {
		item := store.Items[id]
		// Unplaced items are legal: crafting results and quest rewards
		// enter the world only when granted.
		if item.Location == "" || item.Location == types.InventoryLocation {
			continue
		}
		if _, ok := store.Locations[item.Location]; !ok {
			errs = append(errs, fmt.Sprintf("item %q: placed in unknown location %q", id, item.Location))
		}
	}

	for _, id := range sortedKeys(store.NPCs) {
		npc := store.NPCs[id]
		if _, ok := store.Locations[npc.Location]; !ok {
			errs = append(errs, fmt.Sprintf("npc %q: placed in unknown location %q", id, npc.Location))
		}
	}

	for _, id := range sortedKeys(store.Quests) {
		q := store.Quests[id]
		for _, pre := range q.Prerequisites {
			if _, ok := store.Quests[pre]; !ok {
				errs = append(errs, fmt.Sprintf("quest %q: unknown prerequisite %q", id, pre))
			}
		}
		if q.NextQuest != "" {
			if _, ok := store.Quests[q.NextQuest]; !ok {
				errs = append(errs, fmt.Sprintf("quest %q: unknown next quest %q", id, q.NextQuest))
			}
		}
		for _, reward := range q.Rewards.Items {
			if _, ok := store.Items[reward]; !ok {
				errs = append(errs, fmt.Sprintf("quest %q: unknown reward item %q", id, reward))
			}
		}
	}

	for _, id := range sortedKeys(store.Recipes) {
		r := store.Recipes[id]
		for _, ing := range r.Ingredients {
			if _, ok := store.Items[ing]; !ok {
				errs = append(errs, fmt.Sprintf("recipe %q: unknown ingredient %q", id, ing))
			}
		}
		if _, ok := store.Items[r.Result]; !ok {
			errs = append(errs, fmt.Sprintf("recipe %q: unknown result item %q", id, r.Result))
		}
		if r.RequiredLocation != "" {
			if _, ok := store.Locations[r.RequiredLocation]; !ok {
				errs = append(errs, fmt.Sprintf("recipe %q: unknown required location %q", id, r.RequiredLocation))
			}
		}
	}

	if len(errs) > 0 {
		msg := "content validation failed:"
		for _, e := range errs {
			msg += "\n  - " + e
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
