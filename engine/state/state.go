// Package state holds the mutable session data: current location,
// inventory, visited/collected sets, and the item table. Every mutation
// is a single-field update performed only after its preconditions pass.
package state

import (
	"fmt"
	"sort"

	"github.com/nathoo/shmoopland/types"
)

// NotHereError reports that the named thing is not at the player's
// current location.
type NotHereError struct {
	Name string
}

func (e *NotHereError) Error() string {
	return fmt.Sprintf("There is no %s here.", e.Name)
}

// NotCarriedError reports that the player is not holding the item.
type NotCarriedError struct {
	Name string
}

func (e *NotCarriedError) Error() string {
	return fmt.Sprintf("You don't have a %s.", e.Name)
}

// World is the mutable game state. One World per session, single writer.
type World struct {
	Location   string
	Inventory  []string
	Visited    map[string]bool
	Collected  map[string]bool
	Items      map[string]*types.Item
	Experience int
	Context    map[string]string // rendering context: time_of_day, activity_level
}

// NewWorld creates a fresh world at the starting location.
func NewWorld(start string, items map[string]*types.Item) *World {
	if items == nil {
		items = map[string]*types.Item{}
	}
	return &World{
		Location:  start,
		Inventory: []string{},
		Visited:   map[string]bool{start: true},
		Collected: map[string]bool{},
		Items:     items,
		Context: map[string]string{
			"time_of_day":    "morning",
			"activity_level": "moderate",
		},
	}
}

// MoveTo sets the current location and marks it visited.
// Exit validation is the dispatcher's job.
func (w *World) MoveTo(location string) {
	w.Location = location
	w.Visited[location] = true
}

// HasItem reports whether the item is in the inventory.
func (w *World) HasItem(id string) bool {
	for _, held := range w.Inventory {
		if held == id {
			return true
		}
	}
	return false
}

// Item returns the item record for an ID, if known.
func (w *World) Item(id string) (*types.Item, bool) {
	item, ok := w.Items[id]
	return item, ok
}

// ItemsAt returns the sorted IDs of items at a location.
func (w *World) ItemsAt(location string) []string {
	var ids []string
	for id, item := range w.Items {
		if item.Location == location {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Take moves an item from the current location into the inventory.
// The item must exist and be at the player's location; otherwise no
// state changes.
func (w *World) Take(id string) error {
	item, ok := w.Items[id]
	if !ok || item.Location != w.Location {
		return &NotHereError{Name: id}
	}
	w.Inventory = append(w.Inventory, id)
	item.Location = types.InventoryLocation
	w.Collected[id] = true
	return nil
}

// Drop moves an item from the inventory to the current location.
// The item must be carried; otherwise no state changes.
func (w *World) Drop(id string) error {
	if !w.HasItem(id) {
		return &NotCarriedError{Name: id}
	}
	w.removeFromInventory(id)
	if item, ok := w.Items[id]; ok {
		item.Location = w.Location
	}
	return nil
}

// Grant adds an item directly to the inventory (quest rewards,
// crafting results). Already-held items are not duplicated.
func (w *World) Grant(id string) {
	if w.HasItem(id) {
		return
	}
	w.Inventory = append(w.Inventory, id)
	if item, ok := w.Items[id]; ok {
		item.Location = types.InventoryLocation
	} else {
		w.Items[id] = &types.Item{ID: id, Location: types.InventoryLocation}
	}
	w.Collected[id] = true
}

// Consume removes carried items from the world (crafting ingredients).
// The caller has already verified every ID is held.
func (w *World) Consume(ids []string) {
	for _, id := range ids {
		w.removeFromInventory(id)
		delete(w.Items, id)
	}
}

func (w *World) removeFromInventory(id string) {
	for i, held := range w.Inventory {
		if held == id {
			w.Inventory = append(w.Inventory[:i], w.Inventory[i+1:]...)
			return
		}
	}
}
