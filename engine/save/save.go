// Package save implements JSON serialization of a session: world
// state, quest progress, skills, and the RNG position so restored
// sessions keep making the same random choices.
package save

import (
	"encoding/json"

	"github.com/nathoo/shmoopland/engine"
	"github.com/nathoo/shmoopland/engine/quest"
	"github.com/nathoo/shmoopland/engine/skill"
	"github.com/nathoo/shmoopland/types"
)

// Version identifies the save format.
const Version = "1"

// SaveData is the JSON save format. NPC moods are deliberately absent:
// they reset every session.
type SaveData struct {
	Version     string            `json:"version"`
	Location    string            `json:"location"`
	Inventory   []string          `json:"inventory"`
	Visited     []string          `json:"visited"`
	Collected   []string          `json:"collected"`
	Items       map[string]string `json:"items"` // item ID -> location
	Experience  int               `json:"experience"`
	Context     map[string]string `json:"context"`
	Quests      quest.Progress    `json:"quests"`
	Skills      []skill.Skill     `json:"skills"`
	RNGSeed     int64             `json:"rng_seed"`
	RNGPosition int64             `json:"rng_position"`
}

// Capture serializes the session to JSON bytes.
func Capture(g *engine.Game) ([]byte, error) {
	w := g.World()

	data := SaveData{
		Version:     Version,
		Location:    w.Location,
		Inventory:   append([]string{}, w.Inventory...),
		Visited:     setToList(w.Visited),
		Collected:   setToList(w.Collected),
		Items:       map[string]string{},
		Experience:  w.Experience,
		Context:     w.Context,
		Quests:      g.Quests().Progress(),
		RNGSeed:     g.RNG().Seed(),
		RNGPosition: g.RNG().Position(),
	}
	for id, item := range w.Items {
		data.Items[id] = item.Location
	}
	for _, sk := range g.Skills().All() {
		data.Skills = append(data.Skills, *sk)
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Inventory == nil {
		sd.Inventory = []string{}
	}
	if sd.Items == nil {
		sd.Items = map[string]string{}
	}
	if sd.Context == nil {
		sd.Context = map[string]string{}
	}
	return &sd, nil
}

// Apply restores saved state onto a freshly created session.
func Apply(g *engine.Game, sd *SaveData) {
	w := g.World()
	w.Location = sd.Location
	w.Inventory = sd.Inventory
	w.Visited = listToSet(sd.Visited)
	w.Collected = listToSet(sd.Collected)
	w.Experience = sd.Experience
	if len(sd.Context) > 0 {
		w.Context = sd.Context
	}
	// The save's item table is authoritative: items consumed before the
	// save stay gone, and items granted mid-session come back.
	for id := range w.Items {
		if _, ok := sd.Items[id]; !ok {
			delete(w.Items, id)
		}
	}
	for id, location := range sd.Items {
		if item, ok := w.Items[id]; ok {
			item.Location = location
		} else {
			w.Items[id] = &types.Item{ID: id, Location: location}
		}
	}

	g.Quests().RestoreProgress(sd.Quests)
	g.Skills().RestoreAll(sd.Skills)
	g.RestoreRNG(sd.RNGSeed, sd.RNGPosition)
}

func setToList(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k, v := range set {
		if v {
			out = append(out, k)
		}
	}
	return out
}

func listToSet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, k := range list {
		set[k] = true
	}
	return set
}
