// Package loader reads game content from a data directory into an
// immutable Store. Content lives in per-category JSON or YAML files,
// optionally extended by Lua pack files. Everything is loaded up front;
// the engine never touches the filesystem after Open returns.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nathoo/shmoopland/types"
)

// Store holds all loaded game content. It is read-only after Open.
type Store struct {
	Start     string
	Locations map[string]types.Location
	Items     map[string]types.Item
	NPCs      map[string]types.NPCDef
	Quests    map[string]types.Quest
	Recipes   map[string]types.Recipe
	Templates map[string][]string
	Variables map[string][]string
}

// Category file shapes. Each file carries a top-level key naming its
// category, so a misplaced file fails loudly instead of silently
// loading zero entries.
type locationsFile struct {
	Start     string                    `json:"start" yaml:"start"`
	Locations map[string]types.Location `json:"locations" yaml:"locations"`
}

type itemsFile struct {
	Items   map[string]types.Item   `json:"items" yaml:"items"`
	Recipes map[string]types.Recipe `json:"recipes" yaml:"recipes"`
}

type npcsFile struct {
	NPCs map[string]types.NPCDef `json:"npcs" yaml:"npcs"`
}

type questsFile struct {
	Quests map[string]types.Quest `json:"quests" yaml:"quests"`
}

type templatesFile struct {
	Templates map[string][]string `json:"templates" yaml:"templates"`
	Variables map[string][]string `json:"variables" yaml:"variables"`
}

// Open loads all content categories from dir. Locations are mandatory;
// every other category degrades to empty with a warning so a world can
// ship without NPCs, quests, recipes, or templates.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store := &Store{
		Locations: map[string]types.Location{},
		Items:     map[string]types.Item{},
		NPCs:      map[string]types.NPCDef{},
		Quests:    map[string]types.Quest{},
		Recipes:   map[string]types.Recipe{},
		Templates: map[string][]string{},
		Variables: map[string][]string{},
	}

	var locs locationsFile
	found, err := readCategory(dir, "locations", &locs)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("loading %s: locations category is required", dir)
	}
	store.Start = locs.Start
	for id, loc := range locs.Locations {
		loc.ID = id
		store.Locations[id] = loc
	}
	if len(store.Locations) == 0 {
		return nil, fmt.Errorf("loading %s: no locations defined", dir)
	}
	if store.Start == "" {
		return nil, fmt.Errorf("loading %s: no start location defined", dir)
	}

	var items itemsFile
	if found, err = readCategory(dir, "items", &items); err != nil {
		return nil, err
	} else if !found {
		logger.Warn("content category missing, continuing without it", "category", "items", "dir", dir)
	}
	for id, item := range items.Items {
		item.ID = id
		store.Items[id] = item
	}
	for id, r := range items.Recipes {
		r.ID = id
		store.Recipes[id] = r
	}

	var npcs npcsFile
	if found, err = readCategory(dir, "npcs", &npcs); err != nil {
		return nil, err
	} else if !found {
		logger.Warn("content category missing, continuing without it", "category", "npcs", "dir", dir)
	}
	for id, def := range npcs.NPCs {
		def.ID = id
		store.NPCs[id] = def
	}

	var quests questsFile
	if found, err = readCategory(dir, "quests", &quests); err != nil {
		return nil, err
	} else if !found {
		logger.Warn("content category missing, continuing without it", "category", "quests", "dir", dir)
	}
	for id, q := range quests.Quests {
		q.ID = id
		store.Quests[id] = q
	}

	var templates templatesFile
	if found, err = readCategory(dir, "templates", &templates); err != nil {
		return nil, err
	} else if !found {
		logger.Warn("content category missing, continuing without it", "category", "templates", "dir", dir)
	}
	for id, pool := range templates.Templates {
		store.Templates[id] = pool
	}
	for name, values := range templates.Variables {
		store.Variables[name] = values
	}

	// Lua packs extend or override the file-based content.
	packs, err := luaPacks(dir)
	if err != nil {
		return nil, err
	}
	for _, pack := range packs {
		logger.Info("applying content pack", "pack", filepath.Base(pack))
		if err := applyPack(store, pack); err != nil {
			return nil, fmt.Errorf("applying pack %s: %w", filepath.Base(pack), err)
		}
	}

	if err := validate(store); err != nil {
		return nil, err
	}

	logger.Info("content loaded",
		"locations", len(store.Locations),
		"items", len(store.Items),
		"npcs", len(store.NPCs),
		"quests", len(store.Quests),
		"recipes", len(store.Recipes),
		"templates", len(store.Templates),
	)
	return store, nil
}

// readCategory reads <name>.json or <name>.yaml from dir into out.
// It reports whether any file for the category existed.
func readCategory(dir, name string, out any) (bool, error) {
	jsonPath := filepath.Join(dir, name+".json")
	yamlPath := filepath.Join(dir, name+".yaml")

	if data, err := os.ReadFile(jsonPath); err == nil {
		if err := json.Unmarshal(data, out); err != nil {
			return true, fmt.Errorf("parsing %s: %w", jsonPath, err)
		}
		return true, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("reading %s: %w", jsonPath, err)
	}

	if data, err := os.ReadFile(yamlPath); err == nil {
		if err := yaml.Unmarshal(data, out); err != nil {
			return true, fmt.Errorf("parsing %s: %w", yamlPath, err)
		}
		return true, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("reading %s: %w", yamlPath, err)
	}

	return false, nil
}

// luaPacks returns the .lua files in dir, sorted by name.
func luaPacks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading game directory %s: %w", dir, err)
	}
	var packs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			packs = append(packs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(packs)
	return packs, nil
}
