// Package types defines the shared data structures for the Shmoopland engine.
// It holds only type definitions, no logic.
package types

// Intent categories produced by the command analyzer.
const (
	IntentMovement    = "movement"
	IntentInteraction = "interaction"
	IntentGreeting    = "greeting"
	IntentQuestion    = "question"
	IntentOther       = "other"
	IntentUnknown     = "unknown"
)

// TopicGeneral is the fallback topic when no keyword category matches.
const TopicGeneral = "general"

// InventoryLocation is the sentinel pseudo-location for carried items.
const InventoryLocation = "inventory"

// Entity is a named-entity span detected in a command.
type Entity struct {
	Text  string
	Label string
}

// Analysis is the analyzer's structured view of one command.
// It is transient: produced per command, cached by normalized input text.
type Analysis struct {
	Intent    string
	Action    string // canonical action verb ("move", "acquire", ...)
	Objects   []string
	Entities  []Entity
	Sentiment float64 // polarity in [-1, 1]
	Topic     string
}

// Location is a read-only location definition.
type Location struct {
	ID          string            `json:"-" yaml:"-"`
	Description string            `json:"description" yaml:"description"`
	Exits       map[string]string `json:"exits" yaml:"exits"` // direction -> location ID
}

// Item is a world object the player can take, drop, and examine.
// Location is a location ID or the "inventory" sentinel. Lore is extra
// text revealed only by a successful lore skill check.
type Item struct {
	ID          string `json:"-" yaml:"-"`
	Description string `json:"description" yaml:"description"`
	ExamineText string `json:"examine_text" yaml:"examine_text"`
	Lore        string `json:"lore" yaml:"lore"`
	Location    string `json:"location" yaml:"location"`
}

// Mood is an NPC's emotional state. All components stay in [0, 1].
type Mood struct {
	Happiness float64 `json:"happiness"`
	Trust     float64 `json:"trust"`
	Energy    float64 `json:"energy"`
}

// NPCDef is the template bundle for one NPC type.
// Greetings are keyed by mood bucket ("happy", "neutral", "tired");
// Responses are keyed by response type ("positive", "negative",
// "neutral", "informative", "greeting") or by topic ("magic", "trade", ...).
type NPCDef struct {
	ID           string              `json:"-" yaml:"-"`
	Location     string              `json:"location" yaml:"location"`
	Greetings    map[string][]string `json:"greetings" yaml:"greetings"`
	Responses    map[string][]string `json:"responses" yaml:"responses"`
	Friendliness float64             `json:"friendliness" yaml:"friendliness"`
}

// Objective is a single quest objective.
type Objective struct {
	Type        string `json:"type" yaml:"type"`
	Target      string `json:"target" yaml:"target"`
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

// Reward is the bundle granted when a quest completes.
type Reward struct {
	Items      []string `json:"items" yaml:"items"`
	Experience int      `json:"experience" yaml:"experience"`
}

// Quest is an ordered list of objectives with prerequisites and rewards.
type Quest struct {
	ID            string      `json:"-" yaml:"-"`
	Title         string      `json:"title" yaml:"title"`
	Description   string      `json:"description" yaml:"description"`
	Objectives    []Objective `json:"objectives" yaml:"objectives"`
	Rewards       Reward      `json:"rewards" yaml:"rewards"`
	Prerequisites []string    `json:"prerequisites" yaml:"prerequisites"`
	NextQuest     string      `json:"next_quest" yaml:"next_quest"`
	Completed     bool        `json:"completed" yaml:"completed"`
}

// Recipe defines a craftable item.
type Recipe struct {
	ID               string   `json:"-" yaml:"-"`
	Name             string   `json:"name" yaml:"name"`
	Ingredients      []string `json:"ingredients" yaml:"ingredients"`
	Result           string   `json:"result" yaml:"result"`
	Description      string   `json:"description" yaml:"description"`
	RequiredLocation string   `json:"required_location" yaml:"required_location"`
}

// Result is the output of a single game step.
type Result struct {
	Output   []string
	GameOver bool
}

// Snapshot is the read-only state view returned across the command boundary.
type Snapshot struct {
	Location  string   `json:"location"`
	Inventory []string `json:"inventory"`
	Message   string   `json:"message"`
}
