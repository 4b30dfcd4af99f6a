// Package skill implements character skills: experience, level-ups
// with a scaling threshold, and chance-based skill checks.
package skill

import (
	"fmt"
	"sort"

	"github.com/nathoo/shmoopland/engine/random"
)

// Level thresholds start at 100 experience and grow 1.5x per level.
const (
	baseThreshold = 100
	growthFactor  = 1.5
)

// TrainAmount is the experience granted by one training session.
const TrainAmount = 10

// Skill is one trainable ability.
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	Experience  int    `json:"experience"`
	NextLevel   int    `json:"next_level"`
}

// Set manages the player's skills.
type Set struct {
	skills map[string]*Skill
}

// NewSet creates the default skill set.
func NewSet() *Set {
	descriptions := map[string]string{
		"magic":       "Ability to understand and use magical items",
		"negotiation": "Effectiveness in bartering and conversations",
		"exploration": "Skill at finding hidden paths and secrets",
		"crafting":    "Ability to create and enhance magical items",
		"lore":        "Knowledge of Shmoopland's history and mysteries",
	}
	skills := make(map[string]*Skill, len(descriptions))
	for name, desc := range descriptions {
		skills[name] = &Skill{
			Name:        name,
			Description: desc,
			Level:       1,
			NextLevel:   baseThreshold,
		}
	}
	return &Set{skills: skills}
}

// Get returns a skill by name.
func (s *Set) Get(name string) (*Skill, bool) {
	sk, ok := s.skills[name]
	return sk, ok
}

// Level returns the skill's level, or 0 for unknown skills.
func (s *Set) Level(name string) int {
	if sk, ok := s.skills[name]; ok {
		return sk.Level
	}
	return 0
}

// All returns the skills sorted by name.
func (s *Set) All() []*Skill {
	out := make([]*Skill, 0, len(s.skills))
	for _, sk := range s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RestoreAll overwrites known skills with saved values. Skills missing
// from the save keep their defaults.
func (s *Set) RestoreAll(saved []Skill) {
	for _, sk := range saved {
		if cur, ok := s.skills[sk.Name]; ok {
			*cur = sk
		}
	}
}

// AddExperience grants experience to a skill. On level-up the surplus
// carries over and the next threshold scales by the growth factor.
func (s *Set) AddExperience(name string, amount int) (bool, string) {
	sk, ok := s.skills[name]
	if !ok {
		return false, fmt.Sprintf("Unknown skill: %s", name)
	}

	sk.Experience += amount
	leveled := false
	for sk.Experience >= sk.NextLevel {
		sk.Experience -= sk.NextLevel
		sk.Level++
		sk.NextLevel = int(float64(sk.NextLevel) * growthFactor)
		leveled = true
	}

	if leveled {
		return true, fmt.Sprintf("Level Up! Your %s is now level %d!", name, sk.Level)
	}
	return false, fmt.Sprintf("Gained %d experience in %s.", amount, name)
}

// Check rolls a skill check against a difficulty. Success chance is
// level/difficulty x 0.8, clamped to [0.05, 0.95]; success grants
// experience proportional to how hard the check was.
func (s *Set) Check(name string, difficulty int, rng *random.RNG) (bool, string) {
	sk, ok := s.skills[name]
	if !ok {
		return false, fmt.Sprintf("Cannot perform check for unknown skill: %s", name)
	}
	if difficulty < 1 {
		difficulty = 1
	}

	chance := float64(sk.Level) / float64(difficulty) * 0.8
	if chance < 0.05 {
		chance = 0.05
	}
	if chance > 0.95 {
		chance = 0.95
	}

	if rng.Float64() < chance {
		gain := difficulty - sk.Level
		if gain < 1 {
			gain = 1
		}
		s.AddExperience(name, gain)
		return true, fmt.Sprintf("Success! Your %s skill served you well.", name)
	}
	return false, fmt.Sprintf("Failed. Perhaps with more practice in %s...", name)
}
