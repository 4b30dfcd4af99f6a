// Package dialogue implements per-NPC conversational state: a mood
// vector, a bounded FIFO memory of recent exchanges, per-topic
// interaction counters, and template-pool response selection.
package dialogue

import (
	"github.com/nathoo/shmoopland/engine/random"
	"github.com/nathoo/shmoopland/types"
)

// MemoryCapacity bounds the conversation memory; the oldest exchange
// is evicted first.
const MemoryCapacity = 5

// Mood deltas applied per utterance. Energy always drains: talking
// costs the NPC something regardless of tone.
const (
	happinessFactor = 0.1
	trustFactor     = 0.05
	energyCost      = 0.1
)

// sentimentThreshold separates positive/negative response types from
// neutral ones.
const sentimentThreshold = 0.3

// genericResponses is the final fallback when an NPC has no usable
// template pool at all.
var genericResponses = []string{
	"I'm not sure how to respond to that.",
}

// genericGreetings backs any missing mood bucket.
var genericGreetings = []string{
	"Hello there.",
	"Greetings, traveler.",
}

// Exchange is one remembered utterance with its analysis.
type Exchange struct {
	Input    string
	Analysis types.Analysis
}

// NPC is the dialogue state for one non-player character. It lives as
// long as the session; mood does not persist across sessions.
type NPC struct {
	Type        string
	def         types.NPCDef
	mood        types.Mood
	memory      []Exchange
	topicCounts map[string]int
}

// New creates an NPC from its template bundle. Mood starts balanced
// with full energy.
func New(def types.NPCDef) *NPC {
	return &NPC{
		Type:        def.ID,
		def:         def,
		mood:        types.Mood{Happiness: 0.5, Trust: 0.5, Energy: 1.0},
		topicCounts: map[string]int{},
	}
}

// Mood returns the current mood snapshot.
func (n *NPC) Mood() types.Mood {
	return n.mood
}

// Memory returns the remembered exchanges, oldest first.
func (n *NPC) Memory() []Exchange {
	return n.memory
}

// TopicCount returns how many utterances touched the given topic.
func (n *NPC) TopicCount(topic string) int {
	return n.topicCounts[topic]
}

// React processes one player utterance: updates mood, records the
// exchange, counts the topic, and selects a response line uniformly at
// random from the candidate pool.
func (n *NPC) React(input string, an types.Analysis, rng *random.RNG) string {
	n.mood.Happiness = clamp01(n.mood.Happiness + an.Sentiment*happinessFactor)
	n.mood.Trust = clamp01(n.mood.Trust + an.Sentiment*trustFactor)
	n.mood.Energy = clamp01(n.mood.Energy - energyCost)

	n.memory = append(n.memory, Exchange{Input: input, Analysis: an})
	if len(n.memory) > MemoryCapacity {
		n.memory = n.memory[1:]
	}

	n.topicCounts[an.Topic]++

	pool := n.responsePool(an)
	return rng.Pick(pool)
}

// responsePool unions topic-specific lines with response-type lines,
// falling back to the neutral pool and finally a generic line.
func (n *NPC) responsePool(an types.Analysis) []string {
	var pool []string
	if an.Topic != types.TopicGeneral {
		pool = append(pool, n.def.Responses[an.Topic]...)
	}
	pool = append(pool, n.def.Responses[responseType(an)]...)
	if len(pool) == 0 {
		pool = n.def.Responses["neutral"]
	}
	if len(pool) == 0 {
		pool = genericResponses
	}
	return pool
}

// responseType classifies the utterance for template selection.
func responseType(an types.Analysis) string {
	switch {
	case an.Intent == types.IntentGreeting:
		return "greeting"
	case an.Intent == types.IntentQuestion:
		return "informative"
	case an.Sentiment > sentimentThreshold:
		return "positive"
	case an.Sentiment < -sentimentThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// Greeting selects a line from the mood bucket matching current
// happiness: above 0.7 happy, below 0.3 tired, otherwise neutral.
// A missing bucket falls back to the generic set.
func (n *NPC) Greeting(rng *random.RNG) string {
	bucket := "neutral"
	switch {
	case n.mood.Happiness > 0.7:
		bucket = "happy"
	case n.mood.Happiness < 0.3:
		bucket = "tired"
	}

	lines := n.def.Greetings[bucket]
	if len(lines) == 0 {
		lines = genericGreetings
	}
	return rng.Pick(lines)
}

// Close clears the conversation memory. Called by the owning session
// at end of life.
func (n *NPC) Close() {
	n.memory = nil
	n.topicCounts = map[string]int{}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
