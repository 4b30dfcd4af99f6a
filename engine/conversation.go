package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/shmoopland/engine/analyzer"
	"github.com/nathoo/shmoopland/engine/dialogue"
	"github.com/nathoo/shmoopland/engine/random"
)

// farewells end a conversation when spoken as the whole utterance or
// its first word.
var farewells = map[string]bool{
	"bye": true, "goodbye": true, "farewell": true,
}

// Conversation is a live exchange with one NPC. Input routed through
// Say goes to the NPC instead of the command dispatcher until a
// farewell ends it.
type Conversation struct {
	NPCID    string
	npc      *dialogue.NPC
	analyzer *analyzer.Analyzer
	rng      *random.RNG
	done     bool
}

// Done reports whether the conversation has ended.
func (c *Conversation) Done() bool {
	return c.done
}

// Say sends one player utterance to the NPC and returns the reply. The
// second return value is true when the conversation is over.
func (c *Conversation) Say(input string) (string, bool) {
	if c.done {
		return "", true
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fmt.Sprintf("%s waits for you to say something.", displayName(c.NPCID)), false
	}

	words := strings.Fields(strings.ToLower(trimmed))
	if farewells[words[0]] {
		c.done = true
		return fmt.Sprintf("%s: Safe travels, friend.", displayName(c.NPCID)), true
	}

	an := c.analyzer.Analyze(trimmed)
	reply := c.npc.React(trimmed, an, c.rng)
	return fmt.Sprintf("%s: %s", displayName(c.NPCID), reply), false
}

// End force-closes the conversation (interrupt handling in front ends).
func (c *Conversation) End() {
	c.done = true
}
