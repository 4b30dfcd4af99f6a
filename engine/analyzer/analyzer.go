// Package analyzer turns raw command text into a structured Analysis:
// intent, canonical action, objects, entities, sentiment, and topic.
// Classification is a small closed rule set over lemmatized verbs and
// keyword sets, not natural-language understanding.
package analyzer

import (
	"strings"
	"unicode"

	"github.com/nathoo/shmoopland/engine/cache"
	"github.com/nathoo/shmoopland/types"
)

// actionMap maps a verb lemma to its canonical action.
// Unmapped verbs keep their lemma as the action.
var actionMap = map[string]string{
	"look": "examine",
	"go":   "move",
	"take": "acquire",
	"drop": "discard",
	"talk": "interact",
	"help": "assist",
}

// topicOrder fixes the category enumeration order: the first category
// whose keyword matches wins, regardless of match length.
var topicOrder = []string{"magic", "items", "trade", "quest", "combat"}

var topicKeywords = map[string][]string{
	"magic":  {"magic", "spell", "wizard", "enchant", "potion", "crystal"},
	"items":  {"item", "object", "thing", "artifact", "treasure"},
	"trade":  {"buy", "sell", "trade", "price", "gold", "coin", "shop"},
	"quest":  {"quest", "task", "mission", "journey", "adventure"},
	"combat": {"fight", "attack", "battle", "weapon", "sword", "defend"},
}

var greetingWords = map[string]bool{
	"hello": true, "hi": true, "hey": true, "greetings": true, "howdy": true,
}

var questionWords = map[string]bool{
	"who": true, "what": true, "where": true, "when": true, "why": true,
	"how": true, "which": true, "can": true, "could": true, "would": true,
	"do": true, "does": true, "is": true, "are": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

var prepositions = map[string]bool{
	"on": true, "at": true, "to": true, "with": true,
	"in": true, "from": true, "about": true, "into": true,
}

// Analyzer converts command text into Analysis values, memoizing
// results in a bounded cache. A nil lexicon means the linguistic
// backend is unavailable and the literal-token fallback is used.
type Analyzer struct {
	lexicon *Lexicon
	cache   *cache.Cache
}

// New creates an analyzer with the default lexicon.
func New(cacheCapacity int) *Analyzer {
	return &Analyzer{
		lexicon: DefaultLexicon(),
		cache:   cache.New(cacheCapacity),
	}
}

// NewFallback creates an analyzer without a linguistic backend.
// Analyze degrades to the literal first-token split.
func NewFallback(cacheCapacity int) *Analyzer {
	return &Analyzer{cache: cache.New(cacheCapacity)}
}

// Analyze produces a best-effort Analysis for any input. It never
// fails: unparseable text yields intent "unknown". Results are cached
// by the canonical key (lowercased, trimmed); a cache hit returns the
// stored Analysis without recomputation.
func (a *Analyzer) Analyze(text string) types.Analysis {
	key := cache.Normalize(text)
	if v, ok := a.cache.Get(key); ok {
		return v.(types.Analysis)
	}

	var an types.Analysis
	if a.lexicon == nil {
		an = a.fallback(text)
	} else {
		an = a.analyze(text)
	}

	a.cache.Put(key, an)
	return an
}

// CacheLen reports how many analyses are memoized.
func (a *Analyzer) CacheLen() int {
	return a.cache.Len()
}

// ClearCache drops all memoized analyses. Called at session end.
func (a *Analyzer) ClearCache() {
	a.cache.Clear()
}

// fallback is the degraded path when no lexicon is available:
// action = first token, objects = remaining tokens.
func (a *Analyzer) fallback(text string) types.Analysis {
	an := types.Analysis{
		Intent: types.IntentUnknown,
		Topic:  types.TopicGeneral,
	}
	words := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(words) == 0 {
		return an
	}
	an.Action = words[0]
	an.Objects = words[1:]
	return an
}

func (a *Analyzer) analyze(text string) types.Analysis {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	tokens := tokenize(lower)

	an := types.Analysis{
		Sentiment: Sentiment(lower),
		Topic:     classifyTopic(lower),
		Entities:  a.extractEntities(trimmed),
	}

	// First token whose lemma is a known verb.
	verbIdx := -1
	var lemma string
	for i, tok := range tokens {
		l := a.lexicon.Lemma(tok)
		if a.lexicon.IsVerb(l) {
			verbIdx = i
			lemma = l
			break
		}
	}

	if verbIdx < 0 {
		an.Intent = classifyVerbless(tokens, trimmed)
		an.Objects = contentWords(tokens)
		return an
	}

	if action, ok := actionMap[lemma]; ok {
		an.Action = action
	} else {
		an.Action = lemma
	}
	an.Intent = classifyIntent(lemma, tokens, trimmed)
	an.Objects = contentWords(tokens[verbIdx+1:])
	return an
}

// classifyIntent buckets a detected verb into a coarse intent category.
func classifyIntent(lemma string, tokens []string, raw string) string {
	if len(tokens) > 0 && greetingWords[tokens[0]] {
		return types.IntentGreeting
	}
	if isQuestion(tokens, raw) {
		return types.IntentQuestion
	}
	if movementVerbs[lemma] {
		return types.IntentMovement
	}
	if interactionVerbs[lemma] {
		return types.IntentInteraction
	}
	return types.IntentOther
}

// classifyVerbless handles input with no recognized verb. Greetings and
// questions still classify; everything else is unknown.
func classifyVerbless(tokens []string, raw string) string {
	if len(tokens) > 0 && greetingWords[tokens[0]] {
		return types.IntentGreeting
	}
	if isQuestion(tokens, raw) {
		return types.IntentQuestion
	}
	return types.IntentUnknown
}

func isQuestion(tokens []string, raw string) bool {
	if strings.HasSuffix(strings.TrimSpace(raw), "?") {
		return true
	}
	return len(tokens) > 0 && questionWords[tokens[0]]
}

// classifyTopic returns the first category (in fixed order) whose
// keyword appears as a substring of the lowercased input.
func classifyTopic(lower string) string {
	for _, topic := range topicOrder {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(lower, kw) {
				return topic
			}
		}
	}
	return types.TopicGeneral
}

// extractEntities collects gazetteer matches and capitalized tokens,
// in order of appearance.
func (a *Analyzer) extractEntities(raw string) []types.Entity {
	var entities []types.Entity
	for _, tok := range strings.Fields(raw) {
		word := strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if word == "" {
			continue
		}
		if label, ok := a.lexicon.EntityLabel(strings.ToLower(word)); ok {
			entities = append(entities, types.Entity{Text: word, Label: label})
			continue
		}
		if unicode.IsUpper([]rune(word)[0]) {
			entities = append(entities, types.Entity{Text: word, Label: "NAME"})
		}
	}
	return entities
}

// contentWords strips articles and prepositions, keeping order.
func contentWords(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if articles[tok] || prepositions[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// tokenize splits lowercased text into words, stripping punctuation.
func tokenize(lower string) []string {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
