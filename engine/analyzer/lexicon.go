package analyzer

import "strings"

// movementVerbs and interactionVerbs bucket verb lemmas into the two
// intent categories the dispatcher routes on.
var movementVerbs = map[string]bool{
	"go": true, "move": true, "walk": true, "run": true,
	"climb": true, "head": true, "travel": true, "enter": true,
}

var interactionVerbs = map[string]bool{
	"take": true, "get": true, "grab": true, "drop": true,
	"examine": true, "look": true, "inspect": true, "talk": true,
	"speak": true, "use": true, "give": true, "open": true,
	"ask": true, "buy": true, "sell": true,
}

// Lexicon is the linguistic backend: a verb inventory, an irregular
// lemma table, and a small gazetteer of known entity names. When absent
// the analyzer degrades to the literal-token fallback.
type Lexicon struct {
	verbs      map[string]bool
	irregulars map[string]string
	gazetteer  map[string]string // lowercased name -> label
}

// DefaultLexicon returns the built-in backend.
func DefaultLexicon() *Lexicon {
	verbs := map[string]bool{
		"help": true, "quit": true, "exit": true, "train": true,
		"craft": true, "show": true, "check": true, "search": true,
		"read": true, "wait": true, "want": true, "need": true,
		"say": true, "tell": true, "find": true, "see": true,
		"know": true, "think": true, "like": true, "love": true,
		"hate": true, "hear": true, "smell": true, "touch": true,
		"pick": true, "put": true, "wear": true, "eat": true,
		"drink": true, "fight": true, "attack": true, "defend": true,
		"trade": true, "drop": true,
	}
	for v := range movementVerbs {
		verbs[v] = true
	}
	for v := range interactionVerbs {
		verbs[v] = true
	}
	return &Lexicon{
		verbs: verbs,
		irregulars: map[string]string{
			"went":   "go",
			"goes":   "go",
			"going":  "go",
			"took":   "take",
			"taken":  "take",
			"taking": "take",
			"gave":   "give",
			"given":  "give",
			"giving": "give",
			"spoke":  "speak",
			"spoken": "speak",
			"ran":    "run",
			"got":    "get",
			"gotten": "get",
			"saw":    "see",
			"seen":   "see",
			"ate":    "eat",
			"drank":  "drink",
			"fought": "fight",
			"told":   "tell",
			"said":   "say",
			"heard":  "hear",
			"found":  "find",
			"put":    "put",
			"wore":   "wear",
			"using":  "use",
			"used":   "use",
		},
		gazetteer: map[string]string{
			"shmoopland": "PLACE",
			"merchant":   "PERSON",
			"wizard":     "PERSON",
			"guard":      "PERSON",
		},
	}
}

// IsVerb reports whether the lemma is in the verb inventory.
func (l *Lexicon) IsVerb(lemma string) bool {
	return l.verbs[lemma]
}

// EntityLabel returns the gazetteer label for a lowercased word.
func (l *Lexicon) EntityLabel(word string) (string, bool) {
	label, ok := l.gazetteer[word]
	return label, ok
}

// Lemma reduces an inflected word to its base form: irregular table
// first, then suffix stripping checked against the verb inventory.
// Words that resolve to nothing known are returned unchanged.
func (l *Lexicon) Lemma(word string) string {
	if base, ok := l.irregulars[word]; ok {
		return base
	}
	if l.verbs[word] {
		return word
	}
	for _, cand := range suffixCandidates(word) {
		if l.verbs[cand] {
			return cand
		}
	}
	return word
}

// suffixCandidates generates plausible base forms for common English
// inflections: -s, -es, -ies, -ed, -ing (with e-restoration and
// doubled-consonant collapse).
func suffixCandidates(word string) []string {
	var cands []string
	add := func(c string) {
		if len(c) >= 2 {
			cands = append(cands, c)
		}
	}

	if strings.HasSuffix(word, "ies") {
		add(strings.TrimSuffix(word, "ies") + "y")
	}
	if strings.HasSuffix(word, "es") {
		add(strings.TrimSuffix(word, "es"))
	}
	if strings.HasSuffix(word, "s") {
		add(strings.TrimSuffix(word, "s"))
	}
	for _, suffix := range []string{"ing", "ed"} {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, suffix)
		add(stem)
		add(stem + "e")
		if n := len(stem); n >= 2 && stem[n-1] == stem[n-2] {
			add(stem[:n-1]) // "stopped" -> "stop"
		}
	}
	return cands
}
