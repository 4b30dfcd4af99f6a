package analyzer

import (
	"reflect"
	"testing"

	"github.com/nathoo/shmoopland/types"
)

func TestIntentClassification(t *testing.T) {
	a := New(16)

	tests := []struct {
		input string
		want  string
	}{
		{"go north", types.IntentMovement},
		{"walk to the market", types.IntentMovement},
		{"run east", types.IntentMovement},
		{"take the crystal", types.IntentInteraction},
		{"examine map", types.IntentInteraction},
		{"drop the potion", types.IntentInteraction},
		{"talk to the merchant", types.IntentInteraction},
		{"hello there", types.IntentGreeting},
		{"hi", types.IntentGreeting},
		{"where is the wizard?", types.IntentQuestion},
		{"what do you sell", types.IntentQuestion},
		{"xyzzy plugh", types.IntentUnknown},
		{"eat the bread", types.IntentOther},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			an := a.Analyze(tt.input)
			if an.Intent != tt.want {
				t.Errorf("Analyze(%q).Intent = %q, want %q", tt.input, an.Intent, tt.want)
			}
		})
	}
}

func TestCanonicalActions(t *testing.T) {
	a := New(16)

	tests := []struct {
		input string
		want  string
	}{
		{"look around", "examine"},
		{"go north", "move"},
		{"take crystal", "acquire"},
		{"drop crystal", "discard"},
		{"talk to merchant", "interact"},
		{"help me", "assist"},
		{"open the door", "open"}, // unmapped verbs keep their lemma
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			an := a.Analyze(tt.input)
			if an.Action != tt.want {
				t.Errorf("Analyze(%q).Action = %q, want %q", tt.input, an.Action, tt.want)
			}
		})
	}
}

func TestObjectsStripNoise(t *testing.T) {
	a := New(16)

	an := a.Analyze("take the magic crystal from a shelf")
	want := []string{"magic", "crystal", "shelf"}
	if !reflect.DeepEqual(an.Objects, want) {
		t.Errorf("Objects = %v, want %v", an.Objects, want)
	}
}

func TestLemmatizedVerbs(t *testing.T) {
	a := New(16)

	tests := []struct {
		input string
		want  string // intent
	}{
		{"went north", types.IntentMovement},
		{"taking the crystal", types.IntentInteraction},
		{"walked west", types.IntentMovement},
		{"grabbed the map", types.IntentInteraction},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := a.Analyze(tt.input).Intent; got != tt.want {
				t.Errorf("Intent = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTopicClassification(t *testing.T) {
	a := New(16)

	tests := []struct {
		input string
		want  string
	}{
		{"tell me about magic spells", "magic"},
		{"what items do you have", "items"},
		{"I want to buy a lantern", "trade"},
		{"any quests for me?", "quest"},
		{"how do I fight", "combat"},
		{"nice weather today", types.TopicGeneral},
		// Fixed category order: magic wins over trade.
		{"sell me a potion", "magic"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := a.Analyze(tt.input).Topic; got != tt.want {
				t.Errorf("Topic = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCacheHitReturnsSameAnalysis(t *testing.T) {
	a := New(16)

	first := a.Analyze("go north")
	if a.CacheLen() != 1 {
		t.Fatalf("CacheLen() = %d, want 1", a.CacheLen())
	}

	// Case and whitespace variants share one entry.
	second := a.Analyze("  GO NORTH ")
	if a.CacheLen() != 1 {
		t.Errorf("CacheLen() after variant = %d, want 1", a.CacheLen())
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached analysis differs: %+v vs %+v", first, second)
	}
}

func TestAnalyzeNeverFails(t *testing.T) {
	a := New(16)

	for _, input := range []string{"", "   ", "!!!", "?", "the the the"} {
		an := a.Analyze(input)
		if an.Intent == "" {
			t.Errorf("Analyze(%q) produced empty intent", input)
		}
	}
}

func TestEntityExtraction(t *testing.T) {
	a := New(16)

	an := a.Analyze("ask the merchant about Shmoopland")
	var gotMerchant, gotPlace bool
	for _, e := range an.Entities {
		if e.Text == "merchant" && e.Label == "PERSON" {
			gotMerchant = true
		}
		if e.Text == "Shmoopland" && e.Label == "PLACE" {
			gotPlace = true
		}
	}
	if !gotMerchant {
		t.Errorf("merchant not extracted: %v", an.Entities)
	}
	if !gotPlace {
		t.Errorf("Shmoopland not extracted: %v", an.Entities)
	}
}

func TestFallbackAnalyzer(t *testing.T) {
	a := NewFallback(16)

	an := a.Analyze("take crystal")
	if an.Intent != types.IntentUnknown {
		t.Errorf("Intent = %q, want unknown", an.Intent)
	}
	if an.Action != "take" {
		t.Errorf("Action = %q, want take", an.Action)
	}
	if !reflect.DeepEqual(an.Objects, []string{"crystal"}) {
		t.Errorf("Objects = %v, want [crystal]", an.Objects)
	}
}
