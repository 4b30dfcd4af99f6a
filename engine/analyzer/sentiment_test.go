package analyzer

import "testing"

func TestSentimentPolarity(t *testing.T) {
	tests := []struct {
		input string
		sign  int // -1, 0, +1
	}{
		{"this is wonderful", 1},
		{"i love this place", 1},
		{"you are terrible", -1},
		{"i hate this", -1},
		{"go north", 0},
		{"", 0},
		{"not good", -1},
		{"not bad", 1},
		{"very good", 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Sentiment(tt.input)
			switch {
			case tt.sign > 0 && got <= 0:
				t.Errorf("Sentiment(%q) = %v, want positive", tt.input, got)
			case tt.sign < 0 && got >= 0:
				t.Errorf("Sentiment(%q) = %v, want negative", tt.input, got)
			case tt.sign == 0 && got != 0:
				t.Errorf("Sentiment(%q) = %v, want 0", tt.input, got)
			}
		})
	}
}

func TestSentimentBounded(t *testing.T) {
	inputs := []string{
		"absolutely extremely wonderful excellent perfect amazing",
		"extremely terrible awful horrible worst hate",
	}
	for _, input := range inputs {
		got := Sentiment(input)
		if got < -1 || got > 1 {
			t.Errorf("Sentiment(%q) = %v, out of [-1, 1]", input, got)
		}
	}
}

func TestIntensifierScales(t *testing.T) {
	plain := Sentiment("good")
	scaled := Sentiment("very good")
	if scaled <= plain {
		t.Errorf("intensifier did not raise score: %v vs %v", scaled, plain)
	}
}

func TestLemmaSuffixes(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		in   string
		want string
	}{
		{"went", "go"},
		{"took", "take"},
		{"walked", "walk"},
		{"taking", "take"},
		{"grabbed", "grab"},
		{"examines", "examine"},
		{"crystal", "crystal"}, // non-verbs pass through
	}
	for _, tt := range tests {
		if got := lex.Lemma(tt.in); got != tt.want {
			t.Errorf("Lemma(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
