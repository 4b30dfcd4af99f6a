package analyzer

// Lexical sentiment scoring: each token contributes its polarity,
// negators flip the next scoring word, intensifiers scale it. The
// final score is the mean contribution, clamped to [-1, 1].

var positiveWords = map[string]float64{
	"good": 0.6, "great": 0.8, "excellent": 1.0, "wonderful": 1.0,
	"amazing": 0.9, "nice": 0.5, "lovely": 0.7, "beautiful": 0.8,
	"fantastic": 0.9, "happy": 0.7, "glad": 0.6, "love": 0.9,
	"like": 0.4, "thanks": 0.6, "thank": 0.6, "please": 0.3,
	"friend": 0.5, "kind": 0.5, "helpful": 0.6, "perfect": 1.0,
	"wise": 0.6, "best": 0.9, "fine": 0.4, "yes": 0.2,
}

var negativeWords = map[string]float64{
	"bad": 0.6, "terrible": 1.0, "awful": 1.0, "horrible": 1.0,
	"ugly": 0.6, "hate": 0.9, "dislike": 0.5, "angry": 0.7,
	"stupid": 0.8, "worst": 1.0, "poor": 0.4, "sad": 0.5,
	"wrong": 0.5, "broken": 0.4, "useless": 0.7, "expensive": 0.4,
	"boring": 0.5, "annoying": 0.6, "nasty": 0.7, "cursed": 0.6,
}

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "don't": true,
	"doesn't": true, "isn't": true, "won't": true, "can't": true,
	"nothing": true,
}

var intensifiers = map[string]float64{
	"very": 1.5, "really": 1.4, "so": 1.3, "extremely": 1.8,
	"quite": 1.2, "totally": 1.5, "absolutely": 1.7,
}

// Sentiment scores the polarity of lowercased text in [-1, 1].
// Neutral or empty text scores 0.
func Sentiment(lower string) float64 {
	tokens := tokenize(lower)
	if len(tokens) == 0 {
		return 0
	}

	var total float64
	var scored int
	negate := false
	scale := 1.0

	for _, tok := range tokens {
		if negators[tok] {
			negate = !negate
			continue
		}
		if mult, ok := intensifiers[tok]; ok {
			scale *= mult
			continue
		}

		var score float64
		if w, ok := positiveWords[tok]; ok {
			score = w
		} else if w, ok := negativeWords[tok]; ok {
			score = -w
		} else {
			continue
		}

		if negate {
			score = -score
		}
		total += score * scale
		scored++
		negate = false
		scale = 1.0
	}

	if scored == 0 {
		return 0
	}
	return clamp(total/float64(scored), -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
