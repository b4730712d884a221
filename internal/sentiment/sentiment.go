// Package sentiment scores message text with a VADER-style valence lexicon.
//
// The analyzer is a black-box collaborator for the aggregation layer: any
// implementation of the same Score contract (compound score in [-1, 1]) can
// replace it. The lexicon is embedded and loaded once at construction.
package sentiment

import (
	"bufio"
	_ "embed"
	"math"
	"strconv"
	"strings"
)

//go:embed lexicon.txt
var lexiconData string

const (
	// normalization constant from the VADER compound formula
	alpha = 15.0
	// dampened, sign-flipped weight applied to negated tokens
	negationFactor = -0.74
	// per-exclamation emphasis, capped at four marks
	exclamationBoost = 0.292
	maxExclamations  = 4
)

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "none": {}, "neither": {},
	"nor": {}, "cannot": {}, "cant": {}, "dont": {}, "wont": {},
	"isnt": {}, "wasnt": {}, "arent": {}, "didnt": {}, "doesnt": {},
	"couldnt": {}, "shouldnt": {}, "wouldnt": {}, "aint": {},
}

// Analyzer holds the read-only valence lexicon.
type Analyzer struct {
	lexicon map[string]float64
}

// New builds an analyzer from the embedded lexicon.
func New() *Analyzer {
	lexicon := make(map[string]float64)
	scanner := bufio.NewScanner(strings.NewReader(lexiconData))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, rest, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		valence, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			continue
		}
		lexicon[strings.ToLower(word)] = valence
	}
	return &Analyzer{lexicon: lexicon}
}

// Score returns a compound sentiment score in [-1, 1] for the text.
// Zero means no lexicon token was found or valences cancelled out.
func (a *Analyzer) Score(text string) float64 {
	tokens := tokenize(text)
	var sum float64
	for i, tok := range tokens {
		valence, ok := a.lexicon[tok]
		if !ok {
			continue
		}
		if negatedAt(tokens, i) {
			valence *= negationFactor
		}
		sum += valence
	}
	if sum == 0 {
		return 0
	}
	excl := float64(min(strings.Count(text, "!"), maxExclamations)) * exclamationBoost
	if sum > 0 {
		sum += excl
	} else {
		sum -= excl
	}
	compound := sum / math.Sqrt(sum*sum+alpha)
	return math.Max(-1, math.Min(1, compound))
}

// negatedAt reports whether one of the three tokens preceding index i is a
// negation.
func negatedAt(tokens []string, i int) bool {
	for j := i - 3; j < i; j++ {
		if j < 0 {
			continue
		}
		tok := strings.ReplaceAll(tokens[j], "'", "")
		if _, ok := negations[tok]; ok {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:\"()[]{}")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
