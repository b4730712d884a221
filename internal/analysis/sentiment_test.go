package analysis

import (
	"testing"
)

type fixedScorer struct {
	scores map[string]float64
}

func (f fixedScorer) Score(text string) float64 {
	return f.scores[text]
}

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.10, LabelPositive},
		{0.05, LabelPositive},
		{0.049, LabelNeutral},
		{0.0, LabelNeutral},
		{-0.049, LabelNeutral},
		{-0.05, LabelNegative},
		{-0.10, LabelNegative},
	}
	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Fatalf("Classify(%f) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestSentimentCounts(t *testing.T) {
	msgs := sampleMessages(t)
	scorer := fixedScorer{scores: map[string]float64{
		msgs[0].Body: 0.4,
		msgs[1].Body: -0.3,
		// remaining bodies score 0.0
	}}
	labels, counts := Sentiment(Overall, msgs, scorer)
	if len(labels) != len(msgs) {
		t.Fatalf("expected %d labels, got %d", len(msgs), len(labels))
	}
	if labels[0] != LabelPositive || labels[1] != LabelNegative || labels[2] != LabelNeutral {
		t.Fatalf("unexpected labels: %v", labels)
	}
	if counts.Positive != 1 || counts.Negative != 1 || counts.Neutral != 3 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestSentimentEmpty(t *testing.T) {
	labels, counts := Sentiment(Overall, nil, fixedScorer{})
	if len(labels) != 0 {
		t.Fatalf("expected no labels, got %v", labels)
	}
	if counts.Positive != 0 || counts.Negative != 0 || counts.Neutral != 0 {
		t.Fatalf("expected zero counts, got %+v", counts)
	}
}
