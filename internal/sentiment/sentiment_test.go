package sentiment

import "testing"

func TestScorePositive(t *testing.T) {
	a := New()
	score := a.Score("I love this, it is great!")
	if score < 0.05 {
		t.Fatalf("expected positive score, got %f", score)
	}
	if score > 1 {
		t.Fatalf("score out of range: %f", score)
	}
}

func TestScoreNegative(t *testing.T) {
	a := New()
	score := a.Score("I hate this, it is terrible")
	if score > -0.05 {
		t.Fatalf("expected negative score, got %f", score)
	}
	if score < -1 {
		t.Fatalf("score out of range: %f", score)
	}
}

func TestScoreNeutral(t *testing.T) {
	a := New()
	if score := a.Score("the cat sat on the mat"); score != 0 {
		t.Fatalf("expected zero score, got %f", score)
	}
	if score := a.Score(""); score != 0 {
		t.Fatalf("expected zero score for empty text, got %f", score)
	}
}

func TestScoreNegationFlips(t *testing.T) {
	a := New()
	plain := a.Score("this is good")
	negated := a.Score("this is not good")
	if plain <= 0 {
		t.Fatalf("expected positive baseline, got %f", plain)
	}
	if negated >= 0 {
		t.Fatalf("expected negation to flip sign, got %f", negated)
	}
}

func TestScoreExclamationEmphasis(t *testing.T) {
	a := New()
	calm := a.Score("this is good")
	loud := a.Score("this is good!!!")
	if loud <= calm {
		t.Fatalf("expected emphasis to raise score: %f vs %f", calm, loud)
	}
}
