package analysis

import (
	"github.com/avasilev/chatlens/internal/model"
)

// Sentiment labels.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// Classification thresholds on the compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Scorer is the black-box sentiment collaborator: a compound score in
// [-1, 1] for a piece of text.
type Scorer interface {
	Score(text string) float64
}

// Classify maps a compound score to its sentiment label.
func Classify(score float64) string {
	switch {
	case score >= positiveThreshold:
		return LabelPositive
	case score <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Sentiment scores each selected message and tallies the labels. The
// returned slice holds one label per selected record, in record order.
func Sentiment(sender string, msgs []model.Message, scorer Scorer) ([]string, model.SentimentCounts) {
	selected := filtered(sender, msgs)
	labels := make([]string, len(selected))
	var counts model.SentimentCounts
	for i, m := range selected {
		label := Classify(scorer.Score(m.Body))
		labels[i] = label
		switch label {
		case LabelPositive:
			counts.Positive++
		case LabelNegative:
			counts.Negative++
		default:
			counts.Neutral++
		}
	}
	return labels, counts
}
