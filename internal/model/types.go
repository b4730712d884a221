// Package model defines shared data structures.
package model

import "time"

// Message is one parsed chat message with fully resolved timestamp fields.
type Message struct {
	Timestamp time.Time
	DateOnly  time.Time
	Year      int
	Month     time.Month
	Day       int
	Hour      int
	Minute    int
	Weekday   string
	Sender    string
	Body      string
}

// Totals summarizes message, word, media, and link counts.
type Totals struct {
	Messages int
	Words    int
	Media    int
	Links    int
}

// SenderCount is a per-sender message count.
type SenderCount struct {
	Sender string
	Count  int
}

// SenderShare is a per-sender percentage of all messages.
type SenderShare struct {
	Sender  string
	Percent float64
}

// TimeBucket is one labeled bucket in a timeline.
type TimeBucket struct {
	Label string
	Count int
}

// NameCount is a generic name/count pair for frequency tables.
type NameCount struct {
	Name  string
	Count int
}

// WordCount is a ranked word frequency entry.
type WordCount struct {
	Word  string
	Count int
}

// EmojiCount is a ranked emoji frequency entry.
type EmojiCount struct {
	Emoji string
	Count int
}

// Heatmap holds message counts per weekday and hour of day.
// Counts[i][h] is the count for Weekdays[i] at hour h; missing cells are zero.
type Heatmap struct {
	Weekdays []string
	Counts   [][]int
}

// SentimentCounts tallies classified messages per sentiment label.
type SentimentCounts struct {
	Positive int
	Negative int
	Neutral  int
}
