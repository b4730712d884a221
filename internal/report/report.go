package report

import (
	"github.com/avasilev/chatlens/internal/analysis"
	"github.com/avasilev/chatlens/internal/model"
	"github.com/avasilev/chatlens/internal/wordlist"
)

// Options bounds the ranked sections of a report.
type Options struct {
	TopSenders int
	TopWords   int
	TopEmoji   int
}

// Data holds every precomputed aggregate a report or dashboard renders.
type Data struct {
	Sender     string
	Totals     model.Totals
	TopSenders []model.SenderCount
	Shares     []model.SenderShare
	Monthly    []model.TimeBucket
	Daily      []model.TimeBucket
	Weekdays   []model.NameCount
	Months     []model.NameCount
	Heatmap    model.Heatmap
	Words      []model.WordCount
	Emoji      []model.EmojiCount
	Sentiment  model.SentimentCounts
	AllSenders []string
}

// Build runs every aggregation for the selected sender over the record
// slice. Empty input produces a well-typed zero-valued Data.
func Build(sender string, msgs []model.Message, stop wordlist.Set, scorer analysis.Scorer, opts Options) Data {
	top, shares := analysis.BusiestSenders(msgs, opts.TopSenders)
	_, sentiments := analysis.Sentiment(sender, msgs, scorer)
	return Data{
		Sender:     sender,
		Totals:     analysis.Totals(sender, msgs),
		TopSenders: top,
		Shares:     shares,
		Monthly:    analysis.MonthlyTimeline(sender, msgs),
		Daily:      analysis.DailyTimeline(sender, msgs),
		Weekdays:   analysis.WeekdayCounts(sender, msgs),
		Months:     analysis.MonthCounts(sender, msgs),
		Heatmap:    analysis.ActivityHeatmap(sender, msgs),
		Words:      analysis.TopWords(sender, msgs, stop, opts.TopWords),
		Emoji:      analysis.TopEmoji(sender, msgs, opts.TopEmoji),
		Sentiment:  sentiments,
		AllSenders: analysis.Senders(msgs),
	}
}
