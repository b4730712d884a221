package analysis

import (
	"sort"
	"strings"

	"github.com/avasilev/chatlens/internal/chatlog"
	"github.com/avasilev/chatlens/internal/model"
	"github.com/avasilev/chatlens/internal/wordlist"
)

// wordTokens yields the case-folded, stopword-filtered tokens from human
// messages. Notification records and media placeholders are excluded.
func wordTokens(sender string, msgs []model.Message, stop wordlist.Set) []string {
	var out []string
	for _, m := range filtered(sender, msgs) {
		if m.Sender == chatlog.NotificationSender {
			continue
		}
		if strings.Contains(m.Body, chatlog.MediaPlaceholder) {
			continue
		}
		for _, tok := range strings.Fields(strings.ToLower(m.Body)) {
			if stop.Contains(tok) {
				continue
			}
			out = append(out, tok)
		}
	}
	return out
}

// TopWords returns the k most frequent words, count-descending with a
// lexical tiebreak. k <= 0 returns all words.
func TopWords(sender string, msgs []model.Message, stop wordlist.Set, k int) []model.WordCount {
	counts := make(map[string]int)
	for _, tok := range wordTokens(sender, msgs, stop) {
		counts[tok]++
	}
	out := make([]model.WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, model.WordCount{Word: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Word < out[j].Word
		}
		return out[i].Count > out[j].Count
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// WordStream space-joins the filtered tokens; this is the input an external
// word-cloud renderer consumes.
func WordStream(sender string, msgs []model.Message, stop wordlist.Set) string {
	return strings.Join(wordTokens(sender, msgs, stop), " ")
}
