// Package analysis derives descriptive statistics from parsed message
// records.
//
// Every function is a pure reducer over the immutable record slice: empty
// input yields a zero-valued result, never an error. Filtering by sender is
// uniform across the package; the Overall sentinel selects all records.
package analysis

import (
	"sort"

	"github.com/avasilev/chatlens/internal/chatlog"
	"github.com/avasilev/chatlens/internal/model"
)

// Overall selects all senders.
const Overall = "Overall"

func filtered(sender string, msgs []model.Message) []model.Message {
	if sender == Overall {
		return msgs
	}
	out := make([]model.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Sender == sender {
			out = append(out, m)
		}
	}
	return out
}

// Senders returns the distinct human senders sorted by name, with the
// notification sentinel excluded. The display shell prepends Overall.
func Senders(msgs []model.Message) []string {
	seen := make(map[string]struct{})
	for _, m := range msgs {
		if m.Sender == chatlog.NotificationSender {
			continue
		}
		seen[m.Sender] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func rankCounts(counts map[string]int) []model.NameCount {
	out := make([]model.NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, model.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Name < out[j].Name
		}
		return out[i].Count > out[j].Count
	})
	return out
}
