package analysis

import (
	"math"
	"sort"

	"github.com/avasilev/chatlens/internal/model"
)

// BusiestSenders returns the top-n senders by message count and the full
// per-sender percentage table, both count-descending with a name tiebreak.
func BusiestSenders(msgs []model.Message, n int) ([]model.SenderCount, []model.SenderShare) {
	if len(msgs) == 0 {
		return nil, nil
	}
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[m.Sender]++
	}
	ranked := make([]model.SenderCount, 0, len(counts))
	for sender, count := range counts {
		ranked = append(ranked, model.SenderCount{Sender: sender, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Sender < ranked[j].Sender
		}
		return ranked[i].Count > ranked[j].Count
	})

	total := float64(len(msgs))
	shares := make([]model.SenderShare, 0, len(ranked))
	for _, sc := range ranked {
		percent := math.Round(float64(sc.Count)/total*100*100) / 100
		shares = append(shares, model.SenderShare{Sender: sc.Sender, Percent: percent})
	}

	top := ranked
	if n > 0 && len(top) > n {
		top = top[:n]
	}
	return top, shares
}
