package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/avasilev/chatlens/internal/model"
)

// MonthlyTimeline buckets messages per calendar month in chronological
// order. Labels follow the "January-2006" convention of the display layer.
func MonthlyTimeline(sender string, msgs []model.Message) []model.TimeBucket {
	type monthKey struct {
		year  int
		month time.Month
	}
	counts := make(map[monthKey]int)
	for _, m := range filtered(sender, msgs) {
		counts[monthKey{year: m.Year, month: m.Month}]++
	}
	keys := make([]monthKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year == keys[j].year {
			return keys[i].month < keys[j].month
		}
		return keys[i].year < keys[j].year
	})
	out := make([]model.TimeBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.TimeBucket{
			Label: fmt.Sprintf("%s-%d", k.month, k.year),
			Count: counts[k],
		})
	}
	return out
}

// DailyTimeline buckets messages per calendar day in chronological order.
func DailyTimeline(sender string, msgs []model.Message) []model.TimeBucket {
	counts := make(map[time.Time]int)
	for _, m := range filtered(sender, msgs) {
		counts[m.DateOnly]++
	}
	days := make([]time.Time, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	out := make([]model.TimeBucket, 0, len(days))
	for _, d := range days {
		out = append(out, model.TimeBucket{
			Label: d.Format("2006-01-02"),
			Count: counts[d],
		})
	}
	return out
}
