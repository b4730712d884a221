package analysis

import (
	"github.com/avasilev/chatlens/internal/model"
)

// weekdayOrder fixes heatmap row order; frequency tables stay
// count-descending instead.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

const hoursPerDay = 24

// WeekdayCounts tallies messages per weekday name, count-descending.
func WeekdayCounts(sender string, msgs []model.Message) []model.NameCount {
	counts := make(map[string]int)
	for _, m := range filtered(sender, msgs) {
		counts[m.Weekday]++
	}
	return rankCounts(counts)
}

// MonthCounts tallies messages per month name, count-descending.
func MonthCounts(sender string, msgs []model.Message) []model.NameCount {
	counts := make(map[string]int)
	for _, m := range filtered(sender, msgs) {
		counts[m.Month.String()]++
	}
	return rankCounts(counts)
}

// ActivityHeatmap counts messages per (weekday, hour-of-day) cell. All
// 7x24 cells are present; cells with no messages are zero.
func ActivityHeatmap(sender string, msgs []model.Message) model.Heatmap {
	rows := make(map[string]int, len(weekdayOrder))
	for i, name := range weekdayOrder {
		rows[name] = i
	}
	counts := make([][]int, len(weekdayOrder))
	for i := range counts {
		counts[i] = make([]int, hoursPerDay)
	}
	for _, m := range filtered(sender, msgs) {
		row, ok := rows[m.Weekday]
		if !ok || m.Hour < 0 || m.Hour >= hoursPerDay {
			continue
		}
		counts[row][m.Hour]++
	}
	return model.Heatmap{Weekdays: weekdayOrder, Counts: counts}
}
