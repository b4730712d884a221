package analysis

import (
	"testing"
)

func TestWeekdayCountsSumToTotal(t *testing.T) {
	msgs := sampleMessages(t)
	counts := WeekdayCounts(Overall, msgs)
	var sum int
	for _, c := range counts {
		sum += c.Count
	}
	if sum != len(msgs) {
		t.Fatalf("weekday counts sum %d, want %d", sum, len(msgs))
	}
	// 2023-05-12 and 2023-06-02 were both Fridays.
	if counts[0].Name != "Friday" || counts[0].Count != 4 {
		t.Fatalf("unexpected top weekday: %+v", counts[0])
	}
}

func TestMonthCountsSumToTotal(t *testing.T) {
	msgs := sampleMessages(t)
	counts := MonthCounts(Overall, msgs)
	var sum int
	for _, c := range counts {
		sum += c.Count
	}
	if sum != len(msgs) {
		t.Fatalf("month counts sum %d, want %d", sum, len(msgs))
	}
	if counts[0].Name != "May" || counts[0].Count != 3 {
		t.Fatalf("unexpected top month: %+v", counts[0])
	}
}

func TestActivityHeatmap(t *testing.T) {
	hm := ActivityHeatmap(Overall, sampleMessages(t))
	if len(hm.Weekdays) != 7 {
		t.Fatalf("expected 7 weekday rows, got %d", len(hm.Weekdays))
	}
	for i, row := range hm.Counts {
		if len(row) != 24 {
			t.Fatalf("row %d has %d hours", i, len(row))
		}
	}
	// 2023-05-12 was a Friday; index 4 in Monday-first order.
	if hm.Counts[4][9] != 2 {
		t.Fatalf("expected 2 messages Friday 9h, got %d", hm.Counts[4][9])
	}
	if hm.Counts[4][21] != 1 {
		t.Fatalf("expected 1 message Friday 21h, got %d", hm.Counts[4][21])
	}
	if hm.Counts[0][0] != 0 {
		t.Fatalf("expected empty cell to be zero")
	}
}

func TestActivityHeatmapEmpty(t *testing.T) {
	hm := ActivityHeatmap(Overall, nil)
	for _, row := range hm.Counts {
		for _, c := range row {
			if c != 0 {
				t.Fatalf("expected all-zero heatmap")
			}
		}
	}
}
