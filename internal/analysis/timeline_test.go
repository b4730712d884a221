package analysis

import (
	"testing"
)

func TestMonthlyTimeline(t *testing.T) {
	got := MonthlyTimeline(Overall, sampleMessages(t))
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	if got[0].Label != "May-2023" || got[0].Count != 3 {
		t.Fatalf("unexpected first bucket: %+v", got[0])
	}
	if got[1].Label != "June-2023" || got[1].Count != 2 {
		t.Fatalf("unexpected second bucket: %+v", got[1])
	}
}

func TestDailyTimeline(t *testing.T) {
	got := DailyTimeline(Overall, sampleMessages(t))
	if len(got) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(got))
	}
	if got[0].Label != "2023-05-12" || got[0].Count != 3 {
		t.Fatalf("unexpected first bucket: %+v", got[0])
	}
	if got[2].Label != "2023-06-02" || got[2].Count != 1 {
		t.Fatalf("unexpected last bucket: %+v", got[2])
	}
}

func TestTimelinesEmpty(t *testing.T) {
	if got := MonthlyTimeline(Overall, nil); len(got) != 0 {
		t.Fatalf("expected empty monthly timeline, got %v", got)
	}
	if got := DailyTimeline("Nobody", sampleMessages(t)); len(got) != 0 {
		t.Fatalf("expected empty daily timeline, got %v", got)
	}
}
