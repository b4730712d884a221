package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/avasilev/chatlens/internal/analysis"
	"github.com/avasilev/chatlens/internal/chatlog"
	"github.com/avasilev/chatlens/internal/sentiment"
	"github.com/avasilev/chatlens/internal/wordlist"
)

const sampleExport = "12/5/23, 9:00 AM - Alice: good morning everyone ☕\n" +
	"12/5/23, 9:05 AM - Bob: morning! see https://example.com\n" +
	"12/5/23, 9:10 AM - Alice: <Media omitted>\n" +
	"13/5/23, 8:30 PM - Bob: I love this group\n"

func buildSample(t *testing.T) Data {
	t.Helper()
	msgs, err := chatlog.Parse(sampleExport)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	opts := Options{TopSenders: 5, TopWords: 20, TopEmoji: 10}
	return Build(analysis.Overall, msgs, wordlist.Default(), sentiment.New(), opts)
}

func TestBuild(t *testing.T) {
	d := buildSample(t)
	if d.Totals.Messages != 4 {
		t.Fatalf("expected 4 messages, got %d", d.Totals.Messages)
	}
	if d.Totals.Media != 1 || d.Totals.Links != 1 {
		t.Fatalf("unexpected totals: %+v", d.Totals)
	}
	if len(d.TopSenders) != 2 {
		t.Fatalf("expected 2 senders, got %d", len(d.TopSenders))
	}
	if len(d.Monthly) != 1 || d.Monthly[0].Count != 4 {
		t.Fatalf("unexpected monthly timeline: %+v", d.Monthly)
	}
	if len(d.Daily) != 2 {
		t.Fatalf("expected 2 daily buckets, got %d", len(d.Daily))
	}
	if d.Sentiment.Positive == 0 {
		t.Fatalf("expected at least one positive message, got %+v", d.Sentiment)
	}
	if got := d.AllSenders; len(got) != 2 || got[0] != "Alice" || got[1] != "Bob" {
		t.Fatalf("unexpected senders: %v", got)
	}
}

func TestRender(t *testing.T) {
	d := buildSample(t)
	var buf bytes.Buffer
	if err := Render(&buf, d, 80); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Chat Report (Overall)",
		"Totals",
		"Busiest Senders",
		"Monthly Activity",
		"Messages by Weekday",
		"Hourly Activity",
		"Common Words",
		"Sentiment",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderNarrowWidth(t *testing.T) {
	// A 1-column terminal must degrade to a clamped sparkline, not panic.
	d := buildSample(t)
	for _, width := range []int{1, 2, 3} {
		var buf bytes.Buffer
		if err := Render(&buf, d, width); err != nil {
			t.Fatalf("render failed at width %d: %v", width, err)
		}
		if !strings.Contains(buf.String(), "Monthly Activity") {
			t.Fatalf("expected timeline section at width %d", width)
		}
	}
}

func TestRenderEmptyData(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Data{Sender: analysis.Overall}, 0); err != nil {
		t.Fatalf("render failed on empty data: %v", err)
	}
	if !strings.Contains(buf.String(), "Totals") {
		t.Fatalf("expected totals section even when empty")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 5, 10})
	if len(got) != 3 {
		t.Fatalf("expected 3 cells, got %q", got)
	}
	if got[0] != ' ' || got[2] != '@' {
		t.Fatalf("unexpected scaling: %q", got)
	}
}
