package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/avasilev/chatlens/internal/model"
)

const (
	sparkChars      = " .:-=+*#%@"
	fallbackWidth   = 80
	minTimelineSpan = 10
)

// TerminalWidth returns the writer's terminal width, or a fallback when the
// writer is not a terminal.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return fallbackWidth
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Render writes the full plain-text report.
func Render(w io.Writer, d Data, width int) error {
	if width <= 0 {
		width = fallbackWidth
	}
	if err := renderTotals(w, d); err != nil {
		return err
	}
	if err := renderSenders(w, d); err != nil {
		return err
	}
	if err := renderTimeline(w, "Monthly Activity", d.Monthly, width); err != nil {
		return err
	}
	if err := renderTimeline(w, "Daily Activity", d.Daily, width); err != nil {
		return err
	}
	if err := renderNameCounts(w, "Messages by Weekday", "Weekday", d.Weekdays); err != nil {
		return err
	}
	if err := renderNameCounts(w, "Messages by Month", "Month", d.Months); err != nil {
		return err
	}
	if err := renderHeatmap(w, d.Heatmap); err != nil {
		return err
	}
	if err := renderWords(w, d.Words); err != nil {
		return err
	}
	if err := renderEmoji(w, d.Emoji); err != nil {
		return err
	}
	return renderSentiment(w, d.Sentiment)
}

func renderTotals(w io.Writer, d Data) error {
	if _, err := fmt.Fprintf(w, "Chat Report (%s)\n\n", d.Sender); err != nil {
		return err
	}
	rows := [][]string{
		{"Messages", strconv.Itoa(d.Totals.Messages)},
		{"Words", strconv.Itoa(d.Totals.Words)},
		{"Media", strconv.Itoa(d.Totals.Media)},
		{"Links", strconv.Itoa(d.Totals.Links)},
	}
	return writeSection(w, "Totals", formatTable(nil, rows, map[int]bool{1: true}))
}

func renderSenders(w io.Writer, d Data) error {
	if len(d.TopSenders) == 0 {
		return nil
	}
	shareBySender := make(map[string]float64, len(d.Shares))
	for _, s := range d.Shares {
		shareBySender[s.Sender] = s.Percent
	}
	rows := make([][]string, 0, len(d.TopSenders))
	for _, sc := range d.TopSenders {
		rows = append(rows, []string{
			sc.Sender,
			strconv.Itoa(sc.Count),
			fmt.Sprintf("%.2f%%", shareBySender[sc.Sender]),
		})
	}
	headers := []string{"Sender", "Messages", "Share"}
	return writeSection(w, "Busiest Senders", formatTable(headers, rows, map[int]bool{1: true, 2: true}))
}

func renderTimeline(w io.Writer, title string, buckets []model.TimeBucket, width int) error {
	if len(buckets) == 0 {
		return nil
	}
	values := make([]float64, len(buckets))
	maxCount := 0
	for i, b := range buckets {
		values[i] = float64(b.Count)
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	span := width - 2
	if span < minTimelineSpan {
		span = minTimelineSpan
	}
	if len(values) > span {
		values = values[len(values)-span:]
		buckets = buckets[len(buckets)-span:]
	}
	lines := []string{
		Sparkline(values),
		fmt.Sprintf("%s .. %s, peak %d", buckets[0].Label, buckets[len(buckets)-1].Label, maxCount),
	}
	return writeSection(w, title, lines)
}

func renderNameCounts(w io.Writer, title, keyHeader string, counts []model.NameCount) error {
	if len(counts) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Name, strconv.Itoa(c.Count)})
	}
	return writeSection(w, title, formatTable([]string{keyHeader, "Messages"}, rows, map[int]bool{1: true}))
}

func renderHeatmap(w io.Writer, hm model.Heatmap) error {
	lines := HeatmapLines(hm)
	if len(lines) == 0 {
		return nil
	}
	return writeSection(w, "Hourly Activity (weekday x hour)", lines)
}

// HeatmapLines renders the weekday-by-hour heatmap as one shade character
// per cell. Returns nil when there is nothing to show.
func HeatmapLines(hm model.Heatmap) []string {
	if len(hm.Weekdays) == 0 {
		return nil
	}
	maxCount := 0
	for _, row := range hm.Counts {
		for _, c := range row {
			if c > maxCount {
				maxCount = c
			}
		}
	}
	if maxCount == 0 {
		return nil
	}
	lines := make([]string, 0, len(hm.Weekdays)+2)
	lines = append(lines, fmt.Sprintf("%-10s%s", "", "0       6       12      18      23"))
	for i, day := range hm.Weekdays {
		var b strings.Builder
		for _, c := range hm.Counts[i] {
			idx := int(math.Round(float64(c) / float64(maxCount) * float64(len(sparkChars)-1)))
			b.WriteByte(sparkChars[idx])
		}
		lines = append(lines, fmt.Sprintf("%-10s%s", day, b.String()))
	}
	lines = append(lines, fmt.Sprintf("peak cell: %d messages", maxCount))
	return lines
}

func renderWords(w io.Writer, words []model.WordCount) error {
	if len(words) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(words))
	for _, wc := range words {
		rows = append(rows, []string{wc.Word, strconv.Itoa(wc.Count)})
	}
	return writeSection(w, "Common Words", formatTable([]string{"Word", "Count"}, rows, map[int]bool{1: true}))
}

func renderEmoji(w io.Writer, emoji []model.EmojiCount) error {
	if len(emoji) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(emoji))
	for _, ec := range emoji {
		rows = append(rows, []string{ec.Emoji, strconv.Itoa(ec.Count)})
	}
	return writeSection(w, "Emoji", formatTable([]string{"Emoji", "Count"}, rows, map[int]bool{1: true}))
}

func renderSentiment(w io.Writer, counts model.SentimentCounts) error {
	total := counts.Positive + counts.Negative + counts.Neutral
	if total == 0 {
		return nil
	}
	rows := [][]string{
		{"Positive", strconv.Itoa(counts.Positive), shareCell(counts.Positive, total)},
		{"Neutral", strconv.Itoa(counts.Neutral), shareCell(counts.Neutral, total)},
		{"Negative", strconv.Itoa(counts.Negative), shareCell(counts.Negative, total)},
	}
	headers := []string{"Sentiment", "Messages", "Share"}
	return writeSection(w, "Sentiment", formatTable(headers, rows, map[int]bool{1: true, 2: true}))
}

func shareCell(count, total int) string {
	return fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100)
}

func writeSection(w io.Writer, title string, lines []string) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
