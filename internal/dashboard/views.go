package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avasilev/chatlens/internal/model"
	"github.com/avasilev/chatlens/internal/report"
)

func renderOverview(d report.Data, width int) string {
	cards := []string{
		metricCard("Messages", strconv.Itoa(d.Totals.Messages)),
		metricCard("Words", strconv.Itoa(d.Totals.Words)),
		metricCard("Media", strconv.Itoa(d.Totals.Media)),
		metricCard("Links", strconv.Itoa(d.Totals.Links)),
	}
	sections := []string{cardRow(cards, width)}
	if len(d.TopSenders) > 0 {
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
		lines := report.Table([]string{"Sender", "Messages", "Share"}, rows, map[int]bool{1: true, 2: true})
		sections = append(sections, section("Busiest Senders", lines))
	}
	return strings.Join(sections, "\n\n")
}

func renderTimeline(d report.Data, width int) string {
	sections := make([]string, 0, 2)
	if lines := timelineLines(d.Monthly, width); lines != nil {
		sections = append(sections, section("Monthly", lines))
	}
	if lines := timelineLines(d.Daily, width); lines != nil {
		sections = append(sections, section("Daily", lines))
	}
	if len(sections) == 0 {
		return "No dated messages."
	}
	return strings.Join(sections, "\n\n")
}

func timelineLines(buckets []model.TimeBucket, width int) []string {
	if len(buckets) == 0 {
		return nil
	}
	span := maxInt(10, width-2)
	if len(buckets) > span {
		buckets = buckets[len(buckets)-span:]
	}
	values := make([]float64, len(buckets))
	maxCount := 0
	for i, b := range buckets {
		values[i] = float64(b.Count)
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	return []string{
		barStyle.Render(report.Sparkline(values)),
		headerStyle.Render(fmt.Sprintf("%s .. %s, peak %d", buckets[0].Label, buckets[len(buckets)-1].Label, maxCount)),
	}
}

func renderActivity(d report.Data) string {
	sections := make([]string, 0, 3)
	if len(d.Weekdays) > 0 {
		sections = append(sections, section("By Weekday", nameCountLines(d.Weekdays)))
	}
	if len(d.Months) > 0 {
		sections = append(sections, section("By Month", nameCountLines(d.Months)))
	}
	if lines := report.HeatmapLines(d.Heatmap); lines != nil {
		sections = append(sections, section("Weekday x Hour", lines))
	}
	if len(sections) == 0 {
		return "No activity to show."
	}
	return strings.Join(sections, "\n\n")
}

func nameCountLines(counts []model.NameCount) []string {
	maxCount := 0
	for _, c := range counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}
	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		barLen := 0
		if maxCount > 0 {
			barLen = c.Count * 30 / maxCount
		}
		lines = append(lines, fmt.Sprintf("%-10s %6d %s", c.Name, c.Count, barStyle.Render(strings.Repeat("█", barLen))))
	}
	return lines
}

func renderEmoji(d report.Data) string {
	if len(d.Emoji) == 0 {
		return "No emoji found."
	}
	rows := make([][]string, 0, len(d.Emoji))
	for i, ec := range d.Emoji {
		rows = append(rows, []string{strconv.Itoa(i + 1), ec.Emoji, strconv.Itoa(ec.Count)})
	}
	lines := report.Table([]string{"#", "Emoji", "Count"}, rows, map[int]bool{0: true, 2: true})
	return section("Emoji", lines)
}

func renderSentiment(d report.Data, width int) string {
	total := d.Sentiment.Positive + d.Sentiment.Negative + d.Sentiment.Neutral
	if total == 0 {
		return "No scored messages."
	}
	barWidth := minInt(40, maxInt(10, width-30))
	lines := []string{
		sentimentLine("Positive", d.Sentiment.Positive, total, barWidth),
		sentimentLine("Neutral", d.Sentiment.Neutral, total, barWidth),
		sentimentLine("Negative", d.Sentiment.Negative, total, barWidth),
	}
	return section("Sentiment", lines)
}

func sentimentLine(label string, count, total, barWidth int) string {
	share := float64(count) / float64(total)
	barLen := int(share * float64(barWidth))
	return fmt.Sprintf("%-9s %6d %5.1f%% %s", label, count, share*100, barStyle.Render(strings.Repeat("█", barLen)))
}

func metricCard(title, value string) string {
	content := cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value)
	return cardStyle.Render(content)
}

func cardRow(cards []string, width int) string {
	if len(cards) == 0 {
		return ""
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if width > 0 && lipgloss.Width(row) > width {
		top := lipgloss.JoinHorizontal(lipgloss.Top, cards[:2]...)
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[2:]...)
		return top + "\n" + bottom
	}
	return row
}

func section(title string, lines []string) string {
	return cardValueStyle.Render(title) + "\n" + strings.Join(lines, "\n")
}
