// Package dashboard provides the Bubble Tea analysis interface.
package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avasilev/chatlens/internal/analysis"
	"github.com/avasilev/chatlens/internal/model"
	"github.com/avasilev/chatlens/internal/report"
	"github.com/avasilev/chatlens/internal/wordlist"
)

const (
	tabOverview = iota
	tabTimeline
	tabActivity
	tabWords
	tabEmoji
	tabSentiment
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3AA675"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3AA675")).
			Padding(1, 2)
	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA675"))
)

// Model implements the Bubble Tea analysis dashboard over an immutable
// record slice.
type Model struct {
	msgs   []model.Message
	stop   wordlist.Set
	scorer analysis.Scorer
	opts   report.Options

	sender string
	data   report.Data

	tabs      []string
	activeTab int
	viewports []viewport.Model
	wordTable table.Model

	width  int
	height int

	filterMode  bool
	filterInput textinput.Model
	filterError string
}

// NewModel constructs a dashboard model for the parsed records.
func NewModel(msgs []model.Message, stop wordlist.Set, scorer analysis.Scorer, sender string, opts report.Options) *Model {
	m := &Model{
		msgs:   msgs,
		stop:   stop,
		scorer: scorer,
		opts:   opts,
		sender: sender,
		tabs:   []string{"Overview", "Timeline", "Activity", "Words", "Emoji", "Sentiment"},
	}
	if m.sender == "" {
		m.sender = analysis.Overall
	}
	m.initFilterInput()
	m.initViewports()
	m.initWordTable()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (!m.filterMode && msg.String() == "q") {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/", "u":
			return m.startFilter()
		case "g", "home":
			if m.activeTab == tabWords {
				m.wordTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabWords {
				m.wordTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabWords {
				var cmd tea.Cmd
				m.wordTable, cmd = m.wordTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.filterMode {
		return fitLines(m.renderFilterModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initFilterInput() {
	input := textinput.New()
	input.Prompt = "Sender: "
	input.Placeholder = analysis.Overall
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	m.filterInput = input
}

func (m *Model) initWordTable() {
	m.wordTable = table.New(
		table.WithColumns(wordTableColumns()),
		table.WithHeight(1),
	)
	m.wordTable.SetStyles(wordTableStyles())
	m.wordTable.Focus()
}

func wordTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Word", Width: 24},
		{Title: "Count", Width: 8},
	}
}

func wordTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.wordTable.SetWidth(m.width)
	m.wordTable.SetHeight(maxInt(1, bodyHeight-1))
	m.filterInput.Width = maxInt(10, modalInnerWidth(m.width)-lipgloss.Width(m.filterInput.Prompt))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
}

func (m *Model) refresh() {
	m.data = report.Build(m.sender, m.msgs, m.stop, m.scorer, m.opts)
	m.applyWordTable()
	m.renderTabContents()
}

func (m *Model) applyWordTable() {
	rows := make([]table.Row, 0, len(m.data.Words))
	for i, wc := range m.data.Words {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			wc.Word,
			strconv.Itoa(wc.Count),
		})
	}
	m.wordTable.SetRows(rows)
	m.wordTable.GotoTop()
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.data, width))
	m.viewports[tabTimeline].SetContent(renderTimeline(m.data, width))
	m.viewports[tabActivity].SetContent(renderActivity(m.data))
	m.viewports[tabEmoji].SetContent(renderEmoji(m.data))
	m.viewports[tabSentiment].SetContent(renderSentiment(m.data, width))
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	summary := fmt.Sprintf("Sender: %s  Messages: %d", m.sender, m.data.Totals.Messages)
	return tabs + "\n" + padLines(headerStyle.Render(truncateLine(summary, m.width)), m.width)
}

func (m *Model) renderFooter() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Sender filter: /  Quit: q")
}

func (m *Model) renderBody() string {
	if len(m.msgs) == 0 {
		return "No messages found."
	}
	if m.activeTab == tabWords {
		if len(m.data.Words) == 0 {
			return "No words to count."
		}
		return tableMutedStyle.Render(m.wordTable.View())
	}
	return m.viewports[m.activeTab].View()
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	if m.sender == analysis.Overall {
		m.filterInput.SetValue("")
	} else {
		m.filterInput.SetValue(m.sender)
	}
	return m, m.filterInput.Focus()
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		sender := strings.TrimSpace(m.filterInput.Value())
		if sender == "" {
			sender = analysis.Overall
		}
		if err := m.validateSender(sender); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.sender = sender
		m.filterMode = false
		m.filterError = ""
		m.refresh()
		m.updateLayout()
		return m, tea.ClearScreen
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) validateSender(sender string) error {
	if sender == analysis.Overall {
		return nil
	}
	for _, s := range m.data.AllSenders {
		if s == sender {
			return nil
		}
	}
	return fmt.Errorf("unknown sender %q", sender)
}

func (m *Model) renderFilterModal() string {
	title := cardValueStyle.Render("Filter by Sender")
	body := []string{
		title,
		m.filterInput.View(),
		headerStyle.Render("Senders: " + truncateLine(strings.Join(m.data.AllSenders, ", "), modalInnerWidth(m.width))),
		headerStyle.Render("Empty means Overall. Enter to apply / Esc to cancel"),
	}
	if m.filterError != "" {
		body = append(body, errorStyle.Render(m.filterError))
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
