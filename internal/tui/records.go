package tui

import (
	"fmt"
	"strings"

	"stride/internal/analysis"
	"stride/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// windowChoices are the time windows the records screens cycle through.
var windowChoices = []analysis.TimeWindow{
	{Kind: analysis.AllTime},
	{Kind: analysis.ThisYear},
	{Kind: analysis.LastMonths, Months: 3},
	{Kind: analysis.LastMonths, Months: 6},
	{Kind: analysis.LastMonths, Months: 12},
}

// windowIndex finds the cycle position of a configured window.
func windowIndex(w analysis.TimeWindow) int {
	for i, c := range windowChoices {
		if c == w {
			return i
		}
	}
	return 0
}

// RecordsModel is the ranked-records screen model
type RecordsModel struct {
	queryService *service.QueryService

	labels    []string
	labelIdx  int
	windowIdx int
	limit     int

	rows     []service.RecordRow
	viewport viewport.Model
	loading  bool
	err      error
	width    int
	height   int
	ready    bool
}

// NewRecordsModel creates a new records model
func NewRecordsModel(qs *service.QueryService, window analysis.TimeWindow, limit, width, height int) RecordsModel {
	m := RecordsModel{
		queryService: qs,
		windowIdx:    windowIndex(window),
		limit:        limit,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the records screen
func (m RecordsModel) Init() tea.Cmd {
	return m.loadRecords
}

type recordsLoadedMsg struct {
	labels []string
	rows   []service.RecordRow
	err    error
}

func (m RecordsModel) loadRecords() tea.Msg {
	labels, err := m.queryService.Labels()
	if err != nil {
		return recordsLoadedMsg{err: err}
	}
	if len(labels) == 0 {
		return recordsLoadedMsg{}
	}

	idx := m.labelIdx
	if idx >= len(labels) {
		idx = 0
	}

	records, err := m.queryService.TopRecords(labels[idx], windowChoices[m.windowIdx], m.limit)
	if err != nil {
		return recordsLoadedMsg{err: err}
	}

	return recordsLoadedMsg{labels: labels, rows: service.FormatRecords(records)}
}

// Update handles messages
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.labels != nil {
			m.labels = msg.labels
			if m.labelIdx >= len(m.labels) {
				m.labelIdx = 0
			}
		}
		m.rows = msg.rows
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())

	case tea.KeyMsg:
		switch msg.String() {
		case "d", "right":
			if len(m.labels) > 1 {
				m.labelIdx = (m.labelIdx + 1) % len(m.labels)
				m.loading = true
				return m, m.loadRecords
			}
		case "D", "left":
			if len(m.labels) > 1 {
				m.labelIdx = (m.labelIdx + len(m.labels) - 1) % len(m.labels)
				m.loading = true
				return m, m.loadRecords
			}
		case "w":
			m.windowIdx = (m.windowIdx + 1) % len(windowChoices)
			m.loading = true
			return m, m.loadRecords
		case "r":
			m.loading = true
			return m, m.loadRecords
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the records screen
func (m RecordsModel) View() string {
	if m.loading {
		return "\n  Loading records..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return m.renderContent()
	}

	footer := statusStyle.Render("  d: distance  w: window  j/k: scroll  r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m RecordsModel) renderContent() string {
	if len(m.labels) == 0 {
		return "\n  No records yet. Run a sync to analyze your activities."
	}

	label := m.labels[m.labelIdx]
	window := windowChoices[m.windowIdx]

	var lines []string
	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render(fmt.Sprintf("  %s Records - %s", label, window)))
	lines = append(lines, "")

	if len(m.rows) == 0 {
		lines = append(lines, statusStyle.Render("  No efforts in this window."))
		return strings.Join(lines, "\n")
	}

	header := fmt.Sprintf("  %4s  %10s  %10s  %8s  %-12s  %s", "Rank", "Time", "Pace", "Avg HR", "Date", "Activity")
	lines = append(lines, tableHeaderStyle.Render(header))

	for _, row := range m.rows {
		name := row.Activity
		if len(name) > 32 {
			name = name[:29] + "..."
		}
		lines = append(lines, fmt.Sprintf("  %4d  %10s  %10s  %8s  %-12s  %s",
			row.Rank, row.Time, row.Pace+"/km", row.Heartrate, row.Date, name))
	}

	return strings.Join(lines, "\n")
}
