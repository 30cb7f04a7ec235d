package tui

import (
	"fmt"
	"strings"

	"stride/internal/analysis"
	"stride/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ProgressionModel is the record-progression screen model
type ProgressionModel struct {
	queryService *service.QueryService

	labels    []string
	labelIdx  int
	windowIdx int

	records  []analysis.Record
	rows     []service.ProgressionRow
	viewport viewport.Model
	loading  bool
	err      error
	ready    bool
}

// NewProgressionModel creates a new progression model
func NewProgressionModel(qs *service.QueryService, window analysis.TimeWindow) ProgressionModel {
	return ProgressionModel{
		queryService: qs,
		windowIdx:    windowIndex(window),
		loading:      true,
	}
}

// Init initializes the progression screen
func (m ProgressionModel) Init() tea.Cmd {
	return m.loadProgression
}

type progressionLoadedMsg struct {
	labels  []string
	records []analysis.Record
	err     error
}

func (m ProgressionModel) loadProgression() tea.Msg {
	labels, err := m.queryService.Labels()
	if err != nil {
		return progressionLoadedMsg{err: err}
	}
	if len(labels) == 0 {
		return progressionLoadedMsg{}
	}

	idx := m.labelIdx
	if idx >= len(labels) {
		idx = 0
	}

	records, err := m.queryService.RecordProgression(labels[idx], windowChoices[m.windowIdx])
	if err != nil {
		return progressionLoadedMsg{err: err}
	}

	return progressionLoadedMsg{labels: labels, records: records}
}

// Update handles messages
func (m ProgressionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressionLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.labels != nil {
			m.labels = msg.labels
			if m.labelIdx >= len(m.labels) {
				m.labelIdx = 0
			}
		}
		m.records = msg.records
		m.rows = service.FormatProgression(msg.records)
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
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
				return m, m.loadProgression
			}
		case "D", "left":
			if len(m.labels) > 1 {
				m.labelIdx = (m.labelIdx + len(m.labels) - 1) % len(m.labels)
				m.loading = true
				return m, m.loadProgression
			}
		case "w":
			m.windowIdx = (m.windowIdx + 1) % len(windowChoices)
			m.loading = true
			return m, m.loadProgression
		case "r":
			m.loading = true
			return m, m.loadProgression
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the progression screen
func (m ProgressionModel) View() string {
	if m.loading {
		return "\n  Loading progression..."
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

func (m ProgressionModel) renderContent() string {
	if len(m.labels) == 0 {
		return "\n  No records yet. Run a sync to analyze your activities."
	}

	label := m.labels[m.labelIdx]
	window := windowChoices[m.windowIdx]

	var lines []string
	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render(fmt.Sprintf("  %s Progression - %s", label, window)))
	lines = append(lines, "")

	if len(m.rows) == 0 {
		lines = append(lines, statusStyle.Render("  No efforts in this window."))
		return strings.Join(lines, "\n")
	}

	if graph := m.renderGraph(); graph != "" {
		lines = append(lines, graph)
		lines = append(lines, "")
	}

	header := fmt.Sprintf("  %10s  %8s  %-12s  %s", "Time", "Gain", "Date", "Activity")
	lines = append(lines, tableHeaderStyle.Render(header))

	for _, row := range m.rows {
		name := row.Activity
		if len(name) > 32 {
			name = name[:29] + "..."
		}
		lines = append(lines, fmt.Sprintf("  %10s  %8s  %-12s  %s",
			row.Time, row.Improvement, row.Date, name))
	}

	return strings.Join(lines, "\n")
}

// renderGraph plots record durations over time, downward slope being
// improvement.
func (m ProgressionModel) renderGraph() string {
	if len(m.records) < 2 {
		return ""
	}

	data := make([]float64, len(m.records))
	for i, r := range m.records {
		data[i] = float64(r.Duration)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
		asciigraph.Caption("record duration (seconds)"),
	)

	indented := ""
	for _, line := range strings.Split(graph, "\n") {
		indented += "  " + line + "\n"
	}
	return strings.TrimRight(indented, "\n")
}
