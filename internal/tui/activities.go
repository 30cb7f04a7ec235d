package tui

import (
	"fmt"
	"strings"

	"stride/internal/service"
	"stride/internal/store"
	"stride/internal/units"

	tea "github.com/charmbracelet/bubbletea"
)

// ActivitiesModel is the activities list screen model
type ActivitiesModel struct {
	queryService *service.QueryService
	units        units.System
	activities   []store.Activity
	cursor       int
	offset       int
	total        int
	pageSize     int
	loading      bool
	err          error
}

// NewActivitiesModel creates a new activities model
func NewActivitiesModel(qs *service.QueryService, sys units.System) ActivitiesModel {
	return ActivitiesModel{
		queryService: qs,
		units:        sys,
		pageSize:     15,
		loading:      true,
	}
}

// Init initializes the activities screen
func (m ActivitiesModel) Init() tea.Cmd {
	return m.loadPage
}

type activitiesLoadedMsg struct {
	activities []store.Activity
	total      int
	err        error
}

func (m ActivitiesModel) loadPage() tea.Msg {
	activities, err := m.queryService.Activities(m.pageSize, m.offset)
	if err != nil {
		return activitiesLoadedMsg{err: err}
	}

	total, err := m.queryService.ActivityCount()
	if err != nil {
		return activitiesLoadedMsg{err: err}
	}

	return activitiesLoadedMsg{activities: activities, total: total}
}

// Update handles messages
func (m ActivitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.activities = msg.activities
		m.total = msg.total

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
				m.loading = true
				return m, m.loadPage
			}
		case "down", "j":
			if m.cursor < len(m.activities)-1 {
				m.cursor++
			} else if m.offset+len(m.activities) < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgdown":
			if m.offset+m.pageSize < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "r":
			m.loading = true
			return m, m.loadPage
		}
	}
	return m, nil
}

// View renders the activities screen
func (m ActivitiesModel) View() string {
	if m.loading {
		return "\n  Loading activities..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.activities) == 0 {
		return "\n  No activities yet. Run a sync to import your runs."
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render(fmt.Sprintf("  Activities (%d-%d of %d)",
		m.offset+1, m.offset+len(m.activities), m.total)))
	lines = append(lines, "")

	header := fmt.Sprintf("  %-12s  %-32s  %10s  %10s  %8s", "Date", "Name", "Distance", "Time", "Pace")
	lines = append(lines, tableHeaderStyle.Render(header))

	for i, a := range m.activities {
		name := a.Name
		if len(name) > 32 {
			name = name[:29] + "..."
		}

		row := fmt.Sprintf("  %-12s  %-32s  %10s  %10s  %8s",
			a.StartDate.Format("2006-01-02"),
			name,
			m.units.FormatDistance(a.Distance),
			units.FormatDuration(a.MovingTime),
			m.units.FormatPace(a.MovingTime, a.Distance),
		)

		if i == m.cursor {
			lines = append(lines, selectedRowStyle.Render(row))
		} else {
			lines = append(lines, row)
		}
	}

	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  j/k: move  pgup/pgdown: page  r: refresh"))

	return strings.Join(lines, "\n")
}
