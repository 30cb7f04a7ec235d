package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Ranked records"},
		{"2", "Record progression"},
		{"3", "Activities list"},
		{"4", "Sync screen"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Records & Progression", []keyHelp{
		{"d / right", "Next distance"},
		{"D / left", "Previous distance"},
		{"w", "Cycle time window"},
		{"j / k", "Scroll"},
		{"r", "Refresh"},
	}))

	sections = append(sections, m.renderSection("Activities List", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"pgdn", "Next page"},
		{"pgup", "Previous page"},
		{"r", "Refresh list"},
	}))

	sections = append(sections, m.renderSection("Sync Screen", []keyHelp{
		{"s / enter", "Start sync"},
	}))

	sections = append(sections, m.renderTermsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderTermsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Terms Explained"))
	lines = append(lines, "")

	terms := []struct {
		name string
		desc string
	}{
		{"Best Effort", "The fastest contiguous stretch of a run covering a target distance."},
		{"Record", "A best effort ranked against all others for the same distance."},
		{"Progression", "Your record history: only runs that beat every earlier time."},
		{"Window", "A date filter applied before ranking (all time, this year, last N months)."},
	}

	for _, term := range terms {
		lines = append(lines, "  "+helpKeyStyle.Render(term.name))
		lines = append(lines, "  "+helpDescStyle.Render(term.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
