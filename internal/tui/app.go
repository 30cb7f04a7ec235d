// Package tui implements the interactive terminal interface.
package tui

import (
	"stride/internal/service"
	"stride/internal/units"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenRecords Screen = iota
	ScreenProgression
	ScreenActivities
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	records     RecordsModel
	progression ProgressionModel
	activities  ActivitiesModel
	syncScreen  SyncModel
	help        HelpModel

	queryService *service.QueryService
	syncService  *service.SyncService

	width  int
	height int
}

// Options configure the app from user settings.
type Options struct {
	Units        units.System
	RankingLimit int
	Window       string // "all", "year", or "6m"
}

// NewApp creates the root model with all dependencies
func NewApp(syncService *service.SyncService, queryService *service.QueryService, opts Options) *App {
	window := service.ParseWindow(opts.Window)
	return &App{
		screen:       ScreenRecords,
		queryService: queryService,
		syncService:  syncService,
		records:      NewRecordsModel(queryService, window, opts.RankingLimit, 0, 0),
		progression:  NewProgressionModel(queryService, window),
		activities:   NewActivitiesModel(queryService, opts.Units),
		syncScreen:   NewSyncModel(syncService),
		help:         NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.records.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings (unless a sync is running)
		if a.screen != ScreenSync || !a.syncScreen.syncing {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenRecords
				return a, a.records.Init()
			case "2":
				a.screen = ScreenProgression
				return a, a.progression.Init()
			case "3":
				a.screen = ScreenActivities
				return a, a.activities.Init()
			case "4":
				if a.screen != ScreenSync {
					a.screen = ScreenSync
					return a, a.syncScreen.Init()
				}
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case SyncCompleteMsg:
		a.screen = ScreenRecords
		return a, a.records.Init()
	}

	// Delegate to the current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenRecords:
		var m tea.Model
		m, cmd = a.records.Update(msg)
		a.records = m.(RecordsModel)
	case ScreenProgression:
		var m tea.Model
		m, cmd = a.progression.Update(msg)
		a.progression = m.(ProgressionModel)
	case ScreenActivities:
		var m tea.Model
		m, cmd = a.activities.Update(msg)
		a.activities = m.(ActivitiesModel)
	case ScreenSync:
		var m tea.Model
		m, cmd = a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render("Stride: Running Records")
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenRecords:
		content = a.records.View()
	case ScreenProgression:
		content = a.progression.View()
	case ScreenActivities:
		content = a.activities.View()
	case ScreenSync:
		content = a.syncScreen.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Records", ScreenRecords},
		{"2", "Progression", ScreenProgression},
		{"3", "Activities", ScreenActivities},
		{"4", "Sync", ScreenSync},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

// SyncCompleteMsg is sent when a sync finishes
type SyncCompleteMsg struct{}
