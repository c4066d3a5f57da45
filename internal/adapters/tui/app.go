package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vaultkeeper/internal/adapters/tui/views"
	"vaultkeeper/internal/application"
	"vaultkeeper/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBacklinks ViewState = iota
	ViewBrokenLinks
)

// AppKeyMap defines the global key bindings
type AppKeyMap struct {
	NextView key.Binding
	Quit     key.Binding
}

var AppKeys = AppKeyMap{
	NextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch view"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// App is the main TUI application model
type App struct {
	state     ViewState
	backlinks *views.BacklinksModel
	broken    *views.BrokenLinksModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.VaultRepository, index ports.LinkIndexProvider, linker *application.Linker) *App {
	return &App{
		state:     ViewBacklinks,
		backlinks: views.NewBacklinksModel(index),
		broken:    views.NewBrokenLinksModel(repo, index, linker),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.backlinks.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.backlinks.SetSize(msg.Width, msg.Height)
		a.broken.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToBacklinksMsg:
		a.state = ViewBacklinks
		return a, a.backlinks.Init()

	case views.SwitchToBrokenLinksMsg:
		a.state = ViewBrokenLinks
		return a, a.broken.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, AppKeys.Quit):
			return a, tea.Quit

		case key.Matches(msg, AppKeys.NextView):
			if a.state == ViewBacklinks {
				a.state = ViewBrokenLinks
				return a, a.broken.Init()
			}
			a.state = ViewBacklinks
			return a, a.backlinks.Init()
		}
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBacklinks:
		_, cmd = a.backlinks.Update(msg)
	case ViewBrokenLinks:
		_, cmd = a.broken.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewBrokenLinks:
		return a.broken.View()
	default:
		return a.backlinks.View()
	}
}
