package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaultkeeper/internal/adapters/tui/styles"
	"vaultkeeper/internal/domain"
	"vaultkeeper/internal/ports"
)

// BacklinksKeyMap defines key bindings for the backlinks view
type BacklinksKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Refresh key.Binding
	Cancel  key.Binding
}

var BacklinksKeys = BacklinksKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy path"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "rebuild index"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
}

// BacklinksModel is the model for the backlinks view. It queries the
// link index as the target name is typed and lists every referencing
// note with its occurrences.
type BacklinksModel struct {
	ViewState

	index   ports.LinkIndexProvider
	input   textinput.Model
	entries []*domain.SourceEntry
	total   int
	cursor  int
}

// NewBacklinksModel creates a new backlinks view model
func NewBacklinksModel(index ports.LinkIndexProvider) *BacklinksModel {
	input := textinput.New()
	input.Placeholder = "Note name..."
	input.Focus()

	return &BacklinksModel{
		index: index,
		input: input,
	}
}

// Init initializes the backlinks view
func (m *BacklinksModel) Init() tea.Cmd {
	return textinput.Blink
}

type backlinksResultMsg struct {
	entries []*domain.SourceEntry
	total   int
	err     error
}

// Update handles messages for the backlinks view
func (m *BacklinksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case backlinksResultMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.ClearMessage()
		m.entries = msg.entries
		m.total = msg.total
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, BacklinksKeys.Cancel):
			m.input.SetValue("")
			m.entries = nil
			m.total = 0
			m.cursor = 0
			m.ClearMessage()
			return m, nil

		case key.Matches(msg, BacklinksKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BacklinksKeys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BacklinksKeys.Refresh):
			return m, m.query(m.input.Value(), true)

		case key.Matches(msg, BacklinksKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.entries) {
				entry := m.entries[m.cursor]
				clipboard.WriteAll(entry.SourcePath)
				m.SetMessage(fmt.Sprintf("Copied %s", entry.SourcePath), false)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if len(query) >= 2 {
		return m, tea.Batch(cmd, m.query(query, false))
	} else if len(query) == 0 {
		m.entries = nil
		m.total = 0
	}

	return m, cmd
}

func (m *BacklinksModel) query(target string, force bool) tea.Cmd {
	return func() tea.Msg {
		idx, err := m.index.Get(force)
		if err != nil {
			return backlinksResultMsg{err: err}
		}
		entries := idx.Sources(target)
		total := 0
		for _, e := range entries {
			total += len(e.Occurrences)
		}
		return backlinksResultMsg{entries: entries, total: total}
	}
}

// View renders the backlinks view
func (m *BacklinksModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Backlinks"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if m.Message != "" {
		style := styles.Success
		if m.MessageErr {
			style = styles.ErrorMsg
		}
		b.WriteString(style.Render(m.Message))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		if len(m.input.Value()) >= 2 {
			b.WriteString(styles.MutedText.Render("No notes link here"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to query"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(
			fmt.Sprintf("%d occurrences in %d notes", m.total, len(m.entries))))
		b.WriteString("\n\n")

		for i, entry := range m.entries {
			header := entry.SourcePath
			if i == m.cursor {
				b.WriteString(styles.RowSelected.Render(header))
			} else {
				b.WriteString(styles.SourceNote.Render(header))
			}
			b.WriteString("\n")
			for _, occ := range entry.Occurrences {
				b.WriteString("  ")
				b.WriteString(styles.LineNumber.Render(fmt.Sprintf("%d:", occ.Line)))
				b.WriteString(" ")
				b.WriteString(occ.Context)
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("copy path"),
		styles.HelpKey.Render("ctrl+r"),
		styles.HelpDesc.Render("rebuild index"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("clear"),
	))

	return styles.App.Render(b.String())
}
