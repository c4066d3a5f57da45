package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"vaultkeeper/internal/adapters/tui/styles"
	"vaultkeeper/internal/application"
	"vaultkeeper/internal/application/commands"
	"vaultkeeper/internal/domain"
	"vaultkeeper/internal/ports"
)

// BrokenLinksKeyMap defines key bindings for the broken links view
type BrokenLinksKeyMap struct {
	Scan   key.Binding
	Repair key.Binding
}

var BrokenLinksKeys = BrokenLinksKeyMap{
	Scan: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "scan"),
	),
	Repair: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "annotate"),
	),
}

// brokenLink is one unresolvable occurrence found during a scan.
type brokenLink struct {
	source string
	occ    domain.LinkOccurrence
}

// BrokenLinksModel scans the vault for wikilinks whose target note is
// missing. A scan is read-only; annotating writes the warning callouts
// into the affected notes.
type BrokenLinksModel struct {
	ViewState

	repo   ports.VaultRepository
	index  ports.LinkIndexProvider
	linker *application.Linker

	spinner  spinner.Model
	scanning bool
	scanned  bool
	broken   []brokenLink
	report   *domain.IntegrityReport
}

// NewBrokenLinksModel creates a new broken links view model
func NewBrokenLinksModel(repo ports.VaultRepository, index ports.LinkIndexProvider, linker *application.Linker) *BrokenLinksModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &BrokenLinksModel{
		repo:    repo,
		index:   index,
		linker:  linker,
		spinner: s,
	}
}

// Init initializes the broken links view
func (m *BrokenLinksModel) Init() tea.Cmd {
	return nil
}

type scanResultMsg struct {
	broken []brokenLink
	err    error
}

type repairResultMsg struct {
	report *domain.IntegrityReport
	err    error
}

// Update handles messages for the broken links view
func (m *BrokenLinksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.scanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case scanResultMsg:
		m.scanning = false
		m.scanned = true
		m.report = nil
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.ClearMessage()
		m.broken = msg.broken
		return m, nil

	case repairResultMsg:
		m.scanning = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.report = msg.report
		m.broken = nil
		m.scanned = false
		m.SetMessage(fmt.Sprintf("Annotated %d broken links in %d notes",
			msg.report.BrokenLinks, msg.report.AffectedFiles), false)
		return m, nil

	case tea.KeyMsg:
		if m.scanning {
			return m, nil
		}
		switch {
		case key.Matches(msg, BrokenLinksKeys.Scan):
			m.scanning = true
			return m, tea.Batch(m.spinner.Tick, m.scan())

		case key.Matches(msg, BrokenLinksKeys.Repair):
			if !m.scanned || len(m.broken) == 0 {
				return m, nil
			}
			m.scanning = true
			return m, tea.Batch(m.spinner.Tick, m.repair())
		}
	}

	return m, nil
}

// scan walks the index and collects occurrences whose target has no
// root-level note, without touching any file.
func (m *BrokenLinksModel) scan() tea.Cmd {
	return func() tea.Msg {
		idx, err := m.index.Get(true)
		if err != nil {
			return scanResultMsg{err: err}
		}

		var broken []brokenLink
		for _, target := range idx.Targets() {
			if m.repo.NoteExists(target + ".md") {
				continue
			}
			for _, entry := range idx.Sources(target) {
				for _, occ := range entry.Occurrences {
					broken = append(broken, brokenLink{source: entry.SourcePath, occ: occ})
				}
			}
		}
		return scanResultMsg{broken: broken}
	}
}

func (m *BrokenLinksModel) repair() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewCheckCommand(m.linker)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return repairResultMsg{err: err}
		}
		return repairResultMsg{report: &result.Report}
	}
}

// View renders the broken links view
func (m *BrokenLinksModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Broken Links"))
	b.WriteString("\n\n")

	if m.scanning {
		b.WriteString(m.spinner.View())
		b.WriteString(" Scanning vault...")
		return styles.App.Render(b.String())
	}

	if m.Message != "" {
		style := styles.Success
		if m.MessageErr {
			style = styles.ErrorMsg
		}
		b.WriteString(style.Render(m.Message))
		b.WriteString("\n\n")
	}

	switch {
	case !m.scanned && m.report == nil:
		b.WriteString(styles.MutedText.Render("Press s to scan the vault"))

	case m.scanned && len(m.broken) == 0:
		b.WriteString(styles.Success.Render("No broken links found"))

	case m.scanned:
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d broken occurrences", len(m.broken))))
		b.WriteString("\n\n")
		for _, bl := range m.broken {
			b.WriteString(styles.SourceNote.Render(bl.source))
			b.WriteString("  ")
			b.WriteString(styles.LineNumber.Render(fmt.Sprintf("%d:", bl.occ.Line)))
			b.WriteString(" ")
			b.WriteString(styles.BrokenLink.Render(bl.occ.RawText))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s",
		styles.HelpKey.Render("s"),
		styles.HelpDesc.Render("scan"),
		styles.HelpKey.Render("a"),
		styles.HelpDesc.Render("annotate broken links"),
	))

	return styles.App.Render(b.String())
}
