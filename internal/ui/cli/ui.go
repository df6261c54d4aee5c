package cli

import (
	"clangq/internal/engine/clang"
	"clangq/internal/engine/extract"
	"clangq/internal/engine/session"
	"clangq/internal/ui/report"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

// uiSnapshot is everything the terminal UI shows for one parse. It holds
// only copied values, never libclang handles, so it can cross to the UI
// goroutine.
type uiSnapshot struct {
	File         string
	ParsedAt     time.Time
	Declarations []extract.Declaration
	Macros       []extract.Macro
	Diagnostics  []session.Diagnostic
}

type item struct {
	title, desc string
	file        string
	line        uint32
	// index into the matching snapshot slice; list indices shift while filtering
	index int
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type panelMode int

const (
	panelDiagnostics panelMode = iota
	panelDeclarations
	panelMacros
)

func (p panelMode) next() panelMode {
	return (p + 1) % 3
}

type updateMsg struct {
	snapshot uiSnapshot
}

// failureMsg reports a reparse or reload that left the previous snapshot
// on screen.
type failureMsg struct {
	err error
}

type sourceJumpResultMsg struct {
	target string
	err    error
}

type model struct {
	diagList  list.Model
	declList  list.Model
	macroList list.Model
	detail    viewport.Model
	mode      panelMode

	snapshot   uiSnapshot
	showDetail bool
	failure    string
	lastUpdate time.Time

	sourceJumpStatus string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyActions(msg, m)
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		width := msg.Width - h
		height := msg.Height - v - 8
		if height < 5 {
			height = 5
		}
		m.diagList.SetSize(width, height)
		m.declList.SetSize(width, height)
		m.macroList.SetSize(width, height)
		m.detail.Width = width
		m.detail.Height = height
	case updateMsg:
		m.snapshot = msg.snapshot
		m.lastUpdate = time.Now()
		m.failure = ""
		m.diagList.SetItems(diagnosticItems(msg.snapshot.Diagnostics))
		m.declList.SetItems(declarationItems(msg.snapshot.Declarations))
		m.macroList.SetItems(macroItems(msg.snapshot.Macros))
		if m.showDetail {
			m = refreshDetail(m)
		}
		return m, nil
	case failureMsg:
		m.failure = errorStyle.Render("Last reparse failed: " + msg.err.Error())
		return m, nil
	case sourceJumpResultMsg:
		if msg.err != nil {
			m.sourceJumpStatus = statusStyle.Render(fmt.Sprintf("Source jump failed: %v", msg.err))
		} else {
			m.sourceJumpStatus = statusStyle.Render(fmt.Sprintf("Opened source: %s", msg.target))
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.showDetail {
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	l := m.activeList()
	*l, cmd = l.Update(msg)
	return m, cmd
}

func (m model) View() string {
	s := m.snapshot
	status := statusStyle.Render(fmt.Sprintf("Last parse: %s | %d declarations | %d macros",
		m.lastUpdate.Format("15:04:05"), len(s.Declarations), len(s.Macros)))

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle("clangq "+s.File), status, diagnosticSummary(s.Diagnostics))
	help := renderHelp(m)

	body := m.activeListView()
	if m.showDetail {
		body = m.detail.View()
	}
	if m.failure != "" {
		body += "\n\n" + m.failure
	}
	if m.sourceJumpStatus != "" {
		body += "\n\n" + m.sourceJumpStatus
	}
	return docStyle.Render(header + "\n" + help + "\n\n" + body)
}

func (m *model) activeList() *list.Model {
	switch m.mode {
	case panelDeclarations:
		return &m.declList
	case panelMacros:
		return &m.macroList
	default:
		return &m.diagList
	}
}

func (m model) activeListView() string {
	return m.activeList().View()
}

func initialModel(file string) model {
	newList := func(title string) list.Model {
		l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
		l.Title = title
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(true)
		return l
	}
	return model{
		diagList:   newList("Diagnostics"),
		declList:   newList("Declarations"),
		macroList:  newList("Macros"),
		detail:     viewport.New(0, 0),
		mode:       panelDiagnostics,
		snapshot:   uiSnapshot{File: file},
		lastUpdate: time.Now(),
	}
}

func diagnosticSummary(diags []session.Diagnostic) string {
	errs, warns := 0, 0
	for _, d := range diags {
		switch {
		case d.Severity >= clang.SeverityError:
			errs++
		case d.Severity == clang.SeverityWarning:
			warns++
		}
	}
	if errs == 0 && warns == 0 {
		return successStyle.Render("No errors")
	}
	return fmt.Sprintf("%s | %s",
		errorStyle.Render(fmt.Sprintf("%d errors", errs)),
		warningStyle.Render(fmt.Sprintf("%d warnings", warns)))
}

func diagnosticItems(diags []session.Diagnostic) []list.Item {
	items := make([]list.Item, 0, len(diags))
	for i, d := range diags {
		items = append(items, item{
			index: i,
			title: d.Severity.String() + ": " + d.Message,
			desc:  clang.Position{File: d.File, Line: d.Line, Column: d.Column}.String(),
			file:  d.File,
			line:  d.Line,
		})
	}
	return items
}

func declarationItems(decls []extract.Declaration) []list.Item {
	items := make([]list.Item, 0, len(decls))
	for i, d := range decls {
		items = append(items, item{
			index: i,
			title: fmt.Sprintf("%s (%s)", report.QualifiedName(d), d.Kind),
			desc:  strings.TrimSpace(report.Signature(d) + "  " + d.Location()),
			file:  d.File,
			line:  d.Line,
		})
	}
	return items
}

func macroItems(macros []extract.Macro) []list.Item {
	items := make([]list.Item, 0, len(macros))
	for i, mc := range macros {
		items = append(items, item{
			index: i,
			title: mc.Signature(),
			desc:  mc.Body(),
			file:  mc.File,
			line:  mc.Line,
		})
	}
	return items
}
