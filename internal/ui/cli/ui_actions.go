package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func handleKeyActions(msg tea.KeyMsg, m model) (tea.Model, tea.Cmd) {
	// Typing into a list filter must not trigger shortcuts.
	if !m.showDetail && m.activeList().FilterState() == list.Filtering {
		l := m.activeList()
		var cmd tea.Cmd
		*l, cmd = l.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.mode = m.mode.next()
		m.showDetail = false
		return m, nil
	case "enter":
		if _, ok := m.selectedItem(); !ok {
			return m, nil
		}
		m.showDetail = true
		return refreshDetail(m), nil
	case "esc", "backspace":
		if m.showDetail {
			m.showDetail = false
			return m, nil
		}
	case "o":
		it, ok := m.selectedItem()
		if !ok || it.file == "" {
			m.sourceJumpStatus = statusStyle.Render("No source target available.")
			return m, nil
		}
		line := int(it.line)
		if line == 0 {
			line = 1
		}
		return m, jumpToSourceCmd(sourceTarget{file: it.file, line: line})
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

func (m *model) selectedItem() (item, bool) {
	it, ok := m.activeList().SelectedItem().(item)
	return it, ok
}

// refreshDetail renders the full snapshot record behind the selected entry
// into the detail viewport.
func refreshDetail(m model) model {
	it, ok := m.selectedItem()
	if !ok {
		m.showDetail = false
		return m
	}
	idx := it.index
	var content string
	switch m.mode {
	case panelDiagnostics:
		if idx >= 0 && idx < len(m.snapshot.Diagnostics) {
			d := m.snapshot.Diagnostics[idx]
			content = d.Formatted
			if content == "" {
				content = fmt.Sprintf("%s: %s", d.Severity, d.Message)
			}
		}
	case panelDeclarations:
		if idx >= 0 && idx < len(m.snapshot.Declarations) {
			content = declarationDetail(m.snapshot.Declarations[idx])
		}
	case panelMacros:
		if idx >= 0 && idx < len(m.snapshot.Macros) {
			mc := m.snapshot.Macros[idx]
			content = fmt.Sprintf("#define %s %s\n\n%s:%d", mc.Signature(), mc.Body(), mc.File, mc.Line)
		}
	}
	if content == "" {
		m.showDetail = false
		return m
	}
	m.detail.SetContent(content)
	m.detail.GotoTop()
	return m
}

type sourceTarget struct {
	file string
	line int
}

func jumpToSourceCmd(target sourceTarget) tea.Cmd {
	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	args := []string{target.file}
	if strings.Contains(editor, "vim") || strings.Contains(editor, "nvim") || editor == "vi" || strings.HasSuffix(editor, "/vi") {
		args = []string{fmt.Sprintf("+%d", target.line), target.file}
	}
	cmd := exec.Command(editor, args...)
	label := fmt.Sprintf("%s:%d", target.file, target.line)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return sourceJumpResultMsg{target: label, err: err}
	})
}
