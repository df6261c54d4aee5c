// Package report renders sessions, declarations and catalog results for the
// terminal.
package report

import (
	"clangq/internal/engine/clang"
	"clangq/internal/engine/extract"
	"clangq/internal/engine/session"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Printer writes styled output. Styles degrade to plain text when w is not
// a terminal.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	errorS  lipgloss.Style
	warning lipgloss.Style
	note    lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true),
		errorS:  r.NewStyle().Foreground(lipgloss.Color("#F87171")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FBBF24")).Bold(true),
		note:    r.NewStyle().Foreground(lipgloss.Color("#64748B")).Italic(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#64748B")),
		success: r.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
	}
}

func (p *Printer) severityStyle(s clang.DiagnosticSeverity) lipgloss.Style {
	switch {
	case s >= clang.SeverityError:
		return p.errorS
	case s == clang.SeverityWarning:
		return p.warning
	default:
		return p.note
	}
}

// Diagnostics prints one line per diagnostic followed by a summary line.
func (p *Printer) Diagnostics(diags []session.Diagnostic) {
	counts := map[clang.DiagnosticSeverity]int{}
	for _, d := range diags {
		counts[d.Severity]++
		loc := clang.Position{File: d.File, Line: d.Line, Column: d.Column}.String()
		fmt.Fprintf(p.w, "%s: %s %s\n", loc, p.severityStyle(d.Severity).Render(d.Severity.String()+":"), d.Message)
	}
	if len(diags) == 0 {
		fmt.Fprintln(p.w, p.success.Render("no diagnostics"))
		return
	}
	fmt.Fprintf(p.w, "%d error(s), %d warning(s), %d note(s)\n",
		counts[clang.SeverityError]+counts[clang.SeverityFatal],
		counts[clang.SeverityWarning],
		counts[clang.SeverityNote])
}

// Tokens prints kind and spelling columns.
func (p *Printer) Tokens(tokens []clang.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(p.w, "%s %s\n", p.muted.Render(fmt.Sprintf("%-11s", tok.Kind)), tok.Spelling)
	}
}

// Declarations prints a table of name, kind, type, layout and location.
func (p *Printer) Declarations(decls []extract.Declaration) {
	if len(decls) == 0 {
		fmt.Fprintln(p.w, p.muted.Render("no declarations"))
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "KIND", "TYPE", "LAYOUT", "LOCATION")
	for _, d := range decls {
		t.Row(QualifiedName(d), d.Kind, Signature(d), LayoutLabel(d), d.Location())
	}
	fmt.Fprintln(p.w, p.title.Render(fmt.Sprintf("Declarations (%d)", len(decls))))
	fmt.Fprintln(p.w, t.Render())
}

// Macros prints name and replacement list.
func (p *Printer) Macros(macros []extract.Macro) {
	for _, m := range macros {
		fmt.Fprintf(p.w, "#define %s %s\n", p.title.Render(m.Signature()), m.Body())
	}
}

// Summary prints a one line status for a parse.
func (p *Printer) Summary(path string, decls int, diags []session.Diagnostic) {
	status := p.success.Render("ok")
	if session.HasErrors(diags) {
		status = p.errorS.Render("errors")
	}
	fmt.Fprintf(p.w, "%s %s: %d declaration(s), %d diagnostic(s)\n", status, path, decls, len(diags))
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// QualifiedName joins the parent and name with "::".
func QualifiedName(d extract.Declaration) string {
	if d.Parent == "" {
		return d.Name
	}
	return d.Parent + "::" + d.Name
}

// Signature renders a function prototype, a field type with its bit width,
// an enumerator value or a plain type.
func Signature(d extract.Declaration) string {
	if d.ReturnType == "" && len(d.Params) == 0 {
		if d.BitWidth != nil {
			return fmt.Sprintf("%s : %d", d.Type, *d.BitWidth)
		}
		if d.EnumValue != nil {
			return fmt.Sprintf("= %d", *d.EnumValue)
		}
		return d.Type
	}
	params := make([]string, 0, len(d.Params)+1)
	for _, prm := range d.Params {
		params = append(params, strings.TrimSpace(prm.Type+" "+prm.Name))
	}
	if d.Variadic {
		params = append(params, "...")
	}
	return fmt.Sprintf("%s(%s)", d.ReturnType, strings.Join(params, ", "))
}

// LayoutLabel is "size/align", the layout error, or empty.
func LayoutLabel(d extract.Declaration) string {
	switch {
	case d.LayoutError != "":
		return d.LayoutError
	case d.Size > 0:
		return fmt.Sprintf("%d/%d", d.Size, d.Align)
	default:
		return ""
	}
}
