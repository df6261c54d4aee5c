package cli

import (
	"clangq/internal/engine/extract"
	"clangq/internal/ui/report"
	"fmt"
	"strings"
)

var panelNames = [...]string{
	panelDiagnostics:  "Diagnostics",
	panelDeclarations: "Declarations",
	panelMacros:       "Macros",
}

func renderHelp(m model) string {
	if m.showDetail {
		return statusStyle.Render("[↑/↓] scroll | [o] open source | [esc] back | [q] quit")
	}
	return statusStyle.Render(fmt.Sprintf("Panel: %s | [tab] switch | [enter] details | [o] open source | [/] filter | [q] quit",
		panelNames[m.mode]))
}

func declarationDetail(d extract.Declaration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", d.Kind, report.QualifiedName(d))
	if sig := report.Signature(d); sig != "" {
		fmt.Fprintf(&b, "signature:  %s\n", sig)
	}
	fmt.Fprintf(&b, "type:       %s\n", d.Type)
	if d.CanonicalType != "" && d.CanonicalType != d.Type {
		fmt.Fprintf(&b, "canonical:  %s\n", d.CanonicalType)
	}
	if layout := report.LayoutLabel(d); layout != "" {
		fmt.Fprintf(&b, "layout:     %s\n", layout)
	}
	if d.EnumValue != nil {
		fmt.Fprintf(&b, "value:      %d\n", *d.EnumValue)
	}
	if d.BitWidth != nil {
		fmt.Fprintf(&b, "bit width:  %d\n", *d.BitWidth)
	}
	fmt.Fprintf(&b, "linkage:    %s\n", d.Linkage)
	fmt.Fprintf(&b, "visibility: %s\n", d.Visibility)
	if d.Access != "" {
		fmt.Fprintf(&b, "access:     %s\n", d.Access)
	}
	if d.USR != "" {
		fmt.Fprintf(&b, "usr:        %s\n", d.USR)
	}
	fmt.Fprintf(&b, "location:   %s\n", d.Location())
	if d.Comment != "" {
		fmt.Fprintf(&b, "\n%s\n", d.Comment)
	}
	return b.String()
}
