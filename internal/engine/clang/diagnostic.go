package clang

/*
#include <clang-c/Index.h>
*/
import "C"

// Diagnostic is one finding reported while parsing. It must be disposed
// before its TranslationUnit.
type Diagnostic struct {
	c C.CXDiagnostic
}

// DefaultDisplayOptions mirrors the options clang uses on the command line.
func DefaultDisplayOptions() DiagnosticDisplayOptions {
	return DiagnosticDisplayOptions(C.clang_defaultDiagnosticDisplayOptions())
}

// Format renders the diagnostic as clang would print it.
func (d *Diagnostic) Format(opts DiagnosticDisplayOptions) string {
	if d.c == nil {
		return ""
	}
	return cxString(C.clang_formatDiagnostic(d.c, C.uint(opts)))
}

func (d *Diagnostic) Severity() DiagnosticSeverity {
	if d.c == nil {
		return SeverityIgnored
	}
	return DiagnosticSeverity(C.clang_getDiagnosticSeverity(d.c))
}

// Spelling is the bare message text.
func (d *Diagnostic) Spelling() string {
	if d.c == nil {
		return ""
	}
	return cxString(C.clang_getDiagnosticSpelling(d.c))
}

func (d *Diagnostic) Location() SourceLocation {
	if d.c == nil {
		return SourceLocation{l: C.clang_getNullLocation()}
	}
	return SourceLocation{l: C.clang_getDiagnosticLocation(d.c)}
}

// Dispose releases the diagnostic. Later calls are no-ops.
func (d *Diagnostic) Dispose() {
	if d.c == nil {
		return
	}
	C.clang_disposeDiagnostic(d.c)
	d.c = nil
}
