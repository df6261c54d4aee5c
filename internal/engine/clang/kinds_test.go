package clang

import (
	"strings"
	"testing"
)

func TestKindLabels(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{CursorStructDecl.String(), "StructDecl"},
		{CursorCXXMethod.String(), "CXXMethod"},
		{CursorMacroDefinition.String(), "MacroDefinition"},
		{CursorKind(1 << 20).String(), "?"},
		{TypeCharU.String(), "Char_U"},
		{TypeElaborated.String(), "Elaborated"},
		{TypeKind(1 << 20).String(), "?"},
		{LinkageExternal.String(), "External"},
		{SeverityFatal.String(), "fatal"},
		{CallingConvC.String(), "C"},
		{TokenKeyword.String(), "Keyword"},
		{CommentHTMLStartTag.String(), "HTMLStartTag"},
		{ChildVisitRecurse.String(), "Recurse"},
		{LayoutErrorDependent.String(), "Dependent"},
		{LayoutErrorCode(-42).String(), "Unknown(-42)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, tt.got)
		}
	}
}

func TestParseCursorKind(t *testing.T) {
	k, ok := ParseCursorKind("FunctionDecl")
	if !ok || k != CursorFunctionDecl {
		t.Errorf("expected FunctionDecl, got %v (ok=%v)", k, ok)
	}
	if _, ok := ParseCursorKind("?"); ok {
		t.Error("the unknown marker is not a kind")
	}
}

func TestCursorKindClassification(t *testing.T) {
	if !CursorStructDecl.IsDeclaration() || CursorStructDecl.IsInvalid() {
		t.Error("StructDecl is a valid declaration kind")
	}
	if !CursorNoDeclFound.IsInvalid() {
		t.Error("NoDeclFound is an invalid kind")
	}
	if !CursorCallExpr.IsExpression() || !CursorIfStmt.IsStatement() || !CursorTypeRef.IsReference() {
		t.Error("unexpected classification")
	}
	if !CursorMacroDefinition.IsPreprocessing() {
		t.Error("MacroDefinition is a preprocessing kind")
	}
}

func TestLossyUTF8(t *testing.T) {
	if got := lossyUTF8("a\xffb"); got != "a\uFFFDb" {
		t.Errorf("unexpected %q", got)
	}
	if got := lossyUTF8("plain"); got != "plain" {
		t.Errorf("unexpected %q", got)
	}
}

func TestDump(t *testing.T) {
	tu := parseSource(t, "dump.c", "struct P { int a; };\n")
	out := DumpString(tu.Cursor())

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	want := []string{
		"(TranslationUnit dump.c Invalid",
		"\t(StructDecl P Record",
		"\t\t(FieldDecl a Int",
		"\t\t)",
		"\t)",
		")",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
