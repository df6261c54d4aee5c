package cli

import (
	"clangq/internal/engine/clang"
	"clangq/internal/engine/extract"
	"clangq/internal/engine/session"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sampleSnapshot() uiSnapshot {
	value := int64(3)
	return uiSnapshot{
		File: "api.h",
		Declarations: []extract.Declaration{
			{Name: "count", Kind: "FunctionDecl", Type: "int (int)", ReturnType: "int",
				Params: []extract.Param{{Name: "n", Type: "int"}}, File: "api.h", Line: 3, Column: 5,
				Linkage: "external", Visibility: "default"},
			{Name: "THREE", Kind: "EnumConstantDecl", Parent: "Level", Type: "enum Level",
				EnumValue: &value, File: "api.h", Line: 1, Column: 14},
		},
		Macros: []extract.Macro{
			{Name: "SQ", FunctionLike: true, Params: []string{"x"}, Tokens: []string{"(", "x", ")"}, File: "api.h", Line: 2},
		},
		Diagnostics: []session.Diagnostic{
			{Severity: clang.SeverityWarning, Message: "unused variable", File: "api.h", Line: 4, Column: 7},
		},
	}
}

func TestModel_UpdateAndPanelCycle(t *testing.T) {
	m := initialModel("api.h")

	updated, _ := m.Update(updateMsg{snapshot: sampleSnapshot()})
	state, ok := updated.(model)
	if !ok {
		t.Fatalf("expected model type, got %T", updated)
	}
	if len(state.diagList.Items()) != 1 {
		t.Fatalf("expected 1 diagnostic item, got %d", len(state.diagList.Items()))
	}
	if len(state.declList.Items()) != 2 {
		t.Fatalf("expected 2 declaration items, got %d", len(state.declList.Items()))
	}
	if len(state.macroList.Items()) != 1 {
		t.Fatalf("expected 1 macro item, got %d", len(state.macroList.Items()))
	}
	enumerator := state.declList.Items()[1].(item)
	if enumerator.Title() != "Level::THREE (EnumConstantDecl)" {
		t.Fatalf("unexpected declaration title %q", enumerator.Title())
	}
	if !strings.Contains(state.View(), "1 warnings") {
		t.Fatalf("expected warning summary in view:\n%s", state.View())
	}

	for _, want := range []panelMode{panelDeclarations, panelMacros, panelDiagnostics} {
		updated, _ = state.Update(tea.KeyMsg{Type: tea.KeyTab})
		state = updated.(model)
		if state.mode != want {
			t.Fatalf("expected panel %v after tab, got %v", want, state.mode)
		}
	}
}

func TestModel_DetailViewport(t *testing.T) {
	m := initialModel("api.h")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated, _ = updated.Update(updateMsg{snapshot: sampleSnapshot()})
	state := updated.(model)

	updated, _ = state.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	state = updated.(model)
	if !state.showDetail {
		t.Fatal("expected detail view after enter")
	}
	detail := state.detail.View()
	for _, want := range []string{"FunctionDecl count", "signature:  int(int n)", "api.h:3:5"} {
		if !strings.Contains(detail, want) {
			t.Errorf("expected %q in detail:\n%s", want, detail)
		}
	}

	updated, _ = state.Update(tea.KeyMsg{Type: tea.KeyEsc})
	state = updated.(model)
	if state.showDetail {
		t.Fatal("expected esc to close the detail view")
	}

	updated, _ = state.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	state = updated.(model)
	if !strings.Contains(state.detail.View(), "#define SQ(x) ( x )") {
		t.Fatalf("unexpected macro detail:\n%s", state.detail.View())
	}
}

func TestModel_FailureKeepsSnapshot(t *testing.T) {
	m := initialModel("api.h")
	updated, _ := m.Update(updateMsg{snapshot: sampleSnapshot()})
	updated, _ = updated.Update(failureMsg{err: errors.New("parse failed")})
	state := updated.(model)

	if len(state.declList.Items()) != 2 {
		t.Fatalf("expected previous declarations to stay, got %d", len(state.declList.Items()))
	}
	if !strings.Contains(state.View(), "parse failed") {
		t.Fatalf("expected failure in view:\n%s", state.View())
	}

	updated, _ = state.Update(updateMsg{snapshot: sampleSnapshot()})
	if updated.(model).failure != "" {
		t.Fatal("expected a fresh snapshot to clear the failure")
	}
}

func TestModel_OpenSourceAndQuit(t *testing.T) {
	m := initialModel("api.h")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if cmd != nil {
		t.Fatal("expected no command without a selection")
	}
	if !strings.Contains(updated.(model).sourceJumpStatus, "No source target") {
		t.Fatalf("unexpected status %q", updated.(model).sourceJumpStatus)
	}

	updated, _ = updated.Update(updateMsg{snapshot: sampleSnapshot()})
	if _, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}}); cmd == nil {
		t.Fatal("expected an editor command for the selected diagnostic")
	}

	updated, _ = updated.Update(sourceJumpResultMsg{target: "api.h:4", err: errors.New("no editor")})
	if !strings.Contains(updated.(model).sourceJumpStatus, "Source jump failed") {
		t.Fatalf("unexpected status %q", updated.(model).sourceJumpStatus)
	}

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected q to quit")
	}
}
