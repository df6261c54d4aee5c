package clang

import "testing"

// parseSource parses src as an in-memory file and registers cleanup in
// release order: unit, unsaved buffer, index.
func parseSource(t *testing.T, name, src string, args ...string) *TranslationUnit {
	t.Helper()
	ix := NewIndex(false, false)
	if ix.IsNull() {
		t.Fatal("expected non-null index")
	}
	t.Cleanup(ix.Dispose)

	uf := NewUnsavedFile(name, src)
	t.Cleanup(uf.Dispose)

	tu := Parse(ix, name, args, []*UnsavedFile{uf}, TUNone)
	if tu.IsNull() {
		t.Fatalf("parse of %s failed", name)
	}
	t.Cleanup(tu.Dispose)
	return tu
}

// find returns the first cursor in the subtree of root with the given kind
// and spelling.
func find(t *testing.T, root Cursor, kind CursorKind, spelling string) Cursor {
	t.Helper()
	found := NullCursor()
	root.Visit(func(c, _ Cursor) ChildVisitResult {
		if c.Kind() == kind && c.Spelling() == spelling {
			found = c
			return ChildVisitBreak
		}
		return ChildVisitRecurse
	})
	if !found.IsValid() {
		t.Fatalf("no %s named %q", kind, spelling)
	}
	return found
}
