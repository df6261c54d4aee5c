package clang

/*
#include <clang-c/Index.h>
*/
import "C"

// Index is one parsing session's shared state. It must outlive every
// TranslationUnit parsed from it.
type Index struct {
	c C.CXIndex
}

// NewIndex creates an index. excludePCH drops declarations coming from
// precompiled headers; displayDiagnostics makes libclang print diagnostics
// itself.
func NewIndex(excludePCH, displayDiagnostics bool) *Index {
	return &Index{c: C.clang_createIndex(cBool(excludePCH), cBool(displayDiagnostics))}
}

func (ix *Index) IsNull() bool {
	return ix == nil || ix.c == nil
}

// Dispose releases the index. Later calls are no-ops.
func (ix *Index) Dispose() {
	if ix.IsNull() {
		return
	}
	C.clang_disposeIndex(ix.c)
	ix.c = nil
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
