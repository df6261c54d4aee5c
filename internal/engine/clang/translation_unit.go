package clang

/*
#include <stdlib.h>
#include <clang-c/Index.h>
*/
import "C"

import "unsafe"

// TranslationUnit is one parsed source file with its include graph. Cursors,
// Types, Comments and Diagnostics taken from it are invalid after Dispose.
type TranslationUnit struct {
	c C.CXTranslationUnit
}

// Parse parses path with the given compiler arguments. unsaved entries are
// read instead of the files on disk with the same name. The result is never
// nil, but IsNull reports a fatal parse failure.
func Parse(ix *Index, path string, args []string, unsaved []*UnsavedFile, flags TranslationUnitFlags) *TranslationUnit {
	if ix.IsNull() {
		return &TranslationUnit{}
	}
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	cArgs, releaseArgs := cStringArray(args)
	defer releaseArgs()

	cUnsaved, nUnsaved, releaseUnsaved := nativeUnsaved(unsaved)
	defer releaseUnsaved()

	tu := C.clang_parseTranslationUnit(ix.c, cPath, cArgs, C.int(len(args)), cUnsaved, nUnsaved, C.uint(flags))
	return &TranslationUnit{c: tu}
}

func (tu *TranslationUnit) IsNull() bool {
	return tu == nil || tu.c == nil
}

// Reparse re-parses with a possibly updated set of unsaved files. On
// failure the unit must be treated as unusable.
func (tu *TranslationUnit) Reparse(unsaved []*UnsavedFile, flags ReparseFlags) bool {
	if tu.IsNull() {
		return false
	}
	cUnsaved, nUnsaved, release := nativeUnsaved(unsaved)
	defer release()
	return C.clang_reparseTranslationUnit(tu.c, nUnsaved, cUnsaved, C.uint(flags)) == C.CXError_Success
}

// DefaultReparseFlags returns the reparse options libclang recommends for tu.
func (tu *TranslationUnit) DefaultReparseFlags() ReparseFlags {
	if tu.IsNull() {
		return ReparseNone
	}
	return ReparseFlags(C.clang_defaultReparseOptions(tu.c))
}

// Diagnostics returns every diagnostic currently attached, in order. Each
// must be disposed by the caller.
func (tu *TranslationUnit) Diagnostics() []*Diagnostic {
	if tu.IsNull() {
		return nil
	}
	n := int(C.clang_getNumDiagnostics(tu.c))
	diags := make([]*Diagnostic, n)
	for i := range diags {
		diags[i] = &Diagnostic{c: C.clang_getDiagnostic(tu.c, C.uint(i))}
	}
	return diags
}

// Cursor returns the root cursor of the AST.
func (tu *TranslationUnit) Cursor() Cursor {
	if tu.IsNull() {
		return NullCursor()
	}
	return Cursor{c: C.clang_getTranslationUnitCursor(tu.c)}
}

// Spelling returns the main file name.
func (tu *TranslationUnit) Spelling() string {
	if tu.IsNull() {
		return ""
	}
	return cxString(C.clang_getTranslationUnitSpelling(tu.c))
}

// File looks up a file that is part of the unit.
func (tu *TranslationUnit) File(name string) File {
	if tu.IsNull() {
		return File{}
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return File{f: C.clang_getFile(tu.c, cName)}
}

// Tokens lexes the source range covered by c. ok is false when the tokenizer
// produced no buffer.
func (tu *TranslationUnit) Tokens(c Cursor) (tokens []Token, ok bool) {
	if tu.IsNull() {
		return nil, false
	}
	var (
		buf *C.CXToken
		n   C.uint
	)
	C.clang_tokenize(tu.c, c.Extent().r, &buf, &n)
	if buf == nil {
		return nil, false
	}
	defer C.clang_disposeTokens(tu.c, buf, n)

	raw := unsafe.Slice(buf, int(n))
	tokens = make([]Token, len(raw))
	for i, t := range raw {
		_, line, col, _ := SourceLocation{l: C.clang_getTokenLocation(tu.c, t)}.Location()
		tokens[i] = Token{
			Kind:     TokenKind(C.clang_getTokenKind(t)),
			Spelling: cxString(C.clang_getTokenSpelling(tu.c, t)),
			Line:     line,
			Column:   col,
		}
	}
	return tokens, true
}

// Dispose releases the unit. Later calls are no-ops.
func (tu *TranslationUnit) Dispose() {
	if tu.IsNull() {
		return
	}
	C.clang_disposeTranslationUnit(tu.c)
	tu.c = nil
}
