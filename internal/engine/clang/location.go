package clang

/*
#include <clang-c/Index.h>
*/
import "C"

import "fmt"

// builtinLocation is printed for locations without a file.
const builtinLocation = "builtin definitions"

// File is a source file known to a TranslationUnit. The zero File is the
// null file of built-in and predefined entities.
type File struct {
	f C.CXFile
}

// Name returns the file name; ok is false for the null file.
func (f File) Name() (name string, ok bool) {
	if f.f == nil {
		return "", false
	}
	return cxString(C.clang_getFileName(f.f)), true
}

func (f File) IsNull() bool {
	return f.f == nil
}

// SourceLocation is a position inside a TranslationUnit.
type SourceLocation struct {
	l C.CXSourceLocation
}

// Location resolves the spelling location. line and column are 1-based,
// offset is a 0-based byte offset.
func (l SourceLocation) Location() (file File, line, column, offset uint32) {
	var (
		f       C.CXFile
		ln, col C.uint
		offs    C.uint
	)
	C.clang_getSpellingLocation(l.l, &f, &ln, &col, &offs)
	return File{f: f}, uint32(ln), uint32(col), uint32(offs)
}

// Position is a resolved location detached from native memory.
type Position struct {
	File   string
	Line   uint32
	Column uint32
	Offset uint32
}

func (p Position) IsBuiltin() bool {
	return p.File == ""
}

func (p Position) String() string {
	if p.File == "" {
		return builtinLocation
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

func (l SourceLocation) Position() Position {
	file, line, col, off := l.Location()
	name, _ := file.Name()
	return Position{File: name, Line: line, Column: col, Offset: off}
}

func (l SourceLocation) IsInSystemHeader() bool {
	return C.clang_Location_isInSystemHeader(l.l) != 0
}

func (l SourceLocation) IsFromMainFile() bool {
	return C.clang_Location_isFromMainFile(l.l) != 0
}

// String renders "file:line:col", or "builtin definitions" when the location
// has no file.
func (l SourceLocation) String() string {
	file, line, col, _ := l.Location()
	name, ok := file.Name()
	if !ok {
		return builtinLocation
	}
	return fmt.Sprintf("%s:%d:%d", name, line, col)
}

// SourceRange is a half-open span of source.
type SourceRange struct {
	r C.CXSourceRange
}

func (r SourceRange) Start() SourceLocation {
	return SourceLocation{l: C.clang_getRangeStart(r.r)}
}

func (r SourceRange) End() SourceLocation {
	return SourceLocation{l: C.clang_getRangeEnd(r.r)}
}

func (r SourceRange) IsNull() bool {
	return C.clang_Range_isNull(r.r) != 0
}
