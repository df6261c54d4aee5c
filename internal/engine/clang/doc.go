// Package clang is a thin, memory-safe layer over libclang's C interface.
//
// It parses C, C++ and Objective-C sources into translation units and exposes
// AST nodes (Cursor), resolved types (Type), locations, documentation comments,
// diagnostics and tokens as Go values.
//
// Handles follow the ownership order of the native library: an Index must
// outlive every TranslationUnit parsed from it, and a TranslationUnit must
// outlive every Cursor, Type, Comment and Diagnostic obtained from it. Nothing
// tracks this at runtime. No handle may be shared between goroutines; use one
// Index per goroutine instead.
//
// Building requires the libclang headers and shared library, e.g.
//
//	CGO_CFLAGS="$(llvm-config --cflags)" CGO_LDFLAGS="$(llvm-config --ldflags)" go build ./...
package clang

/*
#cgo LDFLAGS: -lclang
*/
import "C"
