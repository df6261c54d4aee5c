package clang

/*
#include <clang-c/Index.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// clangqVisitTrampoline is the one native visitor registered with
// clang_visitChildren. data carries the cgo.Handle of the active visitation.
//
//export clangqVisitTrampoline
func clangqVisitTrampoline(cursor, parent C.CXCursor, data unsafe.Pointer) uint32 {
	v := cgo.Handle(uintptr(data)).Value().(*visitation)
	return uint32(v.call(Cursor{c: cursor}, Cursor{c: parent}))
}
