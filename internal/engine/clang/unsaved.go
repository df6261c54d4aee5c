package clang

/*
#include <stdlib.h>
#include <clang-c/Index.h>
*/
import "C"

import "unsafe"

// UnsavedFile overrides the on-disk contents of a file during parsing. Its
// buffers live in C memory until Dispose, and it must stay undisposed for
// the whole Parse or Reparse call that uses it.
type UnsavedFile struct {
	name     string
	cName    *C.char
	contents *C.char
	length   int
}

// NewUnsavedFile copies name and content into C memory.
func NewUnsavedFile(name, content string) *UnsavedFile {
	return &UnsavedFile{
		name:     name,
		cName:    C.CString(name),
		contents: C.CString(content),
		length:   len(content),
	}
}

func (u *UnsavedFile) Name() string {
	return u.name
}

// Dispose frees the C buffers. Later calls are no-ops.
func (u *UnsavedFile) Dispose() {
	if u == nil || u.cName == nil {
		return
	}
	C.free(unsafe.Pointer(u.cName))
	C.free(unsafe.Pointer(u.contents))
	u.cName, u.contents = nil, nil
}

// nativeUnsaved lays the files out as the C struct array libclang expects.
// The array lives in C memory and is freed by the returned func.
func nativeUnsaved(files []*UnsavedFile) (*C.struct_CXUnsavedFile, C.uint, func()) {
	live := make([]*UnsavedFile, 0, len(files))
	for _, f := range files {
		if f != nil && f.cName != nil {
			live = append(live, f)
		}
	}
	if len(live) == 0 {
		return nil, 0, func() {}
	}
	size := C.size_t(len(live)) * C.size_t(unsafe.Sizeof(C.struct_CXUnsavedFile{}))
	arr := (*C.struct_CXUnsavedFile)(C.malloc(size))
	items := unsafe.Slice(arr, len(live))
	for i, f := range live {
		items[i].Filename = f.cName
		items[i].Contents = f.contents
		items[i].Length = C.ulong(f.length)
	}
	return arr, C.uint(len(live)), func() { C.free(unsafe.Pointer(arr)) }
}
