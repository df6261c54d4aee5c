package clang

/*
#include <stdlib.h>
#include <clang-c/Index.h>
*/
import "C"

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

// cxString copies a native string into Go memory and disposes the native
// string. A null payload yields "".
func cxString(s C.CXString) string {
	defer C.clang_disposeString(s)
	if s.data == nil {
		return ""
	}
	return lossyUTF8(C.GoString(C.clang_getCString(s)))
}

// lossyUTF8 replaces every invalid byte with U+FFFD.
func lossyUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(r)
	}
	return b.String()
}

// cStringArray allocates a C array of C strings. The returned release func
// frees both the strings and the array.
func cStringArray(values []string) (**C.char, func()) {
	if len(values) == 0 {
		return nil, func() {}
	}
	size := C.size_t(len(values)) * C.size_t(unsafe.Sizeof(uintptr(0)))
	arr := (**C.char)(C.malloc(size))
	items := unsafe.Slice(arr, len(values))
	for i, v := range values {
		items[i] = C.CString(v)
	}
	return arr, func() {
		for _, p := range items {
			C.free(unsafe.Pointer(p))
		}
		C.free(unsafe.Pointer(arr))
	}
}

func freeCString(s *C.char) {
	C.free(unsafe.Pointer(s))
}
