package clang

/*
#include <stdint.h>
#include <clang-c/Index.h>

unsigned clangq_visit_children(CXCursor root, uintptr_t handle);
*/
import "C"

import (
	"runtime/cgo"
)

// CursorVisitor is called once per visited cursor with the cursor and its
// parent. The returned value decides how the walk continues.
type CursorVisitor func(cursor, parent Cursor) ChildVisitResult

// visitation boxes a visitor for the duration of one Visit call. libclang
// calls back on the visiting goroutine only, so its fields need no locking.
type visitation struct {
	visit     CursorVisitor
	panicked  bool
	recovered any
}

func (v *visitation) call(cursor, parent Cursor) (res ChildVisitResult) {
	if v.panicked {
		return ChildVisitBreak
	}
	defer func() {
		if r := recover(); r != nil {
			// A panic must not unwind through the native walker.
			v.panicked = true
			v.recovered = r
			res = ChildVisitBreak
		}
	}()
	return v.visit(cursor, parent)
}

// Visit walks the children of c in document order, calling visitor for each.
// ChildVisitBreak stops the whole walk, ChildVisitContinue skips the current
// child's subtree and ChildVisitRecurse descends into it. Visit reports
// whether the walk was stopped by ChildVisitBreak. A panic in visitor stops
// the walk and is re-raised once the native walker has returned.
//
// Nested Visit calls from inside visitor are allowed.
func (c Cursor) Visit(visitor CursorVisitor) (stopped bool) {
	v := &visitation{visit: visitor}
	h := cgo.NewHandle(v)
	defer h.Delete()

	stopped = C.clangq_visit_children(c.c, C.uintptr_t(h)) != 0
	if v.panicked {
		panic(v.recovered)
	}
	return stopped
}
