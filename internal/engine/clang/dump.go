package clang

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dump writes a parenthesized outline of the subtree rooted at c: one line
// per node with its kind, spelling and type kind, indented by depth.
func Dump(w io.Writer, c Cursor) error {
	bw := bufio.NewWriter(w)
	dumpCursor(bw, c, 0)
	return bw.Flush()
}

// DumpString is Dump into a string.
func DumpString(c Cursor) string {
	var b strings.Builder
	_ = Dump(&b, c)
	return b.String()
}

func dumpCursor(w *bufio.Writer, c Cursor, depth int) ChildVisitResult {
	writeIndented(w, depth, fmt.Sprintf("(%s %s %s", c.Kind(), c.Spelling(), c.Type().Kind()))
	c.Visit(func(child, _ Cursor) ChildVisitResult {
		return dumpCursor(w, child, depth+1)
	})
	writeIndented(w, depth, ")")
	return ChildVisitContinue
}

func writeIndented(w *bufio.Writer, depth int, line string) {
	for i := 0; i < depth; i++ {
		w.WriteByte('\t')
	}
	w.WriteString(line)
	w.WriteByte('\n')
}
