package clang

/*
#include <clang-c/Index.h>
#include <clang-c/Documentation.h>
*/
import "C"

import "fmt"

type CommentKind uint32

const (
	CommentNull                 CommentKind = C.CXComment_Null
	CommentText                 CommentKind = C.CXComment_Text
	CommentInlineCommand        CommentKind = C.CXComment_InlineCommand
	CommentHTMLStartTag         CommentKind = C.CXComment_HTMLStartTag
	CommentHTMLEndTag           CommentKind = C.CXComment_HTMLEndTag
	CommentParagraph            CommentKind = C.CXComment_Paragraph
	CommentBlockCommand         CommentKind = C.CXComment_BlockCommand
	CommentParamCommand         CommentKind = C.CXComment_ParamCommand
	CommentTParamCommand        CommentKind = C.CXComment_TParamCommand
	CommentVerbatimBlockCommand CommentKind = C.CXComment_VerbatimBlockCommand
	CommentVerbatimBlockLine    CommentKind = C.CXComment_VerbatimBlockLine
	CommentVerbatimLine         CommentKind = C.CXComment_VerbatimLine
	CommentFullComment          CommentKind = C.CXComment_FullComment
)

var commentKindLabels = map[CommentKind]string{
	CommentNull:                 "Null",
	CommentText:                 "Text",
	CommentInlineCommand:        "InlineCommand",
	CommentHTMLStartTag:         "HTMLStartTag",
	CommentHTMLEndTag:           "HTMLEndTag",
	CommentParagraph:            "Paragraph",
	CommentBlockCommand:         "BlockCommand",
	CommentParamCommand:         "ParamCommand",
	CommentTParamCommand:        "TParamCommand",
	CommentVerbatimBlockCommand: "VerbatimBlockCommand",
	CommentVerbatimBlockLine:    "VerbatimBlockLine",
	CommentVerbatimLine:         "VerbatimLine",
	CommentFullComment:          "FullComment",
}

func (k CommentKind) String() string {
	if s, ok := commentKindLabels[k]; ok {
		return s
	}
	return "?"
}

// Comment is one node of a parsed documentation comment.
type Comment struct {
	c C.CXComment
}

func (c Comment) Kind() CommentKind {
	return CommentKind(C.clang_Comment_getKind(c.c))
}

func (c Comment) NumChildren() int {
	return int(C.clang_Comment_getNumChildren(c.c))
}

// Child returns the i-th child. It panics unless 0 <= i < NumChildren().
func (c Comment) Child(i int) Comment {
	if n := c.NumChildren(); i < 0 || i >= n {
		panic(fmt.Sprintf("clang: comment child index %d out of range [0,%d)", i, n))
	}
	return Comment{c: C.clang_Comment_getChild(c.c, C.uint(i))}
}

// Children returns every child in order.
func (c Comment) Children() []Comment {
	n := c.NumChildren()
	out := make([]Comment, n)
	for i := range out {
		out[i] = Comment{c: C.clang_Comment_getChild(c.c, C.uint(i))}
	}
	return out
}

// Text returns the text of a CommentText node.
func (c Comment) Text() string {
	return cxString(C.clang_TextComment_getText(c.c))
}

// TagName returns the element name of an HTML tag node.
func (c Comment) TagName() string {
	return cxString(C.clang_HTMLTagComment_getTagName(c.c))
}

func (c Comment) NumTagAttrs() int {
	return int(C.clang_HTMLStartTag_getNumAttrs(c.c))
}

// TagAttrName panics unless 0 <= i < NumTagAttrs().
func (c Comment) TagAttrName(i int) string {
	c.checkAttr(i)
	return cxString(C.clang_HTMLStartTag_getAttrName(c.c, C.uint(i)))
}

// TagAttrValue panics unless 0 <= i < NumTagAttrs().
func (c Comment) TagAttrValue(i int) string {
	c.checkAttr(i)
	return cxString(C.clang_HTMLStartTag_getAttrValue(c.c, C.uint(i)))
}

func (c Comment) checkAttr(i int) {
	if n := c.NumTagAttrs(); i < 0 || i >= n {
		panic(fmt.Sprintf("clang: comment attribute index %d out of range [0,%d)", i, n))
	}
}
