package clang

/*
#include <clang-c/Index.h>
#include <clang-c/Documentation.h>
*/
import "C"

import (
	"encoding/binary"
	"hash/fnv"
)

// Cursor identifies one AST node. It is a transient view into its
// TranslationUnit and is meaningless once that unit is disposed.
type Cursor struct {
	c C.CXCursor
}

// CursorKey is the comparable identity of a Cursor. Two cursors that Equal
// each other have the same key, so it can be used as a map key.
type CursorKey struct {
	Kind CursorKind
	Data [3]uintptr
}

// NullCursor returns the null cursor, which is never valid.
func NullCursor() Cursor {
	return Cursor{c: C.clang_getNullCursor()}
}

func (c Cursor) Kind() CursorKind {
	return CursorKind(c.c.kind)
}

// Equal asks libclang whether both cursors denote the same entity.
func (c Cursor) Equal(other Cursor) bool {
	return C.clang_equalCursors(c.c, other.c) != 0
}

// Key returns the identity fields libclang compares in Equal. The
// FirstInDeclGroup word of declaration cursors is ignored there, so it is
// zeroed here too.
func (c Cursor) Key() CursorKey {
	k := CursorKey{Kind: c.Kind()}
	for i := range k.Data {
		k.Data[i] = uintptr(c.c.data[i])
	}
	if k.Kind.IsDeclaration() {
		k.Data[1] = 0
	}
	return k
}

// Hash folds Key into 64 bits.
func (c Cursor) Hash() uint64 {
	k := c.Key()
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k.Kind))
	h.Write(buf[:])
	for _, d := range k.Data {
		binary.LittleEndian.PutUint64(buf[:], uint64(d))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// IsValid is false for null cursors and for kinds in the invalid range, such
// as the result of resolving a missing reference.
func (c Cursor) IsValid() bool {
	return !c.Kind().IsInvalid()
}

func (c Cursor) IsNull() bool {
	return C.clang_Cursor_isNull(c.c) != 0
}

func (c Cursor) Spelling() string {
	return cxString(C.clang_getCursorSpelling(c.c))
}

func (c Cursor) DisplayName() string {
	return cxString(C.clang_getCursorDisplayName(c.c))
}

func (c Cursor) Mangling() string {
	return cxString(C.clang_Cursor_getMangling(c.c))
}

// USR returns the Unified Symbol Resolution string of the entity.
func (c Cursor) USR() string {
	return cxString(C.clang_getCursorUSR(c.c))
}

func (c Cursor) LexicalParent() Cursor {
	return Cursor{c: C.clang_getCursorLexicalParent(c.c)}
}

// SemanticParent differs from LexicalParent for out-of-line definitions.
func (c Cursor) SemanticParent() Cursor {
	return Cursor{c: C.clang_getCursorSemanticParent(c.c)}
}

// Definition returns the defining declaration, or an invalid cursor.
func (c Cursor) Definition() Cursor {
	return Cursor{c: C.clang_getCursorDefinition(c.c)}
}

// Referenced returns the entity a reference cursor points at.
func (c Cursor) Referenced() Cursor {
	return Cursor{c: C.clang_getCursorReferenced(c.c)}
}

// Canonical returns the representative among all redeclarations.
func (c Cursor) Canonical() Cursor {
	return Cursor{c: C.clang_getCanonicalCursor(c.c)}
}

// Specialized returns the template this cursor specializes or instantiates.
func (c Cursor) Specialized() Cursor {
	return Cursor{c: C.clang_getSpecializedCursorTemplate(c.c)}
}

func (c Cursor) IsTemplate() bool {
	return c.Specialized().IsValid()
}

func (c Cursor) IsDefinition() bool {
	return C.clang_isCursorDefinition(c.c) != 0
}

func (c Cursor) Location() SourceLocation {
	return SourceLocation{l: C.clang_getCursorLocation(c.c)}
}

func (c Cursor) Extent() SourceRange {
	return SourceRange{r: C.clang_getCursorExtent(c.c)}
}

func (c Cursor) RawComment() string {
	return cxString(C.clang_Cursor_getRawCommentText(c.c))
}

func (c Cursor) BriefComment() string {
	return cxString(C.clang_Cursor_getBriefCommentText(c.c))
}

func (c Cursor) Comment() Comment {
	return Comment{c: C.clang_Cursor_getParsedComment(c.c)}
}

func (c Cursor) Type() Type {
	return Type{t: C.clang_getCursorType(c.c)}
}

func (c Cursor) IsInlinedFunction() bool {
	return C.clang_Cursor_isFunctionInlined(c.c) != 0
}

// BitWidth returns the declared width of a bit-field. ok is false when the
// cursor is not a bit-field.
func (c Cursor) BitWidth() (width uint32, ok bool) {
	w := C.clang_getFieldDeclBitWidth(c.c)
	if w < 0 {
		return 0, false
	}
	return uint32(w), true
}

// EnumType is the integer type underlying an enum declaration.
func (c Cursor) EnumType() Type {
	return Type{t: C.clang_getEnumDeclIntegerType(c.c)}
}

// EnumValue is the value of an enum constant as a signed integer.
func (c Cursor) EnumValue() int64 {
	return int64(C.clang_getEnumConstantDeclValue(c.c))
}

// EnumUnsignedValue is the value of an enum constant as an unsigned integer.
func (c Cursor) EnumUnsignedValue() uint64 {
	return uint64(C.clang_getEnumConstantDeclUnsignedValue(c.c))
}

// IsMacroFunctionLike reports whether a MacroDefinition cursor takes
// parameters.
func (c Cursor) IsMacroFunctionLike() bool {
	return C.clang_Cursor_isMacroFunctionLike(c.c) != 0
}

func (c Cursor) IsMacroBuiltin() bool {
	return C.clang_Cursor_isMacroBuiltin(c.c) != 0
}

func (c Cursor) TypedefType() Type {
	return Type{t: C.clang_getTypedefDeclUnderlyingType(c.c)}
}

func (c Cursor) Linkage() LinkageKind {
	return LinkageKind(C.clang_getCursorLinkage(c.c))
}

func (c Cursor) Visibility() VisibilityKind {
	return VisibilityKind(C.clang_getCursorVisibility(c.c))
}

// NumArgs returns the parameter count of a function-like cursor, or -1.
func (c Cursor) NumArgs() int {
	return int(C.clang_Cursor_getNumArguments(c.c))
}

// Args returns the parameter declarations in order.
func (c Cursor) Args() []Cursor {
	n := c.NumArgs()
	if n <= 0 {
		return nil
	}
	args := make([]Cursor, n)
	for i := range args {
		args[i] = Cursor{c: C.clang_Cursor_getArgument(c.c, C.uint(i))}
	}
	return args
}

func (c Cursor) ResultType() Type {
	return Type{t: C.clang_getCursorResultType(c.c)}
}

func (c Cursor) AccessSpecifier() AccessSpecifier {
	return AccessSpecifier(C.clang_getCXXAccessSpecifier(c.c))
}

func (c Cursor) IsMutableField() bool {
	return C.clang_CXXField_isMutable(c.c) != 0
}

func (c Cursor) MethodIsStatic() bool {
	return C.clang_CXXMethod_isStatic(c.c) != 0
}

func (c Cursor) MethodIsVirtual() bool {
	return C.clang_CXXMethod_isVirtual(c.c) != 0
}

func (c Cursor) IsVirtualBase() bool {
	return C.clang_isVirtualBase(c.c) != 0
}

// NumTemplateArgs returns the template argument count of a specialization, or -1.
func (c Cursor) NumTemplateArgs() int {
	return int(C.clang_Cursor_getNumTemplateArguments(c.c))
}

func (c Cursor) TemplateArgKind(i int) TemplateArgumentKind {
	return TemplateArgumentKind(C.clang_Cursor_getTemplateArgumentKind(c.c, C.uint(i)))
}

func (c Cursor) TemplateArgValue(i int) int64 {
	return int64(C.clang_Cursor_getTemplateArgumentValue(c.c, C.uint(i)))
}

// TranslationUnitSpelling returns the main file name of the unit owning c.
func (c Cursor) TranslationUnitSpelling() string {
	tu := C.clang_Cursor_getTranslationUnit(c.c)
	if tu == nil {
		return ""
	}
	return cxString(C.clang_getTranslationUnitSpelling(tu))
}

// Children returns the immediate children of c in document order.
func (c Cursor) Children() []Cursor {
	var out []Cursor
	c.Visit(func(child, _ Cursor) ChildVisitResult {
		out = append(out, child)
		return ChildVisitContinue
	})
	return out
}

func (c Cursor) String() string {
	return c.Kind().String() + " " + c.Spelling()
}
