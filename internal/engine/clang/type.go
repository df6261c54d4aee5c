package clang

/*
#include <clang-c/Index.h>
*/
import "C"

import (
	"strconv"
	"strings"
)

// Type identifies a resolved type. Like Cursor it is only meaningful while
// its TranslationUnit is alive.
type Type struct {
	t C.CXType
}

func (t Type) Kind() TypeKind {
	return TypeKind(t.t.kind)
}

func (t Type) IsValid() bool {
	return t.Kind() != TypeInvalid
}

// Declaration returns the cursor declaring t, or an invalid cursor for
// built-in types.
func (t Type) Declaration() Cursor {
	return Cursor{c: C.clang_getTypeDeclaration(t.t)}
}

func (t Type) Spelling() string {
	return cxString(C.clang_getTypeSpelling(t.t))
}

// SanitizedSpelling drops "const " and keeps the first word of the spelling.
// It is only good enough to recognize typedef names.
func (t Type) SanitizedSpelling() string {
	s := strings.ReplaceAll(t.Spelling(), "const ", "")
	first, _, _ := strings.Cut(s, " ")
	return first
}

// SanitizedSpellingIn reports whether SanitizedSpelling exactly matches one
// of candidates.
func (t Type) SanitizedSpellingIn(candidates []string) bool {
	s := t.SanitizedSpelling()
	for _, c := range candidates {
		if c == s {
			return true
		}
	}
	return false
}

func (t Type) IsConst() bool {
	return C.clang_isConstQualifiedType(t.t) != 0
}

func (t Type) IsVolatile() bool {
	return C.clang_isVolatileQualifiedType(t.t) != 0
}

// Size is the size of t in bytes, or 0 when it cannot be computed.
func (t Type) Size() int64 {
	n, err := t.FallibleSize()
	if err != nil {
		return 0
	}
	return n
}

// FallibleSize is the size of t in bytes or a *LayoutError.
func (t Type) FallibleSize() (int64, error) {
	return layoutResult(int64(C.clang_Type_getSizeOf(t.t)))
}

// Align is the alignment of t in bytes, or 0 when it cannot be computed.
func (t Type) Align() int64 {
	n, err := t.FallibleAlign()
	if err != nil {
		return 0
	}
	return n
}

// FallibleAlign is the alignment of t in bytes or a *LayoutError.
func (t Type) FallibleAlign() (int64, error) {
	return layoutResult(int64(C.clang_Type_getAlignOf(t.t)))
}

// FieldOffset returns the offset in bits of the named field of a record type.
func (t Type) FieldOffset(field string) (int64, error) {
	name := C.CString(field)
	defer freeCString(name)
	return layoutResult(int64(C.clang_Type_getOffsetOf(t.t, name)))
}

func layoutResult(v int64) (int64, error) {
	if v < 0 {
		return 0, layoutError(LayoutErrorCode(v))
	}
	return v, nil
}

// NumTemplateArgs returns the template argument count, or -1 when t is not
// a template specialization.
func (t Type) NumTemplateArgs() int {
	return int(C.clang_Type_getNumTemplateArguments(t.t))
}

func (t Type) TemplateArgType(i int) Type {
	return Type{t: C.clang_Type_getTemplateArgumentAsType(t.t, C.uint(i))}
}

func (t Type) Pointee() Type {
	return Type{t: C.clang_getPointeeType(t.t)}
}

func (t Type) Elem() Type {
	return Type{t: C.clang_getArrayElementType(t.t)}
}

// ArraySize is the element count of a constant array, or -1.
func (t Type) ArraySize() int64 {
	return int64(C.clang_getArraySize(t.t))
}

// Canonical strips typedefs and other sugar.
func (t Type) Canonical() Type {
	return Type{t: C.clang_getCanonicalType(t.t)}
}

// Named returns the type behind an elaborated type reference.
func (t Type) Named() Type {
	return Type{t: C.clang_Type_getNamedType(t.t)}
}

func (t Type) IsVariadic() bool {
	return C.clang_isFunctionTypeVariadic(t.t) != 0
}

// ArgTypes returns the parameter types of a function type in order.
func (t Type) ArgTypes() []Type {
	n := int(C.clang_getNumArgTypes(t.t))
	if n <= 0 {
		return nil
	}
	args := make([]Type, n)
	for i := range args {
		args[i] = Type{t: C.clang_getArgType(t.t, C.uint(i))}
	}
	return args
}

func (t Type) ResultType() Type {
	return Type{t: C.clang_getResultType(t.t)}
}

func (t Type) CallingConv() CallingConv {
	return CallingConv(C.clang_getFunctionTypeCallingConv(t.t))
}

// Equal reports whether both handles denote the same type.
func (t Type) Equal(other Type) bool {
	return C.clang_equalTypes(t.t, other.t) != 0
}

func (t Type) String() string {
	return t.Spelling()
}

// LayoutErrorCode is the reason a size or alignment query failed.
type LayoutErrorCode int32

const (
	LayoutErrorInvalid          LayoutErrorCode = C.CXTypeLayoutError_Invalid
	LayoutErrorIncomplete       LayoutErrorCode = C.CXTypeLayoutError_Incomplete
	LayoutErrorDependent        LayoutErrorCode = C.CXTypeLayoutError_Dependent
	LayoutErrorNotConstantSize  LayoutErrorCode = C.CXTypeLayoutError_NotConstantSize
	LayoutErrorInvalidFieldName LayoutErrorCode = C.CXTypeLayoutError_InvalidFieldName
)

func (c LayoutErrorCode) String() string {
	switch c {
	case LayoutErrorInvalid:
		return "Invalid"
	case LayoutErrorIncomplete:
		return "Incomplete"
	case LayoutErrorDependent:
		return "Dependent"
	case LayoutErrorNotConstantSize:
		return "NotConstantSize"
	case LayoutErrorInvalidFieldName:
		return "InvalidFieldName"
	}
	return "Unknown(" + strconv.Itoa(int(c)) + ")"
}

// LayoutError is returned by the fallible layout accessors.
type LayoutError struct {
	Code LayoutErrorCode
}

func (e *LayoutError) Error() string {
	return "type layout: " + e.Code.String()
}

// Is matches any *LayoutError with the same code.
func (e *LayoutError) Is(target error) bool {
	t, ok := target.(*LayoutError)
	return ok && t.Code == e.Code
}

var (
	ErrLayoutInvalid          = &LayoutError{Code: LayoutErrorInvalid}
	ErrLayoutIncomplete       = &LayoutError{Code: LayoutErrorIncomplete}
	ErrLayoutDependent        = &LayoutError{Code: LayoutErrorDependent}
	ErrLayoutNotConstantSize  = &LayoutError{Code: LayoutErrorNotConstantSize}
	ErrLayoutInvalidFieldName = &LayoutError{Code: LayoutErrorInvalidFieldName}
)

func layoutError(code LayoutErrorCode) *LayoutError {
	switch code {
	case LayoutErrorInvalid:
		return ErrLayoutInvalid
	case LayoutErrorIncomplete:
		return ErrLayoutIncomplete
	case LayoutErrorDependent:
		return ErrLayoutDependent
	case LayoutErrorNotConstantSize:
		return ErrLayoutNotConstantSize
	case LayoutErrorInvalidFieldName:
		return ErrLayoutInvalidFieldName
	}
	// Newer libclang releases add codes (e.g. undeduced auto).
	return &LayoutError{Code: code}
}
