package clang

/*
#include <clang-c/Index.h>
*/
import "C"

// ChildVisitResult is returned by a CursorVisitor to steer traversal.
type ChildVisitResult uint32

const (
	// ChildVisitBreak aborts the whole traversal.
	ChildVisitBreak ChildVisitResult = C.CXChildVisit_Break
	// ChildVisitContinue moves to the next sibling without descending.
	ChildVisitContinue ChildVisitResult = C.CXChildVisit_Continue
	// ChildVisitRecurse descends into the current cursor's children first.
	ChildVisitRecurse ChildVisitResult = C.CXChildVisit_Recurse
)

func (r ChildVisitResult) String() string {
	switch r {
	case ChildVisitBreak:
		return "Break"
	case ChildVisitContinue:
		return "Continue"
	case ChildVisitRecurse:
		return "Recurse"
	}
	return "?"
}

type LinkageKind uint32

const (
	LinkageInvalid        LinkageKind = C.CXLinkage_Invalid
	LinkageNone           LinkageKind = C.CXLinkage_NoLinkage
	LinkageInternal       LinkageKind = C.CXLinkage_Internal
	LinkageUniqueExternal LinkageKind = C.CXLinkage_UniqueExternal
	LinkageExternal       LinkageKind = C.CXLinkage_External
)

func (k LinkageKind) String() string {
	switch k {
	case LinkageInvalid:
		return "Invalid"
	case LinkageNone:
		return "NoLinkage"
	case LinkageInternal:
		return "Internal"
	case LinkageUniqueExternal:
		return "UniqueExternal"
	case LinkageExternal:
		return "External"
	}
	return "?"
}

type VisibilityKind uint32

const (
	VisibilityInvalid   VisibilityKind = C.CXVisibility_Invalid
	VisibilityHidden    VisibilityKind = C.CXVisibility_Hidden
	VisibilityProtected VisibilityKind = C.CXVisibility_Protected
	VisibilityDefault   VisibilityKind = C.CXVisibility_Default
)

func (k VisibilityKind) String() string {
	switch k {
	case VisibilityInvalid:
		return "Invalid"
	case VisibilityHidden:
		return "Hidden"
	case VisibilityProtected:
		return "Protected"
	case VisibilityDefault:
		return "Default"
	}
	return "?"
}

// AccessSpecifier is the C++ access level of a member or base.
type AccessSpecifier uint32

const (
	AccessInvalid   AccessSpecifier = C.CX_CXXInvalidAccessSpecifier
	AccessPublic    AccessSpecifier = C.CX_CXXPublic
	AccessProtected AccessSpecifier = C.CX_CXXProtected
	AccessPrivate   AccessSpecifier = C.CX_CXXPrivate
)

func (a AccessSpecifier) String() string {
	switch a {
	case AccessInvalid:
		return "Invalid"
	case AccessPublic:
		return "Public"
	case AccessProtected:
		return "Protected"
	case AccessPrivate:
		return "Private"
	}
	return "?"
}

type TemplateArgumentKind uint32

const (
	TemplateArgNull              TemplateArgumentKind = C.CXTemplateArgumentKind_Null
	TemplateArgType              TemplateArgumentKind = C.CXTemplateArgumentKind_Type
	TemplateArgDeclaration       TemplateArgumentKind = C.CXTemplateArgumentKind_Declaration
	TemplateArgNullPtr           TemplateArgumentKind = C.CXTemplateArgumentKind_NullPtr
	TemplateArgIntegral          TemplateArgumentKind = C.CXTemplateArgumentKind_Integral
	TemplateArgTemplate          TemplateArgumentKind = C.CXTemplateArgumentKind_Template
	TemplateArgTemplateExpansion TemplateArgumentKind = C.CXTemplateArgumentKind_TemplateExpansion
	TemplateArgExpression        TemplateArgumentKind = C.CXTemplateArgumentKind_Expression
	TemplateArgPack              TemplateArgumentKind = C.CXTemplateArgumentKind_Pack
	TemplateArgInvalid           TemplateArgumentKind = C.CXTemplateArgumentKind_Invalid
)

func (k TemplateArgumentKind) String() string {
	switch k {
	case TemplateArgNull:
		return "Null"
	case TemplateArgType:
		return "Type"
	case TemplateArgDeclaration:
		return "Declaration"
	case TemplateArgNullPtr:
		return "NullPtr"
	case TemplateArgIntegral:
		return "Integral"
	case TemplateArgTemplate:
		return "Template"
	case TemplateArgTemplateExpansion:
		return "TemplateExpansion"
	case TemplateArgExpression:
		return "Expression"
	case TemplateArgPack:
		return "Pack"
	case TemplateArgInvalid:
		return "Invalid"
	}
	return "?"
}

type DiagnosticSeverity uint32

const (
	SeverityIgnored DiagnosticSeverity = C.CXDiagnostic_Ignored
	SeverityNote    DiagnosticSeverity = C.CXDiagnostic_Note
	SeverityWarning DiagnosticSeverity = C.CXDiagnostic_Warning
	SeverityError   DiagnosticSeverity = C.CXDiagnostic_Error
	SeverityFatal   DiagnosticSeverity = C.CXDiagnostic_Fatal
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case SeverityIgnored:
		return "ignored"
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	}
	return "?"
}

// MarshalText encodes the severity by name.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DiagnosticDisplayOptions is a bitmask for Diagnostic.Format.
type DiagnosticDisplayOptions uint32

const (
	DisplaySourceLocation DiagnosticDisplayOptions = C.CXDiagnostic_DisplaySourceLocation
	DisplayColumn         DiagnosticDisplayOptions = C.CXDiagnostic_DisplayColumn
	DisplaySourceRanges   DiagnosticDisplayOptions = C.CXDiagnostic_DisplaySourceRanges
	DisplayOption         DiagnosticDisplayOptions = C.CXDiagnostic_DisplayOption
	DisplayCategoryID     DiagnosticDisplayOptions = C.CXDiagnostic_DisplayCategoryId
	DisplayCategoryName   DiagnosticDisplayOptions = C.CXDiagnostic_DisplayCategoryName
)

type CallingConv uint32

const (
	CallingConvDefault       CallingConv = C.CXCallingConv_Default
	CallingConvC             CallingConv = C.CXCallingConv_C
	CallingConvX86StdCall    CallingConv = C.CXCallingConv_X86StdCall
	CallingConvX86FastCall   CallingConv = C.CXCallingConv_X86FastCall
	CallingConvX86ThisCall   CallingConv = C.CXCallingConv_X86ThisCall
	CallingConvX86Pascal     CallingConv = C.CXCallingConv_X86Pascal
	CallingConvAAPCS         CallingConv = C.CXCallingConv_AAPCS
	CallingConvAAPCSVFP      CallingConv = C.CXCallingConv_AAPCS_VFP
	CallingConvX86RegCall    CallingConv = C.CXCallingConv_X86RegCall
	CallingConvIntelOclBicc  CallingConv = C.CXCallingConv_IntelOclBicc
	CallingConvWin64         CallingConv = C.CXCallingConv_Win64
	CallingConvX86_64SysV    CallingConv = C.CXCallingConv_X86_64SysV
	CallingConvX86VectorCall CallingConv = C.CXCallingConv_X86VectorCall
	CallingConvSwift         CallingConv = C.CXCallingConv_Swift
	CallingConvPreserveMost  CallingConv = C.CXCallingConv_PreserveMost
	CallingConvPreserveAll   CallingConv = C.CXCallingConv_PreserveAll
	CallingConvInvalid       CallingConv = C.CXCallingConv_Invalid
	CallingConvUnexposed     CallingConv = C.CXCallingConv_Unexposed
)

var callingConvLabels = map[CallingConv]string{
	CallingConvDefault:       "Default",
	CallingConvC:             "C",
	CallingConvX86StdCall:    "X86StdCall",
	CallingConvX86FastCall:   "X86FastCall",
	CallingConvX86ThisCall:   "X86ThisCall",
	CallingConvX86Pascal:     "X86Pascal",
	CallingConvAAPCS:         "AAPCS",
	CallingConvAAPCSVFP:      "AAPCS_VFP",
	CallingConvX86RegCall:    "X86RegCall",
	CallingConvIntelOclBicc:  "IntelOclBicc",
	CallingConvWin64:         "Win64",
	CallingConvX86_64SysV:    "X86_64SysV",
	CallingConvX86VectorCall: "X86VectorCall",
	CallingConvSwift:         "Swift",
	CallingConvPreserveMost:  "PreserveMost",
	CallingConvPreserveAll:   "PreserveAll",
	CallingConvInvalid:       "Invalid",
	CallingConvUnexposed:     "Unexposed",
}

func (c CallingConv) String() string {
	if s, ok := callingConvLabels[c]; ok {
		return s
	}
	return "?"
}

type TokenKind uint32

const (
	TokenPunctuation TokenKind = C.CXToken_Punctuation
	TokenKeyword     TokenKind = C.CXToken_Keyword
	TokenIdentifier  TokenKind = C.CXToken_Identifier
	TokenLiteral     TokenKind = C.CXToken_Literal
	TokenComment     TokenKind = C.CXToken_Comment
)

func (k TokenKind) String() string {
	switch k {
	case TokenPunctuation:
		return "Punctuation"
	case TokenKeyword:
		return "Keyword"
	case TokenIdentifier:
		return "Identifier"
	case TokenLiteral:
		return "Literal"
	case TokenComment:
		return "Comment"
	}
	return "?"
}

// TranslationUnitFlags is the option bitmask for Parse.
type TranslationUnitFlags uint32

const (
	TUNone                        TranslationUnitFlags = C.CXTranslationUnit_None
	TUDetailedPreprocessingRecord TranslationUnitFlags = C.CXTranslationUnit_DetailedPreprocessingRecord
	TUIncomplete                  TranslationUnitFlags = C.CXTranslationUnit_Incomplete
	TUPrecompiledPreamble         TranslationUnitFlags = C.CXTranslationUnit_PrecompiledPreamble
	TUCacheCompletionResults      TranslationUnitFlags = C.CXTranslationUnit_CacheCompletionResults
	TUForSerialization            TranslationUnitFlags = C.CXTranslationUnit_ForSerialization
	TUSkipFunctionBodies          TranslationUnitFlags = C.CXTranslationUnit_SkipFunctionBodies
	TUIncludeBriefComments        TranslationUnitFlags = C.CXTranslationUnit_IncludeBriefCommentsInCodeCompletion
	TUKeepGoing                   TranslationUnitFlags = C.CXTranslationUnit_KeepGoing
)

// ReparseFlags is the option bitmask for TranslationUnit.Reparse.
type ReparseFlags uint32

const ReparseNone ReparseFlags = C.CXReparse_None
