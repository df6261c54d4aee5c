package clang

/*
#include <clang-c/Index.h>
*/
import "C"

// CursorKind classifies an AST node. The native enumeration is larger than the
// set of named constants below and grows with every libclang release; values
// without a name are still valid kinds and print as "?".
type CursorKind uint32

const (
	CursorUnexposedDecl                      CursorKind = C.CXCursor_UnexposedDecl
	CursorStructDecl                         CursorKind = C.CXCursor_StructDecl
	CursorUnionDecl                          CursorKind = C.CXCursor_UnionDecl
	CursorClassDecl                          CursorKind = C.CXCursor_ClassDecl
	CursorEnumDecl                           CursorKind = C.CXCursor_EnumDecl
	CursorFieldDecl                          CursorKind = C.CXCursor_FieldDecl
	CursorEnumConstantDecl                   CursorKind = C.CXCursor_EnumConstantDecl
	CursorFunctionDecl                       CursorKind = C.CXCursor_FunctionDecl
	CursorVarDecl                            CursorKind = C.CXCursor_VarDecl
	CursorParmDecl                           CursorKind = C.CXCursor_ParmDecl
	CursorObjCInterfaceDecl                  CursorKind = C.CXCursor_ObjCInterfaceDecl
	CursorObjCCategoryDecl                   CursorKind = C.CXCursor_ObjCCategoryDecl
	CursorObjCProtocolDecl                   CursorKind = C.CXCursor_ObjCProtocolDecl
	CursorObjCPropertyDecl                   CursorKind = C.CXCursor_ObjCPropertyDecl
	CursorObjCIvarDecl                       CursorKind = C.CXCursor_ObjCIvarDecl
	CursorObjCInstanceMethodDecl             CursorKind = C.CXCursor_ObjCInstanceMethodDecl
	CursorObjCClassMethodDecl                CursorKind = C.CXCursor_ObjCClassMethodDecl
	CursorObjCImplementationDecl             CursorKind = C.CXCursor_ObjCImplementationDecl
	CursorObjCCategoryImplDecl               CursorKind = C.CXCursor_ObjCCategoryImplDecl
	CursorTypedefDecl                        CursorKind = C.CXCursor_TypedefDecl
	CursorCXXMethod                          CursorKind = C.CXCursor_CXXMethod
	CursorNamespace                          CursorKind = C.CXCursor_Namespace
	CursorLinkageSpec                        CursorKind = C.CXCursor_LinkageSpec
	CursorConstructor                        CursorKind = C.CXCursor_Constructor
	CursorDestructor                         CursorKind = C.CXCursor_Destructor
	CursorConversionFunction                 CursorKind = C.CXCursor_ConversionFunction
	CursorTemplateTypeParameter              CursorKind = C.CXCursor_TemplateTypeParameter
	CursorNonTypeTemplateParameter           CursorKind = C.CXCursor_NonTypeTemplateParameter
	CursorTemplateTemplateParameter          CursorKind = C.CXCursor_TemplateTemplateParameter
	CursorFunctionTemplate                   CursorKind = C.CXCursor_FunctionTemplate
	CursorClassTemplate                      CursorKind = C.CXCursor_ClassTemplate
	CursorClassTemplatePartialSpecialization CursorKind = C.CXCursor_ClassTemplatePartialSpecialization
	CursorNamespaceAlias                     CursorKind = C.CXCursor_NamespaceAlias
	CursorUsingDirective                     CursorKind = C.CXCursor_UsingDirective
	CursorUsingDeclaration                   CursorKind = C.CXCursor_UsingDeclaration
	CursorTypeAliasDecl                      CursorKind = C.CXCursor_TypeAliasDecl
	CursorObjCSynthesizeDecl                 CursorKind = C.CXCursor_ObjCSynthesizeDecl
	CursorObjCDynamicDecl                    CursorKind = C.CXCursor_ObjCDynamicDecl
	CursorCXXAccessSpecifier                 CursorKind = C.CXCursor_CXXAccessSpecifier
	CursorObjCProtocolRef                    CursorKind = C.CXCursor_ObjCProtocolRef
	CursorObjCClassRef                       CursorKind = C.CXCursor_ObjCClassRef
	CursorTypeRef                            CursorKind = C.CXCursor_TypeRef
	CursorCXXBaseSpecifier                   CursorKind = C.CXCursor_CXXBaseSpecifier
	CursorTemplateRef                        CursorKind = C.CXCursor_TemplateRef
	CursorNamespaceRef                       CursorKind = C.CXCursor_NamespaceRef
	CursorMemberRef                          CursorKind = C.CXCursor_MemberRef
	CursorOverloadedDeclRef                  CursorKind = C.CXCursor_OverloadedDeclRef
	CursorVariableRef                        CursorKind = C.CXCursor_VariableRef
	CursorNoDeclFound                        CursorKind = C.CXCursor_NoDeclFound
	CursorNotImplemented                     CursorKind = C.CXCursor_NotImplemented
	CursorInvalidCode                        CursorKind = C.CXCursor_InvalidCode
	CursorDeclRefExpr                        CursorKind = C.CXCursor_DeclRefExpr
	CursorMemberRefExpr                      CursorKind = C.CXCursor_MemberRefExpr
	CursorCallExpr                           CursorKind = C.CXCursor_CallExpr
	CursorObjCMessageExpr                    CursorKind = C.CXCursor_ObjCMessageExpr
	CursorBlockExpr                          CursorKind = C.CXCursor_BlockExpr
	CursorIntegerLiteral                     CursorKind = C.CXCursor_IntegerLiteral
	CursorFloatingLiteral                    CursorKind = C.CXCursor_FloatingLiteral
	CursorImaginaryLiteral                   CursorKind = C.CXCursor_ImaginaryLiteral
	CursorStringLiteral                      CursorKind = C.CXCursor_StringLiteral
	CursorCharacterLiteral                   CursorKind = C.CXCursor_CharacterLiteral
	CursorParenExpr                          CursorKind = C.CXCursor_ParenExpr
	CursorUnaryOperator                      CursorKind = C.CXCursor_UnaryOperator
	CursorArraySubscriptExpr                 CursorKind = C.CXCursor_ArraySubscriptExpr
	CursorBinaryOperator                     CursorKind = C.CXCursor_BinaryOperator
	CursorCompoundAssignOperator             CursorKind = C.CXCursor_CompoundAssignOperator
	CursorConditionalOperator                CursorKind = C.CXCursor_ConditionalOperator
	CursorCStyleCastExpr                     CursorKind = C.CXCursor_CStyleCastExpr
	CursorCompoundLiteralExpr                CursorKind = C.CXCursor_CompoundLiteralExpr
	CursorInitListExpr                       CursorKind = C.CXCursor_InitListExpr
	CursorAddrLabelExpr                      CursorKind = C.CXCursor_AddrLabelExpr
	CursorStmtExpr                           CursorKind = C.CXCursor_StmtExpr
	CursorGenericSelectionExpr               CursorKind = C.CXCursor_GenericSelectionExpr
	CursorGNUNullExpr                        CursorKind = C.CXCursor_GNUNullExpr
	CursorCXXStaticCastExpr                  CursorKind = C.CXCursor_CXXStaticCastExpr
	CursorCXXDynamicCastExpr                 CursorKind = C.CXCursor_CXXDynamicCastExpr
	CursorCXXReinterpretCastExpr             CursorKind = C.CXCursor_CXXReinterpretCastExpr
	CursorCXXConstCastExpr                   CursorKind = C.CXCursor_CXXConstCastExpr
	CursorCXXFunctionalCastExpr              CursorKind = C.CXCursor_CXXFunctionalCastExpr
	CursorCXXTypeidExpr                      CursorKind = C.CXCursor_CXXTypeidExpr
	CursorCXXBoolLiteralExpr                 CursorKind = C.CXCursor_CXXBoolLiteralExpr
	CursorCXXNullPtrLiteralExpr              CursorKind = C.CXCursor_CXXNullPtrLiteralExpr
	CursorCXXThisExpr                        CursorKind = C.CXCursor_CXXThisExpr
	CursorCXXThrowExpr                       CursorKind = C.CXCursor_CXXThrowExpr
	CursorCXXNewExpr                         CursorKind = C.CXCursor_CXXNewExpr
	CursorCXXDeleteExpr                      CursorKind = C.CXCursor_CXXDeleteExpr
	CursorUnaryExpr                          CursorKind = C.CXCursor_UnaryExpr
	CursorObjCStringLiteral                  CursorKind = C.CXCursor_ObjCStringLiteral
	CursorObjCEncodeExpr                     CursorKind = C.CXCursor_ObjCEncodeExpr
	CursorObjCSelectorExpr                   CursorKind = C.CXCursor_ObjCSelectorExpr
	CursorObjCProtocolExpr                   CursorKind = C.CXCursor_ObjCProtocolExpr
	CursorObjCBridgedCastExpr                CursorKind = C.CXCursor_ObjCBridgedCastExpr
	CursorPackExpansionExpr                  CursorKind = C.CXCursor_PackExpansionExpr
	CursorSizeOfPackExpr                     CursorKind = C.CXCursor_SizeOfPackExpr
	CursorLambdaExpr                         CursorKind = C.CXCursor_LambdaExpr
	CursorObjCBoolLiteralExpr                CursorKind = C.CXCursor_ObjCBoolLiteralExpr
	CursorLabelStmt                          CursorKind = C.CXCursor_LabelStmt
	CursorCompoundStmt                       CursorKind = C.CXCursor_CompoundStmt
	CursorCaseStmt                           CursorKind = C.CXCursor_CaseStmt
	CursorDefaultStmt                        CursorKind = C.CXCursor_DefaultStmt
	CursorIfStmt                             CursorKind = C.CXCursor_IfStmt
	CursorSwitchStmt                         CursorKind = C.CXCursor_SwitchStmt
	CursorWhileStmt                          CursorKind = C.CXCursor_WhileStmt
	CursorDoStmt                             CursorKind = C.CXCursor_DoStmt
	CursorForStmt                            CursorKind = C.CXCursor_ForStmt
	CursorGotoStmt                           CursorKind = C.CXCursor_GotoStmt
	CursorIndirectGotoStmt                   CursorKind = C.CXCursor_IndirectGotoStmt
	CursorContinueStmt                       CursorKind = C.CXCursor_ContinueStmt
	CursorBreakStmt                          CursorKind = C.CXCursor_BreakStmt
	CursorReturnStmt                         CursorKind = C.CXCursor_ReturnStmt
	CursorAsmStmt                            CursorKind = C.CXCursor_AsmStmt
	CursorObjCAtTryStmt                      CursorKind = C.CXCursor_ObjCAtTryStmt
	CursorObjCAtCatchStmt                    CursorKind = C.CXCursor_ObjCAtCatchStmt
	CursorObjCAtFinallyStmt                  CursorKind = C.CXCursor_ObjCAtFinallyStmt
	CursorObjCAtThrowStmt                    CursorKind = C.CXCursor_ObjCAtThrowStmt
	CursorObjCAtSynchronizedStmt             CursorKind = C.CXCursor_ObjCAtSynchronizedStmt
	CursorObjCAutoreleasePoolStmt            CursorKind = C.CXCursor_ObjCAutoreleasePoolStmt
	CursorObjCForCollectionStmt              CursorKind = C.CXCursor_ObjCForCollectionStmt
	CursorCXXCatchStmt                       CursorKind = C.CXCursor_CXXCatchStmt
	CursorCXXTryStmt                         CursorKind = C.CXCursor_CXXTryStmt
	CursorCXXForRangeStmt                    CursorKind = C.CXCursor_CXXForRangeStmt
	CursorSEHTryStmt                         CursorKind = C.CXCursor_SEHTryStmt
	CursorSEHExceptStmt                      CursorKind = C.CXCursor_SEHExceptStmt
	CursorSEHFinallyStmt                     CursorKind = C.CXCursor_SEHFinallyStmt
	CursorNullStmt                           CursorKind = C.CXCursor_NullStmt
	CursorDeclStmt                           CursorKind = C.CXCursor_DeclStmt
	CursorTranslationUnit                    CursorKind = C.CXCursor_TranslationUnit
	CursorIBActionAttr                       CursorKind = C.CXCursor_IBActionAttr
	CursorIBOutletAttr                       CursorKind = C.CXCursor_IBOutletAttr
	CursorIBOutletCollectionAttr             CursorKind = C.CXCursor_IBOutletCollectionAttr
	CursorCXXFinalAttr                       CursorKind = C.CXCursor_CXXFinalAttr
	CursorCXXOverrideAttr                    CursorKind = C.CXCursor_CXXOverrideAttr
	CursorAnnotateAttr                       CursorKind = C.CXCursor_AnnotateAttr
	CursorAsmLabelAttr                       CursorKind = C.CXCursor_AsmLabelAttr
	CursorPreprocessingDirective             CursorKind = C.CXCursor_PreprocessingDirective
	CursorMacroDefinition                    CursorKind = C.CXCursor_MacroDefinition
	CursorMacroExpansion                     CursorKind = C.CXCursor_MacroExpansion
	CursorInclusionDirective                 CursorKind = C.CXCursor_InclusionDirective
	CursorPackedAttr                         CursorKind = C.CXCursor_PackedAttr
)

var cursorKindLabels = map[CursorKind]string{
	CursorUnexposedDecl:                      "UnexposedDecl",
	CursorStructDecl:                         "StructDecl",
	CursorUnionDecl:                          "UnionDecl",
	CursorClassDecl:                          "ClassDecl",
	CursorEnumDecl:                           "EnumDecl",
	CursorFieldDecl:                          "FieldDecl",
	CursorEnumConstantDecl:                   "EnumConstantDecl",
	CursorFunctionDecl:                       "FunctionDecl",
	CursorVarDecl:                            "VarDecl",
	CursorParmDecl:                           "ParmDecl",
	CursorObjCInterfaceDecl:                  "ObjCInterfaceDecl",
	CursorObjCCategoryDecl:                   "ObjCCategoryDecl",
	CursorObjCProtocolDecl:                   "ObjCProtocolDecl",
	CursorObjCPropertyDecl:                   "ObjCPropertyDecl",
	CursorObjCIvarDecl:                       "ObjCIvarDecl",
	CursorObjCInstanceMethodDecl:             "ObjCInstanceMethodDecl",
	CursorObjCClassMethodDecl:                "ObjCClassMethodDecl",
	CursorObjCImplementationDecl:             "ObjCImplementationDecl",
	CursorObjCCategoryImplDecl:               "ObjCCategoryImplDecl",
	CursorTypedefDecl:                        "TypedefDecl",
	CursorCXXMethod:                          "CXXMethod",
	CursorNamespace:                          "Namespace",
	CursorLinkageSpec:                        "LinkageSpec",
	CursorConstructor:                        "Constructor",
	CursorDestructor:                         "Destructor",
	CursorConversionFunction:                 "ConversionFunction",
	CursorTemplateTypeParameter:              "TemplateTypeParameter",
	CursorNonTypeTemplateParameter:           "NonTypeTemplateParameter",
	CursorTemplateTemplateParameter:          "TemplateTemplateParameter",
	CursorFunctionTemplate:                   "FunctionTemplate",
	CursorClassTemplate:                      "ClassTemplate",
	CursorClassTemplatePartialSpecialization: "ClassTemplatePartialSpecialization",
	CursorNamespaceAlias:                     "NamespaceAlias",
	CursorUsingDirective:                     "UsingDirective",
	CursorUsingDeclaration:                   "UsingDeclaration",
	CursorTypeAliasDecl:                      "TypeAliasDecl",
	CursorObjCSynthesizeDecl:                 "ObjCSynthesizeDecl",
	CursorObjCDynamicDecl:                    "ObjCDynamicDecl",
	CursorCXXAccessSpecifier:                 "CXXAccessSpecifier",
	CursorObjCProtocolRef:                    "ObjCProtocolRef",
	CursorObjCClassRef:                       "ObjCClassRef",
	CursorTypeRef:                            "TypeRef",
	CursorCXXBaseSpecifier:                   "CXXBaseSpecifier",
	CursorTemplateRef:                        "TemplateRef",
	CursorNamespaceRef:                       "NamespaceRef",
	CursorMemberRef:                          "MemberRef",
	CursorOverloadedDeclRef:                  "OverloadedDeclRef",
	CursorVariableRef:                        "VariableRef",
	CursorNoDeclFound:                        "NoDeclFound",
	CursorNotImplemented:                     "NotImplemented",
	CursorInvalidCode:                        "InvalidCode",
	CursorDeclRefExpr:                        "DeclRefExpr",
	CursorMemberRefExpr:                      "MemberRefExpr",
	CursorCallExpr:                           "CallExpr",
	CursorObjCMessageExpr:                    "ObjCMessageExpr",
	CursorBlockExpr:                          "BlockExpr",
	CursorIntegerLiteral:                     "IntegerLiteral",
	CursorFloatingLiteral:                    "FloatingLiteral",
	CursorImaginaryLiteral:                   "ImaginaryLiteral",
	CursorStringLiteral:                      "StringLiteral",
	CursorCharacterLiteral:                   "CharacterLiteral",
	CursorParenExpr:                          "ParenExpr",
	CursorUnaryOperator:                      "UnaryOperator",
	CursorArraySubscriptExpr:                 "ArraySubscriptExpr",
	CursorBinaryOperator:                     "BinaryOperator",
	CursorCompoundAssignOperator:             "CompoundAssignOperator",
	CursorConditionalOperator:                "ConditionalOperator",
	CursorCStyleCastExpr:                     "CStyleCastExpr",
	CursorCompoundLiteralExpr:                "CompoundLiteralExpr",
	CursorInitListExpr:                       "InitListExpr",
	CursorAddrLabelExpr:                      "AddrLabelExpr",
	CursorStmtExpr:                           "StmtExpr",
	CursorGenericSelectionExpr:               "GenericSelectionExpr",
	CursorGNUNullExpr:                        "GNUNullExpr",
	CursorCXXStaticCastExpr:                  "CXXStaticCastExpr",
	CursorCXXDynamicCastExpr:                 "CXXDynamicCastExpr",
	CursorCXXReinterpretCastExpr:             "CXXReinterpretCastExpr",
	CursorCXXConstCastExpr:                   "CXXConstCastExpr",
	CursorCXXFunctionalCastExpr:              "CXXFunctionalCastExpr",
	CursorCXXTypeidExpr:                      "CXXTypeidExpr",
	CursorCXXBoolLiteralExpr:                 "CXXBoolLiteralExpr",
	CursorCXXNullPtrLiteralExpr:              "CXXNullPtrLiteralExpr",
	CursorCXXThisExpr:                        "CXXThisExpr",
	CursorCXXThrowExpr:                       "CXXThrowExpr",
	CursorCXXNewExpr:                         "CXXNewExpr",
	CursorCXXDeleteExpr:                      "CXXDeleteExpr",
	CursorUnaryExpr:                          "UnaryExpr",
	CursorObjCStringLiteral:                  "ObjCStringLiteral",
	CursorObjCEncodeExpr:                     "ObjCEncodeExpr",
	CursorObjCSelectorExpr:                   "ObjCSelectorExpr",
	CursorObjCProtocolExpr:                   "ObjCProtocolExpr",
	CursorObjCBridgedCastExpr:                "ObjCBridgedCastExpr",
	CursorPackExpansionExpr:                  "PackExpansionExpr",
	CursorSizeOfPackExpr:                     "SizeOfPackExpr",
	CursorLambdaExpr:                         "LambdaExpr",
	CursorObjCBoolLiteralExpr:                "ObjCBoolLiteralExpr",
	CursorLabelStmt:                          "LabelStmt",
	CursorCompoundStmt:                       "CompoundStmt",
	CursorCaseStmt:                           "CaseStmt",
	CursorDefaultStmt:                        "DefaultStmt",
	CursorIfStmt:                             "IfStmt",
	CursorSwitchStmt:                         "SwitchStmt",
	CursorWhileStmt:                          "WhileStmt",
	CursorDoStmt:                             "DoStmt",
	CursorForStmt:                            "ForStmt",
	CursorGotoStmt:                           "GotoStmt",
	CursorIndirectGotoStmt:                   "IndirectGotoStmt",
	CursorContinueStmt:                       "ContinueStmt",
	CursorBreakStmt:                          "BreakStmt",
	CursorReturnStmt:                         "ReturnStmt",
	CursorAsmStmt:                            "AsmStmt",
	CursorObjCAtTryStmt:                      "ObjCAtTryStmt",
	CursorObjCAtCatchStmt:                    "ObjCAtCatchStmt",
	CursorObjCAtFinallyStmt:                  "ObjCAtFinallyStmt",
	CursorObjCAtThrowStmt:                    "ObjCAtThrowStmt",
	CursorObjCAtSynchronizedStmt:             "ObjCAtSynchronizedStmt",
	CursorObjCAutoreleasePoolStmt:            "ObjCAutoreleasePoolStmt",
	CursorObjCForCollectionStmt:              "ObjCForCollectionStmt",
	CursorCXXCatchStmt:                       "CXXCatchStmt",
	CursorCXXTryStmt:                         "CXXTryStmt",
	CursorCXXForRangeStmt:                    "CXXForRangeStmt",
	CursorSEHTryStmt:                         "SEHTryStmt",
	CursorSEHExceptStmt:                      "SEHExceptStmt",
	CursorSEHFinallyStmt:                     "SEHFinallyStmt",
	CursorNullStmt:                           "NullStmt",
	CursorDeclStmt:                           "DeclStmt",
	CursorTranslationUnit:                    "TranslationUnit",
	CursorIBActionAttr:                       "IBActionAttr",
	CursorIBOutletAttr:                       "IBOutletAttr",
	CursorIBOutletCollectionAttr:             "IBOutletCollectionAttr",
	CursorCXXFinalAttr:                       "CXXFinalAttr",
	CursorCXXOverrideAttr:                    "CXXOverrideAttr",
	CursorAnnotateAttr:                       "AnnotateAttr",
	CursorAsmLabelAttr:                       "AsmLabelAttr",
	CursorPreprocessingDirective:             "PreprocessingDirective",
	CursorMacroDefinition:                    "MacroDefinition",
	CursorMacroExpansion:                     "MacroExpansion",
	CursorInclusionDirective:                 "InclusionDirective",
	CursorPackedAttr:                         "PackedAttr",
}

// String returns the fixed debug label of k, or "?" for unlisted kinds.
func (k CursorKind) String() string {
	if s, ok := cursorKindLabels[k]; ok {
		return s
	}
	return "?"
}

// IsDeclaration reports whether k is a declaration kind.
func (k CursorKind) IsDeclaration() bool {
	return C.clang_isDeclaration(C.enum_CXCursorKind(k)) != 0
}

// IsReference reports whether k is a reference kind.
func (k CursorKind) IsReference() bool {
	return C.clang_isReference(C.enum_CXCursorKind(k)) != 0
}

// IsExpression reports whether k is an expression kind.
func (k CursorKind) IsExpression() bool {
	return C.clang_isExpression(C.enum_CXCursorKind(k)) != 0
}

// IsStatement reports whether k is a statement kind.
func (k CursorKind) IsStatement() bool {
	return C.clang_isStatement(C.enum_CXCursorKind(k)) != 0
}

// IsInvalid reports whether k falls in the invalid range.
func (k CursorKind) IsInvalid() bool {
	return C.clang_isInvalid(C.enum_CXCursorKind(k)) != 0
}

// IsPreprocessing reports whether k is a preprocessing entity.
func (k CursorKind) IsPreprocessing() bool {
	return C.clang_isPreprocessing(C.enum_CXCursorKind(k)) != 0
}

// ParseCursorKind maps a debug label back to its kind.
func ParseCursorKind(label string) (CursorKind, bool) {
	for k, s := range cursorKindLabels {
		if s == label {
			return k, true
		}
	}
	return 0, false
}

// TypeKind classifies a resolved type. Unlisted values print as "?".
type TypeKind uint32

const (
	TypeInvalid             TypeKind = C.CXType_Invalid
	TypeUnexposed           TypeKind = C.CXType_Unexposed
	TypeVoid                TypeKind = C.CXType_Void
	TypeBool                TypeKind = C.CXType_Bool
	TypeCharU               TypeKind = C.CXType_Char_U
	TypeUChar               TypeKind = C.CXType_UChar
	TypeChar16              TypeKind = C.CXType_Char16
	TypeChar32              TypeKind = C.CXType_Char32
	TypeUShort              TypeKind = C.CXType_UShort
	TypeUInt                TypeKind = C.CXType_UInt
	TypeULong               TypeKind = C.CXType_ULong
	TypeULongLong           TypeKind = C.CXType_ULongLong
	TypeUInt128             TypeKind = C.CXType_UInt128
	TypeCharS               TypeKind = C.CXType_Char_S
	TypeSChar               TypeKind = C.CXType_SChar
	TypeWChar               TypeKind = C.CXType_WChar
	TypeShort               TypeKind = C.CXType_Short
	TypeInt                 TypeKind = C.CXType_Int
	TypeLong                TypeKind = C.CXType_Long
	TypeLongLong            TypeKind = C.CXType_LongLong
	TypeInt128              TypeKind = C.CXType_Int128
	TypeFloat               TypeKind = C.CXType_Float
	TypeDouble              TypeKind = C.CXType_Double
	TypeLongDouble          TypeKind = C.CXType_LongDouble
	TypeNullPtr             TypeKind = C.CXType_NullPtr
	TypeOverload            TypeKind = C.CXType_Overload
	TypeDependent           TypeKind = C.CXType_Dependent
	TypeObjCId              TypeKind = C.CXType_ObjCId
	TypeObjCClass           TypeKind = C.CXType_ObjCClass
	TypeObjCSel             TypeKind = C.CXType_ObjCSel
	TypeComplex             TypeKind = C.CXType_Complex
	TypePointer             TypeKind = C.CXType_Pointer
	TypeBlockPointer        TypeKind = C.CXType_BlockPointer
	TypeLValueReference     TypeKind = C.CXType_LValueReference
	TypeRValueReference     TypeKind = C.CXType_RValueReference
	TypeRecord              TypeKind = C.CXType_Record
	TypeEnum                TypeKind = C.CXType_Enum
	TypeTypedef             TypeKind = C.CXType_Typedef
	TypeObjCInterface       TypeKind = C.CXType_ObjCInterface
	TypeObjCObjectPointer   TypeKind = C.CXType_ObjCObjectPointer
	TypeFunctionNoProto     TypeKind = C.CXType_FunctionNoProto
	TypeFunctionProto       TypeKind = C.CXType_FunctionProto
	TypeConstantArray       TypeKind = C.CXType_ConstantArray
	TypeVector              TypeKind = C.CXType_Vector
	TypeIncompleteArray     TypeKind = C.CXType_IncompleteArray
	TypeVariableArray       TypeKind = C.CXType_VariableArray
	TypeDependentSizedArray TypeKind = C.CXType_DependentSizedArray
	TypeMemberPointer       TypeKind = C.CXType_MemberPointer
	TypeAuto                TypeKind = C.CXType_Auto
	TypeElaborated          TypeKind = C.CXType_Elaborated
)

var typeKindLabels = map[TypeKind]string{
	TypeInvalid:             "Invalid",
	TypeUnexposed:           "Unexposed",
	TypeVoid:                "Void",
	TypeBool:                "Bool",
	TypeCharU:               "Char_U",
	TypeUChar:               "UChar",
	TypeChar16:              "Char16",
	TypeChar32:              "Char32",
	TypeUShort:              "UShort",
	TypeUInt:                "UInt",
	TypeULong:               "ULong",
	TypeULongLong:           "ULongLong",
	TypeUInt128:             "UInt128",
	TypeCharS:               "Char_S",
	TypeSChar:               "SChar",
	TypeWChar:               "WChar",
	TypeShort:               "Short",
	TypeInt:                 "Int",
	TypeLong:                "Long",
	TypeLongLong:            "LongLong",
	TypeInt128:              "Int128",
	TypeFloat:               "Float",
	TypeDouble:              "Double",
	TypeLongDouble:          "LongDouble",
	TypeNullPtr:             "NullPtr",
	TypeOverload:            "Overload",
	TypeDependent:           "Dependent",
	TypeObjCId:              "ObjCId",
	TypeObjCClass:           "ObjCClass",
	TypeObjCSel:             "ObjCSel",
	TypeComplex:             "Complex",
	TypePointer:             "Pointer",
	TypeBlockPointer:        "BlockPointer",
	TypeLValueReference:     "LValueReference",
	TypeRValueReference:     "RValueReference",
	TypeRecord:              "Record",
	TypeEnum:                "Enum",
	TypeTypedef:             "Typedef",
	TypeObjCInterface:       "ObjCInterface",
	TypeObjCObjectPointer:   "ObjCObjectPointer",
	TypeFunctionNoProto:     "FunctionNoProto",
	TypeFunctionProto:       "FunctionProto",
	TypeConstantArray:       "ConstantArray",
	TypeVector:              "Vector",
	TypeIncompleteArray:     "IncompleteArray",
	TypeVariableArray:       "VariableArray",
	TypeDependentSizedArray: "DependentSizedArray",
	TypeMemberPointer:       "MemberPointer",
	TypeAuto:                "Auto",
	TypeElaborated:          "Elaborated",
}

// String returns the fixed debug label of k, or "?" for unlisted kinds.
func (k TypeKind) String() string {
	if s, ok := typeKindLabels[k]; ok {
		return s
	}
	return "?"
}
