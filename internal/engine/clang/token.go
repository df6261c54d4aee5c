package clang

// Token is one lexical unit copied out of a TranslationUnit.
// Line and Column are the 1-based spelling position of its first character.
type Token struct {
	Kind     TokenKind
	Spelling string
	Line     uint32
	Column   uint32
}

func (t Token) String() string {
	return t.Kind.String() + " " + t.Spelling
}
