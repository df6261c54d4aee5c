package extract

import (
	"clangq/internal/engine/clang"
	"context"
	"strings"
)

// Macro is an object-like or function-like macro definition with its
// replacement list.
type Macro struct {
	Name         string   `json:"name"`
	FunctionLike bool     `json:"function_like"`
	Params       []string `json:"params,omitempty"`
	Tokens       []string `json:"tokens"`
	File         string   `json:"file"`
	Line         uint32   `json:"line"`
}

// Body joins the replacement tokens with single spaces.
func (m Macro) Body() string {
	return strings.Join(m.Tokens, " ")
}

// MacroDefinitions lists the macros defined in tu. The unit must have been
// parsed with a detailed preprocessing record, otherwise there are none.
// Builtin and predefined macros are skipped.
func MacroDefinitions(ctx context.Context, tu *clang.TranslationUnit, filter *Filter) ([]Macro, error) {
	if tu.IsNull() {
		return nil, nil
	}
	var (
		macros []Macro
		ctxErr error
	)
	tu.Cursor().Visit(func(c, _ clang.Cursor) clang.ChildVisitResult {
		if ctxErr = ctx.Err(); ctxErr != nil {
			return clang.ChildVisitBreak
		}
		if c.Kind() != clang.CursorMacroDefinition || c.IsMacroBuiltin() {
			return clang.ChildVisitContinue
		}
		pos := c.Location().Position()
		if pos.IsBuiltin() {
			return clang.ChildVisitContinue
		}
		if filter != nil && !filter.AllowLocation(c.Location()) {
			return clang.ChildVisitContinue
		}
		tokens, ok := tu.Tokens(c)
		if !ok {
			return clang.ChildVisitContinue
		}
		tokens = trimPastLine(tokens, c.Extent().End().Position().Line)
		m := Macro{
			Name:         c.Spelling(),
			FunctionLike: c.IsMacroFunctionLike(),
			File:         pos.File,
			Line:         pos.Line,
		}
		m.Params, m.Tokens = replacementList(m.Name, m.FunctionLike, tokens)
		macros = append(macros, m)
		return clang.ChildVisitContinue
	})
	if ctxErr != nil {
		return nil, ctxErr
	}
	return macros, nil
}

// Signature renders the macro head: the name plus the parameter list for
// function-like macros.
func (m Macro) Signature() string {
	if !m.FunctionLike {
		return m.Name
	}
	return m.Name + "(" + strings.Join(m.Params, ", ") + ")"
}

// trimPastLine drops trailing tokens that start after line. Some libclang
// releases tokenize one token past the end of a macro definition, which is
// the first token of the following line.
func trimPastLine(tokens []clang.Token, line uint32) []clang.Token {
	if line == 0 {
		return tokens
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].Line > line {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// replacementList splits a definition's token run into its parameter names
// and replacement tokens. The leading name token is dropped.
func replacementList(name string, functionLike bool, tokens []clang.Token) (params, body []string) {
	if len(tokens) > 0 && tokens[0].Spelling == name {
		tokens = tokens[1:]
	}
	if functionLike && len(tokens) > 0 && tokens[0].Spelling == "(" {
		params = []string{}
		i := 1
		for ; i < len(tokens) && tokens[i].Spelling != ")"; i++ {
			if tokens[i].Spelling != "," {
				params = append(params, tokens[i].Spelling)
			}
		}
		if i < len(tokens) {
			i++
		}
		tokens = tokens[i:]
	}
	body = make([]string, len(tokens))
	for i, tok := range tokens {
		body[i] = tok.Spelling
	}
	return params, body
}
