package extract

import (
	"clangq/internal/core/config"
	"clangq/internal/engine/clang"
	"clangq/internal/engine/session"
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `/// A point.
struct Point;
struct Point { int x; int y; unsigned flags : 3; };
enum Color { Red, Green = 5 };
typedef struct Point point_t;
int area(const struct Point *p, int scale, ...);
static double ratio;
`

func open(t *testing.T, name, src string, detailed bool, args ...string) *session.Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Parse.File = name
	cfg.Parse.Args = args
	cfg.Parse.DetailedPreprocessing = detailed
	cfg.Unsaved = []config.Unsaved{{Name: name, Content: src}}
	s, err := session.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func byName(decls []Declaration) map[string]Declaration {
	out := make(map[string]Declaration, len(decls))
	for _, d := range decls {
		out[d.Name] = d
	}
	return out
}

func TestExtract(t *testing.T) {
	s := open(t, "sample.c", sample, false)

	decls, err := Extract(context.Background(), s.Root(), Options{WithComments: true})
	require.NoError(t, err)
	got := byName(decls)

	point, ok := got["Point"]
	require.True(t, ok, "missing Point in %v", decls)
	assert.Equal(t, "StructDecl", point.Kind)
	assert.True(t, point.IsDefinition, "definition should replace the forward declaration")
	assert.Equal(t, int64(12), point.Size)
	assert.Equal(t, int64(4), point.Align)
	assert.Empty(t, point.LayoutError)
	assert.Equal(t, uint32(3), point.Line)

	count := 0
	for _, d := range decls {
		if d.Name == "Point" {
			count++
		}
	}
	assert.Equal(t, 1, count, "Point should be reported once")

	flags := got["flags"]
	require.NotNil(t, flags.BitWidth)
	assert.Equal(t, uint32(3), *flags.BitWidth)
	assert.Equal(t, "Point", flags.Parent)
	assert.Nil(t, got["x"].BitWidth)

	green := got["Green"]
	require.NotNil(t, green.EnumValue)
	assert.Equal(t, int64(5), *green.EnumValue)
	assert.Equal(t, "Color", green.Parent)

	assert.Equal(t, "struct Point", got["point_t"].CanonicalType)

	area := got["area"]
	assert.Equal(t, "FunctionDecl", area.Kind)
	assert.Equal(t, "int", area.ReturnType)
	assert.True(t, area.Variadic)
	require.Len(t, area.Params, 2)
	assert.Equal(t, Param{Name: "p", Type: "const struct Point *"}, area.Params[0])

	ratio := got["ratio"]
	assert.Equal(t, "VarDecl", ratio.Kind)
	assert.Equal(t, "Internal", ratio.Linkage)
	assert.Equal(t, "sample.c:7:15", ratio.Location())
}

func TestExtractIncompleteLayout(t *testing.T) {
	s := open(t, "opaque.c", "struct Opaque;\n", false)

	decls, err := Extract(context.Background(), s.Root(), Options{})
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "Incomplete", decls[0].LayoutError)
	assert.Zero(t, decls[0].Size)
}

func TestExtractKindFilter(t *testing.T) {
	s := open(t, "kinds.c", sample, false)

	decls, err := Extract(context.Background(), s.Root(), Options{Kinds: []string{"FunctionDecl", "EnumConstantDecl"}})
	require.NoError(t, err)

	names := make([]string, 0, len(decls))
	for _, d := range decls {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Red", "Green", "area"}, names)
}

func TestExtractCXX(t *testing.T) {
	src := "namespace ns { class Widget { public: virtual void draw(int n); private: int id_; }; }\n"
	s := open(t, "widget.cpp", src, false, "-x", "c++")

	decls, err := Extract(context.Background(), s.Root(), Options{})
	require.NoError(t, err)
	got := byName(decls)

	assert.Equal(t, "ClassDecl", got["Widget"].Kind)
	assert.Equal(t, "ns", got["Widget"].Parent)
	assert.Equal(t, "CXXMethod", got["draw"].Kind)
	assert.Equal(t, "Public", got["draw"].Access)
	assert.Equal(t, "Private", got["id_"].Access)
	assert.NotEmpty(t, got["draw"].USR)
}

func TestExtractCancelled(t *testing.T) {
	var b []byte
	for i := 0; i < 2000; i++ {
		b = append(b, []byte("int v"+strconv.Itoa(i)+";\n")...)
	}
	s := open(t, "many.c", string(b), false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Extract(ctx, s.Root(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilter(t *testing.T) {
	f, err := NewFilter(Options{
		Include: []string{"**/include/**"},
		Exclude: []string{"**/include/internal/**"},
	})
	require.NoError(t, err)

	assert.True(t, f.AllowPath("/src/include/api.h"))
	assert.False(t, f.AllowPath("/src/include/internal/impl.h"))
	assert.False(t, f.AllowPath("/src/lib/other.h"))
	assert.True(t, f.AllowKind(clang.CursorStructDecl))

	_, err = NewFilter(Options{Kinds: []string{"NotAKind"}})
	assert.Error(t, err)
}

func TestMacroDefinitions(t *testing.T) {
	src := "#define ANSWER 42\n#define SQ(x) ((x) * (x))\nint unused;\n"
	s := open(t, "macros.c", src, true)

	macros, err := MacroDefinitions(context.Background(), s.TranslationUnit(), nil)
	require.NoError(t, err)

	got := map[string]Macro{}
	for _, m := range macros {
		got[m.Name] = m
	}
	answer, ok := got["ANSWER"]
	require.True(t, ok, "missing ANSWER in %v", macros)
	assert.Equal(t, []string{"42"}, answer.Tokens, "replacement list must stop at the end of the definition")
	assert.False(t, answer.FunctionLike)
	assert.Equal(t, uint32(1), answer.Line)

	sq := got["SQ"]
	assert.True(t, sq.FunctionLike)
	assert.Equal(t, []string{"x"}, sq.Params)
	assert.Equal(t, "( ( x ) * ( x ) )", sq.Body())
	assert.Equal(t, "SQ(x)", sq.Signature())

	for _, m := range macros {
		assert.NotEqual(t, "__STDC__", m.Name, "builtin macros should be skipped")
	}
}

func TestKindValidatorRegistered(t *testing.T) {
	_, err := config.Decode("[parse]\nfile = \"a.c\"\n[filter]\nkinds = [\"Bogus\"]\n")
	assert.Error(t, err)

	_, err = config.Decode("[parse]\nfile = \"a.c\"\n[filter]\nkinds = [\"StructDecl\"]\n")
	assert.NoError(t, err)
}

func TestReplacementList(t *testing.T) {
	toks := func(spellings ...string) []clang.Token {
		out := make([]clang.Token, len(spellings))
		for i, s := range spellings {
			out[i] = clang.Token{Kind: clang.TokenPunctuation, Spelling: s}
		}
		return out
	}
	tests := []struct {
		name         string
		functionLike bool
		tokens       []clang.Token
		params       []string
		body         []string
	}{
		{"OBJ", false, toks("OBJ", "(", "1", ")"), nil, []string{"(", "1", ")"}},
		{"F", true, toks("F", "(", "a", ",", "b", ")", "a", "+", "b"), []string{"a", "b"}, []string{"a", "+", "b"}},
		{"V", true, toks("V", "(", "...", ")", "__VA_ARGS__"), []string{"..."}, []string{"__VA_ARGS__"}},
		{"E", true, toks("E", "(", ")"), []string{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, body := replacementList(tt.name, tt.functionLike, tt.tokens)
			assert.Equal(t, tt.params, params)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestTrimPastLine(t *testing.T) {
	tokens := []clang.Token{
		{Kind: clang.TokenIdentifier, Spelling: "ANSWER", Line: 3},
		{Kind: clang.TokenLiteral, Spelling: "42", Line: 3},
		{Kind: clang.TokenPunctuation, Spelling: "#", Line: 4},
	}

	got := trimPastLine(tokens, 3)
	require.Len(t, got, 2)
	assert.Equal(t, "42", got[1].Spelling)

	assert.Len(t, trimPastLine(tokens, 4), 3, "tokens within the extent are kept")
	assert.Len(t, trimPastLine(tokens, 0), 3, "an unknown end line keeps everything")
	assert.Empty(t, trimPastLine(nil, 3))
}
