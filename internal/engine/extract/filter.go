package extract

import (
	"clangq/internal/core/config"
	"clangq/internal/engine/clang"
	"clangq/internal/shared/util"
	"fmt"

	"github.com/gobwas/glob"
)

func init() {
	config.RegisterKindValidator(func(label string) bool {
		_, ok := clang.ParseCursorKind(label)
		return ok
	})
}

// Options selects which declarations Extract reports.
type Options struct {
	Include      []string
	Exclude      []string
	Kinds        []string
	SkipSystem   bool
	MainFileOnly bool
	WithComments bool
}

// OptionsFromConfig copies the filter section of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	f := cfg.Filter
	return Options{
		Include:      f.Include,
		Exclude:      f.Exclude,
		Kinds:        f.Kinds,
		SkipSystem:   f.SkipSystem,
		MainFileOnly: f.MainFileOnly,
		WithComments: f.IncludeComment,
	}
}

// Filter decides whether a cursor's declaration is reported.
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
	kinds   map[clang.CursorKind]bool
	opts    Options
}

func NewFilter(opts Options) (*Filter, error) {
	f := &Filter{opts: opts}
	var err error
	if f.include, err = compileGlobs(opts.Include); err != nil {
		return nil, err
	}
	if f.exclude, err = compileGlobs(opts.Exclude); err != nil {
		return nil, err
	}
	if len(opts.Kinds) > 0 {
		f.kinds = make(map[clang.CursorKind]bool, len(opts.Kinds))
		for _, label := range opts.Kinds {
			kind, ok := clang.ParseCursorKind(label)
			if !ok {
				return nil, fmt.Errorf("unknown cursor kind %q", label)
			}
			f.kinds[kind] = true
		}
	}
	return f, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(util.NormalizePatternPath(p), '/')
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// AllowLocation reports whether declarations at loc are in scope. Builtin
// locations are only allowed when no include patterns are set.
func (f *Filter) AllowLocation(loc clang.SourceLocation) bool {
	if f.opts.SkipSystem && loc.IsInSystemHeader() {
		return false
	}
	if f.opts.MainFileOnly && !loc.IsFromMainFile() {
		return false
	}
	return f.AllowPath(loc.Position().File)
}

// AllowPath applies the include and exclude globs to a file name.
func (f *Filter) AllowPath(path string) bool {
	path = util.NormalizePatternPath(path)
	for _, g := range f.exclude {
		if g.Match(path) {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, g := range f.include {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// AllowKind reports whether kind is selected. An empty kind set selects
// everything.
func (f *Filter) AllowKind(kind clang.CursorKind) bool {
	return f.kinds == nil || f.kinds[kind]
}
