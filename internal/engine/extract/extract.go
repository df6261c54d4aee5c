// Package extract walks a translation unit and turns the declarations it
// finds into plain records that no longer reference libclang memory.
package extract

import (
	"clangq/internal/engine/clang"
	"clangq/internal/shared/observability"
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Param is one function parameter.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Declaration is a detached description of one declaration cursor.
type Declaration struct {
	Name          string  `json:"name"`
	USR           string  `json:"usr,omitempty"`
	Kind          string  `json:"kind"`
	Parent        string  `json:"parent,omitempty"`
	Type          string  `json:"type"`
	CanonicalType string  `json:"canonical_type"`
	Size          int64   `json:"size,omitempty"`
	Align         int64   `json:"align,omitempty"`
	LayoutError   string  `json:"layout_error,omitempty"`
	BitWidth      *uint32 `json:"bit_width,omitempty"`
	EnumValue     *int64  `json:"enum_value,omitempty"`
	Params        []Param `json:"params,omitempty"`
	ReturnType    string  `json:"return_type,omitempty"`
	Variadic      bool    `json:"variadic,omitempty"`
	File          string  `json:"file"`
	Line          uint32  `json:"line"`
	Column        uint32  `json:"column"`
	Comment       string  `json:"comment,omitempty"`
	Linkage       string  `json:"linkage"`
	Visibility    string  `json:"visibility"`
	Access        string  `json:"access,omitempty"`
	IsDefinition  bool    `json:"is_definition"`
}

// Location renders file:line:col.
func (d Declaration) Location() string {
	return clang.Position{File: d.File, Line: d.Line, Column: d.Column}.String()
}

var recordKinds = map[clang.CursorKind]bool{
	clang.CursorStructDecl:       true,
	clang.CursorUnionDecl:        true,
	clang.CursorClassDecl:        true,
	clang.CursorEnumDecl:         true,
	clang.CursorFieldDecl:        true,
	clang.CursorFunctionDecl:     true,
	clang.CursorVarDecl:          true,
	clang.CursorTypedefDecl:      true,
	clang.CursorTypeAliasDecl:    true,
	clang.CursorEnumConstantDecl: true,
	clang.CursorCXXMethod:        true,
	clang.CursorConstructor:      true,
	clang.CursorDestructor:       true,
}

// containers hold declarations worth descending into.
var containers = map[clang.CursorKind]bool{
	clang.CursorStructDecl:  true,
	clang.CursorUnionDecl:   true,
	clang.CursorClassDecl:   true,
	clang.CursorEnumDecl:    true,
	clang.CursorNamespace:   true,
	clang.CursorLinkageSpec: true,
}

// Extract visits the subtree of root and returns one record per
// declaration, in source order. A declaration seen more than once (forward
// declarations, redeclarations) is reported once, preferring its
// definition.
func Extract(ctx context.Context, root clang.Cursor, opts Options) ([]Declaration, error) {
	filter, err := NewFilter(opts)
	if err != nil {
		return nil, err
	}
	return ExtractWith(ctx, root, filter, opts.WithComments)
}

// ExtractWith is Extract with a prebuilt filter.
func ExtractWith(ctx context.Context, root clang.Cursor, filter *Filter, withComments bool) ([]Declaration, error) {
	_, span := observability.Tracer.Start(ctx, "extract.Extract", trace.WithAttributes(
		attribute.String("root", root.Spelling()),
	))
	defer span.End()

	var (
		decls   []Declaration
		seen    = make(map[clang.CursorKey]int)
		visited int
		ctxErr  error
	)
	root.Visit(func(c, _ clang.Cursor) clang.ChildVisitResult {
		visited++
		if visited%1024 == 0 {
			if ctxErr = ctx.Err(); ctxErr != nil {
				return clang.ChildVisitBreak
			}
		}
		kind := c.Kind()
		if !filter.AllowLocation(c.Location()) {
			return clang.ChildVisitContinue
		}
		if recordKinds[kind] && filter.AllowKind(kind) && c.Spelling() != "" {
			d := describe(c, withComments)
			key := c.Canonical().Key()
			if i, ok := seen[key]; ok {
				if d.IsDefinition && !decls[i].IsDefinition {
					decls[i] = d
				}
			} else {
				seen[key] = len(decls)
				decls = append(decls, d)
			}
		}
		if containers[kind] {
			return clang.ChildVisitRecurse
		}
		return clang.ChildVisitContinue
	})
	observability.CursorsVisitedTotal.Add(float64(visited))
	observability.DeclarationsExtracted.Set(float64(len(decls)))
	span.SetAttributes(attribute.Int("declarations", len(decls)))

	if ctxErr != nil {
		span.RecordError(ctxErr)
		return nil, ctxErr
	}
	return decls, nil
}

func describe(c clang.Cursor, withComments bool) Declaration {
	ty := c.Type()
	pos := c.Location().Position()
	d := Declaration{
		Name:          c.Spelling(),
		USR:           c.USR(),
		Kind:          c.Kind().String(),
		Type:          ty.Spelling(),
		CanonicalType: ty.Canonical().Spelling(),
		File:          pos.File,
		Line:          pos.Line,
		Column:        pos.Column,
		Linkage:       c.Linkage().String(),
		Visibility:    c.Visibility().String(),
		IsDefinition:  c.IsDefinition(),
	}

	if parent := c.SemanticParent(); parent.IsValid() && parent.Kind() != clang.CursorTranslationUnit {
		d.Parent = parent.Spelling()
	}
	if withComments {
		d.Comment = c.RawComment()
	}

	switch c.Kind() {
	case clang.CursorStructDecl, clang.CursorUnionDecl, clang.CursorClassDecl,
		clang.CursorEnumDecl, clang.CursorTypedefDecl, clang.CursorTypeAliasDecl,
		clang.CursorFieldDecl, clang.CursorVarDecl:
		d.Size, d.Align, d.LayoutError = layout(ty)
	}

	switch c.Kind() {
	case clang.CursorFieldDecl:
		if w, ok := c.BitWidth(); ok {
			d.BitWidth = &w
		}
		d.Access = accessLabel(c)
	case clang.CursorEnumDecl:
		d.Type = c.EnumType().Spelling()
	case clang.CursorEnumConstantDecl:
		v := c.EnumValue()
		d.EnumValue = &v
	case clang.CursorTypedefDecl, clang.CursorTypeAliasDecl:
		d.CanonicalType = c.TypedefType().Canonical().Spelling()
	case clang.CursorFunctionDecl, clang.CursorCXXMethod, clang.CursorConstructor, clang.CursorDestructor:
		for _, arg := range c.Args() {
			d.Params = append(d.Params, Param{Name: arg.Spelling(), Type: arg.Type().Spelling()})
		}
		d.ReturnType = c.ResultType().Spelling()
		d.Variadic = ty.IsVariadic()
		if c.Kind() != clang.CursorFunctionDecl {
			d.Access = accessLabel(c)
		}
	}
	return d
}

func layout(ty clang.Type) (size, align int64, errLabel string) {
	size, err := ty.FallibleSize()
	if err != nil {
		var le *clang.LayoutError
		if errors.As(err, &le) {
			return 0, 0, le.Code.String()
		}
		return 0, 0, err.Error()
	}
	align, err = ty.FallibleAlign()
	if err != nil {
		var le *clang.LayoutError
		if errors.As(err, &le) {
			return size, 0, le.Code.String()
		}
		return size, 0, err.Error()
	}
	return size, align, ""
}

func accessLabel(c clang.Cursor) string {
	if a := c.AccessSpecifier(); a != clang.AccessInvalid {
		return a.String()
	}
	return ""
}
