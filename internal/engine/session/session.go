// Package session owns one libclang index and translation unit built from a
// clangq config. A Session is not safe for concurrent use; callers keep it on
// one goroutine.
package session

import (
	"clangq/internal/core/config"
	"clangq/internal/core/errors"
	"clangq/internal/engine/clang"
	"clangq/internal/shared/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Diagnostic is a snapshot of a clang diagnostic that outlives the
// translation unit it came from.
type Diagnostic struct {
	Severity  clang.DiagnosticSeverity `json:"severity"`
	Message   string                   `json:"message"`
	Formatted string                   `json:"formatted"`
	File      string                   `json:"file"`
	Line      uint32                   `json:"line"`
	Column    uint32                   `json:"column"`
}

type Session struct {
	ID string

	cfg     *config.Config
	path    string
	args    []string
	index   *clang.Index
	tu      *clang.TranslationUnit
	unsaved []*clang.UnsavedFile
	parsed  time.Time
}

// Open creates the index and parses the configured source file.
func Open(ctx context.Context, cfg *config.Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.New(errors.CodeValidationError, "config is required")
	}
	s := &Session{
		ID:   uuid.NewString(),
		cfg:  cfg,
		path: cfg.SourcePath(),
		args: cfg.CompilerArgs(),
	}

	ctx, span := observability.Tracer.Start(ctx, "session.Open", trace.WithAttributes(
		attribute.String("path", s.path),
		attribute.String("session", s.ID),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unsaved, err := loadUnsaved(cfg)
	if err != nil {
		span.RecordError(err)
		return nil, errors.AddContext(err, errors.CtxSession, s.ID)
	}

	s.index = clang.NewIndex(cfg.Index.ExcludePCH, cfg.Index.DisplayDiagnostics)
	if s.index.IsNull() {
		disposeAll(unsaved)
		return nil, errors.New(errors.CodeInternal, "libclang returned a null index")
	}

	start := time.Now()
	s.tu = clang.Parse(s.index, s.path, s.args, unsaved, Flags(cfg))
	observability.ParseDuration.WithLabelValues("parse").Observe(time.Since(start).Seconds())

	if s.tu.IsNull() {
		disposeAll(unsaved)
		s.index.Dispose()
		observability.ParseFailuresTotal.WithLabelValues("parse").Inc()
		err := errors.New(errors.CodeParseFailed, "libclang could not parse the translation unit")
		err = errors.AddContext(err, errors.CtxPath, s.path)
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, err
	}
	s.unsaved = unsaved
	s.parsed = time.Now()
	observability.ActiveSessions.Inc()

	diags := s.Diagnostics()
	countDiagnostics(diags)
	slog.Debug("translation unit parsed",
		"session", s.ID,
		"path", s.path,
		"diagnostics", len(diags),
		"duration", time.Since(start),
	)
	return s, nil
}

// Flags maps the parse section onto translation unit flags.
func Flags(cfg *config.Config) clang.TranslationUnitFlags {
	flags := clang.TUNone
	if cfg.Parse.DetailedPreprocessing {
		flags |= clang.TUDetailedPreprocessingRecord
	}
	if cfg.Parse.SkipFunctionBodies {
		flags |= clang.TUSkipFunctionBodies
	}
	if cfg.Parse.KeepGoing {
		flags |= clang.TUKeepGoing
	}
	if cfg.Parse.Incomplete {
		flags |= clang.TUIncomplete
	}
	return flags
}

// Reparse re-reads path-backed unsaved overrides and reparses the unit in
// place. After a failed reparse the session is closed.
func (s *Session) Reparse(ctx context.Context) error {
	ctx, span := observability.Tracer.Start(ctx, "session.Reparse", trace.WithAttributes(
		attribute.String("path", s.path),
		attribute.String("session", s.ID),
	))
	defer span.End()

	if err := s.ensureOpen(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	unsaved, err := loadUnsaved(s.cfg)
	if err != nil {
		span.RecordError(err)
		return errors.AddContext(err, errors.CtxSession, s.ID)
	}

	start := time.Now()
	ok := s.tu.Reparse(unsaved, s.tu.DefaultReparseFlags())
	observability.ParseDuration.WithLabelValues("reparse").Observe(time.Since(start).Seconds())

	// The previous buffers were in use until the reparse returned.
	disposeAll(s.unsaved)
	s.unsaved = unsaved

	if !ok {
		observability.ParseFailuresTotal.WithLabelValues("reparse").Inc()
		s.Close()
		err := errors.New(errors.CodeReparseFailed, "libclang could not reparse the translation unit")
		err = errors.AddContext(err, errors.CtxPath, s.path)
		span.RecordError(err)
		span.SetStatus(codes.Error, "reparse failed")
		return errors.AddContext(err, errors.CtxSession, s.ID)
	}
	s.parsed = time.Now()

	countDiagnostics(s.Diagnostics())
	slog.Debug("translation unit reparsed", "session", s.ID, "path", s.path, "duration", time.Since(start))
	return nil
}

// Path is the absolute path of the main source file.
func (s *Session) Path() string {
	return s.path
}

// Args is the compiler command line the unit was parsed with.
func (s *Session) Args() []string {
	return append([]string(nil), s.args...)
}

// ParsedAt is when the last successful parse or reparse finished.
func (s *Session) ParsedAt() time.Time {
	return s.parsed
}

func (s *Session) IsClosed() bool {
	return s.tu == nil
}

// TranslationUnit exposes the underlying unit. It is nil after Close.
func (s *Session) TranslationUnit() *clang.TranslationUnit {
	return s.tu
}

// Root returns the translation unit cursor, or the null cursor once closed.
func (s *Session) Root() clang.Cursor {
	if s.tu == nil {
		return clang.NullCursor()
	}
	return s.tu.Cursor()
}

// Diagnostics snapshots the unit's diagnostics and releases the native ones.
func (s *Session) Diagnostics() []Diagnostic {
	if s.tu == nil {
		return nil
	}
	native := s.tu.Diagnostics()
	out := make([]Diagnostic, 0, len(native))
	opts := clang.DefaultDisplayOptions()
	for _, d := range native {
		pos := d.Location().Position()
		out = append(out, Diagnostic{
			Severity:  d.Severity(),
			Message:   d.Spelling(),
			Formatted: d.Format(opts),
			File:      pos.File,
			Line:      pos.Line,
			Column:    pos.Column,
		})
		d.Dispose()
	}
	return out
}

// HasErrors reports whether any diagnostic is an error or fatal.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity >= clang.SeverityError {
			return true
		}
	}
	return false
}

// Tokens lexes the source extent of c.
func (s *Session) Tokens(c clang.Cursor) ([]clang.Token, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	tokens, ok := s.tu.Tokens(c)
	if !ok {
		return nil, errors.AddContext(errors.New(errors.CodeNotFound, "cursor has no tokens"), errors.CtxSymbol, c.Spelling())
	}
	return tokens, nil
}

// Close releases the unit, its unsaved buffers and the index, in that
// order. It is safe to call more than once.
func (s *Session) Close() error {
	if s.tu == nil {
		return nil
	}
	s.tu.Dispose()
	s.tu = nil
	disposeAll(s.unsaved)
	s.unsaved = nil
	s.index.Dispose()
	observability.ActiveSessions.Dec()
	slog.Debug("session closed", "session", s.ID)
	return nil
}

func (s *Session) ensureOpen() error {
	if s.tu == nil {
		return errors.AddContext(errors.New(errors.CodeClosed, "session is closed"), errors.CtxSession, s.ID)
	}
	return nil
}

func loadUnsaved(cfg *config.Config) ([]*clang.UnsavedFile, error) {
	files := make([]*clang.UnsavedFile, 0, len(cfg.Unsaved))
	for _, u := range cfg.Unsaved {
		content := u.Content
		if u.Path != "" {
			path := config.ResolveRelative(cfg.BaseDir(), u.Path)
			data, err := os.ReadFile(path)
			if err != nil {
				disposeAll(files)
				err = errors.Wrap(err, errors.CodeNotFound, "read unsaved override")
				return nil, errors.AddContext(err, errors.CtxPath, path)
			}
			content = string(data)
		}
		files = append(files, clang.NewUnsavedFile(config.ResolveRelative(cfg.BaseDir(), u.Name), content))
	}
	return files, nil
}

func disposeAll(files []*clang.UnsavedFile) {
	for _, f := range files {
		f.Dispose()
	}
}

func countDiagnostics(diags []Diagnostic) {
	for _, d := range diags {
		observability.DiagnosticsTotal.WithLabelValues(d.Severity.String()).Inc()
	}
}
