package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"clangq/internal/core/config"
	"clangq/internal/core/watcher"
	"clangq/internal/data/catalog"
	"clangq/internal/engine/extract"
	"clangq/internal/engine/session"
	"clangq/internal/shared/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFiles(t *testing.T, tmpDir string) string {
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "include"), 0o755))

	header := `#pragma once
#define API_VERSION 3
/// A shape with an area.
struct shape {
	int kind;
	double w, h;
};
double shape_area(const struct shape *s);
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "include", "shape.h"), []byte(header), 0o644))

	mainC := `#include "shape.h"
double shape_area(const struct shape *s) { return s->w * s->h; }
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main.c"), []byte(mainC), 0o644))

	cfgDoc := `
[parse]
file = "main.c"
include_paths = ["include"]
std = "c11"
detailed_preprocessing = true

[filter]
include = ["**/include/**", "**/main.c"]
include_macros = true
include_comments = true

[catalog]
enabled = true
path = "out/catalog.db"

[watch]
debounce = "50ms"
reparse_per_second = 10
`
	cfgPath := filepath.Join(tmpDir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgDoc), 0o644))
	return cfgPath
}

func TestFullPipelineIntegration(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := createTestFiles(t, tmpDir)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	ctx := context.Background()
	sess, err := session.Open(ctx, cfg)
	require.NoError(t, err)
	defer sess.Close()

	diags := sess.Diagnostics()
	assert.False(t, session.HasErrors(diags), "unexpected diagnostics: %+v", diags)

	opts := extract.OptionsFromConfig(cfg)
	decls, err := extract.Extract(ctx, sess.Root(), opts)
	require.NoError(t, err)

	byName := map[string]extract.Declaration{}
	for _, d := range decls {
		byName[d.Name] = d
	}
	shape := byName["shape"]
	assert.Equal(t, "StructDecl", shape.Kind)
	assert.Equal(t, int64(24), shape.Size)
	assert.Contains(t, shape.Comment, "A shape with an area.")
	assert.True(t, byName["shape_area"].IsDefinition, "definition in main.c should win")

	filter, err := extract.NewFilter(opts)
	require.NoError(t, err)
	macros, err := extract.MacroDefinitions(ctx, sess.TranslationUnit(), filter)
	require.NoError(t, err)
	require.Len(t, macros, 1)
	assert.Equal(t, "API_VERSION", macros[0].Name)

	store, err := catalog.Open(cfg.CatalogPath(), cfg.Catalog.BusyTimeout)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.ReplaceSession(ctx, catalog.Snapshot{
		Source:       sess.Path(),
		SessionID:    sess.ID,
		ParsedAt:     sess.ParsedAt(),
		Args:         sess.Args(),
		Declarations: decls,
		Macros:       macros,
		Diagnostics:  diags,
	}))

	records, err := store.Lookup(ctx, "w")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "shape", records[0].Parent)

	n, err := store.Count(ctx, sess.Path())
	require.NoError(t, err)
	assert.Equal(t, len(decls), n)
}

func TestWatchTriggeredReparse(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := createTestFiles(t, tmpDir)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	ctx := context.Background()
	sess, err := session.Open(ctx, cfg)
	require.NoError(t, err)
	defer sess.Close()

	changes := make(chan []string, 4)
	w, err := watcher.NewWatcher(cfg.Watch.Debounce, cfg.Watch.ExcludeDirs,
		util.NewLimiter(cfg.Watch.ReparsePerSecond, cfg.Watch.Burst),
		func(paths []string) { changes <- paths })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch([]string{filepath.Join(tmpDir, "include")}))

	header := filepath.Join(tmpDir, "include", "shape.h")
	updated := "#pragma once\nstruct shape { int kind; };\nint shape_count(void);\n"
	require.NoError(t, os.WriteFile(header, []byte(updated), 0o644))

	select {
	case paths := <-changes:
		assert.Contains(t, paths, header)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for header change")
	}

	require.NoError(t, sess.Reparse(ctx))
	decls, err := extract.Extract(ctx, sess.Root(), extract.OptionsFromConfig(cfg))
	require.NoError(t, err)

	names := map[string]bool{}
	for _, d := range decls {
		names[d.Name] = true
	}
	assert.True(t, names["shape_count"], "reparse should pick up the new declaration")
	assert.True(t, session.HasErrors(sess.Diagnostics()), "main.c now uses removed fields")
}
