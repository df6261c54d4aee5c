package cli

import (
	"bytes"
	"clangq/internal/core/config"
	"clangq/internal/data/catalog"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseOptions_SplitsCompilerArgs(t *testing.T) {
	opts, err := parseOptions([]string{"-once", "-decls", "api.h", "--", "-x", "c++", "-DFOO"})
	if err != nil {
		t.Fatalf("parse options: %v", err)
	}
	if !opts.once || !opts.decls {
		t.Fatalf("flags not parsed: %+v", opts)
	}
	if len(opts.args) != 1 || opts.args[0] != "api.h" {
		t.Fatalf("unexpected positional args %v", opts.args)
	}
	if strings.Join(opts.clangArgs, " ") != "-x c++ -DFOO" {
		t.Fatalf("unexpected compiler args %v", opts.clangArgs)
	}

	opts, err = parseOptions([]string{"-dump", "--", "-std=c11"})
	if err != nil {
		t.Fatalf("parse options: %v", err)
	}
	if len(opts.args) != 0 || len(opts.clangArgs) != 1 || opts.clangArgs[0] != "-std=c11" {
		t.Fatalf("unexpected split args=%v clang=%v", opts.args, opts.clangArgs)
	}
}

func TestValidateModes(t *testing.T) {
	if err := validateModes(cliOptions{dump: true, tokens: "x"}); err == nil || !strings.Contains(err.Error(), "cannot be combined") {
		t.Fatalf("expected combination error, got %v", err)
	}
	if err := validateModes(cliOptions{args: []string{"a.c", "b.c"}}); err == nil {
		t.Fatal("expected error for two source files")
	}
	if err := validateModes(cliOptions{decls: true, diags: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateModes(cliOptions{ui: true, once: true}); err == nil || !strings.Contains(err.Error(), "--ui") {
		t.Fatalf("expected ui/once conflict, got %v", err)
	}
	if err := validateModes(cliOptions{ui: true, jsonOut: true}); err == nil {
		t.Fatal("expected ui/json conflict")
	}
	if err := validateModes(cliOptions{ui: true, macros: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !(cliOptions{tokens: "x"}).isSingleShot() || (cliOptions{decls: true}).isSingleShot() {
		t.Fatal("unexpected single shot classification")
	}
}

func TestApplyOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := cliOptions{args: []string{"src/a.c"}, clangArgs: []string{"-DX"}, macros: true, metrics: ":9464"}

	if err := applyOptions(opts, cfg, "/work"); err != nil {
		t.Fatalf("apply options: %v", err)
	}
	if cfg.Parse.File != "/work/src/a.c" {
		t.Fatalf("unexpected file %q", cfg.Parse.File)
	}
	if len(cfg.Parse.Args) != 1 || cfg.Parse.Args[0] != "-DX" {
		t.Fatalf("unexpected args %v", cfg.Parse.Args)
	}
	if !cfg.Parse.DetailedPreprocessing || !cfg.Filter.IncludeMacros {
		t.Fatal("macros flag should enable the preprocessing record")
	}
	if cfg.Observability.MetricsAddress != ":9464" {
		t.Fatalf("unexpected metrics address %q", cfg.Observability.MetricsAddress)
	}

	if err := applyOptions(cliOptions{}, config.DefaultConfig(), "/work"); err == nil {
		t.Fatal("expected validation error without a source file")
	}
}

func TestLoadConfig_FallsBackToDefaults(t *testing.T) {
	cwd := t.TempDir()
	cfg, path, err := loadConfig(cliOptions{configPath: defaultConfigPath, args: []string{"a.c"}}, cwd)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if path != "" || cfg.BaseDir() != cwd {
		t.Fatalf("expected defaults rooted at cwd, got path=%q base=%q", path, cfg.BaseDir())
	}

	if _, _, err := loadConfig(cliOptions{configPath: defaultConfigPath}, cwd); err == nil {
		t.Fatal("expected error when neither config nor source file is given")
	}
}

func TestHealthEndpoint(t *testing.T) {
	rt := newRuntime(config.DefaultConfig(), cliOptions{}, &bytes.Buffer{})
	srv := NewObservabilityServer("", rt.health)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a session, got %d", rec.Code)
	}

	rt.status.Store(&sessionStatus{ID: "s1", File: "a.c", ParsedAt: time.Now()})
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if body["status"] != "up" || body["session"] != "s1" {
		t.Fatalf("unexpected health body %v", body)
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "clangq_") {
		t.Fatalf("expected clangq metrics, got %d", rec.Code)
	}
}

func TestObservabilityServer_StartReportsBusyPort(t *testing.T) {
	srv := NewObservabilityServer("127.0.0.1:0", nil)
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer srv.Stop(context.Background())

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 without a health func, got %d", resp.StatusCode)
	}

	busy := NewObservabilityServer(srv.Addr(), nil)
	if err := busy.Start(context.Background()); err == nil {
		busy.Stop(context.Background())
		t.Fatal("expected second server on the same address to fail")
	}
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRuntime_ReportWritesCatalog(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "api.h", "#define LIMIT 8\nstruct Item { int id; };\nint count(struct Item *items, int n);\n")

	cfg := config.DefaultConfig()
	cfg.SetBaseDir(dir)
	cfg.Parse.File = "api.h"
	cfg.Parse.Language = "c"
	cfg.Catalog.Enabled = true
	cfg.Catalog.Path = "out/catalog.db"

	var out bytes.Buffer
	rt := newRuntime(cfg, cliOptions{decls: true, macros: true}, &out)
	if err := applyOptions(rt.opts, cfg, dir); err != nil {
		t.Fatalf("apply options: %v", err)
	}
	if err := rt.open(context.Background()); err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	defer rt.close()

	if code := rt.report(context.Background()); code != 0 {
		t.Fatalf("expected exit code 0, got %d:\n%s", code, out.String())
	}
	for _, want := range []string{"Item::id", "count", "#define LIMIT 8", "ok "} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}

	store, err := catalog.Open(cfg.CatalogPath(), time.Second)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer store.Close()
	records, err := store.Lookup(context.Background(), "count")
	if err != nil || len(records) != 1 {
		t.Fatalf("expected one catalog record for count, got %d (err %v)", len(records), err)
	}
	body, found, err := store.Macro(context.Background(), "LIMIT")
	if err != nil || !found || body != "8" {
		t.Fatalf("unexpected macro %q found=%v err=%v", body, found, err)
	}
}

func TestRuntime_ErrorsAndTokens(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.c", "int ok = 1;\nint broken = ;\n")

	cfg := config.DefaultConfig()
	cfg.SetBaseDir(dir)
	cfg.Parse.File = "bad.c"

	var out bytes.Buffer
	rt := newRuntime(cfg, cliOptions{diags: true}, &out)
	if err := rt.open(context.Background()); err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	defer rt.close()

	if code := rt.report(context.Background()); code != 1 {
		t.Fatalf("expected exit code 1 for errors, got %d", code)
	}
	if !strings.Contains(out.String(), "bad.c:2:") {
		t.Fatalf("expected diagnostic location in output:\n%s", out.String())
	}

	out.Reset()
	rt.opts = cliOptions{tokens: "ok"}
	if code := rt.report(context.Background()); code != 0 {
		t.Fatalf("expected tokens to succeed, got %d", code)
	}
	if !strings.Contains(out.String(), "ok") || !strings.Contains(out.String(), "1") {
		t.Fatalf("unexpected token output:\n%s", out.String())
	}

	out.Reset()
	rt.opts = cliOptions{dump: true}
	if code := rt.report(context.Background()); code != 0 {
		t.Fatalf("expected dump to succeed, got %d", code)
	}
	if !strings.HasPrefix(out.String(), "(TranslationUnit") {
		t.Fatalf("unexpected dump output:\n%s", out.String())
	}
}

func TestRuntime_ReparseAfterEdit(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "grow.c", "int a;\n")

	cfg := config.DefaultConfig()
	cfg.SetBaseDir(dir)
	cfg.Parse.File = "grow.c"

	var out bytes.Buffer
	rt := newRuntime(cfg, cliOptions{decls: true, jsonOut: true}, &out)
	if err := rt.open(context.Background()); err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	defer rt.close()

	if err := os.WriteFile(src, []byte("int a;\nint b;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := rt.reparse(context.Background()); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	rt.report(context.Background())

	var payload struct {
		Declarations []struct {
			Name string `json:"name"`
		} `json:"declarations"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out.String())
	}
	if len(payload.Declarations) != 2 {
		t.Fatalf("expected 2 declarations after reparse, got %d", len(payload.Declarations))
	}
	if st := rt.status.Load(); st == nil || st.File != rt.sess.Path() {
		t.Fatalf("status not refreshed: %+v", st)
	}
}

func TestRunLookup(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.SetBaseDir(dir)
	cfg.Parse.File = "x.c"

	var out bytes.Buffer
	if code := runLookup(context.Background(), cfg, cliOptions{lookup: "missing"}, &out); code != 1 {
		t.Fatalf("expected exit code 1 for a missing symbol, got %d", code)
	}
	if !strings.Contains(out.String(), "no declarations") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRuntime_FailedReloadStillRefreshesCatalog(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "first.c", "int first;\n")

	cfg := config.DefaultConfig()
	cfg.SetBaseDir(dir)
	cfg.Parse.File = "first.c"
	cfg.Catalog.Enabled = true
	cfg.Catalog.Path = "catalog.db"

	var out bytes.Buffer
	rt := newRuntime(cfg, cliOptions{}, &out)
	if err := rt.open(context.Background()); err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	defer rt.close()

	next := config.DefaultConfig()
	next.SetBaseDir(dir)
	next.Parse.File = "later.c"
	next.Catalog.Enabled = true
	next.Catalog.Path = "catalog.db"
	if err := rt.reload(context.Background(), next); err == nil {
		t.Fatal("expected reload to fail while later.c is missing")
	}
	if rt.sess != nil || rt.store != nil {
		t.Fatal("expected no session and no catalog after a failed reload")
	}

	writeSource(t, dir, "later.c", "int later(void);\n")
	if err := rt.reparse(context.Background()); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if rt.store == nil {
		t.Fatal("expected catalog to be reopened by reparse")
	}
	rt.report(context.Background())

	count, err := rt.store.Count(context.Background(), rt.sess.Path())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count == 0 {
		t.Fatal("expected catalog rows for later.c")
	}
}

func TestRuntime_ReportSendsSnapshotInUIMode(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "api.h", "#define LIMIT 8\nstruct Item { int id; };\n")

	cfg := config.DefaultConfig()
	cfg.SetBaseDir(dir)
	cfg.Parse.File = "api.h"
	cfg.Parse.Language = "c"

	var out bytes.Buffer
	rt := newRuntime(cfg, cliOptions{ui: true, macros: true}, &out)
	if err := applyOptions(rt.opts, cfg, dir); err != nil {
		t.Fatalf("apply options: %v", err)
	}
	if err := rt.open(context.Background()); err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	defer rt.close()

	var snapshots []uiSnapshot
	rt.onSnapshot = func(s uiSnapshot) { snapshots = append(snapshots, s) }

	if code := rt.report(context.Background()); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no printed report in UI mode, got:\n%s", out.String())
	}
	if len(snapshots) != 1 {
		t.Fatalf("expected one snapshot, got %d", len(snapshots))
	}
	s := snapshots[0]
	if s.File != rt.sess.Path() || len(s.Declarations) == 0 {
		t.Fatalf("unexpected snapshot %+v", s)
	}
	found := false
	for _, m := range s.Macros {
		found = found || m.Name == "LIMIT"
	}
	if !found {
		t.Fatalf("expected LIMIT in snapshot macros %+v", s.Macros)
	}

	var failures []error
	rt.onFailure = func(err error) { failures = append(failures, err) }
	rt.fail(context.Canceled)
	if len(failures) != 1 {
		t.Fatal("expected failure hook to run")
	}
}
