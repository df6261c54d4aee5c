package cli

import (
	"clangq/internal/core/config"
	"clangq/internal/core/errors"
	"clangq/internal/core/watcher"
	"clangq/internal/data/catalog"
	"clangq/internal/engine/clang"
	"clangq/internal/engine/extract"
	"clangq/internal/engine/session"
	"clangq/internal/shared/observability"
	"clangq/internal/shared/util"
	"clangq/internal/ui/report"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"
)

func Run(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		return 2
	}

	if opts.version {
		fmt.Printf("clangq v%s\n", versionString)
		return 0
	}

	closeLogs := configureLogging(opts.ui, opts.verbose)
	defer closeLogs()

	if err := validateModes(opts); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 2
	}

	cwd, err := os.Getwd()
	if err != nil {
		slog.Error("failed to detect working directory", "error", err)
		return 1
	}

	cfg, cfgPath, err := loadConfig(opts, cwd)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	if err := applyOptions(opts, cfg, cwd); err != nil {
		slog.Error("invalid options", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Observability.OTLPEndpoint, cfg.Observability.ServiceName)
	if err != nil {
		slog.Error("failed to set up tracing", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Warn("tracing shutdown failed", "error", err)
		}
	}()

	if opts.lookup != "" {
		return runLookup(ctx, cfg, opts, os.Stdout)
	}

	rt := newRuntime(cfg, opts, os.Stdout)
	rt.cwd = cwd
	if err := rt.open(ctx); err != nil {
		slog.Error("failed to open session", "error", err)
		return 1
	}
	defer rt.close()

	if addr := cfg.Observability.MetricsAddress; addr != "" && !opts.isSingleShot() {
		srv := NewObservabilityServer(addr, rt.health)
		if err := srv.Start(ctx); err != nil {
			slog.Error("failed to start observability server", "error", err)
			return 1
		}
		defer srv.Stop(context.Background())
	}

	if opts.ui {
		return runUI(ctx, rt, cfgPath)
	}

	code := rt.report(ctx)
	if opts.isSingleShot() {
		return code
	}
	return rt.watch(ctx, cfgPath)
}

// runtime holds the state of one CLI run. All session access happens on the
// goroutine that calls its methods.
type runtime struct {
	cfg     *config.Config
	opts    cliOptions
	cwd     string
	out     io.Writer
	printer *report.Printer
	sess    *session.Session
	store   *catalog.Store

	// onSnapshot replaces printed reports when set; onFailure is told about
	// reparse and reload errors. Both are set by the terminal UI.
	onSnapshot func(uiSnapshot)
	onFailure  func(error)

	// status is read by the health endpoint from another goroutine.
	status atomic.Pointer[sessionStatus]
}

type sessionStatus struct {
	ID       string
	File     string
	ParsedAt time.Time
}

func newRuntime(cfg *config.Config, opts cliOptions, out io.Writer) *runtime {
	return &runtime{
		cfg:     cfg,
		opts:    opts,
		out:     out,
		printer: report.NewPrinter(out),
	}
}

func (rt *runtime) open(ctx context.Context) error {
	sess, err := session.Open(ctx, rt.cfg)
	if err != nil {
		return err
	}
	rt.setSession(sess)

	if rt.cfg.Catalog.Enabled && rt.store == nil {
		store, err := catalog.Open(rt.cfg.CatalogPath(), rt.cfg.Catalog.BusyTimeout)
		if err != nil {
			rt.sess.Close()
			rt.setSession(nil)
			return errors.AddContext(errors.Wrap(err, errors.CodeInternal, "open catalog"), errors.CtxPath, rt.cfg.CatalogPath())
		}
		rt.store = store
	}
	return nil
}

func (rt *runtime) setSession(sess *session.Session) {
	rt.sess = sess
	if sess == nil {
		rt.status.Store(nil)
		return
	}
	rt.status.Store(&sessionStatus{ID: sess.ID, File: sess.Path(), ParsedAt: sess.ParsedAt()})
}

func (rt *runtime) close() {
	if rt.sess != nil {
		rt.sess.Close()
		rt.setSession(nil)
	}
	if rt.store != nil {
		if err := rt.store.Close(); err != nil {
			slog.Warn("failed to close catalog", "error", err)
		}
		rt.store = nil
	}
}

func (rt *runtime) health() (string, map[string]any) {
	st := rt.status.Load()
	if st == nil {
		return "down", map[string]any{}
	}
	return "up", map[string]any{
		"file":      st.File,
		"session":   st.ID,
		"parsed_at": st.ParsedAt.Format(time.RFC3339),
	}
}

// report runs the selected output modes against the current session and
// returns the process exit code.
func (rt *runtime) report(ctx context.Context) int {
	switch {
	case rt.opts.dump:
		if err := clang.Dump(rt.out, rt.sess.Root()); err != nil {
			slog.Error("dump failed", "error", err)
			return 1
		}
		return 0
	case rt.opts.tokens != "":
		return rt.printTokens(rt.opts.tokens)
	}

	diags := rt.sess.Diagnostics()
	decls, err := extract.Extract(ctx, rt.sess.Root(), extract.OptionsFromConfig(rt.cfg))
	if err != nil {
		slog.Error("extraction failed", "error", err)
		return 1
	}

	var macros []extract.Macro
	if rt.cfg.Filter.IncludeMacros {
		filter, err := extract.NewFilter(extract.OptionsFromConfig(rt.cfg))
		if err != nil {
			slog.Error("invalid filter", "error", err)
			return 1
		}
		if macros, err = extract.MacroDefinitions(ctx, rt.sess.TranslationUnit(), filter); err != nil {
			slog.Error("macro extraction failed", "error", err)
			return 1
		}
	}

	if rt.store != nil {
		snap := catalog.Snapshot{
			Source:       rt.sess.Path(),
			SessionID:    rt.sess.ID,
			ParsedAt:     rt.sess.ParsedAt(),
			Args:         rt.sess.Args(),
			Declarations: decls,
			Macros:       macros,
			Diagnostics:  diags,
		}
		if err := rt.store.ReplaceSession(ctx, snap); err != nil {
			slog.Error("failed to update catalog", "error", err)
		}
	}

	if rt.onSnapshot != nil {
		rt.onSnapshot(uiSnapshot{
			File:         rt.sess.Path(),
			ParsedAt:     rt.sess.ParsedAt(),
			Declarations: decls,
			Macros:       macros,
			Diagnostics:  diags,
		})
	} else if rt.opts.jsonOut {
		payload := struct {
			File         string                `json:"file"`
			Declarations []extract.Declaration `json:"declarations"`
			Macros       []extract.Macro       `json:"macros,omitempty"`
			Diagnostics  []session.Diagnostic  `json:"diagnostics"`
		}{rt.sess.Path(), decls, macros, diags}
		if err := report.JSON(rt.out, payload); err != nil {
			slog.Error("failed to write json", "error", err)
			return 1
		}
	} else {
		if rt.opts.diags || !rt.opts.decls {
			rt.printer.Diagnostics(diags)
		}
		if rt.opts.decls {
			rt.printer.Declarations(decls)
		}
		if rt.opts.macros {
			rt.printer.Macros(macros)
		}
		rt.printer.Summary(rt.sess.Path(), len(decls), diags)
	}

	if session.HasErrors(diags) {
		return 1
	}
	return 0
}

func (rt *runtime) printTokens(name string) int {
	target := findDeclaration(rt.sess.Root(), name)
	if target.IsNull() {
		fmt.Fprintf(os.Stderr, "no declaration named %q\n", name)
		return 1
	}
	tokens, err := rt.sess.Tokens(target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	rt.printer.Tokens(tokens)
	return 0
}

// findDeclaration returns the first declaration cursor spelled name, or the
// null cursor.
func findDeclaration(root clang.Cursor, name string) clang.Cursor {
	found := clang.NullCursor()
	root.Visit(func(c, _ clang.Cursor) clang.ChildVisitResult {
		if c.Kind().IsDeclaration() && c.Spelling() == name {
			found = c
			return clang.ChildVisitBreak
		}
		return clang.ChildVisitRecurse
	})
	return found
}

// watch reparses on source changes and reopens the session when the config
// file changes. Events arrive on channels so the session stays on this
// goroutine.
func (rt *runtime) watch(ctx context.Context, cfgPath string) int {
	changes := make(chan []string, 1)
	reloads := make(chan *config.Config, 1)

	w, err := rt.startSourceWatcher(ctx, changes)
	if err != nil {
		slog.Error("failed to start watcher", "error", err)
		return 1
	}
	defer func() {
		if w != nil {
			w.Close()
		}
	}()

	if cfgPath != "" {
		cw := config.NewWatcher(cfgPath, func(cfg *config.Config) {
			select {
			case reloads <- cfg:
			case <-ctx.Done():
			}
		})
		if err := cw.Start(ctx); err != nil {
			slog.Warn("config watcher unavailable", "error", err)
		} else {
			defer cw.Stop()
		}
	}

	slog.Info("watching for changes", "file", rt.cfg.SourcePath())
	for {
		select {
		case <-ctx.Done():
			return 0
		case paths := <-changes:
			slog.Info("sources changed", "count", len(paths))
			if err := rt.reparse(ctx); err != nil {
				slog.Error("reparse failed", "error", err)
				rt.fail(err)
				continue
			}
			rt.report(ctx)
		case cfg := <-reloads:
			if err := applyOptions(rt.opts, cfg, rt.cwd); err != nil {
				slog.Error("reloaded config rejected", "error", err)
				continue
			}
			reloadErr := rt.reload(ctx, cfg)
			if reloadErr != nil {
				slog.Error("failed to reopen session", "error", reloadErr)
				rt.fail(reloadErr)
			}
			w.Close()
			if w, err = rt.startSourceWatcher(ctx, changes); err != nil {
				slog.Error("failed to restart watcher", "error", err)
				return 1
			}
			if reloadErr == nil {
				rt.report(ctx)
			}
		}
	}
}

func (rt *runtime) fail(err error) {
	if rt.onFailure != nil {
		rt.onFailure(err)
	}
}

// reload swaps in cfg, closing the current session and catalog. When the
// new session cannot be opened the runtime stays without one until the next
// source change reopens it.
func (rt *runtime) reload(ctx context.Context, cfg *config.Config) error {
	rt.close()
	rt.cfg = cfg
	return rt.open(ctx)
}

func (rt *runtime) startSourceWatcher(ctx context.Context, changes chan<- []string) (*watcher.Watcher, error) {
	limiter := util.NewLimiter(rt.cfg.Watch.ReparsePerSecond, rt.cfg.Watch.Burst)
	w, err := watcher.NewWatcher(rt.cfg.Watch.Debounce, rt.cfg.Watch.ExcludeDirs, limiter, func(paths []string) {
		select {
		case changes <- paths:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return nil, err
	}
	if err := w.Watch(watchTargets(rt.cfg)); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// watchTargets is the main file, path-backed overrides and any project
// relative include directories that exist. A file that does not exist yet
// is covered by watching its directory.
func watchTargets(cfg *config.Config) []string {
	targets := make([]string, 0, len(cfg.Parse.IncludePaths)+1)
	for _, p := range cfg.WatchedPaths() {
		if _, err := os.Stat(p); err == nil {
			targets = append(targets, p)
		} else if info, err := os.Stat(filepath.Dir(p)); err == nil && info.IsDir() {
			targets = append(targets, filepath.Dir(p))
		}
	}
	for _, inc := range cfg.Parse.IncludePaths {
		if filepath.IsAbs(inc) {
			continue
		}
		dir := config.ResolveRelative(cfg.BaseDir(), inc)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			targets = append(targets, dir)
		}
	}
	return targets
}

// reparse updates the session in place, reopening it when libclang gave up
// on the previous unit or no session is loaded.
func (rt *runtime) reparse(ctx context.Context) error {
	if rt.sess != nil && !rt.sess.IsClosed() {
		err := rt.sess.Reparse(ctx)
		if err == nil {
			rt.setSession(rt.sess)
			return nil
		}
		if !errors.IsCode(err, errors.CodeReparseFailed) {
			return err
		}
		slog.Warn("reparse failed, reopening session", "error", err)
	}
	// open also reopens the catalog if a failed reload left it closed.
	if err := rt.open(ctx); err != nil {
		rt.setSession(nil)
		return err
	}
	return nil
}

func runLookup(ctx context.Context, cfg *config.Config, opts cliOptions, out io.Writer) int {
	store, err := catalog.Open(cfg.CatalogPath(), cfg.Catalog.BusyTimeout)
	if err != nil {
		slog.Error("failed to open catalog", "error", err, "path", cfg.CatalogPath())
		return 1
	}
	defer store.Close()

	records, err := store.Lookup(ctx, opts.lookup)
	if err != nil {
		slog.Error("lookup failed", "error", err)
		return 1
	}
	if opts.jsonOut {
		if err := report.JSON(out, records); err != nil {
			return 1
		}
	} else {
		decls := make([]extract.Declaration, len(records))
		for i, r := range records {
			decls[i] = r.Declaration
		}
		report.NewPrinter(out).Declarations(decls)
	}
	if len(records) == 0 {
		return 1
	}
	return 0
}

// loadConfig reads the config file. When the default file is missing and a
// source file was given on the command line, defaults are used instead.
func loadConfig(opts cliOptions, cwd string) (*config.Config, string, error) {
	path := opts.configPath
	if path == defaultConfigPath {
		path = filepath.Join(cwd, config.DefaultFileName)
		if _, err := os.Stat(path); os.IsNotExist(err) && len(opts.args) == 1 {
			cfg := config.DefaultConfig()
			cfg.SetBaseDir(cwd)
			return cfg, "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// applyOptions folds command line overrides into cfg and revalidates it.
// A relative positional path resolves against cwd.
func applyOptions(opts cliOptions, cfg *config.Config, cwd string) error {
	if len(opts.args) == 1 {
		file := opts.args[0]
		if cwd != "" && !filepath.IsAbs(file) {
			file = filepath.Join(cwd, file)
		}
		cfg.Parse.File = file
	}
	if len(opts.clangArgs) > 0 {
		cfg.Parse.Args = append(cfg.Parse.Args, opts.clangArgs...)
	}
	if opts.macros {
		cfg.Parse.DetailedPreprocessing = true
		cfg.Filter.IncludeMacros = true
	}
	if opts.metrics != "" {
		cfg.Observability.MetricsAddress = opts.metrics
	}
	return config.Validate(cfg)
}

func configureLogging(uiMode, verbose bool) func() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	// Reports go to stdout; keep logs out of the way of -json output.
	output := os.Stderr
	closeFn := func() {}
	if uiMode {
		logPath := resolveLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to create log dir for %s: %v\n", logPath, err)
		} else if fi, err := os.Lstat(logPath); err == nil && fi.Mode()&os.ModeSymlink != 0 {
			fmt.Fprintf(os.Stderr, "warning: refusing to write logs to symlink path %s\n", logPath)
		} else if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to open log file %s: %v\n", logPath, err)
		} else {
			output = f
			closeFn = func() { _ = f.Close() }
		}
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return closeFn
}

// resolveLogPath picks the UI-mode log file under the XDG state directory.
func resolveLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "clangq", "clangq.log")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "clangq", "clangq.log")
	}
	return "clangq.log"
}
