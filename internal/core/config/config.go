package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the clangq.toml document. It tells a session what to parse and
// how, and configures the catalog, the watcher and observability.
type Config struct {
	Version       int           `toml:"version"`
	Index         Index         `toml:"index"`
	Parse         Parse         `toml:"parse"`
	Unsaved       []Unsaved     `toml:"unsaved"`
	Filter        Filter        `toml:"filter"`
	Catalog       Catalog       `toml:"catalog"`
	Watch         Watch         `toml:"watch"`
	Observability Observability `toml:"observability"`

	// baseDir is the directory of the loaded file; relative paths resolve
	// against it.
	baseDir string
}

type Index struct {
	ExcludePCH         bool `toml:"exclude_pch"`
	DisplayDiagnostics bool `toml:"display_diagnostics"`
}

type Parse struct {
	File                  string   `toml:"file"`
	Args                  []string `toml:"args"`
	Language              string   `toml:"language"`
	Std                   string   `toml:"std"`
	IncludePaths          []string `toml:"include_paths"`
	Defines               []string `toml:"defines"`
	DetailedPreprocessing bool     `toml:"detailed_preprocessing"`
	SkipFunctionBodies    bool     `toml:"skip_function_bodies"`
	KeepGoing             bool     `toml:"keep_going"`
	Incomplete            bool     `toml:"incomplete"`
}

// Unsaved overrides a file's disk contents. Exactly one of Content and Path
// is set; Path is read at parse time.
type Unsaved struct {
	Name    string `toml:"name"`
	Content string `toml:"content"`
	Path    string `toml:"path"`
}

type Filter struct {
	Include        []string `toml:"include"`
	Exclude        []string `toml:"exclude"`
	Kinds          []string `toml:"kinds"`
	SkipSystem     bool     `toml:"skip_system"`
	MainFileOnly   bool     `toml:"main_file_only"`
	IncludeMacros  bool     `toml:"include_macros"`
	IncludeComment bool     `toml:"include_comments"`
}

type Catalog struct {
	Enabled     bool          `toml:"enabled"`
	Path        string        `toml:"path"`
	BusyTimeout time.Duration `toml:"busy_timeout"`
}

type Watch struct {
	Debounce         time.Duration `toml:"debounce"`
	ReparsePerSecond float64       `toml:"reparse_per_second"`
	Burst            int           `toml:"burst"`
	ExcludeDirs      []string      `toml:"exclude_dirs"`
}

type Observability struct {
	MetricsAddress string `toml:"metrics_address"`
	OTLPEndpoint   string `toml:"otlp_endpoint"`
	ServiceName    string `toml:"service_name"`
}

// DefaultConfig returns a config with every default applied and no file set.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg, toml.MetaData{})
	return cfg
}

// BaseDir is the directory relative paths are resolved against.
func (c *Config) BaseDir() string {
	return c.baseDir
}

// SetBaseDir overrides the directory used for relative paths.
func (c *Config) SetBaseDir(dir string) {
	c.baseDir = dir
}

// SourcePath is Parse.File resolved against the config directory.
func (c *Config) SourcePath() string {
	return ResolveRelative(c.baseDir, c.Parse.File)
}

// CatalogPath is Catalog.Path resolved against the config directory.
func (c *Config) CatalogPath() string {
	return ResolveRelative(c.baseDir, c.Catalog.Path)
}

// CompilerArgs assembles the command line passed to libclang, in order:
// -x, raw args, -std, -I, -D.
func (c *Config) CompilerArgs() []string {
	p := c.Parse
	args := make([]string, 0, len(p.Args)+len(p.IncludePaths)+len(p.Defines)+3)
	if p.Language != "" {
		args = append(args, "-x", p.Language)
	}
	args = append(args, p.Args...)
	if p.Std != "" {
		args = append(args, "-std="+p.Std)
	}
	for _, inc := range p.IncludePaths {
		args = append(args, "-I"+ResolveRelative(c.baseDir, inc))
	}
	for _, def := range p.Defines {
		args = append(args, "-D"+def)
	}
	return args
}

// WatchedPaths lists the files whose changes should trigger a reparse.
func (c *Config) WatchedPaths() []string {
	paths := []string{c.SourcePath()}
	for _, u := range c.Unsaved {
		if u.Path != "" {
			paths = append(paths, ResolveRelative(c.baseDir, u.Path))
		}
	}
	return paths
}
