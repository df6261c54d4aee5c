package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"clangq/internal/core/errors"

	"github.com/BurntSushi/toml"
)

const DefaultFileName = "clangq.toml"

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.AddContext(errors.Wrap(err, errors.CodeNotFound, "read config"), errors.CtxPath, path)
	}

	cfg, err := Decode(string(data))
	if err != nil {
		return nil, errors.AddContext(err, errors.CtxPath, path)
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		abs = filepath.Dir(path)
	}
	cfg.baseDir = abs
	return cfg, nil
}

// Decode decodes a config document. Relative paths resolve against the
// working directory until SetBaseDir is called.
func Decode(doc string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.CodeValidationError, "unknown config keys: "+strings.Join(keys, ", "))
	}

	applyDefaults(&cfg, md)
	ApplyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills unset fields. An explicit reparse_per_second = 0 is
// kept and means unthrottled reparses.
func applyDefaults(cfg *Config, md toml.MetaData) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if strings.TrimSpace(cfg.Catalog.Path) == "" {
		cfg.Catalog.Path = "data/clangq.db"
	}
	if cfg.Catalog.BusyTimeout <= 0 {
		cfg.Catalog.BusyTimeout = 5 * time.Second
	}
	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = 200 * time.Millisecond
	}
	if cfg.Watch.ReparsePerSecond == 0 && !md.IsDefined("watch", "reparse_per_second") {
		cfg.Watch.ReparsePerSecond = 2
	}
	if cfg.Watch.Burst <= 0 {
		cfg.Watch.Burst = 1
	}
	if len(cfg.Watch.ExcludeDirs) == 0 {
		cfg.Watch.ExcludeDirs = []string{"**/.git", "**/build"}
	}
	if strings.TrimSpace(cfg.Observability.ServiceName) == "" {
		cfg.Observability.ServiceName = "clangq"
	}
}
