package config

import (
	"fmt"
	"strings"

	"clangq/internal/core/errors"

	"github.com/gobwas/glob"
)

// knownKinds is consulted for filter.kinds; it is filled by the extract
// package so config stays free of cgo.
var knownKinds func(string) bool

// RegisterKindValidator installs the predicate used to check filter.kinds.
func RegisterKindValidator(fn func(string) bool) {
	knownKinds = fn
}

// Validate checks a defaulted config.
func Validate(cfg *Config) error {
	checks := []func(*Config) error{
		validateVersion,
		validateParse,
		validateUnsaved,
		validateFilter,
		validateWatch,
	}
	for _, check := range checks {
		if err := check(cfg); err != nil {
			return errors.Wrap(err, errors.CodeValidationError, "invalid config")
		}
	}
	return nil
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d; supported version is 1", cfg.Version)
	}
	return nil
}

func validateParse(cfg *Config) error {
	if strings.TrimSpace(cfg.Parse.File) == "" {
		return fmt.Errorf("parse.file must not be empty")
	}
	switch cfg.Parse.Language {
	case "", "c", "c++", "objective-c", "objective-c++", "c-header", "c++-header":
	default:
		return fmt.Errorf("parse.language %q is not supported", cfg.Parse.Language)
	}
	for _, def := range cfg.Parse.Defines {
		if strings.TrimSpace(def) == "" || strings.HasPrefix(def, "=") {
			return fmt.Errorf("parse.defines entry %q is malformed", def)
		}
	}
	return nil
}

func validateUnsaved(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Unsaved))
	for i, u := range cfg.Unsaved {
		if strings.TrimSpace(u.Name) == "" {
			return fmt.Errorf("unsaved[%d].name must not be empty", i)
		}
		if u.Content != "" && u.Path != "" {
			return fmt.Errorf("unsaved[%d] sets both content and path", i)
		}
		if seen[u.Name] {
			return fmt.Errorf("unsaved[%d].name %q is duplicated", i, u.Name)
		}
		seen[u.Name] = true
	}
	return nil
}

func validateFilter(cfg *Config) error {
	for _, pattern := range append(append([]string(nil), cfg.Filter.Include...), cfg.Filter.Exclude...) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("filter pattern %q: %w", pattern, err)
		}
	}
	if knownKinds == nil {
		return nil
	}
	for _, kind := range cfg.Filter.Kinds {
		if !knownKinds(kind) {
			return fmt.Errorf("filter.kinds entry %q is not a cursor kind", kind)
		}
	}
	return nil
}

func validateWatch(cfg *Config) error {
	if cfg.Watch.ReparsePerSecond < 0 {
		return fmt.Errorf("watch.reparse_per_second must be >= 0, got %v", cfg.Watch.ReparsePerSecond)
	}
	for _, pattern := range cfg.Watch.ExcludeDirs {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("watch.exclude_dirs pattern %q: %w", pattern, err)
		}
	}
	return nil
}
