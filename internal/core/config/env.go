package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Pattern: CLANGQ_[SECTION]_[KEY] (e.g., CLANGQ_CATALOG_PATH).
func ApplyEnvOverrides(cfg *Config) {
	setEnvString(&cfg.Parse.File, "CLANGQ_PARSE_FILE")
	setEnvString(&cfg.Parse.Std, "CLANGQ_PARSE_STD")
	setEnvList(&cfg.Parse.IncludePaths, "CLANGQ_PARSE_INCLUDE_PATHS")
	setEnvList(&cfg.Parse.Defines, "CLANGQ_PARSE_DEFINES")

	setEnvBool(&cfg.Catalog.Enabled, "CLANGQ_CATALOG_ENABLED")
	setEnvString(&cfg.Catalog.Path, "CLANGQ_CATALOG_PATH")

	setEnvDuration(&cfg.Watch.Debounce, "CLANGQ_WATCH_DEBOUNCE")
	setEnvFloat64(&cfg.Watch.ReparsePerSecond, "CLANGQ_WATCH_REPARSE_PER_SECOND")

	setEnvString(&cfg.Observability.MetricsAddress, "CLANGQ_OBSERVABILITY_METRICS_ADDRESS")
	setEnvString(&cfg.Observability.OTLPEndpoint, "CLANGQ_OBSERVABILITY_OTLP_ENDPOINT")
}

func setEnvString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = val
	}
}

// setEnvList splits on the OS path list separator.
func setEnvList(target *[]string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		var out []string
		for _, part := range strings.Split(val, string(os.PathListSeparator)) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*target = out
	}
}

func setEnvBool(target *bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(strings.ToLower(val))
		if err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = b
		}
	}
}

func setEnvFloat64(target *float64, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = f
		}
	}
}

func setEnvDuration(target *time.Duration, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = d
		}
	}
}
