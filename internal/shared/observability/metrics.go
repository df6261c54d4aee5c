package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clangq_parse_seconds",
		Help:    "Time spent parsing or reparsing a translation unit.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	ParseFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clangq_parse_failures_total",
		Help: "Total number of parse or reparse attempts that produced no translation unit.",
	}, []string{"operation"})

	DiagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clangq_diagnostics_total",
		Help: "Total number of diagnostics reported, by severity.",
	}, []string{"severity"})

	CursorsVisitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clangq_cursors_visited_total",
		Help: "Total number of cursors visited during extraction.",
	})

	DeclarationsExtracted = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "clangq_declarations",
		Help: "Number of declarations produced by the latest extraction.",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "clangq_sessions_active",
		Help: "Number of open translation unit sessions.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clangq_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	WatcherThrottledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clangq_watcher_throttled_total",
		Help: "Total number of change batches delayed by the reparse rate limit.",
	})

	CatalogWriteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "clangq_catalog_write_seconds",
		Help:    "Latency for replacing a session's rows in the catalog.",
		Buckets: prometheus.DefBuckets,
	})
)
