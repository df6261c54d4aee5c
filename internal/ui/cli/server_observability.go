package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// healthFunc reports whether the current session is usable.
type healthFunc func() (status string, detail map[string]any)

// ObservabilityServer serves /metrics and /health while clangq watches.
type ObservabilityServer struct {
	addr     string
	health   healthFunc
	server   *http.Server
	listener net.Listener
}

func NewObservabilityServer(addr string, health healthFunc) *ObservabilityServer {
	return &ObservabilityServer{
		addr:   addr,
		health: health,
	}
}

func (s *ObservabilityServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	// 503 while no translation unit is loaded.
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status, detail := "up", map[string]any{}
		if s.health != nil {
			status, detail = s.health()
		}
		w.Header().Set("Content-Type", "application/json")
		if status != "up" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		detail["status"] = status
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			slog.Debug("health response not written", "error", err)
		}
	})
	return mux
}

// Start binds the address before returning so a busy port is reported to
// the caller instead of only being logged.
func (s *ObservabilityServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	slog.Info("observability server starting", "addr", ln.Addr().String())

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("observability server failed", "error", err)
		}
	}()

	return nil
}

// Addr is the bound address, or the configured one before Start.
func (s *ObservabilityServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

func (s *ObservabilityServer) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
