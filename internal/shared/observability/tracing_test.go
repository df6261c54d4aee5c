package observability

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSetupTracingWithoutEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "", "clangq")
	if err != nil {
		t.Fatalf("SetupTracing failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	_, span := Tracer.Start(context.Background(), "noop")
	span.End()
}

func TestDiagnosticsCounter(t *testing.T) {
	before := testutil.ToFloat64(DiagnosticsTotal.WithLabelValues("warning"))
	DiagnosticsTotal.WithLabelValues("warning").Inc()
	if got := testutil.ToFloat64(DiagnosticsTotal.WithLabelValues("warning")); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}
