package jobmatch

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserver_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe(opMatch, time.Now(), nil)
	obs.observe(opMatch, time.Now(), errors.New("boom"))

	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("match", "ok")); got != 1 {
		t.Errorf("ok count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("match", "error")); got != 1 {
		t.Errorf("error count = %v, want 1", got)
	}
}

func TestObserver_ReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newObserver(nil, reg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}
	if first.metrics.operations != second.metrics.operations {
		t.Error("expected the registered counter to be reused")
	}
}

func TestObserver_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs, err := newObserver(logger, nil)
	if err != nil {
		t.Fatal(err)
	}

	obs.observe(opListingGet, time.Now(), nil)
	obs.observe(opListingGet, time.Now(), errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "operation completed") || !strings.Contains(out, "operation failed") {
		t.Errorf("log output = %q", out)
	}
	if !strings.Contains(out, "op=listing_get") {
		t.Errorf("expected op field, got %q", out)
	}
}

func TestObserver_Nil(t *testing.T) {
	var obs *observer
	obs.observe("noop", time.Now(), nil)
}
