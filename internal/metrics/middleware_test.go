package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/listings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/listings/{id}", "200"))
	for _, id := range []string{"a", "b", "c"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/listings/"+id, http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/listings/{id}", "200"))
	if after-before != 3 {
		t.Errorf("expected 3 requests under one pattern label, got %v", after-before)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected duration observations")
	}
}

func TestMiddleware_StatusCodes(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Post("/api/match", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})
	r.Delete("/listings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.WriteHeader(http.StatusOK) // ignored
	})

	tests := []struct {
		method, path, pattern, status string
	}{
		{"POST", "/api/match", "/api/match", "200"},
		{"DELETE", "/listings/x", "/listings/{id}", "404"},
		{"GET", "/boom", "/boom", "500"},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.path, http.NoBody))
			if v := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(tc.method, tc.pattern, tc.status)); v < 1 {
				t.Errorf("expected requests_total{%s,%s,%s} >= 1, got %v", tc.method, tc.pattern, tc.status, v)
			}
		})
	}
}

func TestMiddleware_WithoutRouter(t *testing.T) {
	h := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/raw/path", http.NoBody))

	if v := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "202")); v < 1 {
		t.Errorf("expected unknown path label, got %v", v)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "unknown"},
		{"/listings/{id}", "/listings/{id}"},
		{"/health", "/health"},
	}

	for _, tc := range tests {
		if got := normalizePath(tc.input); got != tc.expected {
			t.Errorf("normalizePath(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestRegister_Idempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	for i := 0; i < 2; i++ {
		if err := RegisterHTTPMetrics(reg); err != nil {
			t.Fatalf("RegisterHTTPMetrics #%d: %v", i, err)
		}
		if err := RegisterMatchMetrics(reg); err != nil {
			t.Fatalf("RegisterMatchMetrics #%d: %v", i, err)
		}
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	clash := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "match_duration_seconds",
		Help:      "same name, different type",
	})
	reg.MustRegister(clash)

	if err := RegisterMatchMetrics(reg); err == nil {
		t.Fatal("expected error for conflicting collector")
	}
}

func TestMatchMetrics_Gathered(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := RegisterMatchMetrics(reg); err != nil {
		t.Fatal(err)
	}
	MatchRequestsTotal.WithLabelValues("ok").Inc()
	MatchListings.Observe(5)
	MatchTopScore.Observe(75.2)
	MatchDuration.Observe(0.002)

	n, err := testutil.GatherAndCount(reg,
		"jobmatch_match_requests_total",
		"jobmatch_match_listings",
		"jobmatch_match_top_score",
		"jobmatch_match_duration_seconds",
	)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n < 4 {
		t.Errorf("expected at least 4 series, got %d", n)
	}
}
