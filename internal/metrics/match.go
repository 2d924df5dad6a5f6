package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Match Prometheus metrics.
var (
	MatchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_requests_total",
			Help:      "Total number of ranking passes",
		},
		[]string{"status"}, // "ok" / "error"
	)

	MatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_duration_seconds",
			Help:      "Ranking pass duration in seconds, store fetch included",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	MatchListings = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_listings",
			Help:      "Number of listings scored per ranking pass",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	MatchTopScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_top_score",
			Help:      "Best score of each non-empty ranking pass",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		},
	)
)

// RegisterMatchMetrics registers the ranking metrics on reg. Must be called once from main.
// Collectors that are already registered are left as they are.
func RegisterMatchMetrics(reg prometheus.Registerer) error {
	return register(reg, MatchRequestsTotal, MatchDuration, MatchListings, MatchTopScore)
}

func register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("register collector: %w", err)
		}
	}
	return nil
}
