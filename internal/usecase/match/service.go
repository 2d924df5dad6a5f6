package match

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/domain/seeker"
	"github.com/kailas-cloud/jobmatch/internal/logger"
	"github.com/kailas-cloud/jobmatch/internal/metrics"
)

// DefaultMaxLimit caps how many matches a single request may ask for.
const DefaultMaxLimit = 100

// Service ranks the stored listings for a seeker.
type Service struct {
	listings     ListingFetcher
	defaultLimit int
	maxLimit     int
}

// New creates a match service. Without WithLimits every match is returned
// unless the caller asks for fewer.
func New(listings ListingFetcher) *Service {
	return &Service{listings: listings, maxLimit: DefaultMaxLimit}
}

// WithLimits sets the limit applied when the caller passes 0 and the upper bound
// for explicit limits. A non-positive max leaves the current bound unchanged.
func (s *Service) WithLimits(defaultLimit, maxLimit int) *Service {
	if defaultLimit >= 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// Match fetches the current listings and returns them ranked for q.
// limit 0 applies the configured default, where a default of 0 returns every match.
// Negative limits and limits above the maximum are rejected.
func (s *Service) Match(ctx context.Context, q seeker.Query, limit int) ([]dommatch.ScoredMatch, error) {
	limit, err := s.resolveLimit(limit)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	listings, err := s.listings.FetchListings(ctx)
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch listings: %w", err)
	}

	ranked := Rank(q, listings)
	elapsed := time.Since(start)

	metrics.MatchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.MatchDuration.Observe(elapsed.Seconds())
	metrics.MatchListings.Observe(float64(len(listings)))

	var top float64
	if len(ranked) > 0 {
		top = ranked[0].Score()
		metrics.MatchTopScore.Observe(top)
	}

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	logger.FromContext(ctx).Debug("match ranked",
		zap.Int("listings", len(listings)),
		zap.Int("returned", len(ranked)),
		zap.Float64("top_score", top),
		zap.Duration("duration", elapsed),
	)

	return ranked, nil
}

func (s *Service) resolveLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidRequest)
	case limit == 0:
		return min(s.defaultLimit, s.maxLimit), nil
	case limit > s.maxLimit:
		return 0, fmt.Errorf("%w: limit must not exceed %d", domain.ErrInvalidRequest, s.maxLimit)
	}
	return limit, nil
}
