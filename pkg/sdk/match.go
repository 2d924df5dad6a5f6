package jobmatch

import (
	"context"
	"fmt"
	"time"

	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
	matchuc "github.com/kailas-cloud/jobmatch/internal/usecase/match"
)

// Match ranks every stored listing for s, best first.
// limit 0 applies the configured default.
func (c *Client) Match(ctx context.Context, s Seeker, limit int) (_ []Match, err error) {
	start := time.Now()
	defer func() { c.obs.observe(opMatch, start, err) }()

	ranked, err := c.matchSvc.Match(ctx, s.toQuery(), limit)
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}
	return matchesFromDomain(ranked), nil
}

// Rank scores listings for s without touching a store.
// Ties keep the order of the input slice.
func Rank(s Seeker, listings []Listing) []Match {
	dls := make([]domlisting.Listing, len(listings))
	for i, l := range listings {
		dls[i] = listingToDomain(l, int64(i+1))
	}
	return matchesFromDomain(matchuc.Rank(s.toQuery(), dls))
}
