package match

import "github.com/kailas-cloud/jobmatch/internal/domain/listing"

// ScoredMatch pairs a listing with its relevance score in [0, 100].
type ScoredMatch struct {
	listing listing.Listing
	score   float64
}

// New creates a scored match.
func New(l listing.Listing, score float64) ScoredMatch {
	return ScoredMatch{listing: l, score: score}
}

// Listing returns the scored listing.
func (m ScoredMatch) Listing() listing.Listing { return m.listing }

// Score returns the relevance score, rounded to one decimal digit.
func (m ScoredMatch) Score() float64 { return m.score }
