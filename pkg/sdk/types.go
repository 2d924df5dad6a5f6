package jobmatch

import (
	"strconv"

	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/domain/seeker"
)

// Listing is a stored job listing.
type Listing struct {
	ID            string `json:"id"`
	Company       string `json:"company"`
	Title         string `json:"title"`
	MinExperience int    `json:"min_experience"`
	Skills        string `json:"skills"` // comma-separated
	Location      string `json:"location"`
	CreatedAt     int64  `json:"created_at,omitempty"` // unix millis
}

// ListingInput holds the fields of a new listing. The ID is generated.
type ListingInput struct {
	Company       string
	Title         string
	MinExperience int
	Skills        string
	Location      string
}

// Seeker is the profile matched against listings.
type Seeker struct {
	Name          string
	Qualification string
	Experience    int
	Skills        string
	Location      string
}

// Match is a listing with its relevance score in [0, 100], one decimal place.
type Match struct {
	Listing Listing `json:"listing"`
	Score   Score   `json:"score"`
}

// Score is a relevance score. It encodes to JSON with exactly one decimal digit.
type Score float64

// MarshalJSON implements json.Marshaler.
func (s Score) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(s), 'f', 1, 64), nil
}

// String formats the score with one decimal digit.
func (s Score) String() string {
	return strconv.FormatFloat(float64(s), 'f', 1, 64)
}

func listingFromDomain(l domlisting.Listing) Listing {
	return Listing{
		ID:            l.ID(),
		Company:       l.Company(),
		Title:         l.Title(),
		MinExperience: l.MinExperience(),
		Skills:        l.Skills(),
		Location:      l.Location(),
		CreatedAt:     l.CreatedAt(),
	}
}

func listingToDomain(l Listing, seq int64) domlisting.Listing {
	return domlisting.Reconstruct(
		l.ID, seq, l.Company, l.Title, l.MinExperience, l.Skills, l.Location, l.CreatedAt,
	)
}

func (s Seeker) toQuery() seeker.Query {
	return seeker.New(s.Name, s.Qualification, s.Experience, s.Skills, s.Location)
}

func matchesFromDomain(ms []dommatch.ScoredMatch) []Match {
	out := make([]Match, len(ms))
	for i, m := range ms {
		out[i] = Match{Listing: listingFromDomain(m.Listing()), Score: Score(m.Score())}
	}
	return out
}
