package chi

import (
	"bytes"
	"encoding/json"
	"strconv"

	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/domain/seeker"
)

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.Code.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeNotFound         ErrorCode = "listing_not_found"
	ErrorCodeAlreadyExists    ErrorCode = "listing_already_exists"
	ErrorCodeStoreUnavailable ErrorCode = "store_unavailable"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Years is a year count that tolerates loosely typed JSON.
// Numbers are truncated, numeric strings parsed; anything else, including
// negatives, null and malformed values, decodes as 0.
type Years int

// UnmarshalJSON implements json.Unmarshaler. It never fails.
func (y *Years) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		*y = 0
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*y = 0
			return nil
		}
		*y = Years(seeker.ParseYears(s))
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*y = 0 // null, true, false, objects, arrays
			return nil
		}
		*y = Years(seeker.YearsFromFloat(f))
	}
	return nil
}

// Score is a match score rendered with exactly one decimal digit.
type Score float64

// MarshalJSON implements json.Marshaler.
func (s Score) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(s), 'f', 1, 64), nil
}

// MatchRequest is the seeker profile posted to /api/match.
type MatchRequest struct {
	Name          string `json:"name"`
	Qualification string `json:"qualification"`
	Experience    Years  `json:"experience"`
	Skills        string `json:"skills"`
	Location      string `json:"location"`
}

// CreateListingRequest is the body of POST /listings.
type CreateListingRequest struct {
	Company       string `json:"company"`
	Title         string `json:"title"`
	MinExperience Years  `json:"min_experience"`
	Skills        string `json:"skills"`
	Location      string `json:"location"`
}

// Listing is the wire form of a stored listing.
type Listing struct {
	ID            string `json:"id"`
	Company       string `json:"company"`
	Title         string `json:"title"`
	MinExperience int    `json:"min_experience"`
	Skills        string `json:"skills"`
	Location      string `json:"location"`
	CreatedAt     int64  `json:"created_at"`
}

// ListingListResponse wraps GET /listings.
type ListingListResponse struct {
	Items []Listing `json:"items"`
	Total int       `json:"total"`
}

// MatchResult is one ranked entry of the /api/match response.
type MatchResult struct {
	Listing Listing `json:"listing"`
	Score   Score   `json:"score"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (r MatchRequest) toQuery() seeker.Query {
	return seeker.New(r.Name, r.Qualification, int(r.Experience), r.Skills, r.Location)
}

func listingToWire(l domlisting.Listing) Listing {
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

func matchesToWire(ms []dommatch.ScoredMatch) []MatchResult {
	out := make([]MatchResult, len(ms))
	for i, m := range ms {
		out[i] = MatchResult{Listing: listingToWire(m.Listing()), Score: Score(m.Score())}
	}
	return out
}
