package seeker

import (
	"math"
	"strconv"
	"strings"
)

// Query is a job seeker's profile for one matching request.
type Query struct {
	name          string
	qualification string
	experience    int
	skills        string
	location      string
}

// New creates a Query. Negative experience is coerced to 0.
func New(name, qualification string, experience int, skills, location string) Query {
	if experience < 0 {
		experience = 0
	}
	return Query{
		name:          strings.TrimSpace(name),
		qualification: strings.TrimSpace(qualification),
		experience:    experience,
		skills:        strings.TrimSpace(skills),
		location:      strings.TrimSpace(location),
	}
}

// Name returns the seeker's name. It never affects scoring.
func (q Query) Name() string { return q.name }

// Qualification returns the seeker's qualification text.
func (q Query) Qualification() string { return q.qualification }

// Experience returns years of experience.
func (q Query) Experience() int { return q.experience }

// Skills returns the seeker's skills text.
func (q Query) Skills() string { return q.skills }

// Location returns the seeker's preferred location.
func (q Query) Location() string { return q.location }

// ParseYears coerces a raw textual year count into a non-negative int.
// Blank, non-integer, negative or out-of-range input yields 0.
func ParseYears(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 || n > math.MaxInt32 {
		return 0
	}
	return n
}

// YearsFromFloat truncates a numeric year count toward zero.
// NaN, negative or out-of-range values yield 0.
func YearsFromFloat(v float64) int {
	if math.IsNaN(v) || v < 0 || v > math.MaxInt32 {
		return 0
	}
	return int(v)
}
