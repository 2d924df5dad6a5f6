package listing

import (
	"fmt"
	"strconv"

	domlisting "github.com/kailas-cloud/jobmatch/internal/domain/listing"
)

// listingToHash converts a domain Listing to a map for HSET.
func listingToHash(l domlisting.Listing) map[string]string {
	return map[string]string{
		"id":             l.ID(),
		"seq":            strconv.FormatInt(l.Seq(), 10),
		"company":        l.Company(),
		"title":          l.Title(),
		"min_experience": strconv.Itoa(l.MinExperience()),
		"skills":         l.Skills(),
		"location":       l.Location(),
		"created_at":     strconv.FormatInt(l.CreatedAt(), 10),
	}
}

// listingFromHash hydrates a domain Listing from an HGETALL result map.
// A malformed min_experience or created_at degrades to 0; a malformed seq is an error
// because it decides snapshot order.
func listingFromHash(m map[string]string) (domlisting.Listing, error) {
	seq, err := strconv.ParseInt(m["seq"], 10, 64)
	if err != nil {
		return domlisting.Listing{}, fmt.Errorf("invalid seq: %w", err)
	}

	minExp, err := strconv.Atoi(m["min_experience"])
	if err != nil {
		minExp = 0
	}
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		createdAt = 0
	}

	return domlisting.Reconstruct(
		m["id"], seq, m["company"], m["title"], minExp,
		m["skills"], m["location"], createdAt,
	), nil
}
