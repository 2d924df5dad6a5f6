package match

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/kailas-cloud/jobmatch/internal/domain"
	"github.com/kailas-cloud/jobmatch/internal/domain/listing"
	dommatch "github.com/kailas-cloud/jobmatch/internal/domain/match"
	"github.com/kailas-cloud/jobmatch/internal/domain/relevance"
	"github.com/kailas-cloud/jobmatch/internal/domain/seeker"
)

// Rank scores every listing against q and returns them best first.
// Weights are built over the listing documents plus the seeker document.
// Equal scores keep their input order.
func Rank(q seeker.Query, listings []listing.Listing) []dommatch.ScoredMatch {
	if len(listings) == 0 {
		return []dommatch.ScoredMatch{}
	}

	docs := make([]string, 0, len(listings)+1)
	for _, l := range listings {
		docs = append(docs, ListingDocument(l))
	}
	seekerDoc := SeekerDocument(q)
	docs = append(docs, seekerDoc)

	weights := relevance.BuildWeights(docs)
	seekerVec := relevance.Vectorize(seekerDoc, weights)

	type ranked struct {
		idx int
		m   dommatch.ScoredMatch
	}
	out := make([]ranked, len(listings))
	for i, l := range listings {
		sim := relevance.Cosine(seekerVec, relevance.Vectorize(docs[i], weights))
		score := sim*100 + experienceAdjustment(q.Experience(), l.MinExperience())
		out[i] = ranked{idx: i, m: dommatch.New(l, roundScore(clamp(score)))}
	}

	slices.SortFunc(out, func(a, b ranked) int {
		if c := cmp.Compare(b.m.Score(), a.m.Score()); c != 0 {
			return c
		}
		return cmp.Compare(a.idx, b.idx)
	})

	res := make([]dommatch.ScoredMatch, len(out))
	for i, r := range out {
		res[i] = r.m
	}
	return res
}

// ListingDocument is the text a listing is scored on.
// The trailing exp{N} token lets required experience take part in lexical similarity.
func ListingDocument(l listing.Listing) string {
	return l.Title() + " " + l.Skills() + " " + l.Company() + " " + l.Location() +
		" exp" + strconv.Itoa(l.MinExperience())
}

// SeekerDocument is the text a seeker is scored on.
func SeekerDocument(q seeker.Query) string {
	return q.Qualification() + " " + q.Skills() + " " + q.Location()
}

func experienceAdjustment(have, need int) float64 {
	if have >= need {
		return domain.ExperienceBonus
	}
	return -domain.ExperiencePenaltyPerYear * float64(need-have)
}

func clamp(v float64) float64 {
	return min(max(v, domain.MinScore), domain.MaxScore)
}

// roundScore rounds to one decimal digit, ties to even on the exact binary value.
func roundScore(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
