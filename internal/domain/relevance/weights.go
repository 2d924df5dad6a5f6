package relevance

import "math"

// FallbackWeight is applied to terms missing from a Weights table:
// the IDF of a term that appears in every document.
const FallbackWeight = math.Ln2

// Weights maps a term to its smoothed inverse document frequency over one corpus.
// A table is valid for a single scoring pass only.
type Weights map[string]float64

// BuildWeights computes ln(1 + N/df(t)) for every term of the corpus,
// where df counts the documents a term appears in at least once.
func BuildWeights(docs []string) Weights {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, t := range Tokenize(doc) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	n := float64(len(docs))
	w := make(Weights, len(df))
	for t, count := range df {
		w[t] = math.Log(1 + n/float64(count))
	}
	return w
}

// Weight returns the weight of term, or FallbackWeight when the term is unknown.
func (w Weights) Weight(term string) float64 {
	if v, ok := w[term]; ok {
		return v
	}
	return FallbackWeight
}
