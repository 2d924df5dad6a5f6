package relevance

import (
	"math"
	"sort"
)

// Vector maps a term to its magnitude (term frequency times weight).
type Vector map[string]float64

// Vectorize builds the weighted term vector of text against w.
func Vectorize(text string, w Weights) Vector {
	tf := make(map[string]int)
	for _, t := range Tokenize(text) {
		tf[t]++
	}

	v := make(Vector, len(tf))
	for t, freq := range tf {
		v[t] = float64(freq) * w.Weight(t)
	}
	return v
}

// Cosine returns the cosine similarity of a and b, or 0 when either has zero norm.
// Sums run over sorted terms so the result is deterministic and symmetric.
func Cosine(a, b Vector) float64 {
	var dot float64
	for _, t := range a.terms() {
		if bv, ok := b[t]; ok {
			dot += a[t] * bv
		}
	}

	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}

// Norm returns the L2 norm of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.sumSquares())
}

func (v Vector) sumSquares() float64 {
	var s float64
	for _, t := range v.terms() {
		s += v[t] * v[t]
	}
	return s
}

func (v Vector) terms() []string {
	terms := make([]string, 0, len(v))
	for t := range v {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}
