// Package relevance implements the lexical relevance primitives used to rank
// job listings: tokenization, corpus IDF weights, weighted term vectors and
// cosine similarity.
package relevance

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize lower-cases text and splits it on runs of characters that are not
// letters, numbers or underscore. Terms of a single character are dropped.
// Order and duplicates are preserved.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	terms := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 1 {
			terms = append(terms, f)
		}
	}
	if len(terms) == 0 {
		return nil
	}
	return terms
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_'
}
