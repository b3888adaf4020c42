// Package textutils provides the text normalization and token comparison
// primitives shared by the classifier and the historical matcher.
package textutils

import (
	"regexp"
	"strings"
)

var (
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
	numeric     = regexp.MustCompile(`^\d+$`)
)

// stopWords are Portuguese prepositions, articles and common entity
// suffixes that carry no signal when comparing merchant descriptions.
var stopWords = map[string]struct{}{
	"de": {}, "da": {}, "do": {}, "das": {}, "dos": {},
	"em": {}, "no": {}, "na": {}, "nos": {}, "nas": {},
	"a": {}, "o": {}, "as": {}, "os": {}, "um": {}, "uma": {},
	"e": {}, "com": {}, "para": {}, "por": {}, "via": {},
	"ltda": {}, "me": {}, "sa": {}, "eireli": {}, "epp": {}, "cia": {},
}

// Normalize lower-cases a description, strips punctuation, collapses
// whitespace and removes stop words.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = punctuation.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")

	var kept []string
	for _, word := range strings.Fields(s) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// Tokens returns the comparison tokens of a normalized string: words of
// length >= 3 that are not purely numeric.
func Tokens(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(s) {
		if len(word) < 3 || numeric.MatchString(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// TokenSet returns Tokens as a set.
func TokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokens(s) {
		set[tok] = struct{}{}
	}
	return set
}

// Jaccard computes |a∩b| / |a∪b| over two token sets.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Overlap computes the overlap coefficient |a∩b| / min(|a|,|b|).
func Overlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}
	return float64(inter) / float64(smaller)
}

// SharedWordRatio returns the fraction of words of the shorter string that
// also appear in the longer one. Used by the classifier's secondary scorer.
func SharedWordRatio(a, b string) float64 {
	setA := make(map[string]struct{})
	for _, w := range strings.Fields(Normalize(a)) {
		setA[w] = struct{}{}
	}
	setB := make(map[string]struct{})
	for _, w := range strings.Fields(Normalize(b)) {
		setB[w] = struct{}{}
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	shared := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}
	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}
	return float64(shared) / float64(smaller)
}
