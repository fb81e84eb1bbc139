// Package similarity scores how alike two words are on a 0.0-1.0 scale.
//
// The default algorithm is Ratcliff/Obershelp gestalt pattern matching, the
// same ratio difflib's get_close_matches uses. Edit-distance based
// alternatives are available for dictionaries where transpositions or
// prefix agreement matter more.
package similarity

import (
	"fmt"
	"strings"
)

// Algorithm names a similarity algorithm.
type Algorithm string

const (
	// RatcliffObershelp is the gestalt pattern matching ratio 2*M/T.
	RatcliffObershelp Algorithm = "ratcliff-obershelp"
	// Levenshtein is 1 - distance/max(len).
	Levenshtein Algorithm = "levenshtein"
	// DamerauLevenshtein counts adjacent transpositions as one edit.
	DamerauLevenshtein Algorithm = "damerau-levenshtein"
	// JaroWinkler favours words sharing a prefix.
	JaroWinkler Algorithm = "jaro-winkler"
)

// DefaultAlgorithm is used when none is configured.
const DefaultAlgorithm = RatcliffObershelp

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{RatcliffObershelp, Levenshtein, DamerauLevenshtein, JaroWinkler}
}

// Query scores candidates against one bound word.
// A Query is not safe for concurrent use.
type Query interface {
	// Score returns the similarity of candidate to the bound word and
	// whether it reaches cutoff. Implementations may return early with a
	// score below cutoff once they know cutoff cannot be reached.
	Score(candidate string, cutoff float64) (float64, bool)
}

// Scorer creates queries for a similarity algorithm.
// Scorers are stateless and safe for concurrent use.
type Scorer interface {
	Name() Algorithm
	Bind(word string) Query
}

// Parse converts a configuration string to an Algorithm.
// The empty string selects DefaultAlgorithm.
func Parse(name string) (Algorithm, error) {
	n := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if n == "" {
		return DefaultAlgorithm, nil
	}
	for _, a := range Algorithms() {
		if a == n {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown similarity algorithm %q (use: %s)", name, joinAlgorithms())
}

// New returns the Scorer for an algorithm.
func New(a Algorithm) (Scorer, error) {
	switch a {
	case RatcliffObershelp, "":
		return ratcliffScorer{}, nil
	case Levenshtein, DamerauLevenshtein, JaroWinkler:
		return newEdlibScorer(a), nil
	default:
		return nil, fmt.Errorf("unknown similarity algorithm %q (use: %s)", a, joinAlgorithms())
	}
}

// Ratio is a convenience for one-off comparisons.
func Ratio(s Scorer, a, b string) float64 {
	score, _ := s.Bind(a).Score(b, 0)
	return score
}

func joinAlgorithms() string {
	names := make([]string, 0, len(Algorithms()))
	for _, a := range Algorithms() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
