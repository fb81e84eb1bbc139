package similarity

import "github.com/hbollon/go-edlib"

type edlibScorer struct {
	name Algorithm
	algo edlib.Algorithm
}

func newEdlibScorer(a Algorithm) edlibScorer {
	s := edlibScorer{name: a}
	switch a {
	case DamerauLevenshtein:
		s.algo = edlib.DamerauLevenshtein
	case JaroWinkler:
		s.algo = edlib.JaroWinkler
	default:
		s.algo = edlib.Levenshtein
	}
	return s
}

func (s edlibScorer) Name() Algorithm { return s.name }

func (s edlibScorer) Bind(word string) Query {
	return edlibQuery{word: word, algo: s.algo}
}

type edlibQuery struct {
	word string
	algo edlib.Algorithm
}

func (q edlibQuery) Score(candidate string, cutoff float64) (float64, bool) {
	if candidate == q.word {
		return 1, true
	}
	if candidate == "" || q.word == "" {
		return 0, cutoff <= 0
	}
	sim, err := edlib.StringsSimilarity(q.word, candidate, q.algo)
	if err != nil {
		return 0, false
	}
	score := float64(sim)
	return score, score >= cutoff
}
