package similarity

import "github.com/pmezard/go-difflib/difflib"

type ratcliffScorer struct{}

func (ratcliffScorer) Name() Algorithm { return RatcliffObershelp }

// Bind builds the matcher with word as the second sequence; difflib only
// indexes that side, so the index is reused across every candidate.
func (ratcliffScorer) Bind(word string) Query {
	return &ratcliffQuery{m: difflib.NewMatcher(nil, runes(word))}
}

type ratcliffQuery struct {
	m *difflib.SequenceMatcher
}

// Score follows get_close_matches: the two cheap upper bounds are checked
// before the full ratio.
func (q *ratcliffQuery) Score(candidate string, cutoff float64) (float64, bool) {
	q.m.SetSeq1(runes(candidate))

	if r := q.m.RealQuickRatio(); r < cutoff {
		return r, false
	}
	if r := q.m.QuickRatio(); r < cutoff {
		return r, false
	}
	r := q.m.Ratio()
	return r, r >= cutoff
}

// runes splits s into one element per code point.
func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
