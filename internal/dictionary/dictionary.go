// Package dictionary holds the immutable word to definitions mapping and
// the exact and approximate lookups over it.
package dictionary

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
	"github.com/Aman-CERP/wordlook/internal/similarity"
)

const (
	// DefaultThreshold is the minimum similarity a key needs to be suggested.
	DefaultThreshold = 0.8

	// DefaultCacheSize is the default number of suggestion results to cache.
	DefaultCacheSize = 512
)

// Definitions is the ordered list of definitions for one word.
type Definitions []string

// Source is one decoded dictionary data source.
type Source struct {
	// Name identifies the source in errors, usually its path.
	Name string
	// Entries maps raw (not yet normalized) words to their definitions.
	Entries map[string][]string
}

// Dictionary is an immutable mapping from normalized word to definitions.
// It is safe for concurrent use.
type Dictionary struct {
	entries map[string]Definitions
	words   []string // sorted; fixes the tie-break order of ClosestCandidate

	scorer    similarity.Scorer
	threshold float64
	cache     *lru.Cache[string, suggestion]
	logger    *slog.Logger
}

type suggestion struct {
	word  string
	score float64
	ok    bool
}

type options struct {
	scorer    similarity.Scorer
	threshold float64
	cacheSize int
	logger    *slog.Logger
}

// Option configures a Dictionary.
type Option func(*options)

// WithScorer sets the similarity algorithm used by ClosestCandidate.
func WithScorer(s similarity.Scorer) Option {
	return func(o *options) {
		if s != nil {
			o.scorer = s
		}
	}
}

// WithThreshold sets the minimum similarity for a suggestion.
// Values outside (0, 1] are ignored.
func WithThreshold(t float64) Option {
	return func(o *options) {
		if t > 0 && t <= 1 {
			o.threshold = t
		}
	}
}

// WithCacheSize sets how many suggestion results are memoized.
// Zero or less disables the cache.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithLogger sets the logger for suggestion diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Normalize case-folds and trims a word. Every key and every query goes
// through it before comparison.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// New builds a Dictionary from a single mapping.
func New(entries map[string][]string, opts ...Option) (*Dictionary, error) {
	return FromSources([]Source{{Name: "dictionary", Entries: entries}}, opts...)
}

// FromSources merges sources in order and builds a Dictionary.
// A key that is empty after normalization, or two keys that normalize to
// the same word (within one source or across sources), fail construction.
func FromSources(sources []Source, opts ...Option) (*Dictionary, error) {
	o := options{
		threshold: DefaultThreshold,
		cacheSize: DefaultCacheSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scorer == nil {
		s, err := similarity.New(similarity.DefaultAlgorithm)
		if err != nil {
			return nil, dicterrors.InternalError("default similarity scorer", err)
		}
		o.scorer = s
	}

	size := 0
	for _, src := range sources {
		size += len(src.Entries)
	}

	entries := make(map[string]Definitions, size)
	origin := make(map[string]string, size)
	for _, src := range sources {
		raw := make([]string, 0, len(src.Entries))
		for k := range src.Entries {
			raw = append(raw, k)
		}
		sort.Strings(raw)

		for _, k := range raw {
			word := Normalize(k)
			if word == "" {
				return nil, dicterrors.New(dicterrors.ErrCodeEmptyWord,
					fmt.Sprintf("%s: empty word %q", src.Name, k), nil).
					WithDetail("source", src.Name)
			}
			if prev, dup := origin[word]; dup {
				return nil, dicterrors.New(dicterrors.ErrCodeDuplicateWord,
					fmt.Sprintf("%s: word %q defined more than once", src.Name, word), nil).
					WithDetail("word", word).
					WithDetail("source", src.Name).
					WithDetail("first_source", prev).
					WithSuggestion("Words are compared lowercased and trimmed; merge the duplicate entries")
			}
			origin[word] = src.Name
			entries[word] = slices.Clone(Definitions(src.Entries[k]))
		}
	}

	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	sort.Strings(words)

	d := &Dictionary{
		entries:   entries,
		words:     words,
		scorer:    o.scorer,
		threshold: o.threshold,
		logger:    o.logger,
	}
	if o.cacheSize > 0 {
		cache, err := lru.New[string, suggestion](o.cacheSize)
		if err != nil {
			return nil, dicterrors.InternalError("suggestion cache", err)
		}
		d.cache = cache
	}

	return d, nil
}

// LookupExact returns the definitions of word, in construction order.
// The returned slice is a copy.
func (d *Dictionary) LookupExact(word string) (Definitions, bool) {
	defs, ok := d.entries[Normalize(word)]
	if !ok {
		return nil, false
	}
	return slices.Clone(defs), true
}

// ClosestCandidate returns the key most similar to word if its similarity
// reaches the threshold. Among keys sharing the best score the
// lexicographically smallest wins, so results are deterministic.
func (d *Dictionary) ClosestCandidate(word string) (string, bool) {
	w := Normalize(word)
	if w == "" || len(d.words) == 0 {
		return "", false
	}

	if d.cache != nil {
		if s, ok := d.cache.Get(w); ok {
			return s.word, s.ok
		}
	}

	s := d.closest(w)
	if d.cache != nil {
		d.cache.Add(w, s)
	}

	d.logger.Debug("closest_candidate",
		slog.String("query", w),
		slog.String("candidate", s.word),
		slog.Float64("score", s.score),
		slog.Bool("suggested", s.ok),
		slog.String("algorithm", string(d.scorer.Name())))

	return s.word, s.ok
}

func (d *Dictionary) closest(w string) suggestion {
	q := d.scorer.Bind(w)

	var best suggestion
	cutoff := d.threshold
	for _, key := range d.words {
		score, ok := q.Score(key, cutoff)
		if !ok || (best.ok && score <= best.score) {
			continue
		}
		best = suggestion{word: key, score: score, ok: true}
		// Only a strictly better score can replace best from here on.
		cutoff = score
	}
	return best
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns every word in sorted order.
func (d *Dictionary) Words() []string { return slices.Clone(d.words) }

// DefinitionCount returns the total number of definitions.
func (d *Dictionary) DefinitionCount() int {
	n := 0
	for _, defs := range d.entries {
		n += len(defs)
	}
	return n
}

// Threshold returns the suggestion threshold.
func (d *Dictionary) Threshold() float64 { return d.threshold }

// Algorithm returns the name of the similarity algorithm.
func (d *Dictionary) Algorithm() similarity.Algorithm { return d.scorer.Name() }
