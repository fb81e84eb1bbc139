// Package resolve turns a raw query into definitions, suggesting the closest
// known word and asking the user to confirm it when there is no exact match.
package resolve

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Aman-CERP/wordlook/internal/dictionary"
)

// Store is the read-only dictionary the engine queries.
type Store interface {
	LookupExact(word string) (dictionary.Definitions, bool)
	ClosestCandidate(word string) (string, bool)
}

// Confirmer asks the user whether candidate is the word they meant.
// An error means the answer could not be read at all.
type Confirmer interface {
	Confirm(ctx context.Context, candidate string) (Response, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, candidate string) (Response, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, candidate string) (Response, error) {
	return f(ctx, candidate)
}

// ErrNilStore is returned by New when store is nil.
var ErrNilStore = errors.New("resolve: nil store")

// Engine resolves queries against a Store. It keeps no state between
// queries.
type Engine struct {
	store     Store
	confirmer Confirmer
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine. A nil confirmer rejects every suggestion.
func New(store Store, confirmer Confirmer, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if confirmer == nil {
		confirmer = ConfirmFunc(func(context.Context, string) (Response, error) {
			return Negative, nil
		})
	}
	e := &Engine{
		store:     store,
		confirmer: confirmer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Lookup resolves raw. On a miss it offers the closest key once; yes
// looks that key up, no gives NotFound, anything else gives UnknownInput.
// A non-nil error that is not a *LookupError came from the Confirmer.
func (e *Engine) Lookup(ctx context.Context, raw string) (dictionary.Definitions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	word := dictionary.Normalize(raw)
	if defs, ok := e.store.LookupExact(word); ok {
		e.logger.Debug("lookup_resolved", slog.String("query", word))
		return defs, nil
	}

	candidate, ok := e.store.ClosestCandidate(word)
	if !ok {
		e.logger.Debug("lookup_not_found", slog.String("query", word))
		return nil, &LookupError{Kind: NotFound, Query: word}
	}

	e.logger.Debug("lookup_confirming",
		slog.String("query", word),
		slog.String("candidate", candidate))

	resp, err := e.confirmer.Confirm(ctx, candidate)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("lookup_confirmed",
		slog.String("query", word),
		slog.String("candidate", candidate),
		slog.String("response", resp.String()))

	switch resp {
	case Affirmative:
		// candidate is a key, so this cannot miss
		defs, ok := e.store.LookupExact(candidate)
		if !ok {
			return nil, &LookupError{Kind: NotFound, Query: candidate}
		}
		return defs, nil
	case Negative:
		return nil, &LookupError{Kind: NotFound, Query: word}
	default:
		return nil, &LookupError{Kind: UnknownInput, Query: word}
	}
}

// Suggest resolves raw without asking anything. A miss with a close key
// gives IncorrectWord carrying that key.
func (e *Engine) Suggest(raw string) (dictionary.Definitions, error) {
	word := dictionary.Normalize(raw)
	if defs, ok := e.store.LookupExact(word); ok {
		return defs, nil
	}

	candidate, ok := e.store.ClosestCandidate(word)
	if !ok {
		return nil, &LookupError{Kind: NotFound, Query: word}
	}

	e.logger.Debug("lookup_suggested",
		slog.String("query", word),
		slog.String("candidate", candidate))
	return nil, &LookupError{Kind: IncorrectWord, Query: word, Candidate: candidate}
}
