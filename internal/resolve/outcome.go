package resolve

import (
	"errors"
	"fmt"

	"github.com/Aman-CERP/wordlook/internal/dictionary"
)

// Kind is the category of a failed lookup.
type Kind int

const (
	// NotFound means no key matched and no suggestion was accepted.
	NotFound Kind = iota + 1
	// IncorrectWord means the query is unknown but a close key exists.
	IncorrectWord
	// UnknownInput means a confirmation answer was neither yes nor no.
	UnknownInput
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case IncorrectWord:
		return "incorrect_word"
	case UnknownInput:
		return "unknown_input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// LookupError is the failed outcome of one query. It is an expected
// result to be shown to the user, never a reason to stop.
type LookupError struct {
	Kind Kind
	// Query is the normalized word that was looked up.
	Query string
	// Candidate is the suggested key; set for IncorrectWord only.
	Candidate string
}

// Sentinels for errors.Is. ErrIncorrectWord matches any candidate.
var (
	ErrNotFound      = &LookupError{Kind: NotFound}
	ErrIncorrectWord = &LookupError{Kind: IncorrectWord}
	ErrUnknownInput  = &LookupError{Kind: UnknownInput}
)

func (e *LookupError) Error() string {
	switch e.Kind {
	case NotFound:
		return "The word doesn't exist."
	case IncorrectWord:
		return fmt.Sprintf("Did you mean %s instead?", e.Candidate)
	case UnknownInput:
		return "We didn't understand your input."
	default:
		return e.Kind.String()
	}
}

// Is matches another LookupError of the same kind. A target without a
// candidate matches any candidate.
func (e *LookupError) Is(target error) bool {
	t, ok := target.(*LookupError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Candidate == "" || t.Candidate == e.Candidate)
}

// AsLookupError extracts a *LookupError from err.
func AsLookupError(err error) (*LookupError, bool) {
	var le *LookupError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}

// Status values of an Outcome.
const (
	StatusResolved = "resolved"
	StatusError    = "error"
)

// Outcome is the reportable result of one query.
type Outcome struct {
	Query       string   `json:"query"`
	Status      string   `json:"status"`
	Definitions []string `json:"definitions,omitempty"`
	Candidate   string   `json:"candidate,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// NewOutcome summarizes the result of looking up query.
func NewOutcome(query string, defs dictionary.Definitions, err error) Outcome {
	o := Outcome{Query: dictionary.Normalize(query)}
	if err == nil {
		o.Status = StatusResolved
		o.Definitions = []string(defs)
		return o
	}

	if le, ok := AsLookupError(err); ok {
		o.Status = le.Kind.String()
		o.Candidate = le.Candidate
		o.Message = le.Error()
		return o
	}

	o.Status = StatusError
	o.Message = err.Error()
	return o
}
