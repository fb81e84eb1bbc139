package resolve

import "strings"

// Response classifies one line of user input to a confirmation prompt.
type Response int

const (
	// Unrecognized is any answer that is neither yes nor no.
	Unrecognized Response = iota
	// Affirmative is "y" or "yes".
	Affirmative
	// Negative is "n" or "no".
	Negative
)

// ParseResponse classifies s, ignoring case and surrounding whitespace.
func ParseResponse(s string) Response {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return Affirmative
	case "n", "no":
		return Negative
	default:
		return Unrecognized
	}
}

func (r Response) String() string {
	switch r {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	default:
		return "unrecognized"
	}
}
