package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aman-CERP/wordlook/internal/dictionary"
	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
	"github.com/Aman-CERP/wordlook/internal/resolve"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewRenderer(NewConfig(buf, WithNoColor(true))), buf
}

func TestRenderer_Definitions(t *testing.T) {
	// Given: two definitions
	r, buf := newTestRenderer()

	// When: rendering them
	r.Definitions(dictionary.Definitions{"A small feline.", "A wild cat."})

	// Then: a header followed by one bullet per definition, in order
	assert.Equal(t, "Definitions:\n- A small feline.\n- A wild cat.\n", buf.String())
}

func TestRenderer_Outcome(t *testing.T) {
	tests := []struct {
		name  string
		query string
		defs  dictionary.Definitions
		err   error
		want  string
	}{
		{
			name:  "resolved",
			query: "cat",
			defs:  dictionary.Definitions{"a feline"},
			want:  "Definitions:\n- a feline\n",
		},
		{
			name:  "not found uses the query as typed",
			query: " Zzzzz ",
			err:   resolve.ErrNotFound,
			want:  "Sorry, the word 'Zzzzz' was not found in the dictionary.\n",
		},
		{
			name:  "incorrect word",
			query: "catt",
			err:   &resolve.LookupError{Kind: resolve.IncorrectWord, Candidate: "cat"},
			want:  "Did you mean cat instead?\n",
		},
		{
			name:  "unknown input",
			query: "kat",
			err:   resolve.ErrUnknownInput,
			want:  "We didn't understand your input.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newTestRenderer()
			r.Outcome(tt.query, tt.defs, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderer_OutcomeOtherError(t *testing.T) {
	r, buf := newTestRenderer()

	r.Outcome("cat", nil, errors.New("disk on fire"))

	assert.Contains(t, buf.String(), "Error: disk on fire")
	assert.Contains(t, buf.String(), dicterrors.ErrCodeInternal)
}

func TestRenderer_Prompts(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(NewConfig(buf, WithExitCommand("quit")))

	r.QueryPrompt()
	r.ConfirmPrompt("cat")

	assert.Equal(t,
		"Enter a word to look up (or 'quit' to quit):\nDid you mean cat? (Y/N)\n",
		buf.String())
}

func TestRenderer_Stats(t *testing.T) {
	r, buf := newTestRenderer()

	r.Stats(Stats{
		Sources:     []string{"a.json"},
		Words:       3,
		Definitions: 5,
		Algorithm:   "ratcliff-obershelp",
		Threshold:   0.8,
	})

	out := buf.String()
	assert.Contains(t, out, "Source:      a.json")
	assert.Contains(t, out, "Words:       3")
	assert.Contains(t, out, "Definitions: 5")
	assert.Contains(t, out, "ratcliff-obershelp (threshold 0.80)")
}

func TestRenderer_ErrorIncludesHint(t *testing.T) {
	r, buf := newTestRenderer()

	err := dicterrors.New(dicterrors.ErrCodeDictionaryNotFound, "dictionary not found: x.json", nil).
		WithSuggestion("Check the path")
	r.Error(err)

	assert.Equal(t,
		"Error: dictionary not found: x.json\n  Hint: Check the path\n  Code: ERR_201_DICTIONARY_NOT_FOUND\n",
		buf.String())
}
