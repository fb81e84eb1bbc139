package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Aman-CERP/wordlook/internal/dictionary"
	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
	"github.com/Aman-CERP/wordlook/internal/resolve"
)

// Renderer writes lookup output to a console.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	styles Styles
	exit   string
}

// NewRenderer creates a Renderer from cfg.
func NewRenderer(cfg Config) *Renderer {
	exit := cfg.ExitCommand
	if exit == "" {
		exit = "exit"
	}
	return &Renderer{
		out:    cfg.Output,
		styles: GetStyles(cfg.NoColor),
		exit:   exit,
	}
}

// Definitions prints defs under a "Definitions:" header, one per line.
func (r *Renderer) Definitions(defs dictionary.Definitions) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.styles.Header.Render("Definitions:"))
	for _, d := range defs {
		r.println(r.styles.Bullet.Render("-") + " " + d)
	}
}

// Outcome prints the result of looking up query.
func (r *Renderer) Outcome(query string, defs dictionary.Definitions, err error) {
	if err == nil {
		r.Definitions(defs)
		return
	}

	le, ok := resolve.AsLookupError(err)
	if !ok {
		r.Error(err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch le.Kind {
	case resolve.NotFound:
		r.println(r.styles.Warning.Render(
			fmt.Sprintf("Sorry, the word '%s' was not found in the dictionary.", strings.TrimSpace(query))))
	case resolve.IncorrectWord:
		r.println(fmt.Sprintf("Did you mean %s instead?", r.styles.Word.Render(le.Candidate)))
	default:
		r.println(r.styles.Warning.Render(le.Error()))
	}
}

// QueryPrompt asks for the next word.
func (r *Renderer) QueryPrompt() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.styles.Prompt.Render(
		fmt.Sprintf("Enter a word to look up (or '%s' to quit):", r.exit)))
}

// ConfirmPrompt asks whether candidate is the intended word.
func (r *Renderer) ConfirmPrompt(candidate string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(fmt.Sprintf("Did you mean %s? (Y/N)", r.styles.Word.Render(candidate)))
}

// Stats describes a loaded dictionary.
type Stats struct {
	Sources     []string
	Words       int
	Definitions int
	Algorithm   string
	Threshold   float64
}

// Stats prints a summary of a loaded dictionary.
func (r *Renderer) Stats(s Stats) {
	r.mu.Lock()
	defer r.mu.Unlock()

	label := func(name string) string {
		return r.styles.Label.Render(fmt.Sprintf("%-12s", name+":"))
	}
	for _, src := range s.Sources {
		r.println(label("Source") + " " + src)
	}
	r.println(label("Words") + " " + fmt.Sprint(s.Words))
	r.println(label("Definitions") + " " + fmt.Sprint(s.Definitions))
	r.println(label("Algorithm") + " " + s.Algorithm +
		r.styles.Dim.Render(fmt.Sprintf(" (threshold %.2f)", s.Threshold)))
}

// Success prints a confirmation message.
func (r *Renderer) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.styles.Success.Render(msg))
}

// Successf prints a formatted confirmation message.
func (r *Renderer) Successf(format string, args ...any) {
	r.Success(fmt.Sprintf(format, args...))
}

// Error prints err with its hint and code.
func (r *Renderer) Error(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range strings.Split(strings.TrimSuffix(dicterrors.FormatForCLI(err), "\n"), "\n") {
		r.println(r.styles.Error.Render(line))
	}
}

// println writes one line. Console write errors are ignored.
func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}
