// Package repl runs the interactive lookup loop over a line-based console.
package repl

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/Aman-CERP/wordlook/internal/resolve"
	"github.com/Aman-CERP/wordlook/internal/ui"
)

// Console reads lines from one input and prompts through a Renderer.
// Queries and confirmation answers share the same buffered reader, so
// no input is lost between them.
type Console struct {
	in     *bufio.Reader
	render *ui.Renderer
}

var _ resolve.Confirmer = (*Console)(nil)

// NewConsole creates a Console reading from in.
func NewConsole(in io.Reader, render *ui.Renderer) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		render: render,
	}
}

// ReadLine returns the next line without its line ending. A final line
// without a newline is returned before io.EOF.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm prints the confirmation prompt for candidate and classifies
// the answer.
func (c *Console) Confirm(ctx context.Context, candidate string) (resolve.Response, error) {
	if err := ctx.Err(); err != nil {
		return resolve.Unrecognized, err
	}
	c.render.ConfirmPrompt(candidate)
	line, err := c.ReadLine()
	if err != nil {
		return resolve.Unrecognized, err
	}
	return resolve.ParseResponse(line), nil
}
