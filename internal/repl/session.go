package repl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/Aman-CERP/wordlook/internal/dictionary"
	"github.com/Aman-CERP/wordlook/internal/resolve"
	"github.com/Aman-CERP/wordlook/internal/ui"
)

// DefaultExitCommand ends a session.
const DefaultExitCommand = "exit"

// Lookuper resolves one query, possibly asking for confirmation.
type Lookuper interface {
	Lookup(ctx context.Context, raw string) (dictionary.Definitions, error)
}

// Session is one interactive loop: prompt, read, resolve, render.
type Session struct {
	console *Console
	engine  Lookuper
	render  *ui.Renderer
	exit    string
	logger  *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithExitCommand sets the input that ends the session. It is compared
// after trimming, case-sensitively.
func WithExitCommand(cmd string) SessionOption {
	return func(s *Session) {
		if cmd = strings.TrimSpace(cmd); cmd != "" {
			s.exit = cmd
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a Session. engine should use console as its Confirmer.
func NewSession(console *Console, engine Lookuper, render *ui.Renderer, opts ...SessionOption) *Session {
	s := &Session{
		console: console,
		engine:  engine,
		render:  render,
		exit:    DefaultExitCommand,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the exit command or end of input, both of which return
// nil. Lookup outcomes are rendered and never end the loop. A read
// failure or cancelled context does.
func (s *Session) Run(ctx context.Context) error {
	queries := 0
	defer func() {
		s.logger.Debug("session_end", slog.Int("queries", queries))
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.render.QueryPrompt()
		line, err := s.console.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		query := strings.TrimSpace(line)
		if query == s.exit {
			return nil
		}
		if query == "" {
			continue
		}

		queries++
		defs, err := s.engine.Lookup(ctx, query)
		if err != nil {
			if _, ok := resolve.AsLookupError(err); !ok {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		}
		s.render.Outcome(query, defs, err)
	}
}
