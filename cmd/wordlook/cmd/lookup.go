package cmd

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
	"github.com/Aman-CERP/wordlook/internal/repl"
	"github.com/Aman-CERP/wordlook/internal/resolve"
)

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Look up words, confirming suggestions on stdin",
		Long: `Look up each WORD in turn. When a word is not found and a close match
exists, you are asked whether you meant it.

Exits with status 1 if any word could not be resolved.`,
		Example: `  wordlook lookup cat
  echo y | wordlook lookup catt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, args)
		},
	}
}

func runLookup(cmd *cobra.Command, opts *rootOptions, words []string) error {
	dict, err := buildDictionary(cmd.Context(), opts.cfg)
	if err != nil {
		return err
	}

	render := newRenderer(cmd, opts.cfg)
	console := repl.NewConsole(cmd.InOrStdin(), render)
	engine, err := resolve.New(dict, console, resolve.WithLogger(slog.Default()))
	if err != nil {
		return dicterrors.InternalError("failed to create resolver", err)
	}

	failed := 0
	for _, word := range words {
		defs, err := engine.Lookup(cmd.Context(), word)
		if errors.Is(err, io.EOF) {
			// No answer to the confirmation counts as no
			err = resolve.ErrNotFound
		}
		if err != nil {
			if _, ok := resolve.AsLookupError(err); !ok {
				return dicterrors.Wrap(dicterrors.ErrCodeInternal, err)
			}
			failed++
		}
		render.Outcome(word, defs, err)
	}

	if failed > 0 {
		return errSilent
	}
	return nil
}
