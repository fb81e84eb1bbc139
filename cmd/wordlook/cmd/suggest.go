package cmd

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
	"github.com/Aman-CERP/wordlook/internal/resolve"
)

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "suggest WORD...",
		Short: "Look up words without prompting",
		Long: `Look up each WORD without asking anything. An unknown word with a close
match prints that match instead of its definitions.

Exits with status 1 if any word was not found exactly.`,
		Example: `  wordlook suggest catt
  wordlook suggest --json catt dog`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, opts, args, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output one JSON object per word")

	return cmd
}

func runSuggest(cmd *cobra.Command, opts *rootOptions, words []string, jsonOutput bool) error {
	dict, err := buildDictionary(cmd.Context(), opts.cfg)
	if err != nil {
		return err
	}

	engine, err := resolve.New(dict, nil, resolve.WithLogger(slog.Default()))
	if err != nil {
		return dicterrors.InternalError("failed to create resolver", err)
	}

	render := newRenderer(cmd, opts.cfg)
	enc := json.NewEncoder(cmd.OutOrStdout())

	failed := 0
	for _, word := range words {
		defs, err := engine.Suggest(word)
		if err != nil {
			failed++
		}

		if jsonOutput {
			if encErr := enc.Encode(resolve.NewOutcome(word, defs, err)); encErr != nil {
				return dicterrors.InternalError("failed to encode result", encErr)
			}
			continue
		}
		render.Outcome(word, defs, err)
	}

	if failed > 0 {
		return errSilent
	}
	return nil
}
