package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Aman-CERP/wordlook/internal/dictionary"
	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "import SRC...",
		Short: "Convert dictionary files into a SQLite dictionary",
		Long: `Merge one or more JSON, YAML or SQLite dictionaries into a single SQLite
database that can be passed to --dict.

The sources follow the same rules as --dict: words are compared lowercased
and trimmed, and a word may appear in only one source.`,
		Example: `  wordlook import en.json extra.yaml --out words.db
  wordlook --dict words.db lookup cat`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts, args, out, force)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "SQLite file to write (required)")
	cmd.Flags().BoolVar(&force, "force", false, "Replace the output file if it exists")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runImport(cmd *cobra.Command, opts *rootOptions, sources []string, out string, force bool) error {
	for _, src := range sources {
		if src == out {
			return dicterrors.ValidationError("output file is also a source: "+out, nil).
				WithSuggestion("Write to a new file, then replace the source")
		}
	}

	dict, err := loadDictionary(cmd.Context(), opts.cfg, sources)
	if err != nil {
		return err
	}

	if err := dictionary.WriteSQLite(cmd.Context(), out, dict, force); err != nil {
		return err
	}

	render := newRenderer(cmd, opts.cfg)
	render.Successf("Wrote %d words (%d definitions) to %s", dict.Len(), dict.DefinitionCount(), out)
	return nil
}
