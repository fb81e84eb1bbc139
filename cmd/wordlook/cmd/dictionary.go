package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/wordlook/configs"
	"github.com/Aman-CERP/wordlook/internal/config"
	"github.com/Aman-CERP/wordlook/internal/dictionary"
	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
	"github.com/Aman-CERP/wordlook/internal/similarity"
	"github.com/Aman-CERP/wordlook/internal/ui"
)

// buildDictionary loads the configured sources with the configured
// suggestion settings.
func buildDictionary(ctx context.Context, cfg *config.Config) (*dictionary.Dictionary, error) {
	return loadDictionary(ctx, cfg, cfg.Dictionary.Paths)
}

// loadDictionary loads paths, which may differ from the configured ones.
func loadDictionary(ctx context.Context, cfg *config.Config, paths []string) (*dictionary.Dictionary, error) {
	algo, err := similarity.Parse(cfg.Suggest.Algorithm)
	if err != nil {
		return nil, dicterrors.ConfigError(err.Error(), err)
	}
	scorer, err := similarity.New(algo)
	if err != nil {
		return nil, dicterrors.InternalError("failed to create scorer", err)
	}
	format, err := dictionary.ParseFormat(cfg.Dictionary.Format)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	dict, err := dictionary.Load(ctx, paths, format,
		dictionary.WithScorer(scorer),
		dictionary.WithThreshold(cfg.Suggest.Threshold),
		dictionary.WithCacheSize(cfg.Suggest.CacheSize),
		dictionary.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}

	slog.Debug("dictionary_loaded",
		slog.Int("sources", len(paths)),
		slog.Int("words", dict.Len()),
		slog.Duration("elapsed", time.Since(start)))
	return dict, nil
}

// sourceNames names the sources a dictionary was built from.
func sourceNames(paths []string) []string {
	if len(paths) == 0 {
		return []string{configs.SampleDictionaryName}
	}
	return paths
}

// newRenderer creates a Renderer on the command's stdout.
func newRenderer(cmd *cobra.Command, cfg *config.Config) *ui.Renderer {
	opts := []ui.ConfigOption{}
	if cfg != nil {
		opts = append(opts,
			ui.WithNoColor(cfg.UI.NoColor),
			ui.WithExitCommand(cfg.REPL.ExitCommand))
	}
	return ui.NewRenderer(ui.NewConfig(cmd.OutOrStdout(), opts...))
}
