package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/wordlook/internal/ui"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dictionary statistics",
		Long:  `Load the configured dictionary and print its sources, word and definition counts, and suggestion settings.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, opts, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// StatsOutput is the JSON output format for stats.
type StatsOutput struct {
	Sources     []string `json:"sources"`
	Words       int      `json:"words"`
	Definitions int      `json:"definitions"`
	Algorithm   string   `json:"algorithm"`
	Threshold   float64  `json:"threshold"`
	CacheSize   int      `json:"cache_size"`
}

func runStats(cmd *cobra.Command, opts *rootOptions, jsonOutput bool) error {
	dict, err := buildDictionary(cmd.Context(), opts.cfg)
	if err != nil {
		return err
	}

	stats := StatsOutput{
		Sources:     sourceNames(opts.cfg.Dictionary.Paths),
		Words:       dict.Len(),
		Definitions: dict.DefinitionCount(),
		Algorithm:   string(dict.Algorithm()),
		Threshold:   dict.Threshold(),
		CacheSize:   opts.cfg.Suggest.CacheSize,
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	newRenderer(cmd, opts.cfg).Stats(ui.Stats{
		Sources:     stats.Sources,
		Words:       stats.Words,
		Definitions: stats.Definitions,
		Algorithm:   stats.Algorithm,
		Threshold:   stats.Threshold,
	})
	return nil
}
