// Package cmd provides the CLI commands for wordlook.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/wordlook/internal/config"
	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
	"github.com/Aman-CERP/wordlook/internal/logging"
	"github.com/Aman-CERP/wordlook/internal/repl"
	"github.com/Aman-CERP/wordlook/internal/resolve"
	"github.com/Aman-CERP/wordlook/pkg/version"
)

// skipConfig marks commands that run without loading configuration.
const skipConfig = "wordlook/skip-config"

// errSilent signals a non-zero exit whose cause was already shown.
var errSilent = errors.New("silent failure")

// rootOptions holds persistent flag values and the state built from them.
type rootOptions struct {
	debug      bool
	configFile string

	dicts     []string
	format    string
	algorithm string
	threshold float64
	noColor   bool

	cfg            *config.Config
	loggingCleanup func()
}

// NewRootCmd creates the root command for wordlook CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wordlook",
		Short: "Look up word definitions, with spelling suggestions",
		Long: `wordlook looks words up in a dictionary. When a word is not found it
suggests the closest known word and asks whether you meant it.

Run 'wordlook' with no arguments for an interactive session.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	cmd.SetVersionTemplate("wordlook version {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging to ~/.wordlook/logs/")
	pf.StringVar(&opts.configFile, "config", "", "Config file to use instead of .wordlook.yaml")
	pf.StringArrayVar(&opts.dicts, "dict", nil, "Dictionary file (repeatable; .json, .yaml or .db)")
	pf.StringVar(&opts.format, "format", "", "Dictionary format: auto, json, yaml, sqlite")
	pf.StringVar(&opts.algorithm, "algorithm", "", "Similarity algorithm for suggestions")
	pf.Float64Var(&opts.threshold, "threshold", 0, "Minimum similarity (0-1] for a suggestion")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return opts.setup(cmd)
	}
	cmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		opts.teardown()
		return nil
	}

	cmd.AddCommand(newLookupCmd(opts))
	cmd.AddCommand(newSuggestCmd(opts))
	cmd.AddCommand(newImportCmd(opts))
	cmd.AddCommand(newStatsCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads configuration, applies flags and starts logging.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	level := "warn"
	if cmd.Annotations[skipConfig] == "" {
		cfg, err := o.loadConfig(cmd)
		if err != nil {
			return err
		}
		o.cfg = cfg
		level = cfg.Logging.Level
	}

	if o.debug {
		logger, cleanup, err := logging.Setup(logging.DebugConfig())
		if err != nil {
			return fmt.Errorf("failed to setup debug logging: %w", err)
		}
		o.loggingCleanup = cleanup
		slog.SetDefault(logger)
		slog.Info("debug_logging_enabled",
			slog.String("log_file", logging.DefaultLogPath()),
			slog.String("version", version.Version))
	} else {
		slog.SetDefault(logging.NewConsoleLogger(cmd.ErrOrStderr(), level))
	}

	if o.cfg != nil {
		slog.Debug("config_loaded",
			slog.Any("files", o.cfg.Files),
			slog.Any("dictionaries", o.cfg.Dictionary.Paths),
			slog.String("algorithm", o.cfg.Suggest.Algorithm),
			slog.Float64("threshold", o.cfg.Suggest.Threshold))
	}
	return nil
}

func (o *rootOptions) teardown() {
	if o.loggingCleanup != nil {
		slog.Info("debug_logging_stopped")
		o.loggingCleanup()
		o.loggingCleanup = nil
	}
}

// loadConfig merges files and environment, then flags, and validates.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configFile != "" {
		cfg, err = config.LoadFile(o.configFile)
	} else {
		dir, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, dicterrors.InternalError("failed to get current directory", wdErr)
		}
		cfg, err = config.Load(dir)
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionary.Paths = o.dicts
	}
	if flags.Changed("format") {
		cfg.Dictionary.Format = o.format
	}
	if flags.Changed("algorithm") {
		cfg.Suggest.Algorithm = o.algorithm
	}
	if flags.Changed("threshold") {
		cfg.Suggest.Threshold = o.threshold
	}
	if flags.Changed("no-color") {
		cfg.UI.NoColor = o.noColor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runREPL runs the interactive session on the command's stdin and stdout.
func runREPL(cmd *cobra.Command, opts *rootOptions) error {
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

	session := repl.NewSession(console, engine, render,
		repl.WithExitCommand(opts.cfg.REPL.ExitCommand),
		repl.WithLogger(slog.Default()))
	return session.Run(cmd.Context())
}

// Execute runs the root command, printing any error to stderr.
func Execute() error {
	return execute(NewRootCmd(), os.Stderr)
}

func execute(cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errSilent) {
		_, _ = fmt.Fprint(stderr, dicterrors.FormatForCLI(err))
		slog.Error("command_failed", dicterrors.LogAttrs(err)...)
	}
	return err
}
