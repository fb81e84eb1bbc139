package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/wordlook/configs"
	"github.com/Aman-CERP/wordlook/internal/config"
	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Show, create and locate wordlook configuration files.

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. User config (~/.config/wordlook/config.yaml)
  3. Project config (.wordlook.yaml in the working directory) or --config
  4. Environment variables (WORDLOOK_*)
  5. Command-line flags`,
		Example: `  # Create a project config from the template
  wordlook config init

  # Show effective configuration
  wordlook config show

  # Print user config file path
  wordlook config path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force bool
		user  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file from the template",
		Long: `Write the commented configuration template to .wordlook.yaml in the
working directory, or to the user config file with --user.

An existing file is kept unless --force is given, in which case it is
backed up first.`,
		Annotations: map[string]string{skipConfig: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ProjectConfigNames[0]
			if user {
				path = config.GetUserConfigPath()
			}
			return runConfigInit(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file (a backup is kept)")
	cmd.Flags().BoolVar(&user, "user", false, "Write the user config instead of the project config")

	return cmd
}

func runConfigInit(cmd *cobra.Command, path string, force bool) error {
	render := newRenderer(cmd, nil)
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil {
		if !force {
			_, _ = fmt.Fprintf(out, "Configuration already exists: %s\n", path)
			_, _ = fmt.Fprintln(out, "Use --force to replace it (a backup is kept)")
			return nil
		}
		backup, err := config.BackupFile(path)
		if err != nil {
			return dicterrors.ConfigError("failed to back up "+path, err)
		}
		_, _ = fmt.Fprintf(out, "Backup: %s\n", backup)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return dicterrors.New(dicterrors.ErrCodeFilePermission,
			fmt.Sprintf("failed to create config directory for %s", path), err)
	}
	if err := os.WriteFile(path, []byte(configs.ConfigTemplate), 0644); err != nil {
		return dicterrors.New(dicterrors.ErrCodeFilePermission,
			fmt.Sprintf("failed to write config file %s", path), err)
	}

	render.Successf("Created configuration: %s", path)
	return nil
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  `Show the configuration after merging defaults, files, environment variables and flags.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, opts.cfg, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runConfigShow(cmd *cobra.Command, cfg *config.Config, jsonOutput bool) error {
	out := cmd.OutOrStdout()

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	for _, f := range cfg.Files {
		_, _ = fmt.Fprintf(out, "# from %s\n", f)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return dicterrors.InternalError("failed to marshal config", err)
	}
	_, err = out.Write(data)
	return err
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print user config file path",
		Long:        `Print the path to the user configuration file.`,
		Annotations: map[string]string{skipConfig: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.GetUserConfigPath())
			return err
		},
	}
}
