// Package config loads wordlook settings from defaults, YAML files and
// WORDLOOK_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/wordlook/internal/dictionary"
	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
	"github.com/Aman-CERP/wordlook/internal/similarity"
)

// ProjectConfigNames are the project config files, in lookup order.
var ProjectConfigNames = []string{".wordlook.yaml", ".wordlook.yml"}

// Config represents the complete wordlook configuration.
type Config struct {
	Version    int              `yaml:"version" json:"version"`
	Dictionary DictionaryConfig `yaml:"dictionary" json:"dictionary"`
	Suggest    SuggestConfig    `yaml:"suggest" json:"suggest"`
	REPL       REPLConfig       `yaml:"repl" json:"repl"`
	UI         UIConfig         `yaml:"ui" json:"ui"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`

	// Files lists the config files that were merged, lowest precedence first.
	Files []string `yaml:"-" json:"-"`
}

// DictionaryConfig selects the dictionary sources.
type DictionaryConfig struct {
	// Paths are merged in order. Empty means the built-in sample.
	// Relative paths in a config file are resolved against its directory.
	Paths []string `yaml:"paths" json:"paths"`

	// Format is auto, json, yaml or sqlite.
	Format string `yaml:"format" json:"format"`
}

// SuggestConfig tunes closest-word suggestions.
type SuggestConfig struct {
	// Algorithm is one of similarity.Algorithms().
	Algorithm string `yaml:"algorithm" json:"algorithm"`

	// Threshold is the minimum similarity in (0, 1] for a suggestion.
	Threshold float64 `yaml:"threshold" json:"threshold"`

	// CacheSize is the number of memoized suggestions. Only
	// WORDLOOK_CACHE_SIZE=0 can turn the cache off, since a zero in a
	// file means "not set".
	CacheSize int `yaml:"cache_size" json:"cache_size"`
}

// REPLConfig configures the interactive loop.
type REPLConfig struct {
	ExitCommand string `yaml:"exit_command" json:"exit_command"`
}

// UIConfig configures console output.
type UIConfig struct {
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// LoggingConfig configures the stderr logger used without --debug.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// NewConfig creates a new Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Dictionary: DictionaryConfig{
			Paths:  []string{},
			Format: string(dictionary.FormatAuto),
		},
		Suggest: SuggestConfig{
			Algorithm: string(similarity.DefaultAlgorithm),
			Threshold: dictionary.DefaultThreshold,
			CacheSize: dictionary.DefaultCacheSize,
		},
		REPL: REPLConfig{
			ExitCommand: "exit",
		},
		Logging: LoggingConfig{
			Level: "warn", // Keep the REPL clean
		},
	}
}

// GetUserConfigPath returns the path to the user/global configuration file.
// It follows XDG Base Directory specification:
//   - $XDG_CONFIG_HOME/wordlook/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/wordlook/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wordlook", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "wordlook", "config.yaml")
	}
	return filepath.Join(home, ".config", "wordlook", "config.yaml")
}

// GetUserConfigDir returns the directory containing the user configuration.
func GetUserConfigDir() string {
	return filepath.Dir(GetUserConfigPath())
}

// FindProjectConfig returns the project config file in dir, or "" if
// there is none. .yaml wins over .yml.
func FindProjectConfig(dir string) string {
	for _, name := range ProjectConfigNames {
		if p := filepath.Join(dir, name); fileExists(p) {
			return p
		}
	}
	return ""
}

// Load loads configuration for the working directory dir.
// It applies configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User/global config (~/.config/wordlook/config.yaml)
//  3. Project config (.wordlook.yaml in dir)
//  4. Environment variables (WORDLOOK_*)
//
// Command-line flags are applied by the caller, which then calls Validate.
func Load(dir string) (*Config, error) {
	return load(FindProjectConfig(dir), false)
}

// LoadFile is Load with an explicit file in place of the project config.
// Unlike the project config, the file must exist.
func LoadFile(path string) (*Config, error) {
	return load(path, true)
}

func load(projectPath string, required bool) (*Config, error) {
	cfg := NewConfig()

	// Step 1: user/global config, if present
	if userPath := GetUserConfigPath(); fileExists(userPath) {
		if err := cfg.loadYAML(userPath); err != nil {
			return nil, err
		}
	}

	// Step 2: project or explicit config
	if projectPath != "" {
		if required && !fileExists(projectPath) {
			return nil, dicterrors.New(dicterrors.ErrCodeConfigNotFound,
				fmt.Sprintf("config file not found: %s", projectPath), nil).
				WithDetail("path", projectPath).
				WithSuggestion("Create one with: wordlook config init")
		}
		if err := cfg.loadYAML(projectPath); err != nil {
			return nil, err
		}
	}

	// Step 3: environment variables
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return dicterrors.ConfigError(fmt.Sprintf("failed to read config file %s", path), err).
			WithDetail("path", path)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return dicterrors.ConfigError(fmt.Sprintf("failed to parse config file %s: %v", path, err), err).
			WithDetail("path", path)
	}

	base := filepath.Dir(path)
	for i, p := range parsed.Dictionary.Paths {
		parsed.Dictionary.Paths[i] = resolvePath(base, p)
	}

	c.mergeWith(&parsed)
	c.Files = append(c.Files, path)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}

	// A later file's dictionary list replaces an earlier one
	if len(other.Dictionary.Paths) > 0 {
		c.Dictionary.Paths = other.Dictionary.Paths
	}
	if other.Dictionary.Format != "" {
		c.Dictionary.Format = other.Dictionary.Format
	}

	if other.Suggest.Algorithm != "" {
		c.Suggest.Algorithm = other.Suggest.Algorithm
	}
	if other.Suggest.Threshold != 0 {
		c.Suggest.Threshold = other.Suggest.Threshold
	}
	if other.Suggest.CacheSize != 0 {
		c.Suggest.CacheSize = other.Suggest.CacheSize
	}

	if other.REPL.ExitCommand != "" {
		c.REPL.ExitCommand = other.REPL.ExitCommand
	}

	if other.UI.NoColor {
		c.UI.NoColor = true
	}

	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
}

// applyEnvOverrides applies WORDLOOK_* environment variable overrides.
// Unparseable numbers are left for Validate to reject.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WORDLOOK_DICTIONARY"); v != "" {
		var paths []string
		for _, p := range filepath.SplitList(v) {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		c.Dictionary.Paths = paths
	}
	if v := os.Getenv("WORDLOOK_FORMAT"); v != "" {
		c.Dictionary.Format = v
	}
	if v := os.Getenv("WORDLOOK_ALGORITHM"); v != "" {
		c.Suggest.Algorithm = v
	}
	if v := os.Getenv("WORDLOOK_THRESHOLD"); v != "" {
		if t, err := parseFloat64(v); err == nil {
			c.Suggest.Threshold = t
		} else {
			c.Suggest.Threshold = -1
		}
	}
	if v := os.Getenv("WORDLOOK_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.Suggest.CacheSize = n
		} else {
			c.Suggest.CacheSize = -1
		}
	}
	if v := os.Getenv("WORDLOOK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("WORDLOOK_NO_COLOR"); v != "" {
		c.UI.NoColor = strings.ToLower(v) == "true" || v == "1"
	}
}

// parseFloat64 parses a string to float64, used for config parsing.
func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Suggest.Threshold <= 0 || c.Suggest.Threshold > 1 {
		return invalid(fmt.Sprintf("suggest.threshold must be in (0, 1], got %g", c.Suggest.Threshold))
	}
	if _, err := similarity.Parse(c.Suggest.Algorithm); err != nil {
		return invalid(fmt.Sprintf("suggest.algorithm: %v", err))
	}
	if c.Suggest.CacheSize < 0 {
		return invalid(fmt.Sprintf("suggest.cache_size must be non-negative, got %d", c.Suggest.CacheSize))
	}
	if _, err := dictionary.ParseFormat(c.Dictionary.Format); err != nil {
		return invalid(fmt.Sprintf("dictionary.format: %s", c.Dictionary.Format))
	}
	if strings.TrimSpace(c.REPL.ExitCommand) == "" {
		return invalid("repl.exit_command must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return invalid(fmt.Sprintf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Logging.Level))
	}

	return nil
}

func invalid(msg string) error {
	return dicterrors.New(dicterrors.ErrCodeConfigInvalid, "invalid configuration: "+msg, nil)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if strings.HasPrefix(p, "~"+string(filepath.Separator)) || p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return filepath.Join(base, p)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
