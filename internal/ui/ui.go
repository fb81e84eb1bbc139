// Package ui renders lookup results, prompts and summaries to the console.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Config configures a Renderer.
type Config struct {
	Output  io.Writer
	NoColor bool
	// ExitCommand is named in the query prompt.
	ExitCommand string
}

// ConfigOption is a function that modifies Config.
type ConfigOption func(*Config)

// WithNoColor disables color output.
func WithNoColor(noColor bool) ConfigOption {
	return func(c *Config) {
		c.NoColor = noColor
	}
}

// WithExitCommand sets the word shown in the query prompt.
func WithExitCommand(cmd string) ConfigOption {
	return func(c *Config) {
		if cmd != "" {
			c.ExitCommand = cmd
		}
	}
}

// NewConfig creates a Config for output. Color is turned off for
// non-terminal output or when NO_COLOR is set, whatever the options say.
func NewConfig(output io.Writer, opts ...ConfigOption) Config {
	cfg := Config{
		Output:      output,
		ExitCommand: "exit",
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if !IsTTY(output) || DetectNoColor() {
		cfg.NoColor = true
	}
	return cfg
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
