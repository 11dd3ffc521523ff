package config

import (
	"fmt"
	"slices"
)

// Defaults applied before any config file, env var or flag is read.
const (
	DefaultRoot   = "."
	DefaultOutput = "auto"
	DefaultJobs   = 1
)

// Config is the resolved CLI configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
type Config struct {
	// Root is the directory to scan.
	Root string `koanf:"root"`

	// Output selects the rendering mode: auto, text, markdown or json.
	Output string `koanf:"output"`

	// Strict requires version specifiers to parse as semver.
	Strict bool `koanf:"strict"`

	// Jobs is the number of files scanned concurrently.
	Jobs int `koanf:"jobs"`

	// RespectGitignore skips files matched by .gitignore patterns.
	RespectGitignore bool `koanf:"respect_gitignore"`

	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`

	Lint LintConfig `koanf:"lint"`
}

// LintConfig holds rule-level settings.
type LintConfig struct {
	// Disabled lists rule IDs excluded from classification.
	Disabled []string `koanf:"disabled"`
}

var validOutputs = []string{"auto", "text", "markdown", "json"}

// Validate checks the configuration for values no command can act on.
func (c *Config) Validate() error {
	if !slices.Contains(validOutputs, c.Output) {
		return fmt.Errorf("invalid output format %q (valid: auto, text, markdown, json)", c.Output)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}
