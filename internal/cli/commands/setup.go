package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/locklint/internal/cli/config"
	"github.com/leapstack-labs/locklint/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's loaded
// configuration and context logger.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration. It uses the loaded config if
// available, otherwise falls back to environment variables with defaults.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Root:             getEnvOrDefault("LOCKLINT_ROOT", config.DefaultRoot),
		Output:           getEnvOrDefault("LOCKLINT_OUTPUT", config.DefaultOutput),
		Strict:           os.Getenv("LOCKLINT_STRICT") == "true",
		Jobs:             config.DefaultJobs,
		RespectGitignore: os.Getenv("LOCKLINT_RESPECT_GITIGNORE") != "false",
		Verbose:          os.Getenv("LOCKLINT_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
