package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/locklint/internal/cli/config"
)

func scanFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("scan", pflag.ContinueOnError)
	flags.String("format", "", "")
	flags.StringSlice("disable", nil, "")
	flags.Bool("strict", false, "")
	flags.Bool("no-gitignore", false, "")
	flags.Int("jobs", 1, "")
	flags.Bool("verbose", false, "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "auto", cfg.Output)
	assert.False(t, cfg.Strict)
	assert.Equal(t, 1, cfg.Jobs)
	assert.True(t, cfg.RespectGitignore)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Lint.Disabled)
	assert.Empty(t, config.GetConfigFileUsed())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := `output: json
strict: true
jobs: 4
lint:
  disabled:
    - NPM001
    - YARN002
`
	path := filepath.Join(dir, "locklint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Chdir(dir)
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, []string{"NPM001", "YARN002"}, cfg.Lint.Disabled)
	assert.Equal(t, path, config.GetConfigFileUsed())
	assert.Equal(t, cfg, config.GetCurrentConfig())
}

func TestLoadConfig_FileFoundUpward(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locklint.yml"), []byte("strict: true\n"), 0o644))
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locklint.yaml"), []byte("output: text\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("LOCKLINT_OUTPUT", "markdown")
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output)
}

func TestLoadConfig_FlagsOverrideEverything(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOCKLINT_OUTPUT", "markdown")
	t.Cleanup(config.ResetConfig)

	flags := scanFlags()
	require.NoError(t, flags.Parse([]string{
		"--format", "json",
		"--disable", "NPM001",
		"--no-gitignore",
		"--jobs", "8",
	}))

	cfg, err := config.LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, []string{"NPM001"}, cfg.Lint.Disabled)
	assert.False(t, cfg.RespectGitignore)
	assert.Equal(t, 8, cfg.Jobs)
}

func TestLoadConfig_UnchangedFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locklint.yaml"), []byte("jobs: 4\n"), 0o644))
	t.Chdir(dir)
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig("", scanFlags())
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Jobs, "default-valued flag must not clobber the file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(config.ResetConfig)

	flags := scanFlags()
	require.NoError(t, flags.Parse([]string{"--format", "xml"}))

	_, err := config.LoadConfig("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")

	flags = scanFlags()
	require.NoError(t, flags.Parse([]string{"--jobs", "0"}))
	_, err = config.LoadConfig("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobs must be at least 1")
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strict: true\n"), 0o644))
	t.Chdir(t.TempDir())
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, path, config.GetConfigFileUsed())
}
