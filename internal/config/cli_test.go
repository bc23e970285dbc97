package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (*Config, string, error) {
	t.Helper()

	var capturedCfg *Config
	var capturedPath string
	runFunc := func(ctx context.Context, configPath string, cfg *Config) error {
		capturedCfg = cfg
		capturedPath = configPath
		return nil
	}

	cmd := CreateCommand(runFunc, "v0.0.0")
	err := cmd.Run(context.Background(), append([]string{"wordtree"}, args...))
	return capturedCfg, capturedPath, err
}

func TestCreateCommand_Flags(t *testing.T) {
	tcs := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg *Config)
	}{
		{
			name: "default values",
			args: []string{"--clean", "myDataFile.txt"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, zerolog.WarnLevel, *cfg.General.LogLevel)
				assert.Equal(t, "en", *cfg.General.Locale)
				assert.False(t, *cfg.General.Color)
				assert.Equal(t, "myDataFile.txt", *cfg.Data.File)
				assert.Equal(t, ":", *cfg.Data.Delimiter)
				assert.False(t, *cfg.Data.IgnoreCase)
				assert.Equal(t, uint32(0), *cfg.Data.MaxEntries)
				assert.Equal(t, RunModeTranslate, *cfg.Run.Mode)
				assert.Equal(t, PromptModeAuto, *cfg.Run.Prompt)
				assert.Equal(t, uint16(0), *cfg.Run.LookupCache)
			},
		},
		{
			name: "display mode",
			args: []string{"--clean", "myDataFile.txt", "display"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, RunModeDisplay, *cfg.Run.Mode)
			},
		},
		{
			name: "all flags set with custom values",
			args: []string{
				"--clean",
				"--log-level", "debug",
				"--locale", "fr",
				"--color",
				"--file", "words.txt",
				"--delimiter", "=",
				"--ignore-case",
				"--max-entries", "500",
				"--prompt", "never",
				"--lookup-cache", "64",
			},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, zerolog.DebugLevel, *cfg.General.LogLevel)
				assert.Equal(t, "fr", *cfg.General.Locale)
				assert.True(t, *cfg.General.Color)
				assert.Equal(t, "words.txt", *cfg.Data.File)
				assert.Equal(t, "=", *cfg.Data.Delimiter)
				assert.True(t, *cfg.Data.IgnoreCase)
				assert.Equal(t, uint32(500), *cfg.Data.MaxEntries)
				assert.Equal(t, RunModeTranslate, *cfg.Run.Mode)
				assert.Equal(t, PromptModeNever, *cfg.Run.Prompt)
				assert.Equal(t, uint16(64), *cfg.Run.LookupCache)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _, err := runCommand(t, tc.args...)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tc.assert(t, cfg)
		})
	}
}

func TestCreateCommand_Errors(t *testing.T) {
	tcs := []struct {
		name string
		args []string
	}{
		{"missing data file", []string{"--clean"}},
		{"unknown mode", []string{"--clean", "words.txt", "shuffle"}},
		{"too many arguments", []string{"--clean", "words.txt", "display", "extra"}},
		{"file given twice", []string{"--clean", "--file", "a.txt", "b.txt"}},
		{"invalid log level", []string{"--clean", "--log-level", "loud", "words.txt"}},
		{"invalid delimiter", []string{"--clean", "--delimiter", "::", "words.txt"}},
		{"invalid prompt mode", []string{"--clean", "--prompt", "sometimes", "words.txt"}},
		{"negative max entries", []string{"--clean", "--max-entries", "-1", "words.txt"}},
		{"lookup cache too large", []string{"--clean", "--lookup-cache", "70000", "words.txt"}},
		{"missing config file", []string{"--config", "nonexistent.toml", "words.txt"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _, err := runCommand(t, tc.args...)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestCreateCommand_MissingDataFile(t *testing.T) {
	_, _, err := runCommand(t, "--clean")
	assert.ErrorIs(t, err, ErrMissingDataFile)
}

func TestCreateCommand_Env(t *testing.T) {
	t.Setenv("WORDTREE_LOG_LEVEL", "trace")
	t.Setenv("WORDTREE_FILE", "from-env.txt")

	cfg, _, err := runCommand(t, "--clean")
	require.NoError(t, err)
	assert.Equal(t, zerolog.TraceLevel, *cfg.General.LogLevel)
	assert.Equal(t, "from-env.txt", *cfg.Data.File)
}

func TestCreateCommand_OverrideTOML(t *testing.T) {
	tomlContent := `
[general]
    log-level = "info"
    locale = "fr"
    color = true

[data]
    file = "from-toml.txt"
    delimiter = "="
    ignore-case = true
    max-entries = 10

[run]
    mode = "display"
    prompt = "always"
`
	configPath := filepath.Join(t.TempDir(), "wordtree.toml")
	err := os.WriteFile(configPath, []byte(tomlContent), 0o644)
	require.NoError(t, err)

	t.Run("toml only", func(t *testing.T) {
		cfg, path, err := runCommand(t, "--config", configPath)
		require.NoError(t, err)

		assert.Equal(t, configPath, path)
		assert.Equal(t, zerolog.InfoLevel, *cfg.General.LogLevel)
		assert.Equal(t, "fr", *cfg.General.Locale)
		assert.True(t, *cfg.General.Color)
		assert.Equal(t, "from-toml.txt", *cfg.Data.File)
		assert.Equal(t, "=", *cfg.Data.Delimiter)
		assert.True(t, *cfg.Data.IgnoreCase)
		assert.Equal(t, uint32(10), *cfg.Data.MaxEntries)
		assert.Equal(t, RunModeDisplay, *cfg.Run.Mode)
		assert.Equal(t, PromptModeAlways, *cfg.Run.Prompt)
	})

	t.Run("args override toml", func(t *testing.T) {
		cfg, _, err := runCommand(t,
			"--config", configPath,
			"--log-level", "error",
			"--color=false",
			"--max-entries", "0",
			"words.txt", "translate",
		)
		require.NoError(t, err)

		assert.Equal(t, zerolog.ErrorLevel, *cfg.General.LogLevel)
		assert.False(t, *cfg.General.Color)
		assert.Equal(t, uint32(0), *cfg.Data.MaxEntries)
		assert.Equal(t, "words.txt", *cfg.Data.File)
		assert.Equal(t, RunModeTranslate, *cfg.Run.Mode)

		// Values not given on the command line come from the file.
		assert.Equal(t, "fr", *cfg.General.Locale)
		assert.Equal(t, "=", *cfg.Data.Delimiter)
		assert.Equal(t, PromptModeAlways, *cfg.Run.Prompt)
	})

	t.Run("clean ignores toml", func(t *testing.T) {
		cfg, path, err := runCommand(t, "--clean", "--config", configPath, "words.txt")
		require.NoError(t, err)

		assert.Empty(t, path)
		assert.Equal(t, "en", *cfg.General.Locale)
	})
}

func TestCreateCommand_Version(t *testing.T) {
	cfg, _, err := runCommand(t, "--version")
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}
