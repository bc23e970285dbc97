package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/xvzc/wordtree/internal/ptr"
)

const configFilename = "wordtree.toml"

func CreateCommand(
	runFunc func(ctx context.Context, configPath string, cfg *Config) error,
	version string,
) *cli.Command {
	cmd := &cli.Command{
		Name:      "wordtree",
		Usage:     "Translate words using a colon-delimited dictionary file",
		ArgsUsage: "<data-file> [display]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "clean",
				Usage:    "if set, all configuration files will be ignored",
				OnlyOnce: true,
			},

			&cli.BoolFlag{
				Name:     "color",
				Usage:    "style keys and values in the output (default: false)",
				OnlyOnce: true,
				Sources:  cli.EnvVars("WORDTREE_COLOR"),
			},

			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `custom location of the config file to load. Options given through
	the command line flags will override the options set in this file.`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("WORDTREE_CONFIG"),
			},

			&cli.StringFlag{
				Name:      "delimiter",
				Usage:     "separator between a word and its translation (default: \":\")",
				OnlyOnce:  true,
				Validator: checkDelimiter,
				Sources:   cli.EnvVars("WORDTREE_DELIMITER"),
			},

			&cli.StringFlag{
				Name:      "file",
				Aliases:   []string{"f"},
				Usage:     "dictionary file; may be given as the first argument instead",
				OnlyOnce:  true,
				Validator: checkNotBlank,
				Sources:   cli.EnvVars("WORDTREE_FILE"),
			},

			&cli.BoolFlag{
				Name:     "ignore-case",
				Usage:    "match words regardless of letter case (default: false)",
				OnlyOnce: true,
				Sources:  cli.EnvVars("WORDTREE_IGNORE_CASE"),
			},

			&cli.StringFlag{
				Name:      "locale",
				Usage:     "language of prompts and messages (default: \"en\")",
				OnlyOnce:  true,
				Validator: checkLocale,
				Sources:   cli.EnvVars("WORDTREE_LOCALE"),
			},

			&cli.StringFlag{
				Name: "log-level",
				Usage: fmt.Sprintf(
					"set log level %v (default: \"warn\")",
					availableLogLevels,
				),
				OnlyOnce:  true,
				Validator: checkLogLevel,
				Sources:   cli.EnvVars("WORDTREE_LOG_LEVEL"),
			},

			&cli.IntFlag{
				Name:     "lookup-cache",
				Usage:    "number of recent translations kept in memory, 0 to disable (default: 0)",
				OnlyOnce: true,
				Validator: func(v int) error {
					return checkUint16(int64(v))
				},
				Sources: cli.EnvVars("WORDTREE_LOOKUP_CACHE"),
			},

			&cli.IntFlag{
				Name:     "max-entries",
				Usage:    "maximum number of entries to load, 0 for no limit (default: 0)",
				OnlyOnce: true,
				Validator: func(v int) error {
					return checkUint32(int64(v))
				},
				Sources: cli.EnvVars("WORDTREE_MAX_ENTRIES"),
			},

			&cli.StringFlag{
				Name: "prompt",
				Usage: fmt.Sprintf(
					"when to print prompts in translate mode %v (default: \"auto\")",
					availablePromptModes,
				),
				OnlyOnce:  true,
				Validator: checkPromptMode,
				Sources:   cli.EnvVars("WORDTREE_PROMPT"),
			},

			&cli.BoolFlag{
				Name:     "version",
				Usage:    "print version",
				Aliases:  []string{"v"},
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				fmt.Printf("wordtree %s\n", version)
				return nil
			}

			var configPath string
			finalCfg := NewConfig()
			if !cmd.Bool("clean") {
				p, err := searchTomlFile(cmd.String("config"), defaultConfigPaths())
				if err != nil {
					return err
				}

				if p != "" {
					configPath = p
					tomlCfg, err := fromTomlFile(p)
					if err != nil {
						return fmt.Errorf("error parsing toml config: %w", err)
					}
					finalCfg = finalCfg.Merge(tomlCfg)
				}
			}

			argsCfg, err := parseConfigFromArgs(cmd)
			if err != nil {
				return fmt.Errorf("error parsing config from args: %w", err)
			}
			finalCfg = finalCfg.Merge(argsCfg)

			if err := finalCfg.Validate(); err != nil {
				return err
			}

			return runFunc(ctx, configPath, finalCfg)
		},
	}

	return cmd
}

func defaultConfigPaths() []string {
	paths := []string{filepath.Join(string(os.PathSeparator), "etc", configFilename)}

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, "wordtree", configFilename))
	}

	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "wordtree", configFilename))
	}

	return paths
}

// parseConfigFromArgs only sets the options that were explicitly given, so
// that merging it over the file config keeps everything else.
func parseConfigFromArgs(cmd *cli.Command) (*Config, error) {
	cfg := &Config{
		General: &GeneralOptions{},
		Data:    &DataOptions{},
		Run:     &RunOptions{},
	}

	if cmd.IsSet("log-level") {
		cfg.General.LogLevel = ptr.FromValue(MustParseLogLevel(cmd.String("log-level")))
	}
	if cmd.IsSet("locale") {
		cfg.General.Locale = ptr.FromValue(cmd.String("locale"))
	}
	if cmd.IsSet("color") {
		cfg.General.Color = ptr.FromValue(cmd.Bool("color"))
	}

	if cmd.IsSet("file") {
		cfg.Data.File = ptr.FromValue(cmd.String("file"))
	}
	if cmd.IsSet("delimiter") {
		cfg.Data.Delimiter = ptr.FromValue(cmd.String("delimiter"))
	}
	if cmd.IsSet("ignore-case") {
		cfg.Data.IgnoreCase = ptr.FromValue(cmd.Bool("ignore-case"))
	}
	if cmd.IsSet("max-entries") {
		cfg.Data.MaxEntries = ptr.FromValue(uint32(cmd.Int("max-entries")))
	}

	if cmd.IsSet("prompt") {
		cfg.Run.Prompt = ptr.FromValue(mustParsePromptModeType(cmd.String("prompt")))
	}
	if cmd.IsSet("lookup-cache") {
		cfg.Run.LookupCache = ptr.FromValue(uint16(cmd.Int("lookup-cache")))
	}

	args := cmd.Args().Slice()
	if len(args) > 2 {
		return nil, fmt.Errorf("too many arguments: %s", strings.Join(args, " "))
	}

	if len(args) > 0 {
		if cfg.Data.File != nil {
			return nil, fmt.Errorf("data file given both as argument and with --file")
		}
		cfg.Data.File = ptr.FromValue(args[0])
	}

	if len(args) > 1 {
		if err := checkRunMode(args[1]); err != nil {
			return nil, err
		}
		cfg.Run.Mode = ptr.FromValue(mustParseRunModeType(args[1]))
	}

	return cfg, nil
}
