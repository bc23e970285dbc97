package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xvzc/wordtree/internal/cache"
	"github.com/xvzc/wordtree/internal/config"
	"github.com/xvzc/wordtree/internal/datastruct/tree"
	"github.com/xvzc/wordtree/internal/dictionary"
	"github.com/xvzc/wordtree/internal/display"
	"github.com/xvzc/wordtree/internal/i18n"
	"github.com/xvzc/wordtree/internal/loader"
	"github.com/xvzc/wordtree/internal/logging"
	"github.com/xvzc/wordtree/internal/repl"
	"github.com/xvzc/wordtree/version"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "error loading .env: %s\n", err)
		os.Exit(1)
	}

	cmd := config.CreateCommand(runApp, version.String())
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger := logging.WithScope(log.Logger, "MAIN")
		logging.ErrorUnwrapped(&logger, "failed to run", err)
		os.Exit(1)
	}
}

func runApp(ctx context.Context, configPath string, cfg *config.Config) error {
	logging.SetGlobalLogger(ctx, *cfg.General.LogLevel)

	logger := logging.WithScope(log.Logger, "MAIN")
	if configPath != "" {
		logger.Info().Msgf("config file loaded from %s", configPath)
	}

	return run(ctx, cfg, os.Stdin, os.Stdout, log.Logger)
}

func run(
	ctx context.Context,
	cfg *config.Config,
	in io.Reader,
	out io.Writer,
	baseLogger zerolog.Logger,
) error {
	logger := logging.WithScope(baseLogger, "MAIN")

	tr := i18n.NewTranslator(*cfg.General.Locale, logging.WithScope(baseLogger, "I18N"))
	printer := display.NewPrinter(out, *cfg.Data.Delimiter, *cfg.General.Color)
	dict := createDictionary(cfg, logging.WithScope(baseLogger, "DICT"))

	path := *cfg.Data.File
	logger.Info().Msg(tr.T(i18n.ReadingFile, map[string]any{"Path": path}))

	stats, err := loader.LoadFile(
		ctx,
		path,
		dict,
		loader.WithDelimiter(*cfg.Data.Delimiter),
		loader.WithLogger(logging.WithScope(baseLogger, "LOADER")),
	)
	if err != nil {
		return fmt.Errorf("unable to load %s: %w", path, err)
	}

	logger.Info().
		Int("height", dict.Height()).
		Msg(tr.T(i18n.LoadSummary, map[string]any{"Count": stats.Loaded}))

	if *cfg.Run.Mode == config.RunModeDisplay {
		if err := dict.Display(printer.Visit); err != nil {
			if errors.Is(err, tree.ErrEmptyCollection) {
				printer.Message(tr.T(i18n.EmptyCollection, nil))
			}
			return err
		}

		return nil
	}

	var getter repl.Getter = dict
	if n := *cfg.Run.LookupCache; n > 0 {
		getter = repl.NewCachedGetter(dict, cache.NewLRUCache[tree.Entry](int(n)))
	}

	prompt := repl.ShouldPrompt(promptMode(*cfg.Run.Prompt), in)
	session := repl.NewSession(getter, printer, tr, prompt, logging.WithScope(baseLogger, "REPL"))

	return session.Run(ctx, in)
}

func createDictionary(cfg *config.Config, logger zerolog.Logger) *dictionary.Dictionary {
	var opts []dictionary.Option
	if *cfg.Data.IgnoreCase {
		opts = append(opts, dictionary.WithIgnoreCase())
	}
	if n := *cfg.Data.MaxEntries; n > 0 {
		opts = append(opts, dictionary.WithMaxEntries(int(n)))
	}

	return dictionary.New(logger, opts...)
}

func promptMode(t config.PromptModeType) repl.PromptMode {
	switch t {
	case config.PromptModeAlways:
		return repl.PromptAlways
	case config.PromptModeNever:
		return repl.PromptNever
	default:
		return repl.PromptAuto
	}
}
