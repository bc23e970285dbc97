package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xvzc/wordtree/internal/datastruct/tree"
	"github.com/xvzc/wordtree/internal/display"
	"github.com/xvzc/wordtree/internal/i18n"
	"github.com/xvzc/wordtree/internal/session"
	"golang.org/x/term"
)

// Getter looks up a stored entry by its key.
type Getter interface {
	Get(probe tree.Entry) (tree.Entry, error)
}

type PromptMode string

const (
	PromptAuto   PromptMode = "auto"
	PromptAlways PromptMode = "always"
	PromptNever  PromptMode = "never"
)

// Session reads one word per line and prints its translation.
type Session struct {
	dict    Getter
	printer *display.Printer
	tr      *i18n.Translator
	prompt  bool
	logger  zerolog.Logger
}

func NewSession(
	dict Getter,
	printer *display.Printer,
	tr *i18n.Translator,
	prompt bool,
	logger zerolog.Logger,
) *Session {
	return &Session{
		dict:    dict,
		printer: printer,
		tr:      tr,
		prompt:  prompt,
		logger:  logger,
	}
}

// ShouldPrompt resolves mode against the input. In auto mode prompts are
// shown only when in is an interactive terminal.
func ShouldPrompt(mode PromptMode, in io.Reader) bool {
	switch mode {
	case PromptAlways:
		return true
	case PromptNever:
		return false
	}

	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run answers lookups until in is exhausted or ctx is canceled.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	br := bufio.NewReader(in)

	s.showPrompt(i18n.PromptFirst)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("repl: reading input: %w", readErr)
		}
		if line == "" && readErr != nil {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		word := strings.TrimSpace(line)
		if word != "" {
			if err := s.lookup(session.WithNewQueryID(ctx), word); err != nil {
				return err
			}
		}

		s.showPrompt(i18n.PromptNext)
	}
}

func (s *Session) lookup(ctx context.Context, word string) error {
	e, err := s.dict.Get(tree.NewProbe(word))
	switch {
	case err == nil:
		s.logger.Debug().Ctx(ctx).Msgf("found %q", word)
		s.printer.Visit(e)
	case errors.Is(err, tree.ErrKeyNotFound):
		s.logger.Debug().Ctx(ctx).Msgf("no translation for %q", word)
		s.printer.Message(s.tr.T(i18n.NotFound, nil))
	case errors.Is(err, tree.ErrEmptyCollection):
		s.logger.Debug().Ctx(ctx).Msg("lookup on empty dictionary")
		s.printer.Message(s.tr.T(i18n.EmptyCollection, nil))
	default:
		return fmt.Errorf("repl: lookup %q: %w", word, err)
	}

	return nil
}

func (s *Session) showPrompt(id string) {
	if s.prompt {
		s.printer.Prompt(s.tr.T(id, nil))
	}
}
