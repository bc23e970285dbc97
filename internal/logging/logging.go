package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xvzc/wordtree/internal/session"
)

const (
	// scopeFieldName defines the key for the "scope" field in structured logs.
	scopeFieldName   = "scope"
	queryIDFieldName = "query_id"
	sourceFieldName  = "source"
)

// SetGlobalLogger configures the global zerolog.Logger. Logs go to stderr so
// that stdout only carries translations.
func SetGlobalLogger(ctx context.Context, l zerolog.Level) {
	log.Logger = NewLogger(ctx, os.Stderr, l)
}

// NewLogger creates a console logger writing to w at level l.
func NewLogger(ctx context.Context, w io.Writer, l zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		// FormatPrepare intercepts fields just before printing
		// to apply custom formatting, like adding brackets [SCOPE].
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = "[app]"
			}

			// Empty strings keep zerolog from printing <nil> for absent fields.
			if v, ok := m[queryIDFieldName].(string); !ok || v == "" {
				m[queryIDFieldName] = ""
			}

			if v, ok := m[sourceFieldName].(string); ok && v != "" {
				m[sourceFieldName] = fmt.Sprintf("%s;", v)
			} else {
				m[sourceFieldName] = ""
			}

			return nil
		},
		// The raw fields were already rendered in FormatPrepare.
		FieldsExclude: []string{
			scopeFieldName,
			queryIDFieldName,
			sourceFieldName,
		},
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			queryIDFieldName,
			scopeFieldName,
			sourceFieldName,
			zerolog.MessageFieldName,
		},
	}

	return zerolog.New(consoleWriter).
		Hook(ctxHook{}).
		Level(l).
		With().Timestamp().Ctx(ctx).Logger()
}

// WithScope is a helper for components (like the loader or the dictionary)
// to create a sub-logger with their component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// ctxHook implements the zerolog.Hook interface.
// It copies session values from the event's context, which is only present
// if .Ctx(ctx) was added to the log chain.
type ctxHook struct{}

func (h ctxHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	if id, ok := session.QueryIDFrom(ctx); ok {
		e.Str(queryIDFieldName, id)
	}

	if src, ok := session.SourceFrom(ctx); ok {
		e.Str(sourceFieldName, src)
	}
}

type joinableError interface {
	Unwrap() []error
}

// ErrorUnwrapped tries to unwrap an error and prints each error separately.
// If the error is not joined, it logs the single error normally.
func ErrorUnwrapped(logger *zerolog.Logger, msg string, err error) {
	logUnwrapped(logger, zerolog.ErrorLevel, msg, err)
}

func WarnUnwrapped(logger *zerolog.Logger, msg string, err error) {
	logUnwrapped(logger, zerolog.WarnLevel, msg, err)
}

func logUnwrapped(logger *zerolog.Logger, level zerolog.Level, msg string, err error) {
	var joinedErrs joinableError

	if errors.As(err, &joinedErrs) {
		for _, e := range joinedErrs.Unwrap() {
			logger.WithLevel(level).Err(e).Msg(msg)
		}

		return
	}

	logger.WithLevel(level).Err(err).Msg(msg)
}
