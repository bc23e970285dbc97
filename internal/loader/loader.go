package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xvzc/wordtree/internal/datastruct/tree"
	"github.com/xvzc/wordtree/internal/logging"
	"github.com/xvzc/wordtree/internal/session"
)

const DefaultDelimiter = ":"

// Putter receives the entries parsed from the input.
type Putter interface {
	Put(e tree.Entry) error
}

// Stats summarizes a load.
type Stats struct {
	Lines      int
	Loaded     int
	Duplicates int
	Rejected   int
	Malformed  int
}

type options struct {
	delimiter string
	name      string
	logger    zerolog.Logger
}

type Option func(*options)

// WithDelimiter sets the separator between key and value.
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		if delimiter != "" {
			o.delimiter = delimiter
		}
	}
}

// WithName sets the input name used in log positions.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// LoadFile opens path and loads it into d.
func LoadFile(ctx context.Context, path string, d Putter, opts ...Option) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	opts = append([]Option{WithName(filepath.Base(path))}, opts...)
	return Load(ctx, f, d, opts...)
}

// Load reads "key<delimiter>value" lines from r and puts each into d.
// Lines without a delimiter or with an empty key are skipped, and so are
// entries that d rejects as duplicates or for lack of room. Any other Put
// error stops the load. Lines may be of any length.
func Load(ctx context.Context, r io.Reader, d Putter, opts ...Option) (Stats, error) {
	o := &options{
		delimiter: DefaultDelimiter,
		name:      "<input>",
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	var stats Stats
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, fmt.Errorf("loader: reading %s: %w", o.name, readErr)
		}
		if line == "" && readErr != nil {
			break
		}

		if err := ctx.Err(); err != nil {
			return stats, err
		}

		stats.Lines++
		lineCtx := session.WithSource(ctx, fmt.Sprintf("%s:%d", o.name, stats.Lines))

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line == "" {
			continue
		}

		e, ok := ParseLine(line, o.delimiter)
		if !ok {
			stats.Malformed++
			o.logger.Warn().Ctx(lineCtx).Msgf("malformed line %q", line)
			continue
		}

		err := d.Put(e)
		switch {
		case err == nil:
			stats.Loaded++
		case errors.Is(err, tree.ErrDuplicateKey):
			stats.Duplicates++
			o.logger.Warn().Ctx(lineCtx).Msgf("element already exists, put failed for %q", e.Key)
		case errors.Is(err, tree.ErrInsertionFailed):
			stats.Rejected++
			lineLogger := o.logger.With().Ctx(lineCtx).Logger()
			logging.WarnUnwrapped(&lineLogger, "put failed", err)
		default:
			return stats, fmt.Errorf("loader: %s:%d: %w", o.name, stats.Lines, err)
		}
	}

	o.logger.Debug().
		Int("lines", stats.Lines).
		Int("loaded", stats.Loaded).
		Int("duplicates", stats.Duplicates).
		Int("rejected", stats.Rejected).
		Int("malformed", stats.Malformed).
		Msgf("loaded %s", o.name)

	return stats, nil
}

// ParseLine splits line at the first delimiter. The value keeps any further
// delimiters.
func ParseLine(line, delimiter string) (tree.Entry, bool) {
	key, value, found := strings.Cut(line, delimiter)
	if !found || key == "" {
		return tree.Entry{}, false
	}

	return tree.NewEntry(key, value), true
}
