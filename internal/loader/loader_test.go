package loader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvzc/wordtree/internal/datastruct/tree"
	"github.com/xvzc/wordtree/internal/dictionary"
)

func TestParseLine(t *testing.T) {
	tcs := []struct {
		name      string
		line      string
		delimiter string
		expect    tree.Entry
		expectOK  bool
	}{
		{"pair", "apple:pomme", ":", tree.NewEntry("apple", "pomme"), true},
		{"empty value", "apple:", ":", tree.NewEntry("apple", ""), true},
		{"value keeps delimiter", "time:12:30", ":", tree.NewEntry("time", "12:30"), true},
		{"no delimiter", "apple", ":", tree.Entry{}, false},
		{"empty key", ":pomme", ":", tree.Entry{}, false},
		{"other delimiter", "apple=pomme", "=", tree.NewEntry("apple", "pomme"), true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := ParseLine(tc.line, tc.delimiter)
			assert.Equal(t, tc.expectOK, ok)
			assert.Equal(t, tc.expect, e)
		})
	}
}

func TestLoad(t *testing.T) {
	input := strings.Join([]string{
		"apple:pomme",
		"banana:banane\r",
		"",
		"broken line",
		"cherry:cerise",
		"apple:x",
	}, "\n")

	d := dictionary.New(zerolog.Nop())
	stats, err := Load(context.Background(), strings.NewReader(input), d)
	require.NoError(t, err)

	assert.Equal(t, Stats{Lines: 6, Loaded: 3, Duplicates: 1, Malformed: 1}, stats)
	assert.Equal(t, 3, d.Len())

	got, err := d.Get(tree.NewProbe("banana"))
	require.NoError(t, err)
	assert.Equal(t, "banane", got.Value)

	got, err = d.Get(tree.NewProbe("apple"))
	require.NoError(t, err)
	assert.Equal(t, "pomme", got.Value)
}

func TestLoad_Rejected(t *testing.T) {
	var buf bytes.Buffer
	d := dictionary.New(zerolog.Nop(), dictionary.WithMaxEntries(1))
	stats, err := Load(
		context.Background(),
		strings.NewReader("a=1\nb=2\n"),
		d,
		WithDelimiter("="),
		WithLogger(zerolog.New(&buf)),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Loaded)
	assert.Equal(t, 1, stats.Rejected)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "put failed")
	assert.Contains(t, buf.String(), tree.ErrInsertionFailed.Error())
}

func TestLoad_LongLines(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	input := "apple:pomme\nlong:" + long + "\nbanana:banane"

	d := dictionary.New(zerolog.Nop())
	stats, err := Load(context.Background(), strings.NewReader(input), d)
	require.NoError(t, err)

	assert.Equal(t, Stats{Lines: 3, Loaded: 3}, stats)

	got, err := d.Get(tree.NewProbe("long"))
	require.NoError(t, err)
	assert.Len(t, got.Value, len(long))

	got, err = d.Get(tree.NewProbe("banana"))
	require.NoError(t, err)
	assert.Equal(t, "banane", got.Value)
}

func TestLoad_ReadError(t *testing.T) {
	boom := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("apple:pomme\n"), iotest.ErrReader(boom))

	d := dictionary.New(zerolog.Nop())
	stats, err := Load(context.Background(), r, d, WithName("words.txt"))

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "words.txt")
	assert.Equal(t, 1, stats.Loaded)
}

type failingPutter struct{ err error }

func (p failingPutter) Put(tree.Entry) error { return p.err }

func TestLoad_AbortsOnUnexpectedError(t *testing.T) {
	boom := errors.New("boom")
	stats, err := Load(
		context.Background(),
		strings.NewReader("a:1\nb:2\n"),
		failingPutter{err: boom},
		WithName("words.txt"),
	)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "words.txt:1")
	assert.Equal(t, 1, stats.Lines)
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := dictionary.New(zerolog.Nop())
	_, err := Load(ctx, strings.NewReader("a:1\n"), d)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, d.Len())
}

func TestLoadFile(t *testing.T) {
	tcs := []struct {
		name   string
		setup  func(t *testing.T) string
		assert func(t *testing.T, stats Stats, err error)
	}{
		{
			name: "existing file",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "myDataFile.txt")
				err := os.WriteFile(path, []byte("dog:chien\ncat:chat\n"), 0o644)
				require.NoError(t, err)
				return path
			},
			assert: func(t *testing.T, stats Stats, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, stats.Loaded)
			},
		},
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nonexistent.txt")
			},
			assert: func(t *testing.T, stats Stats, err error) {
				assert.ErrorIs(t, err, fs.ErrNotExist)
				assert.Zero(t, stats)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			path := tc.setup(t)
			stats, err := LoadFile(context.Background(), path, dictionary.New(zerolog.Nop()))
			tc.assert(t, stats, err)
		})
	}
}
