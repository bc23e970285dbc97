package dictionary

import (
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/xvzc/wordtree/internal/datastruct/tree"
	"golang.org/x/text/cases"
)

// Dictionary maps keys to values on top of a single ordered tree.
// The tree is created by the first Put. Errors keep the tree's error kinds,
// so callers can test them with errors.Is against the tree package's
// sentinels. A Dictionary is not safe for concurrent use.
type Dictionary struct {
	logger zerolog.Logger

	tree     *tree.Tree
	treeOpts []tree.Option
}

type Option func(*Dictionary)

// WithIgnoreCase orders and matches keys by their Unicode case folding.
// Keys are stored as given.
func WithIgnoreCase() Option {
	return func(d *Dictionary) {
		d.treeOpts = append(d.treeOpts, tree.WithCompare(foldCompare()))
	}
}

// WithMaxEntries limits the number of entries. 0 means no limit.
func WithMaxEntries(n int) Option {
	return func(d *Dictionary) {
		d.treeOpts = append(d.treeOpts, tree.WithCapacity(n))
	}
}

func New(logger zerolog.Logger, opts ...Option) *Dictionary {
	d := &Dictionary{logger: logger}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// foldCompare orders keys by their case folding. ASCII prefixes are
// compared in place; a Caser is only used once a non-ASCII byte is reached.
func foldCompare() func(a, b string) int {
	caser := cases.Fold()
	return func(a, b string) int {
		if r, ok := compareFoldASCII(a, b); ok {
			return r
		}

		return strings.Compare(caser.String(a), caser.String(b))
	}
}

// compareFoldASCII compares a and b as long as both stay ASCII. It reports
// false when it meets a non-ASCII byte before the order is decided.
func compareFoldASCII(a, b string) (int, bool) {
	n := min(len(a), len(b))
	for i := range n {
		ca, cb := a[i], b[i]
		if ca >= utf8.RuneSelf || cb >= utf8.RuneSelf {
			return 0, false
		}

		ca, cb = lowerASCII(ca), lowerASCII(cb)
		if ca != cb {
			return cmp.Compare(ca, cb), true
		}
	}

	// The shorter key is a folded prefix of the longer one, whose remaining
	// runes never fold to nothing.
	return cmp.Compare(len(a), len(b)), true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

// Put stores e. It fails if the key is already present or the dictionary
// is full.
func (d *Dictionary) Put(e tree.Entry) error {
	if d.tree == nil {
		d.tree = tree.New(d.treeOpts...)
		d.logger.Debug().Msg("created backing tree")
	}

	if err := d.tree.Insert(e); err != nil {
		return fmt.Errorf("dictionary: put %q: %w", e.Key, err)
	}

	d.logger.Trace().Str("key", e.Key).Int("len", d.tree.Len()).Msg("put")

	return nil
}

// Get returns the stored entry whose key matches the probe.
func (d *Dictionary) Get(probe tree.Entry) (tree.Entry, error) {
	if d.tree == nil {
		return tree.Entry{}, fmt.Errorf("dictionary: get %q: %w", probe.Key, tree.ErrEmptyCollection)
	}

	e, err := d.tree.Retrieve(probe)
	if err != nil {
		return tree.Entry{}, fmt.Errorf("dictionary: get %q: %w", probe.Key, err)
	}

	return e, nil
}

// Display calls visit for every entry in ascending key order.
func (d *Dictionary) Display(visit func(tree.Entry)) error {
	if d.tree == nil {
		return fmt.Errorf("dictionary: display: %w", tree.ErrEmptyCollection)
	}

	if err := d.tree.TraverseInOrder(visit); err != nil {
		return fmt.Errorf("dictionary: display: %w", err)
	}

	return nil
}

func (d *Dictionary) Len() int {
	if d.tree == nil {
		return 0
	}

	return d.tree.Len()
}

// Height reports the depth of the backing tree.
func (d *Dictionary) Height() int {
	if d.tree == nil {
		return 0
	}

	return d.tree.Height()
}
