package tree

import (
	"fmt"
	"iter"
	"strings"
)

var _ SearchTree = (*Tree)(nil)

// node owns its entry and both of its children. There are no parent links.
type node struct {
	entry Entry
	left  *node
	right *node
}

// Tree is an unbalanced binary search tree of entries ordered by key.
// Duplicate keys are rejected. The zero value is an empty tree ordered by
// strings.Compare. A Tree is not safe for concurrent use.
type Tree struct {
	root     *node
	count    int
	compare  func(a, b string) int
	capacity int
}

type Option func(*Tree)

// WithCompare replaces the key order. compare must define a strict total
// order and return a negative number, zero or a positive number like
// strings.Compare.
func WithCompare(compare func(a, b string) int) Option {
	return func(t *Tree) {
		if compare != nil {
			t.compare = compare
		}
	}
}

// WithCapacity limits the number of entries the tree accepts.
// Inserting beyond the limit fails with ErrInsertionFailed.
// A value of 0 or less means no limit.
func WithCapacity(n int) Option {
	return func(t *Tree) {
		if n > 0 {
			t.capacity = n
		}
	}
}

// New creates an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{compare: strings.Compare}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Tree) cmp(a, b string) int {
	if t.compare == nil {
		return strings.Compare(a, b)
	}
	return t.compare(a, b)
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int {
	return t.count
}

// Insert adds e at its ordered position. It fails with ErrDuplicateKey if an
// entry with an equal key is already stored and with ErrInsertionFailed if
// the tree is full. The tree is left unmodified on failure.
func (t *Tree) Insert(e Entry) error {
	// link is the child slot the new node will occupy.
	link := &t.root
	for *link != nil {
		cur := *link
		switch c := t.cmp(e.Key, cur.entry.Key); {
		case c == 0:
			return fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		case c < 0:
			link = &cur.left
		default:
			link = &cur.right
		}
	}

	if t.capacity > 0 && t.count >= t.capacity {
		return fmt.Errorf(
			"%w: %q: capacity of %d entries reached",
			ErrInsertionFailed, e.Key, t.capacity,
		)
	}

	*link = &node{entry: e}
	t.count++

	return nil
}

// Retrieve returns a copy of the stored entry whose key equals probe.Key.
// The probe's value is ignored.
func (t *Tree) Retrieve(probe Entry) (Entry, error) {
	if t.count == 0 {
		return Entry{}, ErrEmptyCollection
	}

	cur := t.root
	for cur != nil {
		switch c := t.cmp(probe.Key, cur.entry.Key); {
		case c == 0:
			return cur.entry, nil
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrKeyNotFound, probe.Key)
}

// TraverseInOrder calls visit exactly once for every entry, in ascending key
// order. visit must not modify the tree.
func (t *Tree) TraverseInOrder(visit func(Entry)) error {
	if t.count == 0 {
		return ErrEmptyCollection
	}

	t.ascend(func(e Entry) bool {
		visit(e)
		return true
	})

	return nil
}

// All returns an iterator over the entries in ascending key order.
// An empty tree yields nothing.
func (t *Tree) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		t.ascend(yield)
	}
}

// ascend performs an in-order walk on an explicit stack so that a degenerate
// tree cannot exhaust the goroutine stack. It stops once yield returns false.
func (t *Tree) ascend(yield func(Entry) bool) {
	var stack []*node
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}

		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !yield(cur.entry) {
			return
		}

		cur = cur.right
	}
}

// Clone returns a deep copy of t that shares no nodes with it.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		count:    t.count,
		compare:  t.compare,
		capacity: t.capacity,
	}

	if t.root == nil {
		return c
	}

	type pending struct {
		src *node
		dst **node
	}

	stack := []pending{{src: t.root, dst: &c.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &node{entry: p.src.entry}
		*p.dst = n

		if p.src.left != nil {
			stack = append(stack, pending{src: p.src.left, dst: &n.left})
		}
		if p.src.right != nil {
			stack = append(stack, pending{src: p.src.right, dst: &n.right})
		}
	}

	return c
}

// Clear releases every node, children before their parent, and leaves t
// empty.
func (t *Tree) Clear() {
	if t.root == nil {
		return
	}

	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]

		if child := n.left; child != nil {
			n.left = nil
			stack = append(stack, child)
			continue
		}
		if child := n.right; child != nil {
			n.right = nil
			stack = append(stack, child)
			continue
		}

		// Both subtrees are gone, so n can be released.
		n.entry = Entry{}
		stack = stack[:len(stack)-1]
	}

	t.root = nil
	t.count = 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (t *Tree) Height() int {
	if t.root == nil {
		return 0
	}

	height := 0
	level := []*node{t.root}
	for len(level) > 0 {
		height++

		var next []*node
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return height
}
