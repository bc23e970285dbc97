package repl

import (
	"github.com/xvzc/wordtree/internal/cache"
	"github.com/xvzc/wordtree/internal/datastruct/tree"
)

var _ Getter = (*CachedGetter)(nil)

// CachedGetter remembers recent successful lookups. Misses always go to the
// underlying Getter.
type CachedGetter struct {
	next  Getter
	cache cache.Cache[tree.Entry]
}

func NewCachedGetter(next Getter, c cache.Cache[tree.Entry]) *CachedGetter {
	return &CachedGetter{next: next, cache: c}
}

func (g *CachedGetter) Get(probe tree.Entry) (tree.Entry, error) {
	if e, ok := g.cache.Get(probe.Key); ok {
		return e, nil
	}

	e, err := g.next.Get(probe)
	if err != nil {
		return tree.Entry{}, err
	}

	g.cache.Set(probe.Key, e)
	return e, nil
}
