package session

import (
	"context"
	"math/rand/v2"
)

// We define unexported key types to prevent key collisions with other packages.
type (
	queryIDCtxKey struct{}
	sourceCtxKey  struct{}
)

// WithNewQueryID returns a context carrying a fresh random query ID.
// A query ID already present in ctx is replaced, since every lookup is its
// own query.
func WithNewQueryID(ctx context.Context) context.Context {
	return context.WithValue(ctx, queryIDCtxKey{}, generateQueryID())
}

// QueryIDFrom extracts a query ID string from the context, if one exists.
func QueryIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(queryIDCtxKey{}).(string)
	return id, ok
}

// WithSource returns a new context carrying the input position being
// processed, e.g. "words.txt:12".
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceCtxKey{}, source)
}

// SourceFrom extracts the input position from the context, if one exists.
func SourceFrom(ctx context.Context) (string, bool) {
	source, ok := ctx.Value(sourceCtxKey{}).(string)
	return source, ok
}

// generateQueryID creates a random ID of 16 lowercase hex characters.
func generateQueryID() string {
	b := make([]byte, 16)

	q := rand.Uint64()
	for i := 15; i >= 0; i-- {
		r := uint8(q & 0xF)
		q >>= 4
		if r > 9 {
			r += 0x27 // 'a' - 10
		}
		b[i] = r + 0x30 // '0'
	}

	return string(b)
}
