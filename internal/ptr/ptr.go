package ptr

// Clone returns a pointer to a copy of *x, or nil.
func Clone[T any](x *T) *T {
	if x == nil {
		return nil
	}
	v := *x
	return &v
}

// CloneOr clones x, or fallback when x is nil.
func CloneOr[T any](x *T, fallback *T) *T {
	if x == nil {
		return Clone(fallback)
	}

	return Clone(x)
}

func FromValue[T any](v T) *T {
	return &v
}

