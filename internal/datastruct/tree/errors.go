package tree

import "errors"

var (
	ErrEmptyCollection = errors.New("collection is empty")
	ErrKeyNotFound     = errors.New("key not found")
	ErrDuplicateKey    = errors.New("key already exists")
	ErrInsertionFailed = errors.New("unable to insert")
)
