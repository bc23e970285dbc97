package tree

import "iter"

// SearchTree defines the operations of an ordered, duplicate-free collection
// of entries.
type SearchTree interface {
	// Insert adds e unless an entry with an equal key is already stored.
	Insert(e Entry) error
	// Retrieve returns the stored entry whose key equals the probe's key.
	Retrieve(probe Entry) (Entry, error)
	// TraverseInOrder calls visit once per entry in ascending key order.
	TraverseInOrder(visit func(Entry)) error
	// All yields the entries in ascending key order.
	All() iter.Seq[Entry]
	// Len returns the number of stored entries.
	Len() int
}
