package tree

// Entry is a key-value pair. Ordering and equality only consider Key.
type Entry struct {
	Key   string
	Value string
}

func NewEntry(key, value string) Entry {
	return Entry{Key: key, Value: value}
}

// NewProbe builds an entry that only carries a lookup key.
func NewProbe(key string) Entry {
	return Entry{Key: key}
}

// String renders the entry in its file form, "key:value".
func (e Entry) String() string {
	return e.Key + ":" + e.Value
}
