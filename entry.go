package sepstr

import "slices"

// EntryKind identifies the variant held by an [Entry].
type EntryKind int

const (
	KindValue       EntryKind = iota // a plain value
	KindKeyed                        // a key and its value
	KindStartOfLine                  // row start marker
	KindEndOfLine                    // row end marker
)

// Entry is one item of an encode sequence: a plain value, a keyed value or
// a row boundary marker. The zero Entry is a plain nil value.
type Entry struct {
	kind  EntryKind
	key   string
	value any
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value any
}

// Value returns a plain value entry. A nil v is a null value.
func Value(v any) Entry { return Entry{kind: KindValue, value: v} }

// Keyed returns an entry rendered as key, key-value separator, value.
func Keyed(key string, v any) Entry { return Entry{kind: KindKeyed, key: key, value: v} }

// StartOfLine returns the row start marker.
func StartOfLine() Entry { return Entry{kind: KindStartOfLine} }

// EndOfLine returns the row end marker.
func EndOfLine() Entry { return Entry{kind: KindEndOfLine} }

// Kind returns the entry variant.
func (e Entry) Kind() EntryKind { return e.kind }

// Key returns the key of a keyed entry and "" otherwise.
func (e Entry) Key() string { return e.key }

// Value returns the entry's value, nil for markers.
func (e Entry) Value() any { return e.value }

// IsMarker reports whether the entry is a row boundary.
func (e Entry) IsMarker() bool {
	return e.kind == KindStartOfLine || e.kind == KindEndOfLine
}

// Values wraps each element in a plain value entry.
func Values[T any](vs ...T) []Entry {
	out := make([]Entry, len(vs))
	for i, v := range vs {
		out[i] = Value(v)
	}
	return out
}

// Line returns the values as one row: start marker, values, end marker.
func Line(vs ...any) []Entry {
	out := make([]Entry, 0, len(vs)+2)
	out = append(out, StartOfLine())
	for _, v := range vs {
		out = append(out, Value(v))
	}
	return append(out, EndOfLine())
}

// Pairs converts key-value pairs into keyed entries, preserving order.
func Pairs(kvs ...KeyValue) []Entry {
	out := make([]Entry, len(kvs))
	for i, kv := range kvs {
		out[i] = Keyed(kv.Key, kv.Value)
	}
	return out
}

// Map converts m into keyed entries ordered by key.
func Map[V any](m map[string]V) []Entry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Keyed(k, m[k])
	}
	return out
}
