package sepstr

import (
	"io"
	"reflect"
	"slices"
	"sync"
)

// Encoder accumulates entries and encodes them under a fixed
// configuration. It is safe for concurrent use; each call holds the
// encoder's lock for its whole duration.
type Encoder struct {
	mu      sync.Mutex
	b       Builder
	entries []Entry
}

func newEncoder(b Builder) *Encoder {
	return &Encoder{b: b}
}

// Config returns the configuration in use.
func (e *Encoder) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.b.cfg
}

// Builder returns a Builder holding a copy of the encoder's configuration.
func (e *Encoder) Builder() Builder {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.b
}

// Decoder returns a Decoder for the encoder's configuration.
func (e *Encoder) Decoder() *Decoder {
	return e.Builder().Decoder()
}

// Add appends plain values.
func (e *Encoder) Add(values ...any) *Encoder {
	return e.AddAll(Values(values...))
}

// AddKeyed appends a keyed value.
func (e *Encoder) AddKeyed(key string, value any) *Encoder {
	return e.AddAll([]Entry{Keyed(key, value)})
}

// AddPairs appends keyed values in order.
func (e *Encoder) AddPairs(kvs ...KeyValue) *Encoder {
	return e.AddAll(Pairs(kvs...))
}

// AddAll appends entries as given.
func (e *Encoder) AddAll(entries []Entry) *Encoder {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = append(e.entries, entries...)
	return e
}

// AddLine appends values as one row. If no line end is configured, the
// builder's default line end is adopted first.
func (e *Encoder) AddLine(values ...any) *Encoder {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.b.cfg.LineEnd == "" {
		e.b.cfg.LineEnd = e.b.defaultLineEnd
	}
	e.entries = append(e.entries, Line(values...)...)
	return e
}

// Insert places plain values at index. An index past the end appends.
func (e *Encoder) Insert(index int, values ...any) *Encoder {
	e.mu.Lock()
	defer e.mu.Unlock()
	index = max(0, min(index, len(e.entries)))
	e.entries = slices.Insert(e.entries, index, Values(values...)...)
	return e
}

// Remove deletes the entry at index. Out of range indexes are ignored.
func (e *Encoder) Remove(index int) *Encoder {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index >= 0 && index < len(e.entries) {
		e.entries = slices.Delete(e.entries, index, index+1)
	}
	return e
}

// RemoveValues deletes every plain entry whose value equals one of values.
// Keyed entries and row markers are kept.
func (e *Encoder) RemoveValues(values ...any) *Encoder {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = slices.DeleteFunc(e.entries, func(entry Entry) bool {
		if entry.kind != KindValue {
			return false
		}
		return slices.ContainsFunc(values, func(v any) bool {
			return reflect.DeepEqual(entry.value, v)
		})
	})
	return e
}

// Reset discards all entries.
func (e *Encoder) Reset() *Encoder {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = nil
	return e
}

// Len returns the number of entries, markers included.
func (e *Encoder) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// IsEmpty reports whether no entries have been added.
func (e *Encoder) IsEmpty() bool { return e.Len() == 0 }

// Entries returns a copy of the accumulated entries.
func (e *Encoder) Entries() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.entries)
}

// Encode renders the accumulated entries.
func (e *Encoder) Encode() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Encode(e.b.cfg, e.entries)
}

// EncodeValues renders values under the encoder's configuration without
// touching the accumulated entries.
func (e *Encoder) EncodeValues(values ...any) string {
	return Encode(e.Config(), Values(values...))
}

// String returns the encoded entries.
func (e *Encoder) String() string { return e.Encode() }

// WriteTo writes the encoded entries to w.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.Encode())
	return int64(n), err
}

// Decoder splits encoded strings under a fixed configuration. A Decoder
// holds no mutable state and is safe for concurrent use.
type Decoder struct {
	b Builder
}

// Config returns the configuration in use.
func (d *Decoder) Config() Config { return d.b.cfg }

// Builder returns a Builder holding a copy of the decoder's configuration.
func (d *Decoder) Builder() Builder { return d.b }

// Encoder returns an empty Encoder for the decoder's configuration.
func (d *Decoder) Encoder() *Encoder { return d.b.Encoder() }

// Decode returns the flat values of s.
func (d *Decoder) Decode(s string) []string { return ParseToList(d.b.cfg, s) }

// DecodeToLines returns the values of s grouped into rows.
func (d *Decoder) DecodeToLines(s string) [][]string { return ParseToLines(d.b.cfg, s) }

// DecodeToMap returns the key-value pairs held in s.
func (d *Decoder) DecodeToMap(s string) map[string]string { return ParseToMap(d.b.cfg, s) }
