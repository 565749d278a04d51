package sepstr

import (
	"io"
	"iter"
)

// Write encodes entries under cfg and writes the result to w.
func Write(w io.Writer, cfg Config, entries ...Entry) error {
	_, err := io.WriteString(w, Encode(cfg, entries))
	return err
}

// WriteIter collects entries from seq, encodes them and writes the result
// to w. The sequence is consumed in full before anything is written
// because loop handling depends on the last value.
func WriteIter(w io.Writer, cfg Config, seq iter.Seq[Entry]) error {
	var entries []Entry
	for e := range seq {
		entries = append(entries, e)
	}
	return Write(w, cfg, entries...)
}

// WriteChan encodes entries received from ch until it is closed.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, cfg Config, ch <-chan Entry) error {
	return WriteIter(w, cfg, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
