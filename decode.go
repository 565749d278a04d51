package sepstr

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Parse splits s into values under cfg and also groups them into rows.
//
// Parse never fails: unterminated quotes or a dangling escape consume the
// rest of the input as part of the current value. Empty input yields no
// values and no rows. Any other input yields at least one, possibly empty,
// value, because whatever remains after the last terminator is a value.
// A trailing row made only of that empty remainder is not reported in
// lines.
func Parse(cfg Config, s string) (values []string, lines [][]string) {
	if s == "" {
		return []string{}, [][]string{}
	}
	sc := newScanner(cfg)
	sc.scan(strip(cfg, s))
	return sc.values, sc.lines
}

// ParseToList returns the flat values of s.
func ParseToList(cfg Config, s string) []string {
	values, _ := Parse(cfg, s)
	return values
}

// ParseToLines returns the values of s grouped into rows.
func ParseToLines(cfg Config, s string) [][]string {
	_, lines := Parse(cfg, s)
	return lines
}

// ParseToMap decodes s and splits every value on the key-value separator.
// A value without the separator maps to "". A value holding the separator
// more than once is dropped. Later keys overwrite earlier ones.
func ParseToMap(cfg Config, s string) map[string]string {
	out := make(map[string]string)
	for _, v := range ParseToList(cfg, s) {
		if cfg.KeyValueSeparator == "" {
			out[v] = ""
			continue
		}
		parts := splitTrimmed(v, cfg.KeyValueSeparator)
		switch len(parts) {
		case 1:
			out[parts[0]] = ""
		case 2:
			out[parts[0]] = parts[1]
		}
	}
	return out
}

// DecodeIter yields the flat values of s one at a time.
func DecodeIter(cfg Config, s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range ParseToList(cfg, s) {
			if !yield(v) {
				return
			}
		}
	}
}

// splitTrimmed splits s on sep and drops trailing empty parts, so "k="
// yields just the key.
func splitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// strip removes a literal leading prefix and trailing suffix. The match is
// not escape-aware.
func strip(cfg Config, s string) string {
	if cfg.Prefix != "" {
		s = strings.TrimPrefix(s, cfg.Prefix)
	}
	if cfg.Suffix != "" {
		s = strings.TrimSuffix(s, cfg.Suffix)
	}
	return s
}

type scanner struct {
	cfg Config

	inValue  bool
	inQuotes bool
	inEscape bool
	quoted   bool // current value opened a quote

	val    strings.Builder
	line   []string
	values []string
	lines  [][]string
	seen   map[string]struct{}
}

func newScanner(cfg Config) *scanner {
	sc := &scanner{
		cfg:    cfg,
		values: []string{},
		lines:  [][]string{},
	}
	if cfg.UniqueValuesOnly {
		sc.seen = make(map[string]struct{})
	}
	return sc
}

// scan runs the state machine over s. At each position the first matching
// rule wins, in this order: escaped character, escape start, line start,
// quote start, quote end, separator, line end, space, anything else.
func (sc *scanner) scan(s string) {
	cfg := sc.cfg
	symmetric := cfg.HasSymmetricWrapping()

	i := 0
	for i < len(s) {
		rest := s[i:]
		switch {
		case sc.inEscape:
			r, size := utf8.DecodeRuneInString(rest)
			sc.val.WriteRune(r)
			sc.inValue = true
			sc.inEscape = false
			i += size

		case cfg.Escape != "" && strings.HasPrefix(rest, cfg.Escape):
			sc.inEscape = true
			i += len(cfg.Escape)

		case cfg.LineStart != "" && !sc.inQuotes && !sc.inValue && strings.HasPrefix(rest, cfg.LineStart):
			i += len(cfg.LineStart)

		case cfg.WrapBefore != "" && strings.HasPrefix(rest, cfg.WrapBefore):
			switch {
			case symmetric && sc.inQuotes:
				sc.inQuotes = false
				if cfg.Separator == "" {
					sc.finishValue()
				}
			case !sc.inQuotes:
				sc.inQuotes = true
				sc.quoted = true
			}
			i += len(cfg.WrapBefore)

		case cfg.WrapAfter != "" && strings.HasPrefix(rest, cfg.WrapAfter):
			if sc.inQuotes {
				sc.inQuotes = false
			}
			if cfg.Separator == "" {
				sc.finishValue()
			}
			i += len(cfg.WrapAfter)

		case cfg.Separator != "" && strings.HasPrefix(rest, cfg.Separator):
			if sc.inQuotes {
				sc.val.WriteString(cfg.Separator)
				sc.inValue = true
			} else {
				// Outside a value the accumulator is empty, so this also
				// covers a repeated separator producing an empty value.
				sc.finishValue()
			}
			i += len(cfg.Separator)

		case cfg.LineEnd != "" && !sc.inQuotes && strings.HasPrefix(rest, cfg.LineEnd):
			// Without a separator the closing quote already finished the
			// last cell of the row.
			if cfg.Separator != "" || sc.pending() {
				sc.finishValue()
			}
			sc.finishLine()
			i += len(cfg.LineEnd)

		default:
			r, size := utf8.DecodeRuneInString(rest)
			if r == ' ' && !sc.inValue && !sc.inQuotes {
				i += size
				continue
			}
			sc.val.WriteRune(r)
			sc.inValue = true
			i += size
		}
	}

	// Input ending in a line end leaves an empty remainder that still
	// counts as a value but does not open another row.
	trailing := len(sc.lines) > 0 && len(sc.line) == 0 && sc.val.Len() == 0 && !sc.quoted
	sc.finishValue()
	if !trailing {
		sc.finishLine()
	}
}

// pending reports whether the current value has any content or opened a
// quote.
func (sc *scanner) pending() bool {
	return sc.inValue || sc.quoted || sc.val.Len() > 0
}

// finishValue moves the accumulated value into the results.
func (sc *scanner) finishValue() {
	v := sc.val.String()
	if sc.cfg.TrimBlanks && !sc.quoted {
		v = strings.TrimRight(v, " ")
	}
	sc.val.Reset()
	sc.inValue = false
	sc.quoted = false

	if sc.seen != nil {
		if _, dup := sc.seen[v]; dup {
			return
		}
		sc.seen[v] = struct{}{}
	}
	sc.values = append(sc.values, v)
	sc.line = append(sc.line, v)
}

func (sc *scanner) finishLine() {
	if sc.line == nil {
		sc.line = []string{}
	}
	sc.lines = append(sc.lines, sc.line)
	sc.line = nil
}
