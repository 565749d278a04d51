package sepstr

import "strings"

// Encode renders entries as a single string under cfg.
//
// An empty sequence yields cfg.EmptyValue. Otherwise each plain or keyed
// entry is rendered, wrapped and joined with the separator, row markers
// emit LineStart and LineEnd, loop handling is applied and the result is
// surrounded by Prefix and Suffix. With UniqueValuesOnly set, the first
// repeated value ends the encode: it and everything after it are dropped.
func Encode(cfg Config, entries []Entry) string {
	if len(entries) == 0 {
		return cfg.EmptyValue
	}
	seqs := cfg.controlSequences()

	var (
		b           strings.Builder
		sep         string
		first, last string
		count       int
		seen        map[string]struct{}
	)
	if cfg.UniqueValuesOnly {
		seen = make(map[string]struct{}, len(entries))
	}

entries:
	for _, e := range entries {
		switch e.kind {
		case KindEndOfLine:
			b.WriteString(cfg.LineEnd)
			sep = ""
			continue
		case KindStartOfLine:
			b.WriteString(cfg.LineStart)
			sep = ""
			continue
		}

		rendered := cfg.render(e, seqs)
		if cfg.TrimBlanks && rendered == "" {
			continue
		}
		if seen != nil {
			if _, dup := seen[rendered]; dup {
				break entries
			}
			seen[rendered] = struct{}{}
		}

		wrapped := cfg.WrapBefore + rendered + cfg.WrapAfter
		if count == 0 {
			first = wrapped
		}
		last = wrapped
		count++

		b.WriteString(sep)
		b.WriteString(wrapped)
		sep = cfg.Separator
	}

	out := b.String()
	switch cfg.Loop {
	case LoopClosed:
		if count > 0 && first != last {
			out += sep + first
		}
	case LoopOpen:
		if count > 1 && first == last {
			out = strings.TrimSuffix(out, cfg.Separator+last)
		}
	}
	return cfg.Prefix + out + cfg.Suffix
}
