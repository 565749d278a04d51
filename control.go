package sepstr

import "strings"

// controlSequence pairs a structural literal with its escaped form.
type controlSequence struct {
	literal     string
	replacement string
}

// controlSequences returns the substitutions applied to every rendered key
// and value. The escape sequence comes first so escapes already present in
// a value are doubled before any other literal gains an escape prefix.
// Empty literals are skipped and repeated literals keep their first entry.
func (c Config) controlSequences() []controlSequence {
	if !c.HasEscape() {
		return nil
	}
	literals := []string{
		c.Escape,
		c.Separator,
		c.KeyValueSeparator,
		c.Prefix,
		c.Suffix,
		c.EmptyValue,
		c.WrapAfter,
		c.WrapBefore,
	}
	seqs := make([]controlSequence, 0, len(literals))
	seen := make(map[string]struct{}, len(literals))
	for _, lit := range literals {
		if lit == "" {
			continue
		}
		if _, dup := seen[lit]; dup {
			continue
		}
		seen[lit] = struct{}{}
		seqs = append(seqs, controlSequence{literal: lit, replacement: c.Escape + lit})
	}
	return seqs
}

// escape applies seqs to s in table order.
func escape(s string, seqs []controlSequence) string {
	for _, seq := range seqs {
		s = strings.ReplaceAll(s, seq.literal, seq.replacement)
	}
	return s
}
