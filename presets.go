package sepstr

import "fmt"

// Preset names a ready-made configuration.
type Preset string

const (
	Spaces                   Preset = "spaces"
	Commas                   Preset = "commas"
	CommaSpace               Preset = "comma-space"
	Tabs                     Preset = "tabs"
	Lines                    Preset = "lines"
	QuotedCommas             Preset = "quoted-commas"
	QuotedCommasDoubleEscape Preset = "quoted-commas-double-escape"
	CSV                      Preset = "csv"
	TSV                      Preset = "tsv"
	HTMLOrderedList          Preset = "html-ol"
	HTMLUnorderedList        Preset = "html-ul"
	HTMLTable                Preset = "html-table"
)

var presets = []Preset{
	Spaces, Commas, CommaSpace, Tabs, Lines,
	QuotedCommas, QuotedCommasDoubleEscape, CSV, TSV,
	HTMLOrderedList, HTMLUnorderedList, HTMLTable,
}

// String returns the preset name.
func (p Preset) String() string { return string(p) }

// Presets returns all preset names.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ParsePreset parses a preset name.
func ParsePreset(s string) (Preset, error) {
	for _, p := range presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPreset, s)
}

// Builder returns a Builder configured for the preset. An unknown preset
// yields a default Builder.
//
// CSV and TSV here produce output this package reads back reliably; they
// make no claim to match other CSV or TSV dialects.
func (p Preset) Builder() Builder {
	b := NewBuilder()
	switch p {
	case Spaces:
		return b.SeparatedBy(" ")
	case Commas:
		return b.SeparatedBy(",")
	case CommaSpace:
		return b.SeparatedBy(", ")
	case Tabs:
		return b.SeparatedBy("\t")
	case Lines:
		return b.SeparatedBy("\n")
	case QuotedCommas:
		return b.SeparatedBy(",").WithWrap(`"`).WithEscape(`\`)
	case QuotedCommasDoubleEscape:
		return b.SeparatedBy(",").WithWrap(`"`).WithEscape(`\\`)
	case CSV:
		return QuotedCommas.Builder().WithKeyValueSeparator("=")
	case TSV:
		return Tabs.Builder().WithWrap(`"`).WithEscape(`\`).WithKeyValueSeparator("=")
	case HTMLOrderedList:
		return htmlList(b, "ol")
	case HTMLUnorderedList:
		return htmlList(b, "ul")
	case HTMLTable:
		return htmlTable(b)
	default:
		return b
	}
}

func htmlList(b Builder, tag string) Builder {
	return b.SeparatedBy("\n").
		WithWrapping("<li>", "</li>").
		WithPrefix("<" + tag + ">\n").
		WithSuffix("\n</" + tag + ">\n")
}

// htmlTable lays rows out as <tr> elements with one <td> per value. Cells
// are delimited by their tags alone, so there is no separator.
func htmlTable(b Builder) Builder {
	return b.WithoutSeparator().
		WithWrapping("<td>", "</td>").
		WithLineStart("<tr>").
		WithLineEnd("</tr>\n").
		WithPrefix("<table>\n").
		WithSuffix("</table>\n")
}
