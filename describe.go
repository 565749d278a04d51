package sepstr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Describe lists every setting of cfg, one per line, with the names
// padded to a common width. String settings are shown quoted so that
// whitespace and control characters are visible.
func Describe(cfg Config) string {
	rows := [][2]string{
		{"separator", strconv.Quote(cfg.Separator)},
		{"prefix", strconv.Quote(cfg.Prefix)},
		{"suffix", strconv.Quote(cfg.Suffix)},
		{"wrap before", strconv.Quote(cfg.WrapBefore)},
		{"wrap after", strconv.Quote(cfg.WrapAfter)},
		{"escape", strconv.Quote(cfg.Escape)},
		{"key/value separator", strconv.Quote(cfg.KeyValueSeparator)},
		{"null representation", strconv.Quote(cfg.NullRepresentation)},
		{"retain nulls", strconv.FormatBool(cfg.RetainNulls)},
		{"empty value", strconv.Quote(cfg.EmptyValue)},
		{"loop", cfg.Loop.String()},
		{"trim blanks", strconv.FormatBool(cfg.TrimBlanks)},
		{"unique values only", strconv.FormatBool(cfg.UniqueValuesOnly)},
		{"line start", strconv.Quote(cfg.LineStart)},
		{"line end", strconv.Quote(cfg.LineEnd)},
		{"formatters", strconv.Itoa(len(cfg.formatters))},
	}

	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s : %s\n", runewidth.FillRight(row[0], width), row[1])
	}
	return b.String()
}
