// Package sepstr encodes a sequence of values into a single delimited string
// and decodes such strings back into values, rows, or key-value maps.
//
// The central entry points are [Encode] and [Parse]. Both take a [Config]
// describing the format: separator, prefix and suffix, per-value wrapping
// (quoting), an escape sequence, a key-value separator, null handling,
// uniqueness filtering, loop handling and row markers. Decoding a string
// produced by [Encode] under the same Config recovers the original values.
//
//	cfg := sepstr.CSV.Builder().Build()
//	s := sepstr.Encode(cfg, sepstr.Values("a,b", "c"))  // "a\,b","c"
//	values, _ := sepstr.Parse(cfg, s)                    // ["a,b" "c"]
//
// # Entries
//
// An encode sequence is a slice of [Entry]. Use [Value] for a plain value,
// [Keyed] for a key-value pair, and [Line] to wrap values in the
// [StartOfLine] and [EndOfLine] row markers. [Values], [Pairs] and [Map]
// convert whole collections.
//
// # Configuration
//
// [Builder] assembles a Config. Each method returns a modified copy:
//
//	b := sepstr.NewBuilder().SeparatedBy(",").WithWrap(`"`).WithEscape(`\`)
//	b = sepstr.FormatFor(b, func(t time.Time) string { return t.Format(time.DateOnly) })
//	cfg := b.Build()
//
// [Preset] names ready-made builders (CSV, TSV, HTML lists and tables, plain
// separators). [LoadConfig] and [LoadConfigFile] read a Config from YAML or
// TOML. [Describe] lists a Config's settings.
//
// # Escaping
//
// With an escape sequence configured, every structural literal found in a
// key or value (the escape itself, separator, key-value separator, prefix,
// suffix, empty value and both wrap sequences) is preceded by the escape
// sequence. The escape sequence is doubled first so that escapes already
// present in a value stay literal.
//
// # Loops
//
// [LoopClosed] appends the first value when the last one differs from it,
// which closes ring-like sequences such as polygon coordinates.
// [LoopOpen] removes a final value that repeats the first.
//
// # Rows
//
// Row markers emit LineStart and LineEnd. [Parse] returns the values both
// flat and grouped by row. Input ending with a line end decodes to a final
// empty value in the flat list but no extra row.
//
// # Encoder and Decoder
//
// [Encoder] accumulates entries under a lock and encodes them on demand;
// [Decoder] wraps the decode functions for a fixed Config. Both are safe
// for concurrent use.
//
// # Errors
//
// Encoding and decoding never fail. Malformed input decodes to whatever the
// scanner resolves it to. The package exports sentinel errors for the
// surrounding layers:
//
//   - [ErrUnsupportedPreset]: unknown preset name
//   - [ErrUnsupportedConfigFormat]: unknown configuration file syntax
//   - [ErrInvalidLoopMode]: unknown loop mode name
//   - [ErrInvalidConfig]: configuration file could not be decoded
package sepstr
