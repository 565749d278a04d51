package sepstr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedPreset       = errors.New("unsupported preset")
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
	ErrInvalidLoopMode         = errors.New("invalid loop mode")
	ErrInvalidConfig           = errors.New("invalid config")
)

// DefaultLineEnd is the line terminator applied by [Encoder.AddLine] when
// the configuration has no line end of its own.
const DefaultLineEnd = "\n"

// LoopMode controls how the first and last values of a sequence relate.
type LoopMode int

const (
	LoopNone   LoopMode = iota // sequence encoded as-is
	LoopClosed                 // first value repeated at the end unless already there
	LoopOpen                   // trailing copy of the first value removed
)

var loopModeNames = map[LoopMode]string{
	LoopNone:   "none",
	LoopClosed: "closed",
	LoopOpen:   "open",
}

// String returns the loop mode name.
func (m LoopMode) String() string {
	if s, ok := loopModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("LoopMode(%d)", int(m))
}

// ParseLoopMode parses "none", "closed" or "open". The empty string is none.
func ParseLoopMode(s string) (LoopMode, error) {
	if s == "" {
		return LoopNone, nil
	}
	for m, name := range loopModeNames {
		if strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return LoopNone, fmt.Errorf("%w: %q", ErrInvalidLoopMode, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m LoopMode) MarshalText() ([]byte, error) {
	if _, ok := loopModeNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLoopMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *LoopMode) UnmarshalText(b []byte) error {
	parsed, err := ParseLoopMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Config holds the formatting rules for one encode or decode.
//
// A Config is a plain value. The zero value has no separator at all; use
// [DefaultConfig] or a [Builder] for the usual defaults.
type Config struct {
	Separator          string   `yaml:"separator" toml:"separator"`
	Prefix             string   `yaml:"prefix" toml:"prefix"`
	Suffix             string   `yaml:"suffix" toml:"suffix"`
	WrapBefore         string   `yaml:"wrap_before" toml:"wrap_before"`
	WrapAfter          string   `yaml:"wrap_after" toml:"wrap_after"`
	Escape             string   `yaml:"escape" toml:"escape"`
	KeyValueSeparator  string   `yaml:"key_value_separator" toml:"key_value_separator"`
	NullRepresentation string   `yaml:"null_representation" toml:"null_representation"`
	RetainNulls        bool     `yaml:"retain_nulls" toml:"retain_nulls"`
	EmptyValue         string   `yaml:"empty_value" toml:"empty_value"`
	Loop               LoopMode `yaml:"loop" toml:"loop"`
	TrimBlanks         bool     `yaml:"trim_blanks" toml:"trim_blanks"`
	UniqueValuesOnly   bool     `yaml:"unique_values_only" toml:"unique_values_only"`
	LineStart          string   `yaml:"line_start" toml:"line_start"`
	LineEnd            string   `yaml:"line_end" toml:"line_end"`

	formatters map[reflect.Type]func(any) string
}

// DefaultConfig returns a Config separated by a single space that renders
// retained nulls as "null".
func DefaultConfig() Config {
	return Config{
		Separator:          " ",
		NullRepresentation: "null",
	}
}

// HasEscape reports whether escaping is enabled.
func (c Config) HasEscape() bool { return c.Escape != "" }

// HasWrapping reports whether values are quoted.
func (c Config) HasWrapping() bool { return c.WrapBefore != "" || c.WrapAfter != "" }

// HasSymmetricWrapping reports whether values are quoted with the same
// sequence on both sides.
func (c Config) HasSymmetricWrapping() bool {
	return c.HasWrapping() && c.WrapBefore == c.WrapAfter
}

// Formatter returns the formatter registered for values of type t.
func (c Config) Formatter(t reflect.Type) (func(any) string, bool) {
	fn, ok := c.formatters[t]
	return fn, ok
}
