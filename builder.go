package sepstr

// Builder assembles a [Config]. Every method returns a modified copy, so a
// Builder can be shared and specialised without affecting other copies.
type Builder struct {
	cfg            Config
	defaultLineEnd string
}

// NewBuilder returns a Builder starting from [DefaultConfig] with
// [DefaultLineEnd] as the default row terminator.
func NewBuilder() Builder {
	return Builder{cfg: DefaultConfig(), defaultLineEnd: DefaultLineEnd}
}

// FromConfig returns a Builder starting from cfg.
func FromConfig(cfg Config) Builder {
	return Builder{cfg: cfg, defaultLineEnd: DefaultLineEnd}
}

// Build returns the finished configuration.
func (b Builder) Build() Config { return b.cfg }

// Encoder returns an empty [Encoder] using the built configuration.
func (b Builder) Encoder() *Encoder { return newEncoder(b) }

// Decoder returns a [Decoder] using the built configuration.
func (b Builder) Decoder() *Decoder { return &Decoder{b: b} }

// SeparatedBy sets the separator. An empty separator is ignored; use
// WithoutSeparator to concatenate values.
func (b Builder) SeparatedBy(sep string) Builder {
	if sep != "" {
		b.cfg.Separator = sep
	}
	return b
}

// WithoutSeparator removes the separator so values are delimited only by
// their wrapping.
func (b Builder) WithoutSeparator() Builder {
	b.cfg.Separator = ""
	return b
}

// WithPrefix sets the text placed before the whole result.
func (b Builder) WithPrefix(s string) Builder {
	b.cfg.Prefix = s
	return b
}

// WithSuffix sets the text placed after the whole result.
func (b Builder) WithSuffix(s string) Builder {
	b.cfg.Suffix = s
	return b
}

// WithWrap places s before and after each value.
func (b Builder) WithWrap(s string) Builder {
	b.cfg.WrapBefore = s
	b.cfg.WrapAfter = s
	return b
}

// WithWrapping places before and after around each value.
func (b Builder) WithWrapping(before, after string) Builder {
	b.cfg.WrapBefore = before
	b.cfg.WrapAfter = after
	return b
}

// WithWrapBefore sets the sequence placed before each value.
func (b Builder) WithWrapBefore(s string) Builder {
	b.cfg.WrapBefore = s
	return b
}

// WithWrapAfter sets the sequence placed after each value.
func (b Builder) WithWrapAfter(s string) Builder {
	b.cfg.WrapAfter = s
	return b
}

// WithEscape sets the escape sequence.
func (b Builder) WithEscape(s string) Builder {
	b.cfg.Escape = s
	return b
}

// WithKeyValueSeparator sets the sequence between a key and its value.
func (b Builder) WithKeyValueSeparator(s string) Builder {
	b.cfg.KeyValueSeparator = s
	return b
}

// WithNullsAs retains nulls and renders them as s.
func (b Builder) WithNullsAs(s string) Builder {
	b.cfg.NullRepresentation = s
	b.cfg.RetainNulls = true
	return b
}

// WithNullsRetained controls whether nulls render as the null
// representation (true) or as the empty value (false).
func (b Builder) WithNullsRetained(retain bool) Builder {
	b.cfg.RetainNulls = retain
	return b
}

// UseWhenEmpty sets the empty value, used for empty and null values and as
// the whole result of an empty sequence.
func (b Builder) UseWhenEmpty(s string) Builder {
	b.cfg.EmptyValue = s
	return b
}

// WithLoop sets the loop mode.
func (b Builder) WithLoop(m LoopMode) Builder {
	b.cfg.Loop = m
	return b
}

// WithClosedLoop repeats the first value at the end when it is not there
// already.
func (b Builder) WithClosedLoop() Builder { return b.WithLoop(LoopClosed) }

// WithOpenLoop removes a trailing repeat of the first value.
func (b Builder) WithOpenLoop() Builder { return b.WithLoop(LoopOpen) }

// WithoutLoop disables loop handling.
func (b Builder) WithoutLoop() Builder { return b.WithLoop(LoopNone) }

// WithBlanksTrimmed skips blank values and trims spaces around values.
func (b Builder) WithBlanksTrimmed() Builder {
	b.cfg.TrimBlanks = true
	return b
}

// WithOnlyUniqueValues drops repeated values.
func (b Builder) WithOnlyUniqueValues() Builder {
	b.cfg.UniqueValuesOnly = true
	return b
}

// WithLineStart sets the sequence emitted at the start of each row.
func (b Builder) WithLineStart(s string) Builder {
	b.cfg.LineStart = s
	return b
}

// WithLineEnd sets the sequence emitted at the end of each row.
func (b Builder) WithLineEnd(s string) Builder {
	b.cfg.LineEnd = s
	return b
}

// WithDefaultLineEnd sets the row terminator an [Encoder] adopts when a
// row is added and no line end has been configured.
func (b Builder) WithDefaultLineEnd(s string) Builder {
	b.defaultLineEnd = s
	return b
}
