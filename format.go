package sepstr

import (
	"fmt"
	"reflect"
	"strings"
)

// render produces the rendered form of a plain or keyed entry: key and
// value escaped, nulls and empties substituted, but not yet wrapped.
func (c Config) render(e Entry, seqs []controlSequence) string {
	var b strings.Builder
	if e.kind == KindKeyed {
		b.WriteString(escape(e.key, seqs))
		b.WriteString(c.KeyValueSeparator)
	}
	b.WriteString(escape(c.valueString(e.value), seqs))
	s := b.String()
	if c.TrimBlanks {
		s = strings.Trim(s, " ")
	}
	return s
}

// valueString converts v to its unescaped string form.
func (c Config) valueString(v any) string {
	if isNil(v) {
		if c.RetainNulls {
			return c.NullRepresentation
		}
		return c.EmptyValue
	}
	s := c.format(v)
	if s == "" {
		return c.EmptyValue
	}
	return s
}

func (c Config) format(v any) string {
	if fn, ok := c.formatters[reflect.TypeOf(v)]; ok {
		return fn(v)
	}
	if str, ok := v.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// FormatFor returns a copy of b that renders values of type T with fn.
// Registering a second formatter for the same type replaces the first.
func FormatFor[T any](b Builder, fn func(T) string) Builder {
	t := reflect.TypeFor[T]()
	formatters := make(map[reflect.Type]func(any) string, len(b.cfg.formatters)+1)
	for k, v := range b.cfg.formatters {
		formatters[k] = v
	}
	formatters[t] = func(v any) string { return fn(v.(T)) }
	b.cfg.formatters = formatters
	return b
}
