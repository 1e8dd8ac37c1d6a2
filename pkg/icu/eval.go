package icu

import (
	"strconv"
	"time"
)

// Env supplies the locale-dependent collaborators an evaluation needs.
// The formatter callbacks receive the argument's resolved style token
// ("" when none); errors they return surface as *FormatError.
// Nil callbacks fall back to locale-agnostic defaults, which keeps the
// evaluator usable in tests and tools that do not care about localization.
type Env struct {
	// Locale is informational; category and formatting decisions live in
	// the callbacks, which are constructed per locale.
	Locale string

	FormatNumber func(v float64, style string) (string, error)
	FormatDate   func(t time.Time, style string) (string, error)
	FormatTime   func(t time.Time, style string) (string, error)

	// PluralCategory resolves a CLDR category (zero/one/two/few/many/other)
	// for the offset-adjusted value. ordinal selects selectordinal rules.
	PluralCategory func(n float64, ordinal bool) string

	// ResolveStyle maps a named format to a concrete style token, resolving
	// against the caller's formats and default formats. Unknown names pass
	// through unchanged. Optional.
	ResolveStyle func(style string) string
}

// Evaluate walks the compiled message in document order against the given
// substitution values, producing an ordered fragment sequence. It is a pure
// function of (msg, values, env): no hidden state, safe to memoize.
//
// A referenced argument absent from values fails with *MissingValueError;
// a value the formatters reject fails with *FormatError. Both are meant to
// be treated as recoverable fallback-step failures by callers.
func Evaluate(msg *Message, values map[string]any, env Env) (Fragments, error) {
	var out Fragments
	if err := env.eval(msg, values, &out, ""); err != nil {
		return nil, err
	}
	if out == nil {
		out = Fragments{}
	}
	return out, nil
}

// eval appends msg's output to out. pound carries the formatted
// offset-adjusted number of the nearest enclosing plural.
func (env Env) eval(msg *Message, values map[string]any, out *Fragments, pound string) error {
	for _, node := range msg.Nodes {
		switch n := node.(type) {
		case Literal:
			*out = append(*out, Text(n))
		case Pound:
			*out = append(*out, Text(pound))
		case Argument:
			if err := env.evalArgument(n, values, out); err != nil {
				return err
			}
		case Plural:
			if err := env.evalPlural(n, values, out); err != nil {
				return err
			}
		case Select:
			if err := env.evalSelect(n, values, out, pound); err != nil {
				return err
			}
		}
	}
	return nil
}

func (env Env) evalArgument(arg Argument, values map[string]any, out *Fragments) error {
	v, ok := values[arg.Name]
	if !ok {
		return &MissingValueError{Name: arg.Name}
	}
	style := env.style(arg.Style)

	switch arg.Kind {
	case ArgNumber:
		n, ok := toFloat(v)
		if !ok {
			return &FormatError{Name: arg.Name, Err: errNotNumeric}
		}
		return env.appendNumber(arg.Name, n, style, out)
	case ArgDate, ArgTime:
		t, ok := v.(time.Time)
		if !ok {
			return &FormatError{Name: arg.Name, Err: errNotTime}
		}
		format := env.FormatDate
		if arg.Kind == ArgTime {
			format = env.FormatTime
		}
		if format == nil {
			*out = append(*out, Text(t.Format(time.RFC3339)))
			return nil
		}
		s, err := format(t, style)
		if err != nil {
			return &FormatError{Name: arg.Name, Err: err}
		}
		*out = append(*out, Text(s))
		return nil
	}

	// Untyped argument: coerce by the value's dynamic type. Anything that is
	// not text, a number, or a time is opaque rich content and passes
	// through unchanged.
	switch val := v.(type) {
	case string:
		*out = append(*out, Text(val))
	case time.Time:
		if env.FormatDate == nil {
			*out = append(*out, Text(val.Format(time.RFC3339)))
			return nil
		}
		s, err := env.FormatDate(val, style)
		if err != nil {
			return &FormatError{Name: arg.Name, Err: err}
		}
		*out = append(*out, Text(s))
	default:
		if n, ok := toFloat(v); ok {
			return env.appendNumber(arg.Name, n, style, out)
		}
		*out = append(*out, Rich{Value: v})
	}
	return nil
}

func (env Env) evalPlural(pl Plural, values map[string]any, out *Fragments) error {
	v, ok := values[pl.Arg]
	if !ok {
		return &MissingValueError{Name: pl.Arg}
	}
	n, ok := toFloat(v)
	if !ok {
		return &FormatError{Name: pl.Arg, Err: errNotNumeric}
	}

	adjusted := n - float64(pl.Offset)
	pound, err := env.formatNumber(adjusted, "")
	if err != nil {
		return &FormatError{Name: pl.Arg, Err: err}
	}

	// Exact cases match the raw value, before the offset is applied.
	body := pl.Cases["other"]
	if exact, ok := integralValue(n); ok {
		if m, ok := pl.Exact[exact]; ok {
			body = m
			return env.eval(body, values, out, pound)
		}
	}
	if env.PluralCategory != nil {
		if m, ok := pl.Cases[env.PluralCategory(adjusted, pl.Ordinal)]; ok {
			body = m
		}
	} else if m, ok := pl.Cases[defaultCategory(adjusted)]; ok {
		body = m
	}
	return env.eval(body, values, out, pound)
}

func (env Env) evalSelect(sel Select, values map[string]any, out *Fragments, pound string) error {
	v, ok := values[sel.Arg]
	if !ok {
		return &MissingValueError{Name: sel.Arg}
	}
	key, ok := v.(string)
	if !ok {
		return &FormatError{Name: sel.Arg, Err: errNotString}
	}
	body, ok := sel.Cases[key]
	if !ok {
		body = sel.Cases["other"]
	}
	return env.eval(body, values, out, pound)
}

func (env Env) appendNumber(name string, n float64, style string, out *Fragments) error {
	s, err := env.formatNumber(n, style)
	if err != nil {
		return &FormatError{Name: name, Err: err}
	}
	*out = append(*out, Text(s))
	return nil
}

func (env Env) formatNumber(n float64, style string) (string, error) {
	if env.FormatNumber == nil {
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}
	return env.FormatNumber(n, style)
}

func (env Env) style(style string) string {
	if style != "" && env.ResolveStyle != nil {
		return env.ResolveStyle(style)
	}
	return style
}

// defaultCategory is the locale-agnostic fallback used when no plural rules
// are supplied: English-like one/other.
func defaultCategory(n float64) string {
	if n == 1 || n == -1 {
		return "one"
	}
	return "other"
}

func integralValue(n float64) (int64, bool) {
	i := int64(n)
	if float64(i) == n {
		return i, true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
