package icu

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ArgKind declares how an argument value is coerced during evaluation.
type ArgKind int

const (
	// ArgNone leaves coercion to the value's dynamic type.
	ArgNone ArgKind = iota
	// ArgNumber formats the value through the number formatter.
	ArgNumber
	// ArgDate formats the value through the date formatter.
	ArgDate
	// ArgTime formats the value through the time formatter.
	ArgTime
)

func (k ArgKind) String() string {
	switch k {
	case ArgNumber:
		return "number"
	case ArgDate:
		return "date"
	case ArgTime:
		return "time"
	default:
		return ""
	}
}

// Node is a single element of a compiled message.
type Node interface {
	writeTo(sb *strings.Builder)
}

// Message is a compiled template: an ordered sequence of nodes.
// It is immutable after Compile and safe for concurrent use.
type Message struct {
	Nodes []Node
}

// String re-serializes the message into ICU syntax. Recompiling the result
// yields an equivalent tree.
func (m *Message) String() string {
	var sb strings.Builder
	for _, n := range m.Nodes {
		n.writeTo(&sb)
	}
	return sb.String()
}

// Literal is verbatim text between arguments.
type Literal string

func (l Literal) writeTo(sb *strings.Builder) {
	sb.WriteString(string(l))
}

// Pound is the "#" marker inside a plural case body. It renders as the
// formatted, offset-adjusted numeric value of the enclosing plural argument.
type Pound struct{}

func (Pound) writeTo(sb *strings.Builder) {
	sb.WriteByte('#')
}

// Argument is a simple interpolation like {name} or a typed one like
// {price, number, EUR}. Style is either a literal style token or the name of
// a format registered with the caller; resolution happens at evaluation time.
type Argument struct {
	Name  string
	Kind  ArgKind
	Style string
}

func (a Argument) writeTo(sb *strings.Builder) {
	sb.WriteByte('{')
	sb.WriteString(a.Name)
	if a.Kind != ArgNone {
		sb.WriteString(", ")
		sb.WriteString(a.Kind.String())
		if a.Style != "" {
			sb.WriteString(", ")
			sb.WriteString(a.Style)
		}
	}
	sb.WriteByte('}')
}

// Plural selects a sub-message by the CLDR plural category of a numeric
// argument. Exact cases (written "=N") are keyed by the raw value and win
// over category cases, which are resolved from the offset-adjusted value.
// The "other" case is guaranteed present by the compiler.
type Plural struct {
	Arg     string
	Offset  int64
	Ordinal bool
	Exact   map[int64]*Message
	Cases   map[string]*Message
}

func (p Plural) writeTo(sb *strings.Builder) {
	sb.WriteByte('{')
	sb.WriteString(p.Arg)
	if p.Ordinal {
		sb.WriteString(", selectordinal,")
	} else {
		sb.WriteString(", plural,")
	}
	if p.Offset != 0 {
		sb.WriteString(" offset:")
		sb.WriteString(strconv.FormatInt(p.Offset, 10))
	}
	for _, n := range sortedKeys(p.Exact) {
		sb.WriteString(" =")
		sb.WriteString(strconv.FormatInt(n, 10))
		sb.WriteString(" {")
		sb.WriteString(p.Exact[n].String())
		sb.WriteByte('}')
	}
	writeCases(sb, p.Cases)
	sb.WriteByte('}')
}

// Select chooses a sub-message by exact string match on the argument value,
// falling back to the mandatory "other" case.
type Select struct {
	Arg   string
	Cases map[string]*Message
}

func (s Select) writeTo(sb *strings.Builder) {
	sb.WriteByte('{')
	sb.WriteString(s.Arg)
	sb.WriteString(", select,")
	writeCases(sb, s.Cases)
	sb.WriteByte('}')
}

func writeCases(sb *strings.Builder, cases map[string]*Message) {
	keys := sortedKeys(cases)
	// Keep "other" last for readability; key order is semantically irrelevant.
	if i := slices.Index(keys, "other"); i >= 0 {
		keys = append(slices.Delete(keys, i, i+1), "other")
	}
	for _, k := range keys {
		fmt.Fprintf(sb, " %s {%s}", k, cases[k].String())
	}
}

func sortedKeys[K int64 | string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
