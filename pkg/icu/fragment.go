package icu

import (
	"fmt"
	"strings"
)

// Fragment is one element of evaluated output: either literal text or an
// opaque rich-content value passed through formatting untouched.
type Fragment interface {
	fragment()
}

// Text is a formatted string fragment.
type Text string

func (Text) fragment() {}

// Rich wraps an opaque rich-content value. The engine never inspects or
// stringifies it; renderers decide what to do with the payload.
type Rich struct {
	Value any
}

func (Rich) fragment() {}

// Fragments is the ordered output of an evaluation. It is never mutated
// after construction.
type Fragments []Fragment

// String concatenates the sequence into plain text. Rich fragments are
// rendered with fmt.Sprint; callers that care about rich content should walk
// the fragments instead.
func (f Fragments) String() string {
	var sb strings.Builder
	for _, fr := range f {
		switch v := fr.(type) {
		case Text:
			sb.WriteString(string(v))
		case Rich:
			fmt.Fprint(&sb, v.Value)
		}
	}
	return sb.String()
}

// HasRich reports whether the sequence contains any rich-content fragment.
func (f Fragments) HasRich() bool {
	for _, fr := range f {
		if _, ok := fr.(Rich); ok {
			return true
		}
	}
	return false
}
