package icu

import (
	"fmt"
	"strconv"
	"strings"
)

// Compile parses an ICU message template into an immutable Message tree.
// It is a pure function of the template string. Malformed templates fail
// with a *SyntaxError: unbalanced braces, an unknown argument type, an
// unknown selector inside plural/selectordinal, or a plural/select argument
// without the mandatory "other" case.
func Compile(template string) (*Message, error) {
	p := &parser{src: template}
	msg, err := p.parseMessage(false, false)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, p.errf("unbalanced '}'")
	}
	return msg, nil
}

// MustCompile is like Compile but panics on error. Intended for templates
// known valid at program start, mirroring regexp.MustCompile.
func MustCompile(template string) *Message {
	msg, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return msg
}

type parser struct {
	src string
	pos int
}

func (p *parser) errf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// parseMessage reads nodes until EOF, or until a closing '}' when sub is
// true (the '}' is consumed). inPlural makes '#' a Pound node instead of
// literal text; it is inherited by select sub-messages so that '#' keeps
// referring to the nearest enclosing plural.
func (p *parser) parseMessage(sub, inPlural bool) (*Message, error) {
	msg := &Message{}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			msg.Nodes = append(msg.Nodes, Literal(lit.String()))
			lit.Reset()
		}
	}

	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; c {
		case '{':
			flush()
			node, err := p.parseArgument(inPlural)
			if err != nil {
				return nil, err
			}
			msg.Nodes = append(msg.Nodes, node)
		case '}':
			if !sub {
				return nil, p.errf("unbalanced '}'")
			}
			flush()
			p.pos++
			return msg, nil
		case '#':
			if inPlural {
				flush()
				msg.Nodes = append(msg.Nodes, Pound{})
			} else {
				lit.WriteByte(c)
			}
			p.pos++
		default:
			lit.WriteByte(c)
			p.pos++
		}
	}

	if sub {
		return nil, p.errf("unbalanced '{': missing closing brace")
	}
	flush()
	return msg, nil
}

// parseArgument parses everything between a matching '{' and '}'.
// The opening brace is at the current position.
func (p *parser) parseArgument(inPlural bool) (Node, error) {
	p.pos++ // consume '{'
	p.skipSpace()

	name := p.readToken()
	if name == "" {
		return nil, p.errf("empty argument name")
	}
	p.skipSpace()

	switch {
	case p.eat('}'):
		return Argument{Name: name}, nil
	case p.eat(','):
	default:
		return nil, p.errf("expected ',' or '}' after argument name %q", name)
	}

	p.skipSpace()
	argType := p.readToken()
	p.skipSpace()

	switch argType {
	case "number", "date", "time":
		return p.parseTypedArgument(name, argType)
	case "plural", "selectordinal":
		if !p.eat(',') {
			return nil, p.errf("expected ',' after %q", argType)
		}
		return p.parsePlural(name, argType == "selectordinal")
	case "select":
		if !p.eat(',') {
			return nil, p.errf("expected ',' after \"select\"")
		}
		return p.parseSelect(name, inPlural)
	default:
		return nil, p.errf("unknown argument type %q for %q", argType, name)
	}
}

func (p *parser) parseTypedArgument(name, argType string) (Node, error) {
	arg := Argument{Name: name}
	switch argType {
	case "number":
		arg.Kind = ArgNumber
	case "date":
		arg.Kind = ArgDate
	case "time":
		arg.Kind = ArgTime
	}

	if p.eat('}') {
		return arg, nil
	}
	if !p.eat(',') {
		return nil, p.errf("expected ',' or '}' after %q", argType)
	}

	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '}' {
		if p.src[p.pos] == '{' {
			return nil, p.errf("unexpected '{' in %s style", argType)
		}
		p.pos++
	}
	if p.pos >= len(p.src) {
		return nil, p.errf("unbalanced '{': missing closing brace")
	}
	arg.Style = strings.TrimSpace(p.src[start:p.pos])
	if arg.Style == "" {
		return nil, p.errf("empty style for argument %q", name)
	}
	p.pos++ // consume '}'
	return arg, nil
}

func (p *parser) parsePlural(name string, ordinal bool) (Node, error) {
	pl := Plural{
		Arg:     name,
		Ordinal: ordinal,
		Exact:   map[int64]*Message{},
		Cases:   map[string]*Message{},
	}

	first := true
	for {
		p.skipSpace()
		if p.eat('}') {
			break
		}
		sel := p.readToken()
		if sel == "" {
			return nil, p.errf("expected selector in plural argument %q", name)
		}

		if rest, ok := strings.CutPrefix(sel, "offset:"); ok {
			if !first {
				return nil, p.errf("offset must precede plural cases")
			}
			first = false
			if rest == "" {
				// Space between "offset:" and the number.
				p.skipSpace()
				rest = p.readToken()
			}
			off, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				return nil, p.errf("invalid plural offset %q", rest)
			}
			pl.Offset = off
			continue
		}
		first = false

		body, err := p.parseCaseBody(sel, true)
		if err != nil {
			return nil, err
		}

		if rest, ok := strings.CutPrefix(sel, "="); ok {
			n, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				return nil, p.errf("invalid exact selector %q", sel)
			}
			pl.Exact[n] = body
			continue
		}
		switch sel {
		case "zero", "one", "two", "few", "many", "other":
			pl.Cases[sel] = body
		default:
			return nil, p.errf("unknown plural selector %q", sel)
		}
	}

	if len(pl.Exact) == 0 && len(pl.Cases) == 0 {
		return nil, p.errf("plural argument %q has no cases", name)
	}
	if _, ok := pl.Cases["other"]; !ok {
		return nil, p.errf("plural argument %q is missing mandatory \"other\" case", name)
	}
	return pl, nil
}

func (p *parser) parseSelect(name string, inPlural bool) (Node, error) {
	sel := Select{Arg: name, Cases: map[string]*Message{}}

	for {
		p.skipSpace()
		if p.eat('}') {
			break
		}
		key := p.readToken()
		if key == "" {
			return nil, p.errf("expected selector in select argument %q", name)
		}
		body, err := p.parseCaseBody(key, inPlural)
		if err != nil {
			return nil, err
		}
		sel.Cases[key] = body
	}

	if len(sel.Cases) == 0 {
		return nil, p.errf("select argument %q has no cases", name)
	}
	if _, ok := sel.Cases["other"]; !ok {
		return nil, p.errf("select argument %q is missing mandatory \"other\" case", name)
	}
	return sel, nil
}

func (p *parser) parseCaseBody(selector string, inPlural bool) (*Message, error) {
	p.skipSpace()
	if !p.eat('{') {
		return nil, p.errf("expected '{' after selector %q", selector)
	}
	return p.parseMessage(true, inPlural)
}

// readToken reads a selector, argument name, or keyword: everything up to
// whitespace or a structural character.
func (p *parser) readToken() string {
	start := p.pos
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == '{' || c == '}' || c == ',' || c == '#':
			return p.src[start:p.pos]
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			return p.src[start:p.pos]
		default:
			p.pos++
		}
	}
	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eat(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}
