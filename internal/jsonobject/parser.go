// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonobject

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// parser is the cursor over the input. All read* methods leave pos just
// past whatever they consumed.
type parser struct {
	text string
	pos  int
}

// Parse parses text as a single JSON object.
//
// Leading and trailing whitespace is allowed; anything else after the closing
// brace is an error. The returned error, if any, is a *SyntaxError.
func Parse(text string) (Object, error) {
	p := &parser{text: text}

	p.skipWhitespace()
	if p.eof() {
		return nil, p.errorf("unexpected end of input, expected '{'")
	}

	obj, err := p.readObject()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()
	if !p.eof() {
		return nil, p.errorf("unexpected character %q after top-level object", p.peek())
	}

	return obj, nil
}

func (p *parser) readObject() (Object, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}

	result := make(Object)
	p.skipWhitespace()
	if p.peek() == '}' {
		p.pos++
		return result, nil
	}

	for {
		p.skipWhitespace()
		if p.eof() || p.peek() != '"' {
			return nil, p.errorf("expected string key")
		}
		key, err := p.readString()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()
		if err = p.expect(':'); err != nil {
			return nil, err
		}

		p.skipWhitespace()
		value, err := p.readValue()
		if err != nil {
			return nil, err
		}
		result[key] = value

		p.skipWhitespace()
		if p.eof() {
			return nil, p.errorf("unexpected end of input inside object")
		}
		switch p.peek() {
		case '}':
			p.pos++
			return result, nil
		case ',':
			p.pos++
		default:
			return nil, p.errorf("expected ',' or '}'")
		}
	}
}

func (p *parser) readValue() (Value, error) {
	if p.eof() {
		return nil, p.errorf("unexpected end of input, expected value")
	}

	switch c := p.peek(); {
	case c == '"':
		s, err := p.readString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case c == '{':
		return p.readObject()
	case c == 't':
		if err := p.readLiteral("true"); err != nil {
			return nil, err
		}
		return Bool(true), nil
	case c == 'f':
		if err := p.readLiteral("false"); err != nil {
			return nil, err
		}
		return Bool(false), nil
	case c == 'n':
		if err := p.readLiteral("null"); err != nil {
			return nil, err
		}
		return Null{}, nil
	case c == '[':
		return nil, p.errorf("arrays are not supported")
	case c == '-' || isDigit(c):
		return p.readNumber()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) readString() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}

	var sb strings.Builder
	for !p.eof() {
		c := p.text[p.pos]
		p.pos++

		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			if err := p.readEscape(&sb); err != nil {
				return "", err
			}
		default:
			sb.WriteByte(c)
		}
	}

	return "", p.errorf("unterminated string")
}

// readEscape decodes one escape sequence; pos is just past the backslash.
func (p *parser) readEscape(sb *strings.Builder) error {
	if p.eof() {
		return p.errorf("unexpected end of input inside string")
	}

	escaped := p.text[p.pos]
	p.pos++

	switch escaped {
	case '"', '\\', '/':
		sb.WriteByte(escaped)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		r, err := p.readHex4()
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(r) {
			r = p.readLowSurrogate(r)
		}
		sb.WriteRune(r)
	default:
		p.pos--
		return p.errorf("invalid escape character %q", escaped)
	}

	return nil
}

func (p *parser) readHex4() (rune, error) {
	if p.pos+4 > len(p.text) {
		return 0, p.errorf("invalid unicode escape")
	}

	n, err := strconv.ParseUint(p.text[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid unicode escape")
	}
	p.pos += 4

	return rune(n), nil
}

// readLowSurrogate combines high with a following \uXXXX low surrogate.
// Without a valid pair the replacement character is returned and nothing
// past high is consumed.
func (p *parser) readLowSurrogate(high rune) rune {
	if p.pos+6 > len(p.text) || p.text[p.pos] != '\\' || p.text[p.pos+1] != 'u' {
		return unicode.ReplacementChar
	}

	n, err := strconv.ParseUint(p.text[p.pos+2:p.pos+6], 16, 32)
	if err != nil {
		return unicode.ReplacementChar
	}

	r := utf16.DecodeRune(high, rune(n))
	if r == unicode.ReplacementChar {
		return r
	}
	p.pos += 6

	return r
}

func (p *parser) readNumber() (Value, error) {
	start := p.pos
	isFloat := false

	if p.peek() == '-' {
		p.pos++
	}
	if p.skipDigits() == 0 {
		return nil, p.errorf("expected digit")
	}

	if !p.eof() && p.peek() == '.' {
		isFloat = true
		p.pos++
		if p.skipDigits() == 0 {
			return nil, p.errorf("expected digit after decimal point")
		}
	}

	if !p.eof() && (p.peek() == 'e' || p.peek() == 'E') {
		isFloat = true
		p.pos++
		if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
			p.pos++
		}
		if p.skipDigits() == 0 {
			return nil, p.errorf("expected digit in exponent")
		}
	}

	literal := p.text[start:p.pos]
	if !isFloat {
		if n, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return Integer(n), nil
		}
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, &SyntaxError{Offset: start, Msg: fmt.Sprintf("number %s out of range", literal)}
	}

	return Float(f), nil
}

func (p *parser) readLiteral(literal string) error {
	if !strings.HasPrefix(p.text[p.pos:], literal) {
		return p.errorf("expected literal %s", literal)
	}
	p.pos += len(literal)

	return nil
}

func (p *parser) skipDigits() int {
	start := p.pos
	for !p.eof() && isDigit(p.text[p.pos]) {
		p.pos++
	}
	return p.pos - start
}

func (p *parser) skipWhitespace() {
	for !p.eof() {
		switch p.text[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) error {
	if p.eof() || p.text[p.pos] != c {
		return p.errorf("expected '%c'", c)
	}
	p.pos++

	return nil
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.text[p.pos]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.text)
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
