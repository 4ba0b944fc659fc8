package json

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// MaxDepth bounds array/object nesting so adversarial input cannot exhaust
// the call stack. Exceeding it fails the parse with ErrDepthExceeded.
const MaxDepth = 512

// ErrorType categorizes parse errors.
type ErrorType string

const (
	ErrorTypeSyntax   ErrorType = "syntax"
	ErrorTypeDepth    ErrorType = "depth"
	ErrorTypeEncoding ErrorType = "encoding"
)

// Sentinels for errors.Is comparison against the error's type.
var (
	ErrSyntax        = &ParseError{Type: ErrorTypeSyntax}
	ErrDepthExceeded = &ParseError{Type: ErrorTypeDepth}
	ErrEncoding      = &ParseError{Type: ErrorTypeEncoding}
)

// ParseError describes why and where a parse failed. Offset is the byte
// position in the input; Line and Column are 1-based and derived from it.
type ParseError struct {
	Type    ErrorType
	Offset  int
	Line    int
	Column  int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s error at line %d, column %d (offset %d): %s",
		e.Type, e.Line, e.Column, e.Offset, e.Message)
}

// Is matches two ParseErrors by type, so callers can compare against the
// package sentinels with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// Parse reads a single JSON value from input, which must be valid UTF-8.
// Only whitespace may follow the top-level value. On failure the returned
// error is always a *ParseError and no Value is produced.
func Parse(input string) (Value, error) {
	p := &parser{src: input}
	p.skipWhitespace()
	v, err := p.parseValue(0)
	if err != nil {
		return Null(), err
	}
	p.skipWhitespace()
	if p.pos < len(p.src) {
		return Null(), p.syntaxErrorf(p.pos, "unexpected trailing data after top-level value")
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorAt(typ ErrorType, offset int, msg string) *ParseError {
	line, col := 1, 1
	for _, c := range []byte(p.src[:offset]) {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &ParseError{Type: typ, Offset: offset, Line: line, Column: col, Message: msg}
}

func (p *parser) syntaxErrorf(offset int, format string, args ...any) *ParseError {
	return p.errorAt(ErrorTypeSyntax, offset, fmt.Sprintf(format, args...))
}

// peek returns the byte at the cursor without consuming it, or 0 at EOF.
func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// parseValue dispatches on the next significant character.
func (p *parser) parseValue(depth int) (Value, *ParseError) {
	p.skipWhitespace()
	if p.eof() {
		return Null(), p.syntaxErrorf(p.pos, "unexpected end of input, expected a value")
	}
	switch c := p.peek(); {
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return Null(), err
		}
		return String(s), nil
	case c == 't' || c == 'f' || c == 'n':
		return p.parseLiteral()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return Null(), p.syntaxErrorf(p.pos, "unexpected character %s, expected a value", p.describeRune())
	}
}

// describeRune renders the rune at the cursor for error messages.
func (p *parser) describeRune() string {
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	if r == utf8.RuneError && size <= 1 {
		return fmt.Sprintf("0x%02x", p.src[p.pos])
	}
	return strconv.QuoteRune(r)
}

func (p *parser) parseObject(depth int) (Value, *ParseError) {
	if depth >= MaxDepth {
		return Null(), p.errorAt(ErrorTypeDepth, p.pos, fmt.Sprintf("nesting depth exceeds limit of %d", MaxDepth))
	}
	p.pos++ // consume '{'
	obj := NewObject()
	p.skipWhitespace()
	if p.peek() == '}' {
		p.pos++
		return obj.Value(), nil
	}
	for {
		p.skipWhitespace()
		if p.eof() {
			return Null(), p.syntaxErrorf(p.pos, "unexpected end of input inside object")
		}
		if p.peek() != '"' {
			return Null(), p.syntaxErrorf(p.pos, "expected string object key, found %s", p.describeRune())
		}
		key, err := p.parseString()
		if err != nil {
			return Null(), err
		}
		p.skipWhitespace()
		if p.eof() || p.peek() != ':' {
			return Null(), p.syntaxErrorf(p.pos, "expected ':' after object key %q", key)
		}
		p.pos++
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return Null(), err
		}
		obj.Set(key, v) // duplicate key: last write wins
		p.skipWhitespace()
		if p.eof() {
			return Null(), p.syntaxErrorf(p.pos, "unexpected end of input inside object")
		}
		switch p.peek() {
		case ',':
			p.pos++
			p.skipWhitespace()
			if p.peek() == '}' {
				return Null(), p.syntaxErrorf(p.pos, "trailing comma before '}'")
			}
		case '}':
			p.pos++
			return obj.Value(), nil
		default:
			return Null(), p.syntaxErrorf(p.pos, "expected ',' or '}' in object, found %s", p.describeRune())
		}
	}
}

func (p *parser) parseArray(depth int) (Value, *ParseError) {
	if depth >= MaxDepth {
		return Null(), p.errorAt(ErrorTypeDepth, p.pos, fmt.Sprintf("nesting depth exceeds limit of %d", MaxDepth))
	}
	p.pos++ // consume '['
	elems := []Value{}
	p.skipWhitespace()
	if p.peek() == ']' {
		p.pos++
		return Array(elems...), nil
	}
	for {
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return Null(), err
		}
		elems = append(elems, v)
		p.skipWhitespace()
		if p.eof() {
			return Null(), p.syntaxErrorf(p.pos, "unexpected end of input inside array")
		}
		switch p.peek() {
		case ',':
			p.pos++
			p.skipWhitespace()
			if p.peek() == ']' {
				return Null(), p.syntaxErrorf(p.pos, "trailing comma before ']'")
			}
		case ']':
			p.pos++
			return Array(elems...), nil
		default:
			return Null(), p.syntaxErrorf(p.pos, "expected ',' or ']' in array, found %s", p.describeRune())
		}
	}
}

func (p *parser) parseLiteral() (Value, *ParseError) {
	start := p.pos
	rest := p.src[p.pos:]
	switch {
	case strings.HasPrefix(rest, "true"):
		p.pos += 4
		return Bool(true), nil
	case strings.HasPrefix(rest, "false"):
		p.pos += 5
		return Bool(false), nil
	case strings.HasPrefix(rest, "null"):
		p.pos += 4
		return Null(), nil
	default:
		end := p.pos
		for end < len(p.src) && p.src[end] >= 'a' && p.src[end] <= 'z' {
			end++
		}
		return Null(), p.syntaxErrorf(start, "invalid literal %q", p.src[start:end])
	}
}

// parseString consumes a string token including both quotes and returns the
// decoded text. Escapes follow RFC 8259; \uXXXX surrogate halves must form a
// pair, and an unpaired surrogate is rejected.
func (p *parser) parseString() (string, *ParseError) {
	start := p.pos
	p.pos++ // consume opening '"'
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.syntaxErrorf(start, "unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == '"':
			p.pos++
			return sb.String(), nil
		case c == '\\':
			if err := p.parseEscape(&sb, start); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", p.syntaxErrorf(p.pos, "unescaped control character 0x%02x in string", c)
		case c < utf8.RuneSelf:
			sb.WriteByte(c)
			p.pos++
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			if r == utf8.RuneError && size == 1 {
				return "", p.errorAt(ErrorTypeEncoding, p.pos, "invalid UTF-8 byte sequence")
			}
			sb.WriteString(p.src[p.pos : p.pos+size])
			p.pos += size
		}
	}
}

// parseEscape consumes one backslash escape starting at the cursor.
func (p *parser) parseEscape(sb *strings.Builder, strStart int) *ParseError {
	escStart := p.pos
	p.pos++ // consume '\'
	if p.eof() {
		return p.syntaxErrorf(strStart, "unterminated string")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '"', '\\', '/':
		sb.WriteByte(c)
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
		r, err := p.parseHex4(escStart)
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(r) {
			if r >= 0xDC00 {
				return p.syntaxErrorf(escStart, "unexpected low surrogate \\u%04X without high surrogate", r)
			}
			if p.pos+1 >= len(p.src) || p.src[p.pos] != '\\' || p.src[p.pos+1] != 'u' {
				return p.syntaxErrorf(escStart, "high surrogate \\u%04X not followed by low surrogate escape", r)
			}
			lowStart := p.pos
			p.pos += 2
			low, err := p.parseHex4(lowStart)
			if err != nil {
				return err
			}
			combined := utf16.DecodeRune(r, low)
			if combined == utf8.RuneError {
				return p.syntaxErrorf(lowStart, "invalid low surrogate \\u%04X after high surrogate", low)
			}
			r = combined
		}
		sb.WriteRune(r)
	default:
		return p.syntaxErrorf(escStart, "invalid escape sequence '\\%c'", c)
	}
	return nil
}

// parseHex4 reads four hex digits after a \u prefix and returns the code unit.
func (p *parser) parseHex4(escStart int) (rune, *ParseError) {
	if p.pos+4 > len(p.src) {
		return 0, p.syntaxErrorf(escStart, "unicode escape needs four hex digits")
	}
	var v rune
	for i := 0; i < 4; i++ {
		c := p.src[p.pos+i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v += rune(c - '0')
		case c >= 'a' && c <= 'f':
			v += rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += rune(c-'A') + 10
		default:
			return 0, p.syntaxErrorf(escStart, "invalid hex digit %q in unicode escape", c)
		}
	}
	p.pos += 4
	return v, nil
}

// parseNumber consumes a number token and converts it with strconv. The
// grammar is checked by hand so that forms strconv would accept but JSON
// forbids (leading '+', leading zeros, bare '.') are rejected.
func (p *parser) parseNumber() (Value, *ParseError) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	switch c := p.peek(); {
	case c == '0':
		p.pos++
	case c >= '1' && c <= '9':
		for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	default:
		return Null(), p.syntaxErrorf(start, "invalid number literal")
	}
	if p.peek() == '.' {
		p.pos++
		if d := p.peek(); d < '0' || d > '9' {
			return Null(), p.syntaxErrorf(start, "expected digit after decimal point")
		}
		for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	}
	if c := p.peek(); c == 'e' || c == 'E' {
		p.pos++
		if c := p.peek(); c == '+' || c == '-' {
			p.pos++
		}
		if d := p.peek(); d < '0' || d > '9' {
			return Null(), p.syntaxErrorf(start, "expected digit in exponent")
		}
		for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	}
	text := p.src[start:p.pos]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !math.IsInf(f, 0) {
		// Underflow to zero or a subnormal is acceptable; anything else is not.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return Null(), p.syntaxErrorf(start, "invalid number %q", text)
		}
	}
	if math.IsInf(f, 0) {
		return Null(), p.syntaxErrorf(start, "number %q overflows double precision", text)
	}
	return Number(f), nil
}
