package json

import (
	"fmt"
	"math"
	"strconv"
)

// Serialize renders a Value as compact JSON text. It never fails: every
// Value is well-formed by construction. The output is deterministic (object
// keys in insertion order, shortest round-trip number formatting) and
// re-parseable by Parse.
//
// Number convention: the shortest decimal representation that round-trips to
// the same double. Plain notation is used for magnitudes in [1e-6, 1e21) and
// exponent notation outside it; integral doubles render without a fractional
// part ("1", not "1.0").
func Serialize(v Value) string {
	return string(appendValue(nil, v))
}

// SerializeIndent renders a Value as pretty-printed JSON text, one entry per
// line, nested entries indented by repetitions of indent. Whitespace aside,
// the output is identical to Serialize and round-trips to the same Value.
func SerializeIndent(v Value, indent string) string {
	return string(appendIndented(nil, v, indent, 0))
}

// String returns the compact JSON form of the value.
func (v Value) String() string {
	return Serialize(v)
}

func appendValue(dst []byte, v Value) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		return strconv.AppendBool(dst, v.b)
	case KindNumber:
		return appendNumber(dst, v.n)
	case KindString:
		return appendQuoted(dst, v.s)
	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.a {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendValue(dst, e)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, key := range v.o.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, key)
			dst = append(dst, ':')
			dst = appendValue(dst, v.o.values[key])
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

func appendNumber(dst []byte, n float64) []byte {
	// Shortest round-trip form, keeping plain notation for the
	// magnitudes people actually write as timestamps and counters.
	format := byte('f')
	if abs := math.Abs(n); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.AppendFloat(dst, n, format, -1, 64)
}

func appendIndented(dst []byte, v Value, indent string, depth int) []byte {
	switch v.kind {
	case KindArray:
		if len(v.a) == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[')
		for i, e := range v.a {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNewline(dst, indent, depth+1)
			dst = appendIndented(dst, e, indent, depth+1)
		}
		dst = appendNewline(dst, indent, depth)
		return append(dst, ']')
	case KindObject:
		if v.o.Len() == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, '{')
		for i, key := range v.o.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNewline(dst, indent, depth+1)
			dst = appendQuoted(dst, key)
			dst = append(dst, ": "...)
			dst = appendIndented(dst, v.o.values[key], indent, depth+1)
		}
		dst = appendNewline(dst, indent, depth)
		return append(dst, '}')
	default:
		return appendValue(dst, v)
	}
}

func appendNewline(dst []byte, indent string, depth int) []byte {
	dst = append(dst, '\n')
	for i := 0; i < depth; i++ {
		dst = append(dst, indent...)
	}
	return dst
}

// appendQuoted writes s as a JSON string literal. Quote, backslash and the
// control range U+0000..U+001F are escaped, the short escapes where defined
// and \u00xx otherwise. Everything else, including non-ASCII, passes through.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\b':
			dst = append(dst, '\\', 'b')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c < 0x20:
			dst = append(dst, fmt.Sprintf(`\u%04x`, c)...)
		default:
			// Multi-byte UTF-8 sequences pass through byte by byte.
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}
