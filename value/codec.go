package value

import (
	"strings"
)

// Delimiters of the value grammar.
const (
	Quote      = '"'
	Escape     = '\\'
	ArrayOpen  = '{'
	ArrayClose = '}'
	Separator  = ','
)

const commentMarker = "//"

// IsEscaped reports whether the byte at offset i is preceded by an odd run of
// escape markers, which makes it literal.
func IsEscaped(text string, i int) bool {
	run := 0
	for j := i - 1; j >= 0 && text[j] == Escape; j-- {
		run++
	}

	return run%2 == 1
}

// EscapeString prefixes every quote and every escape marker with an escape marker.
// The input must not already be escaped.
func EscapeString(raw string) string {
	if !strings.ContainsAny(raw, `"\`) {
		return raw
	}

	var b strings.Builder

	b.Grow(len(raw) + 4)

	for i := range len(raw) {
		if raw[i] == Quote || raw[i] == Escape {
			b.WriteByte(Escape)
		}

		b.WriteByte(raw[i])
	}

	return b.String()
}

// UnescapeString removes the escape marker in front of every escaped quote or
// escape marker. Other escape sequences are kept verbatim.
func UnescapeString(escaped string) string {
	if !strings.ContainsRune(escaped, Escape) {
		return escaped
	}

	var b strings.Builder

	b.Grow(len(escaped))

	for i := 0; i < len(escaped); i++ {
		c := escaped[i]
		if c == Escape && i+1 < len(escaped) && (escaped[i+1] == Quote || escaped[i+1] == Escape) {
			i++
			c = escaped[i]
		}

		b.WriteByte(c)
	}

	return b.String()
}

// QuoteString escapes raw and wraps it in quotes.
func QuoteString(raw string) string {
	return string(Quote) + EscapeString(raw) + string(Quote)
}

// EncodeArray renders elements as an array literal, each element escaped and quoted.
func EncodeArray(elements []string) string {
	var b strings.Builder

	b.WriteByte(ArrayOpen)

	for i, element := range elements {
		if i > 0 {
			b.WriteByte(Separator)
		}

		b.WriteString(QuoteString(element))
	}

	b.WriteByte(ArrayClose)

	return b.String()
}

// DecodeArray splits an array literal into its unescaped elements.
// Separators, whitespace and comments between elements are ignored, as are
// separators that occur inside quotes. An unterminated final element runs to
// the end of the literal.
func DecodeArray(literal string) []string {
	elements := []string{}

	for i := 0; i < len(literal); i++ {
		switch {
		case strings.HasPrefix(literal[i:], commentMarker):
			end := strings.IndexByte(literal[i:], '\n')
			if end < 0 {
				return elements
			}

			i += end
		case literal[i] == Quote:
			end := closingQuote(literal, i+1)
			if end < 0 {
				return append(elements, UnescapeString(literal[i+1:]))
			}

			elements = append(elements, UnescapeString(literal[i+1:end]))
			i = end
		}
	}

	return elements
}

// IsArray reports whether literal is brace delimited and its quotes are balanced.
func IsArray(literal string) bool {
	literal = strings.TrimSpace(literal)
	if len(literal) < 2 || literal[0] != ArrayOpen || literal[len(literal)-1] != ArrayClose {
		return false
	}

	for i := 1; i < len(literal)-1; i++ {
		if literal[i] != Quote {
			continue
		}

		end := closingQuote(literal[:len(literal)-1], i+1)
		if end < 0 {
			return false
		}

		i = end
	}

	return true
}

// closingQuote returns the offset of the first unescaped quote at or after from, or -1.
func closingQuote(text string, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] == Quote && !IsEscaped(text, i) {
			return i
		}
	}

	return -1
}
