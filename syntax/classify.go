package syntax

import (
	"strings"

	"github.com/0xalexb/nsconf/value"
)

// Lexical markers of the grammar.
const (
	NamespaceKeyword = "ns"
	CommentMarker    = "//"
	ScopeOpen        = '{'
	ScopeClose       = '}'
	Equals           = '='
	Semicolon        = ';'
	Newline          = '\n'
)

// Kind classifies one byte of a scope during a forward scan.
type Kind uint8

// Classification results.
const (
	KindOther Kind = iota
	KindComment
	KindValue
	KindVariable
	KindNamespace
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindValue:
		return "value"
	case KindVariable:
		return "variable"
	case KindNamespace:
		return "namespace"
	default:
		return "other"
	}
}

// Classifier classifies bytes left to right, carrying whether the scan is
// inside a line comment or a quoted value. It must see every offset of a pass
// exactly once, in order; offsets skipped by a caller must end outside any
// comment or value.
type Classifier struct {
	inComment bool
	inValue   bool
}

// Classify returns the kind of the byte at offset i and updates the scan state.
//
// Bytes of a comment, from the marker up to but excluding the newline, are
// KindComment. Quotes and the bytes between them are KindValue; a quote closes
// the value only when preceded by an even run of escape markers. Outside both,
// the namespace keyword yields KindNamespace and the first byte of any other
// identifier yields KindVariable.
func (c *Classifier) Classify(scope string, i int) Kind {
	ch := scope[i]

	switch {
	case c.inComment:
		if ch == Newline {
			c.inComment = false

			return KindOther
		}

		return KindComment
	case c.inValue:
		if ch == value.Quote && !value.IsEscaped(scope, i) {
			c.inValue = false
		}

		return KindValue
	case strings.HasPrefix(scope[i:], CommentMarker):
		c.inComment = true

		return KindComment
	case ch == value.Quote:
		c.inValue = true

		return KindValue
	case !value.IsIdentChar(ch) || (i > 0 && value.IsIdentChar(scope[i-1])):
		return KindOther
	case isNamespaceKeyword(scope, i):
		return KindNamespace
	default:
		return KindVariable
	}
}

// InComment reports whether the last classified byte left the scan inside a comment.
func (c *Classifier) InComment() bool {
	return c.inComment
}

// InValue reports whether the last classified byte left the scan inside a quoted value.
func (c *Classifier) InValue() bool {
	return c.inValue
}

// Reset clears the scan state.
func (c *Classifier) Reset() {
	c.inComment = false
	c.inValue = false
}

func isNamespaceKeyword(scope string, i int) bool {
	end := i + len(NamespaceKeyword)

	return strings.HasPrefix(scope[i:], NamespaceKeyword) && (end == len(scope) || !value.IsIdentChar(scope[end]))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// skipTrivia returns the offset of the first byte at or after i that is neither
// whitespace nor part of a comment.
func skipTrivia(scope string, i int) int {
	for i < len(scope) {
		switch {
		case isSpace(scope[i]):
			i++
		case strings.HasPrefix(scope[i:], CommentMarker):
			end := strings.IndexByte(scope[i:], Newline)
			if end < 0 {
				return len(scope)
			}

			i += end + 1
		default:
			return i
		}
	}

	return i
}

// identEnd returns the offset just past the identifier starting at i.
func identEnd(scope string, i int) int {
	for i < len(scope) && value.IsIdentChar(scope[i]) {
		i++
	}

	return i
}

// matchBrace returns the offset of the brace closing the one at open, ignoring
// braces inside comments and quoted values.
func matchBrace(scope string, open int) (int, error) {
	var cls Classifier

	depth := 1

	for i := open + 1; i < len(scope); i++ {
		if cls.Classify(scope, i) != KindOther {
			continue
		}

		switch scope[i] {
		case ScopeOpen:
			depth++
		case ScopeClose:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return 0, errUnbalanced
}

// closingQuote returns the offset of the unescaped quote closing the one at open.
func closingQuote(scope string, open int) (int, error) {
	for i := open + 1; i < len(scope); i++ {
		if scope[i] == value.Quote && !value.IsEscaped(scope, i) {
			return i, nil
		}
	}

	return 0, errUnterminated
}
