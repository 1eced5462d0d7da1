package syntax

import (
	"fmt"
)

const absent = -1

// Span is an inclusive [Begin, End] byte range into one specific text buffer.
// Spans computed against a nested scope must be shifted by the scope's own
// offset before they address the enclosing text.
type Span struct {
	Begin int
	End   int
}

// Absent is the sentinel for an empty or unset span.
//
//nolint:gochecknoglobals // immutable sentinel.
var Absent = Span{Begin: absent, End: absent}

// NewSpan builds a span and rejects inverted or negative bounds.
func NewSpan(begin, end int) (Span, error) {
	if begin < 0 || end < 0 || begin > end {
		return Absent, fmt.Errorf("%w: invalid span [%d, %d]", ErrMalformed, begin, end)
	}

	return Span{Begin: begin, End: end}, nil
}

// IsAbsent reports whether s is the absent sentinel.
func (s Span) IsAbsent() bool {
	return s.Begin == absent
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	if s.IsAbsent() {
		return 0
	}

	return s.End - s.Begin + 1
}

// Shift moves s by delta bytes. Absent spans stay absent.
func (s Span) Shift(delta int) Span {
	if s.IsAbsent() {
		return s
	}

	return Span{Begin: s.Begin + delta, End: s.End + delta}
}

// Text returns the bytes of src covered by s, or "" for an absent span.
func (s Span) Text(src string) string {
	if s.IsAbsent() {
		return ""
	}

	return src[s.Begin : s.End+1]
}

// Contains reports whether offset lies inside s.
func (s Span) Contains(offset int) bool {
	return !s.IsAbsent() && s.Begin <= offset && offset <= s.End
}

// Rebase maps s from the buffer before e was applied to the buffer after it.
// A span entirely after the edit moves by the edit delta, a span that encloses
// the edited region grows or shrinks by it, and a span that only partially
// overlaps removed bytes no longer exists and becomes Absent.
func (s Span) Rebase(e Edit) Span {
	if s.IsAbsent() {
		return s
	}

	removedEnd := e.Offset + e.Removed

	switch {
	case s.End < e.Offset:
		return s
	case s.Begin >= removedEnd:
		return s.Shift(e.Delta())
	case s.Begin < e.Offset && s.End >= removedEnd-1:
		return Span{Begin: s.Begin, End: s.End + e.Delta()}
	default:
		return Absent
	}
}

// String implements fmt.Stringer.
func (s Span) String() string {
	if s.IsAbsent() {
		return "[absent]"
	}

	return fmt.Sprintf("[%d, %d]", s.Begin, s.End)
}

// Edit replaces Removed bytes at Offset with Text.
type Edit struct {
	Offset  int
	Removed int
	Text    string
}

// Insertion returns an edit inserting text at offset.
func Insertion(offset int, text string) Edit {
	return Edit{Offset: offset, Text: text}
}

// Deletion returns an edit erasing the inclusive span s.
func Deletion(s Span) Edit {
	return Edit{Offset: s.Begin, Removed: s.Len()}
}

// Replacement returns an edit replacing the inclusive span s with text.
func Replacement(s Span, text string) Edit {
	return Edit{Offset: s.Begin, Removed: s.Len(), Text: text}
}

// Delta is the change in buffer length caused by the edit.
func (e Edit) Delta() int {
	return len(e.Text) - e.Removed
}

// Apply returns src with the edit applied.
func (e Edit) Apply(src string) (string, error) {
	if e.Offset < 0 || e.Removed < 0 || e.Offset+e.Removed > len(src) {
		return src, fmt.Errorf("%w: edit at %d removing %d exceeds %d bytes", ErrMalformed, e.Offset, e.Removed, len(src))
	}

	return src[:e.Offset] + e.Text + src[e.Offset+e.Removed:], nil
}

// NamespaceSpan locates the pieces of one namespace block.
type NamespaceSpan struct {
	Keyword Span
	Name    Span
	// Body excludes the braces and is Absent when the braces are adjacent.
	Body  Span
	Open  int
	Close int
}

// Whole spans the keyword through the closing brace.
func (n NamespaceSpan) Whole() Span {
	return Span{Begin: n.Keyword.Begin, End: n.Close}
}

func (n NamespaceSpan) closedAt(closing int) NamespaceSpan {
	n.Close = closing
	n.Body = Absent

	if closing > n.Open+1 {
		n.Body = Span{Begin: n.Open + 1, End: closing - 1}
	}

	return n
}

// BodyOffset is the offset of the first byte after the opening brace.
func (n NamespaceSpan) BodyOffset() int {
	return n.Open + 1
}

// BodyText returns the text between the braces.
func (n NamespaceSpan) BodyText(src string) string {
	return src[n.Open+1 : n.Close]
}

// Shift moves every component by delta.
func (n NamespaceSpan) Shift(delta int) NamespaceSpan {
	return NamespaceSpan{
		Keyword: n.Keyword.Shift(delta),
		Name:    n.Name.Shift(delta),
		Body:    n.Body.Shift(delta),
		Open:    n.Open + delta,
		Close:   n.Close + delta,
	}
}

// VariableSpan locates the pieces of one variable declaration.
type VariableSpan struct {
	Type   Span
	Name   Span
	Equals int
	// Value covers the scalar payload without quotes, or the array literal with
	// its braces. It is Absent for an empty scalar.
	Value Span
	// Literal covers the value including its delimiters.
	Literal   Span
	Semicolon int
	IsArray   bool
}

// Whole spans the type token through the terminating semicolon.
func (v VariableSpan) Whole() Span {
	return Span{Begin: v.Type.Begin, End: v.Semicolon}
}

// Shift moves every component by delta.
func (v VariableSpan) Shift(delta int) VariableSpan {
	return VariableSpan{
		Type:      v.Type.Shift(delta),
		Name:      v.Name.Shift(delta),
		Equals:    v.Equals + delta,
		Value:     v.Value.Shift(delta),
		Literal:   v.Literal.Shift(delta),
		Semicolon: v.Semicolon + delta,
		IsArray:   v.IsArray,
	}
}
