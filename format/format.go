package format

import (
	"fmt"
	"strings"

	"github.com/0xalexb/nsconf/edit"
	"github.com/0xalexb/nsconf/syntax"
	"github.com/0xalexb/nsconf/value"
)

// Options controls the canonical layout.
type Options struct {
	// Indent is one nesting level. Empty means edit.DefaultIndent.
	Indent string `yaml:"indent"`
}

func (o Options) unit() string {
	if o.Indent == "" {
		return edit.DefaultIndent
	}

	return o.Indent
}

// Source reformats the whole document. On error text is returned unchanged.
func Source(text string, opts Options) (string, error) {
	f := formatter{text: text, unit: opts.unit()}

	_, err := f.scope(0, len(text), 0, true)
	if err != nil {
		return text, err
	}

	return f.text, nil
}

// Namespace reformats the namespace at path, header and body, leaving the rest
// of the document as is. The header is indented for the nesting depth implied
// by path.
func Namespace(text, path string, opts Options) (string, error) {
	ns, err := syntax.FindNamespace(text, path)
	if err != nil {
		return text, err
	}

	f := formatter{text: text, unit: opts.unit()}

	_, err = f.namespace(ns.Keyword.Begin, len(text), strings.Count(path, value.PathSeparator))
	if err != nil {
		return text, err
	}

	return f.text, nil
}

// Check reports whether text is already in canonical layout.
func Check(text string, opts Options) (bool, error) {
	out, err := Source(text, opts)
	if err != nil {
		return false, err
	}

	return out == text, nil
}

type element uint8

const (
	elementNone element = iota
	elementComment
	elementStatement
)

// formatter rewrites text in place. Offsets below the current position of a
// walk are final; every edit shifts the end of each enclosing scope by its delta.
type formatter struct {
	text string
	unit string
}

// scope formats the statements in [begin, end) as the contents of a scope at
// depth, including the trailing gap up to end, and returns the new end.
func (f *formatter) scope(begin, end, depth int, root bool) (int, error) {
	pos := begin
	prev := elementNone

	for {
		start, dirty := f.next(pos, end)
		if start == end {
			closing := "\n" + f.indent(depth-1)
			if root {
				closing = ""
				if prev != elementNone {
					closing = "\n"
				}
			}

			if !dirty {
				end += f.replace(pos, end, closing)
			}

			return end, nil
		}

		var cls syntax.Classifier

		kind := cls.Classify(f.text, start)

		current := elementStatement
		if kind == syntax.KindComment {
			current = elementComment
		}

		if !dirty {
			delta := f.replace(pos, start, f.gap(f.text[pos:start], prev, current, depth, root))
			start += delta
			end += delta
		}

		var (
			next int
			err  error
		)

		before := len(f.text)

		switch kind {
		case syntax.KindComment:
			next = f.comment(start)
		case syntax.KindNamespace:
			next, err = f.namespace(start, end, depth)
		case syntax.KindVariable:
			next, err = f.variable(start, end)
		default:
			err = fmt.Errorf("%w: offset %d: unexpected %q", syntax.ErrMalformed, start, f.text[start])
		}

		if err != nil {
			return 0, err
		}

		end += len(f.text) - before
		pos = next
		prev = current
	}
}

// next returns the offset of the next comment, quote or identifier in
// [pos, end), or end. dirty reports bytes other than whitespace on the way.
func (f *formatter) next(pos, end int) (int, bool) {
	dirty := false

	for i := pos; i < end; i++ {
		c := f.text[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
		case strings.HasPrefix(f.text[i:], syntax.CommentMarker), c == value.Quote, value.IsIdentChar(c):
			return i, dirty
		default:
			dirty = true
		}
	}

	return end, dirty
}

func (f *formatter) gap(current string, prev, next element, depth int, root bool) string {
	indent := f.indent(depth)

	switch {
	case prev == elementNone && root:
		return ""
	case prev == elementNone:
		return "\n" + indent
	case next == elementComment && !strings.Contains(current, "\n"):
		return " "
	case strings.Count(current, "\n") > 1:
		return "\n\n" + indent
	default:
		return "\n" + indent
	}
}

// comment trims trailing blanks of the comment at start and returns its end.
func (f *formatter) comment(start int) int {
	end := len(f.text)
	if i := strings.IndexByte(f.text[start:], syntax.Newline); i >= 0 {
		end = start + i
	}

	trimmed := strings.TrimRight(f.text[start:end], " \t\r")
	f.replace(start, end, trimmed)

	return start + len(trimmed)
}

// variable rewrites the declaration at start as "Type name = value;" unless a
// comment sits between its tokens, and returns its end.
func (f *formatter) variable(start, end int) (int, error) {
	span, err := syntax.ExtractVariableSpan(f.text, start)
	if err != nil {
		return 0, fmt.Errorf("offset %d: %w", start, err)
	}

	if span.Semicolon >= end {
		return 0, fmt.Errorf("%w: offset %d: declaration crosses its scope", syntax.ErrMalformed, start)
	}

	whole := span.Whole()
	if f.hasComment(whole.Begin, span.Literal.Begin) || f.hasComment(span.Literal.End+1, span.Semicolon) {
		return whole.End + 1, nil
	}

	canonical := fmt.Sprintf("%s %s = %s%c",
		span.Type.Text(f.text), span.Name.Text(f.text), span.Literal.Text(f.text), syntax.Semicolon)
	f.replace(whole.Begin, whole.End+1, canonical)

	return whole.Begin + len(canonical), nil
}

// namespace rewrites the header of the namespace at start, formats its body at
// depth+1 and returns the offset just past its closing brace.
func (f *formatter) namespace(start, end, depth int) (int, error) {
	span, err := syntax.ExtractNamespaceSpan(f.text, start)
	if err != nil {
		return 0, fmt.Errorf("offset %d: %w", start, err)
	}

	if span.Close >= end {
		return 0, fmt.Errorf("%w: offset %d: namespace crosses its scope", syntax.ErrMalformed, start)
	}

	name := span.Name.Text(f.text)
	closing := span.Close

	if !f.hasComment(span.Keyword.Begin, span.Open) {
		header := syntax.NamespaceKeyword + " " + name + "\n" + f.indent(depth) + string(syntax.ScopeOpen)
		rewrite := syntax.Replacement(syntax.Span{Begin: span.Keyword.Begin, End: span.Open}, header)
		f.replace(span.Keyword.Begin, span.Open+1, header)

		span.Open = span.Keyword.Begin + len(header) - 1
		closing = syntax.Span{Begin: closing, End: closing}.Rebase(rewrite).Begin
	}

	closing, err = f.scope(span.Open+1, closing, depth+1, false)
	if err != nil {
		return 0, fmt.Errorf("in namespace %q: %w", name, err)
	}

	return closing + 1, nil
}

func (f *formatter) hasComment(begin, end int) bool {
	return strings.Contains(f.text[begin:end], syntax.CommentMarker)
}

func (f *formatter) indent(depth int) string {
	if depth <= 0 {
		return ""
	}

	return strings.Repeat(f.unit, depth)
}

// replace swaps [begin, end) for text and returns the length delta.
func (f *formatter) replace(begin, end int, text string) int {
	if f.text[begin:end] == text {
		return 0
	}

	f.text = f.text[:begin] + text + f.text[end:]

	return len(text) - (end - begin)
}
