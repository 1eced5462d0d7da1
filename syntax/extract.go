package syntax

import (
	"fmt"

	"github.com/0xalexb/nsconf/value"
)

//nolint:gochecknoglobals // wrapped sentinels.
var (
	errUnbalanced   = fmt.Errorf("%w: unbalanced braces", ErrMalformed)
	errUnterminated = fmt.Errorf("%w: unterminated quoted value", ErrMalformed)
)

// ExtractNamespaceSpan delimits the namespace whose keyword starts at keywordStart.
func ExtractNamespaceSpan(scope string, keywordStart int) (NamespaceSpan, error) {
	ns, err := namespaceHeader(scope, keywordStart)
	if err != nil {
		return NamespaceSpan{}, err
	}

	closing, err := matchBrace(scope, ns.Open)
	if err != nil {
		return NamespaceSpan{}, fmt.Errorf("namespace %q: %w", ns.Name.Text(scope), err)
	}

	return ns.closedAt(closing), nil
}

// extractUnclosedNamespace delimits a namespace whose opening brace is never
// matched. Its body runs to the end of scope.
func extractUnclosedNamespace(scope string, keywordStart int) (NamespaceSpan, bool) {
	ns, err := namespaceHeader(scope, keywordStart)
	if err != nil {
		return NamespaceSpan{}, false
	}

	return ns.closedAt(len(scope)), true
}

// namespaceHeader delimits the keyword, name and opening brace of a namespace.
func namespaceHeader(scope string, keywordStart int) (NamespaceSpan, error) {
	if !isNamespaceKeyword(scope, keywordStart) {
		return NamespaceSpan{}, fmt.Errorf("%w: expected %q", ErrMalformed, NamespaceKeyword)
	}

	keywordEnd := keywordStart + len(NamespaceKeyword) - 1

	nameBegin := skipTrivia(scope, keywordEnd+1)

	nameEnd := identEnd(scope, nameBegin)
	if nameEnd == nameBegin {
		return NamespaceSpan{}, fmt.Errorf("%w: namespace without a name", ErrMalformed)
	}

	open := skipTrivia(scope, nameEnd)
	if open >= len(scope) || scope[open] != ScopeOpen {
		return NamespaceSpan{}, fmt.Errorf("%w: namespace %q without an opening brace", ErrMalformed, scope[nameBegin:nameEnd])
	}

	return NamespaceSpan{
		Keyword: Span{Begin: keywordStart, End: keywordEnd},
		Name:    Span{Begin: nameBegin, End: nameEnd - 1},
		Body:    Absent,
		Open:    open,
		Close:   0,
	}, nil
}

// ExtractVariableSpan delimits the declaration whose type token starts at typeStart.
func ExtractVariableSpan(scope string, typeStart int) (VariableSpan, error) {
	typeEnd := identEnd(scope, typeStart)
	if typeEnd == typeStart {
		return VariableSpan{}, fmt.Errorf("%w: expected a type", ErrMalformed)
	}

	keyword := scope[typeStart:typeEnd]
	if !value.ParseDataType(keyword).Valid() {
		return VariableSpan{}, fmt.Errorf("%w: unknown type %q", ErrMalformed, keyword)
	}

	nameBegin := skipTrivia(scope, typeEnd)

	nameEnd := identEnd(scope, nameBegin)
	if nameEnd == nameBegin {
		return VariableSpan{}, fmt.Errorf("%w: %s declaration without a name", ErrMalformed, keyword)
	}

	name := scope[nameBegin:nameEnd]

	equals := skipTrivia(scope, nameEnd)
	if equals >= len(scope) || scope[equals] != Equals {
		return VariableSpan{}, fmt.Errorf("%w: variable %q without %q", ErrMalformed, name, Equals)
	}

	literal, valueSpan, isArray, err := extractValue(scope, skipTrivia(scope, equals+1))
	if err != nil {
		return VariableSpan{}, fmt.Errorf("variable %q: %w", name, err)
	}

	semicolon := skipTrivia(scope, literal.End+1)
	if semicolon >= len(scope) || scope[semicolon] != Semicolon {
		return VariableSpan{}, fmt.Errorf("%w: variable %q without %q", ErrMalformed, name, Semicolon)
	}

	return VariableSpan{
		Type:      Span{Begin: typeStart, End: typeEnd - 1},
		Name:      Span{Begin: nameBegin, End: nameEnd - 1},
		Equals:    equals,
		Value:     valueSpan,
		Literal:   literal,
		Semicolon: semicolon,
		IsArray:   isArray,
	}, nil
}

// extractValue delimits the scalar or array literal starting at begin.
func extractValue(scope string, begin int) (Span, Span, bool, error) {
	if begin >= len(scope) {
		return Absent, Absent, false, fmt.Errorf("%w: missing value", ErrMalformed)
	}

	switch scope[begin] {
	case ScopeOpen:
		closing, err := matchBrace(scope, begin)
		if err != nil {
			return Absent, Absent, false, err
		}

		literal := Span{Begin: begin, End: closing}

		return literal, literal, true, nil
	case value.Quote:
		closing, err := closingQuote(scope, begin)
		if err != nil {
			return Absent, Absent, false, err
		}

		literal := Span{Begin: begin, End: closing}
		if closing == begin+1 {
			return literal, Absent, false, nil
		}

		return literal, Span{Begin: begin + 1, End: closing - 1}, false, nil
	default:
		return Absent, Absent, false, fmt.Errorf("%w: missing value", ErrMalformed)
	}
}
