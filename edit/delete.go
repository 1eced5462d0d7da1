package edit

import (
	"fmt"

	"github.com/0xalexb/nsconf/syntax"
	"github.com/0xalexb/nsconf/value"
)

// DeleteVariable erases the declaration at path, from its type token through
// its semicolon. Surrounding whitespace and comments are kept.
func DeleteVariable(text, path string) (string, error) {
	span, err := syntax.FindVariableSpan(text, path)
	if err != nil {
		return text, err
	}

	return apply(text, syntax.Deletion(span.Whole()))
}

// DeleteNamespace erases the namespace at path, from its keyword through its
// closing brace.
func DeleteNamespace(text, path string) (string, error) {
	span, err := syntax.FindNamespace(text, path)
	if err != nil {
		return text, err
	}

	return apply(text, syntax.Deletion(span.Whole()))
}

// ReplaceValue rewrites the value of the existing declaration at variable's
// path. The declared type and array-ness must match variable unless retype is
// set, in which case the type token is rewritten as well.
func ReplaceValue(text string, variable value.Variable, retype bool) (string, error) {
	err := variable.Validate()
	if err != nil {
		return text, err
	}

	span, err := syntax.FindVariableSpan(text, variable.Path())
	if err != nil {
		return text, err
	}

	declared := value.ParseDataType(span.Type.Text(text))
	if !retype && (declared != variable.Type() || span.IsArray != variable.IsArray()) {
		return text, fmt.Errorf("%w: %q is declared as %s", value.ErrTypeMismatch, variable.Path(), describe(declared, span.IsArray))
	}

	out, err := apply(text, syntax.Replacement(span.Literal, variable.Literal()))
	if err != nil || declared == variable.Type() {
		return out, err
	}

	// The type token precedes the literal, so its span survived the first edit.
	out, err = apply(out, syntax.Replacement(span.Type, variable.Type().String()))
	if err != nil {
		return text, err
	}

	return out, nil
}

func describe(typ value.DataType, isArray bool) string {
	if isArray {
		return typ.String() + " array"
	}

	return typ.String()
}
