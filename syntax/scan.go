package syntax

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/0xalexb/nsconf/value"
)

// ErrUnknownMode is returned when parsing an unrecognized mode name.
var ErrUnknownMode = errors.New("unknown scan mode")

// Mode selects how a scan reacts to constructs it cannot delimit.
type Mode uint8

const (
	// Lenient skips malformed constructs and keeps scanning.
	Lenient Mode = iota
	// Strict aborts the scan on the first malformed construct.
	Strict
)

// ParseMode maps "lenient" or "strict" (any case) to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}

	return "lenient"
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(data []byte) error {
	parsed, err := ParseMode(string(data))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Statement is one top-level construct of a scope: a namespace block or a
// variable declaration.
type Statement struct {
	Kind      Kind
	Namespace NamespaceSpan
	Variable  VariableSpan
}

// Whole spans the entire construct.
func (s Statement) Whole() Span {
	if s.Kind == KindNamespace {
		return s.Namespace.Whole()
	}

	return s.Variable.Whole()
}

// Name returns the namespace or variable name.
func (s Statement) Name(scope string) string {
	if s.Kind == KindNamespace {
		return s.Namespace.Name.Text(scope)
	}

	return s.Variable.Name.Text(scope)
}

// Scanner walks scopes statement by statement.
type Scanner struct {
	Mode Mode
	// OnSkip, if set, is told about every construct a lenient scan skips.
	// Offsets are relative to the scanned scope.
	OnSkip func(offset int, err error)
}

// Statements yields the top-level statements of scope in order, stepping over
// nested namespace bodies. In Strict mode the first malformed construct is
// yielded as an error and ends the sequence. In Lenient mode it is reported to
// OnSkip once and the scan resumes after its type and name tokens. A namespace
// whose brace is never closed is still yielded, with a body running to the end
// of scope.
func (s Scanner) Statements(scope string) iter.Seq2[Statement, error] {
	return func(yield func(Statement, error) bool) {
		var cls Classifier

		for i := 0; i < len(scope); i++ {
			var (
				statement Statement
				err       error
			)

			switch cls.Classify(scope, i) {
			case KindNamespace:
				statement.Kind = KindNamespace
				statement.Namespace, err = ExtractNamespaceSpan(scope, i)
			case KindVariable:
				statement.Kind = KindVariable
				statement.Variable, err = ExtractVariableSpan(scope, i)
			case KindValue:
				if !cls.InValue() || s.Mode == Lenient {
					continue
				}

				_, err = closingQuote(scope, i)
				if err == nil {
					err = fmt.Errorf("%w: stray quoted value", ErrMalformed)
				}
			default:
				continue
			}

			if err != nil {
				err = fmt.Errorf("offset %d: %w", i, err)

				if s.Mode == Strict {
					yield(Statement{}, err)

					return
				}

				if s.OnSkip != nil {
					s.OnSkip(i, err)
				}

				var recovered bool

				statement, recovered = recoverStatement(scope, i, statement.Kind, err)
				if !recovered {
					i = headEnd(scope, i) - 1

					continue
				}
			}

			if !yield(statement, nil) {
				return
			}

			i = statement.Whole().End
		}
	}
}

// recoverStatement turns a namespace left unclosed into a statement ending at
// the end of scope.
func recoverStatement(scope string, i int, kind Kind, err error) (Statement, bool) {
	if kind != KindNamespace || !errors.Is(err, errUnbalanced) {
		return Statement{}, false
	}

	ns, ok := extractUnclosedNamespace(scope, i)
	if !ok {
		return Statement{}, false
	}

	return Statement{Kind: KindNamespace, Namespace: ns, Variable: VariableSpan{}}, true
}

// headEnd returns the offset past the leading identifier at i and the name
// that follows it, if any.
func headEnd(scope string, i int) int {
	end := identEnd(scope, i)

	next := skipTrivia(scope, end)
	if next < len(scope) && value.IsIdentChar(scope[next]) && !isNamespaceKeyword(scope, next) {
		return identEnd(scope, next)
	}

	return end
}

// Flatten scans scope recursively and returns every variable with its path
// qualified by the enclosing namespaces, in the order they appear.
func (s Scanner) Flatten(scope string) ([]value.Variable, error) {
	return s.flatten(scope, 0, "", nil)
}

func (s Scanner) flatten(scope string, base int, prefix string, out []value.Variable) ([]value.Variable, error) {
	nested := s
	if s.OnSkip != nil {
		nested.OnSkip = func(offset int, err error) {
			s.OnSkip(base+offset, err)
		}
	}

	for statement, err := range nested.Statements(scope) {
		if err != nil {
			if base > 0 {
				return nil, fmt.Errorf("in namespace %q at offset %d: %w", strings.TrimSuffix(prefix, value.PathSeparator), base, err)
			}

			return nil, err
		}

		if statement.Kind == KindNamespace {
			ns := statement.Namespace
			path := prefix + ns.Name.Text(scope) + value.PathSeparator

			out, err = s.flatten(ns.BodyText(scope), base+ns.BodyOffset(), path, out)
			if err != nil {
				return nil, err
			}

			continue
		}

		out = append(out, variableAt(scope, statement.Variable, prefix+statement.Variable.Name.Text(scope)))
	}

	return out, nil
}

// Flatten scans scope with a scanner in the given mode.
func Flatten(scope string, mode Mode) ([]value.Variable, error) {
	return Scanner{Mode: mode, OnSkip: nil}.Flatten(scope)
}

// variableAt builds the variable declared at span. Scalars are unescaped;
// array literals are kept as written.
func variableAt(scope string, span VariableSpan, path string) value.Variable {
	typ := value.ParseDataType(span.Type.Text(scope))
	raw := span.Value.Text(scope)

	if !span.IsArray {
		raw = value.UnescapeString(raw)
	}

	return value.New(path, typ, raw, span.IsArray)
}
