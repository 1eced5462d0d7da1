package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/nsconf/value"
)

//nolint:gochecknoglobals // stateless scanner used by targeted lookups.
var strict = Scanner{Mode: Strict, OnSkip: nil}

// FindNamespace locates the namespace addressed by path. Each segment is matched
// against top-level namespaces of the current scope only. When a segment names
// several sibling namespaces, the first one whose body resolves the rest of the
// path wins. The returned span addresses scope.
func FindNamespace(scope, path string) (NamespaceSpan, error) {
	if path == "" {
		return NamespaceSpan{}, ErrEmptyPath
	}

	var found NamespaceSpan

	ok, err := eachNamespace(scope, path, 0, func(ns NamespaceSpan) bool {
		found = ns

		return true
	})
	if err != nil {
		return NamespaceSpan{}, err
	}

	if !ok {
		return NamespaceSpan{}, fmt.Errorf("%w: namespace %q", ErrNotFound, path)
	}

	return found, nil
}

// FindVariableSpan locates the declaration addressed by path. Without a
// namespace prefix only top-level declarations match; namespace bodies are
// skipped as opaque blocks. With a prefix the declaration is searched in the
// body of every namespace that resolves the prefix, in document order.
func FindVariableSpan(scope, path string) (VariableSpan, error) {
	if path == "" {
		return VariableSpan{}, ErrEmptyPath
	}

	nsPath, name := value.SplitPath(path)
	if nsPath == "" {
		span, ok, err := findDeclaration(scope, name)
		if err != nil {
			return VariableSpan{}, err
		}

		if !ok {
			return VariableSpan{}, fmt.Errorf("%w: variable %q", ErrNotFound, path)
		}

		return span, nil
	}

	var (
		found    VariableSpan
		innerErr error
	)

	ok, err := eachNamespace(scope, nsPath, 0, func(ns NamespaceSpan) bool {
		span, ok, err := findDeclaration(ns.BodyText(scope), name)
		if err != nil {
			innerErr = err

			return true
		}

		if ok {
			found = span.Shift(ns.BodyOffset())
		}

		return ok
	})

	switch {
	case err != nil:
		return VariableSpan{}, err
	case innerErr != nil:
		return VariableSpan{}, fmt.Errorf("in namespace %q: %w", nsPath, innerErr)
	case !ok:
		return VariableSpan{}, fmt.Errorf("%w: variable %q", ErrNotFound, path)
	default:
		return found, nil
	}
}

// FindVariable looks up a single declaration and decodes it without scanning
// the rest of the document.
func FindVariable(scope, path string) (value.Variable, error) {
	span, err := FindVariableSpan(scope, path)
	if err != nil {
		return value.Variable{}, err
	}

	return variableAt(scope, span, path), nil
}

// FindConstruct resolves path to a variable declaration or, failing that, to a
// namespace block, and returns the span of the whole construct.
func FindConstruct(scope, path string) (Span, Kind, error) {
	variable, err := FindVariableSpan(scope, path)
	if err == nil {
		return variable.Whole(), KindVariable, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return Absent, KindOther, err
	}

	ns, err := FindNamespace(scope, path)
	if err != nil {
		return Absent, KindOther, err
	}

	return ns.Whole(), KindNamespace, nil
}

// DeepestNamespace walks the namespace segments from the top and returns the
// deepest one that exists, taking the first sibling at every level, together
// with the number of segments it resolved. depth is 0 when not even the first
// segment exists.
func DeepestNamespace(scope string, segments []string) (NamespaceSpan, int, error) {
	var (
		deepest NamespaceSpan
		base    int
	)

	current := scope

	for depth, segment := range segments {
		ns, ok, err := findTopNamespace(current, segment)
		if err != nil {
			return NamespaceSpan{}, 0, err
		}

		if !ok {
			return deepest, depth, nil
		}

		deepest = ns.Shift(base)
		base = deepest.BodyOffset()
		current = ns.BodyText(current)
	}

	return deepest, len(segments), nil
}

func eachNamespace(scope, path string, base int, visit func(NamespaceSpan) bool) (bool, error) {
	head, rest, nested := strings.Cut(path, value.PathSeparator)

	for statement, err := range strict.Statements(scope) {
		if err != nil {
			return false, err
		}

		if statement.Kind != KindNamespace || statement.Name(scope) != head {
			continue
		}

		ns := statement.Namespace
		if !nested {
			if visit(ns.Shift(base)) {
				return true, nil
			}

			continue
		}

		stop, err := eachNamespace(ns.BodyText(scope), rest, base+ns.BodyOffset(), visit)
		if err != nil {
			return false, fmt.Errorf("in namespace %q: %w", head, err)
		}

		if stop {
			return true, nil
		}
	}

	return false, nil
}

func findTopNamespace(scope, name string) (NamespaceSpan, bool, error) {
	for statement, err := range strict.Statements(scope) {
		if err != nil {
			return NamespaceSpan{}, false, err
		}

		if statement.Kind == KindNamespace && statement.Name(scope) == name {
			return statement.Namespace, true, nil
		}
	}

	return NamespaceSpan{}, false, nil
}

func findDeclaration(scope, name string) (VariableSpan, bool, error) {
	for statement, err := range strict.Statements(scope) {
		if err != nil {
			return VariableSpan{}, false, err
		}

		if statement.Kind == KindVariable && statement.Name(scope) == name {
			return statement.Variable, true, nil
		}
	}

	return VariableSpan{}, false, nil
}

