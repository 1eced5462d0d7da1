package edit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/nsconf/syntax"
	"github.com/0xalexb/nsconf/value"
)

var (
	// ErrDuplicatePath is returned when a written variable's path is already declared.
	ErrDuplicatePath = errors.New("duplicate variable path")
	// ErrAnchorScope is returned when an anchor does not share the variable's namespace.
	ErrAnchorScope = errors.New("anchor is outside the variable's namespace")
)

// DefaultIndent is the indentation unit used when an Editor has none set.
const DefaultIndent = "\t"

// Editor writes declarations into documents, indenting inserted text with its unit.
type Editor struct {
	// Indent is one nesting level of indentation. Empty means DefaultIndent.
	Indent string
}

// WriteVariable inserts the declaration of variable at the end of its
// namespace. Missing namespaces along the path are created around it, nested
// in path order, inside the deepest one that exists. On error text is returned
// unchanged.
func (e Editor) WriteVariable(text string, variable value.Variable) (string, error) {
	err := checkInsertable(text, variable)
	if err != nil {
		return text, err
	}

	target, found, missing, err := resolveTarget(text, variable.Namespace())
	if err != nil {
		return text, err
	}

	if !found {
		return apply(text, appendToRoot(text, e.block(variable, missing, "")))
	}

	return apply(text, e.appendToNamespace(text, target, variable, missing))
}

// WriteVariables writes every variable in order, each against the text produced
// by the previous write. Either all of them are written or text is returned
// unchanged.
func (e Editor) WriteVariables(text string, variables []value.Variable) (string, error) {
	out := text

	for _, variable := range variables {
		var err error

		out, err = e.WriteVariable(out, variable)
		if err != nil {
			return text, fmt.Errorf("variable %q: %w", variable.Path(), err)
		}
	}

	return out, nil
}

// WriteVariableAfter inserts the declaration right after the variable or
// namespace at anchor, which must live in the same namespace.
func (e Editor) WriteVariableAfter(text string, variable value.Variable, anchor string) (string, error) {
	return e.writeAnchored(text, variable, anchor, false)
}

// WriteVariableBefore inserts the declaration right before the variable or
// namespace at anchor, which must live in the same namespace.
func (e Editor) WriteVariableBefore(text string, variable value.Variable, anchor string) (string, error) {
	return e.writeAnchored(text, variable, anchor, true)
}

func (e Editor) unit() string {
	if e.Indent == "" {
		return DefaultIndent
	}

	return e.Indent
}

func (e Editor) writeAnchored(text string, variable value.Variable, anchor string, before bool) (string, error) {
	err := checkInsertable(text, variable)
	if err != nil {
		return text, err
	}

	anchorNs, _ := value.SplitPath(anchor)
	if anchorNs != variable.Namespace() {
		return text, fmt.Errorf("%w: %q is not beside %q", ErrAnchorScope, anchor, variable.Path())
	}

	span, _, err := syntax.FindConstruct(text, anchor)
	if err != nil {
		return text, fmt.Errorf("anchor %q: %w", anchor, err)
	}

	if before {
		return apply(text, insertBefore(text, span, variable.Declaration()))
	}

	return apply(text, insertAfter(text, span, variable.Declaration()))
}

// block renders the declaration wrapped in the missing namespaces, every line
// indented by base plus one unit per nesting level. It has no trailing newline.
func (e Editor) block(variable value.Variable, missing []string, base string) string {
	var b strings.Builder

	indent := func(level int) string {
		return base + strings.Repeat(e.unit(), level)
	}

	for level, name := range missing {
		b.WriteString(indent(level) + syntax.NamespaceKeyword + " " + name + "\n")
		b.WriteString(indent(level) + string(syntax.ScopeOpen) + "\n")
	}

	b.WriteString(indent(len(missing)) + variable.Declaration())

	for level := len(missing) - 1; level >= 0; level-- {
		b.WriteString("\n" + indent(level) + string(syntax.ScopeClose))
	}

	return b.String()
}

func appendToRoot(text, block string) syntax.Edit {
	if text == "" || strings.HasSuffix(text, "\n") {
		return syntax.Insertion(len(text), block+"\n")
	}

	return syntax.Insertion(len(text), "\n"+block+"\n")
}

// appendToNamespace places block on its own line right before the closing
// brace of ns. A brace that shares its line with other text is moved to a new
// line at the header's indentation.
func (e Editor) appendToNamespace(text string, ns syntax.NamespaceSpan, variable value.Variable, missing []string) syntax.Edit {
	outer := lineIndent(text, ns.Keyword.Begin)
	block := e.block(variable, missing, outer+e.unit())

	start := lineStart(text, ns.Close)
	if start > ns.Open && isBlank(text[start:ns.Close]) {
		return syntax.Insertion(start, block+"\n")
	}

	trail := ns.Close
	for trail > ns.Open+1 && isIndent(text[trail-1]) {
		trail--
	}

	return syntax.Edit{Offset: trail, Removed: ns.Close - trail, Text: "\n" + block + "\n" + outer}
}

func insertAfter(text string, anchor syntax.Span, declaration string) syntax.Edit {
	lineEnd := len(text)
	if i := strings.IndexByte(text[anchor.End+1:], syntax.Newline); i >= 0 {
		lineEnd = anchor.End + 1 + i
	}

	rest := strings.TrimLeft(text[anchor.End+1:lineEnd], " \t\r")
	if rest == "" || strings.HasPrefix(rest, syntax.CommentMarker) {
		return syntax.Insertion(lineEnd, "\n"+lineIndent(text, anchor.Begin)+declaration)
	}

	return syntax.Insertion(anchor.End+1, " "+declaration)
}

func insertBefore(text string, anchor syntax.Span, declaration string) syntax.Edit {
	start := lineStart(text, anchor.Begin)
	if isBlank(text[start:anchor.Begin]) {
		return syntax.Insertion(start, text[start:anchor.Begin]+declaration+"\n")
	}

	return syntax.Insertion(anchor.Begin, declaration+" ")
}

// resolveTarget finds the namespace a declaration under nsPath goes into. found
// is false when the declaration belongs to the root; missing lists the
// namespaces still to be created below the target.
func resolveTarget(text, nsPath string) (syntax.NamespaceSpan, bool, []string, error) {
	if nsPath == "" {
		return syntax.NamespaceSpan{}, false, nil, nil
	}

	ns, err := syntax.FindNamespace(text, nsPath)
	if err == nil {
		return ns, true, nil, nil
	}

	if !errors.Is(err, syntax.ErrNotFound) {
		return syntax.NamespaceSpan{}, false, nil, err
	}

	segments := strings.Split(nsPath, value.PathSeparator)

	ns, depth, err := syntax.DeepestNamespace(text, segments)
	if err != nil {
		return syntax.NamespaceSpan{}, false, nil, err
	}

	return ns, depth > 0, segments[depth:], nil
}

func checkInsertable(text string, variable value.Variable) error {
	err := variable.Validate()
	if err != nil {
		return err
	}

	_, err = syntax.FindVariableSpan(text, variable.Path())

	switch {
	case err == nil:
		return fmt.Errorf("%w: %q", ErrDuplicatePath, variable.Path())
	case errors.Is(err, syntax.ErrNotFound):
		return nil
	default:
		return err
	}
}

func apply(text string, e syntax.Edit) (string, error) {
	out, err := e.Apply(text)
	if err != nil {
		return text, err
	}

	return out, nil
}

//nolint:gochecknoglobals // zero value editor backing the package functions.
var std Editor

// WriteVariable writes variable with the default indentation.
func WriteVariable(text string, variable value.Variable) (string, error) {
	return std.WriteVariable(text, variable)
}

// WriteVariables writes variables with the default indentation.
func WriteVariables(text string, variables []value.Variable) (string, error) {
	return std.WriteVariables(text, variables)
}

// WriteVariableAfter writes variable after anchor with the default indentation.
func WriteVariableAfter(text string, variable value.Variable, anchor string) (string, error) {
	return std.WriteVariableAfter(text, variable, anchor)
}

// WriteVariableBefore writes variable before anchor with the default indentation.
func WriteVariableBefore(text string, variable value.Variable, anchor string) (string, error) {
	return std.WriteVariableBefore(text, variable, anchor)
}
