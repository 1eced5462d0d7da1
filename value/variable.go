package value

import (
	"errors"
	"fmt"
	"strings"
)

// PathSeparator separates namespace segments in a variable path.
const PathSeparator = "/"

// ErrInvalidPath is returned when a variable path is empty or has an empty or
// non-identifier segment.
var ErrInvalidPath = errors.New("invalid variable path")

// Variable is a typed, path-qualified value. It is immutable once built.
//
// For scalars the raw value is the unescaped payload. For arrays it is the
// array literal as written, braces and quoting included; elements are decoded
// on demand by the array accessors.
type Variable struct {
	path    string
	typ     DataType
	raw     string
	isArray bool
}

// New builds a variable from an already decoded raw value.
func New(path string, typ DataType, raw string, isArray bool) Variable {
	return Variable{
		path:    path,
		typ:     typ,
		raw:     raw,
		isArray: isArray,
	}
}

// NewArray builds an array variable, encoding elements into an array literal.
func NewArray(path string, typ DataType, elements []string) Variable {
	return New(path, typ, EncodeArray(elements), true)
}

// Path returns the slash delimited, namespace qualified path.
func (v Variable) Path() string {
	return v.path
}

// Name returns the last path segment.
func (v Variable) Name() string {
	_, name := SplitPath(v.path)

	return name
}

// Namespace returns the path of the enclosing namespace, empty at top level.
func (v Variable) Namespace() string {
	ns, _ := SplitPath(v.path)

	return ns
}

// Type returns the declared type.
func (v Variable) Type() DataType {
	return v.typ
}

// RawValue returns the decoded scalar payload or the array literal.
func (v Variable) RawValue() string {
	return v.raw
}

// IsArray reports whether the variable holds an array literal.
func (v Variable) IsArray() bool {
	return v.isArray
}

// Equal reports whether both variables have the same type and raw value.
// Paths are not compared.
func (v Variable) Equal(other Variable) bool {
	return v.typ == other.typ && v.raw == other.raw
}

// SameType reports whether both variables are declared with the same type.
func (v Variable) SameType(other Variable) bool {
	return v.typ == other.typ
}

// WithPath returns a copy of v addressed by path.
func (v Variable) WithPath(path string) Variable {
	v.path = path

	return v
}

// Literal renders the value as it appears after the equals sign: a quoted,
// escaped scalar or the array literal.
func (v Variable) Literal() string {
	if v.isArray {
		return v.raw
	}

	return QuoteString(v.raw)
}

// Declaration renders v as a single declaration statement.
func (v Variable) Declaration() string {
	return fmt.Sprintf("%s %s = %s;", v.typ, v.Name(), v.Literal())
}

// Validate checks that v can be written into a document.
func (v Variable) Validate() error {
	err := ValidatePath(v.path)
	if err != nil {
		return err
	}

	if !v.typ.Valid() {
		return fmt.Errorf("%w: variable %q has no valid type", ErrTypeMismatch, v.path)
	}

	if v.isArray && !IsArray(v.raw) {
		return fmt.Errorf("%w: variable %q is not a valid array literal", ErrTypeMismatch, v.path)
	}

	return nil
}

// String implements fmt.Stringer.
func (v Variable) String() string {
	return v.path + ": " + v.typ.String() + " = " + v.Literal()
}

// SplitPath splits a path into its namespace part and its last segment.
func SplitPath(path string) (string, string) {
	idx := strings.LastIndex(path, PathSeparator)
	if idx < 0 {
		return "", path
	}

	return path[:idx], path[idx+1:]
}

// JoinPath joins segments with the path separator, skipping empty ones.
func JoinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))

	for _, segment := range segments {
		if segment != "" {
			parts = append(parts, segment)
		}
	}

	return strings.Join(parts, PathSeparator)
}

// ValidatePath checks that every segment of path is a non-empty identifier.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	for _, segment := range strings.Split(path, PathSeparator) {
		if !IsIdentifier(segment) {
			return fmt.Errorf("%w: %q has segment %q", ErrInvalidPath, path, segment)
		}
	}

	return nil
}

// IsIdentifier reports whether s is a non-empty run of identifier characters.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if !IsIdentChar(s[i]) {
			return false
		}
	}

	return true
}

// IsIdentChar reports whether c may appear in an identifier.
func IsIdentChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
