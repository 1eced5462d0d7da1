package koanf

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/nsconf/document"
	"github.com/0xalexb/nsconf/syntax"
	"github.com/0xalexb/nsconf/value"
)

// ErrUnsupportedValue is returned by Marshal for values that have no data type.
var ErrUnsupportedValue = errors.New("unsupported value")

// Option configures a Parser.
type Option func(*Parser)

// WithMode sets the scan mode used by Unmarshal. The default is lenient.
func WithMode(mode syntax.Mode) Option {
	return func(p *Parser) {
		p.mode = mode
	}
}

// WithIndent sets the indentation unit Marshal writes with.
func WithIndent(indent string) Option {
	return func(p *Parser) {
		p.indent = indent
	}
}

// WithLogger sets the logger that receives skip warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser implements the koanf Parser interface for namespace documents.
type Parser struct {
	mode   syntax.Mode
	indent string
	logger *slog.Logger
}

// NewParser creates a new parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{mode: syntax.Lenient, logger: slog.Default()}
	for _, opt := range opts {
		opt(parser)
	}

	return parser
}

// Unmarshal decodes a document into a nested map: one map per namespace and
// one converted value per variable.
func (p *Parser) Unmarshal(data []byte) (map[string]any, error) {
	doc, err := document.New(string(data), p.documentOptions()...)
	if err != nil {
		return nil, err
	}

	tree, err := doc.Tree("")
	if err != nil {
		return nil, err
	}

	return toMap(tree), nil
}

// Marshal encodes a nested map as a document. Keys are written in sorted order
// and nested maps become namespaces. Types are inferred from the Go kinds of
// the values; a slice takes the type of its first element.
func (p *Parser) Marshal(m map[string]any) ([]byte, error) {
	vars, err := flatten(m, "", nil)
	if err != nil {
		return nil, err
	}

	doc, err := document.New("", p.documentOptions()...)
	if err != nil {
		return nil, err
	}

	err = doc.WriteVariables(vars)
	if err != nil {
		return nil, err
	}

	return []byte(doc.Source()), nil
}

func (p *Parser) documentOptions() []document.Option {
	opts := []document.Option{document.WithMode(p.mode), document.WithLogger(p.logger)}
	if p.indent != "" {
		opts = append(opts, document.WithIndent(p.indent))
	}

	return opts
}

func toMap(tree yaml.MapSlice) map[string]any {
	out := make(map[string]any, len(tree))

	for _, item := range tree {
		key := fmt.Sprint(item.Key)

		if nested, ok := item.Value.(yaml.MapSlice); ok {
			out[key] = toMap(nested)

			continue
		}

		out[key] = item.Value
	}

	return out
}

func flatten(m map[string]any, prefix string, out []value.Variable) ([]value.Variable, error) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		path := value.JoinPath(prefix, key)

		if nested, ok := m[key].(map[string]any); ok {
			var err error

			out, err = flatten(nested, path, out)
			if err != nil {
				return nil, err
			}

			continue
		}

		variable, err := infer(path, m[key])
		if err != nil {
			return nil, err
		}

		out = append(out, variable)
	}

	return out, nil
}

func infer(path string, v any) (value.Variable, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return scalar(path, rv)
	}

	if rv.Len() == 0 {
		return value.NewArray(path, value.String, nil), nil
	}

	elements := make([]string, 0, rv.Len())

	var typ value.DataType

	for i := range rv.Len() {
		element, err := scalar(path, reflect.ValueOf(rv.Index(i).Interface()))
		if err != nil {
			return value.Variable{}, fmt.Errorf("element %d: %w", i, err)
		}

		if i == 0 {
			typ = element.Type()
		}

		elements = append(elements, element.RawValue())
	}

	return value.NewArray(path, typ, elements), nil
}

func scalar(path string, rv reflect.Value) (value.Variable, error) {
	//nolint:exhaustive // every other kind is unsupported.
	switch rv.Kind() {
	case reflect.Bool:
		return value.FromBool(path, rv.Bool()), nil
	case reflect.String:
		return value.FromString(path, rv.String()), nil
	case reflect.Int, reflect.Int64:
		return value.FromInt(path, value.LongLong, rv.Int()), nil
	case reflect.Int32:
		return value.FromInt(path, value.Int, rv.Int()), nil
	case reflect.Int16:
		return value.FromInt(path, value.Short, rv.Int()), nil
	case reflect.Int8:
		return value.FromInt(path, value.Char, rv.Int()), nil
	case reflect.Uint, reflect.Uint64:
		return value.FromUint(path, value.ULongLong, rv.Uint()), nil
	case reflect.Uint32:
		return value.FromUint(path, value.UInt, rv.Uint()), nil
	case reflect.Uint16:
		return value.FromUint(path, value.UShort, rv.Uint()), nil
	case reflect.Uint8:
		return value.FromUint(path, value.UChar, rv.Uint()), nil
	case reflect.Float32:
		return value.FromFloat(path, value.Float, rv.Float()), nil
	case reflect.Float64:
		return value.FromFloat(path, value.Double, rv.Float()), nil
	default:
		return value.Variable{}, fmt.Errorf("%w: %q holds %s", ErrUnsupportedValue, path, rv.Kind())
	}
}
