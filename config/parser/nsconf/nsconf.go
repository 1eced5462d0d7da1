package nsconf

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/nsconf/config"
	"github.com/0xalexb/nsconf/document"
	"github.com/0xalexb/nsconf/syntax"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the path names no namespace of the document.
var ErrPathNotFound = errors.New("path not found")

// Option configures a Parser.
type Option func(*Parser)

// WithMode sets the scan mode used on the document. The default is lenient.
func WithMode(mode syntax.Mode) Option {
	return func(p *Parser) {
		p.mode = mode
	}
}

// WithStrict makes the parser reject variables the target has no field for.
func WithStrict() Option {
	return func(p *Parser) {
		p.opts = append(p.opts, yaml.DisallowUnknownField())
	}
}

// WithLogger sets the logger that receives skip warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser implements config.Parser for namespace configuration documents.
// Namespaces map to nested sections and variables to their keys, so targets
// are tagged the same way as for the YAML parser.
type Parser struct {
	mode   syntax.Mode
	logger *slog.Logger
	opts   []yaml.DecodeOption
}

// NewParser creates a new parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{mode: syntax.Lenient, logger: slog.Default()}
	for _, opt := range opts {
		opt(parser)
	}

	return parser
}

// Parse decodes the namespace at path into target. An empty path decodes the
// entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	doc, err := document.New(string(data), document.WithMode(p.mode), document.WithLogger(p.logger))
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	path = strings.Trim(path, config.PathSeparator)

	tree, err := doc.Tree(path)
	if err != nil {
		if errors.Is(err, syntax.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	encoded, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("encoding path %q: %w", path, err)
	}

	err = yaml.UnmarshalWithOptions(encoded, target, p.opts...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}
