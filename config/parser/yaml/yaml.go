package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/nsconf/config"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes the parser reject keys the target has no field for.
func WithStrict() Option {
	return func(p *Parser) {
		p.opts = append(p.opts, yaml.DisallowUnknownField())
	}
}

// Parser implements config.Parser for YAML data.
// It uses goccy/go-yaml PathString for path navigation.
type Parser struct {
	opts []yaml.DecodeOption
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}
	for _, opt := range opts {
		opt(parser)
	}

	return parser
}

// Parse decodes YAML data into target. The path selects a nested section with
// slash (/) separated keys; an empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, p.opts...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, p.opts...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a slash separated path to goccy/go-yaml PathString format.
// Examples:
//   - "document" -> "$.document"
//   - "documents/app" -> "$.documents.app"
func convertToYAMLPath(path string) string {
	parts := strings.Split(strings.Trim(path, config.PathSeparator), config.PathSeparator)

	return "$." + strings.Join(parts, ".")
}
