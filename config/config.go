package config

import (
	"fmt"
	"log/slog"
)

// PathSeparator separates the keys of a Parser path.
const PathSeparator = "/"

// Parser decodes raw data into a target structure.
//
// The path parameter selects a section of the data, with slash (/) separated
// keys for nested sections. For example:
//   - "document" selects config["document"]
//   - "app/database/pool" navigates three levels deep
//   - "" (empty path) means the entire document
//
// Parser implementations are responsible for path navigation internally. The
// YAML parser maps paths to goccy/go-yaml PathString, the nsconf parser maps
// them to namespace paths.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher reads raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// DataWriter persists raw configuration data.
type DataWriter interface {
	Write(data []byte) error
}

// DataFetcherFunc adapts a function to DataFetcher.
type DataFetcherFunc func() ([]byte, error)

// Fetch calls f.
func (f DataFetcherFunc) Fetch() ([]byte, error) {
	return f()
}

// DataWriterFunc adapts a function to DataWriter.
type DataWriterFunc func(data []byte) error

// Write calls f.
func (f DataWriterFunc) Write(data []byte) error {
	return f(data)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that fetches, parses, defaults and validates the
// section at path into target.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		err = Prepare(target)
		if err != nil {
			return nil, err
		}

		if path != "" {
			slog.Debug("configuration section loaded", slog.String("path", path))
		}

		return target, nil
	}
}

// Prepare applies defaults to target and validates it, for whichever of
// Defaulter and Validator target implements.
func Prepare(target any) error {
	defaulter, isDefaulter := target.(Defaulter)
	if isDefaulter && defaulter.SetDefaults() {
		slog.Info("defaults applied", slog.String("type", fmt.Sprintf("%T", target)))
	}

	validator, isValidator := target.(Validator)
	if isValidator {
		err := validator.Validate()
		if err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}
