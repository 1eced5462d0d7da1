package koanf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	koanfv2 "github.com/knadh/koanf/v2"

	"github.com/0xalexb/nsconf/config"
)

// Loader layers configuration from struct defaults, documents and the
// environment into one koanf instance. Keys are slash separated, like
// variable paths.
type Loader struct {
	k         *koanfv2.Koanf
	parser    *Parser
	envPrefix string
}

// NewLoader creates a loader. envPrefix should be like "APP" (without trailing
// delimiter). Environment variables use double underscore (__) for nesting:
// APP__SERVER__PORT -> server/port.
func NewLoader(envPrefix string, opts ...Option) *Loader {
	return &Loader{
		k:         koanfv2.New(config.PathSeparator),
		parser:    NewParser(opts...),
		envPrefix: envPrefix + "__",
	}
}

// LoadWithDefaults loads configuration with the following priority (highest to lowest):
//  1. Environment variables
//  2. Documents, later paths overriding earlier ones
//  3. Struct defaults, read through `koanf` tags
func (l *Loader) LoadWithDefaults(defaults any, paths ...string) error {
	if defaults != nil {
		err := l.k.Load(structs.Provider(defaults, "koanf"), nil)
		if err != nil {
			return fmt.Errorf("failed to load defaults: %w", err)
		}
	}

	for _, path := range paths {
		_, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("document not found: %w", err)
		}

		err = l.k.Load(file.Provider(path), l.parser)
		if err != nil {
			return fmt.Errorf("failed to load document %s: %w", path, err)
		}
	}

	envProvider := env.Provider(l.envPrefix, config.PathSeparator, func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, l.envPrefix))

		return strings.ReplaceAll(key, "__", config.PathSeparator)
	})

	err := l.k.Load(envProvider, nil)
	if err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}

	return nil
}

// LoadMap merges values keyed by slash separated paths.
func (l *Loader) LoadMap(values map[string]any) error {
	err := l.k.Load(confmap.Provider(values, config.PathSeparator), nil)
	if err != nil {
		return fmt.Errorf("failed to load values: %w", err)
	}

	return nil
}

// Unmarshal unmarshals the section at path into out.
func (l *Loader) Unmarshal(path string, out any) error {
	err := l.k.Unmarshal(path, out)
	if err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", path, err)
	}

	return nil
}

// UnmarshalAndPrepare unmarshals the section at path and then applies
// defaults and validation through config.Prepare.
func (l *Loader) UnmarshalAndPrepare(path string, out any) error {
	err := l.Unmarshal(path, out)
	if err != nil {
		return err
	}

	err = config.Prepare(out)
	if err != nil {
		return fmt.Errorf("failed to prepare %q: %w", path, err)
	}

	return nil
}

// Set manually sets a configuration value.
func (l *Loader) Set(key string, value any) error {
	err := l.k.Set(key, value)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}

	return nil
}

// Raw returns all loaded configuration as a nested map.
func (l *Loader) Raw() map[string]any {
	return l.k.Raw()
}

// Dump writes the loaded configuration to w as a document.
func (l *Loader) Dump(w io.Writer) error {
	data, err := l.parser.Marshal(l.k.Raw())
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	return nil
}
