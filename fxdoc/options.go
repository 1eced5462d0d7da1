package fxdoc

import "github.com/0xalexb/nsconf/syntax"

// Option defines a function type for configuring a document module.
type Option func(*Config)

// WithPath sets the document file.
func WithPath(path string) Option {
	return func(cfg *Config) {
		cfg.Path = path
	}
}

// WithMode sets the scan mode.
func WithMode(mode syntax.Mode) Option {
	return func(cfg *Config) {
		cfg.Mode = mode
	}
}

// WithIndent sets the indentation unit.
func WithIndent(indent string) Option {
	return func(cfg *Config) {
		cfg.Indent = indent
	}
}

// WithAutosave saves unsaved edits when the app stops.
func WithAutosave() Option {
	return func(cfg *Config) {
		cfg.Autosave = true
	}
}

// WithCreate starts from an empty document when the file does not exist.
func WithCreate() Option {
	return func(cfg *Config) {
		cfg.Create = true
	}
}
