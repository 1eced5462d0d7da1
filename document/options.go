package document

import (
	"log/slog"

	"github.com/0xalexb/nsconf/syntax"
)

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger that receives skip warnings and edit records.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMode sets the scan mode.
func WithMode(mode syntax.Mode) Option {
	return func(d *Document) {
		d.settings.Mode = mode
	}
}

// WithIndent sets the indentation unit of inserted and formatted text.
func WithIndent(indent string) Option {
	return func(d *Document) {
		d.settings.Indent = indent
	}
}

// WithSettings replaces all settings at once.
func WithSettings(settings Settings) Option {
	return func(d *Document) {
		d.settings = settings
	}
}
