package nsconf

import (
	"io"

	"go.uber.org/fx"

	"github.com/0xalexb/nsconf/fxdoc"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	// Output receives log records. Nil means os.Stderr.
	Output io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithDocument adds a named configuration document module to the application.
// The name is used as both the Fx module name and the DI named tag for
// fxdoc.Config, *fxdoc.Store and *document.Document.
// When options are provided (e.g., WithPath), Config is supplied to DI automatically.
// Call multiple times with different names to manage multiple documents.
func WithDocument(name string, opts ...fxdoc.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fxdoc.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithOutput sets where log records are written.
func WithOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Output = w
	}
}
