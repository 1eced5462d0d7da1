package fxdoc

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/0xalexb/nsconf/document"
)

// NewModule creates an Fx module for a named configuration document.
// The name is used as both the module name and the DI named tag for Config,
// *Store and *document.Document.
// If any options are passed, the module supplies Config to DI from those options.
// Otherwise, Config must be provided externally (e.g., via config.Provider).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(tag))))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(
			fx.Annotate(
				func(lifecycle fx.Lifecycle, docCfg Config) (*Store, error) {
					store, err := NewStore(name, docCfg)
					if err != nil {
						return nil, err
					}

					lifecycle.Append(fx.Hook{OnStop: store.Stop})

					return store, nil
				},
				fx.ParamTags("", tag),
				fx.ResultTags(tag),
			),
			fx.Annotate(
				func(store *Store) *document.Document {
					return store.Document()
				},
				fx.ParamTags(tag),
				fx.ResultTags(tag),
			),
		),
		fx.Invoke(fx.Annotate(func(*Store) {}, fx.ParamTags(tag))),
	)

	return fx.Module(name, moduleOpts...)
}
