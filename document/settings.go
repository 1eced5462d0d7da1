package document

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/0xalexb/nsconf/edit"
	"github.com/0xalexb/nsconf/syntax"
)

// Settings controls how a document is scanned and how inserted and formatted
// text is indented. It can be loaded through config.Provider.
type Settings struct {
	// Mode is the scan mode of full document scans. Targeted lookups are always strict.
	Mode syntax.Mode `yaml:"mode" validate:"lte=1"`
	// Indent is one nesting level of indentation: spaces or tabs only.
	Indent string `yaml:"indent" validate:"required,max=16,indent"`
}

// SetDefaults implements config.Defaulter.
func (s *Settings) SetDefaults() bool {
	if s.Indent != "" {
		return false
	}

	s.Indent = edit.DefaultIndent

	return true
}

// Validate implements config.Validator.
func (s *Settings) Validate() error {
	err := validate().Struct(s)
	if err != nil {
		return fmt.Errorf("document settings: %w", err)
	}

	return nil
}

//nolint:gochecknoglobals // validator caches struct metadata, one instance is shared.
var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("indent", func(fl validator.FieldLevel) bool {
		return strings.Trim(fl.Field().String(), " \t") == ""
	})

	return v
})

// Validator returns the shared validator with the "indent" tag registered, for
// other settings structs that embed indentation.
func Validator() *validator.Validate {
	return validate()
}
