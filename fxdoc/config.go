// Package fxdoc provides a configuration document module for the Fx DI container.
package fxdoc

import (
	"errors"
	"fmt"

	"github.com/0xalexb/nsconf/document"
	"github.com/0xalexb/nsconf/edit"
	"github.com/0xalexb/nsconf/syntax"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("document module name must not be empty")

// ErrLoadFailed is returned when the document file cannot be read or scanned.
var ErrLoadFailed = errors.New("failed to load document")

// ErrSaveFailed is returned when the document cannot be written back.
var ErrSaveFailed = errors.New("failed to save document")

// Config holds the configuration of a document module.
type Config struct {
	// Path is the file the document is read from and saved to.
	Path string `yaml:"path" validate:"required"`
	Mode syntax.Mode `yaml:"mode" validate:"lte=1"`
	// Indent is one nesting level of indentation. Empty means a tab.
	Indent string `yaml:"indent" validate:"required,max=16,indent"`
	// Autosave writes unsaved edits back to Path when the app stops.
	Autosave bool `yaml:"autosave"`
	// Create starts from an empty document when Path does not exist yet.
	Create bool `yaml:"create"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	if c.Indent != "" {
		return false
	}

	c.Indent = edit.DefaultIndent

	return true
}

// Validate validates the Config.
func (c *Config) Validate() error {
	err := document.Validator().Struct(c)
	if err != nil {
		return fmt.Errorf("document module: %w", err)
	}

	return nil
}

func (c *Config) settings() document.Settings {
	return document.Settings{Mode: c.Mode, Indent: c.Indent}
}
