package fxdoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/nsconf/config"
	"github.com/0xalexb/nsconf/config/fetcher/file"
	"github.com/0xalexb/nsconf/document"
)

// Store ties a document to the file it was loaded from.
type Store struct {
	name   string
	config Config
	doc    *document.Document
	writer *file.Writer
}

// NewStore loads the document configured by cfg.
// It sets config defaults and validates the config before touching the file.
func NewStore(name string, cfg Config) (*Store, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	err := config.Prepare(&cfg)
	if err != nil {
		return nil, err
	}

	writer, err := file.NewWriter(cfg.Path)()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	doc, err := load(name, cfg)
	if err != nil {
		slog.Error("failed to load document", "name", name, "path", cfg.Path, "error", err)

		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	slog.Info("document loaded", "name", name, "path", writer.Path(), "variables", len(doc.Variables()))

	return &Store{
		name:   name,
		config: cfg,
		doc:    doc,
		writer: writer,
	}, nil
}

func load(name string, cfg Config) (*document.Document, error) {
	logger := slog.Default().With("document", name)
	opts := []document.Option{document.WithSettings(cfg.settings()), document.WithLogger(logger)}

	fetcher, err := file.NewFetcher(cfg.Path)()
	if err != nil {
		if cfg.Create && errors.Is(err, os.ErrNotExist) {
			return document.New("", opts...)
		}

		return nil, err
	}

	return document.Load(fetcher, opts...)
}

// Document returns the managed document.
func (s *Store) Document() *document.Document {
	return s.doc
}

// Save writes the document back to its file if it has unsaved edits.
func (s *Store) Save() error {
	if !s.doc.Modified() {
		return nil
	}

	err := s.doc.Save(s.writer)
	if err != nil {
		slog.Error("save failed", "name", s.name, "error", err)

		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	slog.Info("document saved", "name", s.name, "path", s.writer.Path())

	return nil
}

// Stop saves the document when autosave is enabled.
func (s *Store) Stop(_ context.Context) error {
	if !s.config.Autosave {
		if s.doc.Modified() {
			slog.Warn("discarding unsaved document edits", "name", s.name)
		}

		return nil
	}

	return s.Save()
}
