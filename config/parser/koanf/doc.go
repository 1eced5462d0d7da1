// Package koanf plugs namespace documents into github.com/knadh/koanf.
//
// Parser implements the koanf Parser interface, so a document can be loaded
// with any koanf provider and a koanf map can be written back as a document.
// Loader layers struct defaults, documents and environment variables the way
// services usually assemble their configuration.
package koanf
