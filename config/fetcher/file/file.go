package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher or Writer points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

const defaultFileMode os.FileMode = 0o600

// Fetcher implements config.DataFetcher for file based configuration.
// It reads the file at construction time and caches the contents until Refresh.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Errors for a missing file wrap os.ErrNotExist.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		fetcher := &Fetcher{filepath: filepath.Clean(fpath)}

		err := fetcher.Refresh()
		if err != nil {
			return nil, err
		}

		return fetcher, nil
	}
}

// Path returns the cleaned path of the file.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Refresh re-reads the file, replacing the cached contents. On error the
// previous contents are kept.
func (f *Fetcher) Refresh() error {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		return fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	f.data = data

	return nil
}

// Fetch returns a copy of the cached file contents.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Writer implements config.DataWriter for file based configuration. Every
// Write replaces the whole file atomically.
type Writer struct {
	filepath string
}

// NewWriter returns a constructor function for a Writer targeting fpath. The
// file itself may not exist yet, but its directory must.
func NewWriter(fpath string) func() (*Writer, error) {
	return func() (*Writer, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)

		switch {
		case err == nil && stat.IsDir():
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		dir, err := os.Stat(filepath.Dir(cleanPath))
		if err != nil {
			return nil, fmt.Errorf("stat directory of %q: %w", cleanPath, err)
		}

		if !dir.IsDir() {
			return nil, fmt.Errorf("parent of %q is not a directory: %w", cleanPath, os.ErrInvalid)
		}

		return &Writer{filepath: cleanPath}, nil
	}
}

// Path returns the cleaned path of the file.
func (w *Writer) Path() string {
	return w.filepath
}

// Write stores data through a temporary file renamed over the target, keeping
// the permissions of an existing file.
func (w *Writer) Write(data []byte) error {
	mode := defaultFileMode

	stat, err := os.Stat(w.filepath)
	if err == nil {
		mode = stat.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(w.filepath), "."+filepath.Base(w.filepath)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %q: %w", w.filepath, err)
	}

	tmpPath := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(mode)
	}

	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Rename(tmpPath, w.filepath)
	}

	if err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("writing file %q: %w", w.filepath, err)
	}

	return nil
}
