package tempstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// DefaultExtension is used when the original filename carries none
const DefaultExtension = ".webm"

// Store writes uploads to a dedicated temporary directory under random names
type Store struct {
	fs  afero.Fs
	dir string
}

// New creates a store rooted at dir on the given filesystem
func New(fsys afero.Fs, dir string) *Store {
	return &Store{fs: fsys, dir: dir}
}

// Fs exposes the underlying filesystem so readers of stored files see the same view
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Dir returns the temporary directory
func (s *Store) Dir() string {
	return s.dir
}

// NewPath returns a fresh, collision-free path with the given extension
func (s *Store) NewPath(ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(s.dir, uuid.NewString()+ext)
}

// Save writes r to a new file named after a random id plus filename's extension
func (s *Store) Save(r io.Reader, filename string) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o770); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	path := s.NewPath(filepath.Ext(filename))
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o660)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = s.fs.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(path)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return path, nil
}

// Remove deletes path; a file that is already gone is not an error
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	err := s.fs.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether path is present
func (s *Store) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// Sweep removes regular files in the directory last modified before cutoff
func (s *Store) Sweep(cutoff time.Time) (int, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read temp dir: %w", err)
	}

	removed := 0
	var errs []error
	for _, e := range entries {
		if e.IsDir() || !e.ModTime().Before(cutoff) {
			continue
		}
		if err := s.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}
