package manifest

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Locator finds the Cargo.toml governing a directory
type Locator struct {
	Fs afero.Fs
}

// NewLocator returns a Locator working on the real filesystem
func NewLocator() *Locator {
	return &Locator{Fs: afero.NewOsFs()}
}

// Locate walks up from dir and returns the path of the first Cargo.toml it finds.
// dir should be absolute. If dir is a file, the search starts at its directory.
// Only existence is checked, the manifest is never read here
func (l *Locator) Locate(dir string) (string, error) {
	dir = filepath.Clean(dir)
	if info, err := l.Fs.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, Filename)
		if _, err := l.Fs.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrManifestNotFound
		}
		dir = parent
	}
}

// Canonicalize returns the absolute path of entry with all symlinks resolved.
// ErrNoSuchFile is returned if entry does not exist
func Canonicalize(entry string) (string, error) {
	abs, err := filepath.Abs(entry)
	if err != nil {
		return "", ErrNoSuchFile
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", ErrNoSuchFile
	}
	if _, err := os.Stat(resolved); err != nil {
		return "", ErrNoSuchFile
	}
	return resolved, nil
}

// FindFrom canonicalizes entry and locates the manifest governing it
func FindFrom(entry string) (string, error) {
	start, err := Canonicalize(entry)
	if err != nil {
		return "", err
	}
	return NewLocator().Locate(start)
}
