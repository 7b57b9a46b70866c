// Package storage reads and writes canvases as plain text files.
//
// A canvas file holds one line per grid row and nothing else: no header, no
// size, no checksum. Animations are a series of canvas files that share a
// base name and are numbered from 1 in recording order.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textart/canvas"
	"textart/core"
)

// Common errors
var (
	ErrInvalidFilename = errors.New("invalid file name")
	ErrNotReadable     = errors.New("file could not be read")
	ErrNotWritable     = errors.New("file could not be written")
)

// InvalidChars lists characters that may not appear in a base name.
const InvalidChars = `<>:"/\|?*`

// DefaultDir is where files are saved when no directory is configured.
const DefaultDir = "SavedFiles"

// Extension is appended to every file name.
const Extension = ".txt"

// ValidateName checks a user supplied base name before any path is built.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFilename)
	}
	if i := strings.IndexAny(name, InvalidChars); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidFilename, name, name[i])
	}
	return nil
}

// Store resolves names to files inside one directory.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir, or DefaultDir when dir is empty.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{Dir: dir}
}

// CanvasPath returns the file used for a single canvas called name.
func (s *Store) CanvasPath(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, name+Extension), nil
}

// ClipPath returns the file holding frame n (1-based) of the animation name.
func (s *Store) ClipPath(name string, n int) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, fmt.Sprintf("%s-%d%s", name, n, Extension)), nil
}

// SaveCanvas writes g to the file for name, creating the directory if needed.
func (s *Store) SaveCanvas(name string, g *canvas.Grid) error {
	path, err := s.CanvasPath(name)
	if err != nil {
		return err
	}
	return s.writeFile(path, g)
}

// LoadCanvas reads the file for name into dst. The file is read into a fresh
// blank grid first, so dst is left untouched on any error and rows missing
// from the file come out blank.
func (s *Store) LoadCanvas(name string, dst *canvas.Grid) error {
	path, err := s.CanvasPath(name)
	if err != nil {
		return err
	}
	g, err := ReadFile(path, dst.Config())
	if err != nil {
		return err
	}
	return dst.CopyFrom(g)
}

// SaveFrame writes frame n of the animation name.
func (s *Store) SaveFrame(name string, n int, g *canvas.Grid) error {
	path, err := s.ClipPath(name, n)
	if err != nil {
		return err
	}
	return s.writeFile(path, g)
}

// LoadFrame reads frame n of the animation name into a new grid.
func (s *Store) LoadFrame(name string, n int, cfg core.GridConfig) (*canvas.Grid, error) {
	path, err := s.ClipPath(name, n)
	if err != nil {
		return nil, err
	}
	return ReadFile(path, cfg)
}

// RemoveFrames deletes frames from..N of the animation name, stopping at the
// first frame that does not exist. It returns how many files were removed.
func (s *Store) RemoveFrames(name string, from int) (int, error) {
	removed := 0
	for n := from; ; n++ {
		path, err := s.ClipPath(name, n)
		if err != nil {
			return removed, err
		}
		if err := os.Remove(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return removed, nil
			}
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
		removed++
	}
}

func (s *Store) writeFile(path string, g *canvas.Grid) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotWritable, path, err)
	}
	return WriteFile(path, g)
}
