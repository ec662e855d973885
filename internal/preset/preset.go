// Package preset persists named ramp presets, one JSON file per ramp kind.
//
// Every operation loads the kind's file fresh from disk, applies a single
// change in memory and writes the whole collection back through a temporary
// file that is renamed over the original. A missing or empty file is an empty
// collection; a file that fails to parse is reported as ErrMalformedFile and
// left untouched.
package preset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-ports/rampage/internal/fsutil"
	"github.com/go-ports/rampage/internal/ramp"
)

var (
	// ErrDuplicateName is returned by Add and Rename when the name is taken.
	ErrDuplicateName = errors.New("preset name already exists")
	// ErrNotFound is returned when no preset has the requested name.
	ErrNotFound = errors.New("preset not found")
	// ErrMalformedFile is returned when a preset file exists but cannot be parsed.
	ErrMalformedFile = errors.New("malformed preset file")
	// ErrIOFailure wraps read, write and rename errors.
	ErrIOFailure = errors.New("preset file i/o failure")
	// ErrInvalidName is returned for empty or whitespace-only names.
	ErrInvalidName = errors.New("invalid preset name")
)

// Preset is a named, saved ramp.
type Preset struct {
	Name string    `json:"name"`
	Ramp ramp.Ramp `json:"ramp"`
}

// Store gives durable CRUD access to the preset files under a directory.
type Store struct {
	dir string

	// mu serialises load-mutate-write cycles within the process.
	mu sync.Mutex
	// writeFile is replaced in tests to simulate interrupted writes.
	writeFile func(path string, data []byte, perm os.FileMode) error
}

// NewStore returns a Store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir, writeFile: fsutil.WriteFileAtomic}
}

// Dir returns the presets directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the file that holds presets of the given kind.
func (s *Store) Path(kind ramp.Kind) string {
	return filepath.Join(s.dir, string(kind)+".json")
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// List returns preset names of the given kind in display order.
func (s *Store) List(kind ramp.Kind) ([]string, error) {
	presets, err := s.Presets(kind)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names, nil
}

// Presets returns every preset of the given kind in display order.
func (s *Store) Presets(kind ramp.Kind) ([]Preset, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("preset.Presets: %w", ramp.ErrInvalidKind)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(kind)
}

// Get returns the ramp stored under name.
func (s *Store) Get(kind ramp.Kind, name string) (ramp.Ramp, error) {
	presets, err := s.Presets(kind)
	if err != nil {
		return ramp.Ramp{}, err
	}
	i := indexOf(presets, name)
	if i < 0 {
		return ramp.Ramp{}, fmt.Errorf("preset.Get: %w: %s %q", ErrNotFound, kind, name)
	}
	return presets[i].Ramp, nil
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Add appends a new preset. The name must not already exist in kind
// (case-sensitive exact match).
func (s *Store) Add(kind ramp.Kind, name string, r ramp.Ramp) error {
	if err := validateName(name); err != nil {
		return fmt.Errorf("preset.Add: %w", err)
	}
	err := s.mutate(kind, func(presets []Preset) ([]Preset, error) {
		if indexOf(presets, name) >= 0 {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateName, kind, name)
		}
		return append(presets, Preset{Name: name, Ramp: r}), nil
	})
	if err != nil {
		return fmt.Errorf("preset.Add: %w", err)
	}
	slog.Info("preset added", "kind", kind, "name", name)
	return nil
}

// Replace overwrites the ramp of an existing preset, keeping its name and
// position.
func (s *Store) Replace(kind ramp.Kind, name string, r ramp.Ramp) error {
	err := s.mutate(kind, func(presets []Preset) ([]Preset, error) {
		i := indexOf(presets, name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
		}
		presets[i].Ramp = r
		return presets, nil
	})
	if err != nil {
		return fmt.Errorf("preset.Replace: %w", err)
	}
	slog.Info("preset replaced", "kind", kind, "name", name)
	return nil
}

// Remove deletes a preset.
func (s *Store) Remove(kind ramp.Kind, name string) error {
	err := s.mutate(kind, func(presets []Preset) ([]Preset, error) {
		i := indexOf(presets, name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
		}
		return append(presets[:i], presets[i+1:]...), nil
	})
	if err != nil {
		return fmt.Errorf("preset.Remove: %w", err)
	}
	slog.Info("preset removed", "kind", kind, "name", name)
	return nil
}

// Rename changes a preset's name in place. Renaming to the current name is a
// no-op that still requires the preset to exist.
func (s *Store) Rename(kind ramp.Kind, oldName, newName string) error {
	if err := validateName(newName); err != nil {
		return fmt.Errorf("preset.Rename: %w", err)
	}
	err := s.mutate(kind, func(presets []Preset) ([]Preset, error) {
		i := indexOf(presets, oldName)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s %q", ErrNotFound, kind, oldName)
		}
		if j := indexOf(presets, newName); j >= 0 && j != i {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateName, kind, newName)
		}
		presets[i].Name = newName
		return presets, nil
	})
	if err != nil {
		return fmt.Errorf("preset.Rename: %w", err)
	}
	slog.Info("preset renamed", "kind", kind, "from", oldName, "to", newName)
	return nil
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

// mutate runs one load-apply-save cycle under the store lock. Nothing is
// written when apply fails.
func (s *Store) mutate(kind ramp.Kind, apply func([]Preset) ([]Preset, error)) error {
	if !kind.Valid() {
		return ramp.ErrInvalidKind
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	presets, err := s.load(kind)
	if err != nil {
		return err
	}
	presets, err = apply(presets)
	if err != nil {
		return err
	}
	return s.save(kind, presets)
}

// load reads the collection for kind. Callers must hold s.mu.
func (s *Store) load(kind ramp.Kind) ([]Preset, error) {
	path := s.Path(kind)
	data, found, err := fsutil.ReadFileOptional(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIOFailure, path, err)
	}
	presets := make([]Preset, 0)
	if !found || len(bytes.TrimSpace(data)) == 0 {
		return presets, nil
	}
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedFile, path, err)
	}
	if presets == nil {
		// A literal `null` document.
		presets = make([]Preset, 0)
	}
	return presets, nil
}

// save writes the full collection for kind. Callers must hold s.mu.
func (s *Store) save(kind ramp.Kind, presets []Preset) error {
	data, err := json.MarshalIndent(presets, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s presets: %w", kind, err)
	}
	data = append(data, '\n')
	path := s.Path(kind)
	if err := s.writeFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIOFailure, path, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func indexOf(presets []Preset, name string) int {
	for i, p := range presets {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}
	return nil
}
