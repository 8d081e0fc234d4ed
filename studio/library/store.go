// Package library persists the user's theme collection as a JSON file.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/watzon/penscape/theme"
)

const fileName = "themes.json"

var (
	// ErrNotFound is returned when no theme has the requested id.
	ErrNotFound = errors.New("theme not found")
	// ErrPresetImmutable is returned when a built-in theme would be overwritten or removed.
	ErrPresetImmutable = errors.New("preset themes cannot be modified")
)

// Store provides persistent storage for themes.
type Store struct {
	baseDir string
	log     *zap.Logger

	mu     sync.Mutex
	themes []theme.Theme
}

// Open loads the library under baseDir, seeding it with the presets on first use.
// Entries that fail validation are skipped and reported in the returned error
// alongside a usable store.
func Open(baseDir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}

	s := &Store{baseDir: baseDir, log: log}

	var themes []theme.Theme
	var loadErr error
	data, err := os.ReadFile(s.Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read library: %w", err)
	default:
		themes, loadErr = s.decode(data)
	}
	if themes == nil {
		themes = theme.Presets()
	}
	s.themes = ensureDefault(themes)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return s, loadErr
}

// Path returns the file the library is stored in.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, fileName)
}

// decode returns nil themes when the file is not a JSON array at all.
func (s *Store) decode(data []byte) ([]theme.Theme, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn("Library file is corrupt, reseeding", zap.String("path", s.Path()), zap.Error(err))
		return nil, fmt.Errorf("failed to parse library: %w", err)
	}

	var errs error
	themes := make([]theme.Theme, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, entry := range raw {
		var t theme.Theme
		if err := json.Unmarshal(entry, &t); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		if t.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: missing id", i))
			continue
		}
		if seen[t.ID] {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: duplicate id %q", i, t.ID))
			continue
		}
		seen[t.ID] = true
		themes = append(themes, t)
	}
	for _, err := range multierr.Errors(errs) {
		s.log.Warn("Skipping library entry", zap.Error(err))
	}
	return themes, errs
}

// ensureDefault puts the default preset back at the front when it is missing.
func ensureDefault(themes []theme.Theme) []theme.Theme {
	for _, t := range themes {
		if t.ID == theme.PresetPenScape {
			return themes
		}
	}
	def, _ := theme.Preset(theme.PresetPenScape)
	return append([]theme.Theme{def}, themes...)
}

// persist writes the library atomically. Callers hold s.mu or own s exclusively.
func (s *Store) persist() error {
	path := s.Path()
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to write library: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.themes); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to encode library: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write library: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace library: %w", err)
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.themes, func(t theme.Theme) bool { return t.ID == id })
}

// List returns the themes with pinned ones first, otherwise in library order.
func (s *Store) List() []theme.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]theme.Theme, len(s.themes))
	for i, t := range s.themes {
		out[i] = t.Clone()
	}
	slices.SortStableFunc(out, func(a, b theme.Theme) int {
		switch {
		case a.Pinned == b.Pinned:
			return 0
		case a.Pinned:
			return -1
		default:
			return 1
		}
	})
	return out
}

// Get returns the theme with the given id.
func (s *Store) Get(id string) (theme.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return theme.Theme{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.themes[i].Clone(), nil
}

// Save replaces the theme with the same id or adds t at the front of the library.
func (s *Store) Save(t theme.Theme) error {
	if t.ID == "" {
		return fmt.Errorf("theme has no id")
	}
	if t.Preset || theme.IsPresetID(t.ID) {
		return fmt.Errorf("%w: %s", ErrPresetImmutable, t.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := slices.Clone(s.themes)
	if i := s.indexOf(t.ID); i >= 0 {
		s.themes[i] = t.Clone()
	} else {
		s.themes = append([]theme.Theme{t.Clone()}, s.themes...)
	}
	if err := s.persist(); err != nil {
		s.themes = prev
		return err
	}
	return nil
}

// TogglePin flips the pinned flag of a theme and returns the result.
func (s *Store) TogglePin(id string) (theme.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return theme.Theme{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.themes[i].Pinned = !s.themes[i].Pinned
	if err := s.persist(); err != nil {
		s.themes[i].Pinned = !s.themes[i].Pinned
		return theme.Theme{}, err
	}
	return s.themes[i].Clone(), nil
}

// Delete removes a theme. Presets cannot be deleted.
func (s *Store) Delete(id string) error {
	if theme.IsPresetID(id) {
		return fmt.Errorf("%w: %s", ErrPresetImmutable, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	prev := slices.Clone(s.themes)
	s.themes = slices.Delete(s.themes, i, i+1)
	if err := s.persist(); err != nil {
		s.themes = prev
		return err
	}
	return nil
}

// ExportName returns a file name for a theme's stylesheet.
func ExportName(t theme.Theme) string {
	name := slug.Make(t.Name)
	if name == "" {
		name = slug.Make(t.ID)
	}
	if name == "" {
		name = "theme"
	}
	return name + ".css"
}
