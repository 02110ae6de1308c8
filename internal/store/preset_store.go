package store

import (
	"fmt"
	"sync"

	"sheetfmt/internal/domain"
)

// PresetFileStore keeps menu presets as a JSON array in a single file.
type PresetFileStore struct {
	path string
	mu   sync.Mutex
}

// NewPresetFileStore returns a PresetFileStore backed by path.
func NewPresetFileStore(path string) *PresetFileStore {
	return &PresetFileStore{path: path}
}

// Path returns the backing file.
func (s *PresetFileStore) Path() string { return s.path }

// ListPresets returns the stored presets in file order.
func (s *PresetFileStore) ListPresets() ([]domain.MenuEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SavePreset appends entry, or replaces the preset with the same label in place.
func (s *PresetFileStore) SavePreset(entry domain.MenuEntry) error {
	if entry.Label == "" {
		return domain.Errorf("store.save_preset", domain.KindInvalid, "preset label is empty")
	}
	if entry.Selector.IsZero() {
		return domain.Errorf("store.save_preset", domain.KindInvalid, "preset %q has no selector", entry.Label)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range entries {
		if entries[i].Label == entry.Label {
			entries[i] = entry
			replaced = true
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	return writeJSON(s.path, entries, 0o644)
}

// DeletePreset removes the preset with label and reports whether it existed.
func (s *PresetFileStore) DeletePreset(label string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return false, err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.Label != label {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return false, nil
	}
	return true, writeJSON(s.path, kept, 0o644)
}

func (s *PresetFileStore) load() ([]domain.MenuEntry, error) {
	entries := []domain.MenuEntry{}
	if err := readJSON(s.path, &entries); err != nil {
		return nil, fmt.Errorf("read presets %s: %w", s.path, err)
	}
	return entries, nil
}

// Compile-time assertion that PresetFileStore implements domain.PresetStore.
var _ domain.PresetStore = (*PresetFileStore)(nil)
