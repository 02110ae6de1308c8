package interfaces

import domaintypes "sheetfmt/internal/domain/types"

// PresetStore persists user defined menu entries.
type PresetStore interface {
	ListPresets() ([]domaintypes.MenuEntry, error)
	// SavePreset adds entry, replacing any preset with the same label.
	SavePreset(entry domaintypes.MenuEntry) error
	DeletePreset(label string) (bool, error)
}
