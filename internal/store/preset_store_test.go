package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"sheetfmt/internal/domain"
	"sheetfmt/internal/store"
)

func entry(label, selector string) domain.MenuEntry {
	sel, err := domain.ParseSelector(selector)
	if err != nil {
		panic(err)
	}
	return domain.MenuEntry{Label: label, Selector: sel}
}

func TestPresets_MissingFileIsEmpty(t *testing.T) {
	var ps domain.PresetStore = store.NewPresetFileStore(filepath.Join(t.TempDir(), "presets.json"))

	got, err := ps.ListPresets()
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty non-nil list", got)
	}
}

func TestPresets_SaveReplaceDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.json")
	ps := store.NewPresetFileStore(path)

	if err := ps.SavePreset(entry("ISO", "date-format-pattern yyyy-mm-dd")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := ps.SavePreset(entry("Money", "number-format-pattern $0.00")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := ps.SavePreset(entry("ISO", "date-time-format-pattern yyyy-mm-dd hh:mm")); err != nil {
		t.Fatalf("replace: %v", err)
	}

	// A fresh store reads what the first one wrote.
	got, err := store.NewPresetFileStore(path).ListPresets()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d presets, want 2", len(got))
	}
	if got[0].Label != "ISO" || got[0].Selector.String() != "date-time-format-pattern yyyy-mm-dd hh:mm" {
		t.Fatalf("first preset = %+v", got[0])
	}

	ok, err := ps.DeletePreset("Money")
	if err != nil || !ok {
		t.Fatalf("delete Money: ok=%v err=%v", ok, err)
	}
	ok, err = ps.DeletePreset("Money")
	if err != nil || ok {
		t.Fatalf("second delete: ok=%v err=%v", ok, err)
	}
	if got, _ := ps.ListPresets(); len(got) != 1 {
		t.Fatalf("after delete got %v", got)
	}
}

func TestPresets_RejectsInvalid(t *testing.T) {
	ps := store.NewPresetFileStore(filepath.Join(t.TempDir(), "presets.json"))

	if err := ps.SavePreset(domain.MenuEntry{Selector: domain.NewSelector("general", "")}); !domain.IsKind(err, domain.KindInvalid) {
		t.Fatalf("empty label: got %v", err)
	}
	if err := ps.SavePreset(domain.MenuEntry{Label: "x"}); !domain.IsKind(err, domain.KindInvalid) {
		t.Fatalf("empty selector: got %v", err)
	}
}

func TestPresets_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.NewPresetFileStore(path).ListPresets(); err == nil {
		t.Fatal("expected error for corrupt presets file")
	}
}
