package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("save default: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected error saving over an existing file")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("loaded settings differ from defaults: %+v", s)
	}
	cfg := s.AreaConfig()
	if cfg.Gravity != 9.8 || cfg.SettleSteps != 40 || cfg.SoundTTL != 300 || cfg.CellSize != 16 {
		t.Fatalf("unexpected area config %+v", cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	data := "[Physics]\nGravity = 4.5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Physics.Gravity != 4.5 || s.Physics.TimeScale != 100 {
		t.Fatalf("expected overridden gravity and default time scale, got %+v", s.Physics)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("[Index]\nCellSize = 0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected invalid cell size to be rejected")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected missing file error")
	}
}
