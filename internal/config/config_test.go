package config

import (
	"testing"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("CEO_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error for a missing config, got %v", err)
	}
	if cfg.Version != "1" {
		t.Errorf("expected default version '1', got %q", cfg.Version)
	}
	if cfg.ExternalContactName != "" {
		t.Errorf("expected empty contact, got %q", cfg.ExternalContactName)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("CEO_HOME", t.TempDir())

	want := &Config{
		Version:              "1",
		ExternalContactName:  "Sam",
		ExternalContactPhone: "+1-555-0100",
		DefaultTargetTime:    "15:00",
	}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.ExternalContactName != "Sam" || got.ExternalContactPhone != "+1-555-0100" {
		t.Errorf("expected the saved contact back, got %+v", got)
	}
	if got.DefaultTargetTime != "15:00" {
		t.Errorf("expected target time '15:00', got %q", got.DefaultTargetTime)
	}
}
