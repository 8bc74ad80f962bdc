package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings should be valid: %v", err)
	}
	if s.ProjectileLifetime() != 5*time.Second {
		t.Fatalf("expected 5s projectile lifetime, got %v", s.ProjectileLifetime())
	}
	if s.Grounding.Probe != ProbeGrid || s.Inventory.ReplacedWeapon != ReplacedWeaponDrop {
		t.Fatalf("unexpected defaults: probe %q, replaced weapon %q", s.Grounding.Probe, s.Inventory.ReplacedWeapon)
	}
}

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("failed saving defaults: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatal("expected an error when the settings file already exists")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("failed loading settings: %v", err)
	}
	if s.Grounding.Probe != ProbeGrid || s.Simulation.CollisionQueueSize != 256 {
		t.Fatalf("loaded settings differ from defaults: %+v", s)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	raw := "[Grounding]\nProbe = \"slab\"\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("failed loading settings: %v", err)
	}
	if s.Grounding.Probe != ProbeSlab {
		t.Fatalf("expected slab probe, got %q", s.Grounding.Probe)
	}
	if s.Movement.BaseSpeed != 10 {
		t.Fatalf("expected default base speed to be kept, got %v", s.Movement.BaseSpeed)
	}
}

func TestValidateGroundingBounds(t *testing.T) {
	tests := map[string]func(s *Settings){
		"tiny grid step":           func(s *Settings) { s.Grounding.Step = 1e-6 },
		"zero grid step":           func(s *Settings) { s.Grounding.Step = 0 },
		"ray longer than the body": func(s *Settings) { s.Grounding.RayLength = 0.75 },
		"negative ray":             func(s *Settings) { s.Grounding.RayLength = -0.1 },
	}
	for name, mutate := range tests {
		s := DefaultSettings()
		mutate(&s)
		if err := s.Validate(); err == nil {
			t.Fatalf("%s: expected validation to fail", name)
		}
	}

	s := DefaultSettings()
	s.Grounding.Step = 0.01
	s.Grounding.RayLength = 0.5
	if err := s.Validate(); err != nil {
		t.Fatalf("expected bounds to be inclusive, got %v", err)
	}
}

func TestLoadRejectsUnknownProbe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("[Grounding]\nProbe = \"sphere\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an unknown probe to be rejected")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
