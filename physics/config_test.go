// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewWorldConfigAppliesDefaults(t *testing.T) {
	w, gravity := NewWorldConfig()
	if cap(w.contacts) != configDefaults.maxContacts {
		t.Errorf("expected default max contacts %d, got capacity %d", configDefaults.maxContacts, cap(w.contacts))
	}
	if gravity.Gravity.Y != configDefaults.gravity.Y {
		t.Errorf("expected default gravity, got %+v", gravity.Gravity)
	}
}

func TestNewWorldConfigAppliesOverrides(t *testing.T) {
	w, gravity := NewWorldConfig(Gravity(0, -1, 0), MaxContacts(10), PositionIterations(5))
	if gravity.Gravity.Y != -1 {
		t.Errorf("expected overridden gravity, got %v", gravity.Gravity.Y)
	}
	if cap(w.contacts) != 10 {
		t.Errorf("expected overridden max contacts, got %d", cap(w.contacts))
	}
	if w.Resolver.positionIterations != 5 {
		t.Errorf("expected overridden position iterations, got %d", w.Resolver.positionIterations)
	}
}

func TestMaxContactsIgnoresNonPositiveValues(t *testing.T) {
	cfg := configDefaults
	MaxContacts(-5)(&cfg)
	if cfg.maxContacts != configDefaults.maxContacts {
		t.Errorf("expected a non-positive MaxContacts to be ignored")
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	contents := "gravity: [0, -20, 0]\nmax_contacts: 128\nposition_iterations: 16\nsleep_epsilon: 0.1\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	attrs, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}

	cfg := configDefaults
	for _, attr := range attrs {
		attr(&cfg)
	}
	if cfg.gravity.Y != -20 {
		t.Errorf("expected gravity -20, got %v", cfg.gravity.Y)
	}
	if cfg.maxContacts != 128 {
		t.Errorf("expected max contacts 128, got %d", cfg.maxContacts)
	}
	if cfg.positionIterations != 16 {
		t.Errorf("expected position iterations 16, got %d", cfg.positionIterations)
	}
	if cfg.sleepEpsilon != 0.1 {
		t.Errorf("expected sleep epsilon 0.1, got %v", cfg.sleepEpsilon)
	}
}

func TestLoadConfigMissingFileReturnsError(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/path/world.yaml"); err == nil {
		t.Errorf("expected an error loading a missing config file")
	}
}
