package store

import (
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/folio.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen — should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	// Running migrate again should be a no-op
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Preferences
// ============================================================

func TestGetPreferenceMissing(t *testing.T) {
	s := newTestStore(t)

	// No seeded rows: an unset key is an error, not an empty value.
	if _, err := s.GetPreference("theme"); err == nil {
		t.Fatal("expected error for unset preference")
	}
}

func TestSetAndGetPreference(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetPreference("theme", "light"); err != nil {
		t.Fatal(err)
	}
	v, err := s.GetPreference("theme")
	if err != nil {
		t.Fatal(err)
	}
	if v != "light" {
		t.Fatalf("expected light, got %q", v)
	}
}

func TestSetPreferenceOverwrites(t *testing.T) {
	s := newTestStore(t)

	s.SetPreference("theme", "light")
	s.SetPreference("theme", "dark")

	v, err := s.GetPreference("theme")
	if err != nil {
		t.Fatal(err)
	}
	if v != "dark" {
		t.Fatalf("expected dark, got %q", v)
	}
}

func TestPreferencePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/folio.db"

	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetPreference("theme", "light"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	v, err := s2.GetPreference("theme")
	if err != nil {
		t.Fatal(err)
	}
	if v != "light" {
		t.Fatalf("expected light after reopen, got %q", v)
	}
}

func TestAllPreferences(t *testing.T) {
	s := newTestStore(t)

	s.SetPreference("theme", "dark")
	s.SetPreference("accent", "violet")

	prefs, err := s.AllPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if len(prefs) != 2 {
		t.Fatalf("expected 2 preferences, got %d", len(prefs))
	}
	// Ordered by key
	if prefs[0].Key != "accent" || prefs[1].Key != "theme" {
		t.Fatalf("unexpected order: %+v", prefs)
	}
}
