package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultsCoverEveryMenuSection(t *testing.T) {
	lib := NewLibrary(nil)
	for _, key := range Order {
		body, ok := lib.Get(key)
		if !ok {
			t.Errorf("section %q has no content", key)
		}
		if strings.TrimSpace(body) == "" {
			t.Errorf("section %q is empty", key)
		}
	}
}

func TestGetUnknownSection(t *testing.T) {
	lib := NewLibrary(nil)
	if _, ok := lib.Get("bios-setup"); ok {
		t.Error("Get returned content for an unknown section")
	}
}

func TestLoadOverridesMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	override := "home: |\n  # CUSTOM HOME\n"
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(nil)
	if err := lib.LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}

	home, _ := lib.Get(SectionHome)
	if !strings.Contains(home, "CUSTOM HOME") {
		t.Errorf("override not applied: %q", home)
	}
	// untouched sections keep their defaults
	skills, _ := lib.Get(SectionSkills)
	if !strings.Contains(skills, "SKILLS.DAT") {
		t.Errorf("default section lost after override: %q", skills)
	}
}

func TestLoadOverridesRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("basement: secret\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(nil)
	if err := lib.LoadOverrides(path); err == nil {
		t.Error("expected error for unknown section key")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(path, []byte("home: FIRST\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(nil)
	if err := lib.LoadOverrides(path); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan struct{}, 1)
	stop, err := lib.Watch(path, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("home: SECOND\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload within 5s")
	}

	home, _ := lib.Get(SectionHome)
	if !strings.Contains(home, "SECOND") {
		t.Errorf("reload did not pick up new content: %q", home)
	}
}
