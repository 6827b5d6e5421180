package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Preferences {
	t.Helper()
	p, err := Open(filepath.Join(t.TempDir(), "state", "prefs.db"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestThemeRoundTrip(t *testing.T) {
	p := openTestStore(t)

	if _, err := p.Theme(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unset theme, got %v", err)
	}

	if err := p.SetTheme("amber"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	got, err := p.Theme()
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if got != "amber" {
		t.Errorf("got theme %q, want %q", got, "amber")
	}

	// overwrite
	if err := p.SetTheme("white"); err != nil {
		t.Fatalf("SetTheme overwrite failed: %v", err)
	}
	got, _ = p.Theme()
	if got != "white" {
		t.Errorf("got theme %q after overwrite, want %q", got, "white")
	}
}

func TestSnakeHighScoreOnlyClimbs(t *testing.T) {
	p := openTestStore(t)

	score, err := p.SnakeHighScore()
	if err != nil || score != 0 {
		t.Fatalf("fresh store: got (%d, %v), want (0, nil)", score, err)
	}

	steps := []struct {
		set  int
		want int
	}{
		{set: 50, want: 50},
		{set: 30, want: 50}, // lower score ignored
		{set: 120, want: 120},
		{set: 120, want: 120},
	}
	for _, step := range steps {
		if err := p.SetSnakeHighScore(step.set); err != nil {
			t.Fatalf("SetSnakeHighScore(%d) failed: %v", step.set, err)
		}
		got, err := p.SnakeHighScore()
		if err != nil {
			t.Fatalf("SnakeHighScore failed: %v", err)
		}
		if got != step.want {
			t.Errorf("after set %d: got %d, want %d", step.set, got, step.want)
		}
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("", nil); err == nil {
		t.Error("expected error for empty path")
	}
}
