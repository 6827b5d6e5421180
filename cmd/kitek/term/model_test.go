package term

import (
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"kitek/internal/command"
	"kitek/internal/config"
	"kitek/internal/content"
	"kitek/internal/printer"
	"kitek/internal/store"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.StateDir = t.TempDir()
	cfg.Typing.CharDelay = time.Millisecond
	cfg.Typing.SpaceDelay = time.Millisecond
	return cfg
}

func testOptions(t *testing.T) Options {
	t.Helper()
	cfg := testConfig(t)
	library := content.NewLibrary(zap.NewNop())
	return Options{
		Config:    cfg,
		Library:   library,
		Processor: command.NewProcessor(func() bool { return false }, zap.NewNop()),
		Exporter:  printer.NewExporter(library, cfg.StateDir, zap.NewNop()),
		Logger:    zap.NewNop(),
	}
}

func TestStartupThemePrecedence(t *testing.T) {
	prefs, err := store.Open(filepath.Join(t.TempDir(), "kitek.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	defer prefs.Close()
	if err := prefs.SetTheme("amber"); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}

	cfgWhite := config.DefaultConfig()
	cfgWhite.Theme = "white"

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "flag beats persisted preference",
			opts: Options{Theme: "white", Prefs: prefs, Config: cfgWhite},
			want: "white",
		},
		{
			name: "persisted preference beats config",
			opts: Options{Prefs: prefs, Config: cfgWhite},
			want: "amber",
		},
		{
			name: "config beats default",
			opts: Options{Config: cfgWhite},
			want: "white",
		},
		{
			name: "default is green",
			opts: Options{Config: config.DefaultConfig()},
			want: "green",
		},
		{
			name: "invalid flag is ignored",
			opts: Options{Theme: "plasma", Config: cfgWhite},
			want: "white",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startupTheme(tt.opts); got != tt.want {
				t.Errorf("startupTheme() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewStartsInBootMode(t *testing.T) {
	m := New(testOptions(t))
	if m.mode != ModeBoot {
		t.Errorf("mode = %v, want ModeBoot", m.mode)
	}
	if m.section != content.SectionHome {
		t.Errorf("section = %q, want %q", m.section, content.SectionHome)
	}
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() = nil, want boot/clock commands")
	}
}

func TestNewLoadsPersistedHighScore(t *testing.T) {
	prefs, err := store.Open(filepath.Join(t.TempDir(), "kitek.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	defer prefs.Close()
	if err := prefs.SetSnakeHighScore(90); err != nil {
		t.Fatalf("SetSnakeHighScore() error = %v", err)
	}

	opts := testOptions(t)
	opts.Prefs = prefs
	m := New(opts)
	if m.highScore != 90 {
		t.Errorf("highScore = %d, want 90", m.highScore)
	}
}
