// Package config holds the KITEK application configuration.
// Configuration is read from ~/.kitek/config.yaml, merged over defaults,
// with a small set of environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all KITEK configuration.
type Config struct {
	// StateDir is where logs, preferences and exports live.
	StateDir string `yaml:"state_dir"`

	// Theme is the startup phosphor theme. The persisted preference
	// (see store.Preferences) wins over this when present.
	Theme string `yaml:"theme"`

	// AI configures the local assistant.
	AI AIConfig `yaml:"ai"`

	// Typing configures the response typing animation.
	Typing TypingConfig `yaml:"typing"`

	// ContentPath optionally points at a YAML file overriding the
	// built-in CV sections. Watched for changes while the app runs.
	ContentPath string `yaml:"content_path"`
}

// AIConfig configures the on-device inference gateway.
type AIConfig struct {
	// Enabled switches the assistant on. When false the command shell
	// reports unknown commands instead of asking the model.
	Enabled bool `yaml:"enabled"`

	// Host is the Ollama endpoint.
	Host string `yaml:"host"`

	// Model is the local model tag prompted for answers.
	Model string `yaml:"model"`

	// PromptTimeout bounds a single generation.
	PromptTimeout time.Duration `yaml:"prompt_timeout"`

	// PullTimeout bounds the one-time model download.
	PullTimeout time.Duration `yaml:"pull_timeout"`
}

// TypingConfig controls the character-by-character output animation.
type TypingConfig struct {
	// CharDelay is the base delay between characters.
	CharDelay time.Duration `yaml:"char_delay"`

	// SpaceDelay is the delay after a space (words land in bursts).
	SpaceDelay time.Duration `yaml:"space_delay"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		StateDir: defaultStateDir(),
		Theme:    "green",
		AI: AIConfig{
			Enabled:       true,
			Host:          "http://localhost:11434",
			Model:         "gemma3:1b",
			PromptTimeout: 2 * time.Minute,
			PullTimeout:   15 * time.Minute,
		},
		Typing: TypingConfig{
			CharDelay:  12 * time.Millisecond,
			SpaceDelay: 20 * time.Millisecond,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(defaultStateDir(), "config.yaml")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kitek"
	}
	return filepath.Join(home, ".kitek")
}

// Load reads the config at path, merged over defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides maps environment variables over the loaded file.
func (c *Config) applyEnvOverrides() {
	if host := os.Getenv("KITEK_OLLAMA_HOST"); host != "" {
		c.AI.Host = host
	}
	if model := os.Getenv("KITEK_OLLAMA_MODEL"); model != "" {
		c.AI.Model = model
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Theme != "" && !ValidTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (want green, amber or white)", c.Theme)
	}
	if c.AI.Enabled {
		if c.AI.Host == "" {
			return fmt.Errorf("ai.host must be set when ai.enabled is true")
		}
		if c.AI.Model == "" {
			return fmt.Errorf("ai.model must be set when ai.enabled is true")
		}
	}
	return nil
}

// Themes lists the phosphor themes in menu order.
var Themes = []string{"green", "amber", "white"}

// ValidTheme reports whether name is a known phosphor theme.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
