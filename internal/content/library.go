package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Library serves section bodies, built-in defaults merged with an
// optional YAML override file. Safe for concurrent use; the shell reads
// while the watcher goroutine reloads.
type Library struct {
	mu       sync.RWMutex
	sections map[string]string
	logger   *zap.Logger
}

// NewLibrary returns a library serving the built-in sections.
func NewLibrary(logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	sections := make(map[string]string, len(defaults))
	for key, body := range defaults {
		sections[key] = body
	}
	return &Library{sections: sections, logger: logger.Named("content")}
}

// Get returns the body for a section key.
// Unknown keys return ok=false; the shell shows an error panel.
func (l *Library) Get(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	body, ok := l.sections[key]
	return body, ok
}

// LoadOverrides merges the YAML override file at path over the defaults.
// The file maps section keys to markdown bodies; unknown keys are
// rejected so typos in the file surface immediately.
func (l *Library) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("content: read overrides: %w", err)
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("content: parse overrides: %w", err)
	}
	for key := range overrides {
		if _, ok := defaults[key]; !ok {
			return fmt.Errorf("content: unknown section %q in overrides", key)
		}
	}

	l.mu.Lock()
	for key, body := range overrides {
		l.sections[key] = body
	}
	l.mu.Unlock()

	l.logger.Info("content overrides loaded",
		zap.String("path", path), zap.Int("sections", len(overrides)))
	return nil
}

// Watch reloads the override file whenever it changes, until the watcher
// is closed via the returned stop function. onReload is called after a
// successful reload so the shell can re-render the current panel.
func (l *Library) Watch(path string, onReload func()) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("content: create watcher: %w", err)
	}
	// Watch the directory: editors replace files, which drops the watch
	// on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("content: watch %s: %w", path, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := l.LoadOverrides(path); err != nil {
					l.logger.Warn("content reload failed", zap.Error(err))
					continue
				}
				if onReload != nil {
					onReload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.logger.Warn("content watcher error", zap.Error(err))
			}
		}
	}()

	return func() { _ = watcher.Close() }, nil
}
