// Package store persists user preferences between runs.
// A single SQLite key/value table under the state directory holds the
// phosphor theme and the snake high score.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	keyTheme          = "phosphor-theme"
	keySnakeHighScore = "snake-high-score"
)

// ErrNotFound is returned when a preference has never been set.
var ErrNotFound = errors.New("preference not found")

// Preferences is the SQLite-backed preference store.
type Preferences struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open creates or opens the preference store at dbPath.
func Open(dbPath string, logger *zap.Logger) (*Preferences, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("store: database path required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: verify database connection: %w", err)
	}

	p := &Preferences{db: db, logger: logger.Named("store")}
	if err := p.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: initialize schema: %w", err)
	}
	return p, nil
}

func (p *Preferences) initializeSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS preferences (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := p.db.Exec(schema)
	return err
}

// Close releases the underlying database.
func (p *Preferences) Close() error {
	return p.db.Close()
}

func (p *Preferences) get(key string) (string, error) {
	var value string
	err := p.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store: read %s: %w", key, err)
	}
	return value, nil
}

func (p *Preferences) set(key, value string) error {
	_, err := p.db.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	p.logger.Debug("preference saved", zap.String("key", key), zap.String("value", value))
	return nil
}

// Theme returns the persisted phosphor theme, or ErrNotFound.
func (p *Preferences) Theme() (string, error) {
	return p.get(keyTheme)
}

// SetTheme persists the phosphor theme.
func (p *Preferences) SetTheme(name string) error {
	return p.set(keyTheme, name)
}

// SnakeHighScore returns the best snake score, zero when unset.
func (p *Preferences) SnakeHighScore() (int, error) {
	value, err := p.get(keySnakeHighScore)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("store: corrupt high score %q: %w", value, err)
	}
	return score, nil
}

// SetSnakeHighScore persists a new best score. Lower scores are ignored.
func (p *Preferences) SetSnakeHighScore(score int) error {
	current, err := p.SnakeHighScore()
	if err != nil {
		return err
	}
	if score <= current {
		return nil
	}
	return p.set(keySnakeHighScore, strconv.Itoa(score))
}
