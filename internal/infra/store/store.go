// Package store provides SQLite-backed persistence for the habit
// engine. The aggregate state is saved as a single versioned JSON
// snapshot in a key-value table — the Go analogue of the browser-local
// blob this design descends from — with WAL mode for crash safety.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/habitquest/habitquest/internal/domain"
)

// stateKey is the snapshot row holding the aggregate.
const stateKey = "aggregate"

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode and a 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Aggregate snapshots, keyed blob storage
		`CREATE TABLE IF NOT EXISTS snapshots (
			key      TEXT PRIMARY KEY,
			value    TEXT NOT NULL,
			saved_at INTEGER NOT NULL
		)`,

		// Installation metadata (profile id, first seen)
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Aggregate Snapshot ─────────────────────────────────────────────────────

// SaveState persists the aggregate as a JSON snapshot, replacing any
// previous one.
func (d *DB) SaveState(s *domain.State) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO snapshots (key, value, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, saved_at=excluded.saved_at`,
		stateKey, string(blob), time.Now().Unix(),
	)
	return err
}

// LoadState returns the persisted aggregate, or nil if none was ever
// saved (first run).
func (d *DB) LoadState() (*domain.State, error) {
	var blob string
	err := d.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, stateKey).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s domain.State
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &s, nil
}

// LastSavedAt reports when the aggregate was last persisted.
// Zero time if never saved.
func (d *DB) LastSavedAt() (time.Time, error) {
	var at int64
	err := d.db.QueryRow(`SELECT saved_at FROM snapshots WHERE key = ?`, stateKey).Scan(&at)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(at, 0), nil
}

// ─── Meta ───────────────────────────────────────────────────────────────────

// SetMeta stores an installation metadata key-value pair.
func (d *DB) SetMeta(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value. Returns "" if key not found.
func (d *DB) GetMeta(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// ProfileID returns the stable installation id, minting one on first
// call.
func (d *DB) ProfileID() (string, error) {
	id, err := d.GetMeta("profile_id")
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = uuid.New().String()
	if err := d.SetMeta("profile_id", id); err != nil {
		return "", fmt.Errorf("save profile id: %w", err)
	}
	return id, nil
}
