// Package store persists table snapshots in an embedded SQLite database,
// keyed by (game id, version). Recovery loads the latest stored version and
// resumes; there is no action-log replay.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coder/quartz"
	_ "github.com/mattn/go-sqlite3"

	"github.com/feltworks/holdem/internal/game"
)

// ErrNotFound is returned when a game has no stored snapshots.
var ErrNotFound = errors.New("store: no snapshot found")

// Store is a snapshot store backed by SQLite. It is safe to use from each
// table's owner goroutine; access for one game id must be serialized by the
// caller, matching the engine's ownership rule.
type Store struct {
	db    *sql.DB
	clock quartz.Clock
}

// Open opens (or creates) the snapshot database at path. Use ":memory:" for
// an ephemeral store.
func Open(path string) (*Store, error) {
	return OpenWithClock(path, quartz.NewReal())
}

// OpenWithClock opens the store with an injected clock for tests.
func OpenWithClock(path string, clock quartz.Clock) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, clock: clock}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			game_id    TEXT    NOT NULL,
			version    INTEGER NOT NULL,
			state      TEXT    NOT NULL,
			created_at INTEGER NOT NULL,
			PRIMARY KEY (game_id, version)
		)
	`)
	if err != nil {
		return fmt.Errorf("store: creating tables: %w", err)
	}
	return nil
}

// Save stores a full table image under its (game id, version) key. Saving
// the same version twice overwrites, which makes host retries harmless.
func (s *Store) Save(gameID string, ps game.PersistedState) error {
	state, err := json.Marshal(ps)
	if err != nil {
		return fmt.Errorf("store: encoding state for %s: %w", gameID, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (game_id, version, state, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(game_id, version) DO UPDATE SET state = excluded.state, created_at = excluded.created_at
	`, gameID, ps.Version, string(state), s.clock.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("store: saving %s v%d: %w", gameID, ps.Version, err)
	}
	return nil
}

// Latest returns the highest-version image stored for the game.
func (s *Store) Latest(gameID string) (game.PersistedState, error) {
	var state string
	err := s.db.QueryRow(`
		SELECT state FROM snapshots
		WHERE game_id = ?
		ORDER BY version DESC
		LIMIT 1
	`, gameID).Scan(&state)
	if err == sql.ErrNoRows {
		return game.PersistedState{}, ErrNotFound
	}
	if err != nil {
		return game.PersistedState{}, fmt.Errorf("store: loading %s: %w", gameID, err)
	}

	var ps game.PersistedState
	if err := json.Unmarshal([]byte(state), &ps); err != nil {
		return game.PersistedState{}, fmt.Errorf("store: decoding %s: %w", gameID, err)
	}
	return ps, nil
}

// Versions lists the stored versions for a game in ascending order.
func (s *Store) Versions(gameID string) ([]int, error) {
	rows, err := s.db.Query(`
		SELECT version FROM snapshots WHERE game_id = ? ORDER BY version ASC
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("store: listing versions for %s: %w", gameID, err)
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
