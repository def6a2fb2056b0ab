// Package storage provides SQLite-based persistence for the best survival
// time and run history. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-paddle/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run.
type RunEntry struct {
	ID        int64
	GameID    string
	Seconds   int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_times (
			game_id TEXT PRIMARY KEY,
			seconds INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(game_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BestTime returns the stored best time in seconds for the given game.
// Returns 0 if none has been recorded.
func (s *Store) BestTime(gameID string) (int, error) {
	var seconds sql.NullInt64
	err := s.db.QueryRow(
		"SELECT seconds FROM best_times WHERE game_id = ?",
		gameID,
	).Scan(&seconds)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !seconds.Valid {
		return 0, nil
	}
	return int(seconds.Int64), nil
}

// SetBestTime overwrites the stored best time for the given game.
func (s *Store) SetBestTime(gameID string, seconds int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_times (game_id, seconds, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET
		   seconds = excluded.seconds,
		   updated_at = CURRENT_TIMESTAMP`,
		gameID, seconds,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot store best time: %w", err)
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(gameID string, seconds int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, seconds) VALUES (?, ?)",
		gameID, seconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs for the given game,
// newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seconds, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearRuns deletes all recorded runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ClearBest deletes the stored best time for the given game.
func (s *Store) ClearBest(gameID string) error {
	_, err := s.db.Exec("DELETE FROM best_times WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear best time: %w", err)
	}
	return nil
}

// Records returns a game.RecordStore bound to a single game ID.
// This adapter lets the session ledger persist without knowing the schema.
func (s *Store) Records(gameID string) *RecordStore {
	return &RecordStore{store: s, gameID: gameID}
}

// RecordStore adapts Store to the ledger's persistence contract.
type RecordStore struct {
	store  *Store
	gameID string
}

// LoadBest returns the stored best time, 0 when absent.
func (r *RecordStore) LoadBest() (int, error) {
	return r.store.BestTime(r.gameID)
}

// StoreBest overwrites the stored best time.
func (r *RecordStore) StoreBest(seconds int) error {
	return r.store.SetBestTime(r.gameID, seconds)
}

// Ensure RecordStore implements the ledger contract
var _ game.RecordStore = (*RecordStore)(nil)
