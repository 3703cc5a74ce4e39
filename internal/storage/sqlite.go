// Package storage provides SQLite-based persistence for game recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// ErrNotFound is returned when a recording ID does not exist.
var ErrNotFound = errors.New("storage: recording not found")

// Store manages the SQLite database connection for recordings.
type Store struct {
	db *sql.DB
}

// Recording is a finished game: the parameters it was started with and the
// ordered commands it received. Replaying the journal from the seed
// reproduces the game, so the final score is not stored.
type Recording struct {
	ID            int64
	Seed          int64
	Rows          int
	Cols          int
	PointsPerLine int
	Journal       string
	CreatedAt     time.Time
}

// Config returns the engine configuration the game was played with.
func (r Recording) Config() blockfall.Config {
	return blockfall.Config{
		Rows:          r.Rows,
		Cols:          r.Cols,
		PointsPerLine: r.PointsPerLine,
		Seed:          r.Seed,
	}
}

// Replay re-simulates the recording and returns the finished game.
func (r Recording) Replay() (*blockfall.Game, error) {
	j, err := blockfall.ParseJournal(r.Journal)
	if err != nil {
		return nil, fmt.Errorf("storage: recording %d: %w", r.ID, err)
	}
	return blockfall.Replay(r.Config(), j), nil
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
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			points_per_line INTEGER NOT NULL,
			journal TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at DESC);
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

// SaveRecording stores a finished game and returns the new record ID.
func (s *Store) SaveRecording(cfg blockfall.Config, journal blockfall.Journal) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO recordings (seed, board_rows, board_cols, points_per_line, journal)
		 VALUES (?, ?, ?, ?, ?)`,
		cfg.Seed, cfg.Rows, cfg.Cols, cfg.PointsPerLine, journal.Encode(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const recordingColumns = `id, seed, board_rows, board_cols, points_per_line, journal, created_at`

// Recordings returns the most recent recordings, newest first.
func (s *Store) Recordings(limit int) ([]Recording, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+recordingColumns+`
		 FROM recordings
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var recs []Recording
	for rows.Next() {
		r, err := scanRecording(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		recs = append(recs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recs, nil
}

// Recording returns one recording by ID, or ErrNotFound.
func (s *Store) Recording(id int64) (Recording, error) {
	row := s.db.QueryRow(
		`SELECT `+recordingColumns+` FROM recordings WHERE id = ?`,
		id,
	)
	r, err := scanRecording(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Recording{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return Recording{}, fmt.Errorf("storage: cannot query recording: %w", err)
	}
	return r, nil
}

// DeleteRecording removes one recording. Deleting a missing ID returns ErrNotFound.
func (s *Store) DeleteRecording(id int64) error {
	res, err := s.db.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// ClearRecordings deletes every recording.
func (s *Store) ClearRecordings() error {
	_, err := s.db.Exec("DELETE FROM recordings")
	if err != nil {
		return fmt.Errorf("storage: cannot clear recordings: %w", err)
	}
	return nil
}

// scanner is the common subset of *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecording(sc scanner) (Recording, error) {
	var r Recording
	var createdAt any
	if err := sc.Scan(&r.ID, &r.Seed, &r.Rows, &r.Cols, &r.PointsPerLine, &r.Journal, &createdAt); err != nil {
		return r, err
	}
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// parseTimestamp handles both driver representations of DATETIME.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
