// Package storage provides a SQLite journal of breakout sessions and the
// events they produced. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Session outcomes as stored in the journal.
const (
	OutcomeRunning   = "running"
	OutcomeGameOver  = "gameover"
	OutcomeCleared   = "cleared"
	OutcomeAbandoned = "abandoned"
)

// Event kinds as stored in the journal.
const (
	KindScoreChanged   = "score_changed"
	KindLifeLost       = "life_lost"
	KindBrickDestroyed = "brick_destroyed"
	KindGameOver       = "game_over"
	KindBoardCleared   = "board_cleared"
)

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionRecord is one play-through.
type SessionRecord struct {
	ID              string
	Source          string // terminal, ssh, gui, headless
	Rows            int
	Cols            int
	Lives           int // Lives at the start of the session
	FinalScore      int
	BricksDestroyed int
	Outcome         string
	StartedAt       time.Time
	EndedAt         time.Time // Zero while the session is open
}

// EventRecord is one domain event inside a session.
type EventRecord struct {
	ID        int64
	SessionID string
	Seq       int
	Tick      uint64
	Kind      string
	Value     int // Score or lives, depending on Kind
	Row       int // -1 unless Kind is brick_destroyed
	Col       int
	CreatedAt time.Time
}

// Stats aggregates the whole journal.
type Stats struct {
	Sessions        int
	GamesOver       int
	BoardsCleared   int
	Abandoned       int
	BricksDestroyed int64
	LastPlayed      time.Time
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

	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			final_score INTEGER NOT NULL DEFAULT 0,
			bricks_destroyed INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL DEFAULT 'running',
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_outcome ON sessions(outcome);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			value INTEGER NOT NULL DEFAULT 0,
			brick_row INTEGER,
			brick_col INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, seq);
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

// BeginSession opens a journal entry for a new session.
func (s *Store) BeginSession(rec SessionRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, source, grid_rows, grid_cols, lives, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Source, rec.Rows, rec.Cols, rec.Lives, OutcomeRunning,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot begin session: %w", err)
	}
	return nil
}

// EndSession closes an open session with its outcome and totals.
// Sessions that were already closed are left untouched.
func (s *Store) EndSession(sessionID, outcome string, finalScore, bricksDestroyed int) error {
	_, err := s.db.Exec(
		`UPDATE sessions
		 SET outcome = ?, final_score = ?, bricks_destroyed = ?, ended_at = CURRENT_TIMESTAMP
		 WHERE session_id = ? AND outcome = ?`,
		outcome, finalScore, bricksDestroyed, sessionID, OutcomeRunning,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	return nil
}

// AbandonOpen closes every open session from source as abandoned and
// returns how many were closed.
func (s *Store) AbandonOpen(source string) (int64, error) {
	res, err := s.db.Exec(
		`UPDATE sessions
		 SET outcome = ?, ended_at = CURRENT_TIMESTAMP
		 WHERE source = ? AND outcome = ?`,
		OutcomeAbandoned, source, OutcomeRunning,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot abandon open sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count abandoned sessions: %w", err)
	}
	return n, nil
}

// AppendEvents writes a batch of events in one transaction.
func (s *Store) AppendEvents(events []EventRecord) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(
		`INSERT INTO events (session_id, seq, tick, kind, value, brick_row, brick_col)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		var row, col sql.NullInt64
		if ev.Kind == KindBrickDestroyed {
			row = sql.NullInt64{Int64: int64(ev.Row), Valid: true}
			col = sql.NullInt64{Int64: int64(ev.Col), Valid: true}
		}
		if _, err := stmt.Exec(ev.SessionID, ev.Seq, int64(ev.Tick), ev.Kind, ev.Value, row, col); err != nil { //#nosec G115 -- tick counts fit in int64
			return fmt.Errorf("storage: cannot save event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit events: %w", err)
	}
	return nil
}

const sessionColumns = `session_id, source, grid_rows, grid_cols, lives,
	final_score, bricks_destroyed, outcome, started_at, ended_at`

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// SessionByID retrieves a session by its ID. Returns nil if it does not exist.
func (s *Store) SessionByID(sessionID string) (*SessionRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`,
		sessionID,
	)

	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// SessionEvents retrieves a session's events in emission order.
func (s *Store) SessionEvents(sessionID string) ([]EventRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, seq, tick, kind, value, brick_row, brick_col, created_at
		 FROM events
		 WHERE session_id = ?
		 ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []EventRecord
	for rows.Next() {
		var ev EventRecord
		var tick int64
		var row, col sql.NullInt64
		var createdAt any
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Seq, &tick, &ev.Kind, &ev.Value, &row, &col, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		ev.Tick = uint64(tick) //#nosec G115 -- written from a uint64
		ev.Row, ev.Col = -1, -1
		if row.Valid && col.Valid {
			ev.Row, ev.Col = int(row.Int64), int(col.Int64)
		}
		ev.CreatedAt = parseTimestamp(createdAt)
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return events, nil
}

// GetStats aggregates the journal.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(SUM(bricks_destroyed), 0),
		        MAX(started_at)
		 FROM sessions`,
		OutcomeGameOver, OutcomeCleared, OutcomeAbandoned,
	).Scan(&stats.Sessions, &stats.GamesOver, &stats.BoardsCleared, &stats.Abandoned, &stats.BricksDestroyed, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// Prune deletes every session (and its events) older than the cutoff.
func (s *Store) Prune(before time.Time) (int64, error) {
	cutoff := before.UTC().Format(sqliteTimeLayout)

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`DELETE FROM events WHERE session_id IN
		 (SELECT session_id FROM sessions WHERE started_at < ?)`,
		cutoff,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot prune events: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM sessions WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit prune: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pruned sessions: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (SessionRecord, error) {
	var rec SessionRecord
	var startedAt, endedAt any
	err := r.Scan(
		&rec.ID,
		&rec.Source,
		&rec.Rows,
		&rec.Cols,
		&rec.Lives,
		&rec.FinalScore,
		&rec.BricksDestroyed,
		&rec.Outcome,
		&startedAt,
		&endedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, err
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot scan session: %w", err)
	}

	rec.StartedAt = parseTimestamp(startedAt)
	rec.EndedAt = parseTimestamp(endedAt)
	return rec, nil
}

const sqliteTimeLayout = "2006-01-02 15:04:05"

// parseTimestamp handles both time.Time and string values from the driver.
// NULL yields the zero time.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
