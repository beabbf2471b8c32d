package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go driver, no CGO
)

// SQLite is the local fallback store, used when no remote database is
// configured or reachable.
type SQLite struct {
	conn *sql.DB
}

// OpenSQLite creates or opens the fallback database at path, creating
// parent directories as needed.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &SQLite{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrating: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS game_submissions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			university TEXT NOT NULL,
			event TEXT NOT NULL,
			score INTEGER NOT NULL,
			submitted_at TEXT NOT NULL,
			booth_code TEXT NOT NULL,
			achievements TEXT NOT NULL DEFAULT '',
			good_clicks INTEGER NOT NULL DEFAULT 0,
			bad_clicks INTEGER NOT NULL DEFAULT 0,
			accuracy INTEGER NOT NULL DEFAULT 0,
			level TEXT NOT NULL DEFAULT 'Student',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_game_submissions_event ON game_submissions(event);
	`
	_, err := s.conn.Exec(schema)
	return err
}

func (s *SQLite) Submit(rec Record) error {
	_, err := s.conn.Exec(`
		INSERT INTO game_submissions
			(name, email, university, event, score, submitted_at, booth_code, achievements, good_clicks, bad_clicks, accuracy, level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Name, rec.Email, rec.University, rec.Event, rec.Score, rec.Timestamp.Format(time.RFC3339),
		rec.BoothCode, rec.Achievements, rec.GoodClicks, rec.BadClicks, rec.Accuracy, rec.Level)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (s *SQLite) ListAll() ([]Record, error) {
	rows, err := s.conn.Query(`
		SELECT id, name, email, university, event, score, submitted_at, booth_code, achievements, good_clicks, bad_clicks, accuracy, level
		FROM game_submissions
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		var ts string
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.University, &r.Event, &r.Score, &ts,
			&r.BoothCode, &r.Achievements, &r.GoodClicks, &r.BadClicks, &r.Accuracy, &r.Level); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			r.Timestamp = parsed
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (s *SQLite) Ping() error {
	return s.conn.Ping()
}

func (s *SQLite) Close() error {
	return s.conn.Close()
}
