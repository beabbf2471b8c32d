package store

import (
	"database/sql"
	"embed"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Postgres is the remote submissions store.
type Postgres struct {
	conn *sql.DB
}

func ConnectPostgres(dsn string) (*Postgres, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	log.Println("[DB] Connected to PostgreSQL")

	p := &Postgres{conn: conn}
	if err := p.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrating: %w", err)
	}
	return p, nil
}

func (p *Postgres) migrate() error {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations dir: %w", err)
	}
	for _, entry := range entries {
		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}
		if _, err := p.conn.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", entry.Name(), err)
		}
		log.Printf("[DB] Applied migration: %s\n", entry.Name())
	}
	return nil
}

func (p *Postgres) Submit(rec Record) error {
	_, err := p.conn.Exec(`
		INSERT INTO game_submissions
			(name, email, university, event, score, submitted_at, booth_code, achievements, good_clicks, bad_clicks, accuracy, level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, rec.Name, rec.Email, rec.University, rec.Event, rec.Score, rec.Timestamp,
		rec.BoothCode, rec.Achievements, rec.GoodClicks, rec.BadClicks, rec.Accuracy, rec.Level)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (p *Postgres) ListAll() ([]Record, error) {
	rows, err := p.conn.Query(`
		SELECT id, name, email, university, event, score, submitted_at, booth_code, achievements, good_clicks, bad_clicks, accuracy, level
		FROM game_submissions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.University, &r.Event, &r.Score, &r.Timestamp,
			&r.BoothCode, &r.Achievements, &r.GoodClicks, &r.BadClicks, &r.Accuracy, &r.Level); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (p *Postgres) Ping() error {
	return p.conn.Ping()
}

func (p *Postgres) Close() error {
	return p.conn.Close()
}
