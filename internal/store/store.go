// Package store persists game submissions. The primary backend is
// PostgreSQL; a local SQLite file serves as fallback when no remote
// database is reachable, so the booth keeps collecting leads offline.
package store

import "time"

// Record is the flat submission row handed over at game end.
type Record struct {
	ID           int64     `json:"id,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	University   string    `json:"university"`
	Event        string    `json:"event"`
	Score        int       `json:"score"`
	Timestamp    time.Time `json:"timestamp"`
	BoothCode    string    `json:"boothCode"`
	Achievements string    `json:"achievements"`
	GoodClicks   int       `json:"goodClicks"`
	BadClicks    int       `json:"badClicks"`
	Accuracy     int       `json:"accuracy"`
	Level        string    `json:"level"`
}

// Store is the persistence collaborator: submit at game end, list for the
// admin dashboard. Failures are logged by callers and never block the
// game.
type Store interface {
	Submit(rec Record) error
	ListAll() ([]Record, error)
	Ping() error
	Close() error
}
