package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("EVENT_ID", "")
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("MAX_PLAYS", "")
	t.Setenv("GAME_DURATION", "")
	t.Setenv("ADMIN_TOKEN", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "")
	}
	if cfg.SQLitePath != "data/submissions.db" {
		t.Errorf("SQLitePath = %q, want %q", cfg.SQLitePath, "data/submissions.db")
	}
	if cfg.EventID != "career-fair" {
		t.Errorf("EventID = %q, want %q", cfg.EventID, "career-fair")
	}
	if cfg.MaxPlays != 2 {
		t.Errorf("MaxPlays = %d, want %d", cfg.MaxPlays, 2)
	}
	if cfg.GameDuration != 30 {
		t.Errorf("GameDuration = %d, want %d", cfg.GameDuration, 30)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_URL", "postgres://localhost/careercatch")
	t.Setenv("SQLITE_PATH", "/tmp/fallback.db")
	t.Setenv("EVENT_ID", "spring-fair-2026")
	t.Setenv("MAX_PLAYS", "3")
	t.Setenv("GAME_DURATION", "45")
	t.Setenv("ADMIN_TOKEN", "s3cret")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "3000")
	}
	if cfg.DatabaseURL != "postgres://localhost/careercatch" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "postgres://localhost/careercatch")
	}
	if cfg.SQLitePath != "/tmp/fallback.db" {
		t.Errorf("SQLitePath = %q, want %q", cfg.SQLitePath, "/tmp/fallback.db")
	}
	if cfg.EventID != "spring-fair-2026" {
		t.Errorf("EventID = %q, want %q", cfg.EventID, "spring-fair-2026")
	}
	if cfg.MaxPlays != 3 {
		t.Errorf("MaxPlays = %d, want %d", cfg.MaxPlays, 3)
	}
	if cfg.GameDuration != 45 {
		t.Errorf("GameDuration = %d, want %d", cfg.GameDuration, 45)
	}
	if cfg.AdminToken != "s3cret" {
		t.Errorf("AdminToken = %q, want %q", cfg.AdminToken, "s3cret")
	}
}

func TestLoad_InvalidGameDuration(t *testing.T) {
	t.Setenv("GAME_DURATION", "abc")

	cfg := Load()

	if cfg.GameDuration != 30 {
		t.Errorf("GameDuration = %d, want %d (fallback)", cfg.GameDuration, 30)
	}
}
