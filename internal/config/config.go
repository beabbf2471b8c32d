package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	SQLitePath   string
	EventID      string
	CatalogPath  string
	MaxPlays     int
	GameDuration int // seconds
	AdminToken   string
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   getEnv("SQLITE_PATH", "data/submissions.db"),
		EventID:      getEnv("EVENT_ID", "career-fair"),
		CatalogPath:  os.Getenv("CATALOG_PATH"),
		MaxPlays:     getEnvInt("MAX_PLAYS", 2),
		GameDuration: getEnvInt("GAME_DURATION", 30),
		AdminToken:   os.Getenv("ADMIN_TOKEN"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
