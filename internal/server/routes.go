package server

import (
	"fmt"
	"log"
	"net/http"

	"careercatch/internal/catalog"
	"careercatch/internal/config"
	"careercatch/internal/engine"
	"careercatch/internal/session"
	"careercatch/internal/sessions"
	"careercatch/internal/store"
)

func Run() error {
	appCfg := config.Load()

	cat, err := catalog.Load(appCfg.CatalogPath)
	if err != nil {
		log.Printf("[Catalog] Load failed: %v (using built-in catalog)\n", err)
		cat = catalog.Default()
	}

	srv := &Server{AdminToken: appCfg.AdminToken}

	// Persistence: Postgres when configured, SQLite fallback otherwise.
	// A session still plays with neither, scores just stay in memory.
	if appCfg.DatabaseURL != "" {
		st, err := store.ConnectPostgres(appCfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect to Postgres: %v (falling back to SQLite)\n", err)
		} else {
			srv.Store = st
			log.Println("[DB] Postgres connected and migrations applied")
		}
	}
	if srv.Store == nil {
		st, err := store.OpenSQLite(appCfg.SQLitePath)
		if err != nil {
			log.Printf("[DB] Failed to open SQLite: %v (running without persistence)\n", err)
		} else {
			srv.Store = st
			log.Printf("[DB] SQLite store open at %s\n", appCfg.SQLitePath)
		}
	}
	if srv.Store != nil {
		srv.Submissions = make(chan store.Record, 1000)
		go submissionWriter(srv.Store, srv.Submissions)
	}

	sessCfg := session.Config{
		DurationSec: appCfg.GameDuration,
		MaxPlays:    appCfg.MaxPlays,
		EventID:     appCfg.EventID,
		Layout:      engine.LayoutDesktop,
	}
	srv.Registry = sessions.NewRegistry(sessCfg, cat, srv.Submissions)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/session", srv.handleCreateSession)
	mux.HandleFunc("GET /api/session/state", srv.handleState)
	mux.HandleFunc("POST /api/session/start", srv.handleStart)
	mux.HandleFunc("POST /api/session/click", srv.handleClick)
	mux.HandleFunc("POST /api/session/achievement/close", srv.handleCloseAchievement)
	mux.HandleFunc("POST /api/session/home", srv.handleGoHome)
	mux.HandleFunc("GET /api/session/events", srv.handleEvents)
	mux.HandleFunc("GET /ws", srv.handleWS)
	mux.HandleFunc("GET /api/admin/submissions", srv.handleAdminSubmissions)
	mux.HandleFunc("GET /api/admin/stats", srv.handleAdminStats)
	mux.HandleFunc("GET /api/admin/leaderboard", srv.handleAdminLeaderboard)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	addr := "0.0.0.0:" + appCfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", appCfg.Port)
	return http.ListenAndServe(addr, mux)
}

// submissionWriter drains finished-round records into the store off the
// game goroutines. Submission failures are logged, not retried; the
// admin can re-pull from the kiosk before closing the booth.
func submissionWriter(st store.Store, buffer chan store.Record) {
	for rec := range buffer {
		if err := st.Submit(rec); err != nil {
			log.Printf("[DB] Submit error: %v\n", err)
		}
	}
}
