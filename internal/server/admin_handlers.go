package server

import (
	"log"
	"net/http"
	"strconv"

	"careercatch/internal/analytics"
)

// authorized checks the admin token header. An unset token leaves the
// admin endpoints open, which is how kiosk-local deployments run.
func (s *Server) authorized(r *http.Request) bool {
	if s.AdminToken == "" {
		return true
	}
	return r.Header.Get("X-Admin-Token") == s.AdminToken
}

func (s *Server) handleAdminSubmissions(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "invalid admin token")
		return
	}
	if s.Store == nil {
		writeError(w, http.StatusServiceUnavailable, "admin endpoints require a database connection")
		return
	}

	records, err := s.Store.ListAll()
	if err != nil {
		log.Printf("[Admin] ListAll error: %v\n", err)
		writeError(w, http.StatusInternalServerError, "error loading submissions")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "invalid admin token")
		return
	}
	if s.Store == nil {
		writeError(w, http.StatusServiceUnavailable, "admin endpoints require a database connection")
		return
	}

	records, err := s.Store.ListAll()
	if err != nil {
		log.Printf("[Admin] ListAll error: %v\n", err)
		writeError(w, http.StatusInternalServerError, "error loading submissions")
		return
	}
	writeJSON(w, http.StatusOK, analytics.Compute(records))
}

func (s *Server) handleAdminLeaderboard(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "invalid admin token")
		return
	}
	if s.Store == nil {
		writeError(w, http.StatusServiceUnavailable, "admin endpoints require a database connection")
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			limit = i
		}
	}

	records, err := s.Store.ListAll()
	if err != nil {
		log.Printf("[Admin] ListAll error: %v\n", err)
		writeError(w, http.StatusInternalServerError, "error loading submissions")
		return
	}
	writeJSON(w, http.StatusOK, analytics.Leaderboard(records, limit))
}
