package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"careercatch/internal/session"
	"careercatch/internal/sessions"
	"careercatch/internal/store"
)

const tickInterval = 100 * time.Millisecond

type Server struct {
	Registry    *sessions.Registry
	Store       store.Store       // nil if no persistence configured
	Submissions chan store.Record // nil if no persistence configured
	AdminToken  string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Handle] Encode error: %v\n", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// getEntry resolves the current session from the session_id cookie.
func (s *Server) getEntry(r *http.Request) *sessions.Entry {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		return nil
	}
	return s.Registry.Get(cookie.Value)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:CreateSession] Request Received")

	var req struct {
		Layout string `json:"layout"`
	}
	if r.Body != nil {
		// Empty or malformed bodies fall back to the default layout
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	entry := s.Registry.Create(req.Layout)

	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    entry.ID,
		Path:     "/",
		HttpOnly: true,
	})

	fmt.Printf("[Handle:CreateSession] Created session %s\n", entry.ID)
	writeJSON(w, http.StatusCreated, entry.Session.Snapshot(time.Now()))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	entry := s.getEntry(r)
	if entry == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, entry.Session.Snapshot(time.Now()))
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:Start] Request Received")
	entry := s.getEntry(r)
	if entry == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var info session.PlayerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	now := time.Now()
	if !entry.Session.Start(now, info) {
		writeError(w, http.StatusConflict, "cannot start game")
		return
	}

	go s.driveRound(entry)
	writeJSON(w, http.StatusOK, entry.Session.Snapshot(now))
}

// driveRound ticks the session until the round ends, pushing a state
// frame to any live watchers after every tick.
func (s *Server) driveRound(entry *sessions.Entry) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for now := range ticker.C {
		phase := entry.Session.Tick(now)
		entry.Hub.BroadcastState(entry.Session.Snapshot(now))
		if phase != session.PhaseGame {
			return
		}
	}
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	entry := s.getEntry(r)
	if entry == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "invalid click payload")
		return
	}

	now := time.Now()
	// Clicks on vanished items are fine, just report whether it landed
	hit := entry.Session.Click(now, req.ItemID)
	snap := entry.Session.Snapshot(now)
	writeJSON(w, http.StatusOK, struct {
		Hit bool `json:"hit"`
		session.Data
	}{Hit: hit, Data: snap})
}

func (s *Server) handleCloseAchievement(w http.ResponseWriter, r *http.Request) {
	entry := s.getEntry(r)
	if entry == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	entry.Session.CloseAchievement()
	writeJSON(w, http.StatusOK, entry.Session.Snapshot(time.Now()))
}

func (s *Server) handleGoHome(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:GoHome] Request Received")
	entry := s.getEntry(r)
	if entry == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	entry.Session.GoHome()
	writeJSON(w, http.StatusOK, entry.Session.Snapshot(time.Now()))
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	entry := s.getEntry(r)
	if entry == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	msgChan := entry.Broadcaster.Subscribe()
	defer entry.Broadcaster.Unsubscribe(msgChan)

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-msgChan:
			fmt.Fprintf(w, "event: %s\n", msg.Event)
			for _, line := range strings.Split(msg.Msg, "\n") {
				fmt.Fprintf(w, "data: %s\n", line)
			}
			fmt.Fprint(w, "\n")
			flusher.Flush()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.Store != nil {
		if err := s.Store.Ping(); err != nil {
			status = "db_error"
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status":"%s","error":"%s"}`, status, err.Error())
			return
		}
	}
	fmt.Fprintf(w, `{"status":"%s"}`, status)
}
