package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"careercatch/internal/live"
)

// handleWS upgrades to a WebSocket mirror of the session: the server
// pushes a state frame per tick and accepts click/close/home commands.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	entry := s.getEntry(r)
	if entry == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[WS] Accept error: %v\n", err)
		return
	}
	defer conn.CloseNow()

	client := &live.Client{
		ConnID: uuid.New().String(),
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}
	entry.Hub.Register(client)
	defer entry.Hub.Unregister(client.ConnID)

	ctx := r.Context()
	go client.WritePump(ctx)

	// Initial frame so the client renders before the first tick
	client.Send <- mustMarshal(entry.Session.Snapshot(time.Now()))

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg live.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		now := time.Now()
		switch msg.Type {
		case live.MsgClick:
			entry.Session.Click(now, msg.ItemID)
		case live.MsgClose:
			entry.Session.CloseAchievement()
		case live.MsgHome:
			entry.Session.GoHome()
		}
		entry.Hub.BroadcastState(entry.Session.Snapshot(now))
	}
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WS] Marshal error: %v\n", err)
		return []byte("{}")
	}
	return data
}
