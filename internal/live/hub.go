// Package live pushes game state over WebSockets so a kiosk can mirror a
// running session on a second screen (or an organizer can watch).
package live

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/coder/websocket"
)

// ClientMessage is the JSON structure received from clients.
type ClientMessage struct {
	Type   string `json:"t"`
	ItemID string `json:"id,omitempty"`
}

// Client message types.
const (
	MsgClick = "click"
	MsgClose = "close"
	MsgHome  = "home"
)

// Client represents a single WebSocket connection in the hub.
type Client struct {
	ConnID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub manages the WebSocket connections watching one session.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ConnID] = c
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[connID]; ok {
		close(c.Send)
		delete(h.clients, connID)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastState marshals a state snapshot and sends it to every client.
// Non-blocking: drops for clients whose channel is full, since the next
// tick supersedes this frame anyway.
func (h *Hub) BroadcastState(state any) {
	data, err := json.Marshal(state)
	if err != nil {
		log.Printf("[Live] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Send <- data:
		default:
			// Drop frame if channel full
		}
	}
}
