package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient is one open UI connection.
type WSClient struct {
	Conn *websocket.Conn
	mu   sync.Mutex
}

func (c *WSClient) write(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, msg)
}

// Broadcaster pushes an event to every connected UI.
type Broadcaster interface {
	Broadcast(kind string, payload any)
}

// RealtimeHub fans events out to all connected clients of the single user.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Len reports the number of connected clients.
func (h *RealtimeHub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends {"kind": kind, "data": payload} to every client.
func (h *RealtimeHub) Broadcast(kind string, payload any) {
	msg, err := json.Marshal(map[string]any{"kind": kind, "data": payload})
	if err != nil {
		log.Printf("realtime: encode %s: %v", kind, err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if err := c.write(msg); err != nil {
			log.Printf("realtime: write %s: %v", kind, err)
		}
	}
}
