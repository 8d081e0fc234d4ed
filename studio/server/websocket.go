package server

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/watzon/penscape/studio"
)

const writeWait = 10 * time.Second

// client is one live preview connection. Writes are serialized per client.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
	// watch limits library events to one theme id, empty means all
	watch string
}

func (c *client) wants(ev studio.Event) bool {
	return c.watch == "" || c.watch == ev.ID
}

func (c *client) writePrepared(pm *websocket.PreparedMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WritePreparedMessage(pm)
}

func (c *client) writeReply(reply wsReply) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(reply)
}

// Hub tracks live preview clients and fans library events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
	}
}

// Add registers conn and returns its client.
func (h *Hub) Add(conn *websocket.Conn) *client {
	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[conn] = c
	h.mu.Unlock()
	return c
}

// Remove drops conn from the hub.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// Len returns the number of open connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Watch limits the events conn receives to the theme id, or lifts the limit
// when id is empty.
func (h *Hub) Watch(conn *websocket.Conn, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[conn]; ok {
		c.watch = id
	}
}

// Broadcast sends ev to every client interested in it. The event is encoded
// once. Clients that fail to accept it are dropped.
func (h *Hub) Broadcast(ev studio.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	pm, err := websocket.NewPreparedMessage(websocket.TextMessage, data)
	if err != nil {
		return fmt.Errorf("failed to prepare event: %w", err)
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		if c.wants(ev) {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.writePrepared(pm); err != nil {
			h.Remove(c.conn)
			c.conn.Close()
		}
	}
	return nil
}
