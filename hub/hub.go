// Package hub tracks the websocket connections watching each conversation
// session and fans appended messages out to them.
package hub

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
)

// ErrBufferFull is returned when a connection's send buffer is full.
var ErrBufferFull = errors.New("send buffer full")

// sendBuffer is the per-connection outbound queue size.
const sendBuffer = 64

// Connection is one websocket subscriber. The ws handler owns the socket
// and drains Send; the hub never touches the socket directly.
type Connection struct {
	ID        string
	SessionID string
	Send      chan []byte
}

// Hub is the connection registry. Broadcasting to a session with no
// connections is a no-op; a closed chat surface simply stops receiving.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[string]*Connection
}

// New returns an empty hub.
func New() *Hub {
	return &Hub{sessions: make(map[string]map[string]*Connection)}
}

// Register creates a connection bound to a session and adds it to the hub.
func (h *Hub) Register(sessionID string) *Connection {
	conn := &Connection{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Send:      make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sessions[sessionID] == nil {
		h.sessions[sessionID] = make(map[string]*Connection)
	}
	h.sessions[sessionID][conn.ID] = conn
	return conn
}

// Unregister removes a connection and closes its send channel.
func (h *Hub) Unregister(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.sessions[conn.SessionID]
	if !ok {
		return
	}
	if _, ok := conns[conn.ID]; !ok {
		return
	}
	delete(conns, conn.ID)
	if len(conns) == 0 {
		delete(h.sessions, conn.SessionID)
	}
	close(conn.Send)
}

// Broadcast sends data to every connection watching sessionID. Slow
// connections are skipped rather than blocking the turn path.
func (h *Hub) Broadcast(sessionID string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.sessions[sessionID] {
		select {
		case conn.Send <- data:
		default:
			log.Printf("WARN: connection %s buffer full, dropping message", conn.ID)
		}
	}
}

// BroadcastJSON marshals v and broadcasts it to a session.
func (h *Hub) BroadcastJSON(sessionID string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(sessionID, data)
	return nil
}

// HasActiveConnections reports whether any surface is watching a session.
func (h *Hub) HasActiveConnections(sessionID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID]) > 0
}

// ConnectionCount returns the total number of connections.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, conns := range h.sessions {
		n += len(conns)
	}
	return n
}

// SessionCount returns the number of sessions with at least one connection.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
