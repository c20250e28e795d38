package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the websocket connections joined to each room on this instance.
// Delivery is best-effort: a failed write only drops that connection's copy.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Join(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[roomID][conn] = true
}

func (h *Hub) Leave(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.rooms[roomID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

func (h *Hub) Broadcast(roomID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.rooms[roomID] {
		_ = conn.WriteMessage(websocket.TextMessage, payload)
	}
}
