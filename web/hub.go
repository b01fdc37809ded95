package web

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/LubenZA/ViewCompass/telemetry"
)

// Hub tracks connected websocket clients and fans rendered screens out to
// them. Clients that fail a write are dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	n := len(h.clients)
	h.mu.Unlock()
	telemetry.SetConnectedClients(n)
	log.Printf("Client connected. Total clients: %d", n)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	n := len(h.clients)
	h.mu.Unlock()
	telemetry.SetConnectedClients(n)
	log.Printf("Client disconnected. Total clients: %d", n)
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends v as JSON to every connected client.
func (h *Hub) Broadcast(v interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(v); err != nil {
			log.Println("WebSocket write error:", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
