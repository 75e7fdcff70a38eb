package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
)

// Event is a console activity notification pushed to every connected
// client: scans starting or being cancelled, baseline checks completing.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub manages WebSocket clients subscribed to the event feed.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Subscribe(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) Unsubscribe(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		err := conn.Write(context.Background(), websocket.MessageText, data)
		if err != nil {
			slog.Debug("ws write error", "error", err)
			h.Unsubscribe(conn)
			conn.Close(websocket.StatusNormalClosure, "")
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("ws accept error", "error", err)
		return
	}
	defer conn.CloseNow()

	s.hub.Subscribe(conn)
	defer s.hub.Unsubscribe(conn)

	// Drain client frames until the connection closes.
	for {
		_, _, err := conn.Read(r.Context())
		if err != nil {
			return
		}
	}
}
