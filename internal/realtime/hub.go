package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

// KindInventoryChanged is sent after any ingredient or recipe mutation.
const KindInventoryChanged = "inventory.changed"

const (
	pingInterval = 25 * time.Second
	writeTimeout = 10 * time.Second
)

// Event - one message pushed to every connected client
type Event struct {
	Kind      string `json:"kind"`
	Dashboard any    `json:"dashboard,omitempty"`
}

// Client wraps a websocket connection. gorilla allows one concurrent writer,
// so pings and broadcasts share mu.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *Client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(messageType, data)
}

// Hub - the set of connected change-feed clients
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) *Client {
	c := &Client{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

// Unregister drops the client and closes its connection. Safe to call twice.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
}

// Count - number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends payload as JSON to every client and returns how many
// writes succeeded. Clients whose write fails are dropped.
func (h *Hub) Broadcast(payload any) int {
	msg, err := json.Marshal(payload)
	if err != nil {
		utils.Log.Error("realtime: marshal failed", zap.Error(err))
		return 0
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	sent := 0
	for _, c := range clients {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			utils.Log.Debug("realtime: dropping client", zap.Error(err))
			h.Unregister(c)
			continue
		}
		sent++
	}
	return sent
}

// Serve registers conn and blocks until the peer goes away. Incoming
// messages are discarded; a ping every pingInterval keeps proxies from
// closing idle connections.
func (h *Hub) Serve(conn *websocket.Conn) {
	c := h.Register(conn)
	defer h.Unregister(c)

	done := make(chan struct{})
	defer close(done)

	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := c.write(websocket.PingMessage, nil); err != nil {
					h.Unregister(c)
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
