package ws

import (
	"sync"

	"github.com/apex/log"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Client serialises writes to one connection. Broadcasts and direct replies
// may come from different goroutines.
type Client struct {
	gameID string
	conn   Conn
	mu     sync.Mutex
}

func (c *Client) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Hub tracks the live connections of every game.
type Hub struct {
	mu    sync.RWMutex
	games map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{games: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Register(gameID string, conn Conn) *Client {
	client := &Client{gameID: gameID, conn: conn}
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.games[gameID]
	if !ok {
		clients = make(map[*Client]struct{})
		h.games[gameID] = clients
	}
	clients[client] = struct{}{}
	log.WithFields(log.Fields{"game": gameID, "clients": len(clients)}).Debug("connection registered")
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.games[client.gameID]
	if !ok {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.games, client.gameID)
	}
}

// Count reports how many connections watch gameID.
func (h *Hub) Count(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

func (h *Hub) clients(gameID string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Client, 0, len(h.games[gameID]))
	for c := range h.games[gameID] {
		out = append(out, c)
	}
	return out
}

// Broadcast sends msg to every connection of gameID. Connections that fail a
// write are closed and dropped.
func (h *Hub) Broadcast(gameID string, msg Message) {
	for _, c := range h.clients(gameID) {
		if err := c.Send(msg); err != nil {
			log.WithError(err).WithField("game", gameID).Warn("dropping connection after failed write")
			h.Unregister(c)
			c.conn.Close()
		}
	}
}

// CloseGame notifies and disconnects every connection of gameID.
func (h *Hub) CloseGame(gameID string) {
	h.mu.Lock()
	clients := h.games[gameID]
	delete(h.games, gameID)
	h.mu.Unlock()

	msg := Message{Type: MessageTypeClosed, Payload: []byte(`{}`)}
	for c := range clients {
		_ = c.Send(msg)
		c.conn.Close()
	}
}
