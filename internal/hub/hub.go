// Package hub keeps the registry of live connections and fans outbound
// payloads out to them.
package hub

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Techhackontime999/LinkUp-sub000/internal/metrics"
)

var (
	// ErrRecipientUnreachable means no matching connection accepted the payload.
	ErrRecipientUnreachable = errors.New("recipient unreachable")
	// ErrClientClosed is returned when writing to a closed connection.
	ErrClientClosed = errors.New("connection closed")
)

// Kind of connection gateway.
type Kind string

const (
	KindChat          Kind = "chat"
	KindNotifications Kind = "notifications"
)

// Conn is the part of *websocket.Conn the hub writes through.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client is one registered connection.
type Client struct {
	ID     uuid.UUID
	UserID int64
	Kind   Kind
	PeerID int64 // chat peer, zero for notification connections

	conn         Conn
	writeTimeout time.Duration

	mu     sync.Mutex
	closed bool
}

// Send writes one text frame. Writes to the same connection are serialized;
// a failed write closes the connection.
func (c *Client) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClientClosed
	}

	if c.writeTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.closed = true
		_ = c.conn.Close()
		return err
	}

	return nil
}

// WriteControl sends a control frame such as a ping.
func (c *Client) WriteControl(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClientClosed
	}

	if c.writeTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}

	return c.conn.WriteMessage(messageType, data)
}

// Close closes the underlying connection once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	return c.conn.Close()
}

// Hub manages active connections keyed by user ID.
type Hub struct {
	mu           sync.RWMutex
	clients      map[int64]map[*Client]struct{}
	writeTimeout time.Duration
}

// New creates an empty hub. Every write is bounded by writeTimeout.
func New(writeTimeout time.Duration) *Hub {
	return &Hub{
		clients:      make(map[int64]map[*Client]struct{}),
		writeTimeout: writeTimeout,
	}
}

// Register adds a connection for the given user.
func (h *Hub) Register(userID int64, kind Kind, peerID int64, conn Conn) *Client {
	c := &Client{
		ID:           uuid.New(),
		UserID:       userID,
		Kind:         kind,
		PeerID:       peerID,
		conn:         conn,
		writeTimeout: h.writeTimeout,
	}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][c] = struct{}{}
	h.mu.Unlock()

	metrics.OnlineConns.WithLabelValues(string(kind)).Inc()

	return c
}

// Unregister removes a connection and returns how many connections the
// user still has.
func (h *Hub) Unregister(c *Client) int {
	h.mu.Lock()
	conns, ok := h.clients[c.UserID]
	_, registered := conns[c]
	if ok && registered {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	remaining := len(h.clients[c.UserID])
	h.mu.Unlock()

	if registered {
		metrics.OnlineConns.WithLabelValues(string(c.Kind)).Dec()
	}

	return remaining
}

// Connections returns how many connections the user has.
func (h *Hub) Connections(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[userID])
}

// OnlineUsers returns the IDs of users with at least one connection.
func (h *Hub) OnlineUsers() []int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]int64, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}

	return ids
}

// selectClients copies matching clients so writes happen outside the lock.
func (h *Hub) selectClients(userID int64, match func(*Client) bool) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []*Client
	for c := range h.clients[userID] {
		if match(c) {
			out = append(out, c)
		}
	}

	return out
}

func send(clients []*Client, payload []byte) int {
	sent := 0
	for _, c := range clients {
		if err := c.Send(payload); err == nil {
			sent++
		}
	}
	return sent
}

// SendToUser writes payload to every connection of the user and returns how
// many accepted it.
func (h *Hub) SendToUser(userID int64, payload []byte) int {
	return send(h.selectClients(userID, func(*Client) bool { return true }), payload)
}

// SendToKind writes payload to the user's connections of one kind.
func (h *Hub) SendToKind(userID int64, kind Kind, payload []byte) int {
	return send(h.selectClients(userID, func(c *Client) bool { return c.Kind == kind }), payload)
}

// SendToChat writes payload to the user's chat connections with peerID.
func (h *Hub) SendToChat(userID, peerID int64, payload []byte) int {
	return send(h.selectClients(userID, func(c *Client) bool {
		return c.Kind == KindChat && c.PeerID == peerID
	}), payload)
}

// SendToObservers writes payload to every chat connection whose peer is
// userID, that is every open conversation with that user.
func (h *Hub) SendToObservers(userID int64, payload []byte) int {
	h.mu.RLock()
	var observers []*Client
	for owner, conns := range h.clients {
		if owner == userID {
			continue
		}
		for c := range conns {
			if c.Kind == KindChat && c.PeerID == userID {
				observers = append(observers, c)
			}
		}
	}
	h.mu.RUnlock()

	return send(observers, payload)
}

// Deliver pushes a chat payload from sender to the recipient's open
// conversation with the sender.
func (h *Hub) Deliver(_ context.Context, senderID, recipientID int64, payload []byte) error {
	if h.SendToChat(recipientID, senderID, payload) == 0 {
		return ErrRecipientUnreachable
	}
	return nil
}
