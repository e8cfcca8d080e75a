package main

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"snake-server/game"
)

// Conn manages a single WebSocket viewer session
type Conn struct {
	ID      string
	ws      *websocket.Conn
	pending game.Heading
	pressed bool       // a key press is waiting for the next frame
	mu      sync.Mutex // protects pending/pressed and ws writes
	closed  bool
}

// NewConn creates a new connection wrapper
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID: uuid.New().String(),
		ws: ws,
	}
}

// Send serializes msg to JSON and writes it to the WebSocket
func (c *Conn) Send(msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(WriteTimeout))
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// TakeInput returns the last key pressed since the previous call.
// Each press is reported once.
func (c *Conn) TakeInput() (game.Heading, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pressed {
		return 0, false
	}
	c.pressed = false
	return c.pending, true
}

// setInput records a key press under lock; later presses overwrite earlier ones
func (c *Conn) setInput(h game.Heading) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = h
	c.pressed = true
}

// Close marks connection closed
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.ws.Close()
}

// ConnManager manages all active connections
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// Add registers a connection
func (m *ConnManager) Add(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
}

// Remove unregisters a connection
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Get returns a connection by ID
func (m *ConnManager) Get(id string) (*Conn, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.conns[id]
	return c, ok
}

// Count returns the number of active connections
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// Snapshot returns a slice copy of all connections
func (m *ConnManager) Snapshot() []*Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	return list
}

// CloseAll closes every connection; used on shutdown
func (m *ConnManager) CloseAll() {
	for _, c := range m.Snapshot() {
		c.Close()
	}
}

// ReadLoop handles incoming messages for a connection until it disconnects.
// Compact protocol: single-char "t" field for message type.
//
//	"i" = input {"t":"i","d":"u"}
//
// onDisconnect is called when the connection closes.
func (c *Conn) ReadLoop(onDisconnect func(conn *Conn)) {
	defer func() {
		onDisconnect(c)
		c.Close()
	}()

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error for %s: %v", c.ID, err)
			}
			return
		}

		h, err := decodeInput(raw)
		if err != nil {
			log.Printf("bad message from %s: %v", c.ID, err)
			continue
		}
		c.setInput(h)
	}
}

// decodeInput parses a client message into a heading press.
func decodeInput(raw []byte) (game.Heading, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	if msg.Type != MsgInput {
		return 0, fmt.Errorf("unexpected message type %q", msg.Type)
	}
	h, err := game.ParseHeading(msg.Dir)
	if err != nil {
		return 0, fmt.Errorf("input: %w", err)
	}
	return h, nil
}
