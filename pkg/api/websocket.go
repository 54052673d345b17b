package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/steward-io/steward/pkg/metrics"
)

// ConnectionManager fans outbound dashboard messages out to every connected
// WebSocket client. The stream is broadcast-only: every client sees every
// message; the `workspace` classification on event frames lets the frontend
// filter. Inbound, only ping is understood.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Write timeout for WebSocket sends
	writeTimeout time.Duration

	metrics *metrics.Metrics
}

// Connection represents a single WebSocket client.
//
// The read loop in HandleConnection owns the connection lifecycle; sends may
// come from any goroutine and are serialized by the websocket library.
type Connection struct {
	ID     string
	Conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager. m may be nil.
func NewConnectionManager(writeTimeout time.Duration, m *metrics.Metrics) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		writeTimeout: writeTimeout,
		metrics:      m,
	}
}

// clientMessage is the inbound frame shape. Only ping is acted on.
type clientMessage struct {
	Action string `json:"action"`
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:     connID,
		Conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	// Read loop: process client messages until the connection closes.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		if msg.Action == "ping" {
			m.sendJSON(c, map[string]string{"type": "pong"})
		}
	}
}

// Broadcast sends one tagged union frame to every connected client. The
// payload's fields sit beside "type"; the union is flat on the wire.
// Implements the Broadcaster interface the oversight services depend on.
func (m *ConnectionManager) Broadcast(messageType string, payload any) {
	frame, err := buildFrame(messageType, payload)
	if err != nil {
		slog.Warn("Failed to build WebSocket frame", "type", messageType, "error", err)
		return
	}
	m.broadcastRaw(frame)
}

// buildFrame flattens the payload and stamps the type tag into it.
func buildFrame(messageType string, payload any) ([]byte, error) {
	obj := map[string]any{}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, err
		}
	}
	obj["type"] = messageType
	return json.Marshal(obj)
}

// broadcastRaw sends raw bytes to every connection.
func (m *ConnectionManager) broadcastRaw(frame []byte) {
	// Snapshot connection pointers under the lock, then release before
	// sending. This avoids holding mu.RLock during potentially slow
	// writes (up to writeTimeout per connection), which would stall
	// connection register/unregister operations.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, conn := range m.connections {
		conns = append(conns, conn)
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, frame); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	m.connections[c.ID] = c
	m.mu.Unlock()
	if m.metrics != nil {
		m.metrics.WSClientConnected()
	}
}

// unregisterConnection removes a connection.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()
	if m.metrics != nil {
		m.metrics.WSClientDisconnected()
	}

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
