package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// WSEvent is one frame received from the dashboard WebSocket, kept in
// arrival order.
type WSEvent struct {
	Type     string
	Raw      json.RawMessage
	Parsed   map[string]interface{}
	Received time.Time
}

// WSClient collects every frame the server pushes so tests can drive the
// system over HTTP and then assert on the stream.
type WSClient struct {
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	events []WSEvent

	doneCh chan struct{}
}

// WSConnect dials the dashboard WebSocket and starts collecting frames in
// the background. The connection.established greeting arrives like any
// other frame.
func WSConnect(ctx context.Context, wsURL string) (*WSClient, error) {
	dialCtx, dialCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dialCancel()

	conn, _, err := websocket.Dial(dialCtx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial: %w", err)
	}

	clientCtx, cancel := context.WithCancel(ctx)
	c := &WSClient{
		conn:   conn,
		ctx:    clientCtx,
		cancel: cancel,
		doneCh: make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

func (c *WSClient) readLoop() {
	defer close(c.doneCh)
	for {
		_, data, err := c.conn.Read(c.ctx)
		if err != nil {
			return
		}
		var parsed map[string]interface{}
		if err := json.Unmarshal(data, &parsed); err != nil {
			continue
		}
		eventType, _ := parsed["type"].(string)

		c.mu.Lock()
		c.events = append(c.events, WSEvent{
			Type:     eventType,
			Raw:      json.RawMessage(append([]byte(nil), data...)),
			Parsed:   parsed,
			Received: time.Now(),
		})
		c.mu.Unlock()
	}
}

// Ping sends the keepalive action; the server answers with a pong frame.
func (c *WSClient) Ping(ctx context.Context) error {
	return c.conn.Write(ctx, websocket.MessageText, []byte(`{"action":"ping"}`))
}

// Events returns a snapshot of everything received so far.
func (c *WSClient) Events() []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]WSEvent, len(c.events))
	copy(out, c.events)
	return out
}

// WaitForEvent polls until a received frame satisfies the predicate.
func (c *WSClient) WaitForEvent(predicate func(WSEvent) bool, timeout time.Duration) (WSEvent, error) {
	deadline := time.After(timeout)
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-deadline:
			return WSEvent{}, fmt.Errorf("timed out waiting for WebSocket event after %s", timeout)
		case <-ticker.C:
			for _, e := range c.Events() {
				if predicate(e) {
					return e, nil
				}
			}
		}
	}
}

// WaitForEventType waits for the first frame of the given type.
func (c *WSClient) WaitForEventType(eventType string, timeout time.Duration) (WSEvent, error) {
	return c.WaitForEvent(func(e WSEvent) bool { return e.Type == eventType }, timeout)
}

// Close tears the connection down and waits for the read loop to exit.
func (c *WSClient) Close() {
	c.cancel()
	_ = c.conn.CloseNow()
	<-c.doneCh
}
