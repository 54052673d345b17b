package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"

	"github.com/steward-io/steward/pkg/models"
)

const (
	eventReconnectMin = 250 * time.Millisecond
	eventReconnectMax = 10 * time.Second
)

// eventClient streams adapter events from a sandbox's /events WebSocket into
// the ingest pipeline. One instance runs per connected agent; it reconnects
// with backoff until its context is cancelled.
type eventClient struct {
	agentID string
	url     string
	handler EventHandler
	cancel  context.CancelFunc
	done    chan struct{}
}

func newEventClient(agentID, url string, handler EventHandler) *eventClient {
	return &eventClient{
		agentID: agentID,
		url:     url,
		handler: handler,
		done:    make(chan struct{}),
	}
}

// Start launches the read loop. Returns immediately.
func (c *eventClient) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	go c.run(ctx)
}

// Stop cancels the loop and waits for it to exit. No-op if never started.
func (c *eventClient) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
}

func (c *eventClient) run(ctx context.Context) {
	defer close(c.done)
	backoff := eventReconnectMin
	for {
		if ctx.Err() != nil {
			return
		}
		err := c.readOnce(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			slog.Warn("Adapter event stream dropped", "agent_id", c.agentID, "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > eventReconnectMax {
			backoff = eventReconnectMax
		}
	}
}

// readOnce dials the adapter and pumps events until the connection drops.
func (c *eventClient) readOnce(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	conn, _, err := websocket.Dial(dialCtx, c.url, &websocket.DialOptions{})
	cancel()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()
	slog.Info("Adapter event stream connected", "agent_id", c.agentID, "url", c.url)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var ev models.AdapterEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			slog.Warn("Invalid adapter event payload", "agent_id", c.agentID, "error", err)
			continue
		}

		// The agent id is implied by the connection, never trusted from the
		// payload.
		c.handler(&models.EventEnvelope{
			SourceEventID:    ev.SourceEventID,
			SourceSequence:   ev.SourceSequence,
			SourceOccurredAt: ev.SourceOccurredAt,
			RunID:            ev.RunID,
			AgentID:          c.agentID,
			IngestedAt:       time.Now().UTC(),
			Event:            ev.Event,
		})
	}
}
