package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

// wsAdapter serves /events and pushes one canned event per connection.
type wsAdapter struct {
	accepts atomic.Int64
}

func (a *wsAdapter) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		n := a.accepts.Add(1)

		ev := models.AdapterEvent{
			SourceEventID:    fmt.Sprintf("ev-%d", n),
			SourceSequence:   n,
			SourceOccurredAt: time.Now().UTC(),
			RunID:            "run-1",
			Event: models.AgentEvent{
				Type:   models.EventTypeStatus,
				Status: &models.StatusEvent{Message: "working"},
			},
		}
		data, _ := json.Marshal(ev)
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		_ = conn.Write(ctx, websocket.MessageText, data)

		// Drop the connection so the client has to reconnect.
		conn.Close(websocket.StatusNormalClosure, "")
	})
}

func TestEventClient_StampsAgentAndReconnects(t *testing.T) {
	adapter := &wsAdapter{}
	server := httptest.NewServer(adapter.handler())
	defer server.Close()
	url := "ws" + server.URL[len("http"):]

	var mu sync.Mutex
	var got []*models.EventEnvelope
	client := newEventClient("a1", url, func(env *models.EventEnvelope) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, env)
	})

	client.Start(context.Background())
	defer client.Stop()

	// The server closes after every event, so receiving two proves the
	// client reconnected.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) >= 2
	}, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	first := got[0]
	assert.Equal(t, "a1", first.AgentID)
	assert.Equal(t, "run-1", first.RunID)
	assert.Equal(t, models.EventTypeStatus, first.Event.Type)
	assert.False(t, first.IngestedAt.IsZero())
	assert.GreaterOrEqual(t, adapter.accepts.Load(), int64(2))
}

func TestEventClient_StopWithoutStart(t *testing.T) {
	client := newEventClient("a1", "ws://127.0.0.1:1/events", nil)
	client.Stop() // must not block
}

func TestEventClient_StopUnblocksPendingDial(t *testing.T) {
	// Nothing listens on this port; the client sits in its retry loop.
	client := newEventClient("a1", "ws://127.0.0.1:1/events", func(*models.EventEnvelope) {})
	client.Start(context.Background())

	done := make(chan struct{})
	go func() {
		client.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return while dial was pending")
	}
}
