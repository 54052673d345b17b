package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

// TestWebSocketConnectionLifecycle covers the connection greeting and the
// keepalive exchange.
func TestWebSocketConnectionLifecycle(t *testing.T) {
	app := NewTestApp(t)

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer ws.Close()

	greeting, err := ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)
	connID, _ := greeting.Parsed["connection_id"].(string)
	assert.NotEmpty(t, connID)

	require.NoError(t, ws.Ping(context.Background()))
	_, err = ws.WaitForEventType("pong", 5*time.Second)
	require.NoError(t, err)
}

// TestWebSocketStateSyncOnSpawn verifies roster changes push a full
// state_sync frame to connected dashboards.
func TestWebSocketStateSyncOnSpawn(t *testing.T) {
	app := NewTestApp(t)
	app.SeedProject(t, "atlas", nil)

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)

	app.SpawnAgent(t, "agent-sync", "implementer", "backend")

	frame, err := ws.WaitForEvent(func(e WSEvent) bool {
		if e.Type != models.WSTypeStateSync {
			return false
		}
		agents, _ := e.Parsed["activeAgents"].([]interface{})
		_, found := findAgent(agents, "agent-sync")
		return found
	}, 5*time.Second)
	require.NoError(t, err, "no state_sync carrying the spawned agent")

	assert.Equal(t, string(models.ModeAdaptive), frame.Parsed["controlMode"])
	assert.Contains(t, frame.Parsed, "tick")

	scores, _ := frame.Parsed["trustScores"].(map[string]interface{})
	require.NotNil(t, scores)
	assert.Contains(t, scores, "agent-sync")

	project, _ := frame.Parsed["projectConfig"].(map[string]interface{})
	require.NotNil(t, project, "seeded project should ride along in state_sync")
	assert.Equal(t, "atlas", project["name"])
}

// TestWebSocketEventStream verifies ingested agent events are forwarded to
// dashboards with workspace routing attached.
func TestWebSocketEventStream(t *testing.T) {
	app := NewTestApp(t)

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)

	app.SpawnAgent(t, "agent-stream", "implementer", "backend")

	receipt := app.IngestArtifact(t, "agent-stream", "run-1", 1, "art-ws", "handlers", "code", "backend")
	wantID, _ := receipt["sourceEventId"].(string)
	require.NotEmpty(t, wantID)

	frame, err := ws.WaitForEvent(func(e WSEvent) bool {
		if e.Type != models.WSTypeEvent {
			return false
		}
		env, _ := e.Parsed["event"].(map[string]interface{})
		return env != nil && env["sourceEventId"] == wantID
	}, 5*time.Second)
	require.NoError(t, err, "artifact event never reached the stream")

	// Artifact events route to the artifact's workstream.
	assert.Equal(t, "backend", frame.Parsed["workspace"])
	env := frame.Parsed["event"].(map[string]interface{})
	assert.Equal(t, "agent-stream", env["agentId"])
	inner := env["event"].(map[string]interface{})
	assert.Equal(t, models.EventTypeArtifact, inner["type"])

	// The spawn greeting from the sandbox session was forwarded too.
	_, err = ws.WaitForEvent(func(e WSEvent) bool {
		if e.Type != models.WSTypeEvent {
			return false
		}
		env, _ := e.Parsed["event"].(map[string]interface{})
		if env == nil || env["agentId"] != "agent-stream" {
			return false
		}
		inner, _ := env["event"].(map[string]interface{})
		return inner != nil && inner["type"] == models.EventTypeStatus
	}, 5*time.Second)
	assert.NoError(t, err, "session start status never reached the stream")
}

// TestWebSocketReplayedEventNotForwarded verifies idempotent replays are
// acknowledged without hitting the stream a second time.
func TestWebSocketReplayedEventNotForwarded(t *testing.T) {
	app := NewTestApp(t)

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)

	app.SpawnAgent(t, "agent-replay", "implementer", "backend")

	first := app.IngestStatus(t, "agent-replay", "run-1", 1, "working")
	require.Equal(t, true, first["stored"])
	wantID, _ := first["sourceEventId"].(string)

	_, err = ws.WaitForEvent(func(e WSEvent) bool {
		if e.Type != models.WSTypeEvent {
			return false
		}
		env, _ := e.Parsed["event"].(map[string]interface{})
		return env != nil && env["sourceEventId"] == wantID
	}, 5*time.Second)
	require.NoError(t, err)

	// Same source event again: acknowledged, not stored, not re-forwarded.
	replay := app.IngestStatus(t, "agent-replay", "run-1", 1, "working")
	require.Equal(t, false, replay["stored"])

	time.Sleep(250 * time.Millisecond)
	count := 0
	for _, e := range ws.Events() {
		if e.Type != models.WSTypeEvent {
			continue
		}
		env, _ := e.Parsed["event"].(map[string]interface{})
		if env != nil && env["sourceEventId"] == wantID {
			count++
		}
	}
	assert.Equal(t, 1, count, "replayed event must not be forwarded twice")
}
