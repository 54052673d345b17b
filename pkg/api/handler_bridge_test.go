package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

func TestBridgeRegister(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	// Simulate a sandbox restart: the handle is paused until the adapter
	// calls home.
	rec := env.doJSON(t, http.MethodPost, "/api/agents/"+agentID+"/pause", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/bridge/register", map[string]any{
		"agentId":   agentID,
		"sessionId": "sess-42",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp BridgeRegisterResponse
	decodeJSON(t, rec, &resp)
	assert.True(t, resp.Registered)
	assert.Equal(t, agentID, resp.AgentID)
	assert.Equal(t, int64(0), resp.Tick)

	status, ok := env.gw.AgentStatus(agentID)
	require.True(t, ok)
	assert.Equal(t, models.AgentRunning, status)

	row, err := env.store.GetAgent(context.Background(), agentID)
	require.NoError(t, err)
	require.NotNil(t, row.SessionID)
	assert.Equal(t, "sess-42", *row.SessionID)

	t.Run("agent id required", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/bridge/register", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "agentId is required")
	})

	t.Run("unknown handle still acknowledged", func(t *testing.T) {
		// Registration must not fail when the control plane restarted and
		// lost the handle; the adapter retries spawn-side reconciliation.
		rec := env.doJSON(t, http.MethodPost, "/api/bridge/register", map[string]any{
			"agentId": "agent-ghost",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp BridgeRegisterResponse
		decodeJSON(t, rec, &resp)
		assert.True(t, resp.Registered)
	})
}

func TestBridgeIngestIsIdempotent(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	body := map[string]any{
		"sourceEventId":  "ev-once",
		"sourceSequence": 1,
		"runId":          "run-1",
		"event": map[string]any{
			"type":   "status",
			"status": map[string]any{"message": "thinking", "state": "working"},
		},
	}

	rec := env.doJSON(t, http.MethodPost, "/api/bridge/events?agentId="+agentID, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var first BridgeIngestResponse
	decodeJSON(t, rec, &first)
	assert.True(t, first.Stored)
	assert.Equal(t, "ev-once", first.SourceEventID)
	assert.False(t, first.IngestedAt.IsZero())

	// Replay of the same sourceEventId is acknowledged but not re-stored.
	rec = env.doJSON(t, http.MethodPost, "/api/bridge/events?agentId="+agentID, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var second BridgeIngestResponse
	decodeJSON(t, rec, &second)
	assert.False(t, second.Stored)

	rec = env.doJSON(t, http.MethodGet, "/api/events?agentId="+agentID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []EventView
	decodeJSON(t, rec, &events)
	assert.Len(t, events, 1)
}

func TestBridgeContextPoll(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")
	env.ingestArtifact(t, agentID, "art-ctx", "ws-core", "ev-ctx-1")

	rec := env.doJSON(t, http.MethodGet, "/api/bridge/context/"+agentID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var inj models.ContextInjection
	decodeJSON(t, rec, &inj)
	assert.Equal(t, "json", inj.Format)
	assert.Equal(t, "bridge_poll", inj.Reason)
	assert.Equal(t, models.PriorityRecommended, inj.Priority)
	assert.GreaterOrEqual(t, inj.SnapshotVersion, int64(1))
	assert.Contains(t, inj.Content, "art-ctx", "snapshot content carries the artifact index")
	assert.Contains(t, inj.Content, "ws-core")
}
