package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

func TestCheckpointCaptureOverHTTP(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	t.Run("undirected capture", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/agents/"+agentID+"/checkpoint", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var view CheckpointView
		decodeJSON(t, rec, &view)
		assert.Equal(t, agentID, view.AgentID)
		assert.Equal(t, models.SerializedByCrashRecovery, view.SerializedBy)
		assert.Empty(t, view.DecisionID)
		assert.NotEmpty(t, view.CheckpointID)
	})

	t.Run("decision-directed capture", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/agents/"+agentID+"/checkpoint", map[string]any{
			"decisionId": "dec-9",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var view CheckpointView
		decodeJSON(t, rec, &view)
		assert.Equal(t, models.SerializedByDecision, view.SerializedBy)
		assert.Equal(t, "dec-9", view.DecisionID)
	})

	t.Run("list newest first", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/agents/"+agentID+"/checkpoints", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var views []CheckpointView
		decodeJSON(t, rec, &views)
		require.Len(t, views, 2)
		assert.Equal(t, models.SerializedByDecision, views[0].SerializedBy)
		assert.Equal(t, models.SerializedByCrashRecovery, views[1].SerializedBy)
	})

	t.Run("latest carries the full state", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/agents/"+agentID+"/checkpoints/latest", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			CheckpointView
			State models.SerializedAgentState `json:"state"`
		}
		decodeJSON(t, rec, &resp)
		assert.Equal(t, models.SerializedByDecision, resp.SerializedBy)
		assert.Equal(t, agentID, resp.State.AgentID)
	})

	t.Run("capture for unknown agent", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/agents/agent-ghost/checkpoint", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("latest without any checkpoint", func(t *testing.T) {
		fresh := env.spawnTestAgent(t, "ws-docs")
		rec := env.doJSON(t, http.MethodGet, "/api/agents/"+fresh+"/checkpoints/latest", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPauseLeavesResumableCheckpoint(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	rec := env.doJSON(t, http.MethodPost, "/api/agents/"+agentID+"/pause", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/agents/"+agentID+"/checkpoints/latest", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CheckpointView
		State models.SerializedAgentState `json:"state"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, models.SerializedByPause, resp.SerializedBy)
	assert.Equal(t, agentID, resp.State.AgentID)
}
