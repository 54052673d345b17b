package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

func TestAgentLifecycleOverHTTP(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	t.Run("list includes the live agent", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/agents", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var views []AgentView
		decodeJSON(t, rec, &views)
		require.Len(t, views, 1)
		assert.Equal(t, agentID, views[0].AgentID)
		assert.Equal(t, models.AgentRunning, views[0].Status)
		assert.True(t, views[0].Live)
		assert.Equal(t, 50, views[0].TrustScore)
	})

	t.Run("detail carries brief and counters", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/agents/"+agentID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var detail AgentDetail
		decodeJSON(t, rec, &detail)
		assert.Equal(t, "implementer", detail.Brief.Role)
		assert.Equal(t, "ws-core", detail.Brief.Workstream)
		assert.Equal(t, 0, detail.CheckpointCount)
		assert.Equal(t, 0, detail.PendingDecisions)
	})

	t.Run("pause stores a checkpoint and flips status", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/agents/"+agentID+"/pause", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var cp CheckpointView
		decodeJSON(t, rec, &cp)
		assert.Equal(t, agentID, cp.AgentID)
		assert.Equal(t, models.SerializedByPause, cp.SerializedBy)

		status, live := env.gw.AgentStatus(agentID)
		require.True(t, live)
		assert.Equal(t, models.AgentPaused, status)
	})

	t.Run("resume restores the handle", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/agents/"+agentID+"/resume", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SpawnResponse
		decodeJSON(t, rec, &resp)
		require.NotNil(t, resp.Agent)
		assert.Equal(t, agentID, resp.Agent.AgentID)
		assert.Equal(t, models.AgentRunning, resp.Agent.Status)
	})

	t.Run("kill reports the grace checkpoint", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/agents/"+agentID+"/kill", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp KillResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, agentID, resp.AgentID)
		assert.True(t, resp.CleanShutdown)
		assert.True(t, resp.CheckpointStored)
		assert.Empty(t, env.gw.ListHandles())
	})
}

func TestListAgentsStatusFilter(t *testing.T) {
	env := newTestServer(t)
	running := env.spawnTestAgent(t, "ws-core")
	paused := env.spawnTestAgent(t, "ws-docs")

	rec := env.doJSON(t, http.MethodPost, "/api/agents/"+paused+"/pause", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/agents?status=running", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var views []AgentView
	decodeJSON(t, rec, &views)
	require.Len(t, views, 1)
	assert.Equal(t, running, views[0].AgentID)

	rec = env.doJSON(t, http.MethodGet, "/api/agents?status=running,paused", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	views = nil
	decodeJSON(t, rec, &views)
	assert.Len(t, views, 2)

	rec = env.doJSON(t, http.MethodGet, "/api/agents?status=bogus", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid status: bogus")
}

func TestGetAgentNotFound(t *testing.T) {
	env := newTestServer(t)

	rec := env.doJSON(t, http.MethodGet, "/api/agents/ghost", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchBriefOverHTTP(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	rec := env.doJSON(t, http.MethodPatch, "/api/agents/"+agentID+"/brief", map[string]any{
		"role": "reviewer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PatchBriefResponse
	decodeJSON(t, rec, &resp)
	require.NotNil(t, resp.Brief)
	assert.Equal(t, "reviewer", resp.Brief.Role)
	assert.Equal(t, "ws-core", resp.Brief.Workstream)
	assert.True(t, resp.Injected)

	// The patch reached the sandbox plugin.
	patches := env.plugin.BriefPatches(agentID)
	require.Len(t, patches, 1)
	assert.Equal(t, "reviewer", patches[0]["role"])

	t.Run("empty patch rejected", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPatch, "/api/agents/"+agentID+"/brief", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAgentHandlersValidation(t *testing.T) {
	// Parameter validation runs before any service touch, so a bare server
	// is enough.
	s := &Server{}

	handlers := map[string]func(*echo.Context) error{
		"get":    s.getAgentHandler,
		"kill":   s.killAgentHandler,
		"pause":  s.pauseAgentHandler,
		"resume": s.resumeAgentHandler,
	}

	for name, handler := range handlers {
		t.Run(name+" without id returns 400", func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/agents//"+name, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, "agent id")
				}
			}
		})
	}
}
