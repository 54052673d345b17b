package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/brake"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/models"
)

func TestBrakeEngageAndRelease(t *testing.T) {
	env := newTestServer(t)
	first := env.spawnTestAgent(t, "ws-core")
	second := env.spawnTestAgent(t, "ws-docs")
	env.ingestDecision(t, first, "dec-brake")

	t.Run("engage all pauses every agent", func(t *testing.T) {
		// Behavior comes from config defaults; a bare scope is enough.
		rec := env.doJSON(t, http.MethodPost, "/api/brake", map[string]any{
			"scope": brake.ScopeAll,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var engaged brake.Brake
		decodeJSON(t, rec, &engaged)
		assert.Equal(t, brake.BehaviorPause, engaged.Behavior)
		assert.Len(t, engaged.AffectedAgentIDs, 2)
		assert.Equal(t, "engaged by api-client", engaged.Reason)

		for _, agentID := range []string{first, second} {
			status, ok := env.gw.AgentStatus(agentID)
			require.True(t, ok)
			assert.Equal(t, models.AgentPaused, status)
		}

		// Pending decisions for braked agents park as suspended.
		item, ok := env.queue.Get("dec-brake")
		require.True(t, ok)
		assert.Equal(t, decision.StatusSuspended, item.Status)
	})

	t.Run("bridge brake poll reports engaged", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/bridge/brake/"+first, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp BridgeBrakeResponse
		decodeJSON(t, rec, &resp)
		assert.True(t, resp.Engaged)
		require.NotNil(t, resp.Brake)
		assert.Equal(t, brake.ScopeAll, resp.Brake.Scope)
	})

	t.Run("release all resumes and revives decisions", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/brake/release", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp BrakeReleaseResponse
		decodeJSON(t, rec, &resp)
		require.Len(t, resp.Released, 1)
		assert.Equal(t, 2, resp.Resumed)

		for _, agentID := range []string{first, second} {
			status, ok := env.gw.AgentStatus(agentID)
			require.True(t, ok)
			assert.Equal(t, models.AgentRunning, status)
		}

		item, ok := env.queue.Get("dec-brake")
		require.True(t, ok)
		assert.Equal(t, decision.StatusPending, item.Status)

		rec = env.doJSON(t, http.MethodGet, "/api/bridge/brake/"+first, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var poll BridgeBrakeResponse
		decodeJSON(t, rec, &poll)
		assert.False(t, poll.Engaged)
	})
}

func TestBrakeAgentScopeKill(t *testing.T) {
	env := newTestServer(t)
	target := env.spawnTestAgent(t, "ws-core")
	bystander := env.spawnTestAgent(t, "ws-docs")

	rec := env.doJSON(t, http.MethodPost, "/api/brake", map[string]any{
		"scope":    brake.ScopeAgent,
		"agentId":  target,
		"behavior": brake.BehaviorKill,
		"reason":   "runaway loop",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var engaged brake.Brake
	decodeJSON(t, rec, &engaged)
	assert.Equal(t, []string{target}, engaged.AffectedAgentIDs)

	_, ok := env.gw.AgentStatus(target)
	assert.False(t, ok, "killed agent should leave the roster")
	status, ok := env.gw.AgentStatus(bystander)
	require.True(t, ok)
	assert.Equal(t, models.AgentRunning, status)
}

func TestBrakeValidation(t *testing.T) {
	env := newTestServer(t)

	t.Run("unknown scope", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/brake", map[string]any{"scope": "planet"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("agent scope requires agentId", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/brake", map[string]any{"scope": brake.ScopeAgent})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("release of unknown brake id", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/brake/release", map[string]any{"brakeId": "nope"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
