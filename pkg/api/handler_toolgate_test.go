package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

func TestRequestApprovalAdaptiveAutoApprove(t *testing.T) {
	env := newTestServer(t)
	env.modes.Set(models.ModeAdaptive)
	agentID := env.spawnTestAgent(t, "ws-core")

	// Write is medium blast: the adaptive threshold equals the initial
	// trust score, so the call clears without a human.
	rec := env.doJSON(t, http.MethodPost, "/api/tool-gate/request-approval", map[string]any{
		"agentId":   agentID,
		"toolName":  "Write",
		"toolInput": map[string]any{"file_path": "/tmp/out.go"},
		"toolUseId": "tu-1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ApprovalResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, models.ResolutionApprove, resp.Action)
	assert.True(t, resp.AutoResolved)
	assert.False(t, resp.TimedOut)
	assert.NotEmpty(t, resp.DecisionID)

	stats := env.gate.GetStats()
	assert.Equal(t, 1, stats.Requested)
	assert.Equal(t, 1, stats.AutoApproved)
}

func TestRequestApprovalOrchestratorWaitsForHuman(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	type outcome struct {
		rec *httptest.ResponseRecorder
	}
	done := make(chan outcome, 1)
	go func() {
		rec := env.doJSON(t, http.MethodPost, "/api/tool-gate/request-approval", map[string]any{
			"agentId":  agentID,
			"toolName": "Write",
		})
		done <- outcome{rec: rec}
	}()

	// Wait for the decision to land in the queue, then resolve it the way
	// the dashboard would.
	var decisionID string
	require.Eventually(t, func() bool {
		pending := env.queue.ListPending(agentID)
		if len(pending) == 0 {
			return false
		}
		decisionID = pending[0].Event.DecisionID
		return true
	}, 2*time.Second, 5*time.Millisecond)

	rec := env.doJSON(t, http.MethodPost, "/api/decisions/"+decisionID+"/resolve", map[string]any{
		"resolution": map[string]any{
			"type":   models.DecisionKindToolApproval,
			"action": models.ResolutionApprove,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := <-done
	require.Equal(t, http.StatusOK, got.rec.Code, got.rec.Body.String())

	var resp ApprovalResponse
	decodeJSON(t, got.rec, &resp)
	assert.Equal(t, models.ResolutionApprove, resp.Action)
	assert.False(t, resp.AutoResolved)
	assert.Equal(t, decisionID, resp.DecisionID)

	// Approving a tool call is a small trust bump.
	assert.Equal(t, 51, env.engine.GetScore(agentID))

	stats := env.gate.GetStats()
	assert.Equal(t, 1, stats.Requested)
	assert.Equal(t, 1, stats.Approved)
}

func TestRequestApprovalTimesOut(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	// Orchestrator mode never auto-approves; nobody resolves, so the
	// shortened gate timeout rejects the call.
	rec := env.doJSON(t, http.MethodPost, "/api/tool-gate/request-approval", map[string]any{
		"agentId":  agentID,
		"toolName": "Write",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ApprovalResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, models.ResolutionReject, resp.Action)
	assert.True(t, resp.TimedOut)
	assert.Contains(t, resp.Rationale, "Timed out")

	stats := env.gate.GetStats()
	assert.Equal(t, 1, stats.TimedOut)
}

func TestRequestApprovalApproveAlways(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		done <- env.doJSON(t, http.MethodPost, "/api/tool-gate/request-approval", map[string]any{
			"agentId":  agentID,
			"toolName": "Write",
		})
	}()

	var decisionID string
	require.Eventually(t, func() bool {
		pending := env.queue.ListPending(agentID)
		if len(pending) == 0 {
			return false
		}
		decisionID = pending[0].Event.DecisionID
		return true
	}, 2*time.Second, 5*time.Millisecond)

	rec := env.doJSON(t, http.MethodPost, "/api/decisions/"+decisionID+"/resolve", map[string]any{
		"resolution": map[string]any{
			"type":   models.DecisionKindToolApproval,
			"action": models.ResolutionApproveAlways,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	<-done

	// The standing grant short-circuits the next request for the same tool,
	// even in orchestrator mode.
	rec = env.doJSON(t, http.MethodPost, "/api/tool-gate/request-approval", map[string]any{
		"agentId":  agentID,
		"toolName": "Write",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ApprovalResponse
	decodeJSON(t, rec, &resp)
	assert.True(t, resp.AutoResolved)
	assert.Equal(t, models.ResolutionApprove, resp.Action)
	assert.Contains(t, resp.Rationale, "standing")
}

func TestRequestApprovalValidation(t *testing.T) {
	env := newTestServer(t)

	t.Run("missing tool name", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/tool-gate/request-approval", map[string]any{
			"agentId": "a-1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown agent", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/tool-gate/request-approval", map[string]any{
			"agentId":  "ghost",
			"toolName": "Write",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestToolGateStatsEndpoint(t *testing.T) {
	env := newTestServer(t)

	rec := env.doJSON(t, http.MethodGet, "/api/tool-gate/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]int
	decodeJSON(t, rec, &stats)
	assert.Equal(t, 0, stats["requested"])
	assert.Contains(t, stats, "autoApproved")
	assert.Contains(t, stats, "timedOut")
}
