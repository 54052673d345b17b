package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

func TestControlModeRoundTrip(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	t.Run("get returns the startup mode", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/control-mode", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ControlModeResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, models.ModeOrchestrator, resp.Mode)
	})

	t.Run("put swaps the mode and notifies sandboxes", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPut, "/api/control-mode", map[string]any{
			"mode": string(models.ModeAdaptive),
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp ControlModeResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, models.ModeAdaptive, resp.Mode)
		assert.Equal(t, models.ModeOrchestrator, resp.Previous)
		assert.True(t, resp.Changed)

		assert.Equal(t, models.ModeAdaptive, env.modes.Current())

		patches := env.plugin.BriefPatches(agentID)
		require.Len(t, patches, 1)
		assert.Equal(t, string(models.ModeAdaptive), patches[0]["controlMode"])
	})

	t.Run("idempotent put reports unchanged", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPut, "/api/control-mode", map[string]any{
			"mode": string(models.ModeAdaptive),
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ControlModeResponse
		decodeJSON(t, rec, &resp)
		assert.False(t, resp.Changed)

		// No extra sandbox notification for a no-op.
		assert.Len(t, env.plugin.BriefPatches(agentID), 1)
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPut, "/api/control-mode", map[string]any{
			"mode": "anarchy",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown control mode")
	})
}
