package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/trust"
)

func TestGetTrustProfile(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	rec := env.doJSON(t, http.MethodGet, "/api/trust/"+agentID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.TrustProfile
	decodeJSON(t, rec, &profile)
	assert.Equal(t, agentID, profile.AgentID)
	assert.Equal(t, 50, profile.Score)
	assert.Empty(t, profile.Domains)

	t.Run("unseen agent reports the initial score", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/trust/never-spawned", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var profile models.TrustProfile
		decodeJSON(t, rec, &profile)
		assert.Equal(t, 50, profile.Score)
	})
}

func TestTrustProfilesListing(t *testing.T) {
	env := newTestServer(t)

	rec := env.doJSON(t, http.MethodGet, "/api/trust/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TrustProfilesResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, []string{"conservative", "balanced", "permissive"}, resp.Profiles)
	assert.Equal(t, 50, resp.Config.InitialScore)
	assert.False(t, resp.Config.RiskWeightingEnabled)
}

func TestApplyTrustProfile(t *testing.T) {
	env := newTestServer(t)

	rec := env.doJSON(t, http.MethodPost, "/api/trust/profile/conservative", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TrustProfilesResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, 40, resp.Config.InitialScore)
	assert.Equal(t, 2, resp.Config.DecayRatePerTick)
	assert.True(t, resp.Config.RiskWeightingEnabled)

	// The engine now hands out the profile's initial score to new agents.
	assert.Equal(t, 40, env.engine.GetScore("future-agent"))

	t.Run("unknown profile is a 404 naming the choices", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/trust/profile/reckless", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "conservative, balanced, permissive")
	})
}

func TestTrustProfilesRouteNotShadowed(t *testing.T) {
	// /api/trust/profiles and /api/trust/:agentId share a prefix; the static
	// segment must win.
	env := newTestServer(t)

	rec := env.doJSON(t, http.MethodGet, "/api/trust/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TrustProfilesResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, trust.ProfileNames(), resp.Profiles)
}
