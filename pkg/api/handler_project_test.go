package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

func TestProjectSeedAndGet(t *testing.T) {
	env := newTestServer(t)

	t.Run("get before seed is 404", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/project", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("seed requires a name", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/project/seed", map[string]any{
			"description": "nameless",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "name is required")
	})

	rec := env.doJSON(t, http.MethodPost, "/api/project/seed", map[string]any{
		"name":        "Checkout Revamp",
		"description": "Replace the legacy checkout flow",
		"config": map[string]any{
			"maxAgents":    3,
			"allowedTools": []string{"Read", "Write", "Bash"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var proj projectResponse
	decodeJSON(t, rec, &proj)
	assert.Equal(t, "Checkout Revamp", proj.Name)
	assert.Equal(t, "Replace the legacy checkout flow", proj.Description)
	assert.Equal(t, float64(3), proj.Config["maxAgents"])
	assert.False(t, proj.CreatedAt.IsZero())

	t.Run("second create is a conflict", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/project/seed", map[string]any{
			"name": "Other Project",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("merge mode deep-merges config", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/project/seed?mode=merge", map[string]any{
			"config": map[string]any{"maxAgents": 5, "tickBudget": 200},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var merged projectResponse
		decodeJSON(t, rec, &merged)
		assert.Equal(t, "Checkout Revamp", merged.Name, "merge keeps the stored name")
		assert.Equal(t, float64(5), merged.Config["maxAgents"])
		assert.Equal(t, float64(200), merged.Config["tickBudget"])
		assert.Contains(t, merged.Config, "allowedTools")
	})

	t.Run("unknown seed mode rejected", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/project/seed?mode=clobber", map[string]any{
			"name": "Checkout Revamp",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get returns the stored row", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/project", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got projectResponse
		decodeJSON(t, rec, &got)
		assert.Equal(t, "Checkout Revamp", got.Name)
	})
}

func TestProjectPatch(t *testing.T) {
	env := newTestServer(t)

	rec := env.doJSON(t, http.MethodPost, "/api/project/seed", map[string]any{
		"name":   "Checkout Revamp",
		"config": map[string]any{"maxAgents": 3},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodPatch, "/api/project", map[string]any{
		"maxAgents":  10,
		"tickBudget": 500,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var patched projectResponse
	decodeJSON(t, rec, &patched)
	assert.Equal(t, float64(10), patched.Config["maxAgents"])
	assert.Equal(t, float64(500), patched.Config["tickBudget"])

	t.Run("empty patch rejected", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPatch, "/api/project", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDraftBrief(t *testing.T) {
	env := newTestServer(t)
	ctx := context.Background()

	rec := env.doJSON(t, http.MethodPost, "/api/project/seed", map[string]any{
		"name":        "Checkout Revamp",
		"description": "Replace the legacy checkout flow",
		"config": map[string]any{
			"allowedTools":       []string{"Read", "Write"},
			"escalationProtocol": "pause_and_wait",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, env.store.EnsureWorkstream(ctx, "ws-core", "Core", ""))
	require.NoError(t, env.store.EnsureWorkstream(ctx, "ws-api", "API", ""))
	require.NoError(t, env.store.EnsureWorkstream(ctx, "ws-docs", "Docs", ""))

	rec = env.doJSON(t, http.MethodPost, "/api/project/draft-brief", map[string]any{
		"role":       "implementer",
		"workstream": "ws-core",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Brief models.AgentBrief `json:"brief"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "implementer", resp.Brief.Role)
	assert.Equal(t, "ws-core", resp.Brief.Workstream)
	assert.Equal(t, "Checkout Revamp: Replace the legacy checkout flow", resp.Brief.ProjectBrief)
	assert.Equal(t, []string{"ws-api", "ws-docs"}, resp.Brief.ReadableWorkstreams)
	assert.Equal(t, []string{"Read", "Write"}, resp.Brief.AllowedTools)
	assert.Equal(t, "pause_and_wait", resp.Brief.EscalationProtocol)

	t.Run("role required", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/project/draft-brief", map[string]any{
			"workstream": "ws-core",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
