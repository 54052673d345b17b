package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoherenceIssueLifecycleOverHTTP(t *testing.T) {
	env := newTestServer(t)
	builder := env.spawnTestAgent(t, "ws-core")
	reporter := env.spawnTestAgent(t, "ws-review")

	// The builder publishes an artifact; the reporter flags it. The trust
	// debit lands on the artifact's creator, not on the reporter.
	env.ingestArtifact(t, builder, "art-schema", "ws-core", "ev-art-schema")

	rec := env.doJSON(t, http.MethodPost, "/api/bridge/events?agentId="+reporter, map[string]any{
		"sourceEventId":  "ev-iss-1",
		"sourceSequence": 1,
		"runId":          "run-1",
		"event": map[string]any{
			"type": "coherence",
			"coherence": map[string]any{
				"issueId":             "iss-1",
				"kind":                "contradiction",
				"summary":             "schema drift between checkout and billing",
				"severity":            "high",
				"affectedWorkstreams": []string{"ws-core"},
				"affectedArtifactIds": []string{"art-schema"},
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 48, env.engine.GetScore(builder), "creator debited for the filed issue")

	t.Run("open issues by default", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/coherence", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var views []CoherenceIssueView
		decodeJSON(t, rec, &views)
		require.Len(t, views, 1)
		assert.Equal(t, "iss-1", views[0].IssueID)
		assert.Equal(t, "contradiction", views[0].Kind)
		assert.Equal(t, "high", views[0].Severity)
		assert.Equal(t, "open", views[0].Status)
		assert.Equal(t, reporter, views[0].DetectedBy)
		assert.Nil(t, views[0].ResolvedAt)
	})

	t.Run("resolved filter empty before resolve", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/coherence?status=resolved", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var views []CoherenceIssueView
		decodeJSON(t, rec, &views)
		assert.Empty(t, views)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/coherence?status=stale", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "must be open, resolved, or all")
	})

	t.Run("resolve closes and credits", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/coherence/iss-1/resolve", map[string]any{
			"resolution": "billing adopted the checkout schema",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var view CoherenceIssueView
		decodeJSON(t, rec, &view)
		assert.Equal(t, "resolved", view.Status)
		assert.Equal(t, "billing adopted the checkout schema", view.Resolution)
		assert.NotNil(t, view.ResolvedAt)

		assert.Equal(t, 49, env.engine.GetScore(builder), "creator credited on resolution")
	})

	t.Run("views after resolve", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/coherence", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var open []CoherenceIssueView
		decodeJSON(t, rec, &open)
		assert.Empty(t, open)

		rec = env.doJSON(t, http.MethodGet, "/api/coherence?status=all", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var all []CoherenceIssueView
		decodeJSON(t, rec, &all)
		assert.Len(t, all, 1)
	})

	t.Run("second resolve conflicts", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/coherence/iss-1/resolve", map[string]any{
			"resolution": "again",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestResolveCoherenceValidation(t *testing.T) {
	env := newTestServer(t)

	t.Run("resolution text required", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/coherence/iss-1/resolve", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "resolution is required")
	})

	t.Run("unknown issue", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/coherence/iss-ghost/resolve", map[string]any{
			"resolution": "n/a",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
