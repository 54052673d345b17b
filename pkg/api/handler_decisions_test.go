package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/models"
)

// ingestDecision pushes an option decision through the bridge ingest path so
// the queue, store, and bus all see it the way a real adapter delivers it.
func (env *serverEnv) ingestDecision(t *testing.T, agentID, decisionID string) {
	t.Helper()

	rec := env.doJSON(t, http.MethodPost, "/api/bridge/events?agentId="+agentID, map[string]any{
		"sourceEventId":  "ev-" + decisionID,
		"sourceSequence": 1,
		"runId":          "run-1",
		"event": map[string]any{
			"type": models.EventTypeDecision,
			"decision": map[string]any{
				"decisionId": decisionID,
				"agentId":    agentID,
				"kind":       models.DecisionKindOption,
				"title":      "Choose storage backend",
				"severity":   models.SeverityHigh,
				"options": []map[string]any{
					{"id": "opt-1", "label": "Postgres"},
					{"id": "opt-2", "label": "SQLite"},
				},
				"recommendedOptionId": "opt-1",
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, "ingest failed: %s", rec.Body.String())
}

func TestDecisionListAndResolve(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")
	env.ingestDecision(t, agentID, "dec-1")

	t.Run("pending listing", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/decisions", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []decision.Item
		decodeJSON(t, rec, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "dec-1", items[0].Event.DecisionID)
		assert.Equal(t, decision.StatusPending, items[0].Status)
	})

	t.Run("agent filter", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/decisions?agentId=ghost", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []decision.Item
		decodeJSON(t, rec, &items)
		assert.Empty(t, items)
	})

	t.Run("resolve applies trust and forwards to the agent", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/decisions/dec-1/resolve", map[string]any{
			"resolution": map[string]any{
				"type":           models.DecisionKindOption,
				"chosenOptionId": "opt-1",
				"rationale":      "recommended path",
			},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var item decision.Item
		decodeJSON(t, rec, &item)
		assert.Equal(t, decision.StatusResolved, item.Status)
		require.NotNil(t, item.Resolution)
		assert.Equal(t, "opt-1", item.Resolution.ChosenOptionID)
		assert.Equal(t, "api-client", item.Resolution.ResolvedBy)

		// Approving the recommended option nudges trust up.
		assert.Equal(t, 52, env.engine.GetScore(agentID))

		// The resolution reached the sandbox plugin.
		require.Len(t, env.plugin.Resolutions(agentID), 1)
	})

	t.Run("resolved filter", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/decisions?status=resolved", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []decision.Item
		decodeJSON(t, rec, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "dec-1", items[0].Event.DecisionID)
	})

	t.Run("double resolve conflicts", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/decisions/dec-1/resolve", map[string]any{
			"resolution": map[string]any{
				"type":           models.DecisionKindOption,
				"chosenOptionId": "opt-2",
			},
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestResolveDecisionValidation(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")
	env.ingestDecision(t, agentID, "dec-2")

	t.Run("missing resolution type", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/decisions/dec-2/resolve", map[string]any{
			"resolution": map[string]any{"chosenOptionId": "opt-1"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("agent mismatch", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/decisions/dec-2/resolve", map[string]any{
			"agentId": "someone-else",
			"resolution": map[string]any{
				"type":           models.DecisionKindOption,
				"chosenOptionId": "opt-1",
			},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "does not match")
	})

	t.Run("unknown decision", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/decisions/nope/resolve", map[string]any{
			"resolution": map[string]any{
				"type":           models.DecisionKindOption,
				"chosenOptionId": "opt-1",
			},
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/decisions?status=bogus", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid status")
	})
}
