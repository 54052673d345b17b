package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ingestEvent pushes one envelope through the bridge ingest endpoint.
func (env *serverEnv) ingestEvent(t *testing.T, agentID, runID, sourceEventID string, seq int64, event map[string]any) {
	t.Helper()

	rec := env.doJSON(t, http.MethodPost, "/api/bridge/events?agentId="+agentID, map[string]any{
		"sourceEventId":  sourceEventID,
		"sourceSequence": seq,
		"runId":          runID,
		"event":          event,
	})
	require.Equal(t, http.StatusOK, rec.Code, "ingest failed: %s", rec.Body.String())
}

func TestListEventsFilters(t *testing.T) {
	env := newTestServer(t)
	agentA := env.spawnTestAgent(t, "ws-core")
	agentB := env.spawnTestAgent(t, "ws-docs")

	env.ingestEvent(t, agentA, "run-1", "ev-1", 1, map[string]any{
		"type":   "status",
		"status": map[string]any{"message": "compiling", "state": "working"},
	})
	env.ingestEvent(t, agentA, "run-1", "ev-2", 2, map[string]any{
		"type":       "completion",
		"completion": map[string]any{"summary": "done", "clean": true},
	})
	env.ingestEvent(t, agentB, "run-2", "ev-3", 1, map[string]any{
		"type":     "progress",
		"progress": map[string]any{"percent": 50.0, "step": "scaffolding"},
	})

	listEvents := func(t *testing.T, query string) []EventView {
		t.Helper()
		rec := env.doJSON(t, http.MethodGet, "/api/events"+query, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var views []EventView
		decodeJSON(t, rec, &views)
		return views
	}

	t.Run("unfiltered returns everything in ingest order", func(t *testing.T) {
		views := listEvents(t, "")
		require.Len(t, views, 3)
		assert.Equal(t, "ev-1", views[0].SourceEventID)
		assert.Equal(t, "ev-3", views[2].SourceEventID)
		assert.Equal(t, "status", views[0].Event.Type)
	})

	t.Run("agentId filter", func(t *testing.T) {
		views := listEvents(t, "?agentId="+agentB)
		require.Len(t, views, 1)
		assert.Equal(t, "ev-3", views[0].SourceEventID)
		assert.Equal(t, "run-2", views[0].RunID)
	})

	t.Run("runId filter", func(t *testing.T) {
		views := listEvents(t, "?runId=run-1")
		assert.Len(t, views, 2)
	})

	t.Run("types filter", func(t *testing.T) {
		views := listEvents(t, "?types=completion,progress")
		require.Len(t, views, 2)
		assert.Equal(t, "ev-2", views[0].SourceEventID)
		assert.Equal(t, "ev-3", views[1].SourceEventID)
	})

	t.Run("since filter", func(t *testing.T) {
		past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
		assert.Len(t, listEvents(t, "?since="+past), 3)

		future := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
		assert.Empty(t, listEvents(t, "?since="+future))
	})

	t.Run("limit caps the page", func(t *testing.T) {
		views := listEvents(t, "?limit=1")
		require.Len(t, views, 1)
		assert.Equal(t, "ev-1", views[0].SourceEventID)
	})

	t.Run("junk limit falls back to default", func(t *testing.T) {
		assert.Len(t, listEvents(t, "?limit=banana"), 3)
	})
}

func TestListEventsRejectsBadParams(t *testing.T) {
	env := newTestServer(t)

	rec := env.doJSON(t, http.MethodGet, "/api/events?types=status,telepathy", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid event type: telepathy")

	rec = env.doJSON(t, http.MethodGet, "/api/events?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RFC3339")
}
