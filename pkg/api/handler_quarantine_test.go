package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuarantineCapturesMalformedEvents(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	// A status event with no payload fails validation at ingest and must be
	// rejected AND preserved for operator inspection.
	rec := env.doJSON(t, http.MethodPost, "/api/bridge/events?agentId="+agentID, map[string]any{
		"sourceEventId":  "ev-bad-1",
		"sourceSequence": 1,
		"runId":          "run-1",
		"event":          map[string]any{"type": "status"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/bridge/events?agentId="+agentID, map[string]any{
		"sourceEventId":  "ev-bad-2",
		"sourceSequence": 2,
		"runId":          "run-1",
		"event":          map[string]any{"type": "telepathy"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/quarantine", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []QuarantinedEventView
	decodeJSON(t, rec, &views)
	require.Len(t, views, 2)

	// Newest first, with the original envelope preserved verbatim.
	assert.Contains(t, string(views[0].Raw), "ev-bad-2")
	assert.Contains(t, string(views[1].Raw), "ev-bad-1")
	assert.Contains(t, views[1].Reason, "status event missing status payload")
	assert.Equal(t, agentID, views[1].Source)
	assert.False(t, views[1].QuarantinedAt.IsZero())

	t.Run("limit bounds the page", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/quarantine?limit=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var limited []QuarantinedEventView
		decodeJSON(t, rec, &limited)
		assert.Len(t, limited, 1)
	})

	t.Run("nothing reached the event store", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/events?agentId="+agentID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var events []EventView
		decodeJSON(t, rec, &events)
		assert.Empty(t, events)
	})
}

func TestClearQuarantine(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	for _, id := range []string{"ev-bad-1", "ev-bad-2", "ev-bad-3"} {
		rec := env.doJSON(t, http.MethodPost, "/api/bridge/events?agentId="+agentID, map[string]any{
			"sourceEventId": id,
			"runId":         "run-1",
			"event":         map[string]any{"type": "error"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec := env.doJSON(t, http.MethodDelete, "/api/quarantine", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int
	decodeJSON(t, rec, &resp)
	assert.Equal(t, 3, resp["removed"])

	rec = env.doJSON(t, http.MethodGet, "/api/quarantine", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []QuarantinedEventView
	decodeJSON(t, rec, &views)
	assert.Empty(t, views)
}
