package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

// ingestArtifact pushes an artifact event through the bridge so the store's
// index learns about it the same way it does in production.
func (env *serverEnv) ingestArtifact(t *testing.T, agentID, artifactID, workstream, sourceEventID string) {
	t.Helper()

	rec := env.doJSON(t, http.MethodPost, "/api/bridge/events?agentId="+agentID, map[string]any{
		"sourceEventId":  sourceEventID,
		"sourceSequence": 1,
		"runId":          "run-1",
		"event": map[string]any{
			"type": models.EventTypeArtifact,
			"artifact": map[string]any{
				"artifactId": artifactID,
				"name":       "auth middleware",
				"kind":       "code",
				"workstream": workstream,
				"summary":    "JWT verification for the edge",
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, "ingest failed: %s", rec.Body.String())
}

func TestArtifactIndexOverHTTP(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	env.ingestArtifact(t, agentID, "art-1", "ws-core", "ev-art-1")
	env.ingestArtifact(t, agentID, "art-2", "ws-docs", "ev-art-2")

	t.Run("list all", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/artifacts", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var views []ArtifactView
		decodeJSON(t, rec, &views)
		assert.Len(t, views, 2)
	})

	t.Run("workstream filter", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/artifacts?workstream=ws-docs", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var views []ArtifactView
		decodeJSON(t, rec, &views)
		require.Len(t, views, 1)
		assert.Equal(t, "art-2", views[0].ArtifactID)
	})

	t.Run("get by id", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/artifacts/art-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var view ArtifactView
		decodeJSON(t, rec, &view)
		assert.Equal(t, "art-1", view.ArtifactID)
		assert.Equal(t, "code", view.Kind)
		assert.Equal(t, "ws-core", view.Workstream)
		assert.Equal(t, agentID, view.CreatedBy)
		assert.Equal(t, 1, view.Version)
		assert.Equal(t, "JWT verification for the edge", view.Summary)
	})

	t.Run("re-announce bumps version", func(t *testing.T) {
		env.ingestArtifact(t, agentID, "art-1", "ws-core", "ev-art-3")

		rec := env.doJSON(t, http.MethodGet, "/api/artifacts/art-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var view ArtifactView
		decodeJSON(t, rec, &view)
		assert.Equal(t, 2, view.Version)
	})

	t.Run("unknown artifact", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/artifacts/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestArtifactContentUploadAndDownload(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")
	content := []byte("package auth\n\nfunc Verify() {}\n")

	rec := env.doJSON(t, http.MethodPost, "/api/artifacts", map[string]any{
		"agentId":    agentID,
		"artifactId": "art-1",
		"content":    content,
		"mimeType":   "text/x-go",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var upload UploadArtifactResponse
	decodeJSON(t, rec, &upload)
	assert.Equal(t, "artifact://"+agentID+"/art-1", upload.URI)
	assert.True(t, upload.Stored)

	t.Run("download resolves most recent writer", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/artifacts/art-1/content", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(content), rec.Body.String())
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/x-go")
	})

	t.Run("download pinned to uploader", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/artifacts/art-1/content?agentId="+agentID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(content), rec.Body.String())
	})

	t.Run("missing content is 404", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/artifacts/ghost/content", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/artifacts", map[string]any{
			"agentId":    agentID,
			"artifactId": "art-2",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("re-upload replaces content", func(t *testing.T) {
		updated := []byte("package auth // v2\n")
		rec := env.doJSON(t, http.MethodPost, "/api/artifacts", map[string]any{
			"agentId":    agentID,
			"artifactId": "art-1",
			"content":    updated,
			"mimeType":   "text/x-go",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.doJSON(t, http.MethodGet, "/api/artifacts/art-1/content", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(updated), rec.Body.String())
	})
}
