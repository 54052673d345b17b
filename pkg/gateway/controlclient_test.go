package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

// fakeAdapter implements the shim control surface for client tests.
type fakeAdapter struct {
	mux *http.ServeMux

	spawned    *models.AgentBrief
	resumed    *models.SerializedAgentState
	resolved   map[string]*models.Resolution
	injections []*models.ContextInjection
	patches    []map[string]any
	killOpts   *models.KillOptions
	healthy    bool
}

func newFakeAdapter() *fakeAdapter {
	a := &fakeAdapter{
		mux:      http.NewServeMux(),
		resolved: make(map[string]*models.Resolution),
		healthy:  true,
	}

	a.mux.HandleFunc("POST /spawn", func(w http.ResponseWriter, r *http.Request) {
		var brief models.AgentBrief
		if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.spawned = &brief
		writeJSON(w, models.AgentHandle{AgentID: brief.AgentID, SessionID: "sess-1", Status: models.AgentRunning})
	})
	a.mux.HandleFunc("POST /pause", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.SerializedAgentState{
			AgentID:      "a1",
			LastSequence: 12,
			SerializedBy: models.SerializedByPause,
		})
	})
	a.mux.HandleFunc("POST /resume", func(w http.ResponseWriter, r *http.Request) {
		var state models.SerializedAgentState
		if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.resumed = &state
		writeJSON(w, models.AgentHandle{AgentID: state.AgentID, SessionID: "sess-2", Status: models.AgentRunning})
	})
	a.mux.HandleFunc("POST /kill", func(w http.ResponseWriter, r *http.Request) {
		var opts models.KillOptions
		_ = json.NewDecoder(r.Body).Decode(&opts)
		a.killOpts = &opts
		result := models.KillResult{ArtifactsExtracted: 2, CleanShutdown: true}
		if opts.Grace {
			result.State = &models.SerializedAgentState{AgentID: "a1", SerializedBy: models.SerializedByKillGrace}
		}
		writeJSON(w, result)
	})
	a.mux.HandleFunc("POST /resolve", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			DecisionID string             `json:"decisionId"`
			Resolution *models.Resolution `json:"resolution"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.resolved[body.DecisionID] = body.Resolution
		w.WriteHeader(http.StatusNoContent)
	})
	a.mux.HandleFunc("POST /inject-context", func(w http.ResponseWriter, r *http.Request) {
		var inj models.ContextInjection
		if err := json.NewDecoder(r.Body).Decode(&inj); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.injections = append(a.injections, &inj)
		w.WriteHeader(http.StatusNoContent)
	})
	a.mux.HandleFunc("POST /update-brief", func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.patches = append(a.patches, patch)
		w.WriteHeader(http.StatusNoContent)
	})
	a.mux.HandleFunc("POST /checkpoint", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			DecisionID string `json:"decisionId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, models.SerializedAgentState{
			AgentID:            "a1",
			PendingDecisionIDs: []string{body.DecisionID},
			SerializedBy:       models.SerializedByDecision,
		})
	})
	a.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if !a.healthy {
			http.Error(w, "starting", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return a
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestControlClient_RoundTrips(t *testing.T) {
	ctx := context.Background()
	adapter := newFakeAdapter()
	server := httptest.NewServer(adapter.mux)
	defer server.Close()
	client := newControlClient(server.URL)

	t.Run("spawn posts the brief itself", func(t *testing.T) {
		handle, err := client.Spawn(ctx, testBrief("a1"))
		require.NoError(t, err)
		assert.Equal(t, "a1", handle.AgentID)
		assert.Equal(t, "sess-1", handle.SessionID)
		require.NotNil(t, adapter.spawned)
		assert.Equal(t, "backend engineer", adapter.spawned.Role)
	})

	t.Run("pause", func(t *testing.T) {
		state, err := client.Pause(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(12), state.LastSequence)
		assert.Equal(t, models.SerializedByPause, state.SerializedBy)
	})

	t.Run("resume posts the state itself", func(t *testing.T) {
		handle, err := client.Resume(ctx, &models.SerializedAgentState{AgentID: "a1", LastSequence: 12})
		require.NoError(t, err)
		assert.Equal(t, "sess-2", handle.SessionID)
		require.NotNil(t, adapter.resumed)
		assert.Equal(t, int64(12), adapter.resumed.LastSequence)
	})

	t.Run("kill with grace returns state", func(t *testing.T) {
		result, err := client.Kill(ctx, models.KillOptions{Grace: true, GraceTimeoutMs: 2000})
		require.NoError(t, err)
		assert.Equal(t, 2, result.ArtifactsExtracted)
		require.NotNil(t, result.State)
		require.NotNil(t, adapter.killOpts)
		assert.Equal(t, int64(2000), adapter.killOpts.GraceTimeoutMs)
	})

	t.Run("resolve decision", func(t *testing.T) {
		res := &models.Resolution{Type: models.DecisionKindToolApproval, Action: models.ResolutionReject}
		require.NoError(t, client.ResolveDecision(ctx, "dec-1", res))
		require.Contains(t, adapter.resolved, "dec-1")
		assert.Equal(t, models.ResolutionReject, adapter.resolved["dec-1"].Action)
	})

	t.Run("inject context", func(t *testing.T) {
		inj := &models.ContextInjection{Content: "{}", Format: "json", SnapshotVersion: 4, Priority: models.PriorityRecommended}
		require.NoError(t, client.InjectContext(ctx, inj))
		require.Len(t, adapter.injections, 1)
		assert.Equal(t, int64(4), adapter.injections[0].SnapshotVersion)
	})

	t.Run("update brief", func(t *testing.T) {
		require.NoError(t, client.UpdateBrief(ctx, map[string]any{"role": "reviewer"}))
		require.Len(t, adapter.patches, 1)
		assert.Equal(t, "reviewer", adapter.patches[0]["role"])
	})

	t.Run("checkpoint", func(t *testing.T) {
		state, err := client.RequestCheckpoint(ctx, "dec-2")
		require.NoError(t, err)
		assert.Equal(t, []string{"dec-2"}, state.PendingDecisionIDs)
	})

	t.Run("health", func(t *testing.T) {
		require.NoError(t, client.Health(ctx))
		adapter.healthy = false
		err := client.Health(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}

func TestControlClient_ErrorIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "agent session not initialized", http.StatusConflict)
	}))
	defer server.Close()

	client := newControlClient(server.URL)
	_, err := client.Pause(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "agent session not initialized")
}
