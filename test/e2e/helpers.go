package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

// ────────────────────────────────────────────────────────────
// HTTP Client Helpers
// ────────────────────────────────────────────────────────────

func (app *TestApp) doJSON(t *testing.T, method, path string, body interface{}, expectedStatus int) []byte {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode,
		"%s %s: unexpected status (body: %s)", method, path, data)
	return data
}

func (app *TestApp) postJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	data := app.doJSON(t, http.MethodPost, path, body, expectedStatus)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	data := app.doJSON(t, http.MethodGet, path, nil, expectedStatus)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

func (app *TestApp) getJSONArray(t *testing.T, path string, expectedStatus int) []interface{} {
	t.Helper()
	data := app.doJSON(t, http.MethodGet, path, nil, expectedStatus)
	var result []interface{}
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

// ────────────────────────────────────────────────────────────
// Project and Agent Lifecycle
// ────────────────────────────────────────────────────────────

// SeedProject creates the project record.
func (app *TestApp) SeedProject(t *testing.T, name string, config map[string]interface{}) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{"name": name}
	if config != nil {
		body["config"] = config
	}
	return app.postJSON(t, "/api/project/seed", body, http.StatusOK)
}

// GetProject retrieves the project record.
func (app *TestApp) GetProject(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/project", http.StatusOK)
}

// SpawnAgent spawns an agent with a minimal brief and returns the live
// handle from the response.
func (app *TestApp) SpawnAgent(t *testing.T, agentID, role, workstream string) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"brief": map[string]interface{}{
			"agentId":    agentID,
			"role":       role,
			"workstream": workstream,
		},
	}
	resp := app.postJSON(t, "/api/agents/spawn", body, http.StatusOK)
	handle, ok := resp["agent"].(map[string]interface{})
	require.True(t, ok, "spawn response missing agent handle: %v", resp)
	return handle
}

// PauseAgent pauses an agent and returns the checkpoint view.
func (app *TestApp) PauseAgent(t *testing.T, agentID string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/agents/"+agentID+"/pause", nil, http.StatusOK)
}

// ResumeAgent resumes an agent from its latest checkpoint.
func (app *TestApp) ResumeAgent(t *testing.T, agentID string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/agents/"+agentID+"/resume", nil, http.StatusOK)
}

// KillAgent terminates an agent with the grace window.
func (app *TestApp) KillAgent(t *testing.T, agentID string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/agents/"+agentID+"/kill", nil, http.StatusOK)
}

// GetAgents returns the roster.
func (app *TestApp) GetAgents(t *testing.T) []interface{} {
	t.Helper()
	return app.getJSONArray(t, "/api/agents", http.StatusOK)
}

// GetAgent returns one agent's detail view.
func (app *TestApp) GetAgent(t *testing.T, agentID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/agents/"+agentID, http.StatusOK)
}

// ListCheckpoints returns an agent's checkpoints, newest first.
func (app *TestApp) ListCheckpoints(t *testing.T, agentID string) []interface{} {
	t.Helper()
	return app.getJSONArray(t, "/api/agents/"+agentID+"/checkpoints", http.StatusOK)
}

// ────────────────────────────────────────────────────────────
// Bridge Ingestion
// ────────────────────────────────────────────────────────────

// IngestEvent posts one adapter event through the bridge and returns the
// ingest receipt. The source event id derives from (agent, run, sequence)
// so replays in tests are idempotent the way adapter retries are.
func (app *TestApp) IngestEvent(t *testing.T, agentID, runID string, seq int64, event map[string]interface{}) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"sourceEventId":    fmt.Sprintf("%s-%s-%d", agentID, runID, seq),
		"sourceSequence":   seq,
		"sourceOccurredAt": time.Now().UTC().Format(time.RFC3339Nano),
		"runId":            runID,
		"event":            event,
	}
	return app.postJSON(t, "/api/bridge/events?agentId="+agentID, body, http.StatusOK)
}

// IngestStatus reports a status message for an agent.
func (app *TestApp) IngestStatus(t *testing.T, agentID, runID string, seq int64, message string) map[string]interface{} {
	t.Helper()
	return app.IngestEvent(t, agentID, runID, seq, map[string]interface{}{
		"type":   models.EventTypeStatus,
		"status": map[string]interface{}{"message": message},
	})
}

// IngestArtifact announces an artifact for an agent.
func (app *TestApp) IngestArtifact(t *testing.T, agentID, runID string, seq int64, artifactID, name, kind, workstream string) map[string]interface{} {
	t.Helper()
	return app.IngestEvent(t, agentID, runID, seq, map[string]interface{}{
		"type": models.EventTypeArtifact,
		"artifact": map[string]interface{}{
			"artifactId": artifactID,
			"name":       name,
			"kind":       kind,
			"workstream": workstream,
		},
	})
}

// IngestDecision raises an option decision for an agent.
func (app *TestApp) IngestDecision(t *testing.T, agentID, runID string, seq int64, decisionID string, options []map[string]interface{}) map[string]interface{} {
	t.Helper()
	return app.IngestEvent(t, agentID, runID, seq, map[string]interface{}{
		"type": models.EventTypeDecision,
		"decision": map[string]interface{}{
			"decisionId": decisionID,
			"agentId":    agentID,
			"kind":       models.DecisionKindOption,
			"title":      "choice for " + decisionID,
			"options":    options,
		},
	})
}

// ────────────────────────────────────────────────────────────
// Oversight Operations
// ────────────────────────────────────────────────────────────

// AdvanceTick advances the manual project clock and returns the new tick.
func (app *TestApp) AdvanceTick(t *testing.T, ticks int64) int64 {
	t.Helper()
	resp := app.postJSON(t, "/api/tick/advance", map[string]interface{}{"ticks": ticks}, http.StatusOK)
	return int64(resp["tick"].(float64))
}

// SetControlMode switches the global control mode.
func (app *TestApp) SetControlMode(t *testing.T, mode string) map[string]interface{} {
	t.Helper()
	data := app.doJSON(t, http.MethodPut, "/api/control-mode", map[string]interface{}{"mode": mode}, http.StatusOK)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

// ListDecisions queries the decision queue. An empty query returns the open
// queue in priority order.
func (app *TestApp) ListDecisions(t *testing.T, query string) []interface{} {
	t.Helper()
	path := "/api/decisions"
	if query != "" {
		path += "?" + query
	}
	return app.getJSONArray(t, path, http.StatusOK)
}

// ResolveDecision posts a human resolution and returns the resolved item.
func (app *TestApp) ResolveDecision(t *testing.T, decisionID string, resolution map[string]interface{}) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{"resolution": resolution}
	return app.postJSON(t, "/api/decisions/"+decisionID+"/resolve", body, http.StatusOK)
}

// EngageBrake hits the emergency stop and returns the engaged brake.
func (app *TestApp) EngageBrake(t *testing.T, req map[string]interface{}) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/brake", req, http.StatusOK)
}

// ReleaseBrake releases one brake, or every brake when brakeID is empty.
func (app *TestApp) ReleaseBrake(t *testing.T, brakeID string) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	if brakeID != "" {
		body["brakeId"] = brakeID
	}
	return app.postJSON(t, "/api/brake/release", body, http.StatusOK)
}

// GetTrust returns an agent's trust profile.
func (app *TestApp) GetTrust(t *testing.T, agentID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/trust/"+agentID, http.StatusOK)
}

// GetArtifacts returns the artifact table.
func (app *TestApp) GetArtifacts(t *testing.T) []interface{} {
	t.Helper()
	return app.getJSONArray(t, "/api/artifacts", http.StatusOK)
}

// GetEvents queries the persisted event log.
func (app *TestApp) GetEvents(t *testing.T, query string) []interface{} {
	t.Helper()
	path := "/api/events"
	if query != "" {
		path += "?" + query
	}
	return app.getJSONArray(t, path, http.StatusOK)
}

// ────────────────────────────────────────────────────────────
// Polling Helpers
// ────────────────────────────────────────────────────────────

// WaitForStoredAgentStatus polls the database until the agent record reaches
// one of the expected statuses. Returns the status it landed on.
func (app *TestApp) WaitForStoredAgentStatus(t *testing.T, agentID string, expected ...string) string {
	t.Helper()
	var actual string
	require.Eventually(t, func() bool {
		rec, err := app.EntClient.AgentRecord.Get(context.Background(), agentID)
		if err != nil {
			return false
		}
		actual = string(rec.Status)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 10*time.Second, 50*time.Millisecond,
		"agent %s did not reach status %v (last: %s)", agentID, expected, actual)
	return actual
}

// asInt converts a JSON-decoded numeric value (typically float64) to int.
func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	default:
		return 0
	}
}

// findAgent locates one roster row by agent id.
func findAgent(views []interface{}, agentID string) (map[string]interface{}, bool) {
	for _, raw := range views {
		view, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if view["agentId"] == agentID {
			return view, true
		}
	}
	return nil, false
}
