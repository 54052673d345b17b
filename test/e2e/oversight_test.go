package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/brake"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/trust"
)

// TestToolApprovalRoundTrip drives the full oversight loop: a sandboxed
// agent blocks on a tool approval, the human sees it on the decision queue,
// approves it, and the sandbox, the dashboard, and the trust ledger all hear
// about the outcome.
func TestToolApprovalRoundTrip(t *testing.T) {
	app := NewTestApp(t)

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)

	// Orchestrator gates every tool call through a human.
	switched := app.SetControlMode(t, string(models.ModeOrchestrator))
	assert.Equal(t, true, switched["changed"])

	app.SpawnAgent(t, "agent-gate", "implementer", "backend")
	scoreBefore := asInt(app.GetTrust(t, "agent-gate")["score"])

	// The sandbox side: a blocking approval request. The goroutine reports
	// through the channel; assertions happen back on the test goroutine.
	type approvalReply struct {
		status int
		body   map[string]interface{}
		err    error
	}
	replyCh := make(chan approvalReply, 1)
	go func() {
		payload, _ := json.Marshal(map[string]interface{}{
			"agentId":   "agent-gate",
			"toolName":  "Bash",
			"toolInput": map[string]interface{}{"command": "go test ./..."},
			"toolUseId": "tu-1",
		})
		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Post(app.BaseURL+"/api/tool-gate/request-approval", "application/json", bytes.NewReader(payload))
		if err != nil {
			replyCh <- approvalReply{err: err}
			return
		}
		defer func() { _ = resp.Body.Close() }()
		var body map[string]interface{}
		err = json.NewDecoder(resp.Body).Decode(&body)
		replyCh <- approvalReply{status: resp.StatusCode, body: body, err: err}
	}()

	// The human side: the request surfaces as a pending decision.
	var decisionID string
	require.Eventually(t, func() bool {
		for _, it := range app.Queue.ListPending("agent-gate") {
			if it.Event.Kind == models.DecisionKindToolApproval {
				decisionID = it.Event.DecisionID
				return true
			}
		}
		return false
	}, 10*time.Second, 50*time.Millisecond, "tool approval never reached the decision queue")

	// Wire shape of the open queue as the dashboard reads it.
	queued := app.ListDecisions(t, "agentId=agent-gate")
	require.Len(t, queued, 1)
	item, ok := queued[0].(map[string]interface{})
	require.True(t, ok)
	ev, ok := item["event"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, decisionID, ev["decisionId"])
	assert.Equal(t, models.DecisionKindToolApproval, ev["kind"])
	assert.Equal(t, "Bash", ev["toolName"])
	assert.Equal(t, decision.StatusPending, item["status"])

	resolved := app.ResolveDecision(t, decisionID, map[string]interface{}{
		"type":       models.DecisionKindToolApproval,
		"action":     models.ResolutionApprove,
		"rationale":  "reviewed the command",
		"actionKind": models.ActionKindReview,
	})
	assert.Equal(t, decision.StatusResolved, resolved["status"])

	// The blocked sandbox call unblocks with the human's answer.
	select {
	case reply := <-replyCh:
		require.NoError(t, reply.err)
		require.Equal(t, http.StatusOK, reply.status)
		assert.Equal(t, decisionID, reply.body["decisionId"])
		assert.Equal(t, models.ResolutionApprove, reply.body["action"])
		assert.Equal(t, false, reply.body["autoResolved"])
		assert.NotContains(t, reply.body, "timedOut")
		assert.Equal(t, "reviewed the command", reply.body["rationale"])
	case <-time.After(10 * time.Second):
		t.Fatal("approval request did not unblock after resolution")
	}

	// Dashboards hear the resolution.
	frame, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == models.WSTypeDecisionResolved && e.Parsed["decisionId"] == decisionID
	}, 5*time.Second)
	require.NoError(t, err, "decision_resolved never reached the dashboard")
	assert.Equal(t, "agent-gate", frame.Parsed["agentId"])

	// A reviewed approval earns the agent trust.
	trustFrame, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == models.WSTypeTrustUpdate && e.Parsed["agentId"] == "agent-gate"
	}, 5*time.Second)
	require.NoError(t, err, "trust_update never reached the dashboard")
	assert.Equal(t, string(trust.OutcomeHumanApprovesToolCall), trustFrame.Parsed["outcome"])
	delta := asInt(trustFrame.Parsed["delta"])
	assert.Equal(t, 1, delta)
	assert.Equal(t, scoreBefore+delta, asInt(app.GetTrust(t, "agent-gate")["score"]))

	// The resolution was forwarded into the sandbox session.
	forwarded := app.Plugin.Resolutions("agent-gate")
	require.Len(t, forwarded, 1)
	assert.Equal(t, decisionID, forwarded[0].DecisionID)
	assert.Equal(t, models.ResolutionApprove, forwarded[0].Resolution.Action)

	stats := app.getJSON(t, "/api/tool-gate/stats", http.StatusOK)
	assert.Equal(t, 1, asInt(stats["requested"]))
	assert.Equal(t, 1, asInt(stats["approved"]))
	assert.Equal(t, 0, asInt(stats["autoApproved"]))
}

// TestBrakeDecisionRelease engages an agent-scoped pause brake tied to a
// pending decision, then verifies resolving that decision lifts the brake,
// resumes the agent, and revives nothing that already resolved.
func TestBrakeDecisionRelease(t *testing.T) {
	app := NewTestApp(t)

	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	defer ws.Close()
	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)

	app.SpawnAgent(t, "agent-brake", "implementer", "backend")
	app.IngestDecision(t, "agent-brake", "run-1", 1, "dec-brake", []map[string]interface{}{
		{"id": "opt-hold", "label": "Hold the rollout"},
		{"id": "opt-ship", "label": "Ship it"},
	})

	engaged := app.EngageBrake(t, map[string]interface{}{
		"scope":            brake.ScopeAgent,
		"agentId":          "agent-brake",
		"behavior":         brake.BehaviorPause,
		"reason":           "rollout under review",
		"releaseCondition": brake.ReleaseDecision,
		"decisionId":       "dec-brake",
	})
	brakeID, _ := engaged["id"].(string)
	require.NotEmpty(t, brakeID)
	assert.Contains(t, engaged["affectedAgentIds"], "agent-brake")
	assert.Equal(t, brake.ReleaseDecision, engaged["releaseCondition"])

	app.WaitForStoredAgentStatus(t, "agent-brake", models.AgentPaused)

	engagedFrame, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == models.WSTypeBrake && e.Parsed["engaged"] == true
	}, 5*time.Second)
	require.NoError(t, err, "brake engagement never reached the dashboard")
	engagedBrake, ok := engagedFrame.Parsed["brake"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, brakeID, engagedBrake["id"])

	// The braked agent's open decision is parked, not lost.
	suspended := app.ListDecisions(t, "status="+decision.StatusSuspended)
	require.Len(t, suspended, 1)
	item, ok := suspended[0].(map[string]interface{})
	require.True(t, ok)
	ev, ok := item["event"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dec-brake", ev["decisionId"])
	assert.Equal(t, decision.BadgeAgentBraked, item["badge"])
	assert.Empty(t, app.ListDecisions(t, "agentId=agent-brake"), "suspended decisions must leave the open queue")

	// Resolving the designated decision lifts the brake.
	resolved := app.ResolveDecision(t, "dec-brake", map[string]interface{}{
		"type":           models.DecisionKindOption,
		"chosenOptionId": "opt-ship",
		"actionKind":     models.ActionKindReview,
	})
	assert.Equal(t, decision.StatusResolved, resolved["status"])

	app.WaitForStoredAgentStatus(t, "agent-brake", models.AgentRunning)
	assert.True(t, app.Plugin.HasSession("agent-brake"))
	assert.Empty(t, app.Brakes.Active())

	releasedFrame, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == models.WSTypeBrake && e.Parsed["engaged"] == false
	}, 5*time.Second)
	require.NoError(t, err, "brake release never reached the dashboard")
	releasedBrake, ok := releasedFrame.Parsed["brake"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, brakeID, releasedBrake["id"])

	_, err = ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == models.WSTypeDecisionResolved && e.Parsed["decisionId"] == "dec-brake"
	}, 5*time.Second)
	require.NoError(t, err)

	// The chosen option reached the sandbox session.
	forwarded := app.Plugin.Resolutions("agent-brake")
	require.NotEmpty(t, forwarded)
	last := forwarded[len(forwarded)-1]
	assert.Equal(t, "dec-brake", last.DecisionID)
	assert.Equal(t, "opt-ship", last.Resolution.ChosenOptionID)
}
