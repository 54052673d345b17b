package e2e

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

// TestRestartRecovery boots the control plane, builds up project state, kills
// the process, and boots a second instance on the same database file. Paused
// agents must come back resumable; agents that were running lost their
// sandbox and must be orphaned with a reconstructed checkpoint; knowledge
// must survive untouched.
func TestRestartRecovery(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "steward.db")

	app1 := NewTestApp(t, WithDatabasePath(dbPath))

	app1.SeedProject(t, "atlas", map[string]interface{}{
		"repo": "github.com/acme/atlas",
	})
	app1.SpawnAgent(t, "agent-a", "implementer", "backend")
	app1.SpawnAgent(t, "agent-b", "reviewer", "frontend")

	app1.IngestArtifact(t, "agent-a", "run-1", 1, "art-1", "API sketch", "design", "backend")
	app1.IngestStatus(t, "agent-a", "run-1", 2, "design drafted")

	scoreBefore := asInt(app1.GetTrust(t, "agent-a")["score"])

	// Pause A so it carries a checkpoint into the restart. B stays running
	// with no checkpoint at all.
	cp := app1.PauseAgent(t, "agent-a")
	require.Equal(t, models.SerializedByPause, cp["serializedBy"])

	app1.Shutdown()

	app2 := NewTestApp(t, WithDatabasePath(dbPath))

	// Project record survived the restart.
	assert.Equal(t, "atlas", app2.GetProject(t)["name"])

	// Roster: A restored as paused, B orphaned to error.
	views := app2.GetAgents(t)
	a, ok := findAgent(views, "agent-a")
	require.True(t, ok, "agent-a missing from roster after restart")
	assert.Equal(t, models.AgentPaused, a["status"])
	assert.Equal(t, false, a["live"])

	b, ok := findAgent(views, "agent-b")
	require.True(t, ok, "agent-b missing from roster after restart")
	assert.Equal(t, models.AgentError, b["status"])

	// B got a crash-recovery checkpoint reconstructed from its stored brief.
	cpsB := app2.ListCheckpoints(t, "agent-b")
	require.NotEmpty(t, cpsB, "orphaned agent should have a reconstructed checkpoint")
	latestB := cpsB[0].(map[string]interface{})
	assert.Equal(t, models.SerializedByCrashRecovery, latestB["serializedBy"])

	// A's pause checkpoint is intact.
	cpsA := app2.ListCheckpoints(t, "agent-a")
	require.NotEmpty(t, cpsA)
	assert.Equal(t, models.SerializedByPause, cpsA[0].(map[string]interface{})["serializedBy"])

	// Knowledge survived: artifact table, event log, snapshot version.
	artifacts := app2.GetArtifacts(t)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "art-1", artifacts[0].(map[string]interface{})["artifactId"])

	events := app2.GetEvents(t, "agentId=agent-a")
	assert.GreaterOrEqual(t, len(events), 3, "spawn status + artifact + status events should persist")

	injection := app2.getJSON(t, "/api/bridge/context/agent-a", http.StatusOK)
	assert.GreaterOrEqual(t, asInt(injection["snapshotVersion"]), 1,
		"snapshot version should continue from persisted knowledge")

	// Trust was hydrated from the store, not reset.
	assert.Equal(t, scoreBefore, asInt(app2.GetTrust(t, "agent-a")["score"]))

	// The paused agent resumes on the new process from its checkpoint, on a
	// freshly built sandbox session.
	resumed := app2.ResumeAgent(t, "agent-a")
	handle, ok := resumed["agent"].(map[string]interface{})
	require.True(t, ok, "resume response missing agent handle: %v", resumed)
	assert.Equal(t, models.AgentRunning, handle["status"])
	assert.True(t, app2.Plugin.HasSession("agent-a"))

	app2.WaitForStoredAgentStatus(t, "agent-a", models.AgentRunning)
}

// TestRestartKeepsCompletedAgentsTerminal verifies a cleanly killed agent is
// not touched by crash recovery on the next boot.
func TestRestartKeepsCompletedAgentsTerminal(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "steward.db")

	app1 := NewTestApp(t, WithDatabasePath(dbPath))
	app1.SpawnAgent(t, "agent-done", "implementer", "backend")

	killed := app1.KillAgent(t, "agent-done")
	assert.Equal(t, true, killed["cleanShutdown"])
	assert.Equal(t, true, killed["checkpointStored"])

	app1.Shutdown()

	app2 := NewTestApp(t, WithDatabasePath(dbPath))

	views := app2.GetAgents(t)
	done, ok := findAgent(views, "agent-done")
	require.True(t, ok)
	assert.Equal(t, models.AgentCompleted, done["status"])

	// Only the kill-grace checkpoint exists; no crash-recovery entry was added.
	cps := app2.ListCheckpoints(t, "agent-done")
	require.NotEmpty(t, cps)
	for _, raw := range cps {
		view := raw.(map[string]interface{})
		assert.NotEqual(t, models.SerializedByCrashRecovery, view["serializedBy"])
	}
}
