package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

func testBrief(agentID string) *models.AgentBrief {
	return &models.AgentBrief{
		AgentID:    agentID,
		Role:       "backend engineer",
		Workstream: "ws-auth",
	}
}

func TestInProcessPlugin_Lifecycle(t *testing.T) {
	ctx := context.Background()
	plugin := NewInProcessPlugin(nil)

	handle, err := plugin.Spawn(ctx, testBrief("a1"))
	require.NoError(t, err)
	assert.Equal(t, "a1", handle.AgentID)
	assert.Equal(t, InProcessPluginName, handle.PluginName)
	assert.Equal(t, models.AgentRunning, handle.Status)
	assert.NotEmpty(t, handle.SessionID)
	assert.True(t, plugin.HasSession("a1"))

	t.Run("duplicate spawn rejected", func(t *testing.T) {
		_, err := plugin.Spawn(ctx, testBrief("a1"))
		require.Error(t, err)
	})

	t.Run("pause serializes and keeps session", func(t *testing.T) {
		state, err := plugin.Pause(ctx, handle)
		require.NoError(t, err)
		assert.Equal(t, "a1", state.AgentID)
		assert.Equal(t, models.SerializedByPause, state.SerializedBy)
		require.NotNil(t, state.Brief)
		assert.Equal(t, "backend engineer", state.Brief.Role)
		assert.Equal(t, handle.SessionID, state.Checkpoint["sessionId"])
		assert.True(t, plugin.HasSession("a1"))
	})

	t.Run("resume restores the session id", func(t *testing.T) {
		state, err := plugin.Pause(ctx, handle)
		require.NoError(t, err)

		revived, err := plugin.Resume(ctx, state)
		require.NoError(t, err)
		assert.Equal(t, "a1", revived.AgentID)
		assert.Equal(t, handle.SessionID, revived.SessionID)
		assert.Equal(t, models.AgentRunning, revived.Status)
	})

	t.Run("kill with grace returns final state", func(t *testing.T) {
		result, err := plugin.Kill(ctx, handle, models.KillOptions{Grace: true})
		require.NoError(t, err)
		assert.True(t, result.CleanShutdown)
		require.NotNil(t, result.State)
		assert.Equal(t, models.SerializedByKillGrace, result.State.SerializedBy)
		assert.False(t, plugin.HasSession("a1"))
	})

	t.Run("operations on dead session fail", func(t *testing.T) {
		_, err := plugin.Kill(ctx, handle, models.KillOptions{})
		require.Error(t, err)
		_, err = plugin.Pause(ctx, handle)
		require.Error(t, err)
	})
}

func TestInProcessPlugin_ResumeWithoutPriorSession(t *testing.T) {
	ctx := context.Background()
	plugin := NewInProcessPlugin(nil)

	handle, err := plugin.Resume(ctx, &models.SerializedAgentState{
		AgentID:      "cold",
		Brief:        testBrief("cold"),
		LastSequence: 41,
		Checkpoint:   map[string]any{"sessionId": "sess-cold"},
		SerializedBy: models.SerializedByCrashRecovery,
	})
	require.NoError(t, err)
	assert.Equal(t, "cold", handle.AgentID)
	assert.Equal(t, "sess-cold", handle.SessionID)
	assert.True(t, plugin.HasSession("cold"))
}

func TestInProcessPlugin_ControlOperations(t *testing.T) {
	ctx := context.Background()
	plugin := NewInProcessPlugin(nil)
	handle, err := plugin.Spawn(ctx, testBrief("a2"))
	require.NoError(t, err)

	t.Run("inject context records and advances sequence", func(t *testing.T) {
		inj := &models.ContextInjection{Content: "{}", Format: "json", SnapshotVersion: 7}
		require.NoError(t, plugin.InjectContext(ctx, handle, inj))
		got := plugin.Injections("a2")
		require.Len(t, got, 1)
		assert.Equal(t, int64(7), got[0].SnapshotVersion)

		state, err := plugin.Pause(ctx, handle)
		require.NoError(t, err)
		assert.Equal(t, int64(1), state.LastSequence)
	})

	t.Run("resolve decision records", func(t *testing.T) {
		res := &models.Resolution{Type: models.DecisionKindToolApproval, Action: models.ResolutionApprove}
		require.NoError(t, plugin.ResolveDecision(ctx, handle, "dec-1", res))
		got := plugin.Resolutions("a2")
		require.Len(t, got, 1)
		assert.Equal(t, "dec-1", got[0].DecisionID)
		assert.Equal(t, models.ResolutionApprove, got[0].Resolution.Action)
	})

	t.Run("update brief merges known fields", func(t *testing.T) {
		patch := map[string]any{"role": "security reviewer", "unknownKey": 1}
		require.NoError(t, plugin.UpdateBrief(ctx, handle, patch))
		require.Len(t, plugin.BriefPatches("a2"), 1)

		state, err := plugin.Pause(ctx, handle)
		require.NoError(t, err)
		require.NotNil(t, state.Brief)
		assert.Equal(t, "security reviewer", state.Brief.Role)
	})

	t.Run("request checkpoint carries the decision id", func(t *testing.T) {
		state, err := plugin.RequestCheckpoint(ctx, handle, "dec-9")
		require.NoError(t, err)
		assert.Equal(t, models.SerializedByDecision, state.SerializedBy)
		assert.Equal(t, []string{"dec-9"}, state.PendingDecisionIDs)
	})
}

func TestInProcessPlugin_EmitsStatusEvents(t *testing.T) {
	ctx := context.Background()
	var events []*models.EventEnvelope
	plugin := NewInProcessPlugin(func(env *models.EventEnvelope) {
		events = append(events, env)
	})

	handle, err := plugin.Spawn(ctx, testBrief("a3"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "a3", events[0].AgentID)
	assert.Equal(t, models.EventTypeStatus, events[0].Event.Type)
	assert.Equal(t, handle.SessionID, events[0].RunID)
	assert.Equal(t, int64(1), events[0].SourceSequence)

	state, err := plugin.Pause(ctx, handle)
	require.NoError(t, err)
	_, err = plugin.Resume(ctx, state)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Session resumed", events[1].Event.Status.Message)
	assert.Greater(t, events[1].SourceSequence, events[0].SourceSequence)
}

func TestInProcessPlugin_CapabilitiesComplete(t *testing.T) {
	caps := NewInProcessPlugin(nil).Capabilities()
	assert.True(t, caps.Pause)
	assert.True(t, caps.Resume)
	assert.True(t, caps.ContextInjection)
	assert.True(t, caps.BriefUpdate)
	assert.True(t, caps.Checkpoint)
}
