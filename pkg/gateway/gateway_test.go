package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
)

type capturePublisher struct {
	mu   sync.Mutex
	envs []*models.EventEnvelope
}

func (c *capturePublisher) Publish(env *models.EventEnvelope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.envs = append(c.envs, env)
}

func (c *capturePublisher) lifecyclePhases() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var phases []string
	for _, env := range c.envs {
		if env.Event.Type == models.EventTypeLifecycle {
			phases = append(phases, env.Event.Lifecycle.Phase)
		}
	}
	return phases
}

// stubPlugin lets tests control capabilities and inject failures.
type stubPlugin struct {
	name    string
	caps    Capabilities
	spawnFn func(*models.AgentBrief) (*models.AgentHandle, error)

	pauses      int
	checkpoints int
}

func (s *stubPlugin) Name() string               { return s.name }
func (s *stubPlugin) Capabilities() Capabilities { return s.caps }

func (s *stubPlugin) Spawn(ctx context.Context, brief *models.AgentBrief) (*models.AgentHandle, error) {
	if s.spawnFn != nil {
		return s.spawnFn(brief)
	}
	return &models.AgentHandle{AgentID: brief.AgentID}, nil
}

func (s *stubPlugin) Pause(ctx context.Context, handle *models.AgentHandle) (*models.SerializedAgentState, error) {
	s.pauses++
	return &models.SerializedAgentState{AgentID: handle.AgentID, SerializedBy: models.SerializedByPause}, nil
}

func (s *stubPlugin) Resume(ctx context.Context, state *models.SerializedAgentState) (*models.AgentHandle, error) {
	return &models.AgentHandle{AgentID: state.AgentID}, nil
}

func (s *stubPlugin) Kill(ctx context.Context, handle *models.AgentHandle, opts models.KillOptions) (*models.KillResult, error) {
	return &models.KillResult{CleanShutdown: true}, nil
}

func (s *stubPlugin) ResolveDecision(ctx context.Context, handle *models.AgentHandle, decisionID string, res *models.Resolution) error {
	return nil
}

func (s *stubPlugin) InjectContext(ctx context.Context, handle *models.AgentHandle, injection *models.ContextInjection) error {
	return nil
}

func (s *stubPlugin) UpdateBrief(ctx context.Context, handle *models.AgentHandle, patch map[string]any) error {
	return nil
}

func (s *stubPlugin) RequestCheckpoint(ctx context.Context, handle *models.AgentHandle, decisionID string) (*models.SerializedAgentState, error) {
	s.checkpoints++
	return &models.SerializedAgentState{AgentID: handle.AgentID, SerializedBy: models.SerializedByDecision}, nil
}

func TestGateway_SpawnLifecycle(t *testing.T) {
	ctx := context.Background()
	bus := &capturePublisher{}
	gw := New(InProcessPluginName, bus)
	gw.RegisterPlugin(NewInProcessPlugin(nil))

	handle, err := gw.Spawn(ctx, testBrief("a1"))
	require.NoError(t, err)
	assert.Equal(t, models.AgentRunning, handle.Status)
	assert.Equal(t, InProcessPluginName, handle.PluginName)

	status, ok := gw.AgentStatus("a1")
	require.True(t, ok)
	assert.Equal(t, models.AgentRunning, status)
	assert.Len(t, gw.ListHandles(), 1)

	t.Run("pause then resume", func(t *testing.T) {
		state, err := gw.Pause(ctx, "a1")
		require.NoError(t, err)
		require.NotNil(t, state)

		status, _ := gw.AgentStatus("a1")
		assert.Equal(t, models.AgentPaused, status)

		// A paused agent cannot be paused again.
		_, err = gw.Pause(ctx, "a1")
		require.ErrorIs(t, err, store.ErrConflict)

		revived, err := gw.Resume(ctx, state)
		require.NoError(t, err)
		assert.Equal(t, "a1", revived.AgentID)
		status, _ = gw.AgentStatus("a1")
		assert.Equal(t, models.AgentRunning, status)
	})

	t.Run("kill marks completed and keeps handle", func(t *testing.T) {
		result, err := gw.Kill(ctx, "a1", models.KillOptions{Grace: true})
		require.NoError(t, err)
		assert.True(t, result.CleanShutdown)
		require.NotNil(t, result.State)

		status, ok := gw.AgentStatus("a1")
		require.True(t, ok)
		assert.Equal(t, models.AgentCompleted, status)

		gw.Remove("a1")
		_, ok = gw.AgentStatus("a1")
		assert.False(t, ok)
	})

	assert.Equal(t, []string{
		models.LifecycleSpawned,
		models.LifecyclePaused,
		models.LifecycleResumed,
		models.LifecycleKilled,
	}, bus.lifecyclePhases())
}

func TestGateway_PluginRouting(t *testing.T) {
	ctx := context.Background()
	gw := New("primary", nil)
	gw.RegisterPlugin(&stubPlugin{name: "primary"})
	gw.RegisterPlugin(&stubPlugin{name: "secondary"})

	t.Run("empty plugin name uses the default", func(t *testing.T) {
		handle, err := gw.Spawn(ctx, &models.AgentBrief{AgentID: "d1"})
		require.NoError(t, err)
		assert.Equal(t, "primary", handle.PluginName)
	})

	t.Run("brief selects its own plugin", func(t *testing.T) {
		handle, err := gw.Spawn(ctx, &models.AgentBrief{AgentID: "d2", PluginName: "secondary"})
		require.NoError(t, err)
		assert.Equal(t, "secondary", handle.PluginName)
	})

	t.Run("unknown plugin", func(t *testing.T) {
		_, err := gw.Spawn(ctx, &models.AgentBrief{AgentID: "d3", PluginName: "ghost"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("plugin spawn failure propagates", func(t *testing.T) {
		gw.RegisterPlugin(&stubPlugin{
			name:    "broken",
			spawnFn: func(*models.AgentBrief) (*models.AgentHandle, error) { return nil, errors.New("sandbox down") },
		})
		_, err := gw.Spawn(ctx, &models.AgentBrief{AgentID: "d4", PluginName: "broken"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sandbox down")
		_, ok := gw.AgentStatus("d4")
		assert.False(t, ok)
	})
}

func TestGateway_CapabilityChecks(t *testing.T) {
	ctx := context.Background()
	gw := New("limited", nil)
	limited := &stubPlugin{name: "limited"} // all capabilities off
	gw.RegisterPlugin(limited)

	_, err := gw.Spawn(ctx, &models.AgentBrief{AgentID: "a1"})
	require.NoError(t, err)

	_, err = gw.Pause(ctx, "a1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support pause")
	assert.Zero(t, limited.pauses)

	_, err = gw.RequestCheckpoint(ctx, "a1", "dec-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support checkpoints")
	assert.Zero(t, limited.checkpoints)

	err = gw.UpdateBrief(ctx, "a1", map[string]any{"role": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support brief updates")

	err = gw.InjectContext(ctx, "a1", &models.ContextInjection{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support context injection")

	_, err = gw.Resume(ctx, &models.SerializedAgentState{AgentID: "a1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support resume")
}

func TestGateway_ForwardsToPlugin(t *testing.T) {
	ctx := context.Background()
	gw := New(InProcessPluginName, nil)
	inproc := NewInProcessPlugin(nil)
	gw.RegisterPlugin(inproc)

	_, err := gw.Spawn(ctx, testBrief("a1"))
	require.NoError(t, err)

	require.NoError(t, gw.InjectContext(ctx, "a1", &models.ContextInjection{Content: "{}", SnapshotVersion: 3}))
	require.Len(t, inproc.Injections("a1"), 1)

	res := &models.Resolution{Type: models.DecisionKindToolApproval, Action: models.ResolutionApprove}
	require.NoError(t, gw.ResolveDecision(ctx, "a1", "dec-1", res))
	require.Len(t, inproc.Resolutions("a1"), 1)

	require.NoError(t, gw.UpdateBrief(ctx, "a1", map[string]any{"role": "tester"}))
	require.Len(t, inproc.BriefPatches("a1"), 1)

	state, err := gw.RequestCheckpoint(ctx, "a1", "dec-2")
	require.NoError(t, err)
	assert.Equal(t, models.SerializedByDecision, state.SerializedBy)

	t.Run("unknown agent", func(t *testing.T) {
		err := gw.InjectContext(ctx, "ghost", &models.ContextInjection{})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("status overrides", func(t *testing.T) {
		assert.True(t, gw.SetStatus("a1", models.AgentWaitingOnHuman))
		status, _ := gw.AgentStatus("a1")
		assert.Equal(t, models.AgentWaitingOnHuman, status)
		assert.False(t, gw.SetStatus("ghost", models.AgentRunning))
	})
}
