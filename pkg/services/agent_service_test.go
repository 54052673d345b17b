package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/bus"
	"github.com/steward-io/steward/pkg/checkpoint"
	"github.com/steward-io/steward/pkg/control"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/gateway"
	"github.com/steward-io/steward/pkg/injection"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/tick"
	"github.com/steward-io/steward/pkg/trust"
	"github.com/steward-io/steward/test/util"
)

type fakeNotifier struct {
	mu    sync.Mutex
	count int
}

func (f *fakeNotifier) BroadcastStateSync() {
	f.mu.Lock()
	f.count++
	f.mu.Unlock()
}

func (f *fakeNotifier) pushes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

type agentEnv struct {
	svc    *AgentService
	gw     *gateway.Gateway
	plugin *gateway.InProcessPlugin
	store  *store.Store
	engine *trust.Engine
	queue  *decision.Queue
	sched  *injection.Scheduler
	ticks  *tick.Service
	checks *checkpoint.Service
}

func newAgentEnv(t *testing.T) *agentEnv {
	t.Helper()

	client := util.SetupTestDatabase(t)
	st := store.New(client)
	eventBus := bus.New()

	ticks, err := tick.NewService(tick.ModeManual, 0)
	require.NoError(t, err)

	engine := trust.NewEngine(trust.DefaultConfig(), nil)
	queue := decision.NewQueue(decision.Policy{})

	gw := gateway.New(gateway.InProcessPluginName, eventBus)
	plugin := gateway.NewInProcessPlugin(nil)
	gw.RegisterPlugin(plugin)

	checks := checkpoint.NewService(gw, st, checkpoint.Options{})
	modes := control.NewState(models.ModeOrchestrator)
	sched := injection.NewScheduler(gw, NewSnapshotSource(st, queue), modes)

	svc := NewAgentService(gw, st, engine, sched, queue, checks, ticks)
	svc.SetSnapshots(NewSnapshotSource(st, queue))

	return &agentEnv{
		svc:    svc,
		gw:     gw,
		plugin: plugin,
		store:  st,
		engine: engine,
		queue:  queue,
		sched:  sched,
		ticks:  ticks,
		checks: checks,
	}
}

func testBrief(workstream string) models.AgentBrief {
	return models.AgentBrief{
		Role:         "implementer",
		Workstream:   workstream,
		AllowedTools: []string{"Read", "Grep"},
	}
}

func TestAgentService_SpawnRegistersEverywhere(t *testing.T) {
	ctx := context.Background()
	env := newAgentEnv(t)
	notifier := &fakeNotifier{}
	env.svc.SetStateNotifier(notifier)

	handle, err := env.svc.Spawn(ctx, testBrief("ws-core"))
	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.Equal(t, models.AgentRunning, handle.Status)

	rec, err := env.store.GetAgent(ctx, handle.AgentID)
	require.NoError(t, err)
	assert.Equal(t, "implementer", rec.Role)
	assert.Equal(t, "ws-core", rec.Workstream)

	assert.Equal(t, 50, env.engine.GetScore(handle.AgentID))

	_, tracked := env.sched.GetState(handle.AgentID)
	assert.True(t, tracked)

	ws, ok := env.svc.WorkstreamOf(handle.AgentID)
	require.True(t, ok)
	assert.Equal(t, "ws-core", ws)

	assert.Equal(t, 1, notifier.pushes())
}

func TestAgentService_SpawnAttachesKnowledgeSnapshot(t *testing.T) {
	ctx := context.Background()
	env := newAgentEnv(t)

	handle, err := env.svc.Spawn(ctx, testBrief("ws-core"))
	require.NoError(t, err)

	// The snapshot travels inside the brief handed to the plugin; pausing
	// serializes that brief back out.
	cp, err := env.svc.Pause(ctx, handle.AgentID)
	require.NoError(t, err)
	require.NotNil(t, cp)
	require.NotNil(t, cp.State.Brief)
	assert.NotNil(t, cp.State.Brief.KnowledgeSnapshot)
}

func TestAgentService_SpawnRejectsInvalidBrief(t *testing.T) {
	ctx := context.Background()
	env := newAgentEnv(t)

	_, err := env.svc.Spawn(ctx, models.AgentBrief{Role: "implementer"})
	var validErr *store.ValidationError
	require.ErrorAs(t, err, &validErr)
	assert.Empty(t, env.gw.ListHandles())
}

func TestAgentService_PauseResumeRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newAgentEnv(t)

	handle, err := env.svc.Spawn(ctx, testBrief("ws-core"))
	require.NoError(t, err)
	agentID := handle.AgentID

	cp, err := env.svc.Pause(ctx, agentID)
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.Equal(t, models.SerializedByPause, string(cp.SerializedBy))

	rec, err := env.store.GetAgent(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, models.AgentPaused, string(rec.Status))

	status, live := env.gw.AgentStatus(agentID)
	require.True(t, live)
	assert.Equal(t, models.AgentPaused, status)

	resumed, err := env.svc.Resume(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, agentID, resumed.AgentID)
	assert.Equal(t, models.AgentRunning, resumed.Status)

	rec, err = env.store.GetAgent(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, models.AgentRunning, string(rec.Status))
	assert.True(t, env.plugin.HasSession(agentID))
}

func TestAgentService_ResumeWithoutCheckpoint(t *testing.T) {
	ctx := context.Background()
	env := newAgentEnv(t)

	_, err := env.svc.Resume(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAgentService_KillElevatesOrphanedDecisions(t *testing.T) {
	ctx := context.Background()
	env := newAgentEnv(t)

	handle, err := env.svc.Spawn(ctx, testBrief("ws-core"))
	require.NoError(t, err)
	agentID := handle.AgentID

	enqueued, err := env.queue.Enqueue(models.DecisionEvent{
		DecisionID: "dec-1",
		AgentID:    agentID,
		Kind:       models.DecisionKindOption,
		Severity:   models.SeverityHigh,
		Options:    []models.DecisionOption{{ID: "opt-1", Label: "Proceed"}},
	}, env.ticks.Current())
	require.NoError(t, err)
	require.True(t, enqueued)

	result, err := env.svc.Kill(ctx, agentID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.CleanShutdown)

	rec, err := env.store.GetAgent(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, models.AgentCompleted, string(rec.Status))

	item, ok := env.queue.Get("dec-1")
	require.True(t, ok)
	assert.Equal(t, decision.StatusTriage, item.Status)
	assert.Equal(t, 140, item.Priority)

	assert.Empty(t, env.gw.ListHandles())
	_, ok = env.svc.WorkstreamOf(agentID)
	assert.False(t, ok)
}

func TestAgentService_PatchBrief(t *testing.T) {
	ctx := context.Background()
	env := newAgentEnv(t)

	handle, err := env.svc.Spawn(ctx, testBrief("ws-core"))
	require.NoError(t, err)
	agentID := handle.AgentID

	t.Run("empty patch rejected", func(t *testing.T) {
		_, _, err := env.svc.PatchBrief(ctx, agentID, map[string]any{})
		var validErr *store.ValidationError
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, _, err := env.svc.PatchBrief(ctx, "ghost", map[string]any{"role": "x"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("merge, forward, and required injection", func(t *testing.T) {
		merged, injected, err := env.svc.PatchBrief(ctx, agentID, map[string]any{
			"role":         "reviewer",
			"allowedTools": []any{"Read"},
		})
		require.NoError(t, err)
		assert.Equal(t, "reviewer", merged.Role)
		assert.Equal(t, "ws-core", merged.Workstream)
		assert.Equal(t, []string{"Read"}, merged.AllowedTools)
		assert.True(t, injected)

		rec, err := env.store.GetAgent(ctx, agentID)
		require.NoError(t, err)
		assert.Equal(t, "reviewer", rec.Role)

		patches := env.plugin.BriefPatches(agentID)
		require.Len(t, patches, 1)
		assert.Equal(t, "reviewer", patches[0]["role"])

		injections := env.plugin.Injections(agentID)
		require.Len(t, injections, 1)
		assert.Equal(t, models.PriorityRequired, injections[0].Priority)
	})
}

func TestAgentService_RestoreFromStore(t *testing.T) {
	ctx := context.Background()
	env := newAgentEnv(t)

	runningBrief := testBrief("ws-core")
	runningBrief.AgentID = "a-running"
	_, err := env.store.RegisterAgent(ctx, "a-running", gateway.InProcessPluginName, "", runningBrief)
	require.NoError(t, err)

	pausedBrief := testBrief("ws-docs")
	pausedBrief.AgentID = "a-paused"
	_, err = env.store.RegisterAgent(ctx, "a-paused", gateway.InProcessPluginName, "", pausedBrief)
	require.NoError(t, err)
	_, err = env.store.UpdateAgentStatus(ctx, "a-paused", models.AgentPaused)
	require.NoError(t, err)

	_, err = env.store.SetTrustScore(ctx, "a-running", 72, "seed")
	require.NoError(t, err)

	// One stored event so the reconstructed checkpoint carries its sequence.
	stored, err := env.store.AppendEvent(ctx, &models.EventEnvelope{
		SourceEventID:  "ev-1",
		SourceSequence: 5,
		RunID:          "run-1",
		AgentID:        "a-running",
		Event: models.AgentEvent{
			Type:   models.EventTypeStatus,
			Status: &models.StatusEvent{Message: "working"},
		},
	})
	require.NoError(t, err)
	require.True(t, stored)

	require.NoError(t, env.svc.RestoreFromStore(ctx))

	assert.Equal(t, 72, env.engine.GetScore("a-running"))

	rec, err := env.store.GetAgent(ctx, "a-running")
	require.NoError(t, err)
	assert.Equal(t, models.AgentError, string(rec.Status))

	cp, err := env.store.GetLatestCheckpoint(ctx, "a-running")
	require.NoError(t, err)
	assert.Equal(t, models.SerializedByCrashRecovery, string(cp.SerializedBy))
	assert.Equal(t, int64(5), cp.State.LastSequence)
	require.NotNil(t, cp.State.Brief)
	assert.Equal(t, "ws-core", cp.State.Brief.Workstream)

	rec, err = env.store.GetAgent(ctx, "a-paused")
	require.NoError(t, err)
	assert.Equal(t, models.AgentPaused, string(rec.Status))
	_, err = env.store.GetLatestCheckpoint(ctx, "a-paused")
	require.ErrorIs(t, err, store.ErrNotFound)

	ws, ok := env.svc.WorkstreamOf("a-paused")
	require.True(t, ok)
	assert.Equal(t, "ws-docs", ws)
}

func TestAgentService_BrakeControllerRoster(t *testing.T) {
	ctx := context.Background()
	env := newAgentEnv(t)

	h1, err := env.svc.Spawn(ctx, testBrief("ws-core"))
	require.NoError(t, err)
	h2, err := env.svc.Spawn(ctx, testBrief("ws-docs"))
	require.NoError(t, err)

	refs := env.svc.ActiveAgents()
	require.Len(t, refs, 2)

	byID := map[string]string{}
	for _, ref := range refs {
		byID[ref.AgentID] = ref.Workstream
	}
	assert.Equal(t, "ws-core", byID[h1.AgentID])
	assert.Equal(t, "ws-docs", byID[h2.AgentID])

	_, err = env.svc.Kill(ctx, h2.AgentID)
	require.NoError(t, err)
	refs = env.svc.ActiveAgents()
	require.Len(t, refs, 1)
	assert.Equal(t, h1.AgentID, refs[0].AgentID)
}

func TestMergeBrief(t *testing.T) {
	current := models.AgentBrief{
		Role:                "implementer",
		Workstream:          "ws-core",
		ReadableWorkstreams: []string{"ws-docs"},
		AllowedTools:        []string{"Read", "Grep"},
	}

	merged, err := mergeBrief(current, map[string]any{
		"role":         "reviewer",
		"allowedTools": []any{"Read"},
	})
	require.NoError(t, err)

	assert.Equal(t, "reviewer", merged.Role)
	assert.Equal(t, "ws-core", merged.Workstream)
	assert.Equal(t, []string{"ws-docs"}, merged.ReadableWorkstreams)
	// Slices replace wholesale rather than appending.
	assert.Equal(t, []string{"Read"}, merged.AllowedTools)

	_, err = mergeBrief(current, map[string]any{"workstream": 42})
	require.Error(t, err)
}
