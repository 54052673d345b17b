package brake

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

type fakeController struct {
	mu      sync.Mutex
	agents  []AgentRef
	paused  []string
	resumed []string
	killed  []string
	failFor map[string]error
}

func (f *fakeController) ActiveAgents() []AgentRef { return f.agents }

func (f *fakeController) PauseAgent(ctx context.Context, agentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[agentID]; err != nil {
		return err
	}
	f.paused = append(f.paused, agentID)
	return nil
}

func (f *fakeController) ResumeAgent(ctx context.Context, agentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumed = append(f.resumed, agentID)
	return nil
}

func (f *fakeController) KillAgent(ctx context.Context, agentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[agentID]; err != nil {
		return err
	}
	f.killed = append(f.killed, agentID)
	return nil
}

type fakeSuspender struct {
	mu        sync.Mutex
	suspended []string
	resumed   []string
}

func (f *fakeSuspender) SuspendAgentDecisions(agentID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suspended = append(f.suspended, agentID)
	return 1
}

func (f *fakeSuspender) ResumeAgentDecisions(agentID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumed = append(f.resumed, agentID)
	return 1
}

type fakeTicks struct{ tick int64 }

func (f *fakeTicks) Current() int64 { return f.tick }

type fakeBroadcaster struct {
	mu       sync.Mutex
	messages []broadcastMsg
}

type broadcastMsg struct {
	messageType string
	payload     map[string]any
}

func (f *fakeBroadcaster) Broadcast(messageType string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, broadcastMsg{messageType, payload.(map[string]any)})
}

func (f *fakeBroadcaster) engagedFlags() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []bool
	for _, m := range f.messages {
		if m.messageType == models.WSTypeBrake {
			out = append(out, m.payload["engaged"].(bool))
		}
	}
	return out
}

func testRoster() []AgentRef {
	return []AgentRef{
		{AgentID: "a1", Workstream: "ws-auth"},
		{AgentID: "a2", Workstream: "ws-auth"},
		{AgentID: "a3", Workstream: "ws-billing"},
	}
}

func newTestService(ctrl *fakeController) (*Service, *fakeSuspender, *fakeBroadcaster, *fakeTicks) {
	susp := &fakeSuspender{}
	bc := &fakeBroadcaster{}
	ticks := &fakeTicks{tick: 5}
	return NewService(ctrl, susp, ticks, bc), susp, bc, ticks
}

func TestService_EngageScopes(t *testing.T) {
	ctx := context.Background()

	t.Run("scope all pauses everyone", func(t *testing.T) {
		ctrl := &fakeController{agents: testRoster()}
		svc, susp, bc, _ := newTestService(ctrl)

		brake, err := svc.Engage(ctx, Request{Scope: ScopeAll, Behavior: BehaviorPause, Reason: "runaway spend"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a1", "a2", "a3"}, brake.AffectedAgentIDs)
		assert.ElementsMatch(t, []string{"a1", "a2", "a3"}, ctrl.paused)
		assert.ElementsMatch(t, []string{"a1", "a2", "a3"}, susp.suspended)
		assert.Equal(t, ReleaseManual, brake.ReleaseCondition)
		assert.Equal(t, int64(5), brake.EngagedAtTick)
		assert.Equal(t, []bool{true}, bc.engagedFlags())
		assert.Len(t, svc.Active(), 1)
	})

	t.Run("scope agent pauses one", func(t *testing.T) {
		ctrl := &fakeController{agents: testRoster()}
		svc, susp, _, _ := newTestService(ctrl)

		brake, err := svc.Engage(ctx, Request{Scope: ScopeAgent, AgentID: "a2", Behavior: BehaviorPause})
		require.NoError(t, err)
		assert.Equal(t, []string{"a2"}, brake.AffectedAgentIDs)
		assert.Equal(t, []string{"a2"}, ctrl.paused)
		assert.Equal(t, []string{"a2"}, susp.suspended)
	})

	t.Run("scope workstream pauses the group", func(t *testing.T) {
		ctrl := &fakeController{agents: testRoster()}
		svc, _, _, _ := newTestService(ctrl)

		brake, err := svc.Engage(ctx, Request{Scope: ScopeWorkstream, Workstream: "ws-auth", Behavior: BehaviorPause})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a1", "a2"}, brake.AffectedAgentIDs)
	})

	t.Run("unknown agent engages with nothing affected", func(t *testing.T) {
		ctrl := &fakeController{agents: testRoster()}
		svc, _, _, _ := newTestService(ctrl)

		brake, err := svc.Engage(ctx, Request{Scope: ScopeAgent, AgentID: "ghost", Behavior: BehaviorPause})
		require.NoError(t, err)
		assert.Empty(t, brake.AffectedAgentIDs)
	})

	t.Run("pause failure skips the agent", func(t *testing.T) {
		ctrl := &fakeController{agents: testRoster(), failFor: map[string]error{"a2": errors.New("adapter down")}}
		svc, susp, _, _ := newTestService(ctrl)

		brake, err := svc.Engage(ctx, Request{Scope: ScopeAll, Behavior: BehaviorPause})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a1", "a3"}, brake.AffectedAgentIDs)
		assert.NotContains(t, susp.suspended, "a2")
	})
}

func TestService_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(&fakeController{})
	ctx := context.Background()

	cases := []struct {
		name string
		req  Request
	}{
		{"unknown scope", Request{Scope: "galaxy", Behavior: BehaviorPause}},
		{"agent scope without id", Request{Scope: ScopeAgent, Behavior: BehaviorPause}},
		{"workstream scope without name", Request{Scope: ScopeWorkstream, Behavior: BehaviorPause}},
		{"unknown behavior", Request{Scope: ScopeAll, Behavior: "hibernate"}},
		{"timer without ticks", Request{Scope: ScopeAll, Behavior: BehaviorPause, ReleaseCondition: ReleaseTimer}},
		{"decision without id", Request{Scope: ScopeAll, Behavior: BehaviorPause, ReleaseCondition: ReleaseDecision}},
		{"unknown release condition", Request{Scope: ScopeAll, Behavior: BehaviorPause, ReleaseCondition: "eventually"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Engage(ctx, tc.req)
			require.Error(t, err)
			assert.True(t, store.IsValidationError(err))
		})
	}
}

func TestService_ManualRelease(t *testing.T) {
	ctx := context.Background()
	ctrl := &fakeController{agents: testRoster()}
	svc, susp, bc, _ := newTestService(ctrl)

	brake, err := svc.Engage(ctx, Request{Scope: ScopeWorkstream, Workstream: "ws-auth", Behavior: BehaviorPause})
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Release(ctx, "no-such-brake")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("release resumes agents and decisions", func(t *testing.T) {
		released, err := svc.Release(ctx, brake.ID)
		require.NoError(t, err)
		require.Len(t, released, 1)
		assert.ElementsMatch(t, []string{"a1", "a2"}, ctrl.resumed)
		assert.ElementsMatch(t, []string{"a1", "a2"}, susp.resumed)
		assert.Empty(t, svc.Active())
		assert.Equal(t, []bool{true, false}, bc.engagedFlags())
	})

	t.Run("empty id releases everything", func(t *testing.T) {
		_, err := svc.Engage(ctx, Request{Scope: ScopeAgent, AgentID: "a1", Behavior: BehaviorPause})
		require.NoError(t, err)
		_, err = svc.Engage(ctx, Request{Scope: ScopeAgent, AgentID: "a3", Behavior: BehaviorPause})
		require.NoError(t, err)

		released, err := svc.Release(ctx, "")
		require.NoError(t, err)
		assert.Len(t, released, 2)
		assert.Empty(t, svc.Active())
	})
}

func TestService_KillBehavior(t *testing.T) {
	ctx := context.Background()
	ctrl := &fakeController{agents: testRoster()}
	svc, susp, _, _ := newTestService(ctrl)

	brake, err := svc.Engage(ctx, Request{Scope: ScopeAgent, AgentID: "a1", Behavior: BehaviorKill})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, ctrl.killed)
	assert.Empty(t, susp.suspended)

	// Releasing a kill brake does not resurrect anyone.
	_, err = svc.Release(ctx, brake.ID)
	require.NoError(t, err)
	assert.Empty(t, ctrl.resumed)
	assert.Empty(t, susp.resumed)
}

func TestService_TimerRelease(t *testing.T) {
	ctx := context.Background()
	ctrl := &fakeController{agents: testRoster()}
	svc, _, _, ticks := newTestService(ctrl)
	ticks.tick = 5

	brake, err := svc.Engage(ctx, Request{
		Scope:            ScopeAgent,
		AgentID:          "a1",
		Behavior:         BehaviorPause,
		ReleaseCondition: ReleaseTimer,
		TimerTicks:       3,
	})
	require.NoError(t, err)
	require.NotNil(t, brake.ReleaseAtTick)
	assert.Equal(t, int64(8), *brake.ReleaseAtTick)

	svc.OnTick(7)
	assert.Len(t, svc.Active(), 1)

	svc.OnTick(8)
	assert.Empty(t, svc.Active())
	assert.Equal(t, []string{"a1"}, ctrl.resumed)
}

func TestService_DecisionRelease(t *testing.T) {
	ctx := context.Background()
	ctrl := &fakeController{agents: testRoster()}
	svc, _, _, _ := newTestService(ctrl)

	_, err := svc.Engage(ctx, Request{
		Scope:            ScopeAll,
		Behavior:         BehaviorPause,
		ReleaseCondition: ReleaseDecision,
		DecisionID:       "dec-1",
	})
	require.NoError(t, err)

	svc.OnDecisionResolved("dec-other")
	assert.Len(t, svc.Active(), 1)

	svc.OnDecisionResolved("dec-1")
	assert.Empty(t, svc.Active())
	assert.ElementsMatch(t, []string{"a1", "a2", "a3"}, ctrl.resumed)
}

func TestService_ForAgent(t *testing.T) {
	ctx := context.Background()
	ctrl := &fakeController{agents: testRoster()}
	svc, _, _, _ := newTestService(ctrl)

	t.Run("workstream brake covers members only", func(t *testing.T) {
		brake, err := svc.Engage(ctx, Request{Scope: ScopeWorkstream, Workstream: "ws-auth", Behavior: BehaviorPause})
		require.NoError(t, err)

		got, ok := svc.ForAgent("a1")
		require.True(t, ok)
		assert.Equal(t, brake.ID, got.ID)
		_, ok = svc.ForAgent("a3")
		assert.False(t, ok)

		_, err = svc.Release(ctx, brake.ID)
		require.NoError(t, err)
	})

	t.Run("all brake covers agents spawned later", func(t *testing.T) {
		_, err := svc.Engage(ctx, Request{Scope: ScopeAll, Behavior: BehaviorPause})
		require.NoError(t, err)

		_, ok := svc.ForAgent("brand-new-agent")
		assert.True(t, ok)
	})
}
