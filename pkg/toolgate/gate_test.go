package toolgate

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/control"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/trust"
	"github.com/steward-io/steward/test/util"
)

type fakeDirectory struct {
	mu       sync.Mutex
	statuses map[string]string
}

func (d *fakeDirectory) AgentStatus(agentID string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	status, ok := d.statuses[agentID]
	return status, ok
}

type fakeTicks struct{ tick int64 }

func (f *fakeTicks) Current() int64 { return f.tick }

type broadcastMsg struct {
	kind    string
	payload any
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	msgs []broadcastMsg
}

func (b *fakeBroadcaster) Broadcast(messageType string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.msgs = append(b.msgs, broadcastMsg{kind: messageType, payload: payload})
}

func (b *fakeBroadcaster) ofKind(kind string) []broadcastMsg {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []broadcastMsg
	for _, m := range b.msgs {
		if m.kind == kind {
			out = append(out, m)
		}
	}
	return out
}

type fakeForwarder struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeForwarder) ResolveDecision(_ context.Context, agentID, decisionID string, _ *models.Resolution) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, agentID+"/"+decisionID)
	return nil
}

type gateFixture struct {
	gate      *Gate
	queue     *decision.Queue
	resolver  *Resolver
	engine    *trust.Engine
	store     *store.Store
	agents    *fakeDirectory
	mode      *control.State
	cast      *fakeBroadcaster
	forwarder *fakeForwarder
	ticks     *fakeTicks
}

func newGateFixture(t *testing.T, mode models.ControlMode) *gateFixture {
	t.Helper()
	st := store.New(util.SetupTestDatabase(t))
	q := decision.NewQueue(decision.Policy{})
	engine := trust.NewEngine(trust.DefaultConfig(), nil)
	agents := &fakeDirectory{statuses: map[string]string{"a1": models.AgentRunning}}
	modeState := control.NewState(mode)
	cast := &fakeBroadcaster{}
	fwd := &fakeForwarder{}
	ticks := &fakeTicks{tick: 7}
	resolver := NewResolver(q, st, engine, ticks, cast, fwd)
	gate := NewGate(q, resolver, agents, modeState, engine, ticks, nil)
	q.OnResolution(gate.ObserveResolution)
	engine.RegisterAgent("a1", 0)
	return &gateFixture{
		gate: gate, queue: q, resolver: resolver, engine: engine, store: st,
		agents: agents, mode: modeState, cast: cast, forwarder: fwd, ticks: ticks,
	}
}

func TestGate_AdaptiveAutoApprove(t *testing.T) {
	fx := newGateFixture(t, models.ModeAdaptive)
	fx.engine.Hydrate("a1", 70, nil, 0)

	res, err := fx.gate.RequestApproval(context.Background(), "a1", "Write", json.RawMessage(`{"path":"x"}`), "tu-1")
	require.NoError(t, err)
	assert.True(t, res.AutoResolved)
	assert.False(t, res.TimedOut)
	assert.True(t, res.Approved())
	assert.Equal(t, models.ResolutionApprove, res.Resolution.Action)
	assert.Equal(t, "Auto-approved by adaptive mode", res.Resolution.Rationale)

	// No trust delta on auto-resolutions.
	assert.Equal(t, 70, fx.engine.GetScore("a1"))
	assert.Empty(t, fx.cast.ofKind(models.WSTypeTrustUpdate))

	// The decision is queryable and terminal.
	item, ok := fx.queue.Get(res.DecisionID)
	require.True(t, ok)
	assert.True(t, item.Terminal())
	assert.Equal(t, models.SeverityMedium, item.Event.Severity)
	assert.Equal(t, models.BlastMedium, item.Event.BlastRadius)

	// Audit carries the zero-delta outcome record.
	entries, err := fx.store.ListAuditLog(context.Background(), "trust", "a1")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "trust_outcome", entries[0].Action)
	assert.Equal(t, true, entries[0].Details["autoResolved"])
	assert.Equal(t, float64(0), entries[0].Details["effectiveDelta"])

	// Observers still hear about the resolution, and the agent's plugin too.
	assert.Len(t, fx.cast.ofKind(models.WSTypeDecisionResolved), 1)
	assert.Len(t, fx.forwarder.calls, 1)

	stats := fx.gate.GetStats()
	assert.Equal(t, 1, stats.Requested)
	assert.Equal(t, 1, stats.AutoApproved)
}

func TestGate_AdaptiveLowTrustWaitsForHuman(t *testing.T) {
	fx := newGateFixture(t, models.ModeAdaptive)
	fx.engine.Hydrate("a1", 40, nil, 0)

	done := make(chan *ApprovalResult, 1)
	go func() {
		res, err := fx.gate.RequestApproval(context.Background(), "a1", "Write", json.RawMessage(`{"path":"x"}`), "")
		assert.NoError(t, err)
		done <- res
	}()

	// Wait until the decision shows up pending, then resolve as a human.
	var decisionID string
	require.Eventually(t, func() bool {
		pending := fx.queue.ListPending("a1")
		if len(pending) == 0 {
			return false
		}
		decisionID = pending[0].Event.DecisionID
		return true
	}, 2*time.Second, 5*time.Millisecond)

	_, err := fx.resolver.Resolve(context.Background(), decisionID, models.Resolution{
		Type:       models.DecisionKindToolApproval,
		Action:     models.ResolutionApprove,
		ActionKind: models.ActionKindReview,
	}, "operator")
	require.NoError(t, err)

	select {
	case res := <-done:
		require.NotNil(t, res)
		assert.False(t, res.AutoResolved)
		assert.False(t, res.TimedOut)
		assert.Equal(t, models.ResolutionApprove, res.Resolution.Action)
		assert.Equal(t, "operator", res.Resolution.ResolvedBy)
	case <-time.After(2 * time.Second):
		t.Fatal("approval did not unblock")
	}

	// human_approves_tool_call moves trust by +1 and broadcasts it.
	assert.Equal(t, 41, fx.engine.GetScore("a1"))
	updates := fx.cast.ofKind(models.WSTypeTrustUpdate)
	require.Len(t, updates, 1)
	payload := updates[0].payload.(map[string]interface{})
	assert.Equal(t, 1, payload["delta"])

	stats := fx.gate.GetStats()
	assert.Equal(t, 1, stats.Approved)
	assert.Equal(t, 0, stats.AutoApproved)
}

func TestGate_OrchestratorTimesOut(t *testing.T) {
	fx := newGateFixture(t, models.ModeOrchestrator)
	fx.engine.Hydrate("a1", 100, nil, 0)
	fx.gate.SetTimeout(50 * time.Millisecond)

	res, err := fx.gate.RequestApproval(context.Background(), "a1", "Bash", json.RawMessage(`{"command":"ls"}`), "")
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
	assert.False(t, res.Approved())
	assert.Equal(t, models.ResolutionReject, res.Resolution.Action)
	assert.Equal(t, "Timed out waiting for human approval", res.Resolution.Rationale)
	assert.Equal(t, models.ActionKindTimeout, res.Resolution.ActionKind)

	// Timeout rejections carry no trust penalty.
	assert.Equal(t, 100, fx.engine.GetScore("a1"))

	item, ok := fx.queue.Get(res.DecisionID)
	require.True(t, ok)
	assert.True(t, item.Terminal())

	stats := fx.gate.GetStats()
	assert.Equal(t, 1, stats.TimedOut)
}

func TestGate_EcosystemMode(t *testing.T) {
	t.Run("auto-approves safe bash", func(t *testing.T) {
		fx := newGateFixture(t, models.ModeEcosystem)
		res, err := fx.gate.RequestApproval(context.Background(), "a1", "Bash", json.RawMessage(`{"command":"ls -la"}`), "")
		require.NoError(t, err)
		assert.True(t, res.AutoResolved)
		assert.Equal(t, "Auto-approved by ecosystem mode", res.Resolution.Rationale)
	})

	t.Run("auto-approves medium blast tools", func(t *testing.T) {
		fx := newGateFixture(t, models.ModeEcosystem)
		res, err := fx.gate.RequestApproval(context.Background(), "a1", "Edit", json.RawMessage(`{"file":"a.go"}`), "")
		require.NoError(t, err)
		assert.True(t, res.AutoResolved)
	})

	t.Run("destructive bash still needs a human", func(t *testing.T) {
		fx := newGateFixture(t, models.ModeEcosystem)
		fx.gate.SetTimeout(50 * time.Millisecond)

		res, err := fx.gate.RequestApproval(context.Background(), "a1", "Bash", json.RawMessage(`{"command":"rm -rf build"}`), "")
		require.NoError(t, err)
		assert.True(t, res.TimedOut)
		assert.Equal(t, models.ResolutionReject, res.Resolution.Action)

		item, _ := fx.queue.Get(res.DecisionID)
		assert.Equal(t, BashDestructive, item.Event.BashRisk)
	})
}

func TestGate_RequestValidation(t *testing.T) {
	fx := newGateFixture(t, models.ModeAdaptive)

	_, err := fx.gate.RequestApproval(context.Background(), "ghost", "Write", nil, "")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = fx.gate.RequestApproval(context.Background(), "", "Write", nil, "")
	assert.True(t, store.IsValidationError(err))

	_, err = fx.gate.RequestApproval(context.Background(), "a1", "", nil, "")
	assert.True(t, store.IsValidationError(err))
}

func TestGate_AttachesLatestStatusAsReasoning(t *testing.T) {
	fx := newGateFixture(t, models.ModeAdaptive)
	fx.engine.Hydrate("a1", 90, nil, 0)

	fx.gate.ObserveStatus(&models.EventEnvelope{
		AgentID: "a1",
		Event:   models.AgentEvent{Type: models.EventTypeStatus, Status: &models.StatusEvent{Message: "about to write the migration"}},
	})
	fx.gate.ObserveStatus(&models.EventEnvelope{
		AgentID: "a1",
		Event:   models.AgentEvent{Type: models.EventTypeStatus, Status: &models.StatusEvent{Message: "writing migration 0042"}},
	})

	res, err := fx.gate.RequestApproval(context.Background(), "a1", "Write", json.RawMessage(`{"path":"0042.sql"}`), "")
	require.NoError(t, err)

	item, ok := fx.queue.Get(res.DecisionID)
	require.True(t, ok)
	assert.Equal(t, "writing migration 0042", item.Event.Reasoning)
}

func TestGate_ApproveAlwaysGrant(t *testing.T) {
	fx := newGateFixture(t, models.ModeOrchestrator)

	done := make(chan *ApprovalResult, 1)
	go func() {
		res, err := fx.gate.RequestApproval(context.Background(), "a1", "Write", json.RawMessage(`{"path":"x"}`), "")
		assert.NoError(t, err)
		done <- res
	}()

	var decisionID string
	require.Eventually(t, func() bool {
		pending := fx.queue.ListPending("a1")
		if len(pending) == 0 {
			return false
		}
		decisionID = pending[0].Event.DecisionID
		return true
	}, 2*time.Second, 5*time.Millisecond)

	_, err := fx.resolver.Resolve(context.Background(), decisionID, models.Resolution{
		Type:       models.DecisionKindToolApproval,
		Action:     models.ResolutionApproveAlways,
		ActionKind: models.ActionKindReview,
	}, "operator")
	require.NoError(t, err)
	res := <-done
	require.NotNil(t, res)
	assert.True(t, res.Approved())

	// approve_always lands +3 and grants a standing approval for Write.
	assert.Equal(t, 53, fx.engine.GetScore("a1"))

	res, err = fx.gate.RequestApproval(context.Background(), "a1", "Write", json.RawMessage(`{"path":"y"}`), "")
	require.NoError(t, err)
	assert.True(t, res.AutoResolved)
	assert.Equal(t, "Auto-approved by standing approve-always grant", res.Resolution.Rationale)

	// Other tools are not covered by the grant.
	fx.gate.SetTimeout(50 * time.Millisecond)
	res, err = fx.gate.RequestApproval(context.Background(), "a1", "Bash", json.RawMessage(`{"command":"ls"}`), "")
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
}

type orderCheckPublisher struct {
	t     *testing.T
	queue *decision.Queue
	seen  int
}

func (p *orderCheckPublisher) Publish(env *models.EventEnvelope) {
	p.seen++
	require.NotNil(p.t, env.Event.Decision)
	_, ok := p.queue.Get(env.Event.Decision.DecisionID)
	assert.True(p.t, ok, "decision must be queued before it is published")
}

func TestGate_EnqueuesBeforePublishing(t *testing.T) {
	fx := newGateFixture(t, models.ModeEcosystem)
	pub := &orderCheckPublisher{t: t, queue: fx.queue}
	fx.gate.bus = pub

	_, err := fx.gate.RequestApproval(context.Background(), "a1", "Read", json.RawMessage(`{"path":"a.go"}`), "")
	require.NoError(t, err)
	assert.Equal(t, 1, pub.seen)
}

func TestBashClassifier(t *testing.T) {
	cases := []struct {
		command string
		want    string
	}{
		{"ls -la", BashSafe},
		{"git status", BashSafe},
		{"git status && rm -rf node_modules", BashSafe}, // only the first command counts
		{"cat go.mod; rm go.sum", BashSafe},
		{"echo hi | sh", BashSafe},
		{"FOO=1 BAR=2 ls", BashSafe},
		{"rm -rf /", BashDestructive},
		{"sudo apt install thing", BashDestructive},
		{"dd if=/dev/zero of=/dev/sda", BashDestructive},
		{"git push --force origin main", BashDestructive},
		{"mv a b", BashDestructive},
		{"somebinary --flag", BashDestructive}, // unknown first token
		{"", BashDestructive},
		{"   ", BashDestructive},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyBashCommand(tc.command), "command %q", tc.command)
	}

	assert.Equal(t, BashDestructive, bashRiskFromArgs(json.RawMessage(`{"no":"command"}`)))
	assert.Equal(t, BashDestructive, bashRiskFromArgs(json.RawMessage(`not json`)))
	assert.Equal(t, BashSafe, bashRiskFromArgs(json.RawMessage(`{"command":"go test ./..."}`)))
}

func TestRequiredTrustBuckets(t *testing.T) {
	assert.Equal(t, 30, requiredTrust(models.BlastTrivial, ""))
	assert.Equal(t, 30, requiredTrust(models.BlastSmall, ""))
	assert.Equal(t, 50, requiredTrust(models.BlastMedium, ""))
	assert.Equal(t, 60, requiredTrust(models.BlastLarge, BashSafe))
	assert.Equal(t, 80, requiredTrust(models.BlastLarge, BashDestructive))
	assert.Equal(t, 80, requiredTrust("", ""))
}

func TestGate_HumanWinsTimeoutRace(t *testing.T) {
	// A human resolution that lands during the timeout window must be the
	// answer the agent sees, not the synthetic rejection.
	fx := newGateFixture(t, models.ModeOrchestrator)
	fx.gate.SetTimeout(2 * time.Second)

	go func() {
		var decisionID string
		if !assert.Eventually(t, func() bool {
			pending := fx.queue.ListPending("a1")
			if len(pending) == 0 {
				return false
			}
			decisionID = pending[0].Event.DecisionID
			return true
		}, time.Second, time.Millisecond) {
			return
		}
		fx.resolver.Resolve(context.Background(), decisionID, models.Resolution{
			Type:       models.DecisionKindToolApproval,
			Action:     models.ResolutionApprove,
			ActionKind: models.ActionKindReview,
		}, "operator")
	}()

	res, err := fx.gate.RequestApproval(context.Background(), "a1", "Write", json.RawMessage(`{"path":"x"}`), "")
	require.NoError(t, err)
	assert.Equal(t, models.ResolutionApprove, res.Resolution.Action)
	assert.False(t, res.TimedOut)
}

func TestResolver_OptionDecisions(t *testing.T) {
	fx := newGateFixture(t, models.ModeOrchestrator)
	ctx := context.Background()

	// Materialize an artifact so resolution context picks up its kind.
	_, err := fx.store.UpsertArtifact(ctx, &models.ArtifactEvent{
		ArtifactID: "art-1", Name: "Auth design", Kind: "design_doc",
		Workstream: "ws-auth", Status: "draft",
	}, 0, "a1")
	require.NoError(t, err)

	optionDec := func(id, recommended string) models.DecisionEvent {
		return models.DecisionEvent{
			DecisionID: id, AgentID: "a1", Kind: models.DecisionKindOption,
			Title: "Pick a storage layout", Severity: models.SeverityMedium,
			Options: []models.DecisionOption{
				{ID: "opt-a", Label: "Normalize"},
				{ID: "opt-b", Label: "Denormalize"},
			},
			RecommendedOptionID: recommended,
			AffectedArtifactIDs: []string{"art-1", "no-such-artifact"},
		}
	}

	t.Run("choosing the recommendation earns trust in the touched domains", func(t *testing.T) {
		_, err := fx.queue.Enqueue(optionDec("dec-rec", "opt-b"), 1)
		require.NoError(t, err)

		item, err := fx.resolver.Resolve(ctx, "dec-rec", models.Resolution{
			Type:           models.DecisionKindOption,
			ChosenOptionID: "opt-b",
			ActionKind:     models.ActionKindReview,
		}, "operator")
		require.NoError(t, err)
		assert.Equal(t, decision.StatusResolved, item.Status)

		assert.Equal(t, 52, fx.engine.GetScore("a1"))
		domain, ok := fx.engine.GetDomainScore("a1", "design_doc")
		assert.True(t, ok)
		assert.Equal(t, 52, domain)

		entries, err := fx.store.ListAuditLog(ctx, "trust", "a1")
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Equal(t, string(trust.OutcomeHumanApprovesRecommended), entries[0].Details["outcome"])
		assert.Equal(t, float64(2), entries[0].Details["effectiveDelta"])
		assert.NotNil(t, entries[0].Details["domainOutcomes"])
	})

	t.Run("overriding the recommendation costs trust", func(t *testing.T) {
		_, err := fx.queue.Enqueue(optionDec("dec-override", "opt-b"), 2)
		require.NoError(t, err)

		_, err = fx.resolver.Resolve(ctx, "dec-override", models.Resolution{
			Type:           models.DecisionKindOption,
			ChosenOptionID: "opt-a",
			ActionKind:     models.ActionKindReview,
		}, "operator")
		require.NoError(t, err)
		assert.Equal(t, 49, fx.engine.GetScore("a1"))
	})

	t.Run("no recommendation means no trust movement", func(t *testing.T) {
		_, err := fx.queue.Enqueue(optionDec("dec-neutral", ""), 3)
		require.NoError(t, err)

		before := fx.engine.GetScore("a1")
		_, err = fx.resolver.Resolve(ctx, "dec-neutral", models.Resolution{
			Type:           models.DecisionKindOption,
			ChosenOptionID: "opt-a",
			ActionKind:     models.ActionKindReview,
		}, "operator")
		require.NoError(t, err)
		assert.Equal(t, before, fx.engine.GetScore("a1"))
	})
}

func TestResolver_Errors(t *testing.T) {
	fx := newGateFixture(t, models.ModeOrchestrator)
	ctx := context.Background()

	_, err := fx.resolver.Resolve(ctx, "missing", models.Resolution{
		Type: models.DecisionKindToolApproval, Action: models.ResolutionApprove,
	}, "operator")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = fx.resolver.Resolve(ctx, "whatever", models.Resolution{Type: "bogus"}, "operator")
	assert.True(t, store.IsValidationError(err))

	_, err = fx.queue.Enqueue(models.DecisionEvent{
		DecisionID: "dec-1", AgentID: "a1", Kind: models.DecisionKindToolApproval, ToolName: "Write",
	}, 1)
	require.NoError(t, err)

	_, err = fx.resolver.Resolve(ctx, "dec-1", models.Resolution{
		Type: models.DecisionKindToolApproval, Action: models.ResolutionReject,
	}, "operator")
	require.NoError(t, err)

	_, err = fx.resolver.Resolve(ctx, "dec-1", models.Resolution{
		Type: models.DecisionKindToolApproval, Action: models.ResolutionApprove,
	}, "operator")
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestResolver_ForwarderFailureIsNonFatal(t *testing.T) {
	fx := newGateFixture(t, models.ModeOrchestrator)
	fx.forwarder.err = fmt.Errorf("adapter gone")

	_, err := fx.queue.Enqueue(models.DecisionEvent{
		DecisionID: "dec-1", AgentID: "a1", Kind: models.DecisionKindToolApproval, ToolName: "Write",
	}, 1)
	require.NoError(t, err)

	_, err = fx.resolver.Resolve(context.Background(), "dec-1", models.Resolution{
		Type: models.DecisionKindToolApproval, Action: models.ResolutionApprove, ActionKind: models.ActionKindReview,
	}, "operator")
	require.NoError(t, err)

	// The resolution still lands and is still broadcast.
	item, _ := fx.queue.Get("dec-1")
	assert.True(t, item.Terminal())
	assert.Len(t, fx.cast.ofKind(models.WSTypeDecisionResolved), 1)
}
