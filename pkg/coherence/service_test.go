package coherence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/trust"
	"github.com/steward-io/steward/test/util"
)

type outcomeCall struct {
	agentID string
	outcome trust.Outcome
	octx    *trust.OutcomeContext
}

type fakeTrust struct {
	mu    sync.Mutex
	calls []outcomeCall
}

func (f *fakeTrust) ApplyOutcome(agentID string, outcome trust.Outcome, tick int64, octx *trust.OutcomeContext) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, outcomeCall{agentID, outcome, octx})
	return 50
}

func (f *fakeTrust) agentsFor(outcome trust.Outcome) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if c.outcome == outcome {
			out = append(out, c.agentID)
		}
	}
	return out
}

type fakeBus struct {
	mu   sync.Mutex
	envs []*models.EventEnvelope
}

func (f *fakeBus) Publish(env *models.EventEnvelope) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.envs = append(f.envs, env)
}

type fakeTicks struct{ tick int64 }

func (f *fakeTicks) Current() int64 { return f.tick }

type fixture struct {
	svc   *Service
	store *store.Store
	trust *fakeTrust
	bus   *fakeBus
	ticks *fakeTicks
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	st := store.New(util.SetupTestDatabase(t))
	tr := &fakeTrust{}
	bus := &fakeBus{}
	ticks := &fakeTicks{tick: 4}
	return &fixture{
		svc:   NewService(st, tr, ticks, bus, opts),
		store: st,
		trust: tr,
		bus:   bus,
		ticks: ticks,
	}
}

func (f *fixture) seedArtifact(t *testing.T, id, name, kind, workstream, createdBy string, sources ...string) {
	t.Helper()
	_, err := f.store.StoreArtifact(context.Background(), &models.ArtifactEvent{
		ArtifactID:        id,
		Name:              name,
		Kind:              kind,
		Workstream:        workstream,
		SourceArtifactIDs: sources,
	}, createdBy)
	require.NoError(t, err)
}

func coherenceEnvelope(agentID string, ev models.CoherenceEvent) *models.EventEnvelope {
	return &models.EventEnvelope{
		SourceEventID: "ev-" + agentID + "-" + ev.Kind,
		RunID:         "run-1",
		AgentID:       agentID,
		Event: models.AgentEvent{
			Type:      models.EventTypeCoherence,
			Coherence: &ev,
		},
	}
}

func TestService_HandleCoherenceEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.seedArtifact(t, "art-1", "login flow", "code", "ws-auth", "a1")
	f.seedArtifact(t, "art-2", "billing spec", "doc", "ws-billing", "a2")

	issue, err := f.svc.HandleCoherenceEvent(ctx, coherenceEnvelope("rev-1", models.CoherenceEvent{
		Kind:                KindContradiction,
		Summary:             "login flow contradicts the billing spec",
		Severity:            models.SeverityHigh,
		AffectedWorkstreams: []string{"ws-auth", "ws-billing"},
		AffectedArtifactIDs: []string{"art-1", "art-2"},
	}))
	require.NoError(t, err)
	assert.Equal(t, "open", string(issue.Status))
	assert.Equal(t, KindContradiction, string(issue.Kind))
	require.NotNil(t, issue.DetectedBy)
	assert.Equal(t, "rev-1", *issue.DetectedBy)
	assert.Equal(t, int64(4), issue.DetectedAtTick)

	// Both artifact creators take the hit, the reporter does not.
	debited := f.trust.agentsFor(trust.OutcomeCoherenceIssue)
	assert.ElementsMatch(t, []string{"a1", "a2"}, debited)
	for _, c := range f.trust.calls {
		assert.Equal(t, []string{"ws-auth", "ws-billing"}, c.octx.Workstreams)
	}

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := f.svc.HandleCoherenceEvent(ctx, coherenceEnvelope("rev-1", models.CoherenceEvent{
			Kind:    "drift",
			Summary: "something",
		}))
		require.Error(t, err)
		assert.True(t, store.IsValidationError(err))
	})

	t.Run("unknown severity rejected", func(t *testing.T) {
		_, err := f.svc.HandleCoherenceEvent(ctx, coherenceEnvelope("rev-1", models.CoherenceEvent{
			Kind:     KindGap,
			Summary:  "something",
			Severity: "catastrophic",
		}))
		require.Error(t, err)
		assert.True(t, store.IsValidationError(err))
	})

	t.Run("duplicate issue id surfaces", func(t *testing.T) {
		env := coherenceEnvelope("rev-1", models.CoherenceEvent{
			IssueID: issue.ID,
			Kind:    KindContradiction,
			Summary: "same finding again",
		})
		_, err := f.svc.HandleCoherenceEvent(ctx, env)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.seedArtifact(t, "art-1", "login flow", "code", "ws-auth", "a1")

	issue, err := f.svc.HandleCoherenceEvent(ctx, coherenceEnvelope("rev-1", models.CoherenceEvent{
		Kind:                KindGap,
		Summary:             "auth error paths undocumented",
		AffectedWorkstreams: []string{"ws-auth"},
		AffectedArtifactIDs: []string{"art-1"},
	}))
	require.NoError(t, err)

	resolved, err := f.svc.Resolve(ctx, issue.ID, "docs added in art-1 v2", "operator")
	require.NoError(t, err)
	assert.Equal(t, "resolved", string(resolved.Status))
	assert.Equal(t, []string{"a1"}, f.trust.agentsFor(trust.OutcomeCoherenceIssueResolved))

	_, err = f.svc.Resolve(ctx, issue.ID, "again", "operator")
	require.ErrorIs(t, err, store.ErrConflict)
}

func TestService_ScanDuplicateNames(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.seedArtifact(t, "art-1", "api-spec", "doc", "ws-auth", "a1")
	f.seedArtifact(t, "art-2", "api-spec", "doc", "ws-billing", "a2")
	f.seedArtifact(t, "art-3", "readme", "doc", "ws-auth", "a1")

	filed, err := f.svc.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, filed, 1)
	issue := filed[0]
	assert.Equal(t, KindDuplication, string(issue.Kind))
	assert.Equal(t, models.SeverityLow, string(issue.Severity))
	assert.Equal(t, []string{"ws-auth", "ws-billing"}, issue.AffectedWorkstreams)
	assert.Equal(t, []string{"art-1", "art-2"}, issue.AffectedArtifacts)
	assert.Nil(t, issue.DetectedBy)

	assert.ElementsMatch(t, []string{"a1", "a2"}, f.trust.agentsFor(trust.OutcomeCoherenceIssue))

	// The finding rides the bus as a synthetic coherence envelope.
	require.Len(t, f.bus.envs, 1)
	env := f.bus.envs[0]
	assert.Equal(t, "coherence-scan", env.AgentID)
	assert.Equal(t, models.EventTypeCoherence, env.Event.Type)
	assert.Equal(t, issue.ID, env.Event.Coherence.IssueID)

	// The same fact files only once.
	again, err := f.svc.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Len(t, f.bus.envs, 1)
}

func TestService_ScanDanglingSources(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.seedArtifact(t, "art-base", "schema", "design", "ws-data", "a1")
	f.seedArtifact(t, "art-derived", "loader", "code", "ws-data", "a3", "art-base", "art-404")

	filed, err := f.svc.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, filed, 1)
	issue := filed[0]
	assert.Equal(t, KindDependencyViolation, string(issue.Kind))
	assert.Equal(t, models.SeverityMedium, string(issue.Severity))
	assert.Equal(t, []string{"ws-data"}, issue.AffectedWorkstreams)
	assert.Equal(t, []string{"art-derived", "art-404"}, issue.AffectedArtifacts)
	assert.Contains(t, issue.Summary, "art-404")

	// Only the creator of the referencing artifact is attributable.
	assert.Equal(t, []string{"a3"}, f.trust.agentsFor(trust.OutcomeCoherenceIssue))
}

func TestService_OnTickCadence(t *testing.T) {
	f := newFixture(t, Options{ScanIntervalTicks: 2})
	f.seedArtifact(t, "art-1", "api-spec", "doc", "ws-auth", "a1")
	f.seedArtifact(t, "art-2", "api-spec", "doc", "ws-billing", "a2")

	f.svc.OnTick(1)
	open, err := f.svc.List(context.Background(), "open")
	require.NoError(t, err)
	assert.Empty(t, open)

	f.svc.OnTick(2)
	open, err = f.svc.List(context.Background(), "open")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, KindDuplication, string(open[0].Kind))

	f.svc.OnTick(4)
	open, err = f.svc.List(context.Background(), "open")
	require.NoError(t, err)
	assert.Len(t, open, 1)
}
