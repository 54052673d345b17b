package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/bus"
	"github.com/steward-io/steward/pkg/coherence"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/tick"
	"github.com/steward-io/steward/pkg/trust"
	"github.com/steward-io/steward/test/util"
)

type ingestEnv struct {
	svc    *IngestService
	store  *store.Store
	bus    *bus.Bus
	queue  *decision.Queue
	engine *trust.Engine
	ticks  *tick.Service
}

func newIngestEnv(t *testing.T) *ingestEnv {
	t.Helper()

	client := util.SetupTestDatabase(t)
	st := store.New(client)
	eventBus := bus.New()
	queue := decision.NewQueue(decision.Policy{})
	engine := trust.NewEngine(trust.DefaultConfig(), nil)

	ticks, err := tick.NewService(tick.ModeManual, 0)
	require.NoError(t, err)

	coherenceSvc := coherence.NewService(st, engine, ticks, eventBus, coherence.Options{})
	svc := NewIngestService(st, eventBus, queue, engine, coherenceSvc, ticks)

	return &ingestEnv{
		svc:    svc,
		store:  st,
		bus:    eventBus,
		queue:  queue,
		engine: engine,
		ticks:  ticks,
	}
}

func statusEnvelope(id string, seq int64, agentID, message string) *models.EventEnvelope {
	return &models.EventEnvelope{
		SourceEventID:    id,
		SourceSequence:   seq,
		SourceOccurredAt: time.Now().UTC(),
		RunID:            "run-1",
		AgentID:          agentID,
		Event: models.AgentEvent{
			Type:   models.EventTypeStatus,
			Status: &models.StatusEvent{Message: message},
		},
	}
}

func TestIngestService_StoresStampsAndPublishes(t *testing.T) {
	ctx := context.Background()
	env := newIngestEnv(t)

	var seen []*models.EventEnvelope
	env.bus.Subscribe(bus.Filter{}, func(e *models.EventEnvelope) {
		seen = append(seen, e)
	})

	stored, err := env.svc.Ingest(ctx, statusEnvelope("ev-1", 1, "a1", "hello"))
	require.NoError(t, err)
	assert.True(t, stored)

	require.Len(t, seen, 1)
	assert.Equal(t, "ev-1", seen[0].SourceEventID)
	assert.False(t, seen[0].IngestedAt.IsZero())

	count, err := env.store.CountEvents(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIngestService_DuplicateIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	env := newIngestEnv(t)

	published := 0
	env.bus.Subscribe(bus.Filter{}, func(*models.EventEnvelope) { published++ })

	stored, err := env.svc.Ingest(ctx, statusEnvelope("ev-1", 1, "a1", "first"))
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = env.svc.Ingest(ctx, statusEnvelope("ev-1", 1, "a1", "replay"))
	require.NoError(t, err)
	assert.False(t, stored)

	assert.Equal(t, 1, published)
	count, err := env.store.CountEvents(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIngestService_MalformedGoesToQuarantine(t *testing.T) {
	ctx := context.Background()
	env := newIngestEnv(t)

	published := 0
	env.bus.Subscribe(bus.Filter{}, func(*models.EventEnvelope) { published++ })

	bad := statusEnvelope("ev-bad", 1, "a1", "no run id")
	bad.RunID = ""
	_, err := env.svc.Ingest(ctx, bad)
	var validErr *store.ValidationError
	require.ErrorAs(t, err, &validErr)

	assert.Zero(t, published)
	count, err := env.store.CountEvents(ctx, "a1")
	require.NoError(t, err)
	assert.Zero(t, count)

	rows, err := env.store.ListQuarantined(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Reason, "runId")
	assert.Equal(t, "a1", rows[0].Source)
}

func TestIngestService_DecisionQueryableBeforePublish(t *testing.T) {
	ctx := context.Background()
	env := newIngestEnv(t)

	queuedAtPublish := false
	env.bus.Subscribe(bus.Filter{Types: []string{models.EventTypeDecision}}, func(e *models.EventEnvelope) {
		_, queuedAtPublish = env.queue.Get(e.Event.Decision.DecisionID)
	})

	envp := statusEnvelope("ev-dec", 1, "a1", "")
	envp.Event = models.AgentEvent{
		Type: models.EventTypeDecision,
		Decision: &models.DecisionEvent{
			DecisionID: "dec-1",
			AgentID:    "a1",
			Kind:       models.DecisionKindOption,
			Severity:   models.SeverityMedium,
			Options:    []models.DecisionOption{{ID: "opt-1", Label: "Go"}},
		},
	}

	stored, err := env.svc.Ingest(ctx, envp)
	require.NoError(t, err)
	require.True(t, stored)
	assert.True(t, queuedAtPublish)

	item, ok := env.queue.Get("dec-1")
	require.True(t, ok)
	assert.Equal(t, decision.StatusPending, item.Status)
}

func TestIngestService_ArtifactSideEffect(t *testing.T) {
	ctx := context.Background()
	env := newIngestEnv(t)

	envp := statusEnvelope("ev-art", 1, "a1", "")
	envp.Event = models.AgentEvent{
		Type: models.EventTypeArtifact,
		Artifact: &models.ArtifactEvent{
			ArtifactID: "art-1",
			Name:       "design.md",
			Kind:       "doc",
			Workstream: "ws-core",
		},
	}
	stored, err := env.svc.Ingest(ctx, envp)
	require.NoError(t, err)
	require.True(t, stored)

	art, err := env.store.GetArtifact(ctx, "art-1")
	require.NoError(t, err)
	assert.Equal(t, "design.md", art.Name)
	assert.Equal(t, "a1", art.CreatedBy)
	assert.Equal(t, 1, art.Version)

	update := statusEnvelope("ev-art-2", 2, "a1", "")
	update.Event = models.AgentEvent{
		Type: models.EventTypeArtifact,
		Artifact: &models.ArtifactEvent{
			ArtifactID: "art-1",
			Name:       "design-v2.md",
			Kind:       "doc",
			Workstream: "ws-core",
		},
	}
	_, err = env.svc.Ingest(ctx, update)
	require.NoError(t, err)

	art, err = env.store.GetArtifact(ctx, "art-1")
	require.NoError(t, err)
	assert.Equal(t, "design-v2.md", art.Name)
	assert.Equal(t, 2, art.Version)
}

func TestIngestService_CompletionAppliesTrust(t *testing.T) {
	ctx := context.Background()
	env := newIngestEnv(t)
	env.engine.RegisterAgent("a1", 0)

	clean := statusEnvelope("ev-done", 1, "a1", "")
	clean.Event = models.AgentEvent{
		Type:       models.EventTypeCompletion,
		Completion: &models.CompletionEvent{Summary: "done", Clean: true},
	}
	_, err := env.svc.Ingest(ctx, clean)
	require.NoError(t, err)
	assert.Equal(t, 53, env.engine.GetScore("a1"))

	messy := statusEnvelope("ev-done-2", 2, "a1", "")
	messy.Event = models.AgentEvent{
		Type:       models.EventTypeCompletion,
		Completion: &models.CompletionEvent{Summary: "done with issues", Clean: false},
	}
	_, err = env.svc.Ingest(ctx, messy)
	require.NoError(t, err)
	assert.Equal(t, 52, env.engine.GetScore("a1"))
}

func TestIngestService_CoherencePenalizesArtifactCreator(t *testing.T) {
	ctx := context.Background()
	env := newIngestEnv(t)
	env.engine.RegisterAgent("a2", 0)

	_, err := env.store.StoreArtifact(ctx, &models.ArtifactEvent{
		ArtifactID: "art-1",
		Name:       "api.md",
		Kind:       "doc",
		Workstream: "ws-core",
	}, "a2")
	require.NoError(t, err)

	envp := statusEnvelope("ev-coh", 1, "a1", "")
	envp.Event = models.AgentEvent{
		Type: models.EventTypeCoherence,
		Coherence: &models.CoherenceEvent{
			Kind:                "contradiction",
			Summary:             "doc contradicts schema",
			Severity:            models.SeverityHigh,
			AffectedWorkstreams: []string{"ws-core"},
			AffectedArtifactIDs: []string{"art-1"},
		},
	}
	stored, err := env.svc.Ingest(ctx, envp)
	require.NoError(t, err)
	require.True(t, stored)

	issues, err := env.store.ListCoherenceIssues(ctx, "open")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "contradiction", issues[0].Kind)

	// The artifact creator takes the penalty, not the reporter.
	assert.Equal(t, 48, env.engine.GetScore("a2"))
	assert.Equal(t, 50, env.engine.GetScore("a1"))
}

func TestIngestService_IngestAdapterStampsAgentID(t *testing.T) {
	ctx := context.Background()
	env := newIngestEnv(t)

	adapterEv := &models.AdapterEvent{
		SourceEventID:    "ev-adapter",
		SourceSequence:   1,
		SourceOccurredAt: time.Now().UTC(),
		RunID:            "run-9",
		Event: models.AgentEvent{
			Type:   models.EventTypeStatus,
			Status: &models.StatusEvent{Message: "from shim"},
		},
	}

	envp, stored, err := env.svc.IngestAdapter(ctx, "a7", adapterEv)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, "a7", envp.AgentID)

	rows, err := env.store.GetEvents(ctx, store.EventFilter{AgentID: "a7"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ev-adapter", rows[0].SourceEventID)
}
