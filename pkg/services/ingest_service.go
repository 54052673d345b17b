package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/steward-io/steward/pkg/bus"
	"github.com/steward-io/steward/pkg/coherence"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/metrics"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/trust"
)

// IngestService runs every adapter event through one pipeline: stamp, validate
// (malformed events go to quarantine, never to the bus), persist idempotently,
// apply the synchronous side effects for the event type, then publish. The
// decision enqueue happens before the publish so an observer that sees the
// envelope on the stream can always query the decision it announces.
type IngestService struct {
	store     *store.Store
	bus       *bus.Bus
	queue     *decision.Queue
	trust     *trust.Engine
	coherence *coherence.Service
	ticks     Ticks

	metrics *metrics.Metrics
}

// NewIngestService wires the pipeline. Store, bus, and queue are required;
// trust and coherence are optional and skip their side effects when nil.
func NewIngestService(
	st *store.Store,
	eventBus *bus.Bus,
	queue *decision.Queue,
	engine *trust.Engine,
	coherenceSvc *coherence.Service,
	ticks Ticks,
) *IngestService {
	if st == nil {
		panic("NewIngestService: store must not be nil")
	}
	if eventBus == nil {
		panic("NewIngestService: bus must not be nil")
	}
	if queue == nil {
		panic("NewIngestService: queue must not be nil")
	}
	return &IngestService{
		store:     st,
		bus:       eventBus,
		queue:     queue,
		trust:     engine,
		coherence: coherenceSvc,
		ticks:     ticks,
	}
}

// SetMetrics attaches the metrics registry.
func (s *IngestService) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// Ingest processes one envelope. Returns stored=false without error for an
// idempotent replay of an already-ingested sourceEventId; replays produce no
// side effects and no bus publication.
func (s *IngestService) Ingest(ctx context.Context, env *models.EventEnvelope) (bool, error) {
	start := time.Now()
	if env == nil {
		return false, store.NewValidationError("event", "envelope is required")
	}
	if env.IngestedAt.IsZero() {
		env.IngestedAt = time.Now().UTC()
	}

	if err := env.Validate(); err != nil {
		s.quarantine(ctx, env, err)
		return false, store.NewValidationError("event", err.Error())
	}

	stored, err := s.store.AppendEvent(ctx, env)
	if err != nil {
		return false, fmt.Errorf("failed to persist event %s: %w", env.SourceEventID, err)
	}
	if !stored {
		slog.Debug("Duplicate event ignored",
			"source_event_id", env.SourceEventID,
			"agent_id", env.AgentID)
		return false, nil
	}

	s.applySideEffects(ctx, env)
	s.bus.Publish(env)

	if s.metrics != nil {
		s.metrics.RecordIngest(env.Event.Type, time.Since(start).Seconds())
	}
	return true, nil
}

// IngestAdapter stamps the authenticated agent id onto an adapter-shim event
// and runs it through the pipeline. The shim never supplies its own agent id;
// the server derives it from the connection or the bearer token.
func (s *IngestService) IngestAdapter(ctx context.Context, agentID string, ev *models.AdapterEvent) (*models.EventEnvelope, bool, error) {
	if ev == nil {
		return nil, false, store.NewValidationError("event", "body is required")
	}
	env := &models.EventEnvelope{
		SourceEventID:    ev.SourceEventID,
		SourceSequence:   ev.SourceSequence,
		SourceOccurredAt: ev.SourceOccurredAt,
		RunID:            ev.RunID,
		AgentID:          agentID,
		Event:            ev.Event,
	}
	stored, err := s.Ingest(ctx, env)
	return env, stored, err
}

// applySideEffects runs the store/queue/trust updates an event type implies.
// The history row is already committed at this point, so failures here are
// logged rather than unwinding the ingest.
func (s *IngestService) applySideEffects(ctx context.Context, env *models.EventEnvelope) {
	switch env.Event.Type {
	case models.EventTypeArtifact:
		if _, err := s.store.StoreArtifact(ctx, env.Event.Artifact, env.AgentID); err != nil {
			slog.Error("Failed to store artifact from event",
				"artifact_id", env.Event.Artifact.ArtifactID,
				"agent_id", env.AgentID,
				"error", err)
		}

	case models.EventTypeCoherence:
		if s.coherence == nil {
			return
		}
		if _, err := s.coherence.HandleCoherenceEvent(ctx, env); err != nil {
			slog.Error("Failed to record coherence issue",
				"agent_id", env.AgentID,
				"kind", env.Event.Coherence.Kind,
				"error", err)
		}

	case models.EventTypeDecision:
		enqueued, err := s.queue.Enqueue(*env.Event.Decision, s.currentTick())
		if err != nil {
			slog.Error("Failed to enqueue decision from event",
				"decision_id", env.Event.Decision.DecisionID,
				"agent_id", env.AgentID,
				"error", err)
		} else if !enqueued {
			slog.Debug("Decision already queued",
				"decision_id", env.Event.Decision.DecisionID)
		}

	case models.EventTypeCompletion:
		if s.trust == nil {
			return
		}
		outcome := trust.OutcomeTaskCompletedClean
		if !env.Event.Completion.Clean {
			outcome = trust.OutcomeTaskCompletedWithIssues
		}
		score := s.trust.ApplyOutcome(env.AgentID, outcome, s.currentTick(), nil)
		if s.metrics != nil {
			s.metrics.SetTrustScore(env.AgentID, score)
		}
	}
}

func (s *IngestService) quarantine(ctx context.Context, env *models.EventEnvelope, cause error) {
	raw, merr := json.Marshal(env)
	if merr != nil {
		raw = []byte(fmt.Sprintf("%+v", env))
	}
	if err := s.store.AddQuarantined(ctx, raw, cause.Error(), env.AgentID); err != nil {
		slog.Error("Failed to quarantine malformed event",
			"agent_id", env.AgentID,
			"error", err)
	}
	if s.metrics != nil {
		s.metrics.RecordQuarantine()
	}
	slog.Warn("Quarantined malformed event",
		"agent_id", env.AgentID,
		"reason", cause.Error())
}

func (s *IngestService) currentTick() int64 {
	if s.ticks == nil {
		return 0
	}
	return s.ticks.Current()
}
