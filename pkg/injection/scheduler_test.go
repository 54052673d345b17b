package injection

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

type delivered struct {
	agentID   string
	injection *models.ContextInjection
}

type fakeGateway struct {
	mu       sync.Mutex
	statuses map[string]string
	sent     []delivered
	failErr  error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{statuses: make(map[string]string)}
}

func (g *fakeGateway) AgentStatus(agentID string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	status, ok := g.statuses[agentID]
	return status, ok
}

func (g *fakeGateway) InjectContext(_ context.Context, agentID string, injection *models.ContextInjection) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failErr != nil {
		return g.failErr
	}
	g.sent = append(g.sent, delivered{agentID: agentID, injection: injection})
	return nil
}

func (g *fakeGateway) deliveries() []delivered {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]delivered, len(g.sent))
	copy(out, g.sent)
	return out
}

type fakeSnapshots struct {
	mu      sync.Mutex
	version int64
	tokens  int
	err     error
}

func (f *fakeSnapshots) Snapshot(context.Context) (*models.KnowledgeSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &models.KnowledgeSnapshot{
		Version:         f.version,
		GeneratedAt:     time.Now().UTC(),
		EstimatedTokens: f.tokens,
	}, nil
}

func (f *fakeSnapshots) bump() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.version++
}

type fixedMode models.ControlMode

func (m fixedMode) Current() models.ControlMode { return models.ControlMode(m) }

func testSchedulerBrief(ws string, readable []string, pol *models.ContextInjectionPolicy) models.AgentBrief {
	return models.AgentBrief{
		Role:                   "implementer",
		Workstream:             ws,
		ReadableWorkstreams:    readable,
		ContextInjectionPolicy: pol,
	}
}

func newTestScheduler(t *testing.T) (*Scheduler, *fakeGateway, *fakeSnapshots) {
	t.Helper()
	gw := newFakeGateway()
	snaps := &fakeSnapshots{version: 1, tokens: 40}
	return NewScheduler(gw, snaps, fixedMode(models.ModeAdaptive)), gw, snaps
}

func TestScheduler_PeriodicTrigger(t *testing.T) {
	s, gw, snaps := newTestScheduler(t)
	gw.statuses["agent-1"] = models.AgentRunning
	s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{
		PeriodicIntervalTicks: int64Ptr(5),
		CooldownTicks:         3,
		MaxInjectionsPerHour:  10,
	}))

	for tick := int64(1); tick <= 4; tick++ {
		s.OnTick(tick)
	}
	assert.Empty(t, gw.deliveries())

	s.OnTick(5)
	got := gw.deliveries()
	require.Len(t, got, 1)
	assert.Equal(t, "agent-1", got[0].agentID)
	assert.Equal(t, ReasonPeriodic, got[0].injection.Reason)
	assert.Equal(t, models.PriorityRecommended, got[0].injection.Priority)
	assert.Equal(t, "json", got[0].injection.Format)
	assert.Equal(t, int64(1), got[0].injection.SnapshotVersion)
	assert.False(t, got[0].injection.IsDelta)
	assert.Contains(t, got[0].injection.Content, `"version":1`)

	// Interval restarts from the delivery tick; a stale snapshot version
	// blocks the next firing until the world actually changes.
	s.OnTick(9)
	require.Len(t, gw.deliveries(), 1)
	s.OnTick(10)
	require.Len(t, gw.deliveries(), 1)

	snaps.bump()
	s.OnTick(11)
	got = gw.deliveries()
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[1].injection.SnapshotVersion)

	st, ok := s.GetState("agent-1")
	require.True(t, ok)
	assert.Equal(t, int64(11), st.LastInjectionTick)
	assert.Equal(t, int64(2), st.LastSnapshotVersion)
	assert.True(t, st.HasEverInjected)
}

func TestScheduler_StalenessTrigger(t *testing.T) {
	s, gw, _ := newTestScheduler(t)
	gw.statuses["writer"] = models.AgentRunning
	gw.statuses["reader"] = models.AgentRunning
	gw.statuses["outsider"] = models.AgentRunning

	s.RegisterAgent("writer", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{}))
	s.RegisterAgent("reader", testSchedulerBrief("ws-b", []string{"ws-a"}, &models.ContextInjectionPolicy{
		StalenessThreshold:   intPtr(2),
		MaxInjectionsPerHour: 10,
	}))
	s.RegisterAgent("outsider", testSchedulerBrief("ws-c", nil, &models.ContextInjectionPolicy{
		StalenessThreshold:   intPtr(2),
		MaxInjectionsPerHour: 10,
	}))

	s.HandleEvent(statusEnv("writer", "working on schema"))
	st, _ := s.GetState("reader")
	assert.Equal(t, 1, st.StalenessCounter)
	assert.Empty(t, gw.deliveries())

	// Unreadable workstream traffic never bumps the counter.
	st, _ = s.GetState("outsider")
	assert.Equal(t, 0, st.StalenessCounter)

	s.HandleEvent(statusEnv("writer", "schema done"))
	got := gw.deliveries()
	require.Len(t, got, 1)
	assert.Equal(t, "reader", got[0].agentID)
	assert.Equal(t, ReasonStaleness, got[0].injection.Reason)

	// Delivery resets the counter.
	st, _ = s.GetState("reader")
	assert.Equal(t, 0, st.StalenessCounter)

	// The source agent never goes stale on its own traffic.
	st, _ = s.GetState("writer")
	assert.Equal(t, 0, st.StalenessCounter)
}

func TestScheduler_CooldownAndRateLimit(t *testing.T) {
	t.Run("cooldown blocks until enough ticks pass", func(t *testing.T) {
		s, gw, snaps := newTestScheduler(t)
		gw.statuses["agent-1"] = models.AgentRunning
		s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{
			CooldownTicks:        3,
			MaxInjectionsPerHour: 10,
		}))

		s.OnTick(1)
		require.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))

		snaps.bump()
		s.OnTick(2)
		assert.False(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))

		s.OnTick(4)
		assert.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))
	})

	t.Run("required priority bypasses the cooldown", func(t *testing.T) {
		s, gw, snaps := newTestScheduler(t)
		gw.statuses["agent-1"] = models.AgentRunning
		s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{
			CooldownTicks:        100,
			MaxInjectionsPerHour: 10,
		}))

		s.OnTick(1)
		require.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))
		snaps.bump()
		assert.True(t, s.ScheduleInjection(context.Background(), "agent-1", models.TriggerBriefUpdated, models.PriorityRequired))
	})

	t.Run("hourly rate limit prunes old timestamps", func(t *testing.T) {
		s, gw, snaps := newTestScheduler(t)
		gw.statuses["agent-1"] = models.AgentRunning
		s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{
			MaxInjectionsPerHour: 1,
		}))

		base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		now := base
		s.now = func() time.Time { return now }

		require.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))

		snaps.bump()
		assert.False(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))

		// Required ignores the limit.
		assert.True(t, s.ScheduleInjection(context.Background(), "agent-1", models.TriggerBriefUpdated, models.PriorityRequired))

		now = base.Add(61 * time.Minute)
		snaps.bump()
		assert.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))
	})
}

func TestScheduler_Gates(t *testing.T) {
	t.Run("untracked and non-running agents are skipped", func(t *testing.T) {
		s, gw, _ := newTestScheduler(t)
		assert.False(t, s.ScheduleInjection(context.Background(), "ghost", ReasonStaleness, models.PriorityRecommended))

		gw.statuses["agent-1"] = models.AgentPaused
		s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{}))
		assert.False(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))
		assert.Empty(t, gw.deliveries())
	})

	t.Run("unchanged snapshot version is delivered once", func(t *testing.T) {
		s, gw, snaps := newTestScheduler(t)
		gw.statuses["agent-1"] = models.AgentRunning
		s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{MaxInjectionsPerHour: 10}))

		assert.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))
		assert.False(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))

		snaps.bump()
		assert.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))
		assert.Len(t, gw.deliveries(), 2)
	})

	t.Run("token budget stops supplementary injections only", func(t *testing.T) {
		s, gw, snaps := newTestScheduler(t)
		snaps.tokens = 5000
		gw.statuses["agent-1"] = models.AgentRunning
		budget := 100
		brief := testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{MaxInjectionsPerHour: 10})
		brief.SessionPolicy = &models.SessionPolicy{ContextBudgetTokens: &budget}
		s.RegisterAgent("agent-1", brief)

		assert.False(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PrioritySupplementary))
		assert.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))
	})

	t.Run("failed delivery leaves tracking untouched", func(t *testing.T) {
		s, gw, _ := newTestScheduler(t)
		gw.statuses["agent-1"] = models.AgentRunning
		s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{MaxInjectionsPerHour: 10}))

		gw.failErr = fmt.Errorf("adapter unreachable")
		assert.False(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))

		st, _ := s.GetState("agent-1")
		assert.False(t, st.HasEverInjected)
		assert.Equal(t, int64(-1), st.LastSnapshotVersion)

		gw.failErr = nil
		assert.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))
	})

	t.Run("snapshot errors fail closed", func(t *testing.T) {
		s, gw, snaps := newTestScheduler(t)
		gw.statuses["agent-1"] = models.AgentRunning
		s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{MaxInjectionsPerHour: 10}))

		snaps.err = fmt.Errorf("store offline")
		assert.False(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))
	})
}

func TestScheduler_ReactiveTriggers(t *testing.T) {
	t.Run("artifact approval in a readable workstream", func(t *testing.T) {
		s, gw, _ := newTestScheduler(t)
		gw.statuses["writer"] = models.AgentRunning
		gw.statuses["reader"] = models.AgentRunning
		s.RegisterAgent("writer", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{}))
		s.RegisterAgent("reader", testSchedulerBrief("ws-b", []string{"ws-a"}, &models.ContextInjectionPolicy{
			MaxInjectionsPerHour: 10,
			ReactiveEvents: []models.ReactiveTrigger{
				{Kind: models.TriggerArtifactApproved, Workstreams: models.ScopeReadable},
			},
		}))

		// Draft artifacts do not fire the trigger.
		s.HandleEvent(artifactEnv("writer", "ws-a", "draft"))
		assert.Empty(t, gw.deliveries())

		s.HandleEvent(artifactEnv("writer", "ws-a", "approved"))
		got := gw.deliveries()
		require.Len(t, got, 1)
		assert.Equal(t, "reader", got[0].agentID)
		assert.Equal(t, models.TriggerArtifactApproved, got[0].injection.Reason)
		assert.True(t, got[0].injection.IsDelta)
	})

	t.Run("coherence issues gate on severity", func(t *testing.T) {
		s, gw, _ := newTestScheduler(t)
		gw.statuses["watcher"] = models.AgentRunning
		gw.statuses["scout"] = models.AgentRunning
		s.RegisterAgent("scout", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{}))
		s.RegisterAgent("watcher", testSchedulerBrief("ws-b", nil, &models.ContextInjectionPolicy{
			MaxInjectionsPerHour: 10,
			ReactiveEvents: []models.ReactiveTrigger{
				{Kind: models.TriggerCoherenceIssue, MinSeverity: "high"},
			},
		}))

		s.HandleEvent(coherenceEnv("scout", "medium"))
		assert.Empty(t, gw.deliveries())

		s.HandleEvent(coherenceEnv("scout", "critical"))
		got := gw.deliveries()
		require.Len(t, got, 1)
		assert.Equal(t, "watcher", got[0].agentID)
		assert.Equal(t, models.TriggerCoherenceIssue, got[0].injection.Reason)
	})

	t.Run("decision resolution reaches observers but not the owner", func(t *testing.T) {
		s, gw, _ := newTestScheduler(t)
		gw.statuses["owner"] = models.AgentRunning
		gw.statuses["observer"] = models.AgentRunning
		pol := &models.ContextInjectionPolicy{
			MaxInjectionsPerHour: 10,
			ReactiveEvents: []models.ReactiveTrigger{
				{Kind: models.TriggerDecisionResolved, Workstreams: models.ScopeAll},
			},
		}
		s.RegisterAgent("owner", testSchedulerBrief("ws-a", nil, pol))
		s.RegisterAgent("observer", testSchedulerBrief("ws-b", nil, pol))

		s.OnDecisionResolved(&models.DecisionEvent{DecisionID: "dec-1", AgentID: "owner", Kind: models.DecisionKindOption})

		got := gw.deliveries()
		require.Len(t, got, 1)
		assert.Equal(t, "observer", got[0].agentID)
		assert.Equal(t, models.TriggerDecisionResolved, got[0].injection.Reason)
	})

	t.Run("brief updates force a required injection", func(t *testing.T) {
		s, gw, snaps := newTestScheduler(t)
		gw.statuses["agent-1"] = models.AgentRunning
		s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, &models.ContextInjectionPolicy{
			CooldownTicks:        100,
			MaxInjectionsPerHour: 10,
		}))

		require.True(t, s.ScheduleInjection(context.Background(), "agent-1", ReasonStaleness, models.PriorityRecommended))

		snaps.bump()
		assert.True(t, s.OnBriefUpdated("agent-1"))
		got := gw.deliveries()
		require.Len(t, got, 2)
		assert.Equal(t, models.TriggerBriefUpdated, got[1].injection.Reason)
		assert.Equal(t, models.PriorityRequired, got[1].injection.Priority)
		assert.True(t, got[1].injection.IsDelta)
	})
}

func TestScheduler_DefaultPolicyFallback(t *testing.T) {
	gw := newFakeGateway()
	snaps := &fakeSnapshots{version: 1, tokens: 40}
	s := NewScheduler(gw, snaps, fixedMode(models.ModeOrchestrator))
	gw.statuses["agent-1"] = models.AgentRunning

	// No policy on the brief: orchestrator defaults apply (periodic 5).
	s.RegisterAgent("agent-1", testSchedulerBrief("ws-a", nil, nil))

	s.OnTick(4)
	assert.Empty(t, gw.deliveries())
	s.OnTick(5)
	require.Len(t, gw.deliveries(), 1)
}

func statusEnv(agentID, msg string) *models.EventEnvelope {
	return &models.EventEnvelope{
		SourceEventID:    fmt.Sprintf("ev-%s-%d", agentID, time.Now().UnixNano()),
		SourceSequence:   1,
		SourceOccurredAt: time.Now().UTC(),
		RunID:            "run-1",
		AgentID:          agentID,
		Event: models.AgentEvent{
			Type:   models.EventTypeStatus,
			Status: &models.StatusEvent{Message: msg},
		},
	}
}

func artifactEnv(agentID, ws, status string) *models.EventEnvelope {
	return &models.EventEnvelope{
		SourceEventID:    fmt.Sprintf("ev-%s-%d", agentID, time.Now().UnixNano()),
		SourceSequence:   1,
		SourceOccurredAt: time.Now().UTC(),
		RunID:            "run-1",
		AgentID:          agentID,
		Event: models.AgentEvent{
			Type: models.EventTypeArtifact,
			Artifact: &models.ArtifactEvent{
				ArtifactID: "art-1",
				Name:       "API Contract",
				Kind:       "api_contract",
				Workstream: ws,
				Status:     status,
			},
		},
	}
}

func coherenceEnv(agentID, severity string) *models.EventEnvelope {
	return &models.EventEnvelope{
		SourceEventID:    fmt.Sprintf("ev-%s-%d", agentID, time.Now().UnixNano()),
		SourceSequence:   1,
		SourceOccurredAt: time.Now().UTC(),
		RunID:            "run-1",
		AgentID:          agentID,
		Event: models.AgentEvent{
			Type: models.EventTypeCoherence,
			Coherence: &models.CoherenceEvent{
				Kind:     "api_drift",
				Summary:  "endpoint shape diverged",
				Severity: severity,
			},
		},
	}
}
