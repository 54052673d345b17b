// Package injection decides when each agent gets a refreshed knowledge
// snapshot pushed into its context. Three trigger families feed the
// scheduler: a periodic tick interval, a staleness counter over observed
// bus traffic, and reactive patterns on specific events. Every trigger
// funnels into ScheduleInjection, which applies cooldown, rate limit,
// snapshot dedup, and token budget gates before delivering.
package injection

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/steward-io/steward/pkg/models"
)

// Injection trigger reasons. Reactive reasons reuse the trigger kind names.
const (
	ReasonPeriodic  = "periodic"
	ReasonStaleness = "staleness"
)

// Gateway is the slice of the agent gateway the scheduler needs: liveness
// checks and context delivery.
type Gateway interface {
	AgentStatus(agentID string) (string, bool)
	InjectContext(ctx context.Context, agentID string, injection *models.ContextInjection) error
}

// SnapshotProvider yields the current knowledge snapshot.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*models.KnowledgeSnapshot, error)
}

// ModeSource reports the current control mode, which selects the fallback
// policy for briefs that do not carry their own.
type ModeSource interface {
	Current() models.ControlMode
}

// State is the per-agent injection tracking state, exposed for diagnostics.
type State struct {
	LastInjectionTick   int64 `json:"lastInjectionTick"`
	LastSnapshotVersion int64 `json:"lastSnapshotVersion"`
	StalenessCounter    int   `json:"stalenessCounter"`
	InjectionsLastHour  int   `json:"injectionsLastHour"`
	HasEverInjected     bool  `json:"hasEverInjected"`
}

type track struct {
	brief               models.AgentBrief
	lastInjectionTick   int64
	lastSnapshotVersion int64
	stalenessCounter    int
	injectionTimes      []time.Time
	hasEverInjected     bool
}

// Scheduler tracks registered agents and drives context injections through
// the gateway. Bus subscribers should dispatch HandleEvent off the publishing
// goroutine; delivery does plugin I/O.
type Scheduler struct {
	mu       sync.Mutex
	gateway  Gateway
	snaps    SnapshotProvider
	modes    ModeSource
	tracked  map[string]*track
	policies map[models.ControlMode]models.ContextInjectionPolicy
	tick     int64
	now      func() time.Time
}

// NewScheduler builds a scheduler over the given gateway and snapshot source.
func NewScheduler(gateway Gateway, snaps SnapshotProvider, modes ModeSource) *Scheduler {
	return &Scheduler{
		gateway: gateway,
		snaps:   snaps,
		modes:   modes,
		tracked: make(map[string]*track),
		now:     time.Now,
	}
}

// RegisterAgent starts tracking an agent. The periodic interval is measured
// from the registration tick.
func (s *Scheduler) RegisterAgent(agentID string, brief models.AgentBrief) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracked[agentID] = &track{
		brief:               brief,
		lastInjectionTick:   s.tick,
		lastSnapshotVersion: -1,
	}
}

// UnregisterAgent stops tracking an agent.
func (s *Scheduler) UnregisterAgent(agentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tracked, agentID)
}

// UpdateBrief swaps the tracked brief, repointing policy resolution. Use
// OnBriefUpdated to also deliver the change to the agent.
func (s *Scheduler) UpdateBrief(agentID string, brief models.AgentBrief) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tr, ok := s.tracked[agentID]; ok {
		tr.brief = brief
	}
}

// SetModePolicy overrides the default injection policy for a control mode.
// Briefs that carry their own policy are unaffected.
func (s *Scheduler) SetModePolicy(mode models.ControlMode, pol models.ContextInjectionPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.policies == nil {
		s.policies = make(map[models.ControlMode]models.ContextInjectionPolicy)
	}
	s.policies[mode] = pol
}

// GetState returns a copy of the agent's tracking state.
func (s *Scheduler) GetState(agentID string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tr, ok := s.tracked[agentID]
	if !ok {
		return State{}, false
	}
	cutoff := s.now().Add(-time.Hour)
	recent := 0
	for _, ts := range tr.injectionTimes {
		if ts.After(cutoff) {
			recent++
		}
	}
	return State{
		LastInjectionTick:   tr.lastInjectionTick,
		LastSnapshotVersion: tr.lastSnapshotVersion,
		StalenessCounter:    tr.stalenessCounter,
		InjectionsLastHour:  recent,
		HasEverInjected:     tr.hasEverInjected,
	}, true
}

// policyFor resolves the effective injection policy for a tracked agent.
func (s *Scheduler) policyFor(tr *track) models.ContextInjectionPolicy {
	if tr.brief.ContextInjectionPolicy != nil {
		return *tr.brief.ContextInjectionPolicy
	}
	mode := s.modes.Current()
	if pol, ok := s.policies[mode]; ok {
		return pol
	}
	return DefaultPolicy(mode)
}

// OnTick advances the scheduler clock and fires the periodic trigger for any
// agent whose interval has elapsed.
func (s *Scheduler) OnTick(tick int64) {
	s.mu.Lock()
	s.tick = tick
	var due []string
	for agentID, tr := range s.tracked {
		pol := s.policyFor(tr)
		if pol.PeriodicIntervalTicks == nil {
			continue
		}
		if tick-tr.lastInjectionTick >= *pol.PeriodicIntervalTicks {
			due = append(due, agentID)
		}
	}
	s.mu.Unlock()

	for _, agentID := range due {
		s.ScheduleInjection(context.Background(), agentID, ReasonPeriodic, models.PriorityRecommended)
	}
}

// HandleEvent feeds one bus envelope into the staleness counters and the
// reactive trigger patterns of every tracked agent other than the source.
func (s *Scheduler) HandleEvent(env *models.EventEnvelope) {
	type firing struct {
		agentID  string
		reason   string
		priority string
	}
	var firings []firing

	s.mu.Lock()
	ws := s.sourceWorkstreamLocked(env)
	for agentID, tr := range s.tracked {
		if agentID == env.AgentID {
			continue
		}
		pol := s.policyFor(tr)

		if tr.brief.ReadsWorkstream(ws) {
			tr.stalenessCounter++
			if pol.StalenessThreshold != nil && tr.stalenessCounter >= *pol.StalenessThreshold {
				firings = append(firings, firing{agentID, ReasonStaleness, models.PriorityRecommended})
			}
		}

		for _, trig := range pol.ReactiveEvents {
			if reactiveMatch(trig, env, ws, &tr.brief) {
				firings = append(firings, firing{agentID, trig.Kind, models.PriorityRecommended})
			}
		}
	}
	s.mu.Unlock()

	for _, f := range firings {
		s.ScheduleInjection(context.Background(), f.agentID, f.reason, f.priority)
	}
}

// OnDecisionResolved fires the decision_resolved reactive trigger. The
// decision's own agent is excluded; resolutions reach it through the plugin
// directly.
func (s *Scheduler) OnDecisionResolved(dec *models.DecisionEvent) {
	if dec == nil {
		return
	}
	var due []string

	s.mu.Lock()
	ws := ""
	if src, ok := s.tracked[dec.AgentID]; ok {
		ws = src.brief.Workstream
	}
	for agentID, tr := range s.tracked {
		if agentID == dec.AgentID {
			continue
		}
		for _, trig := range s.policyFor(tr).ReactiveEvents {
			if trig.Kind != models.TriggerDecisionResolved {
				continue
			}
			if scopeMatch(trig.Workstreams, ws, &tr.brief) {
				due = append(due, agentID)
				break
			}
		}
	}
	s.mu.Unlock()

	for _, agentID := range due {
		s.ScheduleInjection(context.Background(), agentID, models.TriggerDecisionResolved, models.PriorityRecommended)
	}
}

// OnBriefUpdated delivers refreshed context to the agent whose brief just
// changed. Brief updates are required injections and bypass cooldown and
// rate limits.
func (s *Scheduler) OnBriefUpdated(agentID string) bool {
	return s.ScheduleInjection(context.Background(), agentID, models.TriggerBriefUpdated, models.PriorityRequired)
}

// sourceWorkstreamLocked resolves the workstream an envelope originated in:
// the source agent's assigned workstream when tracked, else whatever the
// payload itself names.
func (s *Scheduler) sourceWorkstreamLocked(env *models.EventEnvelope) string {
	if tr, ok := s.tracked[env.AgentID]; ok {
		return tr.brief.Workstream
	}
	if env.Event.Artifact != nil {
		return env.Event.Artifact.Workstream
	}
	return ""
}

// reactiveMatch reports whether a trigger pattern matches the envelope for
// the given observer brief.
func reactiveMatch(trig models.ReactiveTrigger, env *models.EventEnvelope, ws string, brief *models.AgentBrief) bool {
	switch trig.Kind {
	case models.TriggerArtifactApproved:
		art := env.Event.Artifact
		if art == nil || art.Status != "approved" {
			return false
		}
		return scopeMatch(trig.Workstreams, art.Workstream, brief)
	case models.TriggerCoherenceIssue:
		coh := env.Event.Coherence
		if coh == nil {
			return false
		}
		min := trig.MinSeverity
		if min == "" {
			min = models.SeverityMedium
		}
		severity := coh.Severity
		if severity == "" {
			severity = models.SeverityMedium
		}
		return models.SeverityAtLeast(severity, min)
	case models.TriggerAgentCompleted:
		if env.Event.Completion == nil {
			return false
		}
		scope := trig.Workstreams
		if scope == "" {
			scope = models.ScopeReadable
		}
		return scopeMatch(scope, ws, brief)
	default:
		// decision_resolved and brief_updated arrive through their own
		// entry points, never off the bus.
		return false
	}
}

// scopeMatch applies a trigger's workstream scope against an event
// workstream. An empty scope behaves as readable.
func scopeMatch(scope, ws string, brief *models.AgentBrief) bool {
	switch scope {
	case models.ScopeAll:
		return true
	case models.ScopeOwn:
		return ws != "" && ws == brief.Workstream
	default:
		return brief.ReadsWorkstream(ws)
	}
}

// reactiveReason reports whether a trigger reason marks the injection as a
// delta refresh rather than a scheduled one.
func reactiveReason(reason string) bool {
	switch reason {
	case models.TriggerArtifactApproved, models.TriggerDecisionResolved,
		models.TriggerCoherenceIssue, models.TriggerAgentCompleted,
		models.TriggerBriefUpdated:
		return true
	}
	return false
}

// ScheduleInjection runs the gate sequence for one agent and, if every gate
// passes, delivers the current snapshot through the gateway. Returns whether
// an injection was delivered.
//
// Gate order: tracked and running, cooldown, hourly rate limit, snapshot
// version dedup, token budget. Required priority bypasses cooldown and rate
// limit; the budget gate only stops supplementary injections. The mutex is
// released around snapshot assembly and plugin delivery.
func (s *Scheduler) ScheduleInjection(ctx context.Context, agentID, reason, priority string) bool {
	s.mu.Lock()
	tr, ok := s.tracked[agentID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	status, live := s.gateway.AgentStatus(agentID)
	if !live || status != models.AgentRunning {
		s.mu.Unlock()
		return false
	}

	pol := s.policyFor(tr)
	now := s.now()

	if priority != models.PriorityRequired && tr.hasEverInjected && s.tick-tr.lastInjectionTick < pol.CooldownTicks {
		s.mu.Unlock()
		return false
	}

	cutoff := now.Add(-time.Hour)
	kept := tr.injectionTimes[:0]
	for _, ts := range tr.injectionTimes {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	tr.injectionTimes = kept
	if pol.MaxInjectionsPerHour > 0 && len(tr.injectionTimes) >= pol.MaxInjectionsPerHour && priority != models.PriorityRequired {
		s.mu.Unlock()
		return false
	}

	var budget *int
	if tr.brief.SessionPolicy != nil {
		budget = tr.brief.SessionPolicy.ContextBudgetTokens
	}
	s.mu.Unlock()

	snap, err := s.snaps.Snapshot(ctx)
	if err != nil {
		slog.Warn("Failed to assemble snapshot for injection", "agent_id", agentID, "reason", reason, "error", err)
		return false
	}

	s.mu.Lock()
	tr, ok = s.tracked[agentID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	if snap.Version == tr.lastSnapshotVersion && snap.Version != -1 {
		s.mu.Unlock()
		return false
	}
	if budget != nil && snap.EstimatedTokens > *budget && priority == models.PrioritySupplementary {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	content, err := json.Marshal(snap)
	if err != nil {
		slog.Error("Failed to marshal snapshot for injection", "agent_id", agentID, "error", err)
		return false
	}
	injection := &models.ContextInjection{
		Content:         string(content),
		Format:          "json",
		SnapshotVersion: snap.Version,
		EstimatedTokens: snap.EstimatedTokens,
		Priority:        priority,
		Reason:          reason,
		IsDelta:         reactiveReason(reason),
	}

	if err := s.gateway.InjectContext(ctx, agentID, injection); err != nil {
		slog.Warn("Context injection failed", "agent_id", agentID, "reason", reason, "error", err)
		return false
	}

	s.mu.Lock()
	if tr, ok = s.tracked[agentID]; ok {
		tr.lastInjectionTick = s.tick
		tr.lastSnapshotVersion = snap.Version
		tr.stalenessCounter = 0
		tr.injectionTimes = append(tr.injectionTimes, now)
		tr.hasEverInjected = true
	}
	s.mu.Unlock()

	slog.Info("Injected context", "agent_id", agentID, "reason", reason, "priority", priority, "snapshot_version", snap.Version)
	return true
}
