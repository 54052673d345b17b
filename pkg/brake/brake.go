// Package brake implements the emergency stop: pause or kill a set of agents
// in one operation, suspend their pending decisions, and release later by
// hand, by timer, or when a designated decision resolves.
package brake

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
)

// Brake scopes.
const (
	ScopeAll        = "all"
	ScopeAgent      = "agent"
	ScopeWorkstream = "workstream"
)

// Brake behaviors.
const (
	BehaviorPause = "pause"
	BehaviorKill  = "kill"
)

// Release conditions.
const (
	ReleaseManual   = "manual"
	ReleaseTimer    = "timer"
	ReleaseDecision = "decision"
)

// AgentRef is the roster row the brake service selects targets from.
type AgentRef struct {
	AgentID    string
	Workstream string
}

// Controller applies brake behaviors to agents. Implemented by the server's
// agent orchestration layer so pauses still persist checkpoints.
type Controller interface {
	ActiveAgents() []AgentRef
	PauseAgent(ctx context.Context, agentID string) error
	ResumeAgent(ctx context.Context, agentID string) error
	KillAgent(ctx context.Context, agentID string) error
}

// Suspender parks and revives pending decisions for braked agents.
// Satisfied by the decision queue.
type Suspender interface {
	SuspendAgentDecisions(agentID string) int
	ResumeAgentDecisions(agentID string) int
}

// Broadcaster pushes brake state changes to dashboard clients.
type Broadcaster interface {
	Broadcast(messageType string, payload any)
}

// Ticks reports the current logical time.
type Ticks interface {
	Current() int64
}

// Request describes a brake to engage.
type Request struct {
	Scope      string `json:"scope"`
	AgentID    string `json:"agentId,omitempty"`
	Workstream string `json:"workstream,omitempty"`
	Behavior   string `json:"behavior"`
	Reason     string `json:"reason,omitempty"`

	// ReleaseCondition defaults to manual. Timer releases after TimerTicks
	// ticks; decision releases when DecisionID resolves.
	ReleaseCondition string `json:"releaseCondition,omitempty"`
	TimerTicks       int64  `json:"timerTicks,omitempty"`
	DecisionID       string `json:"decisionId,omitempty"`
}

// Brake is an engaged (or just-released) emergency stop.
type Brake struct {
	ID               string    `json:"id"`
	Scope            string    `json:"scope"`
	AgentID          string    `json:"agentId,omitempty"`
	Workstream       string    `json:"workstream,omitempty"`
	Behavior         string    `json:"behavior"`
	Reason           string    `json:"reason,omitempty"`
	ReleaseCondition string    `json:"releaseCondition"`
	ReleaseAtTick    *int64    `json:"releaseAtTick,omitempty"`
	DecisionID       string    `json:"decisionId,omitempty"`
	EngagedAt        time.Time `json:"engagedAt"`
	EngagedAtTick    int64     `json:"engagedAtTick"`
	AffectedAgentIDs []string  `json:"affectedAgentIds"`
}

// Service tracks active brakes. Engage/release run their slow agent
// operations outside the mutex.
type Service struct {
	controller Controller
	decisions  Suspender
	broadcast  Broadcaster
	ticks      Ticks

	mu     sync.Mutex
	active map[string]*Brake
}

// NewService builds the brake manager. broadcast may be nil.
func NewService(controller Controller, decisions Suspender, ticks Ticks, broadcast Broadcaster) *Service {
	return &Service{
		controller: controller,
		decisions:  decisions,
		broadcast:  broadcast,
		ticks:      ticks,
		active:     make(map[string]*Brake),
	}
}

// Engage validates the request, applies the behavior to every agent in
// scope, suspends their decisions (pause only), and records the brake.
func (s *Service) Engage(ctx context.Context, req Request) (*Brake, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	targets := s.selectTargets(req)
	brake := &Brake{
		ID:               uuid.NewString(),
		Scope:            req.Scope,
		AgentID:          req.AgentID,
		Workstream:       req.Workstream,
		Behavior:         req.Behavior,
		Reason:           req.Reason,
		ReleaseCondition: req.ReleaseCondition,
		DecisionID:       req.DecisionID,
		EngagedAt:        time.Now().UTC(),
		EngagedAtTick:    s.ticks.Current(),
	}
	if req.ReleaseCondition == ReleaseTimer {
		at := brake.EngagedAtTick + req.TimerTicks
		brake.ReleaseAtTick = &at
	}

	for _, target := range targets {
		var err error
		switch req.Behavior {
		case BehaviorPause:
			if err = s.controller.PauseAgent(ctx, target.AgentID); err == nil {
				s.decisions.SuspendAgentDecisions(target.AgentID)
			}
		case BehaviorKill:
			err = s.controller.KillAgent(ctx, target.AgentID)
		}
		if err != nil {
			slog.Warn("Brake could not stop agent", "agent_id", target.AgentID, "behavior", req.Behavior, "error", err)
			continue
		}
		brake.AffectedAgentIDs = append(brake.AffectedAgentIDs, target.AgentID)
	}

	s.mu.Lock()
	s.active[brake.ID] = brake
	s.mu.Unlock()

	slog.Info("Brake engaged",
		"brake_id", brake.ID,
		"scope", brake.Scope,
		"behavior", brake.Behavior,
		"affected", len(brake.AffectedAgentIDs))
	s.publish(brake, true)
	return copyBrake(brake), nil
}

// Release lifts a brake by id; an empty id lifts every active brake. Paused
// agents are resumed and their decisions revived.
func (s *Service) Release(ctx context.Context, brakeID string) ([]*Brake, error) {
	s.mu.Lock()
	var released []*Brake
	for id, b := range s.active {
		if brakeID != "" && id != brakeID {
			continue
		}
		delete(s.active, id)
		released = append(released, b)
	}
	s.mu.Unlock()

	if brakeID != "" && len(released) == 0 {
		return nil, fmt.Errorf("brake %s: %w", brakeID, store.ErrNotFound)
	}

	for _, b := range released {
		s.lift(ctx, b)
	}
	return released, nil
}

// OnTick releases timer brakes whose deadline has passed. Wire as a tick
// subscriber.
func (s *Service) OnTick(tick int64) {
	s.mu.Lock()
	var due []*Brake
	for id, b := range s.active {
		if b.ReleaseCondition == ReleaseTimer && b.ReleaseAtTick != nil && tick >= *b.ReleaseAtTick {
			delete(s.active, id)
			due = append(due, b)
		}
	}
	s.mu.Unlock()

	for _, b := range due {
		slog.Info("Brake timer expired", "brake_id", b.ID, "tick", tick)
		s.lift(context.Background(), b)
	}
}

// OnDecisionResolved releases brakes waiting on the given decision.
func (s *Service) OnDecisionResolved(decisionID string) {
	s.mu.Lock()
	var due []*Brake
	for id, b := range s.active {
		if b.ReleaseCondition == ReleaseDecision && b.DecisionID == decisionID {
			delete(s.active, id)
			due = append(due, b)
		}
	}
	s.mu.Unlock()

	for _, b := range due {
		slog.Info("Brake release decision resolved", "brake_id", b.ID, "decision_id", decisionID)
		s.lift(context.Background(), b)
	}
}

// Active returns copies of every engaged brake, newest first.
func (s *Service) Active() []*Brake {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Brake, 0, len(s.active))
	for _, b := range s.active {
		out = append(out, copyBrake(b))
	}
	sortBrakes(out)
	return out
}

// ForAgent reports the brake currently covering an agent, if any. Scope all
// covers every agent including ones spawned after engagement; narrower
// scopes cover the agents captured at engage time.
func (s *Service) ForAgent(agentID string) (*Brake, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.active {
		if b.Scope == ScopeAll {
			return copyBrake(b), true
		}
		for _, id := range b.AffectedAgentIDs {
			if id == agentID {
				return copyBrake(b), true
			}
		}
	}
	return nil, false
}

// lift resumes paused agents and revives their decisions, then broadcasts.
func (s *Service) lift(ctx context.Context, b *Brake) {
	if b.Behavior == BehaviorPause {
		for _, agentID := range b.AffectedAgentIDs {
			s.decisions.ResumeAgentDecisions(agentID)
			if err := s.controller.ResumeAgent(ctx, agentID); err != nil {
				slog.Warn("Brake release could not resume agent", "agent_id", agentID, "error", err)
			}
		}
	}
	slog.Info("Brake released", "brake_id", b.ID, "behavior", b.Behavior)
	s.publish(b, false)
}

func (s *Service) selectTargets(req Request) []AgentRef {
	agents := s.controller.ActiveAgents()
	switch req.Scope {
	case ScopeAll:
		return agents
	case ScopeAgent:
		for _, a := range agents {
			if a.AgentID == req.AgentID {
				return []AgentRef{a}
			}
		}
		return nil
	case ScopeWorkstream:
		var out []AgentRef
		for _, a := range agents {
			if a.Workstream == req.Workstream {
				out = append(out, a)
			}
		}
		return out
	}
	return nil
}

func (s *Service) publish(b *Brake, engaged bool) {
	if s.broadcast == nil {
		return
	}
	s.broadcast.Broadcast(models.WSTypeBrake, map[string]any{
		"engaged": engaged,
		"brake":   copyBrake(b),
	})
}

func validateRequest(req *Request) error {
	switch req.Scope {
	case ScopeAll:
	case ScopeAgent:
		if req.AgentID == "" {
			return store.NewValidationError("agentId", "required for agent scope")
		}
	case ScopeWorkstream:
		if req.Workstream == "" {
			return store.NewValidationError("workstream", "required for workstream scope")
		}
	default:
		return store.NewValidationError("scope", fmt.Sprintf("unknown scope %q", req.Scope))
	}

	switch req.Behavior {
	case BehaviorPause, BehaviorKill:
	default:
		return store.NewValidationError("behavior", fmt.Sprintf("unknown behavior %q", req.Behavior))
	}

	if req.ReleaseCondition == "" {
		req.ReleaseCondition = ReleaseManual
	}
	switch req.ReleaseCondition {
	case ReleaseManual:
	case ReleaseTimer:
		if req.TimerTicks <= 0 {
			return store.NewValidationError("timerTicks", "must be positive for timer release")
		}
	case ReleaseDecision:
		if req.DecisionID == "" {
			return store.NewValidationError("decisionId", "required for decision release")
		}
	default:
		return store.NewValidationError("releaseCondition", fmt.Sprintf("unknown release condition %q", req.ReleaseCondition))
	}
	return nil
}

func copyBrake(b *Brake) *Brake {
	out := *b
	out.AffectedAgentIDs = append([]string(nil), b.AffectedAgentIDs...)
	if b.ReleaseAtTick != nil {
		at := *b.ReleaseAtTick
		out.ReleaseAtTick = &at
	}
	return &out
}

func sortBrakes(brakes []*Brake) {
	sort.Slice(brakes, func(i, j int) bool {
		return brakes[i].EngagedAt.After(brakes[j].EngagedAt)
	})
}
