// Package toolgate is the synchronous approval checkpoint in front of risky
// tool calls. Agents block on RequestApproval; the gate ranks the call's
// risk, queues a tool-approval decision, and either auto-resolves it per the
// control mode or waits for a human with a hard timeout.
package toolgate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
)

// DefaultApprovalTimeout bounds how long a request blocks on a human.
const DefaultApprovalTimeout = 5 * time.Minute

// AgentDirectory answers whether an agent handle is registered.
type AgentDirectory interface {
	AgentStatus(agentID string) (string, bool)
}

// ModeSource reports the current control mode.
type ModeSource interface {
	Current() models.ControlMode
}

// TrustSource reports an agent's global trust score.
type TrustSource interface {
	GetScore(agentID string) int
}

// Publisher pushes synthetic envelopes onto the event bus so observers see
// gate decisions in the same stream as agent events.
type Publisher interface {
	Publish(env *models.EventEnvelope)
}

// ApprovalResult is the blocking answer handed back to the agent.
type ApprovalResult struct {
	DecisionID   string            `json:"decisionId"`
	Resolution   models.Resolution `json:"resolution"`
	AutoResolved bool              `json:"autoResolved"`
	TimedOut     bool              `json:"timedOut"`
}

// Approved reports whether the call may proceed.
func (r *ApprovalResult) Approved() bool {
	return r.Resolution.Action == models.ResolutionApprove ||
		r.Resolution.Action == models.ResolutionApproveAlways ||
		r.Resolution.Action == models.ResolutionModify
}

// Stats counts gate activity since startup.
type Stats struct {
	Requested    int `json:"requested"`
	AutoApproved int `json:"autoApproved"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	Modified     int `json:"modified"`
	TimedOut     int `json:"timedOut"`
}

// Gate mediates tool approvals. ObserveStatus and ObserveResolution are
// wired to the bus and the decision queue at startup.
type Gate struct {
	queue    *decision.Queue
	resolver *Resolver
	agents   AgentDirectory
	modes    ModeSource
	trust    TrustSource
	ticks    Ticks
	bus      Publisher
	timeout  time.Duration

	mu          sync.Mutex
	reasoning   map[string]string
	alwaysAllow map[string]map[string]bool
	stats       Stats
}

// NewGate builds a gate. bus may be nil in tests.
func NewGate(queue *decision.Queue, resolver *Resolver, agents AgentDirectory, modes ModeSource, trustSource TrustSource, ticks Ticks, bus Publisher) *Gate {
	return &Gate{
		queue:       queue,
		resolver:    resolver,
		agents:      agents,
		modes:       modes,
		trust:       trustSource,
		ticks:       ticks,
		bus:         bus,
		timeout:     DefaultApprovalTimeout,
		reasoning:   make(map[string]string),
		alwaysAllow: make(map[string]map[string]bool),
	}
}

// SetTimeout overrides the human-approval timeout.
func (g *Gate) SetTimeout(d time.Duration) {
	g.timeout = d
}

// ObserveStatus caches the latest status message per agent; it becomes the
// reasoning attached to that agent's next approval request.
func (g *Gate) ObserveStatus(env *models.EventEnvelope) {
	if env.Event.Status == nil || env.Event.Status.Message == "" {
		return
	}
	g.mu.Lock()
	g.reasoning[env.AgentID] = env.Event.Status.Message
	g.mu.Unlock()
}

// ObserveResolution tracks gate stats and approve-always grants. Registered
// as a queue resolution hook; non-tool decisions are ignored.
func (g *Gate) ObserveResolution(item decision.Item, res models.Resolution) {
	if item.Event.Kind != models.DecisionKindToolApproval {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case res.ActionKind == models.ActionKindTimeout:
		g.stats.TimedOut++
	case res.AutoResolved:
		g.stats.AutoApproved++
	case res.Action == models.ResolutionApprove, res.Action == models.ResolutionApproveAlways:
		g.stats.Approved++
	case res.Action == models.ResolutionReject:
		g.stats.Rejected++
	case res.Action == models.ResolutionModify:
		g.stats.Modified++
	}
	if res.Action == models.ResolutionApproveAlways {
		grants := g.alwaysAllow[item.Event.AgentID]
		if grants == nil {
			grants = make(map[string]bool)
			g.alwaysAllow[item.Event.AgentID] = grants
		}
		grants[item.Event.ToolName] = true
	}
}

// GetStats returns a copy of the counters.
func (g *Gate) GetStats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}

// RequestApproval blocks until the tool call is resolved, auto-resolving
// where the control mode allows. The decision is queued and published before
// any wait, so observers can always look it up by id. A timed-out wait
// resolves the decision as a rejection.
func (g *Gate) RequestApproval(ctx context.Context, agentID, toolName string, toolArgs json.RawMessage, toolUseID string) (*ApprovalResult, error) {
	if agentID == "" {
		return nil, store.NewValidationError("agentId", "cannot be empty")
	}
	if toolName == "" {
		return nil, store.NewValidationError("toolName", "cannot be empty")
	}
	if _, ok := g.agents.AgentStatus(agentID); !ok {
		return nil, fmt.Errorf("agent %s: %w", agentID, store.ErrNotFound)
	}

	risk := riskFor(toolName)
	bashRisk := ""
	if toolName == "Bash" {
		bashRisk = bashRiskFromArgs(toolArgs)
	}

	dec := models.DecisionEvent{
		DecisionID:  uuid.NewString(),
		AgentID:     agentID,
		Kind:        models.DecisionKindToolApproval,
		Severity:    risk.Severity,
		BlastRadius: risk.BlastRadius,
		ToolName:    toolName,
		ToolArgs:    toolArgs,
		Reasoning:   g.lastReasoning(agentID),
		ToolUseID:   toolUseID,
		BashRisk:    bashRisk,
	}

	if _, err := g.queue.Enqueue(dec, g.ticks.Current()); err != nil {
		return nil, err
	}
	g.mu.Lock()
	g.stats.Requested++
	g.mu.Unlock()
	g.publishDecision(&dec)

	if rationale, ok := g.autoApproval(agentID, toolName, risk.BlastRadius, bashRisk); ok {
		res := models.Resolution{
			Type:         models.DecisionKindToolApproval,
			Action:       models.ResolutionApprove,
			Rationale:    rationale,
			ActionKind:   models.ActionKindBlind,
			AutoResolved: true,
			ResolvedBy:   "system",
		}
		if _, err := g.resolver.Resolve(ctx, dec.DecisionID, res, ""); err != nil {
			return nil, err
		}
		return &ApprovalResult{DecisionID: dec.DecisionID, Resolution: res, AutoResolved: true}, nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	res, err := g.queue.WaitForResolution(waitCtx, dec.DecisionID)
	if err == nil {
		return &ApprovalResult{DecisionID: dec.DecisionID, Resolution: res, AutoResolved: res.AutoResolved}, nil
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	timeoutRes := models.Resolution{
		Type:         models.DecisionKindToolApproval,
		Action:       models.ResolutionReject,
		Rationale:    "Timed out waiting for human approval",
		ActionKind:   models.ActionKindTimeout,
		AutoResolved: true,
		ResolvedBy:   "system",
	}
	if _, rerr := g.resolver.Resolve(context.WithoutCancel(ctx), dec.DecisionID, timeoutRes, ""); rerr != nil {
		// A human may have won the race; surface whatever landed.
		if errors.Is(rerr, store.ErrConflict) {
			if item, ok := g.queue.Get(dec.DecisionID); ok && item.Resolution != nil {
				return &ApprovalResult{DecisionID: dec.DecisionID, Resolution: *item.Resolution, AutoResolved: item.Resolution.AutoResolved}, nil
			}
		}
		return nil, rerr
	}
	slog.Info("Tool approval timed out", "decision_id", dec.DecisionID, "agent_id", agentID, "tool", toolName)
	return &ApprovalResult{DecisionID: dec.DecisionID, Resolution: timeoutRes, AutoResolved: true, TimedOut: true}, nil
}

// lastReasoning returns the cached status message for an agent.
func (g *Gate) lastReasoning(agentID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reasoning[agentID]
}

// autoApproval decides whether the current control mode resolves the request
// without a human, returning the rationale when it does.
func (g *Gate) autoApproval(agentID, toolName, blastRadius, bashRisk string) (string, bool) {
	g.mu.Lock()
	standing := g.alwaysAllow[agentID][toolName]
	g.mu.Unlock()
	if standing {
		return "Auto-approved by standing approve-always grant", true
	}

	mode := g.modes.Current()
	switch mode {
	case models.ModeOrchestrator:
		return "", false
	case models.ModeEcosystem:
		if blastRadius == models.BlastLarge && bashRisk == BashDestructive {
			return "", false
		}
		return fmt.Sprintf("Auto-approved by %s mode", mode), true
	case models.ModeAdaptive:
		if g.trust.GetScore(agentID) >= requiredTrust(blastRadius, bashRisk) {
			return fmt.Sprintf("Auto-approved by %s mode", mode), true
		}
		return "", false
	default:
		return "", false
	}
}

// publishDecision mirrors the queued decision onto the event bus as a
// synthetic envelope so stream observers see it alongside agent events.
func (g *Gate) publishDecision(dec *models.DecisionEvent) {
	if g.bus == nil {
		return
	}
	g.bus.Publish(&models.EventEnvelope{
		SourceEventID:    "gate-" + dec.DecisionID,
		SourceOccurredAt: time.Now().UTC(),
		RunID:            "control-plane",
		AgentID:          dec.AgentID,
		IngestedAt:       time.Now().UTC(),
		Event: models.AgentEvent{
			Type:     models.EventTypeDecision,
			Decision: dec,
		},
	})
}
