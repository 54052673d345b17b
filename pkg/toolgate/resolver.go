package toolgate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/trust"
)

// Broadcaster pushes outbound messages to connected dashboard clients.
type Broadcaster interface {
	Broadcast(messageType string, payload any)
}

// DecisionForwarder delivers a resolution to the agent that raised the
// decision, through its plugin.
type DecisionForwarder interface {
	ResolveDecision(ctx context.Context, agentID, decisionID string, res *models.Resolution) error
}

// Ticks reports the current tick.
type Ticks interface {
	Current() int64
}

// Resolver applies the shared side-effect pipeline that every resolution,
// human or automatic, flows through: queue state, trust outcomes, audit,
// broadcasts, and plugin forwarding.
type Resolver struct {
	queue     *decision.Queue
	store     *store.Store
	trust     *trust.Engine
	ticks     Ticks
	broadcast Broadcaster
	forwarder DecisionForwarder
}

// NewResolver wires the pipeline. broadcast and forwarder may be nil.
func NewResolver(queue *decision.Queue, st *store.Store, engine *trust.Engine, ticks Ticks, broadcast Broadcaster, forwarder DecisionForwarder) *Resolver {
	return &Resolver{
		queue:     queue,
		store:     st,
		trust:     engine,
		ticks:     ticks,
		broadcast: broadcast,
		forwarder: forwarder,
	}
}

// Resolve finalizes a decision and runs every downstream side effect.
// resolvedBy overrides the resolution's ResolvedBy when non-empty. Returns
// the resolved item, ErrNotFound for unknown decisions, and ErrConflict when
// the decision is already terminal.
func (r *Resolver) Resolve(ctx context.Context, decisionID string, res models.Resolution, resolvedBy string) (decision.Item, error) {
	if err := res.Validate(); err != nil {
		return decision.Item{}, store.NewValidationError("resolution", err.Error())
	}
	if resolvedBy != "" {
		res.ResolvedBy = resolvedBy
	}

	if _, ok := r.queue.Get(decisionID); !ok {
		return decision.Item{}, fmt.Errorf("decision %s: %w", decisionID, store.ErrNotFound)
	}
	item, ok := r.queue.Resolve(decisionID, res)
	if !ok {
		return decision.Item{}, fmt.Errorf("decision %s already resolved: %w", decisionID, store.ErrConflict)
	}

	agentID := item.Event.AgentID
	kinds, workstreams := r.affectedContext(ctx, &item.Event)

	outcome := mapOutcome(&item.Event, &res)
	delta := 0
	if !res.AutoResolved && outcome != "" {
		risk := riskFor(item.Event.ToolName)
		delta = r.trust.ApplyOutcome(agentID, outcome, r.ticks.Current(), &trust.OutcomeContext{
			BlastRadius:   item.Event.BlastRadius,
			ArtifactKinds: kinds,
			Workstreams:   workstreams,
			ToolCategory:  risk.Category,
		})
	}
	flushed := r.trust.FlushDomainLog(agentID)

	details := map[string]interface{}{
		"decisionId":     decisionID,
		"outcome":        string(outcome),
		"effectiveDelta": delta,
		"autoResolved":   res.AutoResolved,
	}
	if item.Event.Severity != "" {
		details["severity"] = item.Event.Severity
	}
	if item.Event.BlastRadius != "" {
		details["blastRadius"] = item.Event.BlastRadius
	}
	if item.Event.ToolName != "" {
		details["toolName"] = item.Event.ToolName
	}
	if len(item.Event.AffectedArtifactIDs) > 0 {
		details["affectedArtifactIds"] = item.Event.AffectedArtifactIDs
		details["affectedKinds"] = kinds
	}
	if len(flushed) > 0 {
		details["domainOutcomes"] = flushed
	}
	caller := res.ResolvedBy
	if caller == "" {
		caller = "system"
	}
	if err := r.store.AppendAudit(ctx, "trust", agentID, "trust_outcome", caller, details); err != nil {
		slog.Warn("Failed to append trust outcome audit", "decision_id", decisionID, "error", err)
	}

	if r.broadcast != nil && delta != 0 {
		r.broadcast.Broadcast(models.WSTypeTrustUpdate, map[string]interface{}{
			"agentId": agentID,
			"score":   r.trust.GetScore(agentID),
			"delta":   delta,
			"outcome": string(outcome),
		})
	}

	if r.forwarder != nil {
		if err := r.forwarder.ResolveDecision(ctx, agentID, decisionID, &res); err != nil {
			slog.Warn("Failed to forward resolution to agent", "decision_id", decisionID, "agent_id", agentID, "error", err)
		}
	}

	if r.broadcast != nil {
		r.broadcast.Broadcast(models.WSTypeDecisionResolved, map[string]interface{}{
			"decisionId": decisionID,
			"agentId":    agentID,
			"resolution": res,
		})
	}

	return item, nil
}

// affectedContext resolves the artifact kinds and workstreams touched by a
// decision. Unknown artifact ids are skipped.
func (r *Resolver) affectedContext(ctx context.Context, ev *models.DecisionEvent) ([]string, []string) {
	var kinds, workstreams []string
	seenKind := map[string]bool{}
	seenWs := map[string]bool{}
	for _, id := range ev.AffectedArtifactIDs {
		art, err := r.store.GetArtifact(ctx, id)
		if err != nil {
			continue
		}
		if k := string(art.Kind); k != "" && !seenKind[k] {
			seenKind[k] = true
			kinds = append(kinds, k)
		}
		if art.Workstream != "" && !seenWs[art.Workstream] {
			seenWs[art.Workstream] = true
			workstreams = append(workstreams, art.Workstream)
		}
	}
	return kinds, workstreams
}

// mapOutcome translates a resolution into the trust outcome it implies.
// Option decisions without a recommendation imply nothing.
func mapOutcome(ev *models.DecisionEvent, res *models.Resolution) trust.Outcome {
	switch ev.Kind {
	case models.DecisionKindOption:
		if ev.RecommendedOptionID == "" {
			return ""
		}
		if res.ChosenOptionID == ev.RecommendedOptionID {
			return trust.OutcomeHumanApprovesRecommended
		}
		return trust.OutcomeHumanOverridesDecision
	case models.DecisionKindToolApproval:
		switch res.Action {
		case models.ResolutionApprove:
			return trust.OutcomeHumanApprovesToolCall
		case models.ResolutionApproveAlways:
			return trust.OutcomeHumanApprovesAlways
		case models.ResolutionReject:
			return trust.OutcomeHumanRejectsToolCall
		case models.ResolutionModify:
			return trust.OutcomeHumanOverridesDecision
		}
	}
	return ""
}
