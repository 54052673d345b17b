// Package decision implements the in-memory decision queue: pending human
// decisions ordered by priority, single terminal resolution, tick-driven
// timeouts, and orphan/brake handling.
package decision

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/steward-io/steward/pkg/models"
)

// Decision lifecycle states. resolved and timed_out are terminal.
const (
	StatusPending   = "pending"
	StatusSuspended = "suspended"
	StatusTriage    = "triage"
	StatusResolved  = "resolved"
	StatusTimedOut  = "timed_out"
)

// Badges attached when a decision changes state for reasons outside the
// decision itself.
const (
	BadgeAgentKilled = "agent killed"
	BadgeAgentBraked = "source agent braked"
)

// orphanPriorityBoost lifts decisions whose agent died above everything else.
const orphanPriorityBoost = 100

// Item is the tracked state of one queued decision.
type Item struct {
	Event          models.DecisionEvent `json:"event"`
	Status         string               `json:"status"`
	EnqueuedAtTick int64                `json:"enqueuedAtTick"`
	Priority       int                  `json:"priority"`
	Resolution     *models.Resolution   `json:"resolution,omitempty"`
	ResolvedAt     *time.Time           `json:"resolvedAt,omitempty"`
	Badge          string               `json:"badge,omitempty"`
}

// Terminal reports whether the item can no longer be resolved.
func (it *Item) Terminal() bool {
	return it.Status == StatusResolved || it.Status == StatusTimedOut
}

// Policy tunes queue-wide behavior. A nil TimeoutTicks disables the default
// deadline; per-decision dueByTick still applies.
type Policy struct {
	TimeoutTicks *int64
}

// ResolutionHook observes every terminal transition (human resolve or
// timeout). Called outside the queue lock.
type ResolutionHook func(item Item, res models.Resolution)

// Queue is the in-memory decision queue. All methods are safe for concurrent
// use.
type Queue struct {
	mu      sync.Mutex
	items   map[string]*Item
	waiters map[string][]chan models.Resolution
	policy  Policy
	hooks   []ResolutionHook
}

// NewQueue creates an empty queue with the given policy.
func NewQueue(policy Policy) *Queue {
	return &Queue{
		items:   make(map[string]*Item),
		waiters: make(map[string][]chan models.Resolution),
		policy:  policy,
	}
}

// OnResolution registers a hook fired after every terminal transition.
// Must be called during wiring, before the queue is shared.
func (q *Queue) OnResolution(hook ResolutionHook) {
	q.hooks = append(q.hooks, hook)
}

// basePriority maps severity to the base priority. Higher runs first.
func basePriority(severity string) int {
	switch severity {
	case models.SeverityWarning:
		return 10
	case models.SeverityLow:
		return 20
	case models.SeverityMedium:
		return 30
	case models.SeverityHigh:
		return 40
	case models.SeverityCritical:
		return 50
	default:
		return 30
	}
}

// Enqueue admits a decision at the given tick. A duplicate decisionId is
// silently ignored and reported as false.
func (q *Queue) Enqueue(event models.DecisionEvent, currentTick int64) (bool, error) {
	if err := event.Validate(); err != nil {
		return false, fmt.Errorf("invalid decision event: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if _, exists := q.items[event.DecisionID]; exists {
		slog.Debug("Ignoring duplicate decision enqueue", "decision_id", event.DecisionID)
		return false, nil
	}

	q.items[event.DecisionID] = &Item{
		Event:          event,
		Status:         StatusPending,
		EnqueuedAtTick: currentTick,
		Priority:       basePriority(event.Severity),
	}
	slog.Info("Decision enqueued",
		"decision_id", event.DecisionID,
		"agent_id", event.AgentID,
		"kind", event.Kind,
		"tick", currentTick)
	return true, nil
}

// Get returns a copy of the tracked item.
func (q *Queue) Get(decisionID string) (Item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	it, ok := q.items[decisionID]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Resolve applies the single terminal resolution. Returns false when the
// decision is unknown or already terminal; the queue state is untouched in
// that case.
func (q *Queue) Resolve(decisionID string, res models.Resolution) (Item, bool) {
	q.mu.Lock()
	it, ok := q.items[decisionID]
	if !ok || it.Terminal() {
		q.mu.Unlock()
		return Item{}, false
	}

	now := time.Now().UTC()
	it.Status = StatusResolved
	it.Resolution = &res
	it.ResolvedAt = &now
	snapshot := *it
	waiters := q.takeWaitersLocked(decisionID)
	q.mu.Unlock()

	slog.Info("Decision resolved",
		"decision_id", decisionID,
		"action_kind", res.ActionKind,
		"resolved_by", res.ResolvedBy)

	q.fire(snapshot, res, waiters)
	return snapshot, true
}

// WaitForResolution blocks until the decision reaches a terminal state or ctx
// expires. Already-terminal decisions return immediately.
func (q *Queue) WaitForResolution(ctx context.Context, decisionID string) (models.Resolution, error) {
	q.mu.Lock()
	it, ok := q.items[decisionID]
	if !ok {
		q.mu.Unlock()
		return models.Resolution{}, fmt.Errorf("unknown decision %s", decisionID)
	}
	if it.Terminal() && it.Resolution != nil {
		res := *it.Resolution
		q.mu.Unlock()
		return res, nil
	}

	// Buffered so the resolver never blocks on a slow or abandoned waiter.
	ch := make(chan models.Resolution, 1)
	q.waiters[decisionID] = append(q.waiters[decisionID], ch)
	q.mu.Unlock()

	select {
	case res := <-ch:
		return res, nil
	case <-ctx.Done():
		q.dropWaiter(decisionID, ch)
		return models.Resolution{}, ctx.Err()
	}
}

// ListPending returns pending decisions sorted by priority descending, ties
// broken by enqueue tick ascending. Empty agentID lists all agents. Triage
// and suspended decisions are excluded; ListAll surfaces those.
func (q *Queue) ListPending(agentID string) []Item {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Item, 0, len(q.items))
	for _, it := range q.items {
		if it.Status != StatusPending {
			continue
		}
		if agentID != "" && it.Event.AgentID != agentID {
			continue
		}
		out = append(out, *it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].EnqueuedAtTick < out[j].EnqueuedAtTick
	})
	return out
}

// ListAll returns every tracked decision regardless of status.
func (q *Queue) ListAll() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Item, 0, len(q.items))
	for _, it := range q.items {
		out = append(out, *it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].EnqueuedAtTick < out[j].EnqueuedAtTick
	})
	return out
}

// HandleAgentKilled moves the agent's non-terminal decisions to triage with
// elevated priority so a human reviews them even though the agent is gone.
// Returns the affected decisions.
func (q *Queue) HandleAgentKilled(agentID string) []Item {
	q.mu.Lock()
	affected := make([]Item, 0, 4)
	for _, it := range q.items {
		if it.Event.AgentID != agentID {
			continue
		}
		if it.Status != StatusPending && it.Status != StatusSuspended {
			continue
		}
		it.Status = StatusTriage
		it.Badge = BadgeAgentKilled
		it.Priority += orphanPriorityBoost
		affected = append(affected, *it)
	}
	q.mu.Unlock()

	if len(affected) > 0 {
		slog.Info("Orphaned decisions moved to triage", "agent_id", agentID, "count", len(affected))
	}
	return affected
}

// SuspendAgentDecisions parks the agent's pending decisions while the agent
// is braked. Returns how many were suspended.
func (q *Queue) SuspendAgentDecisions(agentID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for _, it := range q.items {
		if it.Event.AgentID == agentID && it.Status == StatusPending {
			it.Status = StatusSuspended
			it.Badge = BadgeAgentBraked
			n++
		}
	}
	return n
}

// ResumeAgentDecisions reverses SuspendAgentDecisions. Triage decisions stay
// in triage; only brake-suspended ones come back.
func (q *Queue) ResumeAgentDecisions(agentID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for _, it := range q.items {
		if it.Event.AgentID == agentID && it.Status == StatusSuspended {
			it.Status = StatusPending
			it.Badge = ""
			n++
		}
	}
	return n
}

// OnTick auto-resolves every pending decision whose effective deadline has
// passed. Suspended and triage decisions never time out. Returns the items
// that timed out on this tick.
func (q *Queue) OnTick(tick int64) []Item {
	type fired struct {
		item    Item
		res     models.Resolution
		waiters []chan models.Resolution
	}

	q.mu.Lock()
	var due []fired
	for _, it := range q.items {
		if it.Status != StatusPending {
			continue
		}
		deadline, ok := q.deadlineLocked(it)
		if !ok || deadline > tick {
			continue
		}

		res := timeoutResolution(&it.Event)
		now := time.Now().UTC()
		it.Status = StatusTimedOut
		it.Resolution = &res
		it.ResolvedAt = &now
		due = append(due, fired{
			item:    *it,
			res:     res,
			waiters: q.takeWaitersLocked(it.Event.DecisionID),
		})
	}
	q.mu.Unlock()

	out := make([]Item, 0, len(due))
	for _, f := range due {
		slog.Info("Decision timed out",
			"decision_id", f.item.Event.DecisionID,
			"agent_id", f.item.Event.AgentID,
			"tick", tick)
		q.fire(f.item, f.res, f.waiters)
		out = append(out, f.item)
	}
	return out
}

// deadlineLocked computes the effective deadline: the decision's own dueByTick
// when present, otherwise enqueue tick plus the policy timeout. ok=false means
// the decision never times out.
func (q *Queue) deadlineLocked(it *Item) (int64, bool) {
	if it.Event.DueByTick != nil {
		return *it.Event.DueByTick, true
	}
	if q.policy.TimeoutTicks == nil {
		return 0, false
	}
	return it.EnqueuedAtTick + *q.policy.TimeoutTicks, true
}

// timeoutResolution builds the kind-specific auto-resolution.
func timeoutResolution(event *models.DecisionEvent) models.Resolution {
	if event.Kind == models.DecisionKindOption {
		chosen := event.RecommendedOptionID
		if chosen == "" && len(event.Options) > 0 {
			chosen = event.Options[0].ID
		}
		return models.Resolution{
			Type:           models.DecisionKindOption,
			ChosenOptionID: chosen,
			Rationale:      "timeout: auto-selected recommended option",
			ActionKind:     models.ActionKindReview,
			AutoResolved:   true,
		}
	}
	return models.Resolution{
		Type:         models.DecisionKindToolApproval,
		Action:       models.ResolutionApprove,
		Rationale:    "timeout: default approve",
		ActionKind:   models.ActionKindReview,
		AutoResolved: true,
	}
}

// takeWaitersLocked detaches the waiter list for a decision.
func (q *Queue) takeWaitersLocked(decisionID string) []chan models.Resolution {
	waiters := q.waiters[decisionID]
	delete(q.waiters, decisionID)
	return waiters
}

// dropWaiter removes one abandoned waiter channel.
func (q *Queue) dropWaiter(decisionID string, ch chan models.Resolution) {
	q.mu.Lock()
	defer q.mu.Unlock()
	waiters := q.waiters[decisionID]
	for i, w := range waiters {
		if w == ch {
			q.waiters[decisionID] = append(waiters[:i], waiters[i+1:]...)
			break
		}
	}
	if len(q.waiters[decisionID]) == 0 {
		delete(q.waiters, decisionID)
	}
}

// fire delivers the resolution to waiters and hooks, outside the queue lock.
// Hook panics are isolated so queue state never corrupts.
func (q *Queue) fire(item Item, res models.Resolution, waiters []chan models.Resolution) {
	for _, ch := range waiters {
		ch <- res
	}
	for _, hook := range q.hooks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Resolution hook panicked",
						"decision_id", item.Event.DecisionID, "panic", r)
				}
			}()
			hook(item, res)
		}()
	}
}
