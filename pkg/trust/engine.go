// Package trust scores how much autonomy each agent has earned. Scores move
// on behavioral outcomes (clean completions, human approvals and rejections,
// coherence issues), decay toward a neutral target during inactivity, and
// gate what the tool gate will auto-approve.
package trust

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Persister receives score changes for durable storage. The engine is the
// runtime authority; persistence is write-through and best-effort.
type Persister interface {
	SetTrustScore(ctx context.Context, agentID string, score int, reason string) (int, error)
	StoreDomainTrustScores(ctx context.Context, agentID string, scores map[string]int) error
}

// OutcomeContext carries optional context that shapes how an outcome lands:
// the blast radius of the action for risk weighting, and the artifact kinds,
// workstreams, and tool category it touched for domain scoring.
type OutcomeContext struct {
	BlastRadius   string   `json:"blastRadius,omitempty"`
	ArtifactKinds []string `json:"artifactKinds,omitempty"`
	Workstreams   []string `json:"workstreams,omitempty"`
	ToolCategory  string   `json:"toolCategory,omitempty"`
}

// OutcomeRecord is one entry in the per-agent domain outcome log, drained by
// FlushDomainLog for audit persistence.
type OutcomeRecord struct {
	AgentID      string         `json:"agentId"`
	Outcome      Outcome        `json:"outcome"`
	Tick         int64          `json:"tick"`
	GlobalDelta  int            `json:"globalDelta"`
	GlobalScore  int            `json:"globalScore"`
	DomainDeltas map[string]int `json:"domainDeltas,omitempty"`
	Workstreams  []string       `json:"workstreams,omitempty"`
	ToolCategory string         `json:"toolCategory,omitempty"`
	RecordedAt   time.Time      `json:"recordedAt"`
}

type domainState struct {
	score            int
	lastActivityTick int64
}

type agentState struct {
	score            int
	lastActivityTick int64
	domains          map[string]*domainState
}

// Engine holds all trust state behind a single mutex. Callbacks and
// persistence run outside the lock.
type Engine struct {
	mu        sync.Mutex
	cfg       Config
	agents    map[string]*agentState
	logs      map[string][]OutcomeRecord
	persister Persister
}

// NewEngine builds an engine with the given config. persister may be nil.
func NewEngine(cfg Config, persister Persister) *Engine {
	if cfg.RiskWeights == nil {
		cfg.RiskWeights = DefaultConfig().RiskWeights
	}
	return &Engine{
		cfg:       cfg,
		agents:    make(map[string]*agentState),
		logs:      make(map[string][]OutcomeRecord),
		persister: persister,
	}
}

// RegisterAgent creates in-memory state for the agent at the initial score.
// Registering an already-known agent is a no-op.
func (e *Engine) RegisterAgent(agentID string, tick int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.agents[agentID]; ok {
		return
	}
	e.agents[agentID] = &agentState{
		score:            e.cfg.InitialScore,
		lastActivityTick: tick,
		domains:          make(map[string]*domainState),
	}
}

// Hydrate seeds an agent's state from persisted scores, used when resuming
// an agent whose history predates this process.
func (e *Engine) Hydrate(agentID string, score int, domains map[string]int, tick int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := &agentState{
		score:            clamp(score, e.cfg.FloorScore, e.cfg.CeilingScore),
		lastActivityTick: tick,
		domains:          make(map[string]*domainState, len(domains)),
	}
	for domain, ds := range domains {
		st.domains[domain] = &domainState{
			score:            clamp(ds, e.cfg.FloorScore, e.cfg.CeilingScore),
			lastActivityTick: tick,
		}
	}
	e.agents[agentID] = st
}

// RemoveAgent drops the agent's in-memory state and any unflushed log
// entries. Persisted scores survive for a future resume.
func (e *Engine) RemoveAgent(agentID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.agents, agentID)
	delete(e.logs, agentID)
}

// ApplyOutcome applies a behavioral outcome to the agent's global score and,
// when octx names artifact kinds, to the matching domain scores. Returns the
// effective delta applied to the global score.
//
// The raw table delta is first subject to diminishing returns: a positive
// delta that would land the score above DiminishingReturnThreshold, or that
// starts there, is scaled by DiminishingReturnFactor and floored. If risk
// weighting is enabled and octx carries a blast radius, positive deltas are
// then scaled by the radius weight; negative deltas are never softened.
func (e *Engine) ApplyOutcome(agentID string, outcome Outcome, tick int64, octx *OutcomeContext) int {
	e.mu.Lock()
	st, ok := e.agents[agentID]
	if !ok {
		st = &agentState{
			score:            e.cfg.InitialScore,
			lastActivityTick: tick,
			domains:          make(map[string]*domainState),
		}
		e.agents[agentID] = st
	}

	raw := outcome.Delta()
	delta := e.effectiveDeltaLocked(st.score, raw, octx)
	st.score = clamp(st.score+delta, e.cfg.FloorScore, e.cfg.CeilingScore)
	st.lastActivityTick = tick

	var domainDeltas map[string]int
	if octx != nil && len(octx.ArtifactKinds) > 0 {
		domainDeltas = make(map[string]int, len(octx.ArtifactKinds))
		for _, kind := range octx.ArtifactKinds {
			if kind == "" {
				continue
			}
			ds, exists := st.domains[kind]
			if !exists {
				ds = &domainState{score: e.cfg.InitialScore}
				st.domains[kind] = ds
			}
			dd := e.effectiveDeltaLocked(ds.score, raw, octx)
			ds.score = clamp(ds.score+dd, e.cfg.FloorScore, e.cfg.CeilingScore)
			ds.lastActivityTick = tick
			domainDeltas[kind] = dd
		}
	}

	rec := OutcomeRecord{
		AgentID:      agentID,
		Outcome:      outcome,
		Tick:         tick,
		GlobalDelta:  delta,
		GlobalScore:  st.score,
		DomainDeltas: domainDeltas,
		RecordedAt:   time.Now().UTC(),
	}
	if octx != nil {
		rec.Workstreams = octx.Workstreams
		rec.ToolCategory = octx.ToolCategory
	}
	e.logs[agentID] = append(e.logs[agentID], rec)

	score := st.score
	domains := snapshotDomains(st)
	e.mu.Unlock()

	e.persist(agentID, score, domains, string(outcome))
	return delta
}

// effectiveDeltaLocked applies diminishing returns and risk weighting to a
// raw delta for the given current score. Caller holds the mutex.
func (e *Engine) effectiveDeltaLocked(score, raw int, octx *OutcomeContext) int {
	delta := raw
	if delta > 0 && (score >= e.cfg.DiminishingReturnThreshold || score+delta > e.cfg.DiminishingReturnThreshold) {
		delta = floorScale(delta, e.cfg.DiminishingReturnFactor)
	}
	if delta > 0 && e.cfg.RiskWeightingEnabled && octx != nil && octx.BlastRadius != "" {
		if weight, ok := e.cfg.RiskWeights[octx.BlastRadius]; ok {
			delta = floorScale(delta, weight)
		}
	}
	return delta
}

// OnTick decays inactive agents toward the decay target. An agent or domain
// is inactive once currentTick minus its last activity exceeds
// InactivityThresholdTicks. Decay never crosses the target.
func (e *Engine) OnTick(tick int64) {
	e.mu.Lock()
	rate := e.cfg.DecayRatePerTick
	if rate <= 0 {
		e.mu.Unlock()
		return
	}
	target := e.effectiveTargetLocked()

	type change struct {
		agentID string
		score   int
		domains map[string]int
	}
	var changes []change
	for agentID, st := range e.agents {
		changed := false
		if tick-st.lastActivityTick > e.cfg.InactivityThresholdTicks {
			next := decayStep(st.score, target, rate)
			if next != st.score {
				st.score = next
				changed = true
			}
		}
		for _, ds := range st.domains {
			if tick-ds.lastActivityTick > e.cfg.InactivityThresholdTicks {
				next := decayStep(ds.score, target, rate)
				if next != ds.score {
					ds.score = next
					changed = true
				}
			}
		}
		if changed {
			changes = append(changes, change{agentID: agentID, score: st.score, domains: snapshotDomains(st)})
		}
	}
	e.mu.Unlock()

	for _, c := range changes {
		e.persist(c.agentID, c.score, c.domains, "decay")
	}
}

func (e *Engine) effectiveTargetLocked() int {
	target := e.cfg.DecayTargetScore
	if target > e.cfg.DecayCeiling {
		target = e.cfg.DecayCeiling
	}
	if target < e.cfg.FloorScore {
		target = e.cfg.FloorScore
	}
	return target
}

// decayStep moves score one decay step toward target without overshooting.
func decayStep(score, target, rate int) int {
	switch {
	case score > target:
		if score-rate < target {
			return target
		}
		return score - rate
	case score < target:
		if score+rate > target {
			return target
		}
		return score + rate
	default:
		return score
	}
}

// Config returns a copy of the configuration currently in force.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Reconfigure merges a partial config into the engine. Existing scores are
// left untouched; only future outcome and decay math changes.
func (e *Engine) Reconfigure(patch ConfigPatch) Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	patch.apply(&e.cfg)
	if e.cfg.RiskWeights == nil {
		e.cfg.RiskWeights = DefaultConfig().RiskWeights
	}
	return e.cfg
}

// ApplyProfile reconfigures the engine with a named calibration profile.
func (e *Engine) ApplyProfile(name string) (Config, error) {
	patch, err := LookupProfile(name)
	if err != nil {
		return Config{}, err
	}
	slog.Info("Applying trust calibration profile", "profile", name)
	return e.Reconfigure(patch), nil
}

// FlushDomainLog drains and returns the agent's accumulated outcome records.
func (e *Engine) FlushDomainLog(agentID string) []OutcomeRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	recs := e.logs[agentID]
	delete(e.logs, agentID)
	return recs
}

// GetScore returns the agent's global score, or the configured initial score
// for an agent the engine has never seen.
func (e *Engine) GetScore(agentID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st, ok := e.agents[agentID]; ok {
		return st.score
	}
	return e.cfg.InitialScore
}

// GetDomainScore returns the agent's score for one domain and whether the
// domain has any history.
func (e *Engine) GetDomainScore(agentID, domain string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st, ok := e.agents[agentID]; ok {
		if ds, ok := st.domains[domain]; ok {
			return ds.score, true
		}
	}
	return e.cfg.InitialScore, false
}

// GetDomainScores returns a copy of the agent's per-domain scores.
func (e *Engine) GetDomainScores(agentID string) map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.agents[agentID]
	if !ok {
		return map[string]int{}
	}
	return snapshotDomains(st)
}

// GetAllScores returns a copy of every agent's global score.
func (e *Engine) GetAllScores() map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	scores := make(map[string]int, len(e.agents))
	for agentID, st := range e.agents {
		scores[agentID] = st.score
	}
	return scores
}

// GetAllDomainScores returns a copy of every agent's per-domain scores.
func (e *Engine) GetAllDomainScores() map[string]map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	all := make(map[string]map[string]int, len(e.agents))
	for agentID, st := range e.agents {
		all[agentID] = snapshotDomains(st)
	}
	return all
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	cfg := e.cfg
	cfg.RiskWeights = make(map[string]float64, len(e.cfg.RiskWeights))
	for k, v := range e.cfg.RiskWeights {
		cfg.RiskWeights[k] = v
	}
	return cfg
}

func (e *Engine) persist(agentID string, score int, domains map[string]int, reason string) {
	if e.persister == nil {
		return
	}
	ctx := context.Background()
	if _, err := e.persister.SetTrustScore(ctx, agentID, score, reason); err != nil {
		slog.Warn("Failed to persist trust score", "agent_id", agentID, "error", err)
	}
	if len(domains) > 0 {
		if err := e.persister.StoreDomainTrustScores(ctx, agentID, domains); err != nil {
			slog.Warn("Failed to persist domain trust scores", "agent_id", agentID, "error", err)
		}
	}
}

func snapshotDomains(st *agentState) map[string]int {
	domains := make(map[string]int, len(st.domains))
	for domain, ds := range st.domains {
		domains[domain] = ds.score
	}
	return domains
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// floorScale scales n by factor and floors toward zero. n is positive here.
func floorScale(n int, factor float64) int {
	return int(float64(n) * factor)
}
