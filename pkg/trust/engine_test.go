package trust

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersister struct {
	mu      sync.Mutex
	scores  map[string]int
	domains map[string]map[string]int
	reasons []string
}

func newFakePersister() *fakePersister {
	return &fakePersister{
		scores:  make(map[string]int),
		domains: make(map[string]map[string]int),
	}
}

func (f *fakePersister) SetTrustScore(_ context.Context, agentID string, score int, reason string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores[agentID] = score
	f.reasons = append(f.reasons, reason)
	return score, nil
}

func (f *fakePersister) StoreDomainTrustScores(_ context.Context, agentID string, scores map[string]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	merged := f.domains[agentID]
	if merged == nil {
		merged = make(map[string]int)
		f.domains[agentID] = merged
	}
	for k, v := range scores {
		merged[k] = v
	}
	return nil
}

func TestEngine_ApplyOutcome(t *testing.T) {
	t.Run("moves score by the table delta", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.RegisterAgent("agent-1", 0)

		delta := e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 1, nil)
		assert.Equal(t, 3, delta)
		assert.Equal(t, 53, e.GetScore("agent-1"))

		delta = e.ApplyOutcome("agent-1", OutcomeHumanRejectsToolCall, 2, nil)
		assert.Equal(t, -2, delta)
		assert.Equal(t, 51, e.GetScore("agent-1"))
	})

	t.Run("auto-registers unknown agents at the initial score", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)

		delta := e.ApplyOutcome("ghost", OutcomeHumanApprovesToolCall, 5, nil)
		assert.Equal(t, 1, delta)
		assert.Equal(t, 51, e.GetScore("ghost"))
	})

	t.Run("unknown outcome carries no weight", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.RegisterAgent("agent-1", 0)

		delta := e.ApplyOutcome("agent-1", Outcome("sideways_glance"), 1, nil)
		assert.Equal(t, 0, delta)
		assert.Equal(t, 50, e.GetScore("agent-1"))
	})

	t.Run("clamps at the ceiling and floor", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.Hydrate("high", 99, nil, 0)
		e.Hydrate("low", 1, nil, 0)

		e.ApplyOutcome("high", OutcomeHumanApprovesAlways, 1, nil)
		assert.Equal(t, 100, e.GetScore("high"))

		e.ApplyOutcome("low", OutcomeHumanOverridesDecision, 1, nil)
		assert.Equal(t, 0, e.GetScore("low"))
	})
}

func TestEngine_DiminishingReturns(t *testing.T) {
	t.Run("halves gains that would cross the threshold", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.Hydrate("agent-1", 88, nil, 0)

		// 88+3 would land at 91, above the 90 threshold.
		delta := e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 1, nil)
		assert.Equal(t, 1, delta)
		assert.Equal(t, 89, e.GetScore("agent-1"))
	})

	t.Run("applies above the threshold too", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.Hydrate("agent-1", 95, nil, 0)

		delta := e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 1, nil)
		assert.Equal(t, 1, delta)
		assert.Equal(t, 96, e.GetScore("agent-1"))
	})

	t.Run("never softens losses", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.Hydrate("agent-1", 95, nil, 0)

		delta := e.ApplyOutcome("agent-1", OutcomeHumanOverridesDecision, 1, nil)
		assert.Equal(t, -3, delta)
		assert.Equal(t, 92, e.GetScore("agent-1"))
	})

	t.Run("leaves gains below the threshold alone", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.Hydrate("agent-1", 80, nil, 0)

		delta := e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 1, nil)
		assert.Equal(t, 3, delta)
		assert.Equal(t, 83, e.GetScore("agent-1"))
	})
}

func TestEngine_RiskWeighting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RiskWeightingEnabled = true

	t.Run("scales positive deltas by blast radius", func(t *testing.T) {
		e := NewEngine(cfg, nil)
		e.RegisterAgent("agent-1", 0)

		// large weight 1.5: floor(2 * 1.5) = 3
		delta := e.ApplyOutcome("agent-1", OutcomeHumanApprovesRecommended, 1, &OutcomeContext{BlastRadius: "large"})
		assert.Equal(t, 3, delta)

		// trivial weight 0.5: floor(3 * 0.5) = 1
		delta = e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 2, &OutcomeContext{BlastRadius: "trivial"})
		assert.Equal(t, 1, delta)
	})

	t.Run("never scales negative deltas", func(t *testing.T) {
		e := NewEngine(cfg, nil)
		e.RegisterAgent("agent-1", 0)

		delta := e.ApplyOutcome("agent-1", OutcomeHumanRejectsToolCall, 1, &OutcomeContext{BlastRadius: "trivial"})
		assert.Equal(t, -2, delta)
	})

	t.Run("diminishing returns applies before the risk weight", func(t *testing.T) {
		e := NewEngine(cfg, nil)
		e.Hydrate("agent-1", 89, nil, 0)

		// +3 diminished to 1, then floor(1 * 1.5) = 1.
		delta := e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 1, &OutcomeContext{BlastRadius: "large"})
		assert.Equal(t, 1, delta)
		assert.Equal(t, 90, e.GetScore("agent-1"))
	})

	t.Run("ignored when disabled", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.RegisterAgent("agent-1", 0)

		delta := e.ApplyOutcome("agent-1", OutcomeHumanApprovesRecommended, 1, &OutcomeContext{BlastRadius: "large"})
		assert.Equal(t, 2, delta)
	})
}

func TestEngine_DomainScores(t *testing.T) {
	t.Run("creates domains on first outcome and tracks them independently", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.RegisterAgent("agent-1", 0)

		e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 1, &OutcomeContext{
			ArtifactKinds: []string{"design_doc", "api_contract"},
		})

		score, ok := e.GetDomainScore("agent-1", "design_doc")
		require.True(t, ok)
		assert.Equal(t, 53, score)

		scores := e.GetDomainScores("agent-1")
		assert.Equal(t, map[string]int{"design_doc": 53, "api_contract": 53}, scores)

		// Only the named domain moves on the next outcome.
		e.ApplyOutcome("agent-1", OutcomeHumanRejectsToolCall, 2, &OutcomeContext{
			ArtifactKinds: []string{"design_doc"},
		})
		scores = e.GetDomainScores("agent-1")
		assert.Equal(t, 51, scores["design_doc"])
		assert.Equal(t, 53, scores["api_contract"])
	})

	t.Run("diminishing returns is computed per domain", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.Hydrate("agent-1", 50, map[string]int{"design_doc": 89}, 0)

		delta := e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 1, &OutcomeContext{
			ArtifactKinds: []string{"design_doc"},
		})
		// Global at 50 takes the full +3, the domain at 89 only +1.
		assert.Equal(t, 3, delta)
		assert.Equal(t, 53, e.GetScore("agent-1"))
		score, _ := e.GetDomainScore("agent-1", "design_doc")
		assert.Equal(t, 90, score)
	})

	t.Run("unknown domain reports the initial score with no history", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.RegisterAgent("agent-1", 0)

		score, ok := e.GetDomainScore("agent-1", "test_plan")
		assert.False(t, ok)
		assert.Equal(t, 50, score)
	})
}

func TestEngine_DomainLog(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	e.RegisterAgent("agent-1", 0)

	e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 3, &OutcomeContext{
		ArtifactKinds: []string{"design_doc"},
		Workstreams:   []string{"ws-api"},
		ToolCategory:  "execution",
	})
	e.ApplyOutcome("agent-1", OutcomeHumanApprovesToolCall, 4, nil)

	recs := e.FlushDomainLog("agent-1")
	require.Len(t, recs, 2)
	assert.Equal(t, OutcomeTaskCompletedClean, recs[0].Outcome)
	assert.Equal(t, int64(3), recs[0].Tick)
	assert.Equal(t, 3, recs[0].GlobalDelta)
	assert.Equal(t, 53, recs[0].GlobalScore)
	assert.Equal(t, map[string]int{"design_doc": 3}, recs[0].DomainDeltas)
	assert.Equal(t, []string{"ws-api"}, recs[0].Workstreams)
	assert.Equal(t, "execution", recs[0].ToolCategory)
	assert.Equal(t, OutcomeHumanApprovesToolCall, recs[1].Outcome)
	assert.False(t, recs[0].RecordedAt.IsZero())

	// Flushing drains the log.
	assert.Empty(t, e.FlushDomainLog("agent-1"))
}

func TestEngine_Decay(t *testing.T) {
	t.Run("moves inactive agents toward the target without overshooting", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DecayRatePerTick = 2
		e := NewEngine(cfg, nil)
		e.Hydrate("above", 55, nil, 0)
		e.Hydrate("below", 47, nil, 0)

		e.OnTick(1)
		assert.Equal(t, 53, e.GetScore("above"))
		assert.Equal(t, 49, e.GetScore("below"))

		e.OnTick(2)
		e.OnTick(3)
		assert.Equal(t, 50, e.GetScore("above"))
		assert.Equal(t, 50, e.GetScore("below"))

		// At the target decay is a no-op.
		e.OnTick(4)
		assert.Equal(t, 50, e.GetScore("above"))
	})

	t.Run("skips agents active within the threshold", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DecayRatePerTick = 1
		cfg.InactivityThresholdTicks = 3
		e := NewEngine(cfg, nil)
		e.Hydrate("agent-1", 60, nil, 0)
		e.ApplyOutcome("agent-1", OutcomeHumanApprovesToolCall, 10, nil) // 61, active at tick 10

		e.OnTick(12) // idle 2 ticks, within threshold
		assert.Equal(t, 61, e.GetScore("agent-1"))

		e.OnTick(14) // idle 4 ticks
		assert.Equal(t, 60, e.GetScore("agent-1"))
	})

	t.Run("decay ceiling caps the effective target", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DecayRatePerTick = 5
		cfg.DecayTargetScore = 50
		cfg.DecayCeiling = 40
		e := NewEngine(cfg, nil)
		e.Hydrate("agent-1", 48, nil, 0)

		e.OnTick(1)
		e.OnTick(2)
		assert.Equal(t, 40, e.GetScore("agent-1"))
	})

	t.Run("domains decay on their own activity clock", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DecayRatePerTick = 1
		cfg.InactivityThresholdTicks = 3
		e := NewEngine(cfg, nil)
		e.RegisterAgent("agent-1", 0)

		e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 1, &OutcomeContext{ArtifactKinds: []string{"design_doc"}})
		e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 6, nil) // global active, domain stale

		e.OnTick(7) // domain idle 6 > 3, global idle 1 <= 3
		scores := e.GetDomainScores("agent-1")
		assert.Equal(t, 52, scores["design_doc"])
		assert.Equal(t, 56, e.GetScore("agent-1"))
	})

	t.Run("disabled when the rate is zero", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.Hydrate("agent-1", 80, nil, 0)

		e.OnTick(100)
		assert.Equal(t, 80, e.GetScore("agent-1"))
	})
}

func TestEngine_Reconfigure(t *testing.T) {
	t.Run("merges only the named fields", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)
		e.Hydrate("agent-1", 72, nil, 0)

		cfg := e.Reconfigure(ConfigPatch{
			DecayRatePerTick:     intPtr(2),
			RiskWeightingEnabled: boolPtr(true),
		})
		assert.Equal(t, 2, cfg.DecayRatePerTick)
		assert.True(t, cfg.RiskWeightingEnabled)
		assert.Equal(t, 90, cfg.DiminishingReturnThreshold)

		// Scores are untouched by reconfiguration.
		assert.Equal(t, 72, e.GetScore("agent-1"))
	})

	t.Run("calibration profiles are named patches", func(t *testing.T) {
		e := NewEngine(DefaultConfig(), nil)

		cfg, err := e.ApplyProfile("conservative")
		require.NoError(t, err)
		assert.Equal(t, 40, cfg.InitialScore)
		assert.Equal(t, 2, cfg.DecayRatePerTick)
		assert.Equal(t, 80, cfg.DiminishingReturnThreshold)
		assert.True(t, cfg.RiskWeightingEnabled)

		cfg, err = e.ApplyProfile("permissive")
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.InitialScore)
		assert.False(t, cfg.RiskWeightingEnabled)

		_, err = e.ApplyProfile("reckless")
		assert.Error(t, err)
	})

	t.Run("profile names are stable", func(t *testing.T) {
		assert.Equal(t, []string{"conservative", "balanced", "permissive"}, ProfileNames())
		for _, name := range ProfileNames() {
			_, err := LookupProfile(name)
			require.NoError(t, err)
		}
	})
}

func TestEngine_Persistence(t *testing.T) {
	t.Run("writes through scores and domains on outcomes", func(t *testing.T) {
		p := newFakePersister()
		e := NewEngine(DefaultConfig(), p)
		e.RegisterAgent("agent-1", 0)

		e.ApplyOutcome("agent-1", OutcomeTaskCompletedClean, 1, &OutcomeContext{ArtifactKinds: []string{"design_doc"}})

		assert.Equal(t, 53, p.scores["agent-1"])
		assert.Equal(t, map[string]int{"design_doc": 53}, p.domains["agent-1"])
		assert.Contains(t, p.reasons, "task_completed_clean")
	})

	t.Run("persists decay only for agents that moved", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DecayRatePerTick = 1
		p := newFakePersister()
		e := NewEngine(cfg, p)
		e.Hydrate("stale", 60, nil, 0)
		e.Hydrate("settled", 50, nil, 0)

		e.OnTick(1)

		assert.Equal(t, 59, p.scores["stale"])
		_, wrote := p.scores["settled"]
		assert.False(t, wrote)
		assert.Contains(t, p.reasons, "decay")
	})
}

func TestEngine_Registry(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	e.RegisterAgent("a", 0)
	e.RegisterAgent("b", 0)
	e.ApplyOutcome("a", OutcomeTaskCompletedClean, 1, &OutcomeContext{ArtifactKinds: []string{"code"}})

	assert.Equal(t, map[string]int{"a": 53, "b": 50}, e.GetAllScores())
	assert.Equal(t, map[string]int{"code": 53}, e.GetAllDomainScores()["a"])

	// Registering again keeps the earned score.
	e.RegisterAgent("a", 5)
	assert.Equal(t, 53, e.GetScore("a"))

	e.RemoveAgent("a")
	assert.Equal(t, 50, e.GetScore("a"))
	assert.Empty(t, e.FlushDomainLog("a"))
}
