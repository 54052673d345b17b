package decision

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

func int64ptr(v int64) *int64 { return &v }

func optionEvent(id, agentID, severity string) models.DecisionEvent {
	return models.DecisionEvent{
		DecisionID: id,
		AgentID:    agentID,
		Kind:       models.DecisionKindOption,
		Title:      "pick a storage engine",
		Severity:   severity,
		Options: []models.DecisionOption{
			{ID: "opt-a", Label: "postgres"},
			{ID: "opt-b", Label: "sqlite"},
		},
		RecommendedOptionID: "opt-b",
	}
}

func toolEvent(id, agentID string) models.DecisionEvent {
	return models.DecisionEvent{
		DecisionID: id,
		AgentID:    agentID,
		Kind:       models.DecisionKindToolApproval,
		ToolName:   "Bash",
		Severity:   models.SeverityHigh,
	}
}

func TestQueue_Enqueue(t *testing.T) {
	q := NewQueue(Policy{})

	t.Run("admits valid decision as pending", func(t *testing.T) {
		ok, err := q.Enqueue(optionEvent("dec-1", "agent-1", models.SeverityMedium), 5)
		require.NoError(t, err)
		assert.True(t, ok)

		it, found := q.Get("dec-1")
		require.True(t, found)
		assert.Equal(t, StatusPending, it.Status)
		assert.Equal(t, int64(5), it.EnqueuedAtTick)
		assert.Equal(t, 30, it.Priority)
	})

	t.Run("duplicate id is silently ignored", func(t *testing.T) {
		ok, err := q.Enqueue(optionEvent("dec-1", "agent-1", models.SeverityCritical), 9)
		require.NoError(t, err)
		assert.False(t, ok)

		it, _ := q.Get("dec-1")
		assert.Equal(t, int64(5), it.EnqueuedAtTick)
	})

	t.Run("invalid event rejected", func(t *testing.T) {
		_, err := q.Enqueue(models.DecisionEvent{DecisionID: "dec-bad", AgentID: "a", Kind: "option"}, 1)
		require.Error(t, err)
	})
}

func TestQueue_PriorityOrdering(t *testing.T) {
	q := NewQueue(Policy{})

	_, err := q.Enqueue(optionEvent("dec-low", "agent-1", models.SeverityLow), 1)
	require.NoError(t, err)
	_, err = q.Enqueue(optionEvent("dec-crit", "agent-1", models.SeverityCritical), 2)
	require.NoError(t, err)
	_, err = q.Enqueue(optionEvent("dec-warn", "agent-1", models.SeverityWarning), 3)
	require.NoError(t, err)
	_, err = q.Enqueue(optionEvent("dec-high-late", "agent-2", models.SeverityHigh), 7)
	require.NoError(t, err)
	_, err = q.Enqueue(optionEvent("dec-high-early", "agent-2", models.SeverityHigh), 4)
	require.NoError(t, err)

	pending := q.ListPending("")
	ids := make([]string, 0, len(pending))
	for _, it := range pending {
		ids = append(ids, it.Event.DecisionID)
	}
	// Priority desc; equal priorities by enqueue tick asc.
	assert.Equal(t, []string{"dec-crit", "dec-high-early", "dec-high-late", "dec-low", "dec-warn"}, ids)

	agent2 := q.ListPending("agent-2")
	require.Len(t, agent2, 2)
	assert.Equal(t, "dec-high-early", agent2[0].Event.DecisionID)
}

func TestQueue_Resolve(t *testing.T) {
	q := NewQueue(Policy{})
	_, err := q.Enqueue(optionEvent("dec-1", "agent-1", models.SeverityMedium), 1)
	require.NoError(t, err)

	t.Run("first resolve wins", func(t *testing.T) {
		it, ok := q.Resolve("dec-1", models.Resolution{
			Type:           models.DecisionKindOption,
			ChosenOptionID: "opt-a",
			ActionKind:     models.ActionKindReview,
			ResolvedBy:     "human",
		})
		require.True(t, ok)
		assert.Equal(t, StatusResolved, it.Status)
		require.NotNil(t, it.Resolution)
		assert.Equal(t, "opt-a", it.Resolution.ChosenOptionID)
		assert.NotNil(t, it.ResolvedAt)
	})

	t.Run("second resolve returns false and changes nothing", func(t *testing.T) {
		_, ok := q.Resolve("dec-1", models.Resolution{
			Type:           models.DecisionKindOption,
			ChosenOptionID: "opt-b",
		})
		assert.False(t, ok)

		it, _ := q.Get("dec-1")
		assert.Equal(t, "opt-a", it.Resolution.ChosenOptionID)
	})

	t.Run("unknown decision returns false", func(t *testing.T) {
		_, ok := q.Resolve("ghost", models.Resolution{Type: models.DecisionKindOption, ChosenOptionID: "x"})
		assert.False(t, ok)
	})
}

func TestQueue_WaitForResolution(t *testing.T) {
	t.Run("already resolved returns immediately", func(t *testing.T) {
		q := NewQueue(Policy{})
		_, err := q.Enqueue(toolEvent("dec-1", "agent-1"), 1)
		require.NoError(t, err)
		_, ok := q.Resolve("dec-1", models.Resolution{
			Type:   models.DecisionKindToolApproval,
			Action: models.ResolutionApprove,
		})
		require.True(t, ok)

		res, err := q.WaitForResolution(context.Background(), "dec-1")
		require.NoError(t, err)
		assert.Equal(t, models.ResolutionApprove, res.Action)
	})

	t.Run("blocks until resolve fires", func(t *testing.T) {
		q := NewQueue(Policy{})
		_, err := q.Enqueue(toolEvent("dec-2", "agent-1"), 1)
		require.NoError(t, err)

		done := make(chan models.Resolution, 1)
		go func() {
			res, err := q.WaitForResolution(context.Background(), "dec-2")
			if err == nil {
				done <- res
			}
		}()

		// Give the waiter a moment to register before resolving.
		time.Sleep(20 * time.Millisecond)
		_, ok := q.Resolve("dec-2", models.Resolution{
			Type:   models.DecisionKindToolApproval,
			Action: models.ResolutionReject,
		})
		require.True(t, ok)

		select {
		case res := <-done:
			assert.Equal(t, models.ResolutionReject, res.Action)
		case <-time.After(2 * time.Second):
			t.Fatal("waiter did not receive resolution")
		}
	})

	t.Run("multiple waiters all receive", func(t *testing.T) {
		q := NewQueue(Policy{})
		_, err := q.Enqueue(toolEvent("dec-3", "agent-1"), 1)
		require.NoError(t, err)

		const waiters = 3
		var wg sync.WaitGroup
		results := make([]models.Resolution, waiters)
		for i := 0; i < waiters; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = q.WaitForResolution(context.Background(), "dec-3")
			}(i)
		}

		time.Sleep(20 * time.Millisecond)
		_, ok := q.Resolve("dec-3", models.Resolution{
			Type:   models.DecisionKindToolApproval,
			Action: models.ResolutionApprove,
		})
		require.True(t, ok)
		wg.Wait()

		for _, res := range results {
			assert.Equal(t, models.ResolutionApprove, res.Action)
		}
	})

	t.Run("context cancellation unblocks", func(t *testing.T) {
		q := NewQueue(Policy{})
		_, err := q.Enqueue(toolEvent("dec-4", "agent-1"), 1)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()
		_, err = q.WaitForResolution(ctx, "dec-4")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("unknown decision errors", func(t *testing.T) {
		q := NewQueue(Policy{})
		_, err := q.WaitForResolution(context.Background(), "ghost")
		require.Error(t, err)
	})
}

func TestQueue_Timeout(t *testing.T) {
	t.Run("policy deadline auto-approves tool calls", func(t *testing.T) {
		q := NewQueue(Policy{TimeoutTicks: int64ptr(3)})
		_, err := q.Enqueue(toolEvent("dec-tool", "agent-1"), 10)
		require.NoError(t, err)

		assert.Empty(t, q.OnTick(12))

		timedOut := q.OnTick(13)
		require.Len(t, timedOut, 1)
		it := timedOut[0]
		assert.Equal(t, StatusTimedOut, it.Status)
		assert.Equal(t, models.ResolutionApprove, it.Resolution.Action)
		assert.Equal(t, "timeout: default approve", it.Resolution.Rationale)
		assert.Equal(t, models.ActionKindReview, it.Resolution.ActionKind)
		assert.True(t, it.Resolution.AutoResolved)
	})

	t.Run("option timeout picks recommended then first", func(t *testing.T) {
		q := NewQueue(Policy{})

		withRec := optionEvent("dec-rec", "agent-1", models.SeverityMedium)
		withRec.DueByTick = int64ptr(5)
		_, err := q.Enqueue(withRec, 1)
		require.NoError(t, err)

		noRec := optionEvent("dec-first", "agent-1", models.SeverityMedium)
		noRec.RecommendedOptionID = ""
		noRec.DueByTick = int64ptr(5)
		_, err = q.Enqueue(noRec, 1)
		require.NoError(t, err)

		timedOut := q.OnTick(5)
		require.Len(t, timedOut, 2)

		byID := map[string]Item{}
		for _, it := range timedOut {
			byID[it.Event.DecisionID] = it
		}
		assert.Equal(t, "opt-b", byID["dec-rec"].Resolution.ChosenOptionID)
		assert.Equal(t, "opt-a", byID["dec-first"].Resolution.ChosenOptionID)
		assert.Equal(t, "timeout: auto-selected recommended option", byID["dec-rec"].Resolution.Rationale)
	})

	t.Run("dueByTick overrides policy deadline", func(t *testing.T) {
		q := NewQueue(Policy{TimeoutTicks: int64ptr(100)})
		ev := toolEvent("dec-due", "agent-1")
		ev.DueByTick = int64ptr(4)
		_, err := q.Enqueue(ev, 1)
		require.NoError(t, err)

		require.Len(t, q.OnTick(4), 1)
	})

	t.Run("nil policy timeout never fires", func(t *testing.T) {
		q := NewQueue(Policy{})
		_, err := q.Enqueue(toolEvent("dec-never", "agent-1"), 1)
		require.NoError(t, err)

		assert.Empty(t, q.OnTick(1_000_000))
	})

	t.Run("suspended decisions never time out", func(t *testing.T) {
		q := NewQueue(Policy{TimeoutTicks: int64ptr(1)})
		_, err := q.Enqueue(toolEvent("dec-susp", "agent-1"), 1)
		require.NoError(t, err)
		require.Equal(t, 1, q.SuspendAgentDecisions("agent-1"))

		assert.Empty(t, q.OnTick(50))

		// Resuming re-arms the deadline check.
		q.ResumeAgentDecisions("agent-1")
		assert.Len(t, q.OnTick(50), 1)
	})

	t.Run("waiters receive timeout resolutions", func(t *testing.T) {
		q := NewQueue(Policy{TimeoutTicks: int64ptr(1)})
		_, err := q.Enqueue(toolEvent("dec-wait", "agent-1"), 1)
		require.NoError(t, err)

		done := make(chan models.Resolution, 1)
		go func() {
			res, err := q.WaitForResolution(context.Background(), "dec-wait")
			if err == nil {
				done <- res
			}
		}()
		time.Sleep(20 * time.Millisecond)

		q.OnTick(2)
		select {
		case res := <-done:
			assert.True(t, res.AutoResolved)
		case <-time.After(2 * time.Second):
			t.Fatal("waiter did not receive timeout resolution")
		}
	})

	t.Run("timed out is terminal", func(t *testing.T) {
		q := NewQueue(Policy{TimeoutTicks: int64ptr(1)})
		_, err := q.Enqueue(toolEvent("dec-term", "agent-1"), 1)
		require.NoError(t, err)
		q.OnTick(2)

		_, ok := q.Resolve("dec-term", models.Resolution{
			Type:   models.DecisionKindToolApproval,
			Action: models.ResolutionReject,
		})
		assert.False(t, ok)
	})
}

func TestQueue_HandleAgentKilled(t *testing.T) {
	q := NewQueue(Policy{})

	_, err := q.Enqueue(optionEvent("dec-1", "agent-1", models.SeverityMedium), 1)
	require.NoError(t, err)
	_, err = q.Enqueue(toolEvent("dec-2", "agent-1"), 2)
	require.NoError(t, err)
	_, err = q.Enqueue(optionEvent("dec-other", "agent-2", models.SeverityMedium), 3)
	require.NoError(t, err)

	// A resolved decision must stay resolved.
	_, ok := q.Resolve("dec-1", models.Resolution{
		Type:           models.DecisionKindOption,
		ChosenOptionID: "opt-a",
	})
	require.True(t, ok)

	affected := q.HandleAgentKilled("agent-1")
	require.Len(t, affected, 1)
	assert.Equal(t, "dec-2", affected[0].Event.DecisionID)
	assert.Equal(t, StatusTriage, affected[0].Status)
	assert.Equal(t, BadgeAgentKilled, affected[0].Badge)
	assert.Equal(t, basePriority(models.SeverityHigh)+orphanPriorityBoost, affected[0].Priority)

	resolved, _ := q.Get("dec-1")
	assert.Equal(t, StatusResolved, resolved.Status)

	other, _ := q.Get("dec-other")
	assert.Equal(t, StatusPending, other.Status)

	// Triage items are excluded from the pending list but can be resolved.
	assert.Empty(t, q.ListPending("agent-1"))
	_, ok = q.Resolve("dec-2", models.Resolution{
		Type:   models.DecisionKindToolApproval,
		Action: models.ResolutionReject,
	})
	assert.True(t, ok)
}

func TestQueue_SuspendResume(t *testing.T) {
	q := NewQueue(Policy{})

	_, err := q.Enqueue(optionEvent("dec-1", "agent-1", models.SeverityMedium), 1)
	require.NoError(t, err)
	_, err = q.Enqueue(optionEvent("dec-2", "agent-2", models.SeverityMedium), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, q.SuspendAgentDecisions("agent-1"))

	it, _ := q.Get("dec-1")
	assert.Equal(t, StatusSuspended, it.Status)
	assert.Equal(t, BadgeAgentBraked, it.Badge)
	assert.Len(t, q.ListPending(""), 1)

	assert.Equal(t, 1, q.ResumeAgentDecisions("agent-1"))
	it, _ = q.Get("dec-1")
	assert.Equal(t, StatusPending, it.Status)
	assert.Empty(t, it.Badge)
	assert.Len(t, q.ListPending(""), 2)

	// Resume with nothing suspended is a no-op.
	assert.Equal(t, 0, q.ResumeAgentDecisions("agent-1"))
}

func TestQueue_ResolutionHook(t *testing.T) {
	q := NewQueue(Policy{TimeoutTicks: int64ptr(1)})

	var mu sync.Mutex
	var seen []string
	q.OnResolution(func(item Item, res models.Resolution) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, item.Event.DecisionID)
	})
	// A panicking hook must not break later hooks or queue state.
	q.OnResolution(func(item Item, res models.Resolution) {
		panic("boom")
	})

	_, err := q.Enqueue(toolEvent("dec-h1", "agent-1"), 1)
	require.NoError(t, err)
	_, err = q.Enqueue(toolEvent("dec-h2", "agent-1"), 1)
	require.NoError(t, err)

	_, ok := q.Resolve("dec-h1", models.Resolution{
		Type:   models.DecisionKindToolApproval,
		Action: models.ResolutionApprove,
	})
	require.True(t, ok)
	q.OnTick(5)

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"dec-h1", "dec-h2"}, seen)
}
