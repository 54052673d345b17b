package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/test/util"
)

func testEnvelope(agentID string, seq int64) *models.EventEnvelope {
	return &models.EventEnvelope{
		SourceEventID:    fmt.Sprintf("%s-ev-%d", agentID, seq),
		SourceSequence:   seq,
		SourceOccurredAt: time.Now().UTC(),
		RunID:            "run-1",
		AgentID:          agentID,
		IngestedAt:       time.Now().UTC(),
		Event: models.AgentEvent{
			Type:   models.EventTypeStatus,
			Status: &models.StatusEvent{Message: fmt.Sprintf("step %d", seq)},
		},
	}
}

func TestStore_AppendEvent(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	t.Run("appends and preserves payload", func(t *testing.T) {
		stored, err := s.AppendEvent(ctx, testEnvelope("agent-1", 1))
		require.NoError(t, err)
		assert.True(t, stored)

		rows, err := s.GetEvents(ctx, EventFilter{AgentID: "agent-1"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "status", rows[0].EventType)
		require.NotNil(t, rows[0].Payload.Status)
		assert.Equal(t, "step 1", rows[0].Payload.Status.Message)
	})

	t.Run("duplicate sourceEventId is dropped silently", func(t *testing.T) {
		env := testEnvelope("agent-2", 1)
		stored, err := s.AppendEvent(ctx, env)
		require.NoError(t, err)
		assert.True(t, stored)

		stored, err = s.AppendEvent(ctx, env)
		require.NoError(t, err)
		assert.False(t, stored)

		n, err := s.CountEvents(ctx, "agent-2")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("invalid envelope rejected", func(t *testing.T) {
		env := testEnvelope("agent-3", 1)
		env.SourceEventID = ""
		_, err := s.AppendEvent(ctx, env)
		require.Error(t, err)
	})
}

func TestStore_GetEvents(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	for seq := int64(1); seq <= 5; seq++ {
		_, err := s.AppendEvent(ctx, testEnvelope("agent-1", seq))
		require.NoError(t, err)
	}
	completion := testEnvelope("agent-1", 6)
	completion.Event = models.AgentEvent{
		Type:       models.EventTypeCompletion,
		Completion: &models.CompletionEvent{Clean: true},
	}
	_, err := s.AppendEvent(ctx, completion)
	require.NoError(t, err)

	t.Run("insertion order", func(t *testing.T) {
		rows, err := s.GetEvents(ctx, EventFilter{AgentID: "agent-1"})
		require.NoError(t, err)
		require.Len(t, rows, 6)
		for i := 1; i < len(rows); i++ {
			assert.Greater(t, rows[i].ID, rows[i-1].ID)
			assert.Greater(t, rows[i].SourceSequence, rows[i-1].SourceSequence)
		}
	})

	t.Run("type filter", func(t *testing.T) {
		rows, err := s.GetEvents(ctx, EventFilter{Types: []string{"completion"}})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(6), rows[0].SourceSequence)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		rows, err := s.GetEvents(ctx, EventFilter{AgentID: "agent-1", Limit: 2})
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("run filter excludes other runs", func(t *testing.T) {
		other := testEnvelope("agent-1", 7)
		other.RunID = "run-2"
		_, err := s.AppendEvent(ctx, other)
		require.NoError(t, err)

		rows, err := s.GetEvents(ctx, EventFilter{AgentID: "agent-1", RunID: "run-2"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "run-2", rows[0].RunID)
	})
}

func TestStore_Quarantine(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client, WithQuarantineCap(3))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := s.AddQuarantined(ctx, []byte(fmt.Sprintf(`{"bad":%d}`, i)), "unknown event type", "agent-1")
		require.NoError(t, err)
	}

	// Cap evicts the oldest rows.
	rows, err := s.ListQuarantined(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, `{"bad":4}`, rows[0].Raw)
	assert.Equal(t, `{"bad":2}`, rows[2].Raw)

	limited, err := s.ListQuarantined(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	removed, err := s.ClearQuarantined(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	rows, err = s.ListQuarantined(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
