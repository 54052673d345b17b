package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/test/util"
)

func testCheckpointState(agentID string, seq int64) models.SerializedAgentState {
	return models.SerializedAgentState{
		AgentID:      agentID,
		Checkpoint:   map[string]any{"cursor": seq},
		LastSequence: seq,
		SerializedBy: models.SerializedByPause,
	}
}

func TestStore_Checkpoints(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	t.Run("stores and returns latest", func(t *testing.T) {
		for seq := int64(1); seq <= 2; seq++ {
			_, err := s.StoreCheckpoint(ctx, testCheckpointState("agent-1", seq), "", 0)
			require.NoError(t, err)
		}

		latest, err := s.GetLatestCheckpoint(ctx, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), latest.State.LastSequence)

		n, err := s.GetCheckpointCount(ctx, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("prunes beyond retention newest-first", func(t *testing.T) {
		for seq := int64(1); seq <= 5; seq++ {
			_, err := s.StoreCheckpoint(ctx, testCheckpointState("agent-2", seq), "", 3)
			require.NoError(t, err)
		}

		rows, err := s.GetCheckpoints(ctx, "agent-2")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, int64(5), rows[0].State.LastSequence)
		assert.Equal(t, int64(3), rows[2].State.LastSequence)

		// Other agents are unaffected by pruning.
		n, err := s.GetCheckpointCount(ctx, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("records decision linkage and origin", func(t *testing.T) {
		state := testCheckpointState("agent-3", 1)
		state.SerializedBy = models.SerializedByDecision
		cp, err := s.StoreCheckpoint(ctx, state, "dec-42", 0)
		require.NoError(t, err)
		require.NotNil(t, cp.DecisionID)
		assert.Equal(t, "dec-42", *cp.DecisionID)
		assert.Equal(t, "decision_checkpoint", string(cp.SerializedBy))
	})

	t.Run("missing agent has no latest", func(t *testing.T) {
		_, err := s.GetLatestCheckpoint(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete clears all for the agent", func(t *testing.T) {
		deleted, err := s.DeleteCheckpoints(ctx, "agent-2")
		require.NoError(t, err)
		assert.Equal(t, 3, deleted)

		n, err := s.GetCheckpointCount(ctx, "agent-2")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("validates required fields", func(t *testing.T) {
		bad := testCheckpointState("", 1)
		_, err := s.StoreCheckpoint(ctx, bad, "", 0)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		noOrigin := testCheckpointState("agent-4", 1)
		noOrigin.SerializedBy = ""
		_, err = s.StoreCheckpoint(ctx, noOrigin, "", 0)
		require.Error(t, err)
	})
}

func TestStore_CheckpointPruneKeepsNewest(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	for seq := int64(1); seq <= 4; seq++ {
		_, err := s.StoreCheckpoint(ctx, testCheckpointState("agent-1", seq), "", 2)
		require.NoError(t, err)
	}

	rows, err := s.GetCheckpoints(ctx, "agent-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	got := []int64{rows[0].State.LastSequence, rows[1].State.LastSequence}
	assert.Equal(t, []int64{4, 3}, got, fmt.Sprintf("unexpected retention order: %v", got))
}
