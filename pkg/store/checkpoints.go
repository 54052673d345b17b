package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/checkpoint"
	"github.com/steward-io/steward/pkg/models"
)

// DefaultMaxCheckpointsPerAgent bounds retained checkpoints per agent.
const DefaultMaxCheckpointsPerAgent = 3

// StoreCheckpoint persists a serialized agent state and prunes anything older
// than the newest maxPerAgent rows for that agent. maxPerAgent <= 0 selects
// the default of 3.
func (s *Store) StoreCheckpoint(ctx context.Context, state models.SerializedAgentState, decisionID string, maxPerAgent int) (*ent.Checkpoint, error) {
	if state.AgentID == "" {
		return nil, NewValidationError("agentId", "cannot be empty")
	}
	if state.SerializedBy == "" {
		return nil, NewValidationError("serializedBy", "cannot be empty")
	}
	if maxPerAgent <= 0 {
		maxPerAgent = DefaultMaxCheckpointsPerAgent
	}

	var cp *ent.Checkpoint
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		create := tx.Checkpoint.Create().
			SetID(uuid.NewString()).
			SetAgentID(state.AgentID).
			SetState(state).
			SetSerializedBy(checkpoint.SerializedBy(state.SerializedBy)).
			SetCreatedAt(time.Now().UTC())
		if decisionID != "" {
			create.SetDecisionID(decisionID)
		}
		created, cerr := create.Save(ctx)
		if cerr != nil {
			return fmt.Errorf("failed to store checkpoint for %s: %w", state.AgentID, cerr)
		}
		cp = created

		stale, qerr := tx.Checkpoint.Query().
			Where(checkpoint.AgentID(state.AgentID)).
			Order(ent.Desc(checkpoint.FieldCreatedAt), ent.Desc(checkpoint.FieldID)).
			Offset(maxPerAgent).
			All(ctx)
		if qerr != nil {
			return fmt.Errorf("failed to query stale checkpoints for %s: %w", state.AgentID, qerr)
		}
		for _, old := range stale {
			if derr := tx.Checkpoint.DeleteOne(old).Exec(ctx); derr != nil {
				return fmt.Errorf("failed to prune checkpoint %s: %w", old.ID, derr)
			}
		}

		return s.auditTx(ctx, tx, "checkpoint", cp.ID, "create", state.AgentID, map[string]interface{}{
			"serializedBy": state.SerializedBy,
		})
	})
	if err != nil {
		return nil, err
	}
	return cp, nil
}

// GetLatestCheckpoint returns the newest checkpoint for the agent.
func (s *Store) GetLatestCheckpoint(ctx context.Context, agentID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.AgentID(agentID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt), ent.Desc(checkpoint.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("checkpoint for agent %s: %w", agentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest checkpoint for %s: %w", agentID, err)
	}
	return cp, nil
}

// GetCheckpoints returns every retained checkpoint for the agent, newest first.
func (s *Store) GetCheckpoints(ctx context.Context, agentID string) ([]*ent.Checkpoint, error) {
	rows, err := s.client.Checkpoint.Query().
		Where(checkpoint.AgentID(agentID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt), ent.Desc(checkpoint.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints for %s: %w", agentID, err)
	}
	return rows, nil
}

// GetCheckpointCount reports how many checkpoints the agent has retained.
func (s *Store) GetCheckpointCount(ctx context.Context, agentID string) (int, error) {
	n, err := s.client.Checkpoint.Query().
		Where(checkpoint.AgentID(agentID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count checkpoints for %s: %w", agentID, err)
	}
	return n, nil
}

// DeleteCheckpoints removes all checkpoints for the agent and returns how
// many were deleted.
func (s *Store) DeleteCheckpoints(ctx context.Context, agentID string) (int, error) {
	var deleted int
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		n, derr := tx.Checkpoint.Delete().
			Where(checkpoint.AgentID(agentID)).
			Exec(ctx)
		if derr != nil {
			return fmt.Errorf("failed to delete checkpoints for %s: %w", agentID, derr)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
