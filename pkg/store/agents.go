package store

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/agentrecord"
	"github.com/steward-io/steward/pkg/models"
)

// RegisterAgent records a freshly spawned agent. The primary workstream is
// created on first sight so the snapshot can index it immediately.
func (s *Store) RegisterAgent(ctx context.Context, agentID, pluginName, sessionID string, brief models.AgentBrief) (*ent.AgentRecord, error) {
	if agentID == "" {
		return nil, NewValidationError("agentId", "cannot be empty")
	}
	if err := brief.Validate(); err != nil {
		return nil, err
	}

	var rec *ent.AgentRecord
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		now := time.Now().UTC()
		create := tx.AgentRecord.Create().
			SetID(agentID).
			SetRole(brief.Role).
			SetWorkstream(brief.Workstream).
			SetReadableWorkstreams(brief.ReadableWorkstreams).
			SetPluginName(pluginName).
			SetStatus(agentrecord.StatusRunning).
			SetBrief(brief).
			SetSpawnedAt(now).
			SetUpdatedAt(now)
		if sessionID != "" {
			create.SetSessionID(sessionID)
		}
		if brief.ModelPreference != "" {
			create.SetModelPreference(brief.ModelPreference)
		}

		created, cerr := create.Save(ctx)
		if cerr != nil {
			if ent.IsConstraintError(cerr) {
				return fmt.Errorf("agent %s: %w", agentID, ErrAlreadyExists)
			}
			return fmt.Errorf("failed to register agent %s: %w", agentID, cerr)
		}
		rec = created

		if werr := s.ensureWorkstreamTx(ctx, tx, brief.Workstream, "", ""); werr != nil {
			return werr
		}
		if aerr := s.auditTx(ctx, tx, "agent", agentID, "register", agentID, map[string]interface{}{
			"role":       brief.Role,
			"workstream": brief.Workstream,
			"plugin":     pluginName,
		}); aerr != nil {
			return aerr
		}
		_, verr := s.bumpVersionTx(ctx, tx)
		return verr
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateAgentStatus transitions the agent's lifecycle state. Transitions out
// of a terminal state are rejected.
func (s *Store) UpdateAgentStatus(ctx context.Context, agentID, status string) (*ent.AgentRecord, error) {
	switch status {
	case models.AgentRunning, models.AgentPaused, models.AgentWaitingOnHuman,
		models.AgentCompleted, models.AgentError:
	default:
		return nil, NewValidationError("status", fmt.Sprintf("unknown agent status %q", status))
	}

	var rec *ent.AgentRecord
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		existing, qerr := tx.AgentRecord.Get(ctx, agentID)
		if qerr != nil {
			if ent.IsNotFound(qerr) {
				return fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
			}
			return fmt.Errorf("failed to load agent %s: %w", agentID, qerr)
		}
		if models.TerminalAgentStatus(string(existing.Status)) && string(existing.Status) != status {
			return NewValidationError("status",
				fmt.Sprintf("agent %s is already %s", agentID, existing.Status))
		}

		updated, uerr := existing.Update().
			SetStatus(agentrecord.Status(status)).
			SetUpdatedAt(time.Now().UTC()).
			Save(ctx)
		if uerr != nil {
			return fmt.Errorf("failed to update agent %s status: %w", agentID, uerr)
		}
		rec = updated

		if aerr := s.auditTx(ctx, tx, "agent", agentID, "status_change", "system", map[string]interface{}{
			"from": string(existing.Status),
			"to":   status,
		}); aerr != nil {
			return aerr
		}
		_, verr := s.bumpVersionTx(ctx, tx)
		return verr
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateAgentBrief replaces the stored brief after a PATCH merge. The
// denormalized role/workstream columns track the brief so list queries and
// the snapshot stay consistent.
func (s *Store) UpdateAgentBrief(ctx context.Context, agentID string, brief models.AgentBrief) (*ent.AgentRecord, error) {
	if err := brief.Validate(); err != nil {
		return nil, err
	}

	var rec *ent.AgentRecord
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		existing, qerr := tx.AgentRecord.Get(ctx, agentID)
		if qerr != nil {
			if ent.IsNotFound(qerr) {
				return fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
			}
			return fmt.Errorf("failed to load agent %s: %w", agentID, qerr)
		}

		update := existing.Update().
			SetBrief(brief).
			SetRole(brief.Role).
			SetWorkstream(brief.Workstream).
			SetReadableWorkstreams(brief.ReadableWorkstreams).
			SetUpdatedAt(time.Now().UTC())
		if brief.ModelPreference != "" {
			update.SetModelPreference(brief.ModelPreference)
		}
		updated, uerr := update.Save(ctx)
		if uerr != nil {
			return fmt.Errorf("failed to update agent %s brief: %w", agentID, uerr)
		}
		rec = updated

		if werr := s.ensureWorkstreamTx(ctx, tx, brief.Workstream, "", ""); werr != nil {
			return werr
		}
		if aerr := s.auditTx(ctx, tx, "agent", agentID, "brief_update", "system", map[string]interface{}{
			"role":       brief.Role,
			"workstream": brief.Workstream,
		}); aerr != nil {
			return aerr
		}
		_, verr := s.bumpVersionTx(ctx, tx)
		return verr
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// SetAgentSession records the runtime session id assigned by the plugin.
// Resume gives the agent a new session while keeping its stable agent id.
func (s *Store) SetAgentSession(ctx context.Context, agentID, sessionID string) error {
	return s.withWriteTx(ctx, func(tx *ent.Tx) error {
		n, err := tx.AgentRecord.Update().
			Where(agentrecord.ID(agentID)).
			SetSessionID(sessionID).
			SetUpdatedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to set session for agent %s: %w", agentID, err)
		}
		if n == 0 {
			return fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return nil
	})
}

// RemoveAgent deletes the agent record. Trust scores and checkpoints survive
// removal; they are keyed by agent id, not by the record row.
func (s *Store) RemoveAgent(ctx context.Context, agentID string) error {
	return s.withWriteTx(ctx, func(tx *ent.Tx) error {
		if derr := tx.AgentRecord.DeleteOneID(agentID).Exec(ctx); derr != nil {
			if ent.IsNotFound(derr) {
				return fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
			}
			return fmt.Errorf("failed to remove agent %s: %w", agentID, derr)
		}
		if aerr := s.auditTx(ctx, tx, "agent", agentID, "remove", "system", nil); aerr != nil {
			return aerr
		}
		_, verr := s.bumpVersionTx(ctx, tx)
		return verr
	})
}

// GetAgent fetches one agent record.
func (s *Store) GetAgent(ctx context.Context, agentID string) (*ent.AgentRecord, error) {
	rec, err := s.client.AgentRecord.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent %s: %w", agentID, err)
	}
	return rec, nil
}

// ListAgents returns agent records, optionally restricted to the given
// lifecycle states, newest spawn first.
func (s *Store) ListAgents(ctx context.Context, statuses ...string) ([]*ent.AgentRecord, error) {
	q := s.client.AgentRecord.Query()
	if len(statuses) > 0 {
		typed := make([]agentrecord.Status, 0, len(statuses))
		for _, st := range statuses {
			typed = append(typed, agentrecord.Status(st))
		}
		q = q.Where(agentrecord.StatusIn(typed...))
	}
	rows, err := q.Order(ent.Desc(agentrecord.FieldSpawnedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return rows, nil
}

// ListActiveAgents returns agents that are not in a terminal state.
func (s *Store) ListActiveAgents(ctx context.Context) ([]*ent.AgentRecord, error) {
	return s.ListAgents(ctx, models.AgentRunning, models.AgentPaused, models.AgentWaitingOnHuman)
}
