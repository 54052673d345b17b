package store

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/eventrecord"
	"github.com/steward-io/steward/pkg/models"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

// EventFilter narrows a history query. Zero values mean "no constraint".
type EventFilter struct {
	AgentID string
	RunID   string
	Types   []string
	Since   time.Time
	Limit   int
}

// AppendEvent persists one envelope to the append-only history. A duplicate
// sourceEventId is not an error; the envelope is dropped and stored=false is
// returned so ingest can count dedups.
func (s *Store) AppendEvent(ctx context.Context, env *models.EventEnvelope) (bool, error) {
	if err := env.Validate(); err != nil {
		return false, err
	}

	stored := false
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		_, cerr := tx.EventRecord.Create().
			SetSourceEventID(env.SourceEventID).
			SetAgentID(env.AgentID).
			SetRunID(env.RunID).
			SetSourceSequence(env.SourceSequence).
			SetSourceOccurredAt(env.SourceOccurredAt).
			SetIngestedAt(env.IngestedAt).
			SetEventType(env.Event.Type).
			SetPayload(env.Event).
			Save(ctx)
		if cerr != nil {
			if ent.IsConstraintError(cerr) {
				return nil
			}
			return fmt.Errorf("failed to append event %s: %w", env.SourceEventID, cerr)
		}
		stored = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return stored, nil
}

// GetEvents returns history rows matching the filter in insertion order.
// Limit defaults to 100 and is capped at 1000.
func (s *Store) GetEvents(ctx context.Context, filter EventFilter) ([]*ent.EventRecord, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	q := s.client.EventRecord.Query()
	if filter.AgentID != "" {
		q = q.Where(eventrecord.AgentID(filter.AgentID))
	}
	if filter.RunID != "" {
		q = q.Where(eventrecord.RunID(filter.RunID))
	}
	if len(filter.Types) > 0 {
		q = q.Where(eventrecord.EventTypeIn(filter.Types...))
	}
	if !filter.Since.IsZero() {
		q = q.Where(eventrecord.IngestedAtGTE(filter.Since))
	}

	rows, err := q.Order(ent.Asc(eventrecord.FieldID)).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return rows, nil
}

// CountEvents reports how many history rows one agent has.
func (s *Store) CountEvents(ctx context.Context, agentID string) (int, error) {
	n, err := s.client.EventRecord.Query().
		Where(eventrecord.AgentID(agentID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count events for %s: %w", agentID, err)
	}
	return n, nil
}

// LastStoredSequence returns the highest sourceSequence persisted for the
// agent across all runs, or -1 when the agent has no stored events. Crash
// recovery stamps this into reconstructed checkpoints.
func (s *Store) LastStoredSequence(ctx context.Context, agentID string) (int64, error) {
	row, err := s.client.EventRecord.Query().
		Where(eventrecord.AgentID(agentID)).
		Order(ent.Desc(eventrecord.FieldSourceSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return -1, nil
		}
		return 0, fmt.Errorf("failed to query last sequence for %s: %w", agentID, err)
	}
	return row.SourceSequence, nil
}
