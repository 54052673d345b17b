package store

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/workstream"
)

// ensureWorkstreamTx creates the workstream row if it does not exist and
// refreshes its activity timestamp if it does. Empty name defaults to the id;
// empty status defaults to "active" on create and is left alone on update.
// Runs inside the caller's tx.
func (s *Store) ensureWorkstreamTx(ctx context.Context, tx *ent.Tx, id, name, status string) error {
	if id == "" {
		return nil
	}
	now := time.Now().UTC()
	existing, err := tx.Workstream.Query().
		Where(workstream.ID(id)).
		Only(ctx)
	switch {
	case err == nil:
		builder := existing.Update().
			SetLastActivity(now.Format(time.RFC3339)).
			SetUpdatedAt(now)
		if name != "" {
			builder.SetName(name)
		}
		if status != "" {
			builder.SetStatus(status)
		}
		if _, uerr := builder.Save(ctx); uerr != nil {
			return fmt.Errorf("failed to touch workstream %s: %w", id, uerr)
		}
		return nil
	case ent.IsNotFound(err):
		if name == "" {
			name = id
		}
		if status == "" {
			status = "active"
		}
		_, cerr := tx.Workstream.Create().
			SetID(id).
			SetName(name).
			SetStatus(status).
			SetLastActivity(now.Format(time.RFC3339)).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if cerr != nil {
			return fmt.Errorf("failed to create workstream %s: %w", id, cerr)
		}
		return nil
	default:
		return fmt.Errorf("failed to query workstream %s: %w", id, err)
	}
}

// EnsureWorkstream registers a workstream, creating it on first sight.
// Safe to call repeatedly; repeat calls refresh the activity timestamp and
// apply any non-empty name/status.
func (s *Store) EnsureWorkstream(ctx context.Context, id, name, status string) error {
	if id == "" {
		return NewValidationError("workstream", "cannot be empty")
	}
	return s.withWriteTx(ctx, func(tx *ent.Tx) error {
		if err := s.ensureWorkstreamTx(ctx, tx, id, name, status); err != nil {
			return err
		}
		_, verr := s.bumpVersionTx(ctx, tx)
		return verr
	})
}

// UpdateWorkstreamActivity stamps the workstream's last activity time.
// Unknown workstreams are created rather than rejected, since activity can
// arrive from an agent before anything else mentions the workstream.
func (s *Store) UpdateWorkstreamActivity(ctx context.Context, id string) error {
	return s.EnsureWorkstream(ctx, id, "", "")
}

// ListWorkstreams returns all workstreams ordered by most recent activity.
func (s *Store) ListWorkstreams(ctx context.Context) ([]*ent.Workstream, error) {
	rows, err := s.client.Workstream.Query().
		Order(ent.Desc(workstream.FieldLastActivity)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workstreams: %w", err)
	}
	return rows, nil
}
