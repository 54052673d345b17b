package store

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/quarantinedevent"
)

// AddQuarantined stores a raw payload that failed validation, together with
// the reason. The table is capped; the oldest rows are evicted past the cap
// so a misbehaving adapter cannot grow it without bound.
func (s *Store) AddQuarantined(ctx context.Context, raw []byte, reason, source string) error {
	if reason == "" {
		return NewValidationError("reason", "cannot be empty")
	}
	return s.withWriteTx(ctx, func(tx *ent.Tx) error {
		_, cerr := tx.QuarantinedEvent.Create().
			SetRaw(string(raw)).
			SetReason(reason).
			SetSource(source).
			SetQuarantinedAt(time.Now().UTC()).
			Save(ctx)
		if cerr != nil {
			return fmt.Errorf("failed to quarantine event: %w", cerr)
		}

		stale, qerr := tx.QuarantinedEvent.Query().
			Order(ent.Desc(quarantinedevent.FieldID)).
			Offset(s.maxQuarantine).
			All(ctx)
		if qerr != nil {
			return fmt.Errorf("failed to query quarantine overflow: %w", qerr)
		}
		for _, old := range stale {
			if derr := tx.QuarantinedEvent.DeleteOne(old).Exec(ctx); derr != nil {
				return fmt.Errorf("failed to evict quarantined event %d: %w", old.ID, derr)
			}
		}
		return nil
	})
}

// ListQuarantined returns quarantined payloads newest first. limit <= 0
// returns everything retained.
func (s *Store) ListQuarantined(ctx context.Context, limit int) ([]*ent.QuarantinedEvent, error) {
	q := s.client.QuarantinedEvent.Query().
		Order(ent.Desc(quarantinedevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quarantined events: %w", err)
	}
	return rows, nil
}

// ClearQuarantined empties the quarantine table and returns the number of
// rows removed.
func (s *Store) ClearQuarantined(ctx context.Context) (int, error) {
	var removed int
	err := s.withWriteTx(ctx, func(tx *ent.Tx) error {
		n, derr := tx.QuarantinedEvent.Delete().Exec(ctx)
		if derr != nil {
			return fmt.Errorf("failed to clear quarantine: %w", derr)
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
