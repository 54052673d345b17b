package store

import (
	"context"
	"fmt"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/auditentry"
)

// AppendAudit records a standalone audit entry. Writes that happen inside
// other store operations audit within the same transaction instead.
func (s *Store) AppendAudit(ctx context.Context, entityType, entityID, action, caller string, details map[string]interface{}) error {
	if entityType == "" || action == "" {
		return NewValidationError("audit", "entityType and action are required")
	}
	return s.withWriteTx(ctx, func(tx *ent.Tx) error {
		return s.auditTx(ctx, tx, entityType, entityID, action, caller, details)
	})
}

// ListAuditLog returns audit entries newest first, optionally filtered by
// entity type and id.
func (s *Store) ListAuditLog(ctx context.Context, entityType, entityID string) ([]*ent.AuditEntry, error) {
	q := s.client.AuditEntry.Query()
	if entityType != "" {
		q = q.Where(auditentry.EntityType(entityType))
	}
	if entityID != "" {
		q = q.Where(auditentry.EntityID(entityID))
	}
	rows, err := q.Order(ent.Desc(auditentry.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	return rows, nil
}
