// Package store is the knowledge store: transactional persistence for
// artifacts, agents, coherence issues, trust scores, events, checkpoints,
// workstreams, project config, quarantine, and the audit log, plus the
// versioned snapshot read-model derived from all of it.
//
// Every mutation that changes externally visible snapshot data bumps the
// global version counter inside the same transaction. Writes additionally
// serialize through a store-level mutex: reads run concurrently, but there is
// at most one writer, which is what makes the artifact read-check-write
// version guard exact on every SQL backend.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/storemeta"
)

const metaRowID = "global"

// Store wraps the ent client with the knowledge-store contract.
type Store struct {
	client *ent.Client

	writeMu sync.Mutex

	// maxQuarantine caps the quarantine table (oldest evicted first).
	maxQuarantine int
}

// Option configures a Store.
type Option func(*Store)

// WithQuarantineCap overrides the quarantined-event retention cap.
func WithQuarantineCap(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxQuarantine = n
		}
	}
}

// New creates a Store over an ent client.
func New(client *ent.Client, opts ...Option) *Store {
	s := &Store{
		client:        client,
		maxQuarantine: 200,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Client exposes the underlying ent client for health checks and tests.
func (s *Store) Client() *ent.Client {
	return s.client
}

// GetVersion returns the current global version counter (0 before the first
// mutation).
func (s *Store) GetVersion(ctx context.Context) (int64, error) {
	meta, err := s.client.StoreMeta.Query().
		Where(storemeta.IDEQ(metaRowID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read store version: %w", err)
	}
	return meta.Version, nil
}

// bumpVersionTx increments the global version counter inside the caller's
// transaction and returns the new value.
func (s *Store) bumpVersionTx(ctx context.Context, tx *ent.Tx) (int64, error) {
	meta, err := tx.StoreMeta.Query().
		Where(storemeta.IDEQ(metaRowID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("failed to read store version: %w", err)
		}
		created, cerr := tx.StoreMeta.Create().
			SetID(metaRowID).
			SetVersion(1).
			SetUpdatedAt(time.Now().UTC()).
			Save(ctx)
		if cerr != nil {
			return 0, fmt.Errorf("failed to initialize store version: %w", cerr)
		}
		return created.Version, nil
	}

	updated, err := meta.Update().
		SetVersion(meta.Version + 1).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to bump store version: %w", err)
	}
	return updated.Version, nil
}

// auditTx appends an audit record inside the caller's transaction.
func (s *Store) auditTx(ctx context.Context, tx *ent.Tx, entityType, entityID, action, caller string, details map[string]interface{}) error {
	builder := tx.AuditEntry.Create().
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetAction(action).
		SetTimestamp(time.Now().UTC())
	if caller != "" {
		builder.SetCallerAgentID(caller)
	}
	if details != nil {
		builder.SetDetails(details)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// withWriteTx serializes the write against other writers, opens a transaction,
// runs fn, and commits. fn gets the open tx; a returned error rolls back.
func (s *Store) withWriteTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// callerOrSystem substitutes the fallback author for writes that did not come
// through an authenticated or agent-attributed path.
func callerOrSystem(caller string) string {
	if caller == "" {
		return "system"
	}
	return caller
}
