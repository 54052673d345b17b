package services

import (
	"context"

	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
)

// SnapshotSource composes the store's persisted state with the queue's
// in-memory pending decisions into one knowledge snapshot. It satisfies the
// injection scheduler's provider interface and backs state_sync frames and
// spawn-time snapshot attachment.
type SnapshotSource struct {
	store *store.Store
	queue *decision.Queue
}

// NewSnapshotSource creates the source.
func NewSnapshotSource(st *store.Store, queue *decision.Queue) *SnapshotSource {
	if st == nil {
		panic("NewSnapshotSource: store must not be nil")
	}
	if queue == nil {
		panic("NewSnapshotSource: queue must not be nil")
	}
	return &SnapshotSource{store: st, queue: queue}
}

// Snapshot builds the current snapshot. Pending decisions come from the
// queue; triaged and suspended ones are deliberately left out.
func (s *SnapshotSource) Snapshot(ctx context.Context) (*models.KnowledgeSnapshot, error) {
	items := s.queue.ListPending("")
	pending := make([]models.DecisionEvent, 0, len(items))
	for _, it := range items {
		pending = append(pending, it.Event)
	}
	return s.store.GetSnapshot(ctx, pending)
}
