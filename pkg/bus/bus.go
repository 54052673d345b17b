// Package bus provides the in-process publish/subscribe channel for ingested
// event envelopes. Publish is synchronous: every matching handler runs to
// completion in the publisher's goroutine, so handlers must be fast and defer
// any I/O.
package bus

import (
	"log/slog"
	"sync"

	"github.com/steward-io/steward/pkg/models"
)

// Filter matches envelopes by event type and/or agent id. Zero value matches
// everything.
type Filter struct {
	Types   []string
	AgentID string
}

// Matches reports whether the envelope passes the filter.
func (f Filter) Matches(env *models.EventEnvelope) bool {
	if f.AgentID != "" && f.AgentID != env.AgentID {
		return false
	}
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if t == env.Event.Type {
			return true
		}
	}
	return false
}

// Handler receives matching envelopes. The envelope is shared: handlers must
// not mutate it.
type Handler func(env *models.EventEnvelope)

type subscription struct {
	id      int64
	filter  Filter
	handler Handler
}

// Bus is the in-process event bus.
type Bus struct {
	mu     sync.RWMutex
	subs   []*subscription
	nextID int64
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for envelopes matching the filter and returns
// a subscription id.
func (b *Bus) Subscribe(filter Filter, handler Handler) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs = append(b.subs, &subscription{id: b.nextID, filter: filter, handler: handler})
	return b.nextID
}

// Unsubscribe removes a subscription. Idempotent.
func (b *Bus) Unsubscribe(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish synchronously invokes every matching handler in subscription order.
// Handlers run from a snapshot of the subscription list, so the bus lock is
// never held across handler code, and a handler panic is isolated to that
// handler.
func (b *Bus) Publish(env *models.EventEnvelope) {
	if env == nil {
		return
	}

	b.mu.RLock()
	snapshot := make([]*subscription, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.RUnlock()

	for _, sub := range snapshot {
		if !sub.filter.Matches(env) {
			continue
		}
		b.dispatch(sub, env)
	}
}

func (b *Bus) dispatch(sub *subscription, env *models.EventEnvelope) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event bus handler panicked",
				"subscription_id", sub.id,
				"event_type", env.Event.Type,
				"agent_id", env.AgentID,
				"panic", r)
		}
	}()
	sub.handler(env)
}

// SubscriberCount returns the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
