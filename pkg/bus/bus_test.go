package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
)

func statusEnvelope(agentID, eventID string) *models.EventEnvelope {
	return &models.EventEnvelope{
		SourceEventID:    eventID,
		SourceSequence:   1,
		SourceOccurredAt: time.Now(),
		RunID:            "run-1",
		AgentID:          agentID,
		IngestedAt:       time.Now(),
		Event: models.AgentEvent{
			Type:   models.EventTypeStatus,
			Status: &models.StatusEvent{Message: "working"},
		},
	}
}

func TestPublishInvokesMatchingHandlersInOrder(t *testing.T) {
	b := New()

	var order []string
	b.Subscribe(Filter{}, func(*models.EventEnvelope) { order = append(order, "first") })
	b.Subscribe(Filter{Types: []string{models.EventTypeStatus}}, func(*models.EventEnvelope) {
		order = append(order, "second")
	})
	b.Subscribe(Filter{Types: []string{models.EventTypeArtifact}}, func(*models.EventEnvelope) {
		order = append(order, "never")
	})

	b.Publish(statusEnvelope("a1", "ev-1"))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestFilterByAgentID(t *testing.T) {
	b := New()

	got := 0
	b.Subscribe(Filter{AgentID: "a1"}, func(*models.EventEnvelope) { got++ })

	b.Publish(statusEnvelope("a1", "ev-1"))
	b.Publish(statusEnvelope("a2", "ev-2"))
	assert.Equal(t, 1, got)
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	b := New()

	got := 0
	b.Subscribe(Filter{}, func(*models.EventEnvelope) { got++ })

	b.Publish(statusEnvelope("a1", "ev-1"))
	env := statusEnvelope("a2", "ev-2")
	env.Event = models.AgentEvent{
		Type:     models.EventTypeProgress,
		Progress: &models.ProgressEvent{Percent: 50},
	}
	b.Publish(env)
	assert.Equal(t, 2, got)
}

func TestHandlerPanicIsIsolated(t *testing.T) {
	b := New()

	b.Subscribe(Filter{}, func(*models.EventEnvelope) { panic("boom") })
	reached := false
	b.Subscribe(Filter{}, func(*models.EventEnvelope) { reached = true })

	require.NotPanics(t, func() { b.Publish(statusEnvelope("a1", "ev-1")) })
	assert.True(t, reached, "panic in one handler must not abort others")
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	b := New()

	got := 0
	id := b.Subscribe(Filter{}, func(*models.EventEnvelope) { got++ })
	b.Unsubscribe(id)
	b.Unsubscribe(id)

	b.Publish(statusEnvelope("a1", "ev-1"))
	assert.Zero(t, got)
	assert.Zero(t, b.SubscriberCount())
}

func TestPublishOrderPreservedPerPublisher(t *testing.T) {
	b := New()

	var seen []string
	b.Subscribe(Filter{}, func(env *models.EventEnvelope) {
		seen = append(seen, env.SourceEventID)
	})

	for _, id := range []string{"ev-1", "ev-2", "ev-3"} {
		b.Publish(statusEnvelope("a1", id))
	}
	assert.Equal(t, []string{"ev-1", "ev-2", "ev-3"}, seen)
}

func TestSubscribeDuringPublishDoesNotDeadlock(t *testing.T) {
	b := New()

	b.Subscribe(Filter{}, func(*models.EventEnvelope) {
		// Handlers may register new subscriptions; dispatch runs off a snapshot.
		b.Subscribe(Filter{}, func(*models.EventEnvelope) {})
	})

	require.NotPanics(t, func() { b.Publish(statusEnvelope("a1", "ev-1")) })
	assert.Equal(t, 2, b.SubscriberCount())
}
