package tick

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceFiresPerIntermediateTick(t *testing.T) {
	svc, err := NewService(ModeManual, 0)
	require.NoError(t, err)

	var seen []int64
	svc.Subscribe(func(tick int64) {
		seen = append(seen, tick)
	})

	current, err := svc.Advance(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), current)
	assert.Equal(t, []int64{1, 2, 3}, seen)
	assert.Equal(t, int64(3), svc.Current())
}

func TestSubscribersFireInRegistrationOrder(t *testing.T) {
	svc, err := NewService(ModeManual, 0)
	require.NoError(t, err)

	var order []string
	svc.Subscribe(func(int64) { order = append(order, "a") })
	svc.Subscribe(func(int64) { order = append(order, "b") })
	svc.Subscribe(func(int64) { order = append(order, "c") })

	_, err = svc.Advance(context.Background(), 2)
	require.NoError(t, err)

	// Every subscriber observes tick t before any observes t+1.
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, order)
}

func TestCurrentReadableFromSubscriber(t *testing.T) {
	svc, err := NewService(ModeManual, 0)
	require.NoError(t, err)

	var observed int64
	svc.Subscribe(func(tick int64) {
		// Must not deadlock and must match the fired tick.
		observed = svc.Current()
		assert.Equal(t, tick, observed)
	})

	_, err = svc.Advance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), observed)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	svc, err := NewService(ModeManual, 0)
	require.NoError(t, err)

	calls := 0
	id := svc.Subscribe(func(int64) { calls++ })
	svc.Unsubscribe(id)
	svc.Unsubscribe(id)

	_, err = svc.Advance(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestAdvanceRejectsNonPositive(t *testing.T) {
	svc, err := NewService(ModeManual, 0)
	require.NoError(t, err)

	_, err = svc.Advance(context.Background(), 0)
	require.Error(t, err)
	_, err = svc.Advance(context.Background(), -5)
	require.Error(t, err)
	assert.Equal(t, int64(0), svc.Current())
}

func TestSubscriberPanicDoesNotStallClock(t *testing.T) {
	svc, err := NewService(ModeManual, 0)
	require.NoError(t, err)

	svc.Subscribe(func(int64) { panic("bad scheduler") })
	after := 0
	svc.Subscribe(func(int64) { after++ })

	_, err = svc.Advance(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, after)
	assert.Equal(t, int64(2), svc.Current())
}

func TestNewServiceValidatesMode(t *testing.T) {
	_, err := NewService("cron", 0)
	require.Error(t, err)

	_, err = NewService(ModeTimer, 0)
	require.Error(t, err, "timer mode requires an interval")
}
