package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortPool_AcquireLowestFree(t *testing.T) {
	pool := NewPortPool(9200, 9202)

	p1, err := pool.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 9200, p1)

	p2, err := pool.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 9201, p2)

	// Freed ports are handed out again before later ones.
	pool.Release(9200)
	p3, err := pool.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 9200, p3)

	p4, err := pool.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 9202, p4)
	assert.Equal(t, 3, pool.InUse())

	_, err = pool.Acquire()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted")
}

func TestPortPool_ReleaseUnknownIsNoop(t *testing.T) {
	pool := NewPortPool(9200, 9201)
	pool.Release(9200)
	pool.Release(12345)
	assert.Equal(t, 0, pool.InUse())

	p, err := pool.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 9200, p)
}

func TestDefaultPortPool(t *testing.T) {
	pool := DefaultPortPool()
	p, err := pool.Acquire()
	require.NoError(t, err)
	assert.Equal(t, DefaultPortRangeStart, p)
}
