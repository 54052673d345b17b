package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/test/util"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?cache=shared&_fk=1", sqliteDSN(":memory:"))
	assert.Equal(t, "file:steward.db?_fk=1&_busy_timeout=5000&_journal_mode=WAL", sqliteDSN("steward.db"))
}

func TestNewClientUnknownDriver(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Driver: "oracle"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown database driver")
}

func TestNewClientSQLiteMemory(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, Config{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	assert.Equal(t, DriverSQLite, client.Driver())

	// Migrations created the tables; the Ent client is usable immediately.
	meta, err := client.StoreMeta.Create().
		SetID("global").
		SetVersion(1).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), meta.Version)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, DriverSQLite, health.Driver)
}

func TestNewClientSQLiteFileReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "steward.db")

	client, err := NewClient(ctx, Config{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)

	_, err = client.TrustScore.Create().
		SetID("agent-1").
		SetScore(61).
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	// Reopening applies no new migrations and sees the persisted row.
	client2, err := NewClient(ctx, Config{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client2.Close()
	})

	score, err := client2.TrustScore.Get(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 61, score.Score)
}

func TestNewClientPostgres(t *testing.T) {
	ctx := context.Background()
	connStr := util.GetBaseConnectionString(t)

	client, err := NewClient(ctx, Config{Driver: DriverPostgres, DSN: connStr})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	assert.Equal(t, DriverPostgres, client.Driver())

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)

	// A second client against the same database hits the no-change path.
	client2, err := NewClient(ctx, Config{Driver: DriverPostgres, DSN: connStr})
	require.NoError(t, err)
	require.NoError(t, client2.Close())
}
