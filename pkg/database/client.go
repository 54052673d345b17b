// Package database opens the backing store and applies schema migrations.
// Postgres is the production backend; SQLite keeps a fresh checkout runnable
// without any external services.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/steward-io/steward/ent"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	_ "github.com/mattn/go-sqlite3"    // Register sqlite3 driver for database/sql
)

// Driver names accepted by Config.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database connection settings.
type Config struct {
	Driver string
	DSN    string // postgres connection string
	Path   string // sqlite file path, or ":memory:"

	// Connection pool settings, postgres only. Zero values pick defaults.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func (c *Config) applyDefaults() {
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 10
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = 30 * time.Minute
	}
	if c.ConnMaxIdleTime == 0 {
		c.ConnMaxIdleTime = 5 * time.Minute
	}
}

// Client wraps the Ent client and keeps the underlying connection reachable
// for health checks and raw SQL.
type Client struct {
	*ent.Client
	db     *stdsql.DB
	driver string
}

// DB returns the underlying database connection.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Driver returns the active driver name.
func (c *Client) Driver() string {
	return c.driver
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB, driver string) *Client {
	return &Client{
		Client: entClient,
		db:     db,
		driver: driver,
	}
}

// NewClient opens the configured database, verifies connectivity, and applies
// pending migrations.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	cfg.applyDefaults()

	var (
		db         *stdsql.DB
		entDialect string
		err        error
	)
	switch cfg.Driver {
	case DriverPostgres:
		db, err = openPostgres(cfg)
		entDialect = dialect.Postgres
	case DriverSQLite:
		db, err = openSQLite(cfg)
		entDialect = dialect.SQLite
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Create Ent driver from the existing connection so the pool settings
	// above apply to every Ent query.
	drv := entsql.OpenDB(entDialect, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := runMigrations(db, cfg.Driver); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{
		Client: entClient,
		db:     db,
		driver: cfg.Driver,
	}, nil
}

func openPostgres(cfg Config) (*stdsql.DB, error) {
	db, err := stdsql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func openSQLite(cfg Config) (*stdsql.DB, error) {
	db, err := stdsql.Open("sqlite3", sqliteDSN(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer; a single pooled connection also keeps an
	// in-memory database alive for the client's lifetime.
	db.SetMaxOpenConns(1)

	return db, nil
}

// sqliteDSN builds a sqlite3 DSN with foreign keys enforced and a busy
// timeout so readers wait on a locked database instead of failing fast.
func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?cache=shared&_fk=1"
	}
	return fmt.Sprintf("file:%s?_fk=1&_busy_timeout=5000&_journal_mode=WAL", path)
}

// HealthStatus reports connectivity and connection pool statistics.
type HealthStatus struct {
	Status          string `json:"status"`
	Driver          string `json:"driver"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the database and returns pool statistics.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	if err := c.db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			Driver:       c.driver,
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()

	return &HealthStatus{
		Status:          "healthy",
		Driver:          c.driver,
		ResponseTime:    time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
