package config

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects the storage backend. Setting the DATABASE_URL
// environment variable forces the postgres driver with that DSN, regardless
// of what the YAML says.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`

	// DSN is the postgres connection string.
	DSN string `yaml:"dsn"`

	// Path is the sqlite database file; ":memory:" keeps it in-process.
	Path string `yaml:"path"`
}

// DefaultDatabaseConfig returns the built-in storage defaults. SQLite keeps
// a fresh checkout runnable without any external services.
func DefaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver: DriverSQLite,
		Path:   "steward.db",
	}
}
