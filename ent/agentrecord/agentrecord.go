// Code generated by ent, DO NOT EDIT.

package agentrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentrecord type in the database.
	Label = "agent_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldWorkstream holds the string denoting the workstream field in the database.
	FieldWorkstream = "workstream"
	// FieldReadableWorkstreams holds the string denoting the readable_workstreams field in the database.
	FieldReadableWorkstreams = "readable_workstreams"
	// FieldPluginName holds the string denoting the plugin_name field in the database.
	FieldPluginName = "plugin_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldModelPreference holds the string denoting the model_preference field in the database.
	FieldModelPreference = "model_preference"
	// FieldBrief holds the string denoting the brief field in the database.
	FieldBrief = "brief"
	// FieldSpawnedAt holds the string denoting the spawned_at field in the database.
	FieldSpawnedAt = "spawned_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agentrecord in the database.
	Table = "agent_records"
)

// Columns holds all SQL columns for agentrecord fields.
var Columns = []string{
	FieldID,
	FieldRole,
	FieldWorkstream,
	FieldReadableWorkstreams,
	FieldPluginName,
	FieldStatus,
	FieldSessionID,
	FieldModelPreference,
	FieldBrief,
	FieldSpawnedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSpawnedAt holds the default value on creation for the "spawned_at" field.
	DefaultSpawnedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning        Status = "running"
	StatusPaused         Status = "paused"
	StatusWaitingOnHuman Status = "waiting_on_human"
	StatusCompleted      Status = "completed"
	StatusError          Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusPaused, StatusWaitingOnHuman, StatusCompleted, StatusError:
		return nil
	default:
		return fmt.Errorf("agentrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByWorkstream orders the results by the workstream field.
func ByWorkstream(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkstream, opts...).ToFunc()
}

// ByPluginName orders the results by the plugin_name field.
func ByPluginName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPluginName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByModelPreference orders the results by the model_preference field.
func ByModelPreference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelPreference, opts...).ToFunc()
}

// BySpawnedAt orders the results by the spawned_at field.
func BySpawnedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpawnedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
