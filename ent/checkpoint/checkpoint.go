// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldDecisionID holds the string denoting the decision_id field in the database.
	FieldDecisionID = "decision_id"
	// FieldSerializedBy holds the string denoting the serialized_by field in the database.
	FieldSerializedBy = "serialized_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldState,
	FieldDecisionID,
	FieldSerializedBy,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SerializedBy defines the type for the "serialized_by" enum field.
type SerializedBy string

// SerializedBy values.
const (
	SerializedByPause              SerializedBy = "pause"
	SerializedByKillGrace          SerializedBy = "kill_grace"
	SerializedByCrashRecovery      SerializedBy = "crash_recovery"
	SerializedByDecisionCheckpoint SerializedBy = "decision_checkpoint"
)

func (sb SerializedBy) String() string {
	return string(sb)
}

// SerializedByValidator is a validator for the "serialized_by" field enum values. It is called by the builders before save.
func SerializedByValidator(sb SerializedBy) error {
	switch sb {
	case SerializedByPause, SerializedByKillGrace, SerializedByCrashRecovery, SerializedByDecisionCheckpoint:
		return nil
	default:
		return fmt.Errorf("checkpoint: invalid enum value for serialized_by field: %q", sb)
	}
}

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByDecisionID orders the results by the decision_id field.
func ByDecisionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionID, opts...).ToFunc()
}

// BySerializedBy orders the results by the serialized_by field.
func BySerializedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSerializedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
