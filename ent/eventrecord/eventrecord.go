// Code generated by ent, DO NOT EDIT.

package eventrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventrecord type in the database.
	Label = "event_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceEventID holds the string denoting the source_event_id field in the database.
	FieldSourceEventID = "source_event_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldSourceSequence holds the string denoting the source_sequence field in the database.
	FieldSourceSequence = "source_sequence"
	// FieldSourceOccurredAt holds the string denoting the source_occurred_at field in the database.
	FieldSourceOccurredAt = "source_occurred_at"
	// FieldIngestedAt holds the string denoting the ingested_at field in the database.
	FieldIngestedAt = "ingested_at"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// Table holds the table name of the eventrecord in the database.
	Table = "event_records"
)

// Columns holds all SQL columns for eventrecord fields.
var Columns = []string{
	FieldID,
	FieldSourceEventID,
	FieldAgentID,
	FieldRunID,
	FieldSourceSequence,
	FieldSourceOccurredAt,
	FieldIngestedAt,
	FieldEventType,
	FieldPayload,
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
	// DefaultIngestedAt holds the default value on creation for the "ingested_at" field.
	DefaultIngestedAt func() time.Time
)

// OrderOption defines the ordering options for the EventRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceEventID orders the results by the source_event_id field.
func BySourceEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceEventID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// BySourceSequence orders the results by the source_sequence field.
func BySourceSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceSequence, opts...).ToFunc()
}

// BySourceOccurredAt orders the results by the source_occurred_at field.
func BySourceOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceOccurredAt, opts...).ToFunc()
}

// ByIngestedAt orders the results by the ingested_at field.
func ByIngestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestedAt, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}
