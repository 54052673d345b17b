// Code generated by ent, DO NOT EDIT.

package quarantinedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quarantinedevent type in the database.
	Label = "quarantined_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRaw holds the string denoting the raw field in the database.
	FieldRaw = "raw"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldQuarantinedAt holds the string denoting the quarantined_at field in the database.
	FieldQuarantinedAt = "quarantined_at"
	// Table holds the table name of the quarantinedevent in the database.
	Table = "quarantined_events"
)

// Columns holds all SQL columns for quarantinedevent fields.
var Columns = []string{
	FieldID,
	FieldRaw,
	FieldReason,
	FieldSource,
	FieldQuarantinedAt,
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
	// DefaultQuarantinedAt holds the default value on creation for the "quarantined_at" field.
	DefaultQuarantinedAt func() time.Time
)

// OrderOption defines the ordering options for the QuarantinedEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRaw orders the results by the raw field.
func ByRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRaw, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByQuarantinedAt orders the results by the quarantined_at field.
func ByQuarantinedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuarantinedAt, opts...).ToFunc()
}
