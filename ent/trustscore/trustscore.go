// Code generated by ent, DO NOT EDIT.

package trustscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trustscore type in the database.
	Label = "trust_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldLastReason holds the string denoting the last_reason field in the database.
	FieldLastReason = "last_reason"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the trustscore in the database.
	Table = "trust_scores"
)

// Columns holds all SQL columns for trustscore fields.
var Columns = []string{
	FieldID,
	FieldScore,
	FieldLastReason,
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
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TrustScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByLastReason orders the results by the last_reason field.
func ByLastReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReason, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
