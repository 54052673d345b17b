// Code generated by ent, DO NOT EDIT.

package coherenceissue

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the coherenceissue type in the database.
	Label = "coherence_issue"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "issue_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAffectedWorkstreams holds the string denoting the affected_workstreams field in the database.
	FieldAffectedWorkstreams = "affected_workstreams"
	// FieldAffectedArtifacts holds the string denoting the affected_artifacts field in the database.
	FieldAffectedArtifacts = "affected_artifacts"
	// FieldDetectedBy holds the string denoting the detected_by field in the database.
	FieldDetectedBy = "detected_by"
	// FieldDetectedAtTick holds the string denoting the detected_at_tick field in the database.
	FieldDetectedAtTick = "detected_at_tick"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// Table holds the table name of the coherenceissue in the database.
	Table = "coherence_issues"
)

// Columns holds all SQL columns for coherenceissue fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldSummary,
	FieldSeverity,
	FieldStatus,
	FieldAffectedWorkstreams,
	FieldAffectedArtifacts,
	FieldDetectedBy,
	FieldDetectedAtTick,
	FieldCreatedAt,
	FieldResolvedAt,
	FieldResolution,
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
	// DefaultDetectedAtTick holds the default value on creation for the "detected_at_tick" field.
	DefaultDetectedAtTick int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindContradiction       Kind = "contradiction"
	KindDuplication         Kind = "duplication"
	KindGap                 Kind = "gap"
	KindDependencyViolation Kind = "dependency_violation"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindContradiction, KindDuplication, KindGap, KindDependencyViolation:
		return nil
	default:
		return fmt.Errorf("coherenceissue: invalid enum value for kind field: %q", k)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// SeverityMedium is the default value of the Severity enum.
const DefaultSeverity = SeverityMedium

// Severity values.
const (
	SeverityWarning  Severity = "warning"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityWarning, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("coherenceissue: invalid enum value for severity field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusResolved:
		return nil
	default:
		return fmt.Errorf("coherenceissue: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CoherenceIssue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDetectedBy orders the results by the detected_by field.
func ByDetectedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedBy, opts...).ToFunc()
}

// ByDetectedAtTick orders the results by the detected_at_tick field.
func ByDetectedAtTick(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAtTick, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}
