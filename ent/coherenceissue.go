// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/coherenceissue"
)

// CoherenceIssue is the model entity for the CoherenceIssue schema.
type CoherenceIssue struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind coherenceissue.Kind `json:"kind,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity coherenceissue.Severity `json:"severity,omitempty"`
	// Status holds the value of the "status" field.
	Status coherenceissue.Status `json:"status,omitempty"`
	// AffectedWorkstreams holds the value of the "affected_workstreams" field.
	AffectedWorkstreams []string `json:"affected_workstreams,omitempty"`
	// Ids of the artifacts involved in the inconsistency
	AffectedArtifacts []string `json:"affected_artifacts,omitempty"`
	// Agent id when reported through the event stream
	DetectedBy *string `json:"detected_by,omitempty"`
	// DetectedAtTick holds the value of the "detected_at_tick" field.
	DetectedAtTick int64 `json:"detected_at_tick,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Resolution holds the value of the "resolution" field.
	Resolution   *string `json:"resolution,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CoherenceIssue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coherenceissue.FieldAffectedWorkstreams, coherenceissue.FieldAffectedArtifacts:
			values[i] = new([]byte)
		case coherenceissue.FieldDetectedAtTick:
			values[i] = new(sql.NullInt64)
		case coherenceissue.FieldID, coherenceissue.FieldKind, coherenceissue.FieldSummary, coherenceissue.FieldSeverity, coherenceissue.FieldStatus, coherenceissue.FieldDetectedBy, coherenceissue.FieldResolution:
			values[i] = new(sql.NullString)
		case coherenceissue.FieldCreatedAt, coherenceissue.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CoherenceIssue fields.
func (_m *CoherenceIssue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coherenceissue.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case coherenceissue.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = coherenceissue.Kind(value.String)
			}
		case coherenceissue.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case coherenceissue.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = coherenceissue.Severity(value.String)
			}
		case coherenceissue.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = coherenceissue.Status(value.String)
			}
		case coherenceissue.FieldAffectedWorkstreams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field affected_workstreams", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AffectedWorkstreams); err != nil {
					return fmt.Errorf("unmarshal field affected_workstreams: %w", err)
				}
			}
		case coherenceissue.FieldAffectedArtifacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field affected_artifacts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AffectedArtifacts); err != nil {
					return fmt.Errorf("unmarshal field affected_artifacts: %w", err)
				}
			}
		case coherenceissue.FieldDetectedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detected_by", values[i])
			} else if value.Valid {
				_m.DetectedBy = new(string)
				*_m.DetectedBy = value.String
			}
		case coherenceissue.FieldDetectedAtTick:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at_tick", values[i])
			} else if value.Valid {
				_m.DetectedAtTick = value.Int64
			}
		case coherenceissue.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case coherenceissue.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case coherenceissue.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = new(string)
				*_m.Resolution = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CoherenceIssue.
// This includes values selected through modifiers, order, etc.
func (_m *CoherenceIssue) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CoherenceIssue.
// Note that you need to call CoherenceIssue.Unwrap() before calling this method if this CoherenceIssue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CoherenceIssue) Update() *CoherenceIssueUpdateOne {
	return NewCoherenceIssueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CoherenceIssue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CoherenceIssue) Unwrap() *CoherenceIssue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CoherenceIssue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CoherenceIssue) String() string {
	var builder strings.Builder
	builder.WriteString("CoherenceIssue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("affected_workstreams=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectedWorkstreams))
	builder.WriteString(", ")
	builder.WriteString("affected_artifacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectedArtifacts))
	builder.WriteString(", ")
	if v := _m.DetectedBy; v != nil {
		builder.WriteString("detected_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("detected_at_tick=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedAtTick))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Resolution; v != nil {
		builder.WriteString("resolution=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// CoherenceIssues is a parsable slice of CoherenceIssue.
type CoherenceIssues []*CoherenceIssue
