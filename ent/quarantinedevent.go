// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/quarantinedevent"
)

// QuarantinedEvent is the model entity for the QuarantinedEvent schema.
type QuarantinedEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Original payload, verbatim
	Raw string `json:"raw,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Agent id or transport the payload arrived from, when known
	Source *string `json:"source,omitempty"`
	// QuarantinedAt holds the value of the "quarantined_at" field.
	QuarantinedAt time.Time `json:"quarantined_at,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuarantinedEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quarantinedevent.FieldID:
			values[i] = new(sql.NullInt64)
		case quarantinedevent.FieldRaw, quarantinedevent.FieldReason, quarantinedevent.FieldSource:
			values[i] = new(sql.NullString)
		case quarantinedevent.FieldQuarantinedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuarantinedEvent fields.
func (_m *QuarantinedEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quarantinedevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quarantinedevent.FieldRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw", values[i])
			} else if value.Valid {
				_m.Raw = value.String
			}
		case quarantinedevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case quarantinedevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = new(string)
				*_m.Source = value.String
			}
		case quarantinedevent.FieldQuarantinedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field quarantined_at", values[i])
			} else if value.Valid {
				_m.QuarantinedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuarantinedEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuarantinedEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuarantinedEvent.
// Note that you need to call QuarantinedEvent.Unwrap() before calling this method if this QuarantinedEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuarantinedEvent) Update() *QuarantinedEventUpdateOne {
	return NewQuarantinedEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuarantinedEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuarantinedEvent) Unwrap() *QuarantinedEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuarantinedEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuarantinedEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuarantinedEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("raw=")
	builder.WriteString(_m.Raw)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	if v := _m.Source; v != nil {
		builder.WriteString("source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("quarantined_at=")
	builder.WriteString(_m.QuarantinedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuarantinedEvents is a parsable slice of QuarantinedEvent.
type QuarantinedEvents []*QuarantinedEvent
