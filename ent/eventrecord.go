// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/eventrecord"
	"github.com/steward-io/steward/pkg/models"
)

// EventRecord is the model entity for the EventRecord schema.
type EventRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Adapter-assigned id; ingestion is idempotent on it
	SourceEventID string `json:"source_event_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Strictly increasing per (agent_id, run_id)
	SourceSequence int64 `json:"source_sequence,omitempty"`
	// SourceOccurredAt holds the value of the "source_occurred_at" field.
	SourceOccurredAt time.Time `json:"source_occurred_at,omitempty"`
	// IngestedAt holds the value of the "ingested_at" field.
	IngestedAt time.Time `json:"ingested_at,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// Typed event body, stored as-is
	Payload      models.AgentEvent `json:"payload,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventrecord.FieldPayload:
			values[i] = new([]byte)
		case eventrecord.FieldID, eventrecord.FieldSourceSequence:
			values[i] = new(sql.NullInt64)
		case eventrecord.FieldSourceEventID, eventrecord.FieldAgentID, eventrecord.FieldRunID, eventrecord.FieldEventType:
			values[i] = new(sql.NullString)
		case eventrecord.FieldSourceOccurredAt, eventrecord.FieldIngestedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventRecord fields.
func (_m *EventRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case eventrecord.FieldSourceEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_event_id", values[i])
			} else if value.Valid {
				_m.SourceEventID = value.String
			}
		case eventrecord.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case eventrecord.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case eventrecord.FieldSourceSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_sequence", values[i])
			} else if value.Valid {
				_m.SourceSequence = value.Int64
			}
		case eventrecord.FieldSourceOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field source_occurred_at", values[i])
			} else if value.Valid {
				_m.SourceOccurredAt = value.Time
			}
		case eventrecord.FieldIngestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ingested_at", values[i])
			} else if value.Valid {
				_m.IngestedAt = value.Time
			}
		case eventrecord.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case eventrecord.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EventRecord.
// This includes values selected through modifiers, order, etc.
func (_m *EventRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EventRecord.
// Note that you need to call EventRecord.Unwrap() before calling this method if this EventRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventRecord) Update() *EventRecordUpdateOne {
	return NewEventRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventRecord) Unwrap() *EventRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventRecord) String() string {
	var builder strings.Builder
	builder.WriteString("EventRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_event_id=")
	builder.WriteString(_m.SourceEventID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("source_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceSequence))
	builder.WriteString(", ")
	builder.WriteString("source_occurred_at=")
	builder.WriteString(_m.SourceOccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ingested_at=")
	builder.WriteString(_m.IngestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteByte(')')
	return builder.String()
}

// EventRecords is a parsable slice of EventRecord.
type EventRecords []*EventRecord
