// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/agentrecord"
	"github.com/steward-io/steward/pkg/models"
)

// AgentRecord is the model entity for the AgentRecord schema.
type AgentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Primary workstream assignment
	Workstream string `json:"workstream,omitempty"`
	// ReadableWorkstreams holds the value of the "readable_workstreams" field.
	ReadableWorkstreams []string `json:"readable_workstreams,omitempty"`
	// PluginName holds the value of the "plugin_name" field.
	PluginName string `json:"plugin_name,omitempty"`
	// Status holds the value of the "status" field.
	Status agentrecord.Status `json:"status,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID *string `json:"session_id,omitempty"`
	// ModelPreference holds the value of the "model_preference" field.
	ModelPreference *string `json:"model_preference,omitempty"`
	// Brief snapshot handed to the agent at spawn
	Brief models.AgentBrief `json:"brief,omitempty"`
	// SpawnedAt holds the value of the "spawned_at" field.
	SpawnedAt time.Time `json:"spawned_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldReadableWorkstreams, agentrecord.FieldBrief:
			values[i] = new([]byte)
		case agentrecord.FieldID, agentrecord.FieldRole, agentrecord.FieldWorkstream, agentrecord.FieldPluginName, agentrecord.FieldStatus, agentrecord.FieldSessionID, agentrecord.FieldModelPreference:
			values[i] = new(sql.NullString)
		case agentrecord.FieldSpawnedAt, agentrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRecord fields.
func (_m *AgentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrecord.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case agentrecord.FieldWorkstream:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workstream", values[i])
			} else if value.Valid {
				_m.Workstream = value.String
			}
		case agentrecord.FieldReadableWorkstreams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field readable_workstreams", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReadableWorkstreams); err != nil {
					return fmt.Errorf("unmarshal field readable_workstreams: %w", err)
				}
			}
		case agentrecord.FieldPluginName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plugin_name", values[i])
			} else if value.Valid {
				_m.PluginName = value.String
			}
		case agentrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentrecord.Status(value.String)
			}
		case agentrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case agentrecord.FieldModelPreference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_preference", values[i])
			} else if value.Valid {
				_m.ModelPreference = new(string)
				*_m.ModelPreference = value.String
			}
		case agentrecord.FieldBrief:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field brief", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Brief); err != nil {
					return fmt.Errorf("unmarshal field brief: %w", err)
				}
			}
		case agentrecord.FieldSpawnedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field spawned_at", values[i])
			} else if value.Valid {
				_m.SpawnedAt = value.Time
			}
		case agentrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentRecord.
// Note that you need to call AgentRecord.Unwrap() before calling this method if this AgentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRecord) Update() *AgentRecordUpdateOne {
	return NewAgentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRecord) Unwrap() *AgentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("workstream=")
	builder.WriteString(_m.Workstream)
	builder.WriteString(", ")
	builder.WriteString("readable_workstreams=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadableWorkstreams))
	builder.WriteString(", ")
	builder.WriteString("plugin_name=")
	builder.WriteString(_m.PluginName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelPreference; v != nil {
		builder.WriteString("model_preference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("brief=")
	builder.WriteString(fmt.Sprintf("%v", _m.Brief))
	builder.WriteString(", ")
	builder.WriteString("spawned_at=")
	builder.WriteString(_m.SpawnedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentRecords is a parsable slice of AgentRecord.
type AgentRecords []*AgentRecord
