// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/trustscore"
)

// TrustScore is the model entity for the TrustScore schema.
type TrustScore struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// LastReason holds the value of the "last_reason" field.
	LastReason *string `json:"last_reason,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrustScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trustscore.FieldScore:
			values[i] = new(sql.NullInt64)
		case trustscore.FieldID, trustscore.FieldLastReason:
			values[i] = new(sql.NullString)
		case trustscore.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrustScore fields.
func (_m *TrustScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trustscore.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trustscore.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case trustscore.FieldLastReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_reason", values[i])
			} else if value.Valid {
				_m.LastReason = new(string)
				*_m.LastReason = value.String
			}
		case trustscore.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TrustScore.
// This includes values selected through modifiers, order, etc.
func (_m *TrustScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrustScore.
// Note that you need to call TrustScore.Unwrap() before calling this method if this TrustScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrustScore) Update() *TrustScoreUpdateOne {
	return NewTrustScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrustScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrustScore) Unwrap() *TrustScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrustScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrustScore) String() string {
	var builder strings.Builder
	builder.WriteString("TrustScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	if v := _m.LastReason; v != nil {
		builder.WriteString("last_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrustScores is a parsable slice of TrustScore.
type TrustScores []*TrustScore
