// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/profilesnapshot"
)

// ProfileSnapshot is the model entity for the ProfileSnapshot schema.
type ProfileSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner the snapshot belongs to
	UserID string `json:"user_id,omitempty"`
	// Event sequence number at the time of snapshot
	Sequence int64 `json:"sequence,omitempty"`
	// When the snapshot was taken
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Profile and cached derived state as JSON
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProfileSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profilesnapshot.FieldData:
			values[i] = new([]byte)
		case profilesnapshot.FieldID, profilesnapshot.FieldSequence:
			values[i] = new(sql.NullInt64)
		case profilesnapshot.FieldUserID:
			values[i] = new(sql.NullString)
		case profilesnapshot.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProfileSnapshot fields.
func (ps *ProfileSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profilesnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ps.ID = int(value.Int64)
		case profilesnapshot.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ps.UserID = value.String
			}
		case profilesnapshot.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ps.Sequence = value.Int64
			}
		case profilesnapshot.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ps.Timestamp = value.Time
			}
		case profilesnapshot.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ps.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			ps.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProfileSnapshot.
// This includes values selected through modifiers, order, etc.
func (ps *ProfileSnapshot) Value(name string) (ent.Value, error) {
	return ps.selectValues.Get(name)
}

// Update returns a builder for updating this ProfileSnapshot.
// Note that you need to call ProfileSnapshot.Unwrap() before calling this method if this ProfileSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (ps *ProfileSnapshot) Update() *ProfileSnapshotUpdateOne {
	return NewProfileSnapshotClient(ps.config).UpdateOne(ps)
}

// Unwrap unwraps the ProfileSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ps *ProfileSnapshot) Unwrap() *ProfileSnapshot {
	_tx, ok := ps.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProfileSnapshot is not a transactional entity")
	}
	ps.config.driver = _tx.drv
	return ps
}

// String implements the fmt.Stringer.
func (ps *ProfileSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ProfileSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ps.ID))
	builder.WriteString("user_id=")
	builder.WriteString(ps.UserID)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ps.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ps.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", ps.Data))
	builder.WriteByte(')')
	return builder.String()
}

// ProfileSnapshots is a parsable slice of ProfileSnapshot.
type ProfileSnapshots []*ProfileSnapshot
