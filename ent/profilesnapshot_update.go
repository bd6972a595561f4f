// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/predicate"
	"github.com/abhisek/adaptiq/ent/profilesnapshot"
)

// ProfileSnapshotUpdate is the builder for updating ProfileSnapshot entities.
type ProfileSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileSnapshotMutation
}

// Where appends a list predicates to the ProfileSnapshotUpdate builder.
func (psu *ProfileSnapshotUpdate) Where(ps ...predicate.ProfileSnapshot) *ProfileSnapshotUpdate {
	psu.mutation.Where(ps...)
	return psu
}

// SetUserID sets the "user_id" field.
func (psu *ProfileSnapshotUpdate) SetUserID(s string) *ProfileSnapshotUpdate {
	psu.mutation.SetUserID(s)
	return psu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (psu *ProfileSnapshotUpdate) SetNillableUserID(s *string) *ProfileSnapshotUpdate {
	if s != nil {
		psu.SetUserID(*s)
	}
	return psu
}

// SetSequence sets the "sequence" field.
func (psu *ProfileSnapshotUpdate) SetSequence(i int64) *ProfileSnapshotUpdate {
	psu.mutation.ResetSequence()
	psu.mutation.SetSequence(i)
	return psu
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (psu *ProfileSnapshotUpdate) SetNillableSequence(i *int64) *ProfileSnapshotUpdate {
	if i != nil {
		psu.SetSequence(*i)
	}
	return psu
}

// AddSequence adds i to the "sequence" field.
func (psu *ProfileSnapshotUpdate) AddSequence(i int64) *ProfileSnapshotUpdate {
	psu.mutation.AddSequence(i)
	return psu
}

// SetTimestamp sets the "timestamp" field.
func (psu *ProfileSnapshotUpdate) SetTimestamp(t time.Time) *ProfileSnapshotUpdate {
	psu.mutation.SetTimestamp(t)
	return psu
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (psu *ProfileSnapshotUpdate) SetNillableTimestamp(t *time.Time) *ProfileSnapshotUpdate {
	if t != nil {
		psu.SetTimestamp(*t)
	}
	return psu
}

// SetData sets the "data" field.
func (psu *ProfileSnapshotUpdate) SetData(m map[string]interface{}) *ProfileSnapshotUpdate {
	psu.mutation.SetData(m)
	return psu
}

// Mutation returns the ProfileSnapshotMutation object of the builder.
func (psu *ProfileSnapshotUpdate) Mutation() *ProfileSnapshotMutation {
	return psu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (psu *ProfileSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, psu.sqlSave, psu.mutation, psu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psu *ProfileSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := psu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (psu *ProfileSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := psu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psu *ProfileSnapshotUpdate) ExecX(ctx context.Context) {
	if err := psu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psu *ProfileSnapshotUpdate) check() error {
	if v, ok := psu.mutation.UserID(); ok {
		if err := profilesnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProfileSnapshot.user_id": %w`, err)}
		}
	}
	return nil
}

func (psu *ProfileSnapshotUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := psu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(profilesnapshot.Table, profilesnapshot.Columns, sqlgraph.NewFieldSpec(profilesnapshot.FieldID, field.TypeInt))
	if ps := psu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psu.mutation.UserID(); ok {
		_spec.SetField(profilesnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := psu.mutation.Sequence(); ok {
		_spec.SetField(profilesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.AddedSequence(); ok {
		_spec.AddField(profilesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.Timestamp(); ok {
		_spec.SetField(profilesnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := psu.mutation.Data(); ok {
		_spec.SetField(profilesnapshot.FieldData, field.TypeJSON, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, psu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profilesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	psu.mutation.done = true
	return n, nil
}

// ProfileSnapshotUpdateOne is the builder for updating a single ProfileSnapshot entity.
type ProfileSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileSnapshotMutation
}

// SetUserID sets the "user_id" field.
func (psuo *ProfileSnapshotUpdateOne) SetUserID(s string) *ProfileSnapshotUpdateOne {
	psuo.mutation.SetUserID(s)
	return psuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (psuo *ProfileSnapshotUpdateOne) SetNillableUserID(s *string) *ProfileSnapshotUpdateOne {
	if s != nil {
		psuo.SetUserID(*s)
	}
	return psuo
}

// SetSequence sets the "sequence" field.
func (psuo *ProfileSnapshotUpdateOne) SetSequence(i int64) *ProfileSnapshotUpdateOne {
	psuo.mutation.ResetSequence()
	psuo.mutation.SetSequence(i)
	return psuo
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (psuo *ProfileSnapshotUpdateOne) SetNillableSequence(i *int64) *ProfileSnapshotUpdateOne {
	if i != nil {
		psuo.SetSequence(*i)
	}
	return psuo
}

// AddSequence adds i to the "sequence" field.
func (psuo *ProfileSnapshotUpdateOne) AddSequence(i int64) *ProfileSnapshotUpdateOne {
	psuo.mutation.AddSequence(i)
	return psuo
}

// SetTimestamp sets the "timestamp" field.
func (psuo *ProfileSnapshotUpdateOne) SetTimestamp(t time.Time) *ProfileSnapshotUpdateOne {
	psuo.mutation.SetTimestamp(t)
	return psuo
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (psuo *ProfileSnapshotUpdateOne) SetNillableTimestamp(t *time.Time) *ProfileSnapshotUpdateOne {
	if t != nil {
		psuo.SetTimestamp(*t)
	}
	return psuo
}

// SetData sets the "data" field.
func (psuo *ProfileSnapshotUpdateOne) SetData(m map[string]interface{}) *ProfileSnapshotUpdateOne {
	psuo.mutation.SetData(m)
	return psuo
}

// Mutation returns the ProfileSnapshotMutation object of the builder.
func (psuo *ProfileSnapshotUpdateOne) Mutation() *ProfileSnapshotMutation {
	return psuo.mutation
}

// Where appends a list predicates to the ProfileSnapshotUpdate builder.
func (psuo *ProfileSnapshotUpdateOne) Where(ps ...predicate.ProfileSnapshot) *ProfileSnapshotUpdateOne {
	psuo.mutation.Where(ps...)
	return psuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (psuo *ProfileSnapshotUpdateOne) Select(field string, fields ...string) *ProfileSnapshotUpdateOne {
	psuo.fields = append([]string{field}, fields...)
	return psuo
}

// Save executes the query and returns the updated ProfileSnapshot entity.
func (psuo *ProfileSnapshotUpdateOne) Save(ctx context.Context) (*ProfileSnapshot, error) {
	return withHooks(ctx, psuo.sqlSave, psuo.mutation, psuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psuo *ProfileSnapshotUpdateOne) SaveX(ctx context.Context) *ProfileSnapshot {
	node, err := psuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (psuo *ProfileSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := psuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psuo *ProfileSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := psuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psuo *ProfileSnapshotUpdateOne) check() error {
	if v, ok := psuo.mutation.UserID(); ok {
		if err := profilesnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProfileSnapshot.user_id": %w`, err)}
		}
	}
	return nil
}

func (psuo *ProfileSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ProfileSnapshot, err error) {
	if err := psuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profilesnapshot.Table, profilesnapshot.Columns, sqlgraph.NewFieldSpec(profilesnapshot.FieldID, field.TypeInt))
	id, ok := psuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProfileSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := psuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profilesnapshot.FieldID)
		for _, f := range fields {
			if !profilesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profilesnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := psuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psuo.mutation.UserID(); ok {
		_spec.SetField(profilesnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := psuo.mutation.Sequence(); ok {
		_spec.SetField(profilesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.AddedSequence(); ok {
		_spec.AddField(profilesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.Timestamp(); ok {
		_spec.SetField(profilesnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := psuo.mutation.Data(); ok {
		_spec.SetField(profilesnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &ProfileSnapshot{config: psuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, psuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profilesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	psuo.mutation.done = true
	return _node, nil
}
