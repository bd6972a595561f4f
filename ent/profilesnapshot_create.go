// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/profilesnapshot"
)

// ProfileSnapshotCreate is the builder for creating a ProfileSnapshot entity.
type ProfileSnapshotCreate struct {
	config
	mutation *ProfileSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (psc *ProfileSnapshotCreate) SetUserID(s string) *ProfileSnapshotCreate {
	psc.mutation.SetUserID(s)
	return psc
}

// SetSequence sets the "sequence" field.
func (psc *ProfileSnapshotCreate) SetSequence(i int64) *ProfileSnapshotCreate {
	psc.mutation.SetSequence(i)
	return psc
}

// SetTimestamp sets the "timestamp" field.
func (psc *ProfileSnapshotCreate) SetTimestamp(t time.Time) *ProfileSnapshotCreate {
	psc.mutation.SetTimestamp(t)
	return psc
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (psc *ProfileSnapshotCreate) SetNillableTimestamp(t *time.Time) *ProfileSnapshotCreate {
	if t != nil {
		psc.SetTimestamp(*t)
	}
	return psc
}

// SetData sets the "data" field.
func (psc *ProfileSnapshotCreate) SetData(m map[string]interface{}) *ProfileSnapshotCreate {
	psc.mutation.SetData(m)
	return psc
}

// Mutation returns the ProfileSnapshotMutation object of the builder.
func (psc *ProfileSnapshotCreate) Mutation() *ProfileSnapshotMutation {
	return psc.mutation
}

// Save creates the ProfileSnapshot in the database.
func (psc *ProfileSnapshotCreate) Save(ctx context.Context) (*ProfileSnapshot, error) {
	psc.defaults()
	return withHooks(ctx, psc.sqlSave, psc.mutation, psc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (psc *ProfileSnapshotCreate) SaveX(ctx context.Context) *ProfileSnapshot {
	v, err := psc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (psc *ProfileSnapshotCreate) Exec(ctx context.Context) error {
	_, err := psc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psc *ProfileSnapshotCreate) ExecX(ctx context.Context) {
	if err := psc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psc *ProfileSnapshotCreate) defaults() {
	if _, ok := psc.mutation.Timestamp(); !ok {
		v := profilesnapshot.DefaultTimestamp()
		psc.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psc *ProfileSnapshotCreate) check() error {
	if _, ok := psc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProfileSnapshot.user_id"`)}
	}
	if v, ok := psc.mutation.UserID(); ok {
		if err := profilesnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProfileSnapshot.user_id": %w`, err)}
		}
	}
	if _, ok := psc.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProfileSnapshot.sequence"`)}
	}
	if _, ok := psc.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProfileSnapshot.timestamp"`)}
	}
	if _, ok := psc.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ProfileSnapshot.data"`)}
	}
	return nil
}

func (psc *ProfileSnapshotCreate) sqlSave(ctx context.Context) (*ProfileSnapshot, error) {
	if err := psc.check(); err != nil {
		return nil, err
	}
	_node, _spec := psc.createSpec()
	if err := sqlgraph.CreateNode(ctx, psc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	psc.mutation.id = &_node.ID
	psc.mutation.done = true
	return _node, nil
}

func (psc *ProfileSnapshotCreate) createSpec() (*ProfileSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ProfileSnapshot{config: psc.config}
		_spec = sqlgraph.NewCreateSpec(profilesnapshot.Table, sqlgraph.NewFieldSpec(profilesnapshot.FieldID, field.TypeInt))
	)
	if value, ok := psc.mutation.UserID(); ok {
		_spec.SetField(profilesnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := psc.mutation.Sequence(); ok {
		_spec.SetField(profilesnapshot.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := psc.mutation.Timestamp(); ok {
		_spec.SetField(profilesnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := psc.mutation.Data(); ok {
		_spec.SetField(profilesnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// ProfileSnapshotCreateBulk is the builder for creating many ProfileSnapshot entities in bulk.
type ProfileSnapshotCreateBulk struct {
	config
	err      error
	builders []*ProfileSnapshotCreate
}

// Save creates the ProfileSnapshot entities in the database.
func (pscb *ProfileSnapshotCreateBulk) Save(ctx context.Context) ([]*ProfileSnapshot, error) {
	if pscb.err != nil {
		return nil, pscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pscb.builders))
	nodes := make([]*ProfileSnapshot, len(pscb.builders))
	mutators := make([]Mutator, len(pscb.builders))
	for i := range pscb.builders {
		func(i int, root context.Context) {
			builder := pscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, pscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pscb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, pscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pscb *ProfileSnapshotCreateBulk) SaveX(ctx context.Context) []*ProfileSnapshot {
	v, err := pscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pscb *ProfileSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := pscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pscb *ProfileSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := pscb.Exec(ctx); err != nil {
		panic(err)
	}
}
