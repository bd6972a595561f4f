// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/lessonevent"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// LessonEventDelete is the builder for deleting a LessonEvent entity.
type LessonEventDelete struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventDelete builder.
func (led *LessonEventDelete) Where(ps ...predicate.LessonEvent) *LessonEventDelete {
	led.mutation.Where(ps...)
	return led
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (led *LessonEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, led.sqlExec, led.mutation, led.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (led *LessonEventDelete) ExecX(ctx context.Context) int {
	n, err := led.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (led *LessonEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lessonevent.Table, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := led.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, led.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	led.mutation.done = true
	return affected, err
}

// LessonEventDeleteOne is the builder for deleting a single LessonEvent entity.
type LessonEventDeleteOne struct {
	led *LessonEventDelete
}

// Where appends a list predicates to the LessonEventDelete builder.
func (ledo *LessonEventDeleteOne) Where(ps ...predicate.LessonEvent) *LessonEventDeleteOne {
	ledo.led.mutation.Where(ps...)
	return ledo
}

// Exec executes the deletion query.
func (ledo *LessonEventDeleteOne) Exec(ctx context.Context) error {
	n, err := ledo.led.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lessonevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ledo *LessonEventDeleteOne) ExecX(ctx context.Context) {
	if err := ledo.Exec(ctx); err != nil {
		panic(err)
	}
}
