// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/lessonevent"
)

// LessonEventCreate is the builder for creating a LessonEvent entity.
type LessonEventCreate struct {
	config
	mutation *LessonEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (lec *LessonEventCreate) SetSequence(i int64) *LessonEventCreate {
	lec.mutation.SetSequence(i)
	return lec
}

// SetUserID sets the "user_id" field.
func (lec *LessonEventCreate) SetUserID(s string) *LessonEventCreate {
	lec.mutation.SetUserID(s)
	return lec
}

// SetTimestamp sets the "timestamp" field.
func (lec *LessonEventCreate) SetTimestamp(t time.Time) *LessonEventCreate {
	lec.mutation.SetTimestamp(t)
	return lec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (lec *LessonEventCreate) SetNillableTimestamp(t *time.Time) *LessonEventCreate {
	if t != nil {
		lec.SetTimestamp(*t)
	}
	return lec
}

// SetEventType sets the "event_type" field.
func (lec *LessonEventCreate) SetEventType(s string) *LessonEventCreate {
	lec.mutation.SetEventType(s)
	return lec
}

// SetCourseID sets the "course_id" field.
func (lec *LessonEventCreate) SetCourseID(s string) *LessonEventCreate {
	lec.mutation.SetCourseID(s)
	return lec
}

// SetLessonID sets the "lesson_id" field.
func (lec *LessonEventCreate) SetLessonID(s string) *LessonEventCreate {
	lec.mutation.SetLessonID(s)
	return lec
}

// SetModuleIndex sets the "module_index" field.
func (lec *LessonEventCreate) SetModuleIndex(i int) *LessonEventCreate {
	lec.mutation.SetModuleIndex(i)
	return lec
}

// SetNillableModuleIndex sets the "module_index" field if the given value is not nil.
func (lec *LessonEventCreate) SetNillableModuleIndex(i *int) *LessonEventCreate {
	if i != nil {
		lec.SetModuleIndex(*i)
	}
	return lec
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (lec *LessonEventCreate) SetTimeSpentSecs(i int) *LessonEventCreate {
	lec.mutation.SetTimeSpentSecs(i)
	return lec
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (lec *LessonEventCreate) SetNillableTimeSpentSecs(i *int) *LessonEventCreate {
	if i != nil {
		lec.SetTimeSpentSecs(*i)
	}
	return lec
}

// SetQuizScore sets the "quiz_score" field.
func (lec *LessonEventCreate) SetQuizScore(f float64) *LessonEventCreate {
	lec.mutation.SetQuizScore(f)
	return lec
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (lec *LessonEventCreate) SetNillableQuizScore(f *float64) *LessonEventCreate {
	if f != nil {
		lec.SetQuizScore(*f)
	}
	return lec
}

// SetQuizAttempt sets the "quiz_attempt" field.
func (lec *LessonEventCreate) SetQuizAttempt(i int) *LessonEventCreate {
	lec.mutation.SetQuizAttempt(i)
	return lec
}

// SetNillableQuizAttempt sets the "quiz_attempt" field if the given value is not nil.
func (lec *LessonEventCreate) SetNillableQuizAttempt(i *int) *LessonEventCreate {
	if i != nil {
		lec.SetQuizAttempt(*i)
	}
	return lec
}

// SetDifficulty sets the "difficulty" field.
func (lec *LessonEventCreate) SetDifficulty(s string) *LessonEventCreate {
	lec.mutation.SetDifficulty(s)
	return lec
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (lec *LessonEventCreate) SetNillableDifficulty(s *string) *LessonEventCreate {
	if s != nil {
		lec.SetDifficulty(*s)
	}
	return lec
}

// SetTopicID sets the "topic_id" field.
func (lec *LessonEventCreate) SetTopicID(s string) *LessonEventCreate {
	lec.mutation.SetTopicID(s)
	return lec
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (lec *LessonEventCreate) SetNillableTopicID(s *string) *LessonEventCreate {
	if s != nil {
		lec.SetTopicID(*s)
	}
	return lec
}

// Mutation returns the LessonEventMutation object of the builder.
func (lec *LessonEventCreate) Mutation() *LessonEventMutation {
	return lec.mutation
}

// Save creates the LessonEvent in the database.
func (lec *LessonEventCreate) Save(ctx context.Context) (*LessonEvent, error) {
	lec.defaults()
	return withHooks(ctx, lec.sqlSave, lec.mutation, lec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lec *LessonEventCreate) SaveX(ctx context.Context) *LessonEvent {
	v, err := lec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lec *LessonEventCreate) Exec(ctx context.Context) error {
	_, err := lec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lec *LessonEventCreate) ExecX(ctx context.Context) {
	if err := lec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lec *LessonEventCreate) defaults() {
	if _, ok := lec.mutation.Timestamp(); !ok {
		v := lessonevent.DefaultTimestamp()
		lec.mutation.SetTimestamp(v)
	}
	if _, ok := lec.mutation.ModuleIndex(); !ok {
		v := lessonevent.DefaultModuleIndex
		lec.mutation.SetModuleIndex(v)
	}
	if _, ok := lec.mutation.TimeSpentSecs(); !ok {
		v := lessonevent.DefaultTimeSpentSecs
		lec.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := lec.mutation.QuizScore(); !ok {
		v := lessonevent.DefaultQuizScore
		lec.mutation.SetQuizScore(v)
	}
	if _, ok := lec.mutation.QuizAttempt(); !ok {
		v := lessonevent.DefaultQuizAttempt
		lec.mutation.SetQuizAttempt(v)
	}
	if _, ok := lec.mutation.Difficulty(); !ok {
		v := lessonevent.DefaultDifficulty
		lec.mutation.SetDifficulty(v)
	}
	if _, ok := lec.mutation.TopicID(); !ok {
		v := lessonevent.DefaultTopicID
		lec.mutation.SetTopicID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lec *LessonEventCreate) check() error {
	if _, ok := lec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LessonEvent.sequence"`)}
	}
	if _, ok := lec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LessonEvent.user_id"`)}
	}
	if v, ok := lec.mutation.UserID(); ok {
		if err := lessonevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.user_id": %w`, err)}
		}
	}
	if _, ok := lec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LessonEvent.timestamp"`)}
	}
	if _, ok := lec.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "LessonEvent.event_type"`)}
	}
	if v, ok := lec.mutation.EventType(); ok {
		if err := lessonevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.event_type": %w`, err)}
		}
	}
	if _, ok := lec.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "LessonEvent.course_id"`)}
	}
	if v, ok := lec.mutation.CourseID(); ok {
		if err := lessonevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.course_id": %w`, err)}
		}
	}
	if _, ok := lec.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonEvent.lesson_id"`)}
	}
	if v, ok := lec.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := lec.mutation.ModuleIndex(); !ok {
		return &ValidationError{Name: "module_index", err: errors.New(`ent: missing required field "LessonEvent.module_index"`)}
	}
	if _, ok := lec.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "LessonEvent.time_spent_secs"`)}
	}
	if _, ok := lec.mutation.QuizScore(); !ok {
		return &ValidationError{Name: "quiz_score", err: errors.New(`ent: missing required field "LessonEvent.quiz_score"`)}
	}
	if _, ok := lec.mutation.QuizAttempt(); !ok {
		return &ValidationError{Name: "quiz_attempt", err: errors.New(`ent: missing required field "LessonEvent.quiz_attempt"`)}
	}
	if _, ok := lec.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "LessonEvent.difficulty"`)}
	}
	if _, ok := lec.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "LessonEvent.topic_id"`)}
	}
	return nil
}

func (lec *LessonEventCreate) sqlSave(ctx context.Context) (*LessonEvent, error) {
	if err := lec.check(); err != nil {
		return nil, err
	}
	_node, _spec := lec.createSpec()
	if err := sqlgraph.CreateNode(ctx, lec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lec.mutation.id = &_node.ID
	lec.mutation.done = true
	return _node, nil
}

func (lec *LessonEventCreate) createSpec() (*LessonEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonEvent{config: lec.config}
		_spec = sqlgraph.NewCreateSpec(lessonevent.Table, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	)
	if value, ok := lec.mutation.Sequence(); ok {
		_spec.SetField(lessonevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := lec.mutation.UserID(); ok {
		_spec.SetField(lessonevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := lec.mutation.Timestamp(); ok {
		_spec.SetField(lessonevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := lec.mutation.EventType(); ok {
		_spec.SetField(lessonevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := lec.mutation.CourseID(); ok {
		_spec.SetField(lessonevent.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := lec.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := lec.mutation.ModuleIndex(); ok {
		_spec.SetField(lessonevent.FieldModuleIndex, field.TypeInt, value)
		_node.ModuleIndex = value
	}
	if value, ok := lec.mutation.TimeSpentSecs(); ok {
		_spec.SetField(lessonevent.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := lec.mutation.QuizScore(); ok {
		_spec.SetField(lessonevent.FieldQuizScore, field.TypeFloat64, value)
		_node.QuizScore = value
	}
	if value, ok := lec.mutation.QuizAttempt(); ok {
		_spec.SetField(lessonevent.FieldQuizAttempt, field.TypeInt, value)
		_node.QuizAttempt = value
	}
	if value, ok := lec.mutation.Difficulty(); ok {
		_spec.SetField(lessonevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := lec.mutation.TopicID(); ok {
		_spec.SetField(lessonevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	return _node, _spec
}

// LessonEventCreateBulk is the builder for creating many LessonEvent entities in bulk.
type LessonEventCreateBulk struct {
	config
	err      error
	builders []*LessonEventCreate
}

// Save creates the LessonEvent entities in the database.
func (lecb *LessonEventCreateBulk) Save(ctx context.Context) ([]*LessonEvent, error) {
	if lecb.err != nil {
		return nil, lecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lecb.builders))
	nodes := make([]*LessonEvent, len(lecb.builders))
	mutators := make([]Mutator, len(lecb.builders))
	for i := range lecb.builders {
		func(i int, root context.Context) {
			builder := lecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonEventMutation)
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
					_, err = mutators[i+1].Mutate(root, lecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lecb *LessonEventCreateBulk) SaveX(ctx context.Context) []*LessonEvent {
	v, err := lecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lecb *LessonEventCreateBulk) Exec(ctx context.Context) error {
	_, err := lecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lecb *LessonEventCreateBulk) ExecX(ctx context.Context) {
	if err := lecb.Exec(ctx); err != nil {
		panic(err)
	}
}
