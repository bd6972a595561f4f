// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/lessonevent"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (leu *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	leu.mutation.Where(ps...)
	return leu
}

// SetEventType sets the "event_type" field.
func (leu *LessonEventUpdate) SetEventType(s string) *LessonEventUpdate {
	leu.mutation.SetEventType(s)
	return leu
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableEventType(s *string) *LessonEventUpdate {
	if s != nil {
		leu.SetEventType(*s)
	}
	return leu
}

// SetCourseID sets the "course_id" field.
func (leu *LessonEventUpdate) SetCourseID(s string) *LessonEventUpdate {
	leu.mutation.SetCourseID(s)
	return leu
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableCourseID(s *string) *LessonEventUpdate {
	if s != nil {
		leu.SetCourseID(*s)
	}
	return leu
}

// SetLessonID sets the "lesson_id" field.
func (leu *LessonEventUpdate) SetLessonID(s string) *LessonEventUpdate {
	leu.mutation.SetLessonID(s)
	return leu
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableLessonID(s *string) *LessonEventUpdate {
	if s != nil {
		leu.SetLessonID(*s)
	}
	return leu
}

// SetModuleIndex sets the "module_index" field.
func (leu *LessonEventUpdate) SetModuleIndex(i int) *LessonEventUpdate {
	leu.mutation.ResetModuleIndex()
	leu.mutation.SetModuleIndex(i)
	return leu
}

// SetNillableModuleIndex sets the "module_index" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableModuleIndex(i *int) *LessonEventUpdate {
	if i != nil {
		leu.SetModuleIndex(*i)
	}
	return leu
}

// AddModuleIndex adds i to the "module_index" field.
func (leu *LessonEventUpdate) AddModuleIndex(i int) *LessonEventUpdate {
	leu.mutation.AddModuleIndex(i)
	return leu
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (leu *LessonEventUpdate) SetTimeSpentSecs(i int) *LessonEventUpdate {
	leu.mutation.ResetTimeSpentSecs()
	leu.mutation.SetTimeSpentSecs(i)
	return leu
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableTimeSpentSecs(i *int) *LessonEventUpdate {
	if i != nil {
		leu.SetTimeSpentSecs(*i)
	}
	return leu
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (leu *LessonEventUpdate) AddTimeSpentSecs(i int) *LessonEventUpdate {
	leu.mutation.AddTimeSpentSecs(i)
	return leu
}

// SetQuizScore sets the "quiz_score" field.
func (leu *LessonEventUpdate) SetQuizScore(f float64) *LessonEventUpdate {
	leu.mutation.ResetQuizScore()
	leu.mutation.SetQuizScore(f)
	return leu
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableQuizScore(f *float64) *LessonEventUpdate {
	if f != nil {
		leu.SetQuizScore(*f)
	}
	return leu
}

// AddQuizScore adds f to the "quiz_score" field.
func (leu *LessonEventUpdate) AddQuizScore(f float64) *LessonEventUpdate {
	leu.mutation.AddQuizScore(f)
	return leu
}

// SetQuizAttempt sets the "quiz_attempt" field.
func (leu *LessonEventUpdate) SetQuizAttempt(i int) *LessonEventUpdate {
	leu.mutation.ResetQuizAttempt()
	leu.mutation.SetQuizAttempt(i)
	return leu
}

// SetNillableQuizAttempt sets the "quiz_attempt" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableQuizAttempt(i *int) *LessonEventUpdate {
	if i != nil {
		leu.SetQuizAttempt(*i)
	}
	return leu
}

// AddQuizAttempt adds i to the "quiz_attempt" field.
func (leu *LessonEventUpdate) AddQuizAttempt(i int) *LessonEventUpdate {
	leu.mutation.AddQuizAttempt(i)
	return leu
}

// SetDifficulty sets the "difficulty" field.
func (leu *LessonEventUpdate) SetDifficulty(s string) *LessonEventUpdate {
	leu.mutation.SetDifficulty(s)
	return leu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableDifficulty(s *string) *LessonEventUpdate {
	if s != nil {
		leu.SetDifficulty(*s)
	}
	return leu
}

// SetTopicID sets the "topic_id" field.
func (leu *LessonEventUpdate) SetTopicID(s string) *LessonEventUpdate {
	leu.mutation.SetTopicID(s)
	return leu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (leu *LessonEventUpdate) SetNillableTopicID(s *string) *LessonEventUpdate {
	if s != nil {
		leu.SetTopicID(*s)
	}
	return leu
}

// Mutation returns the LessonEventMutation object of the builder.
func (leu *LessonEventUpdate) Mutation() *LessonEventMutation {
	return leu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (leu *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, leu.sqlSave, leu.mutation, leu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (leu *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := leu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (leu *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := leu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (leu *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := leu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (leu *LessonEventUpdate) check() error {
	if v, ok := leu.mutation.EventType(); ok {
		if err := lessonevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.event_type": %w`, err)}
		}
	}
	if v, ok := leu.mutation.CourseID(); ok {
		if err := lessonevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.course_id": %w`, err)}
		}
	}
	if v, ok := leu.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (leu *LessonEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := leu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := leu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := leu.mutation.EventType(); ok {
		_spec.SetField(lessonevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := leu.mutation.CourseID(); ok {
		_spec.SetField(lessonevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := leu.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := leu.mutation.ModuleIndex(); ok {
		_spec.SetField(lessonevent.FieldModuleIndex, field.TypeInt, value)
	}
	if value, ok := leu.mutation.AddedModuleIndex(); ok {
		_spec.AddField(lessonevent.FieldModuleIndex, field.TypeInt, value)
	}
	if value, ok := leu.mutation.TimeSpentSecs(); ok {
		_spec.SetField(lessonevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := leu.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(lessonevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := leu.mutation.QuizScore(); ok {
		_spec.SetField(lessonevent.FieldQuizScore, field.TypeFloat64, value)
	}
	if value, ok := leu.mutation.AddedQuizScore(); ok {
		_spec.AddField(lessonevent.FieldQuizScore, field.TypeFloat64, value)
	}
	if value, ok := leu.mutation.QuizAttempt(); ok {
		_spec.SetField(lessonevent.FieldQuizAttempt, field.TypeInt, value)
	}
	if value, ok := leu.mutation.AddedQuizAttempt(); ok {
		_spec.AddField(lessonevent.FieldQuizAttempt, field.TypeInt, value)
	}
	if value, ok := leu.mutation.Difficulty(); ok {
		_spec.SetField(lessonevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := leu.mutation.TopicID(); ok {
		_spec.SetField(lessonevent.FieldTopicID, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, leu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	leu.mutation.done = true
	return n, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetEventType sets the "event_type" field.
func (leuo *LessonEventUpdateOne) SetEventType(s string) *LessonEventUpdateOne {
	leuo.mutation.SetEventType(s)
	return leuo
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableEventType(s *string) *LessonEventUpdateOne {
	if s != nil {
		leuo.SetEventType(*s)
	}
	return leuo
}

// SetCourseID sets the "course_id" field.
func (leuo *LessonEventUpdateOne) SetCourseID(s string) *LessonEventUpdateOne {
	leuo.mutation.SetCourseID(s)
	return leuo
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableCourseID(s *string) *LessonEventUpdateOne {
	if s != nil {
		leuo.SetCourseID(*s)
	}
	return leuo
}

// SetLessonID sets the "lesson_id" field.
func (leuo *LessonEventUpdateOne) SetLessonID(s string) *LessonEventUpdateOne {
	leuo.mutation.SetLessonID(s)
	return leuo
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableLessonID(s *string) *LessonEventUpdateOne {
	if s != nil {
		leuo.SetLessonID(*s)
	}
	return leuo
}

// SetModuleIndex sets the "module_index" field.
func (leuo *LessonEventUpdateOne) SetModuleIndex(i int) *LessonEventUpdateOne {
	leuo.mutation.ResetModuleIndex()
	leuo.mutation.SetModuleIndex(i)
	return leuo
}

// SetNillableModuleIndex sets the "module_index" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableModuleIndex(i *int) *LessonEventUpdateOne {
	if i != nil {
		leuo.SetModuleIndex(*i)
	}
	return leuo
}

// AddModuleIndex adds i to the "module_index" field.
func (leuo *LessonEventUpdateOne) AddModuleIndex(i int) *LessonEventUpdateOne {
	leuo.mutation.AddModuleIndex(i)
	return leuo
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (leuo *LessonEventUpdateOne) SetTimeSpentSecs(i int) *LessonEventUpdateOne {
	leuo.mutation.ResetTimeSpentSecs()
	leuo.mutation.SetTimeSpentSecs(i)
	return leuo
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableTimeSpentSecs(i *int) *LessonEventUpdateOne {
	if i != nil {
		leuo.SetTimeSpentSecs(*i)
	}
	return leuo
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (leuo *LessonEventUpdateOne) AddTimeSpentSecs(i int) *LessonEventUpdateOne {
	leuo.mutation.AddTimeSpentSecs(i)
	return leuo
}

// SetQuizScore sets the "quiz_score" field.
func (leuo *LessonEventUpdateOne) SetQuizScore(f float64) *LessonEventUpdateOne {
	leuo.mutation.ResetQuizScore()
	leuo.mutation.SetQuizScore(f)
	return leuo
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableQuizScore(f *float64) *LessonEventUpdateOne {
	if f != nil {
		leuo.SetQuizScore(*f)
	}
	return leuo
}

// AddQuizScore adds f to the "quiz_score" field.
func (leuo *LessonEventUpdateOne) AddQuizScore(f float64) *LessonEventUpdateOne {
	leuo.mutation.AddQuizScore(f)
	return leuo
}

// SetQuizAttempt sets the "quiz_attempt" field.
func (leuo *LessonEventUpdateOne) SetQuizAttempt(i int) *LessonEventUpdateOne {
	leuo.mutation.ResetQuizAttempt()
	leuo.mutation.SetQuizAttempt(i)
	return leuo
}

// SetNillableQuizAttempt sets the "quiz_attempt" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableQuizAttempt(i *int) *LessonEventUpdateOne {
	if i != nil {
		leuo.SetQuizAttempt(*i)
	}
	return leuo
}

// AddQuizAttempt adds i to the "quiz_attempt" field.
func (leuo *LessonEventUpdateOne) AddQuizAttempt(i int) *LessonEventUpdateOne {
	leuo.mutation.AddQuizAttempt(i)
	return leuo
}

// SetDifficulty sets the "difficulty" field.
func (leuo *LessonEventUpdateOne) SetDifficulty(s string) *LessonEventUpdateOne {
	leuo.mutation.SetDifficulty(s)
	return leuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableDifficulty(s *string) *LessonEventUpdateOne {
	if s != nil {
		leuo.SetDifficulty(*s)
	}
	return leuo
}

// SetTopicID sets the "topic_id" field.
func (leuo *LessonEventUpdateOne) SetTopicID(s string) *LessonEventUpdateOne {
	leuo.mutation.SetTopicID(s)
	return leuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (leuo *LessonEventUpdateOne) SetNillableTopicID(s *string) *LessonEventUpdateOne {
	if s != nil {
		leuo.SetTopicID(*s)
	}
	return leuo
}

// Mutation returns the LessonEventMutation object of the builder.
func (leuo *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return leuo.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (leuo *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	leuo.mutation.Where(ps...)
	return leuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (leuo *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	leuo.fields = append([]string{field}, fields...)
	return leuo
}

// Save executes the query and returns the updated LessonEvent entity.
func (leuo *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, leuo.sqlSave, leuo.mutation, leuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (leuo *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := leuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (leuo *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := leuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (leuo *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := leuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (leuo *LessonEventUpdateOne) check() error {
	if v, ok := leuo.mutation.EventType(); ok {
		if err := lessonevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.event_type": %w`, err)}
		}
	}
	if v, ok := leuo.mutation.CourseID(); ok {
		if err := lessonevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.course_id": %w`, err)}
		}
	}
	if v, ok := leuo.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (leuo *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := leuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := leuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := leuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := leuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := leuo.mutation.EventType(); ok {
		_spec.SetField(lessonevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := leuo.mutation.CourseID(); ok {
		_spec.SetField(lessonevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := leuo.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := leuo.mutation.ModuleIndex(); ok {
		_spec.SetField(lessonevent.FieldModuleIndex, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.AddedModuleIndex(); ok {
		_spec.AddField(lessonevent.FieldModuleIndex, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.TimeSpentSecs(); ok {
		_spec.SetField(lessonevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(lessonevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.QuizScore(); ok {
		_spec.SetField(lessonevent.FieldQuizScore, field.TypeFloat64, value)
	}
	if value, ok := leuo.mutation.AddedQuizScore(); ok {
		_spec.AddField(lessonevent.FieldQuizScore, field.TypeFloat64, value)
	}
	if value, ok := leuo.mutation.QuizAttempt(); ok {
		_spec.SetField(lessonevent.FieldQuizAttempt, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.AddedQuizAttempt(); ok {
		_spec.AddField(lessonevent.FieldQuizAttempt, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.Difficulty(); ok {
		_spec.SetField(lessonevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := leuo.mutation.TopicID(); ok {
		_spec.SetField(lessonevent.FieldTopicID, field.TypeString, value)
	}
	_node = &LessonEvent{config: leuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, leuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	leuo.mutation.done = true
	return _node, nil
}
