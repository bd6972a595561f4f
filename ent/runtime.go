// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/adaptiq/ent/lessonevent"
	"github.com/abhisek/adaptiq/ent/profilesnapshot"
	"github.com/abhisek/adaptiq/ent/schema"
	"github.com/abhisek/adaptiq/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescUserID is the schema descriptor for user_id field.
	lessoneventDescUserID := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lessonevent.UserIDValidator = lessoneventDescUserID.Validators[0].(func(string) error)
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[2].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescEventType is the schema descriptor for event_type field.
	lessoneventDescEventType := lessoneventFields[0].Descriptor()
	// lessonevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	lessonevent.EventTypeValidator = lessoneventDescEventType.Validators[0].(func(string) error)
	// lessoneventDescCourseID is the schema descriptor for course_id field.
	lessoneventDescCourseID := lessoneventFields[1].Descriptor()
	// lessonevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	lessonevent.CourseIDValidator = lessoneventDescCourseID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[2].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescModuleIndex is the schema descriptor for module_index field.
	lessoneventDescModuleIndex := lessoneventFields[3].Descriptor()
	// lessonevent.DefaultModuleIndex holds the default value on creation for the module_index field.
	lessonevent.DefaultModuleIndex = lessoneventDescModuleIndex.Default.(int)
	// lessoneventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	lessoneventDescTimeSpentSecs := lessoneventFields[4].Descriptor()
	// lessonevent.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	lessonevent.DefaultTimeSpentSecs = lessoneventDescTimeSpentSecs.Default.(int)
	// lessoneventDescQuizScore is the schema descriptor for quiz_score field.
	lessoneventDescQuizScore := lessoneventFields[5].Descriptor()
	// lessonevent.DefaultQuizScore holds the default value on creation for the quiz_score field.
	lessonevent.DefaultQuizScore = lessoneventDescQuizScore.Default.(float64)
	// lessoneventDescQuizAttempt is the schema descriptor for quiz_attempt field.
	lessoneventDescQuizAttempt := lessoneventFields[6].Descriptor()
	// lessonevent.DefaultQuizAttempt holds the default value on creation for the quiz_attempt field.
	lessonevent.DefaultQuizAttempt = lessoneventDescQuizAttempt.Default.(int)
	// lessoneventDescDifficulty is the schema descriptor for difficulty field.
	lessoneventDescDifficulty := lessoneventFields[7].Descriptor()
	// lessonevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	lessonevent.DefaultDifficulty = lessoneventDescDifficulty.Default.(string)
	// lessoneventDescTopicID is the schema descriptor for topic_id field.
	lessoneventDescTopicID := lessoneventFields[8].Descriptor()
	// lessonevent.DefaultTopicID holds the default value on creation for the topic_id field.
	lessonevent.DefaultTopicID = lessoneventDescTopicID.Default.(string)
	profilesnapshotFields := schema.ProfileSnapshot{}.Fields()
	_ = profilesnapshotFields
	// profilesnapshotDescUserID is the schema descriptor for user_id field.
	profilesnapshotDescUserID := profilesnapshotFields[0].Descriptor()
	// profilesnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profilesnapshot.UserIDValidator = profilesnapshotDescUserID.Validators[0].(func(string) error)
	// profilesnapshotDescTimestamp is the schema descriptor for timestamp field.
	profilesnapshotDescTimestamp := profilesnapshotFields[2].Descriptor()
	// profilesnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	profilesnapshot.DefaultTimestamp = profilesnapshotDescTimestamp.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[2].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescEventCount is the schema descriptor for event_count field.
	sessioneventDescEventCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultEventCount holds the default value on creation for the event_count field.
	sessionevent.DefaultEventCount = sessioneventDescEventCount.Default.(int)
}
