// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LessonEvent is the predicate function for lessonevent builders.
type LessonEvent func(*sql.Selector)

// ProfileSnapshot is the predicate function for profilesnapshot builders.
type ProfileSnapshot func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
