package store

import (
	"context"
	"fmt"

	"github.com/abhisek/adaptiq/ent"
	"github.com/abhisek/adaptiq/ent/lessonevent"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetEventType(data.EventType).
		SetCourseID(data.CourseID).
		SetLessonID(data.LessonID).
		SetModuleIndex(data.ModuleIndex).
		SetTimeSpentSecs(data.TimeSpentSecs).
		SetQuizScore(data.QuizScore).
		SetQuizAttempt(data.QuizAttempt).
		SetDifficulty(data.Difficulty).
		SetTopicID(data.TopicID)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save lesson event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) RecentLessonEvents(ctx context.Context, userID string, limit int) ([]LessonEventData, error) {
	q := r.client.LessonEvent.Query().
		Where(lessonevent.UserID(userID)).
		Order(ent.Desc(lessonevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}

	// Reverse to oldest-first for replay.
	out := make([]LessonEventData, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = LessonEventData{
			Sequence:      row.Sequence,
			UserID:        row.UserID,
			EventType:     row.EventType,
			CourseID:      row.CourseID,
			LessonID:      row.LessonID,
			ModuleIndex:   row.ModuleIndex,
			Timestamp:     row.Timestamp,
			TimeSpentSecs: row.TimeSpentSecs,
			QuizScore:     row.QuizScore,
			QuizAttempt:   row.QuizAttempt,
			Difficulty:    row.Difficulty,
			TopicID:       row.TopicID,
		}
	}
	return out, nil
}

func (r *eventRepo) PruneLessonEvents(ctx context.Context, userID string, keep int) error {
	rows, err := r.client.LessonEvent.Query().
		Where(lessonevent.UserID(userID)).
		Order(ent.Desc(lessonevent.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query lesson events for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil // fewer than keep events exist
	}

	threshold := rows[0].Sequence
	_, err = r.client.LessonEvent.Delete().
		Where(lessonevent.UserID(userID), lessonevent.SequenceLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune lesson events: %w", err)
	}
	return nil
}
