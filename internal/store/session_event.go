package store

import (
	"context"
	"fmt"

	"github.com/abhisek/adaptiq/ent"
	"github.com/abhisek/adaptiq/ent/lessonevent"
	"github.com/abhisek/adaptiq/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetDurationSecs(data.DurationSecs).
		SetEventCount(data.EventCount)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save session event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) RecentSessionEvents(ctx context.Context, userID string, limit int) ([]SessionEventData, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.UserID(userID)).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	out := make([]SessionEventData, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = SessionEventData{
			Sequence:     row.Sequence,
			UserID:       row.UserID,
			SessionID:    row.SessionID,
			Action:       row.Action,
			Timestamp:    row.Timestamp,
			DurationSecs: row.DurationSecs,
			EventCount:   row.EventCount,
		}
	}
	return out, nil
}

func (r *eventRepo) PruneSessionEvents(ctx context.Context, userID string, keep int) error {
	rows, err := r.client.SessionEvent.Query().
		Where(sessionevent.UserID(userID)).
		Order(ent.Desc(sessionevent.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query session events for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	threshold := rows[0].Sequence
	_, err = r.client.SessionEvent.Delete().
		Where(sessionevent.UserID(userID), sessionevent.SequenceLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune session events: %w", err)
	}
	return nil
}

func (r *eventRepo) DeleteUser(ctx context.Context, userID string) error {
	if _, err := r.client.LessonEvent.Delete().
		Where(lessonevent.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete lesson events: %w", err)
	}
	if _, err := r.client.SessionEvent.Delete().
		Where(sessionevent.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete session events: %w", err)
	}
	return nil
}
