package learner

import "time"

// DateLayout is the calendar-date format used for LastActiveDate.
const DateLayout = "2006-01-02"

// MarkActive applies the daily streak rules for activity at now.
// Already active today is a no-op. A one-day gap extends the streak;
// a longer gap resets it, with the first day back counting as 1.
func (s *State) MarkActive(now time.Time) {
	p := s.profile
	today := now.Format(DateLayout)
	if p.LastActiveDate == today {
		return
	}

	switch gap := dayGap(p.LastActiveDate, now); {
	case gap == 1:
		p.CurrentStreak++
	default:
		// Streak broken; the first day back counts.
		p.CurrentStreak = 1
	}
	p.LastActiveDate = today
	s.notify()
}

// dayGap returns the whole calendar days between the stored last-active
// date and now. An empty or malformed stored date returns -1.
func dayGap(lastActive string, now time.Time) int {
	if lastActive == "" {
		return -1
	}
	last, err := time.Parse(DateLayout, lastActive)
	if err != nil {
		return -1
	}
	today, _ := time.Parse(DateLayout, now.Format(DateLayout))
	return int(today.Sub(last).Hours() / 24)
}
