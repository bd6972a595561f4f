package learner

import (
	"sort"
	"time"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
)

// Listener is notified synchronously after every mutation. A listener
// must not itself trigger a mutating call during notification.
type Listener func(*Profile)

// State is the per-user container for the profile and bounded event
// history. It assumes a single active user and caller-serialized
// mutation; it performs no locking of its own.
type State struct {
	profile     *Profile
	events      []LessonEvent
	sessions    []SessionEvent
	highlight   config.LearnerConfig
	maxEvents   int
	maxSessions int

	listeners      map[int]Listener
	nextListenerID int
}

// NewState creates state for a user with a fresh profile. Event and
// session logs are FIFO-capped at maxEvents and maxSessions.
func NewState(userID string, highlight config.LearnerConfig, maxEvents, maxSessions int) *State {
	return &State{
		profile:     NewProfile(userID),
		highlight:   highlight,
		maxEvents:   maxEvents,
		maxSessions: maxSessions,
		listeners:   make(map[int]Listener),
	}
}

// Profile returns the live profile. Callers must treat it as read-only;
// mutations go through UpdateProfile and UpdateTopic.
func (s *State) Profile() *Profile {
	return s.profile
}

// RestoreProfile replaces the profile wholesale (snapshot load).
func (s *State) RestoreProfile(p *Profile) {
	if p == nil {
		return
	}
	if p.Topics == nil {
		p.Topics = make(map[string]*TopicProficiency)
	}
	s.profile = p
}

// RestoreEvents replaces the event log wholesale (snapshot load),
// applying the FIFO cap.
func (s *State) RestoreEvents(events []LessonEvent) {
	s.events = append([]LessonEvent(nil), events...)
	s.trimEvents()
}

// RestoreSessions replaces the session log wholesale (snapshot load).
func (s *State) RestoreSessions(sessions []SessionEvent) {
	s.sessions = append([]SessionEvent(nil), sessions...)
	s.trimSessions()
}

// RecordEvent appends to the event log, dropping the oldest entries
// once the cap is reached.
func (s *State) RecordEvent(ev LessonEvent) {
	s.events = append(s.events, ev)
	s.trimEvents()
	s.notify()
}

// RecordSession appends to the session log.
func (s *State) RecordSession(ev SessionEvent) {
	s.sessions = append(s.sessions, ev)
	s.trimSessions()
	s.notify()
}

func (s *State) trimEvents() {
	if s.maxEvents > 0 && len(s.events) > s.maxEvents {
		s.events = s.events[len(s.events)-s.maxEvents:]
	}
}

func (s *State) trimSessions() {
	if s.maxSessions > 0 && len(s.sessions) > s.maxSessions {
		s.sessions = s.sessions[len(s.sessions)-s.maxSessions:]
	}
}

// Events returns a copy of events matching the filter, oldest first.
func (s *State) Events(f Filter) []LessonEvent {
	var out []LessonEvent
	for _, ev := range s.events {
		if f.matches(ev) {
			out = append(out, ev)
		}
	}
	return out
}

// Sessions returns a copy of the session log, oldest first.
func (s *State) Sessions() []SessionEvent {
	return append([]SessionEvent(nil), s.sessions...)
}

// ProfilePatch is a merge patch: nil fields retain the prior value.
type ProfilePatch struct {
	KnowledgeLevel        *KnowledgeLevel
	LearningSpeed         *LearningSpeed
	EngagementRisk        *EngagementRisk
	RecommendedDifficulty *catalog.Difficulty
	OverallScore          *int
	TotalLessonsCompleted *int
	TotalQuizzesTaken     *int
	AverageQuizScore      *float64
	TotalTimeSpentSecs    *int
	CurrentStreak         *int
	LastActiveDate        *string
	SessionCount          *int
}

// UpdateProfile applies a merge patch and notifies listeners.
func (s *State) UpdateProfile(patch ProfilePatch) {
	p := s.profile
	if patch.KnowledgeLevel != nil {
		p.KnowledgeLevel = *patch.KnowledgeLevel
	}
	if patch.LearningSpeed != nil {
		p.LearningSpeed = *patch.LearningSpeed
	}
	if patch.EngagementRisk != nil {
		p.EngagementRisk = *patch.EngagementRisk
	}
	if patch.RecommendedDifficulty != nil {
		p.RecommendedDifficulty = *patch.RecommendedDifficulty
	}
	if patch.OverallScore != nil {
		p.OverallScore = *patch.OverallScore
	}
	if patch.TotalLessonsCompleted != nil {
		p.TotalLessonsCompleted = *patch.TotalLessonsCompleted
	}
	if patch.TotalQuizzesTaken != nil {
		p.TotalQuizzesTaken = *patch.TotalQuizzesTaken
	}
	if patch.AverageQuizScore != nil {
		p.AverageQuizScore = *patch.AverageQuizScore
	}
	if patch.TotalTimeSpentSecs != nil {
		p.TotalTimeSpentSecs = *patch.TotalTimeSpentSecs
	}
	if patch.CurrentStreak != nil {
		p.CurrentStreak = *patch.CurrentStreak
	}
	if patch.LastActiveDate != nil {
		p.LastActiveDate = *patch.LastActiveDate
	}
	if patch.SessionCount != nil {
		p.SessionCount = *patch.SessionCount
	}
	s.notify()
}

// TopicPatch is a merge patch for one topic proficiency. A non-nil
// QuizScores replaces the history wholesale.
type TopicPatch struct {
	Name                   *string
	Score                  *int
	LessonsCompleted       *int
	QuizScores             []float64
	AverageReadingTimeSecs *int
}

// UpdateTopic applies a merge patch to a topic (creating the record if
// absent), refreshes LastAccessed, recomputes strengths/weaknesses, and
// notifies listeners.
func (s *State) UpdateTopic(topicID string, patch TopicPatch, now time.Time) {
	tp := s.profile.Topics[topicID]
	if tp == nil {
		tp = &TopicProficiency{TopicID: topicID, Name: topicID}
		s.profile.Topics[topicID] = tp
	}
	if patch.Name != nil {
		tp.Name = *patch.Name
	}
	if patch.Score != nil {
		tp.Score = *patch.Score
	}
	if patch.LessonsCompleted != nil {
		tp.LessonsCompleted = *patch.LessonsCompleted
	}
	if patch.QuizScores != nil {
		tp.QuizScores = patch.QuizScores
	}
	if patch.AverageReadingTimeSecs != nil {
		tp.AverageReadingTimeSecs = *patch.AverageReadingTimeSecs
	}
	tp.LastAccessed = now

	recalcStrengthsWeaknesses(s.profile, s.highlight)
	s.notify()
}

// Subscribe registers a listener and returns its unsubscribe func.
func (s *State) Subscribe(l Listener) func() {
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = l
	return func() { delete(s.listeners, id) }
}

func (s *State) notify() {
	for _, l := range s.listeners {
		l(s.profile)
	}
}

// recalcStrengthsWeaknesses rebuilds the derived topic highlight lists.
// Strengths are the highest-scoring topics at or above StrengthScoreMin;
// weaknesses come from the low end, below WeaknessScoreMax, and only for
// topics with at least one completed lesson (zero completions is
// insufficient signal, not weakness).
func recalcStrengthsWeaknesses(p *Profile, cfg config.LearnerConfig) {
	topics := make([]*TopicProficiency, 0, len(p.Topics))
	for _, tp := range p.Topics {
		topics = append(topics, tp)
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Score != topics[j].Score {
			return topics[i].Score > topics[j].Score
		}
		return topics[i].TopicID < topics[j].TopicID
	})

	p.Strengths = nil
	for _, tp := range topics {
		if tp.Score >= cfg.StrengthScoreMin && len(p.Strengths) < cfg.MaxHighlights {
			p.Strengths = append(p.Strengths, tp.TopicID)
		}
	}

	p.Weaknesses = nil
	for i := len(topics) - 1; i >= 0; i-- {
		tp := topics[i]
		if tp.Score < cfg.WeaknessScoreMax && tp.LessonsCompleted > 0 && len(p.Weaknesses) < cfg.MaxHighlights {
			p.Weaknesses = append(p.Weaknesses, tp.TopicID)
		}
	}
}
