package models

import "time"

// QuizQuestion is a single multiple-choice question built from a sign.
// CorrectAnswer always appears exactly once in Options.
type QuizQuestion struct {
	ID            int      `json:"id"`
	SignID        string   `json:"signId"`
	Prompt        string   `json:"prompt"`
	ImageURL      string   `json:"imageUrl"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"-"`
	Explanation   string   `json:"-"`
}

// QuizSession tracks a user's progress through one lesson's questions.
// Exactly one session exists per user at a time; it is discarded when the
// lesson completes or the user returns to the dashboard.
type QuizSession struct {
	LessonID       string
	Questions      []QuizQuestion
	CurrentIndex   int
	SelectedAnswer string
	ShowFeedback   bool
	IsCorrect      bool
	Completed      bool
	StartedAt      time.Time
}

// CurrentQuestion returns the question at the session cursor, or nil when
// the session has run past its last question.
func (s *QuizSession) CurrentQuestion() *QuizQuestion {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}
