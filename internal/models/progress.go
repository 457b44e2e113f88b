package models

import "time"

// Streak tracks consecutive correct answers. Best never drops below Current.
type Streak struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// ProgressLedger holds a user's lesson progress counters
type ProgressLedger struct {
	Points           int      `json:"points"`
	Streak           Streak   `json:"streaks"`
	CompletedLessons []string `json:"completedLessons"`
}

// NewProgressLedger returns a zeroed ledger
func NewProgressLedger() *ProgressLedger {
	return &ProgressLedger{CompletedLessons: []string{}}
}

// HasCompleted reports whether lessonID is in the completed set
func (p *ProgressLedger) HasCompleted(lessonID string) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// ProgressSnapshot is the persisted form of ProgressLedger
type ProgressSnapshot struct {
	Points           int       `json:"points"`
	Streak           Streak    `json:"streaks"`
	CompletedLessons []string  `json:"completedLessons"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
