package models

import "time"

// CounterType enumerates the progress counters achievements can track
type CounterType string

const (
	CounterLessonsCompleted    CounterType = "lessons_completed"
	CounterCorrectAnswers      CounterType = "correct_answers"
	CounterDailyStreak         CounterType = "daily_streak"
	CounterAllLessonsCompleted CounterType = "all_lessons_completed"
)

// AchievementDefinition is a static, one-time-unlockable milestone
type AchievementDefinition struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	XPReward    int         `json:"xpReward"`
	Counter     CounterType `json:"type"`
	Target      int         `json:"target"`
}

// AchievementState holds a user's unlock set and raw counters.
// Unlocked only ever grows; Pending is the FIFO notification queue and is
// not persisted.
type AchievementState struct {
	Unlocked []string
	Counters map[CounterType]int
	Pending  []string
}

// NewAchievementState returns a zeroed state
func NewAchievementState() *AchievementState {
	return &AchievementState{
		Unlocked: []string{},
		Counters: make(map[CounterType]int),
		Pending:  []string{},
	}
}

// IsUnlocked reports whether the achievement id has been unlocked
func (a AchievementState) IsUnlocked(id string) bool {
	for _, u := range a.Unlocked {
		if u == id {
			return true
		}
	}
	return false
}

// AchievementSnapshot is the persisted form of the achievement and XP state.
// XP fields ride along in the same document, mirroring the client's single
// achievements record.
type AchievementSnapshot struct {
	TotalXP              int            `json:"totalXP"`
	WeeklyXP             int            `json:"weeklyXP"`
	Level                int            `json:"level"`
	LastXPDate           *time.Time     `json:"lastXPDate"`
	UnlockedAchievements []string       `json:"unlockedAchievements"`
	AchievementProgress  map[string]int `json:"achievementProgress"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}
