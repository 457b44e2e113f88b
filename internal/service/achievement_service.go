package service

import (
	"log"
	"sync"
	"time"

	"zonosign/internal/models"
)

// DefaultAchievements returns the built-in achievement definitions.
// Declaration order is the unlock tie-break order when one counter change
// crosses several thresholds at once.
func DefaultAchievements() []models.AchievementDefinition {
	return []models.AchievementDefinition{
		{ID: "scholar", Title: "Zero Zone Scholar", Description: "Complete 1 lesson on Zerozone", Icon: "🎓",
			XPReward: 50, Counter: models.CounterLessonsCompleted, Target: 1},
		{ID: "magician", Title: "Zero Zone Magician", Description: "Correctly answer any lesson on Zerozone", Icon: "🎩",
			XPReward: 30, Counter: models.CounterCorrectAnswers, Target: 1},
		{ID: "scientist", Title: "Zero Zone Scientist", Description: "Keep a 2 days streak on Zerozone", Icon: "🔬",
			XPReward: 75, Counter: models.CounterDailyStreak, Target: 2},
		{ID: "guru", Title: "Zero Zone Guru", Description: "Complete 10 lessons on Zerozone", Icon: "🧘",
			XPReward: 200, Counter: models.CounterLessonsCompleted, Target: 10},
		{ID: "master_scholar", Title: "Zero Zone Scholar", Description: "Correctly answer 10 lessons on Zerozone", Icon: "📚",
			XPReward: 150, Counter: models.CounterCorrectAnswers, Target: 10},
		{ID: "celebrity", Title: "Zero Zone Celebrity", Description: "Keep a month streak straight for one month", Icon: "⭐",
			XPReward: 500, Counter: models.CounterDailyStreak, Target: 30},
		{ID: "champion", Title: "Zero Zone Champion", Description: "Complete all lessons in the sign language section", Icon: "🏆",
			XPReward: 1000, Counter: models.CounterAllLessonsCompleted, Target: 1},
	}
}

// AchievementService maintains per-user counters and threshold-gated
// one-time unlocks. Unlocking grants XP through the injected XP service;
// newly unlocked ids queue up for the client to display in order.
type AchievementService struct {
	defs []models.AchievementDefinition
	xp   *XPService

	mu     sync.Mutex
	states map[int64]*models.AchievementState
}

// NewAchievementService creates an achievement service with the given
// definitions
func NewAchievementService(defs []models.AchievementDefinition, xp *XPService) *AchievementService {
	return &AchievementService{
		defs:   defs,
		xp:     xp,
		states: make(map[int64]*models.AchievementState),
	}
}

// locked; creates the state on first use
func (s *AchievementService) state(userID int64) *models.AchievementState {
	st, ok := s.states[userID]
	if !ok {
		st = models.NewAchievementState()
		s.states[userID] = st
	}
	return st
}

// IncrementCounter adds delta to a counter and unlocks any achievements
// whose target the new value reaches. Returns newly unlocked ids in
// definition order.
func (s *AchievementService) IncrementCounter(userID int64, counter models.CounterType, delta int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	st.Counters[counter] += delta
	return s.checkUnlocks(userID, st, counter)
}

// SetCounterMax raises a counter to value if it is higher than the stored
// one. Used for the daily-streak counter, which reports the current streak
// value rather than an increment.
func (s *AchievementService) SetCounterMax(userID int64, counter models.CounterType, value int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	if value <= st.Counters[counter] {
		return nil
	}
	st.Counters[counter] = value
	return s.checkUnlocks(userID, st, counter)
}

// locked; evaluates every definition on the changed counter
func (s *AchievementService) checkUnlocks(userID int64, st *models.AchievementState, counter models.CounterType) []string {
	value := st.Counters[counter]

	var unlocked []string
	for _, def := range s.defs {
		if def.Counter != counter || st.IsUnlocked(def.ID) {
			continue
		}
		if value < def.Target {
			continue
		}

		st.Unlocked = append(st.Unlocked, def.ID)
		st.Pending = append(st.Pending, def.ID)
		unlocked = append(unlocked, def.ID)

		s.xp.Grant(userID, def.XPReward, "achievement: "+def.Title)
		log.Printf("Achievement unlocked for user %d: %s", userID, def.Title)
	}
	return unlocked
}

// DrainNotifications returns and clears the pending notification queue in
// unlock order
func (s *AchievementService) DrainNotifications(userID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	pending := st.Pending
	st.Pending = []string{}
	return pending
}

// Definitions returns the achievement catalog in declaration order
func (s *AchievementService) Definitions() []models.AchievementDefinition {
	return s.defs
}

// Definition returns one achievement definition, or nil for an unknown id
func (s *AchievementService) Definition(id string) *models.AchievementDefinition {
	for i := range s.defs {
		if s.defs[i].ID == id {
			return &s.defs[i]
		}
	}
	return nil
}

// State returns a copy of the user's achievement state
func (s *AchievementService) State(userID int64) models.AchievementState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	out := models.AchievementState{
		Unlocked: append([]string{}, st.Unlocked...),
		Counters: make(map[models.CounterType]int, len(st.Counters)),
		Pending:  append([]string{}, st.Pending...),
	}
	for k, v := range st.Counters {
		out.Counters[k] = v
	}
	return out
}

// ProgressPercent reports how close a counter is to an achievement's
// target, capped at 100
func (s *AchievementService) ProgressPercent(userID int64, def models.AchievementDefinition) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := s.state(userID).Counters[def.Counter]
	if def.Target <= 0 || value >= def.Target {
		return 100
	}
	return value * 100 / def.Target
}

// Reset zeroes the user's achievement state
func (s *AchievementService) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = models.NewAchievementState()
}

// Restore replaces the user's achievement state from a persisted snapshot.
// The pending queue is deliberately not restored; notifications do not
// survive a reload.
func (s *AchievementService) Restore(userID int64, unlocked []string, counters map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := models.NewAchievementState()
	if unlocked != nil {
		st.Unlocked = append([]string{}, unlocked...)
	}
	for k, v := range counters {
		st.Counters[models.CounterType(k)] = v
	}
	s.states[userID] = st
}

// Snapshot returns the persisted form of the user's achievement and XP
// state, one document like the client keeps
func (s *AchievementService) Snapshot(userID int64) models.AchievementSnapshot {
	st := s.State(userID)
	xp := s.xp.Ledger(userID)

	progress := make(map[string]int, len(st.Counters))
	for k, v := range st.Counters {
		progress[string(k)] = v
	}

	return models.AchievementSnapshot{
		TotalXP:              xp.TotalXP,
		WeeklyXP:             xp.WeeklyXP,
		Level:                xp.Level(),
		LastXPDate:           xp.LastGrantAt,
		UnlockedAchievements: st.Unlocked,
		AchievementProgress:  progress,
		UpdatedAt:            time.Now(),
	}
}
