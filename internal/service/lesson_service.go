package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"zonosign/internal/models"
	"zonosign/internal/syncstore"
)

// hydrateTimeout bounds the remote load when hydration happens lazily
// inside a user action rather than at login.
const hydrateTimeout = 5 * time.Second

// XP amounts for lesson events
const (
	xpCorrectAnswer       = 10
	xpLessonCompleted     = 25
	streakBonusMultiplier = 5
)

// AdvanceResult is what the client sees after advancing past a question
type AdvanceResult struct {
	Session        models.QuizSession
	Completed      bool
	Progress       models.ProgressLedger
	NewlyUnlocked  []string
	FirstCompleted bool
}

// LessonService orchestrates the lesson flow. It owns references to every
// ledger and applies quiz effects to them in a fixed order, so no ledger
// ever reaches into another. All persistence goes through the coalescing
// pusher and never blocks or fails a user action.
type LessonService struct {
	quiz         *QuizService
	progress     *ProgressService
	achievements *AchievementService
	xp           *XPService
	nav          *NavigationService
	pusher       *syncstore.Pusher
	totalLessons int

	mu       sync.Mutex
	hydrated map[int64]bool
}

// NewLessonService creates the lesson orchestrator. totalLessons is the
// number of lessons that counts as "all of them" for the champion-style
// achievement.
func NewLessonService(
	quiz *QuizService,
	progress *ProgressService,
	achievements *AchievementService,
	xp *XPService,
	nav *NavigationService,
	pusher *syncstore.Pusher,
	totalLessons int,
) *LessonService {
	return &LessonService{
		quiz:         quiz,
		progress:     progress,
		achievements: achievements,
		xp:           xp,
		nav:          nav,
		pusher:       pusher,
		totalLessons: totalLessons,
		hydrated:     make(map[int64]bool),
	}
}

// markHydrated records that the user's ledgers are loaded. It reports
// whether the user still needed hydrating.
func (s *LessonService) markHydrated(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hydrated[userID] {
		return false
	}
	s.hydrated[userID] = true
	return true
}

// EnsureHydrated loads the user's ledgers from the store on their first
// touch since process start. Sessions outlive the process, so a user can
// arrive authenticated without ever passing through login; acting on
// zero-valued ledgers here would push empty snapshots over their real ones.
func (s *LessonService) EnsureHydrated(userID int64) {
	if !s.markHydrated(userID) {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), hydrateTimeout)
	defer cancel()
	s.restore(ctx, userID)
}

// StartLesson begins a quiz for the lesson, replacing any active session
func (s *LessonService) StartLesson(userID int64, lessonID string) (models.QuizSession, error) {
	s.EnsureHydrated(userID)
	return s.quiz.Start(userID, lessonID)
}

// SelectAnswer grades the current question. Duplicate submits are no-ops.
func (s *LessonService) SelectAnswer(userID int64, answer string) (models.QuizSession, bool) {
	return s.quiz.SelectAnswer(userID, answer)
}

// Advance applies the answered question's effects and moves on. Scoring
// happens here, exactly once per answered question, never at answer time.
func (s *LessonService) Advance(userID int64) (AdvanceResult, bool) {
	s.EnsureHydrated(userID)
	outcome, ok := s.quiz.Advance(userID)
	if !ok {
		return AdvanceResult{}, false
	}

	result := AdvanceResult{
		Session:   outcome.Session,
		Completed: outcome.Completed,
	}

	for _, effect := range outcome.Effects {
		switch effect.Type {
		case EffectCorrectAnswer:
			ledger := s.progress.RecordCorrectAnswer(userID)
			result.NewlyUnlocked = append(result.NewlyUnlocked,
				s.achievements.IncrementCounter(userID, models.CounterCorrectAnswers, 1)...)
			s.xp.Grant(userID, xpCorrectAnswer, "correct answer")

			result.NewlyUnlocked = append(result.NewlyUnlocked,
				s.achievements.SetCounterMax(userID, models.CounterDailyStreak, ledger.Streak.Current)...)
			if ledger.Streak.Current > 1 {
				s.xp.Grant(userID, ledger.Streak.Current*streakBonusMultiplier, "streak bonus")
			}

		case EffectLessonCompleted:
			// Review passes of a completed lesson keep their answer
			// rewards but never re-trigger completion logic
			if !s.progress.RecordLessonCompleted(userID, effect.LessonID) {
				continue
			}
			result.FirstCompleted = true

			result.NewlyUnlocked = append(result.NewlyUnlocked,
				s.achievements.IncrementCounter(userID, models.CounterLessonsCompleted, 1)...)
			s.xp.Grant(userID, xpLessonCompleted, "lesson completed")

			if s.progress.CompletedCount(userID) >= s.totalLessons {
				result.NewlyUnlocked = append(result.NewlyUnlocked,
					s.achievements.IncrementCounter(userID, models.CounterAllLessonsCompleted, 1)...)
			}
		}
	}

	result.Progress = s.progress.Ledger(userID)

	if len(outcome.Effects) > 0 {
		s.schedulePush(userID, syncstore.CollectionProgress)
		s.schedulePush(userID, syncstore.CollectionAchievements)
	}

	return result, true
}

// Session returns the active quiz session, if any
func (s *LessonService) Session(userID int64) (models.QuizSession, bool) {
	return s.quiz.Session(userID)
}

// ReturnToDashboard abandons the active session. Answer-level rewards
// already applied are not reverted.
func (s *LessonService) ReturnToDashboard(userID int64) {
	s.quiz.Abandon(userID)
}

// SetTab records the active navigation tab and persists it
func (s *LessonService) SetTab(userID int64, tab string) bool {
	s.EnsureHydrated(userID)
	if !s.nav.SetTab(userID, tab) {
		return false
	}
	s.schedulePush(userID, syncstore.CollectionNavigation)
	return true
}

// DrainNotifications hands the pending achievement unlocks to the client
func (s *LessonService) DrainNotifications(userID int64) []string {
	return s.achievements.DrainNotifications(userID)
}

func (s *LessonService) schedulePush(userID int64, collection string) {
	s.pusher.Schedule(userID, collection, s.snapshotFunc(userID, collection))
}

func (s *LessonService) snapshotFunc(userID int64, collection string) syncstore.SnapshotFunc {
	switch collection {
	case syncstore.CollectionProgress:
		return func() any { return s.progress.Snapshot(userID) }
	case syncstore.CollectionAchievements:
		return func() any { return s.achievements.Snapshot(userID) }
	default:
		return func() any { return s.nav.Snapshot(userID) }
	}
}

// PushAll writes every collection immediately. Used when onboarding
// completes so a brand-new account exists remotely right away.
func (s *LessonService) PushAll(userID int64) {
	s.EnsureHydrated(userID)
	for _, collection := range syncstore.Collections {
		s.pusher.PushNow(userID, collection, s.snapshotFunc(userID, collection))
	}
}

// Hydrate loads a user's ledgers at login, preferring the remote store and
// falling back to the local cache. Absence is normal for first-time users.
func (s *LessonService) Hydrate(ctx context.Context, userID int64) {
	s.markHydrated(userID)
	s.restore(ctx, userID)
}

func (s *LessonService) restore(ctx context.Context, userID int64) {
	if doc, found := s.pusher.Load(ctx, userID, syncstore.CollectionProgress); found {
		var snap models.ProgressSnapshot
		if err := json.Unmarshal(doc, &snap); err != nil {
			log.Printf("Ignoring malformed progress snapshot for user %d: %v", userID, err)
		} else {
			s.progress.Restore(userID, snap)
		}
	}

	if doc, found := s.pusher.Load(ctx, userID, syncstore.CollectionAchievements); found {
		var snap models.AchievementSnapshot
		if err := json.Unmarshal(doc, &snap); err != nil {
			log.Printf("Ignoring malformed achievements snapshot for user %d: %v", userID, err)
		} else {
			s.achievements.Restore(userID, snap.UnlockedAchievements, snap.AchievementProgress)
			s.xp.Restore(userID, snap.TotalXP, snap.WeeklyXP, snap.LastXPDate)
		}
	}

	if doc, found := s.pusher.Load(ctx, userID, syncstore.CollectionNavigation); found {
		var snap models.NavigationSnapshot
		if err := json.Unmarshal(doc, &snap); err != nil {
			log.Printf("Ignoring malformed navigation snapshot for user %d: %v", userID, err)
		} else {
			s.nav.Restore(userID, snap)
		}
	}
}

// ResetAll zeroes every ledger and overwrites the remote records with
// defaults. Used on sign-out.
func (s *LessonService) ResetAll(ctx context.Context, userID int64) {
	s.markHydrated(userID)
	s.quiz.Abandon(userID)
	s.progress.Reset(userID)
	s.achievements.Reset(userID)
	s.xp.Reset(userID)
	s.nav.Reset(userID)

	s.pusher.Clear(ctx, userID, syncstore.CollectionProgress, s.progress.Snapshot(userID))
	s.pusher.Clear(ctx, userID, syncstore.CollectionAchievements, s.achievements.Snapshot(userID))
	s.pusher.Clear(ctx, userID, syncstore.CollectionNavigation, s.nav.Snapshot(userID))
}
