package service

import (
	"sync"
	"time"

	"zonosign/internal/models"
)

// ProgressService tracks per-user points, answer streak and completed
// lessons. Mutations come only from the lesson orchestrator; there are no
// error paths.
type ProgressService struct {
	mu      sync.Mutex
	ledgers map[int64]*models.ProgressLedger
}

// NewProgressService creates a new progress service
func NewProgressService() *ProgressService {
	return &ProgressService{
		ledgers: make(map[int64]*models.ProgressLedger),
	}
}

// locked; creates the ledger on first use
func (s *ProgressService) ledger(userID int64) *models.ProgressLedger {
	l, ok := s.ledgers[userID]
	if !ok {
		l = models.NewProgressLedger()
		s.ledgers[userID] = l
	}
	return l
}

// RecordCorrectAnswer adds a point and extends the streak, returning the
// updated ledger. Best never drops below current.
func (s *ProgressService) RecordCorrectAnswer(userID int64) models.ProgressLedger {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.ledger(userID)
	l.Points++
	l.Streak.Current++
	if l.Streak.Current > l.Streak.Best {
		l.Streak.Best = l.Streak.Current
	}
	return copyLedger(l)
}

// RecordLessonCompleted adds a lesson to the completed set. Returns true
// when this is the first completion; repeat calls are no-ops.
func (s *ProgressService) RecordLessonCompleted(userID int64, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.ledger(userID)
	if l.HasCompleted(lessonID) {
		return false
	}
	l.CompletedLessons = append(l.CompletedLessons, lessonID)
	return true
}

// HasCompleted reports whether the user has completed the lesson
func (s *ProgressService) HasCompleted(userID int64, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger(userID).HasCompleted(lessonID)
}

// CompletedCount returns how many lessons the user has completed
func (s *ProgressService) CompletedCount(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ledger(userID).CompletedLessons)
}

// Ledger returns a copy of the user's progress ledger
func (s *ProgressService) Ledger(userID int64) models.ProgressLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLedger(s.ledger(userID))
}

// Reset zeroes the user's progress ledger
func (s *ProgressService) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledgers[userID] = models.NewProgressLedger()
}

// Restore replaces the user's progress ledger from a persisted snapshot
func (s *ProgressService) Restore(userID int64, snap models.ProgressSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := snap.CompletedLessons
	if completed == nil {
		completed = []string{}
	}
	s.ledgers[userID] = &models.ProgressLedger{
		Points:           snap.Points,
		Streak:           snap.Streak,
		CompletedLessons: completed,
	}
}

// Snapshot returns the persisted form of the user's progress ledger
func (s *ProgressService) Snapshot(userID int64) models.ProgressSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := copyLedger(s.ledger(userID))
	return models.ProgressSnapshot{
		Points:           l.Points,
		Streak:           l.Streak,
		CompletedLessons: l.CompletedLessons,
		UpdatedAt:        time.Now(),
	}
}

func copyLedger(l *models.ProgressLedger) models.ProgressLedger {
	out := *l
	out.CompletedLessons = append([]string{}, l.CompletedLessons...)
	return out
}
