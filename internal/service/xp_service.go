package service

import (
	"log"
	"sync"
	"time"

	"zonosign/internal/models"
)

// weeklyWindow is how long a grant gap must be before the weekly XP
// counter starts over.
const weeklyWindow = 7 * 24 * time.Hour

// XPService tracks cumulative and weekly experience per user. Level is
// derived from total XP, never stored independently. The clock is injected
// so the weekly rollover is testable.
type XPService struct {
	mu      sync.Mutex
	ledgers map[int64]*models.XPLedger
	now     func() time.Time
}

// NewXPService creates a new XP service
func NewXPService() *XPService {
	return &XPService{
		ledgers: make(map[int64]*models.XPLedger),
		now:     time.Now,
	}
}

// locked; creates the ledger on first use
func (s *XPService) ledger(userID int64) *models.XPLedger {
	l, ok := s.ledgers[userID]
	if !ok {
		l = &models.XPLedger{}
		s.ledgers[userID] = l
	}
	return l
}

// Grant adds XP from a source. Weekly XP accumulates until grants are more
// than a week apart, then restarts at the new grant amount.
func (s *XPService) Grant(userID int64, amount int, source string) models.XPLedger {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.ledger(userID)
	now := s.now()

	if l.LastGrantAt != nil && now.Sub(*l.LastGrantAt) >= weeklyWindow {
		l.WeeklyXP = amount
	} else {
		l.WeeklyXP += amount
	}

	l.TotalXP += amount
	l.LastGrantAt = &now

	log.Printf("+%d XP from %s (user %d, total %d)", amount, source, userID, l.TotalXP)
	return *l
}

// Ledger returns a copy of the user's XP ledger
func (s *XPService) Ledger(userID int64) models.XPLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.ledger(userID)
}

// Reset zeroes the user's XP ledger
func (s *XPService) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledgers[userID] = &models.XPLedger{}
}

// Restore replaces the user's XP ledger from a persisted snapshot
func (s *XPService) Restore(userID int64, totalXP, weeklyXP int, lastGrantAt *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledgers[userID] = &models.XPLedger{
		TotalXP:     totalXP,
		WeeklyXP:    weeklyXP,
		LastGrantAt: lastGrantAt,
	}
}
