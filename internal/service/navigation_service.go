package service

import (
	"sync"
	"time"

	"zonosign/internal/models"
)

// NavigationService remembers which tab each user last had active, so a
// fresh load can restore the client where it left off.
type NavigationService struct {
	mu     sync.Mutex
	states map[int64]*models.NavigationState
}

// NewNavigationService creates a new navigation service
func NewNavigationService() *NavigationService {
	return &NavigationService{
		states: make(map[int64]*models.NavigationState),
	}
}

// locked; creates the state on first use
func (s *NavigationService) state(userID int64) *models.NavigationState {
	st, ok := s.states[userID]
	if !ok {
		st = models.NewNavigationState()
		s.states[userID] = st
	}
	return st
}

// SetTab records the active tab. Unknown tabs are ignored.
func (s *NavigationService) SetTab(userID int64, tab string) bool {
	if !models.ValidTab(tab) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(userID).CurrentTab = tab
	return true
}

// CurrentTab returns the user's active tab
func (s *NavigationService) CurrentTab(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(userID).CurrentTab
}

// Reset restores the default tab
func (s *NavigationService) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = models.NewNavigationState()
}

// Restore replaces the user's navigation state from a persisted snapshot
func (s *NavigationService) Restore(userID int64, snap models.NavigationSnapshot) {
	tab := snap.CurrentTab
	if !models.ValidTab(tab) {
		tab = models.TabOverview
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = &models.NavigationState{CurrentTab: tab}
}

// Snapshot returns the persisted form of the user's navigation state
func (s *NavigationService) Snapshot(userID int64) models.NavigationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.NavigationSnapshot{
		CurrentTab: s.state(userID).CurrentTab,
		UpdatedAt:  time.Now(),
	}
}
