package models

import "time"

// User represents a learner account
type User struct {
	ID                  int64
	Email               string
	PasswordHash        string
	Name                string
	OAuthProvider       string
	OAuthSubject        string
	SignLanguageLevel   string
	HoursPerDay         string
	OnboardingCompleted bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Session represents an authenticated session
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// OnboardingProfile is the data collected during the onboarding flow
type OnboardingProfile struct {
	Name              string `json:"name"`
	SignLanguageLevel string `json:"signLanguageLevel"`
	HoursPerDay       string `json:"hoursPerDay"`
}
