package models

import (
	"testing"
	"time"
)

func TestSessionIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future expiry", time.Now().Add(time.Hour), false},
		{"past expiry", time.Now().Add(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{ExpiresAt: tt.expiresAt}
			if got := s.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidTab(t *testing.T) {
	tests := []struct {
		tab  string
		want bool
	}{
		{"overview", true},
		{"dictionary", true},
		{"progress", true},
		{"profile", true},
		{"settings", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			if got := ValidTab(tt.tab); got != tt.want {
				t.Errorf("ValidTab(%q) = %v, want %v", tt.tab, got, tt.want)
			}
		})
	}
}

func TestQuizSessionCurrentQuestion(t *testing.T) {
	session := QuizSession{
		Questions: []QuizQuestion{
			{ID: 1, CorrectAnswer: "Hello"},
			{ID: 2, CorrectAnswer: "Thanks"},
		},
	}

	if q := session.CurrentQuestion(); q == nil || q.ID != 1 {
		t.Errorf("CurrentQuestion() = %v, want question 1", q)
	}

	session.CurrentIndex = 2
	if q := session.CurrentQuestion(); q != nil {
		t.Errorf("CurrentQuestion() past the end = %v, want nil", q)
	}
}

func TestAchievementStateIsUnlocked(t *testing.T) {
	st := NewAchievementState()
	st.Unlocked = append(st.Unlocked, "magician")

	if !st.IsUnlocked("magician") {
		t.Error("IsUnlocked should find a recorded id")
	}
	if st.IsUnlocked("scholar") {
		t.Error("IsUnlocked should not report an unrecorded id")
	}
}
