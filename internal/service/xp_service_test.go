package service

import (
	"testing"
	"time"

	"zonosign/internal/models"
)

func TestLevelDerivation(t *testing.T) {
	tests := []struct {
		name    string
		totalXP int
		want    int
	}{
		{"fresh account", 0, 1},
		{"just below second level", 99, 1},
		{"second level boundary", 100, 2},
		{"mid third level", 250, 3},
		{"high total", 1000, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := models.XPLedger{TotalXP: tt.totalXP}
			if got := l.Level(); got != tt.want {
				t.Errorf("Level() with %d XP = %d, want %d", tt.totalXP, got, tt.want)
			}
		})
	}
}

func TestGrantAccumulatesWithinWeek(t *testing.T) {
	svc := NewXPService()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	svc.Grant(1, 10, "correct answer")
	current = base.Add(3 * 24 * time.Hour)
	ledger := svc.Grant(1, 25, "lesson completed")

	if ledger.TotalXP != 35 {
		t.Errorf("TotalXP = %d, want 35", ledger.TotalXP)
	}
	if ledger.WeeklyXP != 35 {
		t.Errorf("WeeklyXP = %d, want 35", ledger.WeeklyXP)
	}
}

func TestGrantWeeklyRollover(t *testing.T) {
	svc := NewXPService()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	svc.Grant(1, 10, "correct answer")
	current = base.Add(7 * 24 * time.Hour)
	ledger := svc.Grant(1, 5, "correct answer")

	if ledger.TotalXP != 15 {
		t.Errorf("TotalXP = %d, want 15", ledger.TotalXP)
	}
	if ledger.WeeklyXP != 5 {
		t.Errorf("WeeklyXP after rollover = %d, want 5", ledger.WeeklyXP)
	}
}

func TestResetZeroesLedger(t *testing.T) {
	svc := NewXPService()
	svc.Grant(1, 120, "test")
	svc.Reset(1)

	ledger := svc.Ledger(1)
	if ledger.TotalXP != 0 || ledger.WeeklyXP != 0 || ledger.LastGrantAt != nil {
		t.Errorf("ledger after reset = %+v, want zero ledger", ledger)
	}
	if ledger.Level() != 1 {
		t.Errorf("Level() after reset = %d, want 1", ledger.Level())
	}
}

func TestUsersAreIndependent(t *testing.T) {
	svc := NewXPService()
	svc.Grant(1, 50, "test")

	if got := svc.Ledger(2).TotalXP; got != 0 {
		t.Errorf("user 2 TotalXP = %d, want 0", got)
	}
}
