package service

import (
	"testing"

	"zonosign/internal/models"
)

func TestRecordCorrectAnswerStreaks(t *testing.T) {
	svc := NewProgressService()

	for i := 1; i <= 3; i++ {
		ledger := svc.RecordCorrectAnswer(1)
		if ledger.Streak.Current != i {
			t.Errorf("after %d answers Current = %d, want %d", i, ledger.Streak.Current, i)
		}
		if ledger.Streak.Best < ledger.Streak.Current {
			t.Errorf("Best %d fell below Current %d", ledger.Streak.Best, ledger.Streak.Current)
		}
		if ledger.Points != i {
			t.Errorf("after %d answers Points = %d, want %d", i, ledger.Points, i)
		}
	}
}

func TestBestStreakSurvivesRestore(t *testing.T) {
	svc := NewProgressService()

	svc.RecordCorrectAnswer(1)
	svc.RecordCorrectAnswer(1)

	snap := svc.Snapshot(1)
	svc.Restore(1, snap)

	ledger := svc.Ledger(1)
	if ledger.Streak.Best != 2 {
		t.Errorf("Best after restore = %d, want 2", ledger.Streak.Best)
	}
}

func TestLessonCompletionIdempotent(t *testing.T) {
	svc := NewProgressService()

	if !svc.RecordLessonCompleted(1, "common") {
		t.Error("first completion should report first time")
	}
	if svc.RecordLessonCompleted(1, "common") {
		t.Error("repeat completion should not report first time")
	}
	if got := svc.CompletedCount(1); got != 1 {
		t.Errorf("CompletedCount = %d, want 1", got)
	}
	if !svc.HasCompleted(1, "common") {
		t.Error("HasCompleted should be true after completion")
	}
}

func TestProgressLedgerCopyIsolation(t *testing.T) {
	svc := NewProgressService()
	svc.RecordLessonCompleted(1, "common")

	ledger := svc.Ledger(1)
	ledger.CompletedLessons[0] = "advanced"

	if !svc.HasCompleted(1, "common") || svc.HasCompleted(1, "advanced") {
		t.Error("mutating a returned ledger must not affect the service state")
	}
}

func TestProgressReset(t *testing.T) {
	svc := NewProgressService()
	svc.RecordCorrectAnswer(1)
	svc.RecordLessonCompleted(1, "common")

	svc.Reset(1)

	ledger := svc.Ledger(1)
	if ledger.Points != 0 || ledger.Streak != (models.Streak{}) || len(ledger.CompletedLessons) != 0 {
		t.Errorf("ledger after reset = %+v, want fresh ledger", ledger)
	}
}
