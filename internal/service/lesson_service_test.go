package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"zonosign/internal/models"
	"zonosign/internal/syncstore"
)

// memoryStore is an in-memory syncstore.Store for orchestration tests
type memoryStore struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string]json.RawMessage)}
}

func (m *memoryStore) key(userID int64, collection string) string {
	return fmt.Sprintf("%d/%s", userID, collection)
}

func (m *memoryStore) Save(ctx context.Context, userID int64, collection string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[m.key(userID, collection)] = data
	return nil
}

func (m *memoryStore) Load(ctx context.Context, userID int64, collection string) (json.RawMessage, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[m.key(userID, collection)]
	return doc, ok, nil
}

func (m *memoryStore) Clear(ctx context.Context, userID int64, collection string, zeroDoc any) error {
	return m.Save(ctx, userID, collection, zeroDoc)
}

type lessonFixture struct {
	lessons      *LessonService
	progress     *ProgressService
	achievements *AchievementService
	xp           *XPService
	store        *memoryStore
}

func newLessonFixture(t *testing.T, words ...string) *lessonFixture {
	t.Helper()

	source := &fakeSignSource{catalog: map[string][]models.Sign{
		"common": makeSigns(words...),
	}}

	cache, err := syncstore.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	store := newMemoryStore()
	pusher := syncstore.NewPusher(store, cache, 5*time.Millisecond)

	xp := NewXPService()
	progress := NewProgressService()
	achievements := NewAchievementService(DefaultAchievements(), xp)
	nav := NewNavigationService()
	quiz := NewQuizService(source, rand.New(rand.NewSource(7)))

	return &lessonFixture{
		lessons:      NewLessonService(quiz, progress, achievements, xp, nav, pusher, 4),
		progress:     progress,
		achievements: achievements,
		xp:           xp,
		store:        store,
	}
}

// answerCurrent answers the active question, correctly or not, and advances
func (f *lessonFixture) answerCurrent(t *testing.T, userID int64, correct bool) AdvanceResult {
	t.Helper()

	session, ok := f.lessons.Session(userID)
	if !ok {
		t.Fatal("no active session")
	}
	question := session.CurrentQuestion()
	if question == nil {
		t.Fatal("no current question")
	}

	answer := question.CorrectAnswer
	if !correct {
		answer = pickWrongOption(*question)
	}
	if _, ok := f.lessons.SelectAnswer(userID, answer); !ok {
		t.Fatal("SelectAnswer() failed")
	}
	result, ok := f.lessons.Advance(userID)
	if !ok {
		t.Fatal("Advance() failed")
	}
	return result
}

func TestLessonFlowEndToEnd(t *testing.T) {
	f := newLessonFixture(t, "Hello", "Thanks", "Please", "Sorry", "Yes", "No", "Help", "Water")

	if _, err := f.lessons.StartLesson(1, "common"); err != nil {
		t.Fatalf("StartLesson() error = %v", err)
	}

	first := f.answerCurrent(t, 1, true)
	if !equalStrings(first.NewlyUnlocked, []string{"magician"}) {
		t.Errorf("after first advance unlocked %v, want [magician]", first.NewlyUnlocked)
	}

	var last AdvanceResult
	for i := 1; i < 8; i++ {
		last = f.answerCurrent(t, 1, true)
	}

	if !last.Completed || !last.FirstCompleted {
		t.Errorf("final advance = {Completed:%v FirstCompleted:%v}, want both true", last.Completed, last.FirstCompleted)
	}
	if last.Progress.Points != 8 {
		t.Errorf("Points = %d, want 8", last.Progress.Points)
	}
	if last.Progress.Streak.Current != 8 || last.Progress.Streak.Best != 8 {
		t.Errorf("Streak = %+v, want 8/8", last.Progress.Streak)
	}

	drained := f.achievements.DrainNotifications(1)
	want := []string{"magician", "scientist", "scholar"}
	if !equalStrings(drained, want) {
		t.Errorf("drained %v, want %v", drained, want)
	}

	// 8 answers, streak bonuses for streaks 2..8, completion, and the
	// three unlock rewards
	wantXP := 8*10 + (2+3+4+5+6+7+8)*5 + 25 + 30 + 75 + 50
	if got := f.xp.Ledger(1).TotalXP; got != wantXP {
		t.Errorf("TotalXP = %d, want %d", got, wantXP)
	}

	// Coalesced pushes land in the remote store shortly after
	time.Sleep(100 * time.Millisecond)
	ctx := context.Background()
	for _, collection := range []string{syncstore.CollectionProgress, syncstore.CollectionAchievements} {
		if _, found, _ := f.store.Load(ctx, 1, collection); !found {
			t.Errorf("no %s snapshot pushed", collection)
		}
	}
}

func TestWrongAnswerEarnsNothing(t *testing.T) {
	f := newLessonFixture(t, "Hello", "Thanks", "Please", "Sorry")

	if _, err := f.lessons.StartLesson(1, "common"); err != nil {
		t.Fatalf("StartLesson() error = %v", err)
	}

	f.answerCurrent(t, 1, true)
	result := f.answerCurrent(t, 1, false)

	if result.Progress.Points != 1 {
		t.Errorf("Points = %d, want 1", result.Progress.Points)
	}
	if len(result.NewlyUnlocked) != 0 {
		t.Errorf("wrong answer unlocked %v, want none", result.NewlyUnlocked)
	}
}

func TestRepeatCompletionKeepsAnswerRewardsOnly(t *testing.T) {
	f := newLessonFixture(t, "Hello", "Thanks")

	f.lessons.StartLesson(1, "common")
	f.answerCurrent(t, 1, true)
	f.answerCurrent(t, 1, true)

	xpAfterFirst := f.xp.Ledger(1).TotalXP

	// A review pass re-earns answer rewards but no completion bonus
	f.lessons.StartLesson(1, "common")
	f.answerCurrent(t, 1, true)
	result := f.answerCurrent(t, 1, true)

	if result.FirstCompleted {
		t.Error("review completion should not count as first")
	}
	if got := f.progress.CompletedCount(1); got != 1 {
		t.Errorf("CompletedCount = %d, want 1", got)
	}

	// streak continues 3, 4 => answers 2*10 + bonuses (3+4)*5
	wantGain := 2*10 + (3+4)*5
	if got := f.xp.Ledger(1).TotalXP - xpAfterFirst; got != wantGain {
		t.Errorf("review XP gain = %d, want %d", got, wantGain)
	}
}

func TestAbandonKeepsAnswerRewards(t *testing.T) {
	f := newLessonFixture(t, "Hello", "Thanks", "Please", "Sorry")

	f.lessons.StartLesson(1, "common")
	f.answerCurrent(t, 1, true)
	f.answerCurrent(t, 1, true)

	f.lessons.ReturnToDashboard(1)

	if _, ok := f.lessons.Session(1); ok {
		t.Error("session should be gone after abandoning")
	}
	if got := f.progress.Ledger(1).Points; got != 2 {
		t.Errorf("Points after abandon = %d, want 2", got)
	}
	if got := f.progress.CompletedCount(1); got != 0 {
		t.Errorf("CompletedCount after abandon = %d, want 0", got)
	}
}

func TestResetAllClearsRemote(t *testing.T) {
	f := newLessonFixture(t, "Hello", "Thanks")

	f.lessons.StartLesson(1, "common")
	f.answerCurrent(t, 1, true)
	f.answerCurrent(t, 1, true)

	ctx := context.Background()
	f.lessons.ResetAll(ctx, 1)

	if got := f.progress.Ledger(1).Points; got != 0 {
		t.Errorf("Points after reset = %d, want 0", got)
	}
	if got := f.xp.Ledger(1).TotalXP; got != 0 {
		t.Errorf("TotalXP after reset = %d, want 0", got)
	}

	doc, found, _ := f.store.Load(ctx, 1, syncstore.CollectionProgress)
	if !found {
		t.Fatal("reset should overwrite the remote progress document")
	}
	var snap models.ProgressSnapshot
	if err := json.Unmarshal(doc, &snap); err != nil {
		t.Fatalf("unmarshal zero doc: %v", err)
	}
	if snap.Points != 0 || len(snap.CompletedLessons) != 0 {
		t.Errorf("remote zero doc = %+v, want zeroed", snap)
	}
}

func TestHydrateRestoresLedgers(t *testing.T) {
	f := newLessonFixture(t, "Hello", "Thanks")

	f.lessons.StartLesson(1, "common")
	f.answerCurrent(t, 1, true)
	f.answerCurrent(t, 1, true)

	f.lessons.PushAll(1)
	wantXP := f.xp.Ledger(1).TotalXP

	// A fresh process with the same store sees the pushed state
	g := newLessonFixture(t, "Hello", "Thanks")
	g.store.mu.Lock()
	g.store.docs = f.store.docs
	g.store.mu.Unlock()

	g.lessons.Hydrate(context.Background(), 1)

	if got := g.progress.Ledger(1).Points; got != 2 {
		t.Errorf("hydrated Points = %d, want 2", got)
	}
	if got := g.progress.CompletedCount(1); got != 1 {
		t.Errorf("hydrated CompletedCount = %d, want 1", got)
	}
	if got := g.xp.Ledger(1).TotalXP; got != wantXP {
		t.Errorf("hydrated TotalXP = %d, want %d", got, wantXP)
	}
	if !g.achievements.State(1).IsUnlocked("magician") {
		t.Error("hydrated state should keep magician unlocked")
	}
}

func TestAnswersAfterRestartBuildOnStoredProgress(t *testing.T) {
	f := newLessonFixture(t, "Hello", "Thanks")

	f.lessons.StartLesson(1, "common")
	f.answerCurrent(t, 1, true)
	f.answerCurrent(t, 1, true)
	f.lessons.PushAll(1)

	// A fresh process with the same store, but the user never logs in
	// again: their 30-day session is still valid, so no Hydrate call.
	// The first action has to load the stored ledgers on its own.
	g := newLessonFixture(t, "Hello", "Thanks")
	g.store.mu.Lock()
	g.store.docs = f.store.docs
	g.store.mu.Unlock()

	if _, err := g.lessons.StartLesson(1, "common"); err != nil {
		t.Fatalf("StartLesson() error = %v", err)
	}
	result := g.answerCurrent(t, 1, true)

	if got := result.Progress.Points; got != 3 {
		t.Errorf("Points after restart = %d, want 3", got)
	}

	time.Sleep(100 * time.Millisecond)
	doc, found, _ := g.store.Load(context.Background(), 1, syncstore.CollectionProgress)
	if !found {
		t.Fatal("no progress snapshot pushed")
	}
	var snap models.ProgressSnapshot
	if err := json.Unmarshal(doc, &snap); err != nil {
		t.Fatalf("unmarshal pushed snapshot: %v", err)
	}
	if snap.Points != 3 {
		t.Errorf("remote Points = %d, want 3; stored progress was overwritten", snap.Points)
	}
	if len(snap.CompletedLessons) != 1 {
		t.Errorf("remote CompletedLessons = %v, want the earlier completion kept", snap.CompletedLessons)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
