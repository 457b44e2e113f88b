package syncstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

// countingStore records saves and can be made to fail
type countingStore struct {
	mu    sync.Mutex
	saves int
	docs  map[string]json.RawMessage
	fail  bool
}

func newCountingStore() *countingStore {
	return &countingStore{docs: make(map[string]json.RawMessage)}
}

func (c *countingStore) Save(ctx context.Context, userID int64, collection string, doc any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("store unavailable")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	c.saves++
	c.docs[collection] = data
	return nil
}

func (c *countingStore) Load(ctx context.Context, userID int64, collection string) (json.RawMessage, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return nil, false, errors.New("store unavailable")
	}
	doc, ok := c.docs[collection]
	return doc, ok, nil
}

func (c *countingStore) Clear(ctx context.Context, userID int64, collection string, zeroDoc any) error {
	return c.Save(ctx, userID, collection, zeroDoc)
}

func (c *countingStore) saveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

type testDoc struct {
	Value int `json:"value"`
}

func newTestPusher(t *testing.T, store Store, delay time.Duration) *Pusher {
	t.Helper()
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	return NewPusher(store, cache, delay)
}

func TestScheduleCoalescesBursts(t *testing.T) {
	store := newCountingStore()
	pusher := newTestPusher(t, store, 10*time.Millisecond)

	value := 0
	snapshot := func() any { return testDoc{Value: value} }

	for i := 1; i <= 5; i++ {
		value = i
		pusher.Schedule(1, CollectionProgress, snapshot)
	}

	time.Sleep(100 * time.Millisecond)

	if got := store.saveCount(); got != 1 {
		t.Errorf("saves = %d, want 1 for a burst of schedules", got)
	}

	// Last write wins
	doc, found, _ := store.Load(context.Background(), 1, CollectionProgress)
	if !found {
		t.Fatal("no document saved")
	}
	var saved testDoc
	if err := json.Unmarshal(doc, &saved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if saved.Value != 5 {
		t.Errorf("saved value = %d, want 5", saved.Value)
	}
}

func TestPushNowSkipsDelay(t *testing.T) {
	store := newCountingStore()
	pusher := newTestPusher(t, store, time.Hour)

	pusher.Schedule(1, CollectionProgress, func() any { return testDoc{Value: 1} })
	pusher.PushNow(1, CollectionProgress, func() any { return testDoc{Value: 2} })

	if got := store.saveCount(); got != 1 {
		t.Errorf("saves = %d, want 1 immediate push replacing the pending one", got)
	}
}

func TestClearCancelsPendingPush(t *testing.T) {
	store := newCountingStore()
	pusher := newTestPusher(t, store, 10*time.Millisecond)

	pusher.Schedule(1, CollectionProgress, func() any { return testDoc{Value: 7} })
	pusher.Clear(context.Background(), 1, CollectionProgress, testDoc{})

	time.Sleep(100 * time.Millisecond)

	doc, found, _ := store.Load(context.Background(), 1, CollectionProgress)
	if !found {
		t.Fatal("clear should write the zero document")
	}
	var saved testDoc
	if err := json.Unmarshal(doc, &saved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if saved.Value != 0 {
		t.Errorf("document after clear = %+v, want zero doc", saved)
	}
}

func TestLoadFallsBackToCache(t *testing.T) {
	store := newCountingStore()
	pusher := newTestPusher(t, store, time.Millisecond)

	pusher.PushNow(1, CollectionProgress, func() any { return testDoc{Value: 3} })

	// Remote goes away; the cached copy still answers
	store.mu.Lock()
	store.fail = true
	store.mu.Unlock()

	doc, found := pusher.Load(context.Background(), 1, CollectionProgress)
	if !found {
		t.Fatal("Load() should fall back to the cache")
	}
	var cached testDoc
	if err := json.Unmarshal(doc, &cached); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cached.Value != 3 {
		t.Errorf("cached value = %d, want 3", cached.Value)
	}
}

func TestLoadMissingEverywhere(t *testing.T) {
	store := newCountingStore()
	pusher := newTestPusher(t, store, time.Millisecond)

	if _, found := pusher.Load(context.Background(), 99, CollectionNavigation); found {
		t.Error("Load() for an unknown user should report not found")
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	if err := cache.Write(1, CollectionAchievements, testDoc{Value: 42}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	doc, found, err := cache.Read(1, CollectionAchievements)
	if err != nil || !found {
		t.Fatalf("Read() = found %v, err %v", found, err)
	}
	var out testDoc
	if err := json.Unmarshal(doc, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Value != 42 {
		t.Errorf("round-tripped value = %d, want 42", out.Value)
	}

	if _, found, _ := cache.Read(2, CollectionAchievements); found {
		t.Error("Read() for another user should report not found")
	}
}
