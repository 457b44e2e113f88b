package syncstore

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"
)

// SnapshotFunc produces the current snapshot document for a collection.
// Called at push time, not schedule time, so a burst of mutations is
// written once with the latest state.
type SnapshotFunc func() any

// Pusher coalesces snapshot writes. Each Schedule call (re)arms a short
// timer per user and collection; when it fires, the snapshot is captured,
// cached locally and pushed to the remote store. Failures are logged and
// never propagate; in-memory state stays authoritative.
type Pusher struct {
	store Store
	cache *FileCache
	delay time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewPusher creates a pusher writing through cache to store
func NewPusher(store Store, cache *FileCache, delay time.Duration) *Pusher {
	return &Pusher{
		store:  store,
		cache:  cache,
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

func pushKey(userID int64, collection string) string {
	return strconv.FormatInt(userID, 10) + "/" + collection
}

// Schedule queues a coalesced push for a user's collection
func (p *Pusher) Schedule(userID int64, collection string, snapshot SnapshotFunc) {
	key := pushKey(userID, collection)

	p.mu.Lock()
	defer p.mu.Unlock()

	if timer, ok := p.timers[key]; ok {
		timer.Stop()
	}
	p.timers[key] = time.AfterFunc(p.delay, func() {
		p.mu.Lock()
		delete(p.timers, key)
		p.mu.Unlock()

		p.push(userID, collection, snapshot())
	})
}

// PushNow writes a snapshot immediately, bypassing the coalescing delay
func (p *Pusher) PushNow(userID int64, collection string, snapshot SnapshotFunc) {
	key := pushKey(userID, collection)

	p.mu.Lock()
	if timer, ok := p.timers[key]; ok {
		timer.Stop()
		delete(p.timers, key)
	}
	p.mu.Unlock()

	p.push(userID, collection, snapshot())
}

func (p *Pusher) push(userID int64, collection string, doc any) {
	if err := p.cache.Write(userID, collection, doc); err != nil {
		log.Printf("Failed to cache %s snapshot for user %d: %v", collection, userID, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.store.Save(ctx, userID, collection, doc); err != nil {
		log.Printf("Failed to push %s snapshot for user %d: %v", collection, userID, err)
	}
}

// Clear overwrites a user's collection with its zero document, locally and
// remotely. Used on sign-out.
func (p *Pusher) Clear(ctx context.Context, userID int64, collection string, zeroDoc any) {
	key := pushKey(userID, collection)

	p.mu.Lock()
	if timer, ok := p.timers[key]; ok {
		timer.Stop()
		delete(p.timers, key)
	}
	p.mu.Unlock()

	if err := p.cache.Write(userID, collection, zeroDoc); err != nil {
		log.Printf("Failed to clear cached %s snapshot for user %d: %v", collection, userID, err)
	}
	if err := p.store.Clear(ctx, userID, collection, zeroDoc); err != nil {
		log.Printf("Failed to clear remote %s snapshot for user %d: %v", collection, userID, err)
	}
}

// Load returns the best available snapshot for a user's collection: the
// remote document when reachable, otherwise the local cache.
func (p *Pusher) Load(ctx context.Context, userID int64, collection string) ([]byte, bool) {
	if doc, found, err := p.store.Load(ctx, userID, collection); err == nil && found {
		return doc, true
	} else if err != nil {
		log.Printf("Failed to load %s snapshot for user %d: %v", collection, userID, err)
	}

	doc, found, err := p.cache.Read(userID, collection)
	if err != nil {
		log.Printf("Failed to read cached %s snapshot for user %d: %v", collection, userID, err)
		return nil, false
	}
	return doc, found
}
