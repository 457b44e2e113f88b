// Package syncstore persists per-user ledger snapshots to a remote document
// store, with a local file cache for instant state on restart. The in-memory
// ledgers are always authoritative; everything here is best effort.
package syncstore

import (
	"context"
	"encoding/json"
)

// Snapshot collections, one remote document per user per collection
const (
	CollectionProgress     = "progress"
	CollectionAchievements = "achievements"
	CollectionNavigation   = "navigation"
)

// Collections lists every snapshot collection
var Collections = []string{CollectionProgress, CollectionAchievements, CollectionNavigation}

// Store is the remote snapshot store contract. Save overwrites the full
// document for a user; Load reports absence as found == false, which is the
// normal case for first-time users; Clear overwrites with a zero document
// rather than deleting.
type Store interface {
	Save(ctx context.Context, userID int64, collection string, doc any) error
	Load(ctx context.Context, userID int64, collection string) (json.RawMessage, bool, error)
	Clear(ctx context.Context, userID int64, collection string, zeroDoc any) error
}
