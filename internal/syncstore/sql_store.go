package syncstore

import (
	"context"
	"encoding/json"
	"fmt"

	"zonosign/internal/repository"
)

// SQLStore persists snapshots in the application database. This is the
// default backend, so the app runs with nothing but its SQL database.
type SQLStore struct {
	repo *repository.SnapshotRepository
}

// NewSQLStore creates a SQL-backed snapshot store
func NewSQLStore(repo *repository.SnapshotRepository) *SQLStore {
	return &SQLStore{repo: repo}
}

// Save overwrites the snapshot document for a user and collection
func (s *SQLStore) Save(ctx context.Context, userID int64, collection string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", collection, err)
	}
	return s.repo.Upsert(userID, collection, data)
}

// Load returns the stored snapshot, or found == false when none exists
func (s *SQLStore) Load(ctx context.Context, userID int64, collection string) (json.RawMessage, bool, error) {
	data, found, err := s.repo.Get(userID, collection)
	if err != nil || !found {
		return nil, false, err
	}
	return json.RawMessage(data), true, nil
}

// Clear overwrites the snapshot with a zero document
func (s *SQLStore) Clear(ctx context.Context, userID int64, collection string, zeroDoc any) error {
	return s.Save(ctx, userID, collection, zeroDoc)
}
