package repository

import (
	"database/sql"
	"fmt"
	"time"

	"zonosign/internal/database"
)

// SnapshotRepository stores per-user JSON snapshot documents, one row per
// user and collection. Backs the SQL flavor of the remote snapshot store.
type SnapshotRepository struct {
	db *database.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *database.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Upsert overwrites the snapshot document for a user and collection.
// Delete-then-insert inside a transaction keeps the statement portable
// across all three dialects.
func (r *SnapshotRepository) Upsert(userID int64, collection string, doc []byte) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM snapshots WHERE user_id = ? AND collection = ?", userID, collection); err != nil {
		return fmt.Errorf("failed to clear old snapshot: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO snapshots (user_id, collection, doc, updated_at)
		VALUES (?, ?, ?, ?)
	`, userID, collection, string(doc), time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return tx.Commit()
}

// Get returns the snapshot document for a user and collection.
// A missing row is reported as found == false, not an error.
func (r *SnapshotRepository) Get(userID int64, collection string) ([]byte, bool, error) {
	var doc string
	err := r.db.QueryRow(
		"SELECT doc FROM snapshots WHERE user_id = ? AND collection = ?",
		userID, collection,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return []byte(doc), true, nil
}
