package syncstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// FileCache keeps the latest snapshot of each collection on local disk so a
// restarted process has immediate non-blank state before any remote load
// completes.
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) path(userID int64, collection string) string {
	return filepath.Join(c.dir, strconv.FormatInt(userID, 10), collection+".json")
}

// Write stores a snapshot document, replacing any previous one
func (c *FileCache) Write(userID int64, collection string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s cache entry: %w", collection, err)
	}

	path := c.path(userID, collection)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache user dir: %w", err)
	}

	// Write-then-rename so readers never see a half-written file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return os.Rename(tmp, path)
}

// Read returns the cached snapshot, or found == false when none exists
func (c *FileCache) Read(userID int64, collection string) (json.RawMessage, bool, error) {
	data, err := os.ReadFile(c.path(userID, collection))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return json.RawMessage(data), true, nil
}
