// Package progress persists per-level play progress.
//
// Progress lives in its own files under the data directory, one JSON file
// per level, and never touches the level pack file: the pack is written
// exactly once, during the first-run bootstrap, and progress snapshots are
// saved here instead.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is one saved progress snapshot for a level.
type Record struct {
	ID          string    `json:"id"` // stable per record, assigned on first save
	LevelIndex  int       `json:"level_index"`
	LevelName   string    `json:"level_name"`
	Moves       int       `json:"moves"`
	TimeElapsed float64   `json:"time_elapsed"` // seconds
	Completed   bool      `json:"completed"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FileStore is a file-based progress store. Safe for concurrent use.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a progress store rooted at baseDir, creating the
// directory if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create progress dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) recordPath(levelIndex int) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("level-%03d.json", levelIndex))
}

// Get retrieves the progress record for a level.
// Returns nil, nil if no progress has been saved.
func (s *FileStore) Get(ctx context.Context, levelIndex int) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.recordPath(levelIndex))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read progress file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	return &rec, nil
}

// Set stores a progress record, assigning an ID and update time.
func (s *FileStore) Set(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := os.WriteFile(s.recordPath(rec.LevelIndex), data, 0600); err != nil {
		return fmt.Errorf("write progress file: %w", err)
	}
	return nil
}

// Delete removes the progress record for a level. Deleting a level with no
// saved progress is not an error.
func (s *FileStore) Delete(ctx context.Context, levelIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.recordPath(levelIndex)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove progress file: %w", err)
	}
	return nil
}

// List returns every saved progress record, ordered by level index.
// Unreadable or malformed files are skipped.
func (s *FileStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read progress dir: %w", err)
	}

	var out []*Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		out = append(out, &rec)
	}
	return out, nil
}

// Path returns the base directory for progress files.
func (s *FileStore) Path() string {
	return s.baseDir
}
