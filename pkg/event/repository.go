package event

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Repository persists the full event list. The entire array is the unit of
// persistence: Save replaces whatever was stored before (last write wins).
type Repository interface {
	Load(ctx context.Context) ([]Event, error)
	Save(ctx context.Context, events []Event) error
}

// FileRepository keeps the event list as a single JSON document on disk.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads the stored events. A missing or unreadable file degrades to an
// empty list so a broken store never takes the calendar down.
func (r *FileRepository) Load(ctx context.Context) ([]Event, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Event{}, nil
		}
		log.Warnf("failed to read events file %s: %v", r.path, err)
		return []Event{}, nil
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		log.Warnf("events file %s is malformed, starting from an empty list: %v", r.path, err)
		return []Event{}, nil
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// Save writes the full list atomically: marshal, write a temp file next to
// the target, then rename over it.
func (r *FileRepository) Save(ctx context.Context, events []Event) error {
	if events == nil {
		events = []Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create events directory: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write events file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace events file: %w", err)
	}
	return nil
}
