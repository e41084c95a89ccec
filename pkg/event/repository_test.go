package event

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileRepository_MissingFileLoadsEmpty(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "events.json"))

	events, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestFileRepository_MalformedFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	repo := NewFileRepository(path)

	events, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestFileRepository_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	repo := NewFileRepository(path)

	in := []Event{
		{ID: "a", Name: "Farm Tour", Date: "2026-05-02", Time: "10:00"},
		{ID: "b", SeriesID: "s1", Name: "Market Day", Date: "2026-05-09"},
	}
	assert.NoError(t, repo.Save(context.Background(), in))

	out, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, in, out)

	// No temp file left behind after the atomic rename.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileRepository_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "events.json")
	repo := NewFileRepository(path)

	assert.NoError(t, repo.Save(context.Background(), []Event{{ID: "a", Name: "X", Date: "2026-05-02"}}))

	out, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestFileRepository_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	repo := NewFileRepository(path)

	assert.NoError(t, repo.Save(context.Background(), []Event{{ID: "a", Name: "X", Date: "2026-05-02"}}))
	assert.NoError(t, repo.Save(context.Background(), []Event{}))

	out, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, out)
}
