package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvankuipers/tally/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "tally.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndLoadTimer(t *testing.T) {
	db := openTestDB(t)
	started := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)

	err := db.SaveTimer(domain.TimerState{
		IsRunning:          true,
		StartTime:          &started,
		CurrentProjectID:   "p1",
		CurrentDescription: "deep work",
	})
	require.NoError(t, err)

	loaded, err := db.LoadTimer()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.IsRunning)
	assert.Equal(t, "p1", loaded.CurrentProjectID)
	assert.Equal(t, "deep work", loaded.CurrentDescription)
	require.NotNil(t, loaded.StartTime)
	assert.True(t, started.Equal(*loaded.StartTime))
}

func TestSaveTimer_OverwritesPreviousRun(t *testing.T) {
	db := openTestDB(t)
	first := time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	require.NoError(t, db.SaveTimer(domain.TimerState{IsRunning: true, StartTime: &first, CurrentProjectID: "p1"}))
	require.NoError(t, db.SaveTimer(domain.TimerState{IsRunning: true, StartTime: &second, CurrentProjectID: "p2"}))

	loaded, err := db.LoadTimer()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "p2", loaded.CurrentProjectID)
	assert.True(t, second.Equal(*loaded.StartTime))
}

func TestSaveTimer_IdleStateClearsRow(t *testing.T) {
	db := openTestDB(t)
	started := time.Now().UTC()
	require.NoError(t, db.SaveTimer(domain.TimerState{IsRunning: true, StartTime: &started, CurrentProjectID: "p1"}))

	require.NoError(t, db.SaveTimer(domain.IdleTimer()))

	loaded, err := db.LoadTimer()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadTimer_EmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	loaded, err := db.LoadTimer()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestClearTimer_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.ClearTimer())
	require.NoError(t, db.ClearTimer())
}

func TestStateKeyValue(t *testing.T) {
	db := openTestDB(t)

	val, err := db.GetState("last_pull")
	require.NoError(t, err)
	assert.Empty(t, val, "missing key reads as empty")

	require.NoError(t, db.SetState("last_pull", "2026-08-26T09:00:00Z"))
	require.NoError(t, db.SetState("last_pull", "2026-08-26T10:00:00Z"))

	val, err = db.GetState("last_pull")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-26T10:00:00Z", val, "set overwrites")
}
