package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mvankuipers/tally/internal/domain"
)

// SaveTimer stores the running timer. Only one row ever exists; an idle
// timer is represented by the row's absence.
func (db *DB) SaveTimer(ts domain.TimerState) error {
	if !ts.IsRunning || ts.StartTime == nil {
		return db.ClearTimer()
	}
	_, err := db.Exec(
		`INSERT INTO timer (id, project_id, description, started_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET project_id = excluded.project_id,
			description = excluded.description, started_at = excluded.started_at`,
		ts.CurrentProjectID, ts.CurrentDescription, ts.StartTime.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving timer: %w", err)
	}
	return nil
}

// LoadTimer returns the persisted running timer, or nil when idle.
func (db *DB) LoadTimer() (*domain.TimerState, error) {
	var projectID, description, startedStr string
	err := db.QueryRow("SELECT project_id, description, started_at FROM timer WHERE id = 1").
		Scan(&projectID, &description, &startedStr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading timer: %w", err)
	}

	started, err := time.Parse(time.RFC3339, startedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing timer start time: %w", err)
	}

	return &domain.TimerState{
		IsRunning:          true,
		StartTime:          &started,
		CurrentProjectID:   projectID,
		CurrentDescription: description,
	}, nil
}

// ClearTimer removes the persisted timer row.
func (db *DB) ClearTimer() error {
	if _, err := db.Exec("DELETE FROM timer WHERE id = 1"); err != nil {
		return fmt.Errorf("clearing timer: %w", err)
	}
	return nil
}
