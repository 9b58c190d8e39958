// Package timer drives the live-timer singleton in the state store.
// The timer itself never touches the time entry collection: stopping
// hands the accumulated block to the sync layer, which only updates
// state on a server-confirmed create.
package timer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/domain"
	"github.com/mvankuipers/tally/internal/state"
)

var (
	// ErrNoProject indicates a start attempt without a selected project.
	ErrNoProject = errors.New("no project selected")

	// ErrAlreadyRunning indicates a start attempt while the timer runs.
	ErrAlreadyRunning = errors.New("timer already running")

	// ErrNotRunning indicates a stop attempt on an idle timer.
	ErrNotRunning = errors.New("timer is not running")
)

// EntryCreator persists a stopped timer block as a draft time entry.
// Satisfied by *sync.Service.
type EntryCreator interface {
	CreateEntry(ctx context.Context, req api.TimeEntryRequest) (*domain.TimeEntry, error)
}

// Persister carries the running timer across process restarts.
// Satisfied by *store.DB. May be nil for a purely in-memory timer.
type Persister interface {
	SaveTimer(ts domain.TimerState) error
	LoadTimer() (*domain.TimerState, error)
	ClearTimer() error
}

type Timer struct {
	store   *state.Store
	entries EntryCreator
	persist Persister
	clock   func() time.Time
	log     zerolog.Logger
}

func New(store *state.Store, entries EntryCreator, persist Persister, log zerolog.Logger) *Timer {
	return &Timer{
		store:   store,
		entries: entries,
		persist: persist,
		clock:   time.Now,
		log:     log,
	}
}

// WithClock substitutes the wall clock. Intended for tests.
func (t *Timer) WithClock(clock func() time.Time) *Timer {
	t.clock = clock
	return t
}

// Start begins tracking against a project. Starting with no project or
// while already running is rejected and leaves state unchanged.
func (t *Timer) Start(projectID, description string) error {
	if projectID == "" {
		return ErrNoProject
	}
	if t.store.State().Timer.IsRunning {
		return ErrAlreadyRunning
	}

	now := t.clock()
	next := t.store.Dispatch(state.StartTimer{
		ProjectID:   projectID,
		Description: description,
		StartedAt:   now,
	})

	if t.persist != nil {
		if err := t.persist.SaveTimer(next.Timer); err != nil {
			t.log.Warn().Err(err).Msg("persisting timer state failed")
		}
	}
	t.log.Info().Str("project_id", projectID).Msg("timer started")
	return nil
}

// Tick recomputes elapsed time from the captured start timestamp, so a
// missed tick self-corrects on the next one.
func (t *Timer) Tick() {
	timer := t.store.State().Timer
	if !timer.IsRunning || timer.StartTime == nil {
		return
	}
	t.store.Dispatch(state.UpdateTimerTime{Elapsed: t.clock().Sub(*timer.StartTime)})
}

// Run ticks once a second until the context is cancelled or the timer
// stops running.
func (t *Timer) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !t.store.State().Timer.IsRunning {
				return
			}
			t.Tick()
		}
	}
}

// Elapsed returns the wall-clock time since the timer started, zero
// when idle.
func (t *Timer) Elapsed() time.Duration {
	timer := t.store.State().Timer
	if !timer.IsRunning || timer.StartTime == nil {
		return 0
	}
	return t.clock().Sub(*timer.StartTime)
}

// Stop resets the timer and persists the tracked block as a draft
// entry. The reset is unconditional and happens first: whether or not
// the create call succeeds, the timer ends up idle. Durations round to
// whole minutes with a one-minute floor.
func (t *Timer) Stop(ctx context.Context) (*domain.TimeEntry, error) {
	timer := t.store.State().Timer
	if !timer.IsRunning || timer.StartTime == nil {
		return nil, ErrNotRunning
	}

	now := t.clock()
	start := *timer.StartTime
	elapsed := now.Sub(start)
	projectID := timer.CurrentProjectID
	description := timer.CurrentDescription

	t.store.Dispatch(state.StopTimer{})
	if t.persist != nil {
		if err := t.persist.ClearTimer(); err != nil {
			t.log.Warn().Err(err).Msg("clearing persisted timer failed")
		}
	}

	minutes := int(elapsed.Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	entry, err := t.entries.CreateEntry(ctx, api.TimeEntryRequest{
		ProjectID:   projectID,
		Date:        start.Format("2006-01-02"),
		StartTime:   start.UTC().Format(time.RFC3339),
		EndTime:     now.UTC().Format(time.RFC3339),
		Duration:    minutes,
		Description: description,
		IsBillable:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("saving tracked time: %w", err)
	}

	t.log.Info().Str("entry_id", entry.ID).Int("minutes", minutes).Msg("timer stopped")
	return entry, nil
}

// Restore reloads a previously persisted running timer into the store,
// e.g. after a CLI restart. A timer persisted mid-run resumes with its
// original start timestamp so elapsed time stays wall-clock accurate.
func (t *Timer) Restore() error {
	if t.persist == nil {
		return nil
	}
	saved, err := t.persist.LoadTimer()
	if err != nil {
		return fmt.Errorf("restoring timer state: %w", err)
	}
	if saved == nil || !saved.IsRunning || saved.StartTime == nil {
		return nil
	}
	t.store.Dispatch(state.StartTimer{
		ProjectID:   saved.CurrentProjectID,
		Description: saved.CurrentDescription,
		StartedAt:   *saved.StartTime,
	})
	t.Tick()
	return nil
}
