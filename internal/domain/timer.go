package domain

import "time"

// TimerState is the singleton live-timer snapshot. It is process-local
// and never sent to the backend; stopping the timer turns it into a
// draft time entry through the sync layer.
type TimerState struct {
	IsRunning          bool
	StartTime          *time.Time
	CurrentProjectID   string
	CurrentDescription string
	Elapsed            time.Duration
}

// IdleTimer returns the zero-value shape the timer resets to on stop.
func IdleTimer() TimerState {
	return TimerState{}
}
