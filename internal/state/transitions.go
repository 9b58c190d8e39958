package state

import (
	"time"

	"github.com/mvankuipers/tally/internal/domain"
)

// Transition is a sealed sum type: exactly one variant per state change
// the reducer understands. The unexported marker method keeps outside
// packages from inventing new kinds the reducer cannot handle.
type Transition interface {
	isTransition()
}

// Time entry collection.

type SetTimeEntries struct{ Entries []domain.TimeEntry }
type AddTimeEntry struct{ Entry domain.TimeEntry }
type UpdateTimeEntry struct{ Entry domain.TimeEntry }
type DeleteTimeEntry struct{ ID string }

// Project collection.

type SetProjects struct{ Projects []domain.Project }
type AddProject struct{ Project domain.Project }
type UpdateProject struct{ Project domain.Project }
type DeleteProject struct{ ID string }

// Client collection. DeleteClient cascades: dependent projects and
// their time entries are removed in the same transition.

type SetClients struct{ Clients []domain.Client }
type AddClient struct{ Client domain.Client }
type UpdateClient struct{ Client domain.Client }
type DeleteClient struct{ ID string }

// Users and teams.

type SetUsers struct{ Users []domain.User }
type UpdateUser struct{ User domain.User }
type SetCurrentUser struct{ User domain.User }

type SetTeams struct{ Teams []domain.Team }
type AddTeam struct{ Team domain.Team }
type UpdateTeam struct{ Team domain.Team }
type DeleteTeam struct{ ID string }

// Timer singleton.

type StartTimer struct {
	ProjectID   string
	Description string
	StartedAt   time.Time
}

// UpdateTimerTime overwrites elapsed time only; every other timer field
// is untouched.
type UpdateTimerTime struct{ Elapsed time.Duration }

// StopTimer resets the timer to its idle shape. It never creates a time
// entry; persisting the tracked block is the sync layer's job.
type StopTimer struct{}

func (SetTimeEntries) isTransition()  {}
func (AddTimeEntry) isTransition()    {}
func (UpdateTimeEntry) isTransition() {}
func (DeleteTimeEntry) isTransition() {}
func (SetProjects) isTransition()     {}
func (AddProject) isTransition()      {}
func (UpdateProject) isTransition()   {}
func (DeleteProject) isTransition()   {}
func (SetClients) isTransition()      {}
func (AddClient) isTransition()       {}
func (UpdateClient) isTransition()    {}
func (DeleteClient) isTransition()    {}
func (SetUsers) isTransition()        {}
func (UpdateUser) isTransition()      {}
func (SetCurrentUser) isTransition()  {}
func (SetTeams) isTransition()        {}
func (AddTeam) isTransition()         {}
func (UpdateTeam) isTransition()      {}
func (DeleteTeam) isTransition()      {}
func (StartTimer) isTransition()      {}
func (UpdateTimerTime) isTransition() {}
func (StopTimer) isTransition()       {}
