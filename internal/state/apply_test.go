package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvankuipers/tally/internal/domain"
)

func client(id, name string, active bool) domain.Client {
	return domain.Client{ID: id, Name: name, IsActive: active}
}

func project(id, clientID, name string) domain.Project {
	return domain.Project{ID: id, ClientID: clientID, Name: name, Status: domain.ProjectActive}
}

func entry(id, projectID string, status domain.EntryStatus) domain.TimeEntry {
	return domain.TimeEntry{ID: id, ProjectID: projectID, Duration: 60, Status: status}
}

func TestApply_DenormalizesProjectClients(t *testing.T) {
	s := Apply(State{}, SetClients{Clients: []domain.Client{client("c1", "Acme", true)}})
	s = Apply(s, SetProjects{Projects: []domain.Project{project("p1", "c1", "Website"), project("p2", "ghost", "Orphan")}})

	require.Len(t, s.Projects, 2)
	require.NotNil(t, s.Projects[0].Client)
	assert.Equal(t, "Acme", s.Projects[0].Client.Name)
	assert.Nil(t, s.Projects[1].Client, "missing client resolves to nil reference")
}

func TestApply_ClientUpdateRefreshesProjectReferences(t *testing.T) {
	s := Apply(State{}, SetClients{Clients: []domain.Client{client("c1", "Acme", true)}})
	s = Apply(s, SetProjects{Projects: []domain.Project{project("p1", "c1", "Website")}})

	renamed := client("c1", "Acme Corp", true)
	s = Apply(s, UpdateClient{Client: renamed})

	require.NotNil(t, s.Projects[0].Client)
	assert.Equal(t, "Acme Corp", s.Projects[0].Client.Name)
}

func TestApply_DeactivatingClientIsNotCascadingDeletion(t *testing.T) {
	s := Apply(State{}, SetClients{Clients: []domain.Client{client("c1", "Acme", true)}})
	s = Apply(s, SetProjects{Projects: []domain.Project{project("p1", "c1", "Website")}})

	s = Apply(s, UpdateClient{Client: client("c1", "Acme", false)})

	require.Len(t, s.Projects, 1, "deactivation must not remove projects")
	require.NotNil(t, s.Projects[0].Client)
	assert.False(t, s.Projects[0].Client.IsActive)
}

func TestApply_DeleteClientCascades(t *testing.T) {
	s := Apply(State{}, SetClients{Clients: []domain.Client{
		client("c1", "Acme", true),
		client("c2", "Globex", true),
	}})
	s = Apply(s, SetProjects{Projects: []domain.Project{
		project("p1", "c1", "Website"),
		project("p2", "c1", "App"),
		project("p3", "c2", "Audit"),
	}})
	s = Apply(s, SetTimeEntries{Entries: []domain.TimeEntry{
		entry("e1", "p1", domain.EntryDraft),
		entry("e2", "p3", domain.EntryDraft),
	}})

	s = Apply(s, DeleteClient{ID: "c1"})

	assert.Len(t, s.Clients, 1)
	require.Len(t, s.Projects, 1)
	assert.Equal(t, "p3", s.Projects[0].ID)
	require.Len(t, s.TimeEntries, 1)
	assert.Equal(t, "e2", s.TimeEntries[0].ID)
}

func TestApply_UntouchedCollectionsKeepIdentity(t *testing.T) {
	s := Apply(State{}, SetClients{Clients: []domain.Client{client("c1", "Acme", true)}})
	s = Apply(s, SetTimeEntries{Entries: []domain.TimeEntry{entry("e1", "p1", domain.EntryDraft)}})
	s = Apply(s, SetUsers{Users: []domain.User{{ID: "u1", Name: "Dana"}}})

	before := s
	after := Apply(s, AddTimeEntry{Entry: entry("e2", "p1", domain.EntryDraft)})

	// Entries changed, everything else keeps its slice identity.
	assert.Len(t, after.TimeEntries, 2)
	assert.Len(t, before.TimeEntries, 1, "input state must not be mutated")
	assert.Same(t, &before.Clients[0], &after.Clients[0])
	assert.Same(t, &before.Users[0], &after.Users[0])
}

func TestApply_UpdateDoesNotMutateInput(t *testing.T) {
	s := Apply(State{}, SetTimeEntries{Entries: []domain.TimeEntry{entry("e1", "p1", domain.EntryDraft)}})

	changed := s.TimeEntries[0]
	changed.Description = "revised"
	after := Apply(s, UpdateTimeEntry{Entry: changed})

	assert.Equal(t, "", s.TimeEntries[0].Description, "input tree unchanged")
	assert.Equal(t, "revised", after.TimeEntries[0].Description)
}

type bogusTransition struct{}

func (bogusTransition) isTransition() {}

func TestApply_UnknownTransitionIsNoOp(t *testing.T) {
	s := Apply(State{}, SetClients{Clients: []domain.Client{client("c1", "Acme", true)}})

	after := Apply(s, bogusTransition{})

	assert.Equal(t, s, after)
}

func TestApply_TimerLifecycle(t *testing.T) {
	started := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	s := Apply(State{}, StartTimer{ProjectID: "p1", Description: "design review", StartedAt: started})
	require.True(t, s.Timer.IsRunning)
	require.NotNil(t, s.Timer.StartTime)
	assert.Equal(t, started, *s.Timer.StartTime)
	assert.Equal(t, "p1", s.Timer.CurrentProjectID)
	assert.Equal(t, time.Duration(0), s.Timer.Elapsed)

	s = Apply(s, UpdateTimerTime{Elapsed: 125 * time.Second})
	assert.Equal(t, 125*time.Second, s.Timer.Elapsed)
	assert.Equal(t, "p1", s.Timer.CurrentProjectID, "tick only touches elapsed time")

	s = Apply(s, StopTimer{})
	assert.Equal(t, domain.IdleTimer(), s.Timer)
	assert.Empty(t, s.TimeEntries, "stop must not synthesize an entry")
}

func TestApply_StopTimerIsIdempotent(t *testing.T) {
	s := Apply(State{}, StopTimer{})
	assert.Equal(t, domain.IdleTimer(), s.Timer)
}

func TestApply_UpdateUserRefreshesCurrentUser(t *testing.T) {
	s := Apply(State{}, SetUsers{Users: []domain.User{{ID: "u1", Name: "Dana", Role: domain.RoleEmployee}}})
	s = Apply(s, SetCurrentUser{User: domain.User{ID: "u1", Name: "Dana", Role: domain.RoleEmployee}})

	s = Apply(s, UpdateUser{User: domain.User{ID: "u1", Name: "Dana", Role: domain.RoleManager}})

	require.NotNil(t, s.CurrentUser)
	assert.Equal(t, domain.RoleManager, s.CurrentUser.Role)
}

func TestApply_DeleteProjectKeepsOtherProjects(t *testing.T) {
	s := Apply(State{}, SetClients{Clients: []domain.Client{client("c1", "Acme", true)}})
	s = Apply(s, SetProjects{Projects: []domain.Project{
		project("p1", "c1", "Website"),
		project("p2", "c1", "App"),
	}})

	s = Apply(s, DeleteProject{ID: "p1"})

	require.Len(t, s.Projects, 1)
	assert.Equal(t, "p2", s.Projects[0].ID)
	require.NotNil(t, s.Projects[0].Client, "references recomputed after delete")
}
