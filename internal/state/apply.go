package state

import "github.com/mvankuipers/tally/internal/domain"

// Apply is the transition processor: a pure function from (state,
// transition) to the next state. Unrecognized transitions return the
// input unchanged. Any transition that touches clients or projects
// recomputes every project's denormalized client reference so stale
// references never survive a mutation.
func Apply(s State, t Transition) State {
	switch t := t.(type) {

	case SetTimeEntries:
		s.TimeEntries = copyEntries(t.Entries)

	case AddTimeEntry:
		entries := make([]domain.TimeEntry, 0, len(s.TimeEntries)+1)
		entries = append(entries, s.TimeEntries...)
		entries = append(entries, t.Entry)
		s.TimeEntries = entries

	case UpdateTimeEntry:
		entries := copyEntries(s.TimeEntries)
		for i := range entries {
			if entries[i].ID == t.Entry.ID {
				entries[i] = t.Entry
			}
		}
		s.TimeEntries = entries

	case DeleteTimeEntry:
		entries := make([]domain.TimeEntry, 0, len(s.TimeEntries))
		for _, e := range s.TimeEntries {
			if e.ID != t.ID {
				entries = append(entries, e)
			}
		}
		s.TimeEntries = entries

	case SetProjects:
		s.Projects = denormalizeProjects(t.Projects, s.Clients)

	case AddProject:
		projects := make([]domain.Project, 0, len(s.Projects)+1)
		projects = append(projects, s.Projects...)
		projects = append(projects, t.Project)
		s.Projects = denormalizeProjects(projects, s.Clients)

	case UpdateProject:
		projects := copyProjects(s.Projects)
		for i := range projects {
			if projects[i].ID == t.Project.ID {
				projects[i] = t.Project
			}
		}
		s.Projects = denormalizeProjects(projects, s.Clients)

	case DeleteProject:
		projects := make([]domain.Project, 0, len(s.Projects))
		for _, p := range s.Projects {
			if p.ID != t.ID {
				projects = append(projects, p)
			}
		}
		s.Projects = denormalizeProjects(projects, s.Clients)

	case SetClients:
		s.Clients = copyClients(t.Clients)
		s.Projects = denormalizeProjects(s.Projects, s.Clients)

	case AddClient:
		clients := make([]domain.Client, 0, len(s.Clients)+1)
		clients = append(clients, s.Clients...)
		clients = append(clients, t.Client)
		s.Clients = clients
		s.Projects = denormalizeProjects(s.Projects, s.Clients)

	case UpdateClient:
		clients := copyClients(s.Clients)
		for i := range clients {
			if clients[i].ID == t.Client.ID {
				clients[i] = t.Client
			}
		}
		s.Clients = clients
		s.Projects = denormalizeProjects(s.Projects, s.Clients)

	case DeleteClient:
		s = applyDeleteClient(s, t.ID)

	case SetUsers:
		users := make([]domain.User, len(t.Users))
		copy(users, t.Users)
		s.Users = users

	case UpdateUser:
		users := make([]domain.User, len(s.Users))
		copy(users, s.Users)
		for i := range users {
			if users[i].ID == t.User.ID {
				users[i] = t.User
			}
		}
		s.Users = users
		if s.CurrentUser != nil && s.CurrentUser.ID == t.User.ID {
			u := t.User
			s.CurrentUser = &u
		}

	case SetCurrentUser:
		u := t.User
		s.CurrentUser = &u

	case SetTeams:
		teams := make([]domain.Team, len(t.Teams))
		copy(teams, t.Teams)
		s.Teams = teams

	case AddTeam:
		teams := make([]domain.Team, 0, len(s.Teams)+1)
		teams = append(teams, s.Teams...)
		teams = append(teams, t.Team)
		s.Teams = teams

	case UpdateTeam:
		teams := make([]domain.Team, len(s.Teams))
		copy(teams, s.Teams)
		for i := range teams {
			if teams[i].ID == t.Team.ID {
				teams[i] = t.Team
			}
		}
		s.Teams = teams

	case DeleteTeam:
		teams := make([]domain.Team, 0, len(s.Teams))
		for _, tm := range s.Teams {
			if tm.ID != t.ID {
				teams = append(teams, tm)
			}
		}
		s.Teams = teams

	case StartTimer:
		started := t.StartedAt
		s.Timer = domain.TimerState{
			IsRunning:          true,
			StartTime:          &started,
			CurrentProjectID:   t.ProjectID,
			CurrentDescription: t.Description,
			Elapsed:            0,
		}

	case UpdateTimerTime:
		s.Timer.Elapsed = t.Elapsed

	case StopTimer:
		s.Timer = domain.IdleTimer()
	}

	return s
}

// applyDeleteClient removes the client, every project that referenced
// it, and the time entries of those projects.
func applyDeleteClient(s State, clientID string) State {
	clients := make([]domain.Client, 0, len(s.Clients))
	for _, c := range s.Clients {
		if c.ID != clientID {
			clients = append(clients, c)
		}
	}

	removed := make(map[string]bool)
	projects := make([]domain.Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		if p.ClientID == clientID {
			removed[p.ID] = true
			continue
		}
		projects = append(projects, p)
	}

	entries := make([]domain.TimeEntry, 0, len(s.TimeEntries))
	for _, e := range s.TimeEntries {
		if !removed[e.ProjectID] {
			entries = append(entries, e)
		}
	}

	s.Clients = clients
	s.Projects = denormalizeProjects(projects, clients)
	s.TimeEntries = entries
	return s
}

func copyEntries(in []domain.TimeEntry) []domain.TimeEntry {
	out := make([]domain.TimeEntry, len(in))
	copy(out, in)
	return out
}

func copyProjects(in []domain.Project) []domain.Project {
	out := make([]domain.Project, len(in))
	copy(out, in)
	return out
}

func copyClients(in []domain.Client) []domain.Client {
	out := make([]domain.Client, len(in))
	copy(out, in)
	return out
}
