package state

import "github.com/mvankuipers/tally/internal/domain"

// State is the single source of truth for all domain collections. It is
// a value type: Apply never mutates a State in place, and collections
// that a transition does not touch keep their slice identity so callers
// can cheaply detect what changed.
type State struct {
	TimeEntries []domain.TimeEntry
	Projects    []domain.Project
	Clients     []domain.Client
	Users       []domain.User
	Teams       []domain.Team
	Timer       domain.TimerState
	CurrentUser *domain.User
}

// EntryByID looks up a time entry in the current tree.
func (s State) EntryByID(id string) (domain.TimeEntry, bool) {
	for _, e := range s.TimeEntries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.TimeEntry{}, false
}

// ProjectByID looks up a project in the current tree.
func (s State) ProjectByID(id string) (domain.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

// ClientByID looks up a client in the current tree.
func (s State) ClientByID(id string) (domain.Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}

// denormalizeProjects returns a new project slice with every Client
// pointer recomputed from ClientID against the given client collection.
// Projects referencing a missing client get a nil Client.
func denormalizeProjects(projects []domain.Project, clients []domain.Client) []domain.Project {
	byID := make(map[string]domain.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	out := make([]domain.Project, len(projects))
	for i, p := range projects {
		if c, ok := byID[p.ClientID]; ok {
			cc := c
			p.Client = &cc
		} else {
			p.Client = nil
		}
		out[i] = p
	}
	return out
}
