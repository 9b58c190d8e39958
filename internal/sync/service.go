// Package sync bridges the remote backend and the local state store.
// Local state only ever reflects server-confirmed facts: every
// operation validates its payload, issues the HTTP call, and dispatches
// a transition carrying the server's returned representation only after
// a confirmed success. Failures are propagated to the caller without
// retries and leave local state exactly as it was.
package sync

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/state"
)

type Service struct {
	api      *api.Client
	store    *state.Store
	validate *validator.Validate
	log      zerolog.Logger
}

func NewService(backend *api.Client, store *state.Store, log zerolog.Logger) *Service {
	return &Service{
		api:      backend,
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// checkValid runs struct validation before any network call. A failure
// here is a pure client-side rejection: no request is sent and no state
// changes.
func (s *Service) checkValid(payload any) error {
	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}
	return nil
}

// Pull refreshes every collection from the backend in one pass. Clients
// load before projects so the first denormalization already sees them;
// the reducer recomputes references on each step regardless.
func (s *Service) Pull(ctx context.Context) error {
	me, err := s.api.CurrentUser(ctx)
	if err != nil {
		return err
	}
	s.store.Dispatch(state.SetCurrentUser{User: *me})

	clients, err := s.api.ListClients(ctx)
	if err != nil {
		return err
	}
	s.store.Dispatch(state.SetClients{Clients: clients})

	projects, err := s.api.ListProjects(ctx, api.ProjectFilter{})
	if err != nil {
		return err
	}
	s.store.Dispatch(state.SetProjects{Projects: projects})

	entries, err := s.api.ListTimeEntries(ctx, api.EntryFilter{UserID: me.ID})
	if err != nil {
		return err
	}
	s.store.Dispatch(state.SetTimeEntries{Entries: entries})

	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	s.store.Dispatch(state.SetUsers{Users: users})

	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		return err
	}
	s.store.Dispatch(state.SetTeams{Teams: teams})

	s.log.Info().
		Int("clients", len(clients)).
		Int("projects", len(projects)).
		Int("entries", len(entries)).
		Msg("pulled collections from backend")
	return nil
}
