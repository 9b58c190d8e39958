package sync

import (
	"context"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/domain"
	"github.com/mvankuipers/tally/internal/state"
)

func (s *Service) LoadClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.api.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.SetClients{Clients: clients})
	return clients, nil
}

func (s *Service) CreateClient(ctx context.Context, req api.ClientRequest) (*domain.Client, error) {
	if err := s.checkValid(req); err != nil {
		return nil, err
	}
	created, err := s.api.CreateClient(ctx, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.AddClient{Client: *created})
	return created, nil
}

func (s *Service) UpdateClient(ctx context.Context, id string, req api.ClientRequest) (*domain.Client, error) {
	if err := s.checkValid(req); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateClient(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.UpdateClient{Client: *updated})
	return updated, nil
}

// DeleteClient deletes a client on the server, then removes it and its
// dependent projects (and their entries) from local state in a single
// cascading transition.
func (s *Service) DeleteClient(ctx context.Context, id string) error {
	if err := s.api.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.store.Dispatch(state.DeleteClient{ID: id})
	return nil
}
