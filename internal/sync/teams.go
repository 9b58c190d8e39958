package sync

import (
	"context"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/domain"
	"github.com/mvankuipers/tally/internal/state"
)

func (s *Service) LoadTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.SetTeams{Teams: teams})
	return teams, nil
}

func (s *Service) CreateTeam(ctx context.Context, req api.TeamRequest) (*domain.Team, error) {
	if err := s.checkValid(req); err != nil {
		return nil, err
	}
	created, err := s.api.CreateTeam(ctx, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.AddTeam{Team: *created})
	return created, nil
}

func (s *Service) UpdateTeam(ctx context.Context, id string, req api.TeamRequest) (*domain.Team, error) {
	if err := s.checkValid(req); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateTeam(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.UpdateTeam{Team: *updated})
	return updated, nil
}

func (s *Service) DeleteTeam(ctx context.Context, id string) error {
	if err := s.api.DeleteTeam(ctx, id); err != nil {
		return err
	}
	s.store.Dispatch(state.DeleteTeam{ID: id})
	return nil
}
