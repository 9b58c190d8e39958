package sync

import (
	"context"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/domain"
	"github.com/mvankuipers/tally/internal/state"
)

func (s *Service) LoadProjects(ctx context.Context, filter api.ProjectFilter) ([]domain.Project, error) {
	projects, err := s.api.ListProjects(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.SetProjects{Projects: projects})
	return projects, nil
}

func (s *Service) CreateProject(ctx context.Context, req api.ProjectRequest) (*domain.Project, error) {
	if err := s.checkValid(req); err != nil {
		return nil, err
	}
	created, err := s.api.CreateProject(ctx, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.AddProject{Project: *created})
	return created, nil
}

func (s *Service) UpdateProject(ctx context.Context, id string, req api.ProjectRequest) (*domain.Project, error) {
	if err := s.checkValid(req); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateProject(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(state.UpdateProject{Project: *updated})
	return updated, nil
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if err := s.api.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.store.Dispatch(state.DeleteProject{ID: id})
	return nil
}
