package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mvankuipers/tally/internal/domain"
)

type TeamRequest struct {
	Name      string   `json:"name" validate:"required"`
	ManagerID string   `json:"managerId" validate:"required"`
	MemberIDs []string `json:"memberIds"`
}

func (c *Client) ListTeams(ctx context.Context) ([]domain.Team, error) {
	var teams []domain.Team
	if err := c.do(ctx, http.MethodGet, "/teams", nil, &teams); err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	return teams, nil
}

func (c *Client) CreateTeam(ctx context.Context, req TeamRequest) (*domain.Team, error) {
	var created domain.Team
	if err := c.do(ctx, http.MethodPost, "/teams", req, &created); err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateTeam(ctx context.Context, id string, req TeamRequest) (*domain.Team, error) {
	var updated domain.Team
	if err := c.do(ctx, http.MethodPut, "/teams/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("updating team %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteTeam(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/teams/"+id, nil, nil); err != nil {
		return fmt.Errorf("deleting team %s: %w", id, err)
	}
	return nil
}
