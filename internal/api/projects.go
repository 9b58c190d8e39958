package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mvankuipers/tally/internal/domain"
)

type ProjectRequest struct {
	ClientID    string         `json:"clientId" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description,omitempty"`
	Budget      *domain.Budget `json:"budget,omitempty"`
	HourlyRate  float64        `json:"hourlyRate" validate:"gte=0"`
	Status      string         `json:"status" validate:"required,oneof=active inactive completed"`
}

type ProjectFilter struct {
	ClientID string
	Status   string
}

func (f ProjectFilter) query() string {
	q := url.Values{}
	if f.ClientID != "" {
		q.Set("clientId", f.ClientID)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) ListProjects(ctx context.Context, filter ProjectFilter) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.do(ctx, http.MethodGet, "/projects"+filter.query(), nil, &projects); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (*domain.Project, error) {
	var created domain.Project
	if err := c.do(ctx, http.MethodPost, "/projects", req, &created); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, req ProjectRequest) (*domain.Project, error) {
	var updated domain.Project
	if err := c.do(ctx, http.MethodPut, "/projects/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("updating project %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil); err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	return nil
}
