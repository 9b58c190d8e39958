package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mvankuipers/tally/internal/domain"
)

type ClientRequest struct {
	Name           string             `json:"name" validate:"required"`
	ContactInfo    domain.ContactInfo `json:"contactInfo"`
	BillingAddress string             `json:"billingAddress,omitempty"`
	IsActive       bool               `json:"isActive"`
}

func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := c.do(ctx, http.MethodGet, "/clients", nil, &clients); err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	return clients, nil
}

func (c *Client) CreateClient(ctx context.Context, req ClientRequest) (*domain.Client, error) {
	var created domain.Client
	if err := c.do(ctx, http.MethodPost, "/clients", req, &created); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, req ClientRequest) (*domain.Client, error) {
	var updated domain.Client
	if err := c.do(ctx, http.MethodPut, "/clients/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("updating client %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/clients/"+id, nil, nil); err != nil {
		return fmt.Errorf("deleting client %s: %w", id, err)
	}
	return nil
}
