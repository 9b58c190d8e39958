package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mvankuipers/tally/internal/domain"
)

type UserRequest struct {
	Email      string   `json:"email" validate:"required,email"`
	Name       string   `json:"name" validate:"required"`
	Role       string   `json:"role" validate:"required,oneof=admin manager employee"`
	HourlyRate *float64 `json:"hourlyRate,omitempty" validate:"omitempty,gte=0"`
	TeamID     string   `json:"teamId,omitempty"`
	IsActive   bool     `json:"isActive"`
}

// SecuritySettingsRequest updates a user's account security options.
type SecuritySettingsRequest struct {
	Password            string `json:"password,omitempty" validate:"omitempty,min=12"`
	TwoFactorEnabled    bool   `json:"twoFactorEnabled"`
	SessionTimeoutHours int    `json:"sessionTimeoutHours,omitempty" validate:"omitempty,gte=1,lte=720"`
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// CurrentUser returns the account behind the bearer token.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req UserRequest) (*domain.User, error) {
	var updated domain.User
	if err := c.do(ctx, http.MethodPut, "/users/"+id, req, &updated); err != nil {
		return nil, fmt.Errorf("updating user %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) ListSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := c.do(ctx, http.MethodGet, "/users/"+userID+"/sessions", nil, &sessions); err != nil {
		return nil, fmt.Errorf("listing sessions for user %s: %w", userID, err)
	}
	return sessions, nil
}

func (c *Client) TerminateSession(ctx context.Context, userID, sessionID string) error {
	if err := c.do(ctx, http.MethodDelete, "/users/"+userID+"/sessions/"+sessionID, nil, nil); err != nil {
		return fmt.Errorf("terminating session %s: %w", sessionID, err)
	}
	return nil
}

func (c *Client) UpdateSecuritySettings(ctx context.Context, userID string, req SecuritySettingsRequest) error {
	if err := c.do(ctx, http.MethodPut, "/users/"+userID+"/security", req, nil); err != nil {
		return fmt.Errorf("updating security settings for user %s: %w", userID, err)
	}
	return nil
}
