package domain

import "time"

// Budget caps a project by hours, amount, or both. Zero means uncapped.
type Budget struct {
	Hours  float64 `json:"hours,omitempty"`
	Amount float64 `json:"amount,omitempty"`
}

type Project struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"clientId"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Budget      *Budget       `json:"budget,omitempty"`
	HourlyRate  float64       `json:"hourlyRate"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Client is denormalized from ClientID against the client collection.
	// Never sent over the wire; recomputed after every client or project
	// mutation so it cannot go stale.
	Client *Client `json:"-"`
}

// IsActive reports whether new time may be logged against the project.
func (p *Project) IsActive() bool {
	return p.Status == ProjectActive
}
