package domain

import "time"

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	HourlyRate *float64  `json:"hourlyRate,omitempty"`
	TeamID     string    `json:"teamId,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ManagerID string    `json:"managerId"`
	MemberIDs []string  `json:"memberIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is an authenticated device session as reported by the backend.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Device     string    `json:"device,omitempty"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	Current    bool      `json:"current"`
}
