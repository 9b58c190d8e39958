package domain

import "time"

type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type Client struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	ContactInfo    ContactInfo `json:"contactInfo"`
	BillingAddress string      `json:"billingAddress,omitempty"`
	IsActive       bool        `json:"isActive"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
