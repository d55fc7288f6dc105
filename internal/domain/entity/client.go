// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a salon client.
type Client struct {
	ID        uuid.UUID
	Fullname  string
	Phone     string
	Allergies string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new Client.
func NewClient(fullname, phone, allergies string) *Client {
	now := time.Now().UTC()
	return &Client{
		ID:        uuid.New(),
		Fullname:  fullname,
		Phone:     phone,
		Allergies: allergies,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
