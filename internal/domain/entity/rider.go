package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rider represents a passenger account. It carries only identity data; ride
// history and realtime state live in other services.
type Rider struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"` // Never serialized to clients.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
