// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ridehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRiderNotFound is a domain-specific error returned when a rider is not found.
var ErrRiderNotFound = errors.New("rider not found")

// RiderRepository defines the standard operations for rider persistence.
// The application layer depends on this interface, not the concrete implementation.
type RiderRepository interface {
	// FindByID retrieves a single rider by their unique ID. Used by the
	// access guard to resolve an authenticated identity.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rider, error)

	// FindByEmail retrieves a single rider by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Rider, error)

	// Create persists a new rider. The database unique constraint on email
	// backstops the application-level duplicate check.
	Create(ctx context.Context, rider *entity.Rider) error
}
