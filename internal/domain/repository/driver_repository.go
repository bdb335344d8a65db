package repository

import (
	"context"
	"errors"

	"ridehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDriverNotFound is a domain-specific error returned when a driver is not found.
var ErrDriverNotFound = errors.New("driver not found")

// DriverRepository defines the standard operations for driver persistence.
// Drivers are stored apart from riders; the two collections never share ids
// or uniqueness constraints.
type DriverRepository interface {
	// FindByID retrieves a single driver by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error)

	// FindByEmail retrieves a single driver by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Driver, error)

	// Create persists a new driver.
	Create(ctx context.Context, driver *entity.Driver) error
}
