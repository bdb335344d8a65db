package usecase

import (
	"context"

	"ridehub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterDriverInput defines the data required to register a new driver,
// including the vehicle they drive.
type RegisterDriverInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	VehicleColor    string
	VehiclePlate    string
	VehicleCapacity int
	VehicleType     string
	Latitude        float64
	Longitude       float64
}

// --- Output DTOs ---

// RegisterDriverOutput returns the newly created driver and their session token.
type RegisterDriverOutput struct {
	Token  string
	Driver *entity.Driver
}

// LoginDriverOutput returns the session token after a successful login.
type LoginDriverOutput struct {
	Token  string
	Driver *entity.Driver
}

// DriverUsecase defines the interface for driver account operations.
// Drivers are a separate principal population: a rider account can never
// authenticate as a driver, even with the same email and password.
type DriverUsecase interface {
	Register(ctx context.Context, input *RegisterDriverInput) (*RegisterDriverOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginDriverOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	GetProfile(ctx context.Context, driverID uuid.UUID) (*entity.Driver, error)
}
