// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ridehub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterRiderInput defines the data required to register a new rider.
type RegisterRiderInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a principal of either kind to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LogoutInput carries the raw session token being revoked.
type LogoutInput struct {
	Token string
}

// --- Output DTOs ---

// RegisterRiderOutput returns the newly created rider and their session token.
type RegisterRiderOutput struct {
	Token string
	Rider *entity.Rider
}

// LoginRiderOutput returns the session token after a successful login.
type LoginRiderOutput struct {
	Token string
	Rider *entity.Rider
}

// RiderUsecase defines the interface for rider account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type RiderUsecase interface {
	Register(ctx context.Context, input *RegisterRiderInput) (*RegisterRiderOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginRiderOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	GetProfile(ctx context.Context, riderID uuid.UUID) (*entity.Rider, error)
}
