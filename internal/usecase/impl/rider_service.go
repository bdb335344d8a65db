// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "ridehub/internal/delivery/context"
	"ridehub/internal/domain/entity"
	domainerrors "ridehub/internal/domain/errors"
	"ridehub/internal/domain/repository"
	"ridehub/internal/domain/service"
	"ridehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// riderService implements the RiderUsecase interface.
type riderService struct {
	riderRepo        repository.RiderRepository
	revokedTokenRepo repository.RevokedTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// RiderServiceParams holds dependencies for RiderService, injected by Fx.
type RiderServiceParams struct {
	fx.In

	RiderRepo        repository.RiderRepository
	RevokedTokenRepo repository.RevokedTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewRiderService is the constructor for riderService. It receives all dependencies as interfaces.
func NewRiderService(params RiderServiceParams) usecase.RiderUsecase {
	return &riderService{
		riderRepo:        params.RiderRepo,
		revokedTokenRepo: params.RevokedTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *riderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete rider registration process: duplicate
// check, password hashing, persistence and session issuance.
func (srv *riderService) Register(ctx context.Context, input *usecase.RegisterRiderInput) (*usecase.RegisterRiderOutput, error) {
	email := normalizeEmail(input.Email)

	srv.log(ctx).Info("Starting rider registration", slog.String("email", email))

	if _, err := srv.riderRepo.FindByEmail(ctx, email); err == nil {
		srv.log(ctx).Warn("Rider email already registered", slog.String("email", email))

		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("rider email already registered")
	} else if !errors.Is(err, repository.ErrRiderNotFound) {
		return nil, errors.Wrap(err, "failed to check rider email during registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash rider password")
	}

	newRider := &entity.Rider{
		Email:        email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: hashedPassword,
	}

	if err := srv.riderRepo.Create(ctx, newRider); err != nil {
		return nil, errors.Wrap(err, "failed to create rider during registration")
	}

	token, err := srv.tokenService.Issue(newRider.ID, entity.KindRider)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token for rider")
	}

	srv.publishAccountEvent(ctx, newRider.ID, service.AccountEventRegistered)
	srv.log(ctx).Debug("Rider registration completed", slog.Any("riderID", newRider.ID))

	return &usecase.RegisterRiderOutput{Token: token, Rider: newRider}, nil
}

// Login orchestrates the rider login process. Unknown email and wrong
// password are indistinguishable to the caller.
func (srv *riderService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginRiderOutput, error) {
	email := normalizeEmail(input.Email)

	srv.log(ctx).Debug("Starting rider login", slog.String("email", email))

	rider, err := srv.riderRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Rider login failed", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, repository.ErrRiderNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("rider login failed")
		}

		return nil, errors.Wrap(err, "failed to load rider for login")
	}

	// bcrypt is CPU-bound; check happens outside any DB work.
	if !srv.hasher.Check(input.Password, rider.PasswordHash) {
		srv.log(ctx).Warn("Rider login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("rider login failed")
	}

	token, err := srv.tokenService.Issue(rider.ID, entity.KindRider)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token for rider")
	}

	srv.publishAccountEvent(ctx, rider.ID, service.AccountEventLoggedIn)
	srv.log(ctx).Debug("Rider logged in successfully", slog.Any("riderID", rider.ID))

	return &usecase.LoginRiderOutput{Token: token, Rider: rider}, nil
}

// Logout records the session token's digest in the revocation ledger. The
// operation is idempotent and succeeds even when the token is already
// expired or revoked, so repeated logouts never surface an error.
func (srv *riderService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting rider logout")

	if input.Token == "" {
		return nil
	}

	claims, err := srv.tokenService.Validate(input.Token)
	if err != nil {
		// Record the digest anyway; an unparseable token in the ledger is harmless.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	revoked := &entity.RevokedToken{
		TokenDigest: srv.tokenService.Digest(input.Token),
		RevokedAt:   time.Now(),
	}

	if err := srv.revokedTokenRepo.Revoke(ctx, revoked); err != nil {
		srv.log(ctx).Error("Failed to record revoked token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke rider session token")
	}

	if claims != nil {
		srv.publishAccountEvent(ctx, claims.PrincipalID, service.AccountEventLoggedOut)
	}
	srv.log(ctx).Info("Rider logged out successfully")

	return nil
}

// GetProfile retrieves a rider by ID for the authenticated profile endpoint.
func (srv *riderService) GetProfile(ctx context.Context, riderID uuid.UUID) (*entity.Rider, error) {
	rider, err := srv.riderRepo.FindByID(ctx, riderID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load rider profile", slog.Any("riderID", riderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load rider profile")
	}

	return rider, nil
}

func (srv *riderService) publishAccountEvent(ctx context.Context, principalID uuid.UUID, action string) {
	publishAccountEvent(ctx, srv.log(ctx), srv.publisher, principalID, entity.KindRider, action)
}
