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

// driverService implements the DriverUsecase interface.
type driverService struct {
	driverRepo       repository.DriverRepository
	revokedTokenRepo repository.RevokedTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// DriverServiceParams holds dependencies for DriverService, injected by Fx.
type DriverServiceParams struct {
	fx.In

	DriverRepo       repository.DriverRepository
	RevokedTokenRepo repository.RevokedTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewDriverService is the constructor for driverService.
func NewDriverService(params DriverServiceParams) usecase.DriverUsecase {
	return &driverService{
		driverRepo:       params.DriverRepo,
		revokedTokenRepo: params.RevokedTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

func (srv *driverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete driver registration process. New
// drivers start in the active status with the vehicle they signed up with.
func (srv *driverService) Register(ctx context.Context, input *usecase.RegisterDriverInput) (*usecase.RegisterDriverOutput, error) {
	email := normalizeEmail(input.Email)

	srv.log(ctx).Info("Starting driver registration", slog.String("email", email))

	vehicleType := entity.VehicleType(input.VehicleType)
	if !vehicleType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown vehicle type")
	}

	if _, err := srv.driverRepo.FindByEmail(ctx, email); err == nil {
		srv.log(ctx).Warn("Driver email already registered", slog.String("email", email))

		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("driver email already registered")
	} else if !errors.Is(err, repository.ErrDriverNotFound) {
		return nil, errors.Wrap(err, "failed to check driver email during registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash driver password")
	}

	newDriver := &entity.Driver{
		Email:        email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: hashedPassword,
		Status:       entity.DriverStatusActive,
		Vehicle: entity.Vehicle{
			Color:    strings.TrimSpace(input.VehicleColor),
			Plate:    strings.TrimSpace(input.VehiclePlate),
			Capacity: input.VehicleCapacity,
			Type:     vehicleType,
		},
		Location: entity.Location{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
	}

	if err := srv.driverRepo.Create(ctx, newDriver); err != nil {
		return nil, errors.Wrap(err, "failed to create driver during registration")
	}

	token, err := srv.tokenService.Issue(newDriver.ID, entity.KindDriver)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token for driver")
	}

	srv.publishAccountEvent(ctx, newDriver.ID, service.AccountEventRegistered)
	srv.log(ctx).Debug("Driver registration completed", slog.Any("driverID", newDriver.ID))

	return &usecase.RegisterDriverOutput{Token: token, Driver: newDriver}, nil
}

// Login orchestrates the driver login process. Unknown email and wrong
// password are indistinguishable to the caller.
func (srv *driverService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginDriverOutput, error) {
	email := normalizeEmail(input.Email)

	srv.log(ctx).Debug("Starting driver login", slog.String("email", email))

	driver, err := srv.driverRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Driver login failed", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, repository.ErrDriverNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("driver login failed")
		}

		return nil, errors.Wrap(err, "failed to load driver for login")
	}

	if !srv.hasher.Check(input.Password, driver.PasswordHash) {
		srv.log(ctx).Warn("Driver login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("driver login failed")
	}

	token, err := srv.tokenService.Issue(driver.ID, entity.KindDriver)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token for driver")
	}

	srv.publishAccountEvent(ctx, driver.ID, service.AccountEventLoggedIn)
	srv.log(ctx).Debug("Driver logged in successfully", slog.Any("driverID", driver.ID))

	return &usecase.LoginDriverOutput{Token: token, Driver: driver}, nil
}

// Logout records the session token's digest in the revocation ledger.
// Idempotent: repeated logouts with the same token all succeed.
func (srv *driverService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting driver logout")

	if input.Token == "" {
		return nil
	}

	claims, err := srv.tokenService.Validate(input.Token)
	if err != nil {
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	revoked := &entity.RevokedToken{
		TokenDigest: srv.tokenService.Digest(input.Token),
		RevokedAt:   time.Now(),
	}

	if err := srv.revokedTokenRepo.Revoke(ctx, revoked); err != nil {
		srv.log(ctx).Error("Failed to record revoked token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke driver session token")
	}

	if claims != nil {
		srv.publishAccountEvent(ctx, claims.PrincipalID, service.AccountEventLoggedOut)
	}
	srv.log(ctx).Info("Driver logged out successfully")

	return nil
}

// GetProfile retrieves a driver by ID for the authenticated profile endpoint.
func (srv *driverService) GetProfile(ctx context.Context, driverID uuid.UUID) (*entity.Driver, error) {
	driver, err := srv.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load driver profile", slog.Any("driverID", driverID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load driver profile")
	}

	return driver, nil
}

func (srv *driverService) publishAccountEvent(ctx context.Context, principalID uuid.UUID, action string) {
	publishAccountEvent(ctx, srv.log(ctx), srv.publisher, principalID, entity.KindDriver, action)
}
