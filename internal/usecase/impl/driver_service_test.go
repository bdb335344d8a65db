package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ridehub/internal/domain/entity"
	domainerrors "ridehub/internal/domain/errors"
	"ridehub/internal/domain/repository"
	"ridehub/internal/domain/service"
	mockRepo "ridehub/internal/mocks/repository"
	mockSvc "ridehub/internal/mocks/service"
	"ridehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type driverServiceFixtures struct {
	service          usecase.DriverUsecase
	driverRepo       *mockRepo.MockDriverRepository
	revokedTokenRepo *mockRepo.MockRevokedTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	publisher        *mockSvc.MockEventPublisher
}

func createTestDriverService(t *testing.T) driverServiceFixtures {
	driverRepo := mockRepo.NewMockDriverRepository(t)
	revokedTokenRepo := mockRepo.NewMockRevokedTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDriverService(DriverServiceParams{
		DriverRepo:       driverRepo,
		RevokedTokenRepo: revokedTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Publisher:        publisher,
		Logger:           logger,
	})

	return driverServiceFixtures{
		service:          service,
		driverRepo:       driverRepo,
		revokedTokenRepo: revokedTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		publisher:        publisher,
	}
}

func validRegisterDriverInput() *usecase.RegisterDriverInput {
	return &usecase.RegisterDriverInput{
		FirstName:       "Bob",
		LastName:        "Jones",
		Email:           "bob@example.com",
		Password:        "password123",
		VehicleColor:    "black",
		VehiclePlate:    "ABC-123",
		VehicleCapacity: 4,
		VehicleType:     "car",
	}
}

func TestDriverService_Register_Success(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	input := validRegisterDriverInput()

	fx.driverRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrDriverNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	driverID := uuid.New()
	fx.driverRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Driver")).
		Run(func(ctx context.Context, driver *entity.Driver) {
			driver.ID = driverID
		}).
		Return(nil)

	fx.tokenService.EXPECT().Issue(driverID, entity.KindDriver).Return("session_token", nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "session_token", output.Token)
	assert.Equal(t, driverID, output.Driver.ID)
	assert.Equal(t, entity.DriverStatusActive, output.Driver.Status)
	assert.Equal(t, entity.Vehicle{
		Color:    "black",
		Plate:    "ABC-123",
		Capacity: 4,
		Type:     entity.VehicleTypeCar,
	}, output.Driver.Vehicle)
}

func TestDriverService_Register_UnknownVehicleType(t *testing.T) {
	fx := createTestDriverService(t)

	input := validRegisterDriverInput()
	input.VehicleType = "spaceship"

	// Rejected before any repository call is made.
	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.driverRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestDriverService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	input := validRegisterDriverInput()

	fx.driverRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.Driver{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestDriverService_Login_Success(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	driver := &entity.Driver{
		ID:           uuid.New(),
		Email:        "bob@example.com",
		PasswordHash: "hashed_password",
		Status:       entity.DriverStatusActive,
	}

	fx.driverRepo.EXPECT().FindByEmail(ctx, driver.Email).Return(driver, nil)
	fx.hasher.EXPECT().Check("password123", driver.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(driver.ID, entity.KindDriver).Return("session_token", nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "bob@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "session_token", output.Token)
	assert.Equal(t, driver, output.Driver)
}

func TestDriverService_Login_WrongPassword(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	driver := &entity.Driver{ID: uuid.New(), Email: "bob@example.com", PasswordHash: "hashed"}

	fx.driverRepo.EXPECT().FindByEmail(ctx, driver.Email).Return(driver, nil)
	fx.hasher.EXPECT().Check("wrong-password", driver.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "bob@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestDriverService_Logout_RevokesDigest(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	driverID := uuid.New()

	fx.tokenService.EXPECT().Validate("session_token").Return(&service.SessionClaims{
		PrincipalID: driverID,
		Kind:        entity.KindDriver,
	}, nil)
	fx.tokenService.EXPECT().Digest("session_token").Return("digest_hex")
	fx.revokedTokenRepo.EXPECT().
		Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).
		Run(func(ctx context.Context, token *entity.RevokedToken) {
			assert.Equal(t, "digest_hex", token.TokenDigest)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{Token: "session_token"})

	assert.NoError(t, err)
}

func TestDriverService_Logout_RevokeFailure(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Validate("session_token").Return(&service.SessionClaims{
		PrincipalID: uuid.New(),
		Kind:        entity.KindDriver,
	}, nil)
	fx.tokenService.EXPECT().Digest("session_token").Return("digest_hex")
	fx.revokedTokenRepo.EXPECT().
		Revoke(ctx, mock.AnythingOfType("*entity.RevokedToken")).
		Return(errors.New("database unavailable"))

	err := fx.service.Logout(ctx, &usecase.LogoutInput{Token: "session_token"})

	assert.Error(t, err)
}

func TestDriverService_GetProfile(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	driver := &entity.Driver{ID: uuid.New(), Email: "bob@example.com"}

	fx.driverRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

	got, err := fx.service.GetProfile(ctx, driver.ID)

	require.NoError(t, err)
	assert.Equal(t, driver, got)
}
