package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ridehub/internal/domain/entity"
	"ridehub/internal/domain/repository"
	"ridehub/internal/domain/service"
	mockRepo "ridehub/internal/mocks/repository"
	mockSvc "ridehub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware  *AuthMiddleware
	tokenSvc    *mockSvc.MockTokenService
	revokedRepo *mockRepo.MockRevokedTokenRepository
	riderRepo   *mockRepo.MockRiderRepository
	driverRepo  *mockRepo.MockDriverRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	revokedRepo := mockRepo.NewMockRevokedTokenRepository(t)
	riderRepo := mockRepo.NewMockRiderRepository(t)
	driverRepo := mockRepo.NewMockDriverRepository(t)

	return authMiddlewareFixtures{
		middleware:  NewAuthMiddleware(tokenSvc, revokedRepo, riderRepo, driverRepo),
		tokenSvc:    tokenSvc,
		revokedRepo: revokedRepo,
		riderRepo:   riderRepo,
		driverRepo:  driverRepo,
	}
}

func newGuardedContext(opts ...func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/riders/profile", nil)
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func withSessionCookie(kind entity.PrincipalKind, token string) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: kind.SessionCookieName(), Value: token})
	}
}

func nextHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newGuardedContext()
	var called bool

	err := fx.middleware.AuthenticateRider(nextHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthMiddleware_RevokedTokenRejectedBeforeVerification(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	// Validate carries no expectations: a revoked token never reaches
	// signature verification.
	fx.tokenSvc.EXPECT().Digest("revoked_token").Return("revoked_digest")
	fx.revokedRepo.EXPECT().
		IsRevoked(mock.Anything, "revoked_digest").
		Return(true, nil)

	c, rec := newGuardedContext(withBearer("revoked_token"))
	var called bool

	err := fx.middleware.AuthenticateRider(nextHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fx.tokenSvc.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAuthMiddleware_LedgerErrorRejects(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().Digest("some_token").Return("some_digest")
	fx.revokedRepo.EXPECT().
		IsRevoked(mock.Anything, "some_digest").
		Return(false, assert.AnError)

	c, rec := newGuardedContext(withBearer("some_token"))
	var called bool

	err := fx.middleware.AuthenticateRider(nextHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().Digest("bad_token").Return("bad_digest")
	fx.revokedRepo.EXPECT().IsRevoked(mock.Anything, "bad_digest").Return(false, nil)
	fx.tokenSvc.EXPECT().Validate("bad_token").Return(nil, assert.AnError)

	c, rec := newGuardedContext(withBearer("bad_token"))
	var called bool

	err := fx.middleware.AuthenticateRider(nextHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_KindMismatch(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	// A valid rider token presented to the driver guard.
	fx.tokenSvc.EXPECT().Digest("rider_token").Return("rider_digest")
	fx.revokedRepo.EXPECT().IsRevoked(mock.Anything, "rider_digest").Return(false, nil)
	fx.tokenSvc.EXPECT().Validate("rider_token").Return(&service.SessionClaims{
		PrincipalID: uuid.New(),
		Kind:        entity.KindRider,
	}, nil)

	c, rec := newGuardedContext(withBearer("rider_token"))
	var called bool

	err := fx.middleware.AuthenticateDriver(nextHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fx.driverRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_PrincipalNotFound(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	riderID := uuid.New()
	fx.tokenSvc.EXPECT().Digest("orphan_token").Return("orphan_digest")
	fx.revokedRepo.EXPECT().IsRevoked(mock.Anything, "orphan_digest").Return(false, nil)
	fx.tokenSvc.EXPECT().Validate("orphan_token").Return(&service.SessionClaims{
		PrincipalID: riderID,
		Kind:        entity.KindRider,
	}, nil)
	fx.riderRepo.EXPECT().
		FindByID(mock.Anything, riderID).
		Return(nil, repository.ErrRiderNotFound)

	c, rec := newGuardedContext(withBearer("orphan_token"))
	var called bool

	err := fx.middleware.AuthenticateRider(nextHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RiderSuccess(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rider := &entity.Rider{ID: uuid.New(), Email: "alice@example.com"}
	fx.tokenSvc.EXPECT().Digest("rider_token").Return("rider_digest")
	fx.revokedRepo.EXPECT().IsRevoked(mock.Anything, "rider_digest").Return(false, nil)
	fx.tokenSvc.EXPECT().Validate("rider_token").Return(&service.SessionClaims{
		PrincipalID: rider.ID,
		Kind:        entity.KindRider,
	}, nil)
	fx.riderRepo.EXPECT().FindByID(mock.Anything, rider.ID).Return(rider, nil)

	c, rec := newGuardedContext(withBearer("rider_token"))
	var called bool

	err := fx.middleware.AuthenticateRider(nextHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, rider, c.Get(KeyRider))
	assert.Equal(t, rider.ID, c.Get(KeyPrincipalID))
	assert.Equal(t, entity.KindRider, c.Get(KeyPrincipalKind))
	assert.Equal(t, "rider_token", c.Get(KeySessionToken))
}

func TestAuthMiddleware_DriverSuccess(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	driver := &entity.Driver{ID: uuid.New(), Email: "bob@example.com"}
	fx.tokenSvc.EXPECT().Digest("driver_token").Return("driver_digest")
	fx.revokedRepo.EXPECT().IsRevoked(mock.Anything, "driver_digest").Return(false, nil)
	fx.tokenSvc.EXPECT().Validate("driver_token").Return(&service.SessionClaims{
		PrincipalID: driver.ID,
		Kind:        entity.KindDriver,
	}, nil)
	fx.driverRepo.EXPECT().FindByID(mock.Anything, driver.ID).Return(driver, nil)

	c, rec := newGuardedContext(withSessionCookie(entity.KindDriver, "driver_token"))
	var called bool

	err := fx.middleware.AuthenticateDriver(nextHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, driver, c.Get(KeyDriver))
}

func TestExtractToken_CookieTakesPrecedence(t *testing.T) {
	c, _ := newGuardedContext(
		withSessionCookie(entity.KindRider, "cookie_token"),
		withBearer("header_token"),
	)

	assert.Equal(t, "cookie_token", ExtractToken(c, entity.KindRider))
}

func TestExtractToken_BearerFallback(t *testing.T) {
	c, _ := newGuardedContext(withBearer("header_token"))

	assert.Equal(t, "header_token", ExtractToken(c, entity.KindRider))
}

func TestExtractToken_KindScopedCookie(t *testing.T) {
	// A driver cookie is invisible to the rider guard.
	c, _ := newGuardedContext(withSessionCookie(entity.KindDriver, "driver_token"))

	assert.Equal(t, "", ExtractToken(c, entity.KindRider))
}

func TestExtractToken_MalformedAuthorizationHeader(t *testing.T) {
	c, _ := newGuardedContext(func(req *http.Request) {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})

	assert.Equal(t, "", ExtractToken(c, entity.KindRider))
}
