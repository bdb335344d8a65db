package middleware

import (
	"strings"

	"ridehub/internal/delivery/http/response"
	"ridehub/internal/domain/entity"
	"ridehub/internal/domain/repository"
	"ridehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the access guard stores the authenticated principal.
const (
	KeyPrincipalID   = "principalID"
	KeyPrincipalKind = "principalKind"
	KeySessionToken  = "sessionToken"
	KeyRider         = "rider"
	KeyDriver        = "driver"
)

// AuthMiddleware is the access guard for session-protected routes. Each
// request passes through the same pipeline: extract the token, check the
// revocation ledger, verify the signature, match the principal kind, and
// resolve the account from the kind's own repository.
//
// The ledger is consulted before signature verification so a logged-out
// token is dead even if the signing secret later leaks.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	revokedRepo repository.RevokedTokenRepository
	riderRepo   repository.RiderRepository
	driverRepo  repository.DriverRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(
	tokenSvc service.TokenService,
	revokedRepo repository.RevokedTokenRepository,
	riderRepo repository.RiderRepository,
	driverRepo repository.DriverRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:    tokenSvc,
		revokedRepo: revokedRepo,
		riderRepo:   riderRepo,
		driverRepo:  driverRepo,
	}
}

// AuthenticateRider guards routes that require a rider session.
func (m *AuthMiddleware) AuthenticateRider(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(entity.KindRider, next)
}

// AuthenticateDriver guards routes that require a driver session.
func (m *AuthMiddleware) AuthenticateDriver(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(entity.KindDriver, next)
}

func (m *AuthMiddleware) authenticate(kind entity.PrincipalKind, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := ExtractToken(c, kind)
		if tokenString == "" {
			return unauthorized(c)
		}

		// Ledger first: a revoked token must be rejected before its
		// signature is even looked at.
		revoked, err := m.revokedRepo.IsRevoked(c.Request().Context(), m.tokenSvc.Digest(tokenString))
		if err != nil || revoked {
			return unauthorized(c)
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return unauthorized(c)
		}

		// A rider token opens no driver doors, and vice versa.
		if claims.Kind != kind {
			return unauthorized(c)
		}

		switch kind {
		case entity.KindRider:
			rider, err := m.riderRepo.FindByID(c.Request().Context(), claims.PrincipalID)
			if err != nil {
				return unauthorized(c)
			}
			c.Set(KeyRider, rider)
		case entity.KindDriver:
			driver, err := m.driverRepo.FindByID(c.Request().Context(), claims.PrincipalID)
			if err != nil {
				return unauthorized(c)
			}
			c.Set(KeyDriver, driver)
		default:
			return unauthorized(c)
		}

		c.Set(KeyPrincipalID, claims.PrincipalID)
		c.Set(KeyPrincipalKind, claims.Kind)
		c.Set(KeySessionToken, tokenString)

		return next(c)
	}
}

// ExtractToken pulls the session token from the kind's session cookie or,
// failing that, from the Authorization header's Bearer scheme. Returns an
// empty string when neither carries a token.
func ExtractToken(c echo.Context, kind entity.PrincipalKind) string {
	if cookie, err := c.Cookie(kind.SessionCookieName()); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}

// unauthorized writes the uniform guard rejection. Every failure mode gets
// the same status, code and message so callers cannot probe which step failed.
func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "UNAUTHORIZED", "未授權的請求")
}
