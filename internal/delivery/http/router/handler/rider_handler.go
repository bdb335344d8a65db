// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ridehub/internal/delivery/http/middleware"
	"ridehub/internal/delivery/http/response"
	"ridehub/internal/domain/entity"
	"ridehub/internal/domain/service"
	"ridehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RiderHandler holds dependencies for rider account handlers.
type RiderHandler struct {
	uc       usecase.RiderUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewRiderHandler is the constructor for RiderHandler, injected by Fx.
func NewRiderHandler(uc usecase.RiderUsecase, tokenSvc service.TokenService, logger *slog.Logger) *RiderHandler {
	return &RiderHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// registerRiderRequest is the wire shape of the rider registration payload.
type registerRiderRequest struct {
	FullName struct {
		FirstName string `json:"firstname" validate:"required,min=3"`
		LastName  string `json:"lastname" validate:"omitempty,min=3"`
	} `json:"fullname"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginRequest is shared by rider and driver logins.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// sessionResponse pairs the issued token with the account it belongs to.
type sessionResponse struct {
	Token string        `json:"token"`
	Rider *entity.Rider `json:"rider"`
}

// Register handles the rider registration request.
func (h *RiderHandler) Register(c echo.Context) error {
	var req registerRiderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterRiderInput{
		FirstName: req.FullName.FirstName,
		LastName:  req.FullName.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusCreated, sessionResponse{
		Token: output.Token,
		Rider: output.Rider,
	}, "Rider registered successfully")
}

// Login handles the rider login request.
func (h *RiderHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusOK, sessionResponse{
		Token: output.Token,
		Rider: output.Rider,
	}, "Login successful")
}

// GetProfile returns the authenticated rider's account. The access guard
// already resolved the entity and attached it to the request context.
func (h *RiderHandler) GetProfile(c echo.Context) error {
	rider, ok := c.Get(middleware.KeyRider).(*entity.Rider)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "未授權的請求")
	}

	return response.Success(c, http.StatusOK, rider, "Profile retrieved successfully")
}

// Logout revokes the current session token and clears the session cookie.
// The route is unguarded: the token is extracted best-effort and an absent
// or already-revoked token still yields success.
func (h *RiderHandler) Logout(c echo.Context) error {
	token := middleware.ExtractToken(c, entity.KindRider)

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{Token: token}); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"}, "Logout successful")
}

func (h *RiderHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(sessionCookie(entity.KindRider, token, h.tokenSvc.SessionTTL()))
}

func (h *RiderHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(expiredSessionCookie(entity.KindRider))
}

// sessionCookie builds the kind-scoped session cookie.
func sessionCookie(kind entity.PrincipalKind, token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     kind.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiredSessionCookie builds a cookie that instructs the browser to drop
// the session cookie immediately.
func expiredSessionCookie(kind entity.PrincipalKind) *http.Cookie {
	return &http.Cookie{
		Name:     kind.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
