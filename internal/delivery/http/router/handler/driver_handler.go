package handler

import (
	"log/slog"
	"net/http"

	"ridehub/internal/delivery/http/middleware"
	"ridehub/internal/delivery/http/response"
	"ridehub/internal/domain/entity"
	"ridehub/internal/domain/service"
	"ridehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DriverHandler holds dependencies for driver account handlers.
type DriverHandler struct {
	uc       usecase.DriverUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewDriverHandler is the constructor for DriverHandler, injected by Fx.
func NewDriverHandler(uc usecase.DriverUsecase, tokenSvc service.TokenService, logger *slog.Logger) *DriverHandler {
	return &DriverHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// registerDriverRequest is the wire shape of the driver registration payload.
type registerDriverRequest struct {
	FullName struct {
		FirstName string `json:"firstname" validate:"required,min=3"`
		LastName  string `json:"lastname" validate:"omitempty,min=3"`
	} `json:"fullname"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Vehicle  struct {
		Color    string `json:"color" validate:"required,min=3"`
		Plate    string `json:"plate" validate:"required,min=3"`
		Capacity int    `json:"capacity" validate:"required,min=1"`
		Type     string `json:"vehicleType" validate:"required,oneof=car bike auto other"`
	} `json:"vehicle"`
	Location struct {
		Latitude  float64 `json:"lat" validate:"min=-90,max=90"`
		Longitude float64 `json:"lng" validate:"min=-180,max=180"`
	} `json:"location"`
}

// driverSessionResponse pairs the issued token with the driver it belongs to.
type driverSessionResponse struct {
	Token  string         `json:"token"`
	Driver *entity.Driver `json:"driver"`
}

// Register handles the driver registration request.
func (h *DriverHandler) Register(c echo.Context) error {
	var req registerDriverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterDriverInput{
		FirstName:       req.FullName.FirstName,
		LastName:        req.FullName.LastName,
		Email:           req.Email,
		Password:        req.Password,
		VehicleColor:    req.Vehicle.Color,
		VehiclePlate:    req.Vehicle.Plate,
		VehicleCapacity: req.Vehicle.Capacity,
		VehicleType:     req.Vehicle.Type,
		Latitude:        req.Location.Latitude,
		Longitude:       req.Location.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusCreated, driverSessionResponse{
		Token:  output.Token,
		Driver: output.Driver,
	}, "Driver registered successfully")
}

// Login handles the driver login request.
func (h *DriverHandler) Login(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, driverSessionResponse{
		Token:  output.Token,
		Driver: output.Driver,
	}, "Login successful")
}

// GetProfile returns the authenticated driver's account.
func (h *DriverHandler) GetProfile(c echo.Context) error {
	driver, ok := c.Get(middleware.KeyDriver).(*entity.Driver)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "未授權的請求")
	}

	return response.Success(c, http.StatusOK, driver, "Profile retrieved successfully")
}

// Logout revokes the current session token and clears the session cookie.
// The route is unguarded: the token is extracted best-effort and an absent
// or already-revoked token still yields success.
func (h *DriverHandler) Logout(c echo.Context) error {
	token := middleware.ExtractToken(c, entity.KindDriver)

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{Token: token}); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"}, "Logout successful")
}

func (h *DriverHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(sessionCookie(entity.KindDriver, token, h.tokenSvc.SessionTTL()))
}

func (h *DriverHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(expiredSessionCookie(entity.KindDriver))
}
