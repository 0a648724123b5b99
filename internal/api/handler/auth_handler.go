package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hobbie/hobbie-backend/internal/api/metrics"
	"github.com/hobbie/hobbie-backend/internal/core/domain"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a regular account.
//
// @Summary      Register a user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.register(c, ports.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.FullName,
		Kind:        domain.KindUser,
	})
}

// Register registers a business account.
//
// @Summary      Register a business account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerBusinessRequest  true  "Business account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerBusinessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.register(c, ports.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.BusinessName,
		Kind:        domain.KindBusinessUser,
	})
}

func (h *AuthHandler) register(c echo.Context, in ports.RegisterInput) error {
	user, err := h.authService.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues(string(user.Kind)).Inc()
	return c.JSON(http.StatusCreated, toAccountResponse(user))
}

// Authenticate exchanges a username and password for a bearer token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  true  "Credentials"
// @Success      200   {object}  authenticateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authenticateResponse{
		Token:    token,
		Username: user.Username,
		Roles:    user.Roles,
	})
}
