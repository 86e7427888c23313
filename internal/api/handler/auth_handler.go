package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supermercado/backoffice-system/internal/api/metrics"
	"github.com/supermercado/backoffice-system/internal/core/ports"
)

// AuthHandler handles login, logout and password recovery.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout revokes the current bearer token's session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	tokenID, _ := c.Get("token_id").(string)
	if err := h.authService.Logout(c.Request().Context(), tokenID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RecoverPassword resets a password after re-verifying identity by email+CPF.
//
// @Summary      Recover password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      recoverPasswordRequest  true  "Recovery details"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /recover-password [post]
func (h *AuthHandler) RecoverPassword(c echo.Context) error {
	var req recoverPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.RecoverPassword(c.Request().Context(), req.Email, req.CPF, req.NewPassword); err != nil {
		return err
	}

	// Message kept verbatim for compatibility with the existing panel.
	return c.JSON(http.StatusOK, messageResponse{Message: "Senha alterada com sucesso!"})
}
