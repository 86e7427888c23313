package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to fixed HTTP codes. Invalid credentials
	// are 400, not 401, matching the contract the panel already speaks.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidCPF),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidPromoPrice),
		errors.Is(err, domain.ErrDuplicateUser),
		errors.Is(err, domain.ErrDuplicateClient):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrRecoveryMismatch):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
