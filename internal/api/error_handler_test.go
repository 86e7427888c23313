package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(err, c)

	var body errorResponse
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return rec.Code, body
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest},
		{"invalid cpf", domain.ErrInvalidCPF, http.StatusBadRequest},
		{"invalid price", domain.ErrInvalidPrice, http.StatusBadRequest},
		{"invalid promo price", domain.ErrInvalidPromoPrice, http.StatusBadRequest},
		{"duplicate user", domain.ErrDuplicateUser, http.StatusBadRequest},
		{"duplicate client", domain.ErrDuplicateClient, http.StatusBadRequest},
		{"recovery mismatch", domain.ErrRecoveryMismatch, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.code {
				t.Errorf("status = %d, want %d", code, tc.code)
			}
			if body.Error == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

func TestErrorHandlerInvalidCredentialsMessage(t *testing.T) {
	_, body := renderError(t, domain.ErrInvalidCredentials)
	if body.Error != "invalid credentials" {
		t.Errorf("message = %q", body.Error)
	}
}

func TestErrorHandlerPassesThroughEchoErrors(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing token"))
	if code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", code)
	}
	if body.Error != "missing token" {
		t.Errorf("message = %q", body.Error)
	}
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	code, body := renderError(t, errFromStorage())
	if code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", code)
	}
	if body.Error != "internal server error" {
		t.Errorf("message = %q, internals must not leak", body.Error)
	}
}

func errFromStorage() error {
	return &customError{"mongo: connection reset"}
}

type customError struct{ msg string }

func (e *customError) Error() string { return e.msg }
