package ports

import (
	"context"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

// AuthService covers sign-in, sign-out and the out-of-band password
// recovery flow (identity re-verified by the email+CPF pair).
type AuthService interface {
	// Login validates credentials and returns a signed bearer token plus
	// the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the server-side session identified by the token's jti.
	Logout(ctx context.Context, tokenID string) error
	// RecoverPassword resets the password of the user matching both email
	// and CPF. It does not touch any active session.
	RecoverPassword(ctx context.Context, email, cpf, newPassword string) error
}
