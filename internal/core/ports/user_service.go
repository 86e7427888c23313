package ports

import (
	"context"
	"io"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

// CreateUserInput carries the fields for registering a staff user.
type CreateUserInput struct {
	Name     string
	Email    string
	CPF      string
	Password string
}

// UpdateUserInput carries a partial user update. Password is optional: nil
// leaves the stored hash untouched, non-nil replaces it.
type UpdateUserInput struct {
	Name     string
	Email    string
	CPF      string
	Password *string
}

// UserService defines use-case operations for staff users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// SetAvatar stores the uploaded image and records its public URL on the user.
	SetAvatar(ctx context.Context, id, filename string, data io.Reader) (*domain.User, error)
	RemoveAvatar(ctx context.Context, id string) (*domain.User, error)
}
