package ports

import (
	"context"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

// UserRepository defines persistence operations for staff users.
// Implementations must surface unique-index violations on email or cpf as
// domain.ErrDuplicateUser.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailAndCPF matches both fields at once; used by password recovery.
	FindByEmailAndCPF(ctx context.Context, email, cpf string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// SetAvatarURL records the avatar location; nil clears it.
	SetAvatarURL(ctx context.Context, id string, url *string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
