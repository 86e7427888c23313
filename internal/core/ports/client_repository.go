package ports

import (
	"context"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

// ClientRepository defines persistence operations for loyalty clients.
// Implementations must surface unique-index violations on identidade as
// domain.ErrDuplicateClient.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
