package ports

import (
	"context"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
