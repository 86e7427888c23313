package ports

import (
	"context"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

// ProductInput carries the fields for creating or updating a product.
// PromoPrice nil means no active promotion; on update, nil removes one.
type ProductInput struct {
	Name        string
	Price       float64
	PromoPrice  *float64
	Category    string
	Description string
	ExpiryDate  string
}

// ProductService defines use-case operations for products.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
