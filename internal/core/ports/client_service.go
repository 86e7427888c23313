package ports

import (
	"context"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

// ClientInput carries the fields for creating or updating a loyalty client.
type ClientInput struct {
	Name     string
	Identity string
	Age      int
	Tenure   int
}

// ClientService defines use-case operations for loyalty clients.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
