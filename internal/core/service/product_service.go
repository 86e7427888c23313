package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/supermercado/backoffice-system/internal/core/domain"
	"github.com/supermercado/backoffice-system/internal/core/ports"
)

// ProductService implements product CRUD. The promo-price invariant is
// checked here as well as in the browser, so the rule holds even for
// requests that bypass the panel.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	product := fromProductInput(input)
	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("tipo", created.Category).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	product := fromProductInput(input)
	product.ID = id
	if err := product.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", id).Bool("promo", updated.PromoPrice != nil).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func fromProductInput(input ports.ProductInput) *domain.Product {
	return &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		PromoPrice:  input.PromoPrice,
		Category:    input.Category,
		Description: input.Description,
		ExpiryDate:  input.ExpiryDate,
	}
}
