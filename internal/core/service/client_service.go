package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/supermercado/backoffice-system/internal/core/domain"
	"github.com/supermercado/backoffice-system/internal/core/ports"
)

// ClientService implements loyalty-client CRUD.
type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput) (*domain.Client, error) {
	created, err := s.repo.Create(ctx, fromClientInput(input))
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", created.ID).Msg("client created")
	return created, nil
}

func (s *ClientService) Update(ctx context.Context, id string, input ports.ClientInput) (*domain.Client, error) {
	client := fromClientInput(input)
	client.ID = id

	updated, err := s.repo.Update(ctx, client)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", id).Msg("client updated")
	return updated, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

func fromClientInput(input ports.ClientInput) *domain.Client {
	return &domain.Client{
		Name:     input.Name,
		Identity: input.Identity,
		Age:      input.Age,
		Tenure:   input.Tenure,
	}
}
