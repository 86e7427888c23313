package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/supermercado/backoffice-system/internal/core/domain"
	"github.com/supermercado/backoffice-system/internal/core/ports"
	"github.com/supermercado/backoffice-system/pkg/cpf"
)

// UserService implements staff-user management. CPF validity is enforced
// here as well, not only in the browser, so a crafted request cannot store
// a malformed document number.
type UserService struct {
	repo    ports.UserRepository
	avatars ports.AvatarStorage
	log     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, avatars ports.AvatarStorage, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, avatars: avatars, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !cpf.Valid(input.CPF) {
		return nil, domain.ErrInvalidCPF
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		CPF:          cpf.Format(input.CPF),
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user created")
	return created, nil
}

// Update applies a partial update. A nil Password keeps the stored hash.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if !cpf.Valid(input.CPF) {
		return nil, domain.ErrInvalidCPF
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Email = input.Email
	current.CPF = cpf.Format(input.CPF)

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		current.PasswordHash = string(hash)
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Bool("password_changed", input.Password != nil).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// SetAvatar stores the uploaded file and records its URL on the user. Any
// previously stored avatar file is removed best-effort.
func (s *UserService) SetAvatar(ctx context.Context, id, filename string, data io.Reader) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.Store(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.SetAvatarURL(ctx, id, &url)
	if err != nil {
		return nil, err
	}

	if current.AvatarURL != nil {
		if err := s.avatars.Remove(ctx, *current.AvatarURL); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("failed to remove previous avatar file")
		}
	}

	return updated, nil
}

func (s *UserService) RemoveAvatar(ctx context.Context, id string) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.SetAvatarURL(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	if current.AvatarURL != nil {
		if err := s.avatars.Remove(ctx, *current.AvatarURL); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("failed to remove avatar file")
		}
	}

	return updated, nil
}
