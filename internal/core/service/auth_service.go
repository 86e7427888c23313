package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/supermercado/backoffice-system/internal/core/domain"
	"github.com/supermercado/backoffice-system/internal/core/ports"
	"github.com/supermercado/backoffice-system/pkg/cpf"
)

// AuthService implements login, logout and password recovery.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login validates the email/password pair and returns a signed bearer token
// plus the user. A missing user and a wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tokenID := newTokenID()
	token, err := s.generateToken(user, tokenID)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.Save(ctx, tokenID, user.ID, s.tokenTTL); err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// Logout revokes the session behind tokenID. Revoking an already-revoked
// token is not an error.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, tokenID)
}

// RecoverPassword resets the password of the user matching both email and
// CPF. Active sessions are left untouched.
func (s *AuthService) RecoverPassword(ctx context.Context, email, cpfNumber, newPassword string) error {
	if email == "" || cpfNumber == "" || newPassword == "" {
		return domain.ErrRecoveryMismatch
	}

	// CPFs are stored canonically formatted; accept any input shape.
	user, err := s.users.FindByEmailAndCPF(ctx, email, cpf.Format(cpfNumber))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrRecoveryMismatch
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password recovered")
	return nil
}

func (s *AuthService) generateToken(user *domain.User, tokenID string) (string, error) {
	claims := jwt.MapClaims{
		"jti":   tokenID,
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newTokenID returns a random session identifier for the jti claim.
func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(b)
}
