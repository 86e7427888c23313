// Development utility that creates the bootstrap admin user so the panel can
// be logged into on a fresh database. Idempotent: skips creation when the
// e-mail is already taken.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/supermercado/backoffice-system/internal/core/domain"
	"github.com/supermercado/backoffice-system/internal/infrastructure/config"
	mongodb "github.com/supermercado/backoffice-system/internal/infrastructure/db/mongo"
	"github.com/supermercado/backoffice-system/pkg/cpf"
	"github.com/supermercado/backoffice-system/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	email := envOr("SEED_ADMIN_EMAIL", "admin@mercado.com")
	password := envOr("SEED_ADMIN_PASSWORD", "123456")
	identity := envOr("SEED_ADMIN_CPF", "111.444.777-35")

	if !cpf.Valid(identity) {
		log.Fatal().Str("cpf", identity).Msg("seed cpf is not valid")
	}

	if existing, err := users.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Info().Str("email", email).Msg("admin already exists, skipping")
		return
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hash failed")
	}

	created, err := users.Create(ctx, &domain.User{
		Name:         envOr("SEED_ADMIN_NAME", "Administrador"),
		Email:        email,
		CPF:          cpf.Format(identity),
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Str("id", created.ID).Str("email", created.Email).Msg("admin created")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
