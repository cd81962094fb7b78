// cmd/seeduser/main.go — creates or updates a bootstrap admin account in the
// configured record store.
// Usage: SEED_USERNAME=admin SEED_PASSWORD=secret go run ./cmd/seeduser
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"rebowork/internal/config"
	"rebowork/internal/infra"
	"rebowork/internal/model"
	"rebowork/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// .env is optional
	_ = godotenv.Load()

	username := envOr("SEED_USERNAME", "admin")
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		log.Fatal().Msg("SEED_PASSWORD is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backend, err := infra.NewBackend(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open record store")
	}
	defer func() { _ = backend.Close(ctx) }()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	users := repository.NewUserRepository(backend)
	_, err = users.Update(ctx, username, func(u *model.User) {
		u.Password = string(hash)
		u.StatusIndex = model.RoleAdmin
	})
	switch {
	case err == nil:
		fmt.Printf("user %q updated (admin)\n", username)
	case errors.Is(err, repository.ErrNotFound):
		err = users.Create(ctx, &model.User{
			ID:          uuid.NewString(),
			Username:    username,
			Password:    string(hash),
			StatusIndex: model.RoleAdmin,
			CreatedAt:   model.FormatTimestamp(time.Now()),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("create user")
		}
		fmt.Printf("user %q created (admin)\n", username)
	default:
		log.Fatal().Err(err).Msg("update user")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
