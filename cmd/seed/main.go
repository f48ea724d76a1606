package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"

	"github.com/oksasatya/notes-api/config"
	"github.com/oksasatya/notes-api/internal/domain/entity"
	repo "github.com/oksasatya/notes-api/internal/domain/repository"
	pginfra "github.com/oksasatya/notes-api/internal/infrastructure/postgres"
	"github.com/oksasatya/notes-api/pkg/helpers"
)

const (
	demoName     = "Demo User"
	demoEmail    = "demo@notes.local"
	demoPassword = "Passw0rd!"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	notes := pginfra.NewNoteRepository(pool)

	u, err := users.GetByEmail(ctx, demoEmail)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		hash, err := helpers.HashPassword(demoPassword)
		if err != nil {
			logger.Fatalf("failed to hash password: %v", err)
		}
		u = &entity.User{Name: demoName, Email: demoEmail, PasswordHash: hash}
		if err := users.Create(ctx, u); err != nil {
			logger.Fatalf("failed to seed user: %v", err)
		}
		logger.WithField("id", u.ID).WithField("email", demoEmail).WithField("password", demoPassword).Info("seeded user")
	case err != nil:
		logger.Fatalf("failed to look up demo user: %v", err)
	default:
		logger.WithField("id", u.ID).Info("demo user already present")
	}

	existing, err := notes.ListByUser(ctx, u.ID)
	if err != nil {
		logger.Fatalf("failed to list notes: %v", err)
	}
	if len(existing) > 0 {
		logger.WithField("count", len(existing)).Info("demo notes already present")
		return
	}
	n := &entity.Note{UserID: u.ID, Title: "Welcome", Content: "This is your first note. Edit or delete it any time."}
	if err := notes.Create(ctx, n); err != nil {
		logger.Fatalf("failed to seed note: %v", err)
	}
	logger.WithField("id", n.ID).Info("seeded welcome note")
}
