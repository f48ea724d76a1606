package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/notes-api/config"
	"github.com/oksasatya/notes-api/internal/application"
	pginfra "github.com/oksasatya/notes-api/internal/infrastructure/postgres"
	"github.com/oksasatya/notes-api/internal/infrastructure/redisstore"
	"github.com/oksasatya/notes-api/pkg/helpers"
)

// Container carries the constructed components router modules depend on.
// It is built once in main and passed explicitly.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Redis  redis.Cmdable // rate limiting; nil disables it
	JWT    *helpers.JWTManager

	Auth  *application.AuthService
	Notes *application.NoteService
}

// Infra is what main connects before wiring services
type Infra struct {
	DB       pginfra.DBTX
	Redis    redis.Cmdable
	Notifier application.Notifier
	Index    application.NoteIndex // optional
}

// New wires repositories and services on top of the given infrastructure
func New(cfg *config.Config, logger *logrus.Logger, infra Infra) *Container {
	jwt := helpers.NewJWTManager(cfg.JWTSecret)

	users := pginfra.NewUserRepository(infra.DB)
	notes := pginfra.NewNoteRepository(infra.DB)
	pending := redisstore.NewPendingRegistrationRepository(infra.Redis)

	auth := application.NewAuthService(users, pending, infra.Notifier, jwt, logger, application.AuthTTLs{
		OTP:           cfg.OTPTTL,
		SignupSession: cfg.SignupSessionTTL,
		SigninSession: cfg.SigninSessionTTL,
	})

	return &Container{
		Config: cfg,
		Logger: logger,
		Redis:  infra.Redis,
		JWT:    jwt,
		Auth:   auth,
		Notes:  application.NewNoteService(notes, infra.Index, logger),
	}
}
