package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/notes-api/internal/domain/entity"
	"github.com/oksasatya/notes-api/internal/domain/repository"
	"github.com/oksasatya/notes-api/pkg/helpers"
)

// PendingRegistrationRepository keeps one JSON value per email with a single
// TTL; Redis SET gives last-write-wins between concurrent signups.
type PendingRegistrationRepository struct {
	rdb redis.Cmdable
}

func NewPendingRegistrationRepository(rdb redis.Cmdable) *PendingRegistrationRepository {
	return &PendingRegistrationRepository{rdb: rdb}
}

func (r *PendingRegistrationRepository) Save(ctx context.Context, p *entity.PendingRegistration, ttl time.Duration) error {
	if p.Email == "" {
		return errors.New("pending registration without email")
	}
	if ttl <= 0 {
		return errors.New("pending registration needs a positive ttl")
	}
	return helpers.RedisSetJSON(ctx, r.rdb, helpers.KeySignupPending(p.Email), p, ttl)
}

func (r *PendingRegistrationRepository) Get(ctx context.Context, email string) (*entity.PendingRegistration, error) {
	var p entity.PendingRegistration
	ok, err := helpers.RedisGetJSON(ctx, r.rdb, helpers.KeySignupPending(email), &p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *PendingRegistrationRepository) Delete(ctx context.Context, email string) error {
	return helpers.RedisDel(ctx, r.rdb, helpers.KeySignupPending(email))
}

var _ repository.PendingRegistrationRepository = (*PendingRegistrationRepository)(nil)
