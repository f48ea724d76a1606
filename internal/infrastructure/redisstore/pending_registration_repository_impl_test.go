package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/notes-api/internal/domain/entity"
	"github.com/oksasatya/notes-api/internal/domain/repository"
)

func newRepo(t *testing.T) (*PendingRegistrationRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewPendingRegistrationRepository(rdb), mr
}

func TestPending_SaveGetDelete(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	p := &entity.PendingRegistration{Name: "Ann", Email: "ann@x.com", PasswordHash: "h", Code: "012345"}
	require.NoError(t, repo.Save(ctx, p, 300*time.Second))
	assert.Equal(t, 300*time.Second, mr.TTL("signup:pending:ann@x.com"))

	got, err := repo.Get(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "012345", got.Code)
	assert.True(t, got.HasProfile())

	require.NoError(t, repo.Delete(ctx, "ann@x.com"))
	_, err = repo.Get(ctx, "ann@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPending_Expires(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.PendingRegistration{Email: "ann@x.com", Code: "1"}, 300*time.Second))
	mr.FastForward(299 * time.Second)
	_, err := repo.Get(ctx, "ann@x.com")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	_, err = repo.Get(ctx, "ann@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPending_Overwrite(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.PendingRegistration{Email: "ann@x.com", Code: "111111"}, time.Minute))
	require.NoError(t, repo.Save(ctx, &entity.PendingRegistration{Email: "ann@x.com", Code: "222222"}, time.Minute))

	got, err := repo.Get(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", got.Code)
}

func TestPending_RejectsBadInput(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	assert.Error(t, repo.Save(ctx, &entity.PendingRegistration{Code: "1"}, time.Minute))
	assert.Error(t, repo.Save(ctx, &entity.PendingRegistration{Email: "a@x.com"}, 0))
}

func TestPending_DeleteMissingIsNoop(t *testing.T) {
	repo, _ := newRepo(t)
	assert.NoError(t, repo.Delete(context.Background(), "nobody@x.com"))
}
