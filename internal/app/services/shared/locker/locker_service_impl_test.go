package locker

import (
	"context"
	"testing"
	"time"

	sharedredis "caremind-service/internal/app/services/shared/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestLocker(t *testing.T) *lockService {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	return &lockService{
		redisRepo: sharedredis.NewRedisRepository(client),
		Log:       zap.NewNop(),
	}
}

func TestTryLockIsExclusive(t *testing.T) {
	locker := newTestLocker(t)
	ctx := context.Background()

	acquired, lockValue, err := locker.TryLock(ctx, "lock:discharge-review:p1:dr1", time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, lockValue)

	acquired, secondValue, err := locker.TryLock(ctx, "lock:discharge-review:p1:dr1", time.Minute)
	assert.NoError(t, err)
	assert.False(t, acquired)
	assert.Empty(t, secondValue)

	// A different request is a different lock.
	acquired, _, err = locker.TryLock(ctx, "lock:discharge-review:p1:dr2", time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestUnlockReleasesOwnLock(t *testing.T) {
	locker := newTestLocker(t)
	ctx := context.Background()

	_, lockValue, err := locker.TryLock(ctx, "lock:discharge-review:p1:dr1", time.Minute)
	assert.NoError(t, err)

	err = locker.Unlock(ctx, "lock:discharge-review:p1:dr1", lockValue)
	assert.NoError(t, err)

	acquired, _, err := locker.TryLock(ctx, "lock:discharge-review:p1:dr1", time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestUnlockIgnoresForeignLock(t *testing.T) {
	locker := newTestLocker(t)
	ctx := context.Background()

	_, _, err := locker.TryLock(ctx, "lock:discharge-review:p1:dr1", time.Minute)
	assert.NoError(t, err)

	// Wrong value must not release the lock.
	err = locker.Unlock(ctx, "lock:discharge-review:p1:dr1", "not-the-owner")
	assert.NoError(t, err)

	acquired, _, err := locker.TryLock(ctx, "lock:discharge-review:p1:dr1", time.Minute)
	assert.NoError(t, err)
	assert.False(t, acquired)
}

func TestUnlockMissingLockIsNoop(t *testing.T) {
	locker := newTestLocker(t)

	err := locker.Unlock(context.Background(), "lock:discharge-review:p1:gone", "whatever")
	assert.NoError(t, err)
}
