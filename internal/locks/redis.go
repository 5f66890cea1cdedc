package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
)

const walletLockPrefix = "lock:wallet:"

// RedisLockerOptions tunes lock acquisition.
type RedisLockerOptions struct {
	Expiry     time.Duration // Lock TTL, must exceed the longest operation
	Tries      int           // Acquisition attempts before giving up
	RetryDelay time.Duration // Pause between attempts
}

// DefaultRedisLockerOptions returns options suitable for short wallet operations.
func DefaultRedisLockerOptions() RedisLockerOptions {
	return RedisLockerOptions{
		Expiry:     10 * time.Second,
		Tries:      50,
		RetryDelay: 100 * time.Millisecond,
	}
}

// RedisLocker is a per-user lock shared by every instance using the same Redis.
type RedisLocker struct {
	rs   *redsync.Redsync
	opts RedisLockerOptions
}

// NewRedisLocker creates a new RedisLocker over client.
func NewRedisLocker(client redis.UniversalClient, opts RedisLockerOptions) (*RedisLocker, error) {
	if client == nil {
		return nil, fmt.Errorf("redis locker: client is nil")
	}
	if opts.Expiry <= 0 {
		return nil, fmt.Errorf("redis locker: expiry must be greater than 0")
	}
	if opts.Tries < 1 {
		return nil, fmt.Errorf("redis locker: tries must be at least 1")
	}
	if opts.RetryDelay < 0 {
		return nil, fmt.Errorf("redis locker: retry delay cannot be negative")
	}

	return &RedisLocker{
		rs:   redsync.New(goredis.NewPool(client)),
		opts: opts,
	}, nil
}

// WithUserLock runs fn while holding the distributed lock of userID.
func (l *RedisLocker) WithUserLock(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error {
	key := walletLockPrefix + userID.String()
	mutex := l.rs.NewMutex(
		key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		logger.Log.Errorw("failed to acquire lock", "key", key, "error", err)
		return fmt.Errorf("acquire lock %s: %w", key, err)
	}

	defer func() {
		if ok, err := mutex.UnlockContext(context.WithoutCancel(ctx)); !ok || err != nil {
			logger.Log.Errorw("failed to release lock", "key", key, "unlock_ok", ok, "error", err)
		}
	}()

	return fn(ctx)
}
