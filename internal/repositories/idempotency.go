package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
)

// IdempotencyRepository keeps request results in Redis with expiration
type IdempotencyRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for stored results
}

// NewIdempotencyRepository creates a new repository instance with the given TTL
func NewIdempotencyRepository(client *redis.Client, expiration time.Duration) *IdempotencyRepository {
	return &IdempotencyRepository{
		client: client,
		exp:    expiration,
	}
}

func idempotencyKey(scope string, userID uuid.UUID, key string) string {
	return fmt.Sprintf("idempotency:%s:%s:%s", scope, userID, key)
}

// Get returns the stored result. A missing key is reported with ok == false.
func (r *IdempotencyRepository) Get(ctx context.Context, scope string, userID uuid.UUID, key string) ([]byte, bool, error) {
	k := idempotencyKey(scope, userID, key)

	val, err := r.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("idempotency miss", "key", k)
		return nil, false, nil
	}
	if err != nil {
		logger.Log.Errorw("idempotency lookup failed", "key", k, "error", err)
		return nil, false, err
	}

	logger.Log.Debugw("idempotency hit", "key", k, "size", len(val))
	return val, true, nil
}

// Put stores a result with expiration
func (r *IdempotencyRepository) Put(ctx context.Context, scope string, userID uuid.UUID, key string, value []byte) error {
	k := idempotencyKey(scope, userID, key)
	err := r.client.Set(ctx, k, value, r.exp).Err()

	logger.Log.Debugw("idempotency store",
		"key", k,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
