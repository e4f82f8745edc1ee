package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
)

const (
	lockTTL       = 30 * time.Second
	retryInterval = 50 * time.Millisecond
	maxRetries    = 20
)

// RedisTripLocker serializes trip ledger mutations across instances with a
// Redis held lock. The TTL bounds how long a crashed holder can block a trip.
type RedisTripLocker struct {
	locker *redislock.Client
}

// NewRedisTripLocker creates a locker backed by the given Redis client.
func NewRedisTripLocker(client *redis.Client) *RedisTripLocker {
	return &RedisTripLocker{locker: redislock.New(client)}
}

// Ensure RedisTripLocker implements the portssvc.TripLockerSvc interface
var _ portssvc.TripLockerSvc = (*RedisTripLocker)(nil)

// WithTripLock runs fn while holding an exclusive lock on the trip.
func (l *RedisTripLocker) WithTripLock(ctx context.Context, tripID string, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:trip:%s", tripID)

	lock, err := l.locker.Obtain(ctx, key, lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(retryInterval), maxRetries),
	})
	if err == redislock.ErrNotObtained {
		return fmt.Errorf("%w: trip %s is locked by another mutation", apperrors.ErrConflict, tripID)
	} else if err != nil {
		return fmt.Errorf("failed to obtain trip lock %s: %w", key, err)
	}
	defer func() {
		_ = lock.Release(ctx)
	}()

	return fn(ctx)
}
