// Package redis provides a Redis-backed run lock so that benchmark runs sharing a host
// do not measure each other.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/turtlebench/pkg/ports"
	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
)

// ErrLockHeld is returned when ctx ends while another run holds the lock.
var ErrLockHeld = errors.New("run lock is held by another run")

// pollInterval is how often a waiting run retries the lock.
const pollInterval = 100 * time.Millisecond

// unlockScript deletes the key only if it still holds our token.
var unlockScript = backend.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// Locker implements ports.RunLocker using Redis SET NX PX.
type Locker struct {
	client backend.UniversalClient
	prefix string
	owner  string
}

var _ ports.RunLocker = (*Locker)(nil)

// NewLocker creates a locker whose keys live under prefix.
// owner is stored as the lock value so waiting runs can tell who holds it; an empty
// owner gets a random UUID.
func NewLocker(client backend.UniversalClient, prefix, owner string) *Locker {
	if owner == "" {
		owner = uuid.NewString()
	}
	return &Locker{client: client, prefix: prefix, owner: owner}
}

func (l *Locker) key(key string) string {
	return l.prefix + "lock:" + key
}

// Lock blocks until the lock is acquired, polling every pollInterval.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	lockKey := l.key(key)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, lockKey, l.owner, ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("redis error acquiring lock: %w", err)
		}
		if ok {
			return func(ctx context.Context) error {
				return unlockScript.Run(ctx, l.client, []string{lockKey}, l.owner).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w (%s): %w", ErrLockHeld, l.holder(lockKey), ctx.Err())
		case <-ticker.C:
		}
	}
}

// Holder returns the owner currently holding key, or "" if it is free.
func (l *Locker) Holder(ctx context.Context, key string) (string, error) {
	owner, err := l.client.Get(ctx, l.key(key)).Result()
	if errors.Is(err, backend.Nil) {
		return "", nil
	}
	return owner, err
}

func (l *Locker) holder(lockKey string) string {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	owner, err := l.client.Get(ctx, lockKey).Result()
	if err != nil {
		return "unknown holder"
	}
	return "held by " + owner
}
