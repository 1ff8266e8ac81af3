package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lock obtained from a RunLocker.
type UnlockFunc func(ctx context.Context) error

// RunLocker serializes benchmark runs that share a host.
type RunLocker interface {
	// Lock blocks until the lock for key is acquired or ctx is done.
	// The lock expires after ttl if the holder dies without releasing it.
	// Returns an UnlockFunc that MUST be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
