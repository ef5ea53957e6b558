package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Lock is a Redis-backed distributed lock. The lock value is unique per
// holder so a lock can only be released or refreshed by the client that
// acquired it.
type Lock struct {
	client    *Client
	key       string
	value     string
	ttl       time.Duration
	namespace string
}

// NewLock creates a new distributed lock
func NewLock(client *Client, key string, ttl time.Duration, namespace string) *Lock {
	return &Lock{
		client:    client,
		key:       key,
		value:     uuid.New().String(),
		ttl:       ttl,
		namespace: namespace,
	}
}

// buildLockKey constructs the full lock key using namespace::key format
func (l *Lock) buildLockKey() string {
	if l.namespace != "" {
		return l.namespace + "::" + l.key
	}
	return l.key
}

// Lock attempts to acquire the lock with a single SET NX
func (l *Lock) Lock(ctx context.Context) error {
	acquired, err := l.client.GetClient().SetNX(ctx, l.buildLockKey(), l.value, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return fmt.Errorf("lock %s is held by another client", l.buildLockKey())
	}
	return nil
}

// Unlock releases the lock. A Lua script guarantees only our own lock is deleted.
func (l *Lock) Unlock(ctx context.Context) error {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		else
			return 0
		end
	`

	result, err := l.client.GetClient().Eval(ctx, script, []string{l.buildLockKey()}, l.value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result.(int64) == 0 {
		return fmt.Errorf("lock was not held by this client")
	}
	return nil
}

// Refresh extends the lock's TTL. A Lua script guarantees only our own lock is refreshed.
func (l *Lock) Refresh(ctx context.Context) error {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("EXPIRE", KEYS[1], ARGV[2])
		else
			return 0
		end
	`

	result, err := l.client.GetClient().Eval(ctx, script, []string{l.buildLockKey()}, l.value, int(l.ttl.Seconds())).Result()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if result.(int64) == 0 {
		return fmt.Errorf("lock was not held by this client")
	}
	return nil
}

// AutoRefresh starts a goroutine that refreshes the lock at the given
// interval until the context is cancelled or a refresh fails. The returned
// channel receives the terminating error.
func (l *Lock) AutoRefresh(ctx context.Context, interval time.Duration) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}
