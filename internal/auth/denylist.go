// AngelaMos | 2026
// denylist.go

package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "blacklist:"

// Denylist records revoked token ids until the moment the token would
// have expired on its own.
type Denylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Revoke(
	ctx context.Context,
	jti string,
	until time.Time,
) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, denylistPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist token: %w", err)
	}

	return nil
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	exists, err := d.client.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check denylist: %w", err)
	}

	return exists > 0, nil
}

// MemoryDenylist keeps revocations in process. Revocations are lost on
// restart and are not shared between replicas.
type MemoryDenylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (d *MemoryDenylist) Revoke(
	_ context.Context,
	jti string,
	until time.Time,
) error {
	now := d.now()
	if !until.After(now) {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for id, exp := range d.entries {
		if !exp.After(now) {
			delete(d.entries, id)
		}
	}

	if current, ok := d.entries[jti]; !ok || until.After(current) {
		d.entries[jti] = until
	}

	return nil
}

func (d *MemoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.RLock()
	exp, ok := d.entries[jti]
	d.mu.RUnlock()

	return ok && exp.After(d.now()), nil
}

func (d *MemoryDenylist) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}
