package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL       = 10 * time.Second
	retryInterval = 25 * time.Millisecond
)

// releaseScript deletes the lock only when it still holds our token, so an
// expired lease taken over by another replica is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// UserLock serializes updates to a single user across API replicas sharing
// one database. Key format: lock:user:<user_id>. The lease expires after
// lockTTL so a crashed holder cannot wedge the user forever.
type UserLock struct {
	client *redis.Client
}

// NewUserLock creates a UserLock wrapping the given Redis client.
func NewUserLock(client *redis.Client) *UserLock {
	return &UserLock{client: client}
}

// Acquire blocks until the lock for userID is held or ctx is done. The
// returned release function must be called exactly once.
func (l *UserLock) Acquire(ctx context.Context, userID string) (func(), error) {
	key := "lock:user:" + userID
	token := randomToken()

	for {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire user lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	release := func() {
		// Best effort: on failure the lease expires on its own.
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		_ = releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}
	return release, nil
}

func randomToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
