// File: utils/lock.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SlotLockTTL bounds how long an admission attempt may hold a slot lock.
const SlotLockTTL = 5 * time.Second

// ErrLockHeld is returned when another admission attempt holds the slot lock.
var ErrLockHeld = fmt.Errorf("slot lock already held")

// releaseScript deletes the lock only if it is still owned by the caller.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SlotLocker serializes booking admissions on a (therapist, date, time) key.
type SlotLocker struct {
	Client *redis.Client
}

// NewSlotLocker constructs a SlotLocker backed by the given Redis client.
func NewSlotLocker(client *redis.Client) *SlotLocker {
	return &SlotLocker{Client: client}
}

// SlotLockKey builds the Redis key guarding one bookable slot.
func SlotLockKey(therapistID, date, timeOfDay string) string {
	return fmt.Sprintf("slotlock:%s:%s:%s", therapistID, date, timeOfDay)
}

// Acquire takes the lock for the given slot key. It does not block: if the
// lock is held the caller loses the race and should surface a conflict.
// The returned token must be passed to Release.
func (l *SlotLocker) Acquire(ctx context.Context, key string) (string, error) {
	token := uuid.New().String()
	ok, err := l.Client.SetNX(ctx, key, token, SlotLockTTL).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire slot lock: %w", err)
	}
	if !ok {
		return "", ErrLockHeld
	}
	return token, nil
}

// Release frees the lock if the caller still owns it. A lock lost to TTL
// expiry is not an error.
func (l *SlotLocker) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, l.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to release slot lock: %w", err)
	}
	return nil
}
