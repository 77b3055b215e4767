package seats

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"skybook/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisLockPrefix = "skybook:seatlock:"

// Lua script for atomic lock acquisition - a lock held by a different
// holder wins, the same holder refreshes. Value layout: "holder|lockedAt".
const luaAcquireLock = `
local current = redis.call("GET", KEYS[1])
if current then
	local holder = string.match(current, "^([^|]+)")
	if holder ~= ARGV[1] then
		return 0
	end
end
redis.call("SET", KEYS[1], ARGV[1] .. "|" .. ARGV[3], "EXAT", ARGV[2])
return 1
`

// Lua script for atomic compare-and-delete release.
// Returns -1 when no lock exists, 0 when held by someone else.
const luaReleaseLock = `
local current = redis.call("GET", KEYS[1])
if not current then
	return -1
end
local holder = string.match(current, "^([^|]+)")
if holder ~= ARGV[1] and ARGV[2] ~= "1" then
	return 0
end
redis.call("DEL", KEYS[1])
return 1
`

// RedisLockStore shares the lock table across instances. Expiry rides on
// Redis native TTL, so Sweep has nothing to do.
type RedisLockStore struct {
	client *redis.Client
}

func NewRedisLockStore(client *redis.Client) *RedisLockStore {
	return &RedisLockStore{client: client}
}

func redisLockKey(flightID uuid.UUID, seatNumber string) string {
	return fmt.Sprintf("%s%s:%s", redisLockPrefix, flightID, seatNumber)
}

func (s *RedisLockStore) Acquire(ctx context.Context, flightID uuid.UUID, seatNumber, holder string, expiresAt time.Time) (*SeatLock, error) {
	now := time.Now()
	key := redisLockKey(flightID, seatNumber)

	result, err := s.client.Eval(ctx, luaAcquireLock, []string{key},
		holder, expiresAt.Unix(), now.Unix()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis eval failed: %w", err)
	}

	if acquired, ok := result.(int64); !ok || acquired != 1 {
		return nil, apperr.Conflict("seat %s is locked by another holder", seatNumber)
	}

	return &SeatLock{
		FlightID:   flightID,
		SeatNumber: seatNumber,
		Holder:     holder,
		LockedAt:   now,
		ExpiresAt:  expiresAt,
	}, nil
}

func (s *RedisLockStore) Release(ctx context.Context, flightID uuid.UUID, seatNumber, holder string, admin bool) error {
	key := redisLockKey(flightID, seatNumber)

	adminFlag := "0"
	if admin {
		adminFlag = "1"
	}

	result, err := s.client.Eval(ctx, luaReleaseLock, []string{key}, holder, adminFlag).Result()
	if err != nil {
		return fmt.Errorf("redis eval failed: %w", err)
	}

	code, ok := result.(int64)
	if !ok {
		return fmt.Errorf("unexpected redis response")
	}
	switch code {
	case -1:
		return apperr.NotFound("seat %s is not locked", seatNumber)
	case 0:
		return apperr.NotAuthorized("seat %s is locked by another holder", seatNumber)
	}
	return nil
}

func (s *RedisLockStore) ByHolder(ctx context.Context, flightID uuid.UUID, holder string) ([]SeatLock, error) {
	var locks []SeatLock

	err := s.scanFlightLocks(ctx, flightID, func(lock SeatLock) {
		if lock.Holder == holder {
			locks = append(locks, lock)
		}
	})
	if err != nil {
		return nil, err
	}
	return locks, nil
}

func (s *RedisLockStore) CountLocked(ctx context.Context, flightID uuid.UUID) (int, error) {
	count := 0
	err := s.scanFlightLocks(ctx, flightID, func(SeatLock) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Sweep is a no-op: Redis evicts expired keys itself.
func (s *RedisLockStore) Sweep(ctx context.Context) int {
	return 0
}

func (s *RedisLockStore) scanFlightLocks(ctx context.Context, flightID uuid.UUID, fn func(SeatLock)) error {
	prefix := redisLockPrefix + flightID.String() + ":"
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()

	for iter.Next(ctx) {
		key := iter.Val()

		value, err := s.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue // expired between SCAN and GET
		}
		if err != nil {
			return fmt.Errorf("redis get failed: %w", err)
		}

		ttl, err := s.client.TTL(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("redis ttl failed: %w", err)
		}

		holder, lockedAt := parseLockValue(value)
		fn(SeatLock{
			FlightID:   flightID,
			SeatNumber: strings.TrimPrefix(key, prefix),
			Holder:     holder,
			LockedAt:   lockedAt,
			ExpiresAt:  time.Now().Add(ttl),
		})
	}
	return iter.Err()
}

func parseLockValue(value string) (holder string, lockedAt time.Time) {
	parts := strings.SplitN(value, "|", 2)
	holder = parts[0]
	if len(parts) == 2 {
		if unix, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			lockedAt = time.Unix(unix, 0)
		}
	}
	return holder, lockedAt
}
