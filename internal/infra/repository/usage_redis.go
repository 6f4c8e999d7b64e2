package repository

import (
	"context"
	"time"

	"request-market/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Counter keys live well past their period so a late read never resurrects a
// fresh zero from an expired key mid-month.
const usageKeyTTL = 62 * 24 * time.Hour

var usageIncrScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RedisUsageCounter is the alternative counter backend for deployments that
// keep quota state out of the primary database. INCR is atomic per key, which
// gives the same lost-update guarantee as the SQL upsert.
type RedisUsageCounter struct {
	client *redis.Client
	prefix string
}

func NewRedisUsageCounter(client *redis.Client, prefix string) *RedisUsageCounter {
	if prefix == "" {
		prefix = "market:usage"
	}
	return &RedisUsageCounter{client: client, prefix: prefix}
}

func (r *RedisUsageCounter) key(userID uuid.UUID, period string) string {
	return r.prefix + ":" + period + ":" + userID.String()
}

func (r *RedisUsageCounter) Get(ctx context.Context, userID uuid.UUID, period string) (int, error) {
	count, err := r.client.Get(ctx, r.key(userID, period)).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read usage counter", err, infra.KindUnavailable)
	}
	return count, nil
}

func (r *RedisUsageCounter) Increment(ctx context.Context, userID uuid.UUID, period string) (int, error) {
	count, err := usageIncrScript.Run(ctx, r.client, []string{r.key(userID, period)}, usageKeyTTL.Milliseconds()).Int()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment usage counter", err, infra.KindUnavailable)
	}
	return count, nil
}
