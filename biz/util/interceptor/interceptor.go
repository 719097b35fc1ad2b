package interceptor

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rate_limit:"

// fixedWindow keeps INCR + EXPIRE atomic and re-arms keys that lost their TTL.
// KEYS[1]: counter key
// ARGV[1]: window in seconds
// ARGV[2]: max count within the window
var fixedWindow = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])

if current == 1 or redis.call("TTL", KEYS[1]) == -1 then
    redis.call("EXPIRE", KEYS[1], ARGV[1])
end

if current > tonumber(ARGV[2]) then
    return 0
end
return 1
`)

// Interceptor is a fixed-window counter shared by every instance through redis.
type Interceptor struct {
	client redis.Scripter
	window time.Duration
	limit  int64
}

func NewInterceptor(client redis.Scripter, windowSeconds int, limit int64) *Interceptor {
	return &Interceptor{
		client: client,
		window: time.Duration(windowSeconds) * time.Second,
		limit:  limit,
	}
}

// Allow counts one hit for key and reports whether it is still within the limit.
func (i *Interceptor) Allow(ctx context.Context, key string) (bool, error) {
	result, err := fixedWindow.Run(ctx, i.client, []string{Key(key)}, int(i.window.Seconds()), i.limit).Int64()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}

// Key is the redis key used for a counter.
func Key(key string) string {
	return keyPrefix + key
}
