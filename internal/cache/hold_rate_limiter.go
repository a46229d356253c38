package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateDecision 一次取 token 的結果
type RateDecision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

type HoldRateLimiter interface {
	// Take 為 key 取一個 token (使用Lua腳本確保原子性)
	Take(ctx context.Context, key string) (RateDecision, error)
}

type RedisHoldRateLimiter struct {
	client   *redis.Client
	capacity int
	refill   time.Duration
	script   *redis.Script
}

/*
*

	Token bucket：
	1. 讀取目前 token 數與上次補充時間
	2. 依經過的時間補充 token（不超過容量）
	3. 有 token 則扣一個，否則回傳需等待的毫秒數
*/
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local interval_ms = tonumber(ARGV[3])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	-- 補充 token
	if interval_ms > 0 then
		local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + intervals)
			last_refill = last_refill + intervals * interval_ms
		end
	end

	local allowed = 0
	local retry_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		retry_ms = math.max(0, interval_ms - (now_ms - last_refill))
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('PEXPIRE', key, interval_ms * capacity + 1000)

	return {allowed, tokens, retry_ms}
`)

func NewRedisHoldRateLimiter(client *redis.Client, capacity int, refill time.Duration) HoldRateLimiter {
	return &RedisHoldRateLimiter{
		client:   client,
		capacity: capacity,
		refill:   refill,
		script:   tokenBucketScript,
	}
}

func (l *RedisHoldRateLimiter) Take(ctx context.Context, key string) (RateDecision, error) {
	result, err := l.script.Run(ctx, l.client, []string{"ratelimit:hold:" + key},
		time.Now().UnixMilli(), l.capacity, l.refill.Milliseconds(),
	).Result()
	if err != nil {
		return RateDecision{}, err
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 3 {
		return RateDecision{}, errors.New("unexpected rate limit script result")
	}

	allowed, ok1 := values[0].(int64)
	remaining, ok2 := values[1].(int64)
	retryMs, ok3 := values[2].(int64)
	if !ok1 || !ok2 || !ok3 {
		return RateDecision{}, fmt.Errorf("unexpected rate limit values: %v", values)
	}

	return RateDecision{
		Allowed:    allowed == 1,
		Remaining:  remaining,
		RetryAfter: time.Duration(retryMs) * time.Millisecond,
	}, nil
}
