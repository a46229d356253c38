package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"go-gin-cinema-booking/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// SeatCatalogCache 影廳座位（建立後不變）的快取
type SeatCatalogCache interface {
	// Get 第二個回傳值為 false 代表 cache miss
	Get(ctx context.Context, theaterID int) ([]*model.Seat, bool, error)
	Set(ctx context.Context, theaterID int, seats []*model.Seat) error
	Invalidate(ctx context.Context, theaterID int) error
}

type RedisSeatCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSeatCatalogCache(client *redis.Client, ttl time.Duration) SeatCatalogCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisSeatCatalogCache{
		client: client,
		ttl:    ttl,
	}
}

// 座位快取 key
func (c *RedisSeatCatalogCache) key(theaterID int) string {
	return fmt.Sprintf("theater:%d:seats", theaterID)
}

func (c *RedisSeatCatalogCache) Get(ctx context.Context, theaterID int) ([]*model.Seat, bool, error) {
	raw, err := c.client.Get(ctx, c.key(theaterID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var seats []*model.Seat
	if err := json.Unmarshal(raw, &seats); err != nil {
		return nil, false, fmt.Errorf("decode cached seats: %w", err)
	}
	return seats, true, nil
}

func (c *RedisSeatCatalogCache) Set(ctx context.Context, theaterID int, seats []*model.Seat) error {
	raw, err := json.Marshal(seats)
	if err != nil {
		return fmt.Errorf("encode seats: %w", err)
	}
	return c.client.Set(ctx, c.key(theaterID), raw, c.ttl).Err()
}

func (c *RedisSeatCatalogCache) Invalidate(ctx context.Context, theaterID int) error {
	return c.client.Del(ctx, c.key(theaterID)).Err()
}
