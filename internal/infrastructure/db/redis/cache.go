package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/orderdesk/orders-admin/internal/core/domain"
)

const (
	orderListKey = "orders:all"
	orderListTTL = time.Minute
)

// OrderListCache caches the full order listing in Redis under a short TTL.
// All failures degrade to a cache miss; the cache never turns a listing
// into an error.
type OrderListCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewOrderListCache creates an OrderListCache wrapping the given client.
func NewOrderListCache(client *redis.Client, log zerolog.Logger) *OrderListCache {
	return &OrderListCache{client: client, log: log}
}

func (c *OrderListCache) Get(ctx context.Context) ([]*domain.Order, bool) {
	raw, err := c.client.Get(ctx, orderListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("order cache read failed")
		}
		return nil, false
	}

	var orders []*domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		c.log.Warn().Err(err).Msg("order cache payload corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return orders, true
}

func (c *OrderListCache) Set(ctx context.Context, orders []*domain.Order) {
	raw, err := json.Marshal(orders)
	if err != nil {
		c.log.Warn().Err(err).Msg("order cache encode failed")
		return
	}
	if err := c.client.Set(ctx, orderListKey, raw, orderListTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("order cache write failed")
	}
}

func (c *OrderListCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, orderListKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("order cache invalidation failed")
	}
}
