package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/mock-oms/internal/model"
	"github.com/d60-Lab/mock-oms/pkg/logger"
)

// OrderCache 订单记录的 Redis 旁路缓存。缓存故障只记录日志，不影响主流程。
type OrderCache struct {
	client *redis.Client
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

func NewOrderCache(client *redis.Client, ttl time.Duration) *OrderCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OrderCache{client: client, ttl: ttl}
}

func orderKey(orderID string) string {
	return fmt.Sprintf("oms:order:%s", orderID)
}

// Get 命中时返回 (order, true)
func (c *OrderCache) Get(ctx context.Context, orderID string) (*model.Order, bool) {
	data, err := c.client.Get(ctx, orderKey(orderID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("order cache get failed", zap.String("order_id", orderID), zap.Error(err))
		}
		c.misses.Add(1)
		return nil, false
	}
	var o model.Order
	if err := json.Unmarshal(data, &o); err != nil {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return &o, true
}

func (c *OrderCache) Set(ctx context.Context, order *model.Order) {
	payload, err := json.Marshal(order)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, orderKey(order.OrderID), payload, c.ttl).Err(); err != nil {
		logger.Warn("order cache set failed", zap.String("order_id", order.OrderID), zap.Error(err))
	}
}

func (c *OrderCache) Invalidate(ctx context.Context, orderID string) {
	if err := c.client.Del(ctx, orderKey(orderID)).Err(); err != nil {
		logger.Warn("order cache invalidate failed", zap.String("order_id", orderID), zap.Error(err))
	}
}

// Stats 命中/未命中计数
func (c *OrderCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
