package repository

import (
	"context"

	"github.com/d60-Lab/mock-oms/internal/cache"
	"github.com/d60-Lab/mock-oms/internal/model"
)

// cachedOrderRepository 在 OrderRepository 外包一层读缓存。
// 事务内的读直接走数据库，避免缓存未提交的数据；状态变更在写入时和提交后各失效一次。
type cachedOrderRepository struct {
	OrderRepository
	cache *cache.OrderCache
}

func NewCachedOrderRepository(inner OrderRepository, c *cache.OrderCache) OrderRepository {
	return &cachedOrderRepository{OrderRepository: inner, cache: c}
}

func (r *cachedOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	if InTransaction(ctx) {
		return r.OrderRepository.GetByOrderID(ctx, orderID)
	}
	if o, ok := r.cache.Get(ctx, orderID); ok {
		return o, nil
	}
	o, err := r.OrderRepository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, o)
	return o, nil
}

func (r *cachedOrderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if err := r.OrderRepository.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, orderID)
	AfterCommit(ctx, func(ctx context.Context) { r.cache.Invalidate(ctx, orderID) })
	return nil
}
