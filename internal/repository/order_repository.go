package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/mock-oms/internal/model"
)

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Create 在同一事务内写入订单及其订单行
	Create(ctx context.Context, order *model.Order, lines []model.OrderLine) error

	// Exists 订单ID是否已存在
	Exists(ctx context.Context, orderID string) (bool, error)

	// GetByOrderID 根据订单ID查询订单，不存在时返回 ErrNotFound
	GetByOrderID(ctx context.Context, orderID string) (*model.Order, error)

	// ListLines 按下单顺序返回订单行
	ListLines(ctx context.Context, orderID string) ([]model.OrderLine, error)

	// UpdateStatus 更新订单状态，不存在时返回 ErrNotFound
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error

	// Count 统计订单数量
	Count(ctx context.Context) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepository{db: db} }

func (r *orderRepository) Create(ctx context.Context, order *model.Order, lines []model.OrderLine) error {
	return translate(conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].OrderID = order.OrderID
			lines[i].Seq = i
		}
		return tx.Create(&lines).Error
	}))
}

func (r *orderRepository) Exists(ctx context.Context, orderID string) (bool, error) {
	var cnt int64
	if err := conn(ctx, r.db).
		Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	if err := conn(ctx, r.db).Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepository) ListLines(ctx context.Context, orderID string) ([]model.OrderLine, error) {
	var lines []model.OrderLine
	err := conn(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("seq ASC").
		Find(&lines).Error
	return lines, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	res := conn(ctx, r.db).
		Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	return updated(ctx, r.db, res, &model.Order{}, "order_id", orderID)
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Order{}).Count(&count).Error
	return count, err
}
