package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/mock-oms/internal/metrics"
	"github.com/d60-Lab/mock-oms/internal/model"
	"github.com/d60-Lab/mock-oms/internal/repository"
	"github.com/d60-Lab/mock-oms/pkg/logger"
)

// OrderService 订单受理与状态维护
type OrderService interface {
	// CreateOrder 校验库存、扣减库存并落地订单，全部在一个事务内完成
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*OrderResponse, error)
	// UpdateOrderStatus 直接覆盖状态，不校验流转顺序
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*OrderResponse, error)
}

type orderService struct {
	tx       repository.Transactor
	orders   repository.OrderRepository
	stocks   repository.StockRepository
	notifier StockNotifier
}

func NewOrderService(tx repository.Transactor, orders repository.OrderRepository, stocks repository.StockRepository, notifier StockNotifier) OrderService {
	return &orderService{tx: tx, orders: orders, stocks: stocks, notifier: notifier}
}

// newID 前缀 + UUID 前 8 位（大写）
func newID(prefix string) string {
	return prefix + strings.ToUpper(uuid.New().String()[:8])
}

func (s *orderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	seen := make(map[string]struct{}, len(req.OrderLines))
	for _, l := range req.OrderLines {
		if _, ok := seen[l.LineID]; ok {
			metrics.OrdersTotal.WithLabelValues("invalid").Inc()
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLineID, l.LineID)
		}
		seen[l.LineID] = struct{}{}
	}

	now := time.Now().UTC()
	order := &model.Order{
		OrderID:        req.OrderID,
		SystemOrderRef: newID("OMS-ORD-"),
		Status:         model.OrderStatusReceived,
		Shipping: model.ShippingInfo{
			RecipientName: req.Shipping.RecipientName,
			PhoneNumber:   req.Shipping.PhoneNumber,
			ZipCode:       req.Shipping.ZipCode,
			Address:       req.Shipping.Address,
			AddressDetail: req.Shipping.AddressDetail,
			Memo:          req.Shipping.Memo,
			EntranceCode:  req.Shipping.EntranceCode,
		},
		TotalAmount: req.TotalAmount,
		OrderedAt:   req.OrderedAt.UTC(),
		ReceivedAt:  now,
		UpdatedAt:   now,
	}
	lines := make([]model.OrderLine, len(req.OrderLines))
	for i, l := range req.OrderLines {
		lines[i] = model.OrderLine{
			LineID:      l.LineID,
			ProductID:   l.ProductID,
			OptionID:    l.OptionID,
			ProductName: l.ProductName,
			OptionName:  l.OptionName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalPrice:  l.TotalPrice,
		}
	}

	var changed []*model.Stock
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.orders.Exists(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if exists {
			return ErrDuplicateOrder
		}

		// 先整体校验，任一行不足即终止
		for _, l := range lines {
			st, err := s.stocks.Get(ctx, l.ProductID, l.OptionID)
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("get stock: %w", err)
			}
			if st.AvailableQuantity < l.Quantity {
				return &InsufficientStockError{
					ProductID: l.ProductID,
					OptionID:  l.OptionID,
					Requested: l.Quantity,
					Available: st.AvailableQuantity,
				}
			}
		}

		changed, err = s.reserve(ctx, lines)
		if err != nil {
			return err
		}

		if err := s.orders.Create(ctx, order, lines); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrDuplicateOrder
			}
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		metrics.OrdersTotal.WithLabelValues(orderResult(err)).Inc()
		return nil, err
	}
	metrics.OrdersTotal.WithLabelValues("created").Inc()
	logger.Info("order created",
		zap.String("order_id", order.OrderID),
		zap.String("system_order_ref", order.SystemOrderRef),
		zap.Int("lines", len(lines)))

	pushStocks(ctx, s.notifier, changed)

	return &CreateOrderResponse{
		OrderID:        order.OrderID,
		SystemOrderRef: order.SystemOrderRef,
		Status:         order.Status,
		ReceivedAt:     order.ReceivedAt,
	}, nil
}

// reserve 按行扣减已登记的库存，未登记的 SKU 跳过；返回变更后的库存（同一 SKU 只保留最后一次）
func (s *orderService) reserve(ctx context.Context, lines []model.OrderLine) ([]*model.Stock, error) {
	var changed []*model.Stock
	index := make(map[[2]string]int)
	for _, l := range lines {
		if _, err := s.stocks.Get(ctx, l.ProductID, l.OptionID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get stock: %w", err)
		}
		st, err := adjustStock(ctx, s.stocks, l.ProductID, l.OptionID, -l.Quantity)
		if err != nil {
			return nil, err
		}
		key := [2]string{st.ProductID, st.OptionID}
		if i, ok := index[key]; ok {
			changed[i] = st
			continue
		}
		index[key] = len(changed)
		changed = append(changed, st)
	}
	return changed, nil
}

func orderResult(err error) string {
	var insufficient *InsufficientStockError
	switch {
	case errors.Is(err, ErrDuplicateOrder):
		return "duplicate"
	case errors.As(err, &insufficient):
		return "insufficient_stock"
	default:
		return "error"
	}
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	return s.load(ctx, orderID)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*OrderResponse, error) {
	var resp *OrderResponse
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("update order status: %w", err)
		}
		var err error
		resp, err = s.load(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.OrderStatusTransitions.WithLabelValues("api", string(status)).Inc()
	return resp, nil
}

func (s *orderService) load(ctx context.Context, orderID string) (*OrderResponse, error) {
	o, err := s.orders.GetByOrderID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	lines, err := s.orders.ListLines(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	return toOrderResponse(o, lines), nil
}
