package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/mock-oms/internal/client/mall"
	"github.com/d60-Lab/mock-oms/internal/model"
	"github.com/d60-Lab/mock-oms/pkg/logger"
)

// StockNotifier 向商城推送库存变更。
// 返回的错误只用于记录日志，调用方不会因此失败。
type StockNotifier interface {
	SyncStocks(ctx context.Context, req mall.StockSyncRequest) error
}

// ShipmentNotifier 向商城推送发货状态，失败处理同 StockNotifier
type ShipmentNotifier interface {
	SendShipmentStatus(ctx context.Context, req mall.ShipmentStatusRequest) error
}

// NopNotifier 丢弃所有通知（未配置商城时使用）
type NopNotifier struct{}

func (NopNotifier) SyncStocks(context.Context, mall.StockSyncRequest) error { return nil }

func (NopNotifier) SendShipmentStatus(context.Context, mall.ShipmentStatusRequest) error { return nil }

func pushStocks(ctx context.Context, n StockNotifier, stocks []*model.Stock) {
	if n == nil || len(stocks) == 0 {
		return
	}
	req := mall.StockSyncRequest{Stocks: make([]mall.StockItem, len(stocks)), SyncedAt: time.Now().UTC()}
	for i, s := range stocks {
		req.Stocks[i] = mall.StockItem{
			ProductID:         s.ProductID,
			OptionID:          s.OptionID,
			AvailableQuantity: s.AvailableQuantity,
		}
	}
	if err := n.SyncStocks(ctx, req); err != nil {
		fields := []zap.Field{zap.Int("stocks", len(stocks)), zap.Error(err)}
		if len(stocks) == 1 {
			fields = append(fields,
				zap.String("product_id", stocks[0].ProductID),
				zap.String("option_id", stocks[0].OptionID))
		}
		logger.Warn("failed to sync stock to mall", fields...)
	}
}

func pushShipment(ctx context.Context, n ShipmentNotifier, s *model.Shipment, lineIDs []string) {
	if n == nil {
		return
	}
	if lineIDs == nil {
		lineIDs = []string{}
	}
	req := mall.ShipmentStatusRequest{
		OrderID: s.OrderID,
		Shipments: []mall.ShipmentItem{{
			ShipmentID:      s.ShipmentID,
			CarrierCode:     s.CarrierCode,
			TrackingNumber:  s.TrackingNumber,
			Status:          string(s.Status),
			StatusUpdatedAt: s.StatusUpdatedAt,
			OrderLines:      lineIDs,
		}},
	}
	if err := n.SendShipmentStatus(ctx, req); err != nil {
		logger.Warn("failed to send shipment status to mall",
			zap.String("order_id", s.OrderID),
			zap.String("shipment_id", s.ShipmentID),
			zap.String("status", string(s.Status)),
			zap.Error(err))
	}
}
