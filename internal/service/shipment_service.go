package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/mock-oms/internal/metrics"
	"github.com/d60-Lab/mock-oms/internal/model"
	"github.com/d60-Lab/mock-oms/internal/repository"
	"github.com/d60-Lab/mock-oms/pkg/logger"
)

// ShipmentService 发货单维护；发货事件会推进订单状态并通知商城
type ShipmentService interface {
	CreateShipment(ctx context.Context, req *CreateShipmentRequest) (*ShipmentResponse, error)
	UpdateShipmentStatus(ctx context.Context, shipmentID string, status model.ShipmentStatus) (*ShipmentResponse, error)
	GetShipment(ctx context.Context, shipmentID string) (*ShipmentResponse, error)
	GetShipmentsByOrderID(ctx context.Context, orderID string) ([]*ShipmentResponse, error)
}

type shipmentService struct {
	tx        repository.Transactor
	shipments repository.ShipmentRepository
	orders    repository.OrderRepository
	notifier  ShipmentNotifier
}

func NewShipmentService(tx repository.Transactor, shipments repository.ShipmentRepository, orders repository.OrderRepository, notifier ShipmentNotifier) ShipmentService {
	return &shipmentService{tx: tx, shipments: shipments, orders: orders, notifier: notifier}
}

func (s *shipmentService) CreateShipment(ctx context.Context, req *CreateShipmentRequest) (*ShipmentResponse, error) {
	now := time.Now().UTC()
	shipment := &model.Shipment{
		ShipmentID:      newID("SHP-"),
		OrderID:         req.OrderID,
		CarrierCode:     req.CarrierCode,
		TrackingNumber:  req.TrackingNumber,
		Status:          model.ShipmentStatusPickedUp,
		StatusUpdatedAt: now,
		CreatedAt:       now,
	}
	lineIDs := append([]string{}, req.OrderLineIDs...)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.shipments.Create(ctx, shipment, lineIDs); err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}
		return s.advanceOrder(ctx, shipment.OrderID, orderStatusOnShipmentCreated)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("shipment created",
		zap.String("shipment_id", shipment.ShipmentID),
		zap.String("order_id", shipment.OrderID))

	pushShipment(ctx, s.notifier, shipment, lineIDs)
	return toShipmentResponse(shipment, lineIDs), nil
}

func (s *shipmentService) UpdateShipmentStatus(ctx context.Context, shipmentID string, status model.ShipmentStatus) (*ShipmentResponse, error) {
	var (
		shipment *model.Shipment
		lineIDs  []string
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		shipment, err = s.get(ctx, shipmentID)
		if err != nil {
			return err
		}
		shipment.Status = status
		shipment.StatusUpdatedAt = time.Now().UTC()
		if err := s.shipments.UpdateStatus(ctx, shipment.ShipmentID, shipment.Status, shipment.StatusUpdatedAt); err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		siblings, err := s.shipments.ListByOrderID(ctx, shipment.OrderID)
		if err != nil {
			return fmt.Errorf("list shipments: %w", err)
		}
		all := make([]model.ShipmentStatus, len(siblings))
		for i, sh := range siblings {
			all[i] = sh.Status
		}
		err = s.advanceOrder(ctx, shipment.OrderID, func(current model.OrderStatus) (model.OrderStatus, bool) {
			return orderStatusOnShipmentUpdated(current, status, all)
		})
		if err != nil {
			return err
		}

		ids, err := s.shipments.ListLineIDs(ctx, shipment.ShipmentID)
		if err != nil {
			return fmt.Errorf("list shipment lines: %w", err)
		}
		lineIDs = ids[shipment.ShipmentID]
		return nil
	})
	if err != nil {
		return nil, err
	}

	pushShipment(ctx, s.notifier, shipment, lineIDs)
	return toShipmentResponse(shipment, lineIDs), nil
}

// advanceOrder 订单不存在时忽略；next 给出的状态与当前不同才写入
func (s *shipmentService) advanceOrder(ctx context.Context, orderID string, next func(model.OrderStatus) (model.OrderStatus, bool)) error {
	order, err := s.orders.GetByOrderID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	status, ok := next(order.Status)
	if !ok || status == order.Status {
		return nil
	}
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	metrics.OrderStatusTransitions.WithLabelValues("shipment", string(status)).Inc()
	logger.Info("order status advanced by shipment",
		zap.String("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)))
	return nil
}

func (s *shipmentService) GetShipment(ctx context.Context, shipmentID string) (*ShipmentResponse, error) {
	shipment, err := s.get(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	ids, err := s.shipments.ListLineIDs(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list shipment lines: %w", err)
	}
	return toShipmentResponse(shipment, ids[shipmentID]), nil
}

func (s *shipmentService) GetShipmentsByOrderID(ctx context.Context, orderID string) ([]*ShipmentResponse, error) {
	list, err := s.shipments.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	ids := make([]string, len(list))
	for i, sh := range list {
		ids[i] = sh.ShipmentID
	}
	lines, err := s.shipments.ListLineIDs(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("list shipment lines: %w", err)
	}
	res := make([]*ShipmentResponse, len(list))
	for i, sh := range list {
		res[i] = toShipmentResponse(sh, lines[sh.ShipmentID])
	}
	return res, nil
}

func (s *shipmentService) get(ctx context.Context, shipmentID string) (*model.Shipment, error) {
	sh, err := s.shipments.GetByID(ctx, shipmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return sh, nil
}
