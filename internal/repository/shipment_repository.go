package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/mock-oms/internal/model"
)

type ShipmentRepository interface {
	// Create 写入发货单及其覆盖的订单行ID（保持顺序）
	Create(ctx context.Context, shipment *model.Shipment, lineIDs []string) error
	GetByID(ctx context.Context, shipmentID string) (*model.Shipment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]*model.Shipment, error)
	ListLineIDs(ctx context.Context, shipmentIDs ...string) (map[string][]string, error)
	UpdateStatus(ctx context.Context, shipmentID string, status model.ShipmentStatus, at time.Time) error
}

type shipmentRepository struct{ db *gorm.DB }

func NewShipmentRepository(db *gorm.DB) ShipmentRepository { return &shipmentRepository{db: db} }

func (r *shipmentRepository) Create(ctx context.Context, shipment *model.Shipment, lineIDs []string) error {
	return translate(conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shipment).Error; err != nil {
			return err
		}
		if len(lineIDs) == 0 {
			return nil
		}
		rows := make([]model.ShipmentLine, len(lineIDs))
		for i, id := range lineIDs {
			rows[i] = model.ShipmentLine{ShipmentID: shipment.ShipmentID, Seq: i, LineID: id}
		}
		return tx.Create(&rows).Error
	}))
}

func (r *shipmentRepository) GetByID(ctx context.Context, shipmentID string) (*model.Shipment, error) {
	var s model.Shipment
	if err := conn(ctx, r.db).Where("shipment_id = ?", shipmentID).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *shipmentRepository) ListByOrderID(ctx context.Context, orderID string) ([]*model.Shipment, error) {
	var res []*model.Shipment
	err := conn(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("created_at ASC, shipment_id ASC").
		Find(&res).Error
	return res, err
}

func (r *shipmentRepository) ListLineIDs(ctx context.Context, shipmentIDs ...string) (map[string][]string, error) {
	out := make(map[string][]string, len(shipmentIDs))
	if len(shipmentIDs) == 0 {
		return out, nil
	}
	var rows []model.ShipmentLine
	if err := conn(ctx, r.db).
		Where("shipment_id IN ?", shipmentIDs).
		Order("shipment_id ASC, seq ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ShipmentID] = append(out[row.ShipmentID], row.LineID)
	}
	return out, nil
}

func (r *shipmentRepository) UpdateStatus(ctx context.Context, shipmentID string, status model.ShipmentStatus, at time.Time) error {
	res := conn(ctx, r.db).
		Model(&model.Shipment{}).
		Where("shipment_id = ?", shipmentID).
		Updates(map[string]any{"status": status, "status_updated_at": at})
	return updated(ctx, r.db, res, &model.Shipment{}, "shipment_id", shipmentID)
}
