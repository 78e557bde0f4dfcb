package model

import "time"

type ShipmentStatus string

const (
	ShipmentStatusPickedUp       ShipmentStatus = "PICKED_UP"        // 揽收
	ShipmentStatusInTransit      ShipmentStatus = "IN_TRANSIT"       // 干线运输
	ShipmentStatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY" // 派送中
	ShipmentStatusDelivered      ShipmentStatus = "DELIVERED"        // 已送达
	ShipmentStatusConfirmed      ShipmentStatus = "CONFIRMED"        // 已签收确认
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentStatusPickedUp, ShipmentStatusInTransit, ShipmentStatusOutForDelivery,
		ShipmentStatusDelivered, ShipmentStatusConfirmed:
		return true
	}
	return false
}

// Finished 已送达或已签收
func (s ShipmentStatus) Finished() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusConfirmed
}

// Shipment 发货单
type Shipment struct {
	ShipmentID      string         `gorm:"primaryKey;type:varchar(32)"`
	OrderID         string         `gorm:"type:varchar(64);index;not null"`
	CarrierCode     string         `gorm:"type:varchar(32);not null"`
	TrackingNumber  string         `gorm:"type:varchar(64);not null"`
	Status          ShipmentStatus `gorm:"type:varchar(32);not null"`
	StatusUpdatedAt time.Time      `gorm:"not null"`
	CreatedAt       time.Time      `gorm:"index"`
}

func (Shipment) TableName() string { return "shipments" }

// ShipmentLine 发货单覆盖的订单行（保持请求中的顺序）
type ShipmentLine struct {
	ShipmentID string `gorm:"primaryKey;type:varchar(32)"`
	Seq        int    `gorm:"primaryKey;autoIncrement:false"`
	LineID     string `gorm:"type:varchar(64);not null"`
}

func (ShipmentLine) TableName() string { return "shipment_lines" }
