package model

import "time"

// OrderStatus 订单状态（按顺序流转，但不强制校验）
type OrderStatus string

const (
	OrderStatusReceived         OrderStatus = "RECEIVED"          // 接单
	OrderStatusPaymentConfirmed OrderStatus = "PAYMENT_CONFIRMED" // 支付确认
	OrderStatusPreparing        OrderStatus = "PREPARING"         // 备货
	OrderStatusPacking          OrderStatus = "PACKING"           // 打包
	OrderStatusShipped          OrderStatus = "SHIPPED"           // 出库
	OrderStatusInDelivery       OrderStatus = "IN_DELIVERY"       // 配送中
	OrderStatusDelivered        OrderStatus = "DELIVERED"         // 已送达
)

// Valid 是否为已知状态
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusReceived, OrderStatusPaymentConfirmed, OrderStatusPreparing, OrderStatusPacking,
		OrderStatusShipped, OrderStatusInDelivery, OrderStatusDelivered:
		return true
	}
	return false
}

// Order 订单
type Order struct {
	OrderID        string       `gorm:"primaryKey;type:varchar(64)"`
	SystemOrderRef string       `gorm:"type:varchar(32);uniqueIndex;not null"`
	Status         OrderStatus  `gorm:"type:varchar(32);index;not null"`
	Shipping       ShippingInfo `gorm:"embedded;embeddedPrefix:shipping_"`
	TotalAmount    int64        `gorm:"not null"`
	OrderedAt      time.Time    `gorm:"not null"`
	ReceivedAt     time.Time    `gorm:"not null"`
	UpdatedAt      time.Time
}

func (Order) TableName() string { return "orders" }

// ShippingInfo 收货信息，内嵌于 orders 表
type ShippingInfo struct {
	RecipientName string  `gorm:"type:varchar(100);not null"`
	PhoneNumber   string  `gorm:"type:varchar(32);not null"`
	ZipCode       string  `gorm:"type:varchar(16);not null"`
	Address       string  `gorm:"type:varchar(255);not null"`
	AddressDetail *string `gorm:"type:varchar(255)"`
	Memo          *string `gorm:"type:varchar(255)"`
	EntranceCode  *string `gorm:"type:varchar(64)"`
}

// OrderLine 订单行，创建后不可变
type OrderLine struct {
	OrderID     string `gorm:"primaryKey;type:varchar(64)"`
	LineID      string `gorm:"primaryKey;type:varchar(64)"`
	Seq         int    `gorm:"not null"`
	ProductID   string `gorm:"type:varchar(64);index:idx_order_line_sku;not null"`
	OptionID    string `gorm:"type:varchar(64);index:idx_order_line_sku;not null"`
	ProductName string `gorm:"type:varchar(255)"`
	OptionName  string `gorm:"type:varchar(255)"`
	Quantity    int    `gorm:"not null"`
	UnitPrice   int64  `gorm:"not null"`
	TotalPrice  int64  `gorm:"not null"`
}

func (OrderLine) TableName() string { return "order_lines" }
