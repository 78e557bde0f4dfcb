package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateOrder   = errors.New("order already exists")
	ErrOrderNotFound    = errors.New("order not found")
	ErrClaimNotFound    = errors.New("claim not found")
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrStockNotFound    = errors.New("stock not found")

	// ErrDuplicateLineID 同一订单内出现重复的 lineId
	ErrDuplicateLineID = errors.New("duplicate order line id")
)

// InsufficientStockError 订单行数量超过可售库存
type InsufficientStockError struct {
	ProductID string
	OptionID  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s/%s: requested %d, available %d",
		e.ProductID, e.OptionID, e.Requested, e.Available)
}
