package service

import (
	"time"

	"github.com/d60-Lab/mock-oms/internal/model"
)

// ---- 订单 ----

type CreateOrderRequest struct {
	OrderID     string             `json:"orderId" binding:"required"`
	OrderedAt   time.Time          `json:"orderedAt" binding:"required"`
	OrderLines  []OrderLineRequest `json:"orderLines" binding:"required,dive"`
	Shipping    ShippingRequest    `json:"shipping" binding:"required"`
	TotalAmount int64              `json:"totalAmount"`
}

type OrderLineRequest struct {
	LineID      string `json:"lineId" binding:"required"`
	ProductID   string `json:"productId" binding:"required"`
	OptionID    string `json:"optionId" binding:"required"`
	ProductName string `json:"productName"`
	OptionName  string `json:"optionName"`
	Quantity    int    `json:"quantity" binding:"gt=0"`
	UnitPrice   int64  `json:"unitPrice"`
	TotalPrice  int64  `json:"totalPrice"`
}

type ShippingRequest struct {
	RecipientName string  `json:"recipientName" binding:"required"`
	PhoneNumber   string  `json:"phoneNumber" binding:"required"`
	ZipCode       string  `json:"zipCode" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	AddressDetail *string `json:"addressDetail"`
	Memo          *string `json:"memo"`
	EntranceCode  *string `json:"entranceCode"`
}

type CreateOrderResponse struct {
	OrderID        string            `json:"orderId"`
	SystemOrderRef string            `json:"systemOrderRef"`
	Status         model.OrderStatus `json:"status"`
	ReceivedAt     time.Time         `json:"receivedAt"`
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required,order_status"`
}

// OrderResponse 订单完整视图
type OrderResponse struct {
	OrderID        string              `json:"orderId"`
	SystemOrderRef string              `json:"systemOrderRef"`
	Status         model.OrderStatus   `json:"status"`
	OrderLines     []OrderLineResponse `json:"orderLines"`
	Shipping       ShippingResponse    `json:"shipping"`
	TotalAmount    int64               `json:"totalAmount"`
	OrderedAt      time.Time           `json:"orderedAt"`
	ReceivedAt     time.Time           `json:"receivedAt"`
}

type OrderLineResponse struct {
	LineID      string `json:"lineId"`
	ProductID   string `json:"productId"`
	OptionID    string `json:"optionId"`
	ProductName string `json:"productName"`
	OptionName  string `json:"optionName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	TotalPrice  int64  `json:"totalPrice"`
}

type ShippingResponse struct {
	RecipientName string  `json:"recipientName"`
	PhoneNumber   string  `json:"phoneNumber"`
	ZipCode       string  `json:"zipCode"`
	Address       string  `json:"address"`
	AddressDetail *string `json:"addressDetail"`
	Memo          *string `json:"memo"`
	EntranceCode  *string `json:"entranceCode"`
}

func toOrderResponse(o *model.Order, lines []model.OrderLine) *OrderResponse {
	resp := &OrderResponse{
		OrderID:        o.OrderID,
		SystemOrderRef: o.SystemOrderRef,
		Status:         o.Status,
		OrderLines:     make([]OrderLineResponse, len(lines)),
		Shipping: ShippingResponse{
			RecipientName: o.Shipping.RecipientName,
			PhoneNumber:   o.Shipping.PhoneNumber,
			ZipCode:       o.Shipping.ZipCode,
			Address:       o.Shipping.Address,
			AddressDetail: o.Shipping.AddressDetail,
			Memo:          o.Shipping.Memo,
			EntranceCode:  o.Shipping.EntranceCode,
		},
		TotalAmount: o.TotalAmount,
		OrderedAt:   o.OrderedAt,
		ReceivedAt:  o.ReceivedAt,
	}
	for i, l := range lines {
		resp.OrderLines[i] = OrderLineResponse{
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
	return resp
}

// ---- 售后 ----

type CreateClaimRequest struct {
	OrderID        string                 `json:"orderId" binding:"required"`
	ClaimType      model.ClaimType        `json:"claimType" binding:"required,claim_type"`
	ClaimLines     []ClaimLineRequest     `json:"claimLines" binding:"required,dive"`
	ExchangeOption *ExchangeOptionRequest `json:"exchangeOption"`
}

type ClaimLineRequest struct {
	LineID   string  `json:"lineId" binding:"required"`
	Quantity int     `json:"quantity" binding:"gt=0"`
	Reason   *string `json:"reason"`
}

type ExchangeOptionRequest struct {
	OptionID string `json:"optionId" binding:"required"`
}

type CreateClaimResponse struct {
	ClaimID    string            `json:"claimId"`
	Status     model.ClaimStatus `json:"status"`
	ApprovedAt *time.Time        `json:"approvedAt"`
}

type ClaimResponse struct {
	ClaimID          string              `json:"claimId"`
	OrderID          string              `json:"orderId"`
	ClaimType        model.ClaimType     `json:"claimType"`
	Status           model.ClaimStatus   `json:"status"`
	ClaimLines       []ClaimLineResponse `json:"claimLines"`
	ExchangeOptionID *string             `json:"exchangeOptionId"`
	CreatedAt        time.Time           `json:"createdAt"`
	ApprovedAt       *time.Time          `json:"approvedAt"`
}

type ClaimLineResponse struct {
	LineID   string  `json:"lineId"`
	Quantity int     `json:"quantity"`
	Reason   *string `json:"reason"`
}

func toClaimResponse(c *model.Claim, lines []model.ClaimLine) *ClaimResponse {
	resp := &ClaimResponse{
		ClaimID:          c.ClaimID,
		OrderID:          c.OrderID,
		ClaimType:        c.ClaimType,
		Status:           c.Status,
		ClaimLines:       make([]ClaimLineResponse, len(lines)),
		ExchangeOptionID: c.ExchangeOptionID,
		CreatedAt:        c.CreatedAt,
		ApprovedAt:       c.ApprovedAt,
	}
	for i, l := range lines {
		resp.ClaimLines[i] = ClaimLineResponse{LineID: l.LineID, Quantity: l.Quantity, Reason: l.Reason}
	}
	return resp
}

// ---- 发货 ----

type CreateShipmentRequest struct {
	OrderID        string   `json:"orderId" binding:"required"`
	CarrierCode    string   `json:"carrierCode" binding:"required"`
	TrackingNumber string   `json:"trackingNumber" binding:"required"`
	OrderLineIDs   []string `json:"orderLineIds"`
}

type UpdateShipmentStatusRequest struct {
	Status model.ShipmentStatus `json:"status" binding:"required,shipment_status"`
}

type ShipmentResponse struct {
	ShipmentID      string               `json:"shipmentId"`
	OrderID         string               `json:"orderId"`
	CarrierCode     string               `json:"carrierCode"`
	TrackingNumber  string               `json:"trackingNumber"`
	Status          model.ShipmentStatus `json:"status"`
	OrderLineIDs    []string             `json:"orderLineIds"`
	StatusUpdatedAt time.Time            `json:"statusUpdatedAt"`
}

func toShipmentResponse(s *model.Shipment, lineIDs []string) *ShipmentResponse {
	if lineIDs == nil {
		lineIDs = []string{}
	}
	return &ShipmentResponse{
		ShipmentID:      s.ShipmentID,
		OrderID:         s.OrderID,
		CarrierCode:     s.CarrierCode,
		TrackingNumber:  s.TrackingNumber,
		Status:          s.Status,
		OrderLineIDs:    lineIDs,
		StatusUpdatedAt: s.StatusUpdatedAt,
	}
}

// ---- 库存 ----

type SetStockRequest struct {
	AvailableQuantity *int `json:"availableQuantity" binding:"required"`
}

type AdjustStockRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

type StockResponse struct {
	ProductID         string `json:"productId"`
	OptionID          string `json:"optionId"`
	AvailableQuantity int    `json:"availableQuantity"`
}

func toStockResponse(s *model.Stock) *StockResponse {
	return &StockResponse{ProductID: s.ProductID, OptionID: s.OptionID, AvailableQuantity: s.AvailableQuantity}
}
