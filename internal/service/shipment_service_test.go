package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/mock-oms/internal/model"
)

func createOrderWithStatus(t *testing.T, f *fixture, orderID string, status model.OrderStatus) {
	t.Helper()
	ctx := context.Background()
	_, err := f.orders.CreateOrder(ctx, orderRequest(orderID, 1000, line("L1", "P1", "O1", 1), line("L2", "P1", "O2", 1)))
	require.NoError(t, err)
	_, err = f.orders.UpdateOrderStatus(ctx, orderID, status)
	require.NoError(t, err)
}

func orderStatus(t *testing.T, f *fixture, orderID string) model.OrderStatus {
	t.Helper()
	o, err := f.orders.GetOrder(context.Background(), orderID)
	require.NoError(t, err)
	return o.Status
}

func shipmentRequest(orderID string, lineIDs ...string) *CreateShipmentRequest {
	return &CreateShipmentRequest{OrderID: orderID, CarrierCode: "CJ", TrackingNumber: "TRK-" + orderID, OrderLineIDs: lineIDs}
}

func TestCreateShipment_AdvancesPackingOrder(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	createOrderWithStatus(t, f, "ORD-1", model.OrderStatusPacking)

	sh, err := f.shipments.CreateShipment(ctx, shipmentRequest("ORD-1", "L2", "L1"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sh.ShipmentID, "SHP-"))
	assert.Equal(t, model.ShipmentStatusPickedUp, sh.Status)
	assert.Equal(t, []string{"L2", "L1"}, sh.OrderLineIDs)
	assert.False(t, sh.StatusUpdatedAt.IsZero())

	assert.Equal(t, model.OrderStatusShipped, orderStatus(t, f, "ORD-1"))

	require.Len(t, f.notifier.shipments, 1)
	push := f.notifier.shipments[0]
	assert.Equal(t, "ORD-1", push.OrderID)
	require.Len(t, push.Shipments, 1)
	assert.Equal(t, sh.ShipmentID, push.Shipments[0].ShipmentID)
	assert.Equal(t, "PICKED_UP", push.Shipments[0].Status)
	assert.Equal(t, []string{"L2", "L1"}, push.Shipments[0].OrderLines)
}

func TestCreateShipment_OtherOrderStatusUntouched(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	createOrderWithStatus(t, f, "ORD-1", model.OrderStatusPaymentConfirmed)

	_, err := f.shipments.CreateShipment(ctx, shipmentRequest("ORD-1", "L1"))
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaymentConfirmed, orderStatus(t, f, "ORD-1"))
}

func TestCreateShipment_UnknownOrderStillCreated(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	sh, err := f.shipments.CreateShipment(ctx, shipmentRequest("ORD-GHOST"))
	require.NoError(t, err)
	assert.Equal(t, []string{}, sh.OrderLineIDs)

	got, err := f.shipments.GetShipment(ctx, sh.ShipmentID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-GHOST", got.OrderID)
}

func TestUpdateShipmentStatus_OutForDelivery(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	createOrderWithStatus(t, f, "ORD-1", model.OrderStatusReceived)

	sh, err := f.shipments.CreateShipment(ctx, shipmentRequest("ORD-1", "L1"))
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusReceived, orderStatus(t, f, "ORD-1"))

	updated, err := f.shipments.UpdateShipmentStatus(ctx, sh.ShipmentID, model.ShipmentStatusOutForDelivery)
	require.NoError(t, err)
	assert.Equal(t, model.ShipmentStatusOutForDelivery, updated.Status)
	assert.False(t, updated.StatusUpdatedAt.Before(sh.StatusUpdatedAt))
	assert.Equal(t, []string{"L1"}, updated.OrderLineIDs)

	// 不论之前状态如何都进入 IN_DELIVERY
	assert.Equal(t, model.OrderStatusInDelivery, orderStatus(t, f, "ORD-1"))
}

func TestUpdateShipmentStatus_DeliveredWaitsForAllShipments(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	createOrderWithStatus(t, f, "ORD-1", model.OrderStatusPacking)

	first, err := f.shipments.CreateShipment(ctx, shipmentRequest("ORD-1", "L1"))
	require.NoError(t, err)
	second, err := f.shipments.CreateShipment(ctx, shipmentRequest("ORD-1", "L2"))
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusShipped, orderStatus(t, f, "ORD-1"))

	_, err = f.shipments.UpdateShipmentStatus(ctx, first.ShipmentID, model.ShipmentStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, orderStatus(t, f, "ORD-1"))

	_, err = f.shipments.UpdateShipmentStatus(ctx, second.ShipmentID, model.ShipmentStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, orderStatus(t, f, "ORD-1"))

	// 只有更新为 DELIVERED 才触发检查
	_, err = f.shipments.UpdateShipmentStatus(ctx, first.ShipmentID, model.ShipmentStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, orderStatus(t, f, "ORD-1"))

	list, err := f.shipments.GetShipmentsByOrderID(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{"L1"}, list[0].OrderLineIDs)
	assert.Equal(t, []string{"L2"}, list[1].OrderLineIDs)
}

func TestUpdateShipmentStatus_NotFound(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.shipments.UpdateShipmentStatus(context.Background(), "SHP-MISSING", model.ShipmentStatusDelivered)
	assert.ErrorIs(t, err, ErrShipmentNotFound)
	_, err = f.shipments.GetShipment(context.Background(), "SHP-MISSING")
	assert.ErrorIs(t, err, ErrShipmentNotFound)
	assert.Empty(t, f.notifier.shipments)
}

func TestShipment_NotifierFailureIsSwallowed(t *testing.T) {
	f := newFixture(t, errMallDown)
	ctx := context.Background()
	createOrderWithStatus(t, f, "ORD-1", model.OrderStatusPreparing)

	sh, err := f.shipments.CreateShipment(ctx, shipmentRequest("ORD-1", "L1"))
	require.NoError(t, err)
	_, err = f.shipments.UpdateShipmentStatus(ctx, sh.ShipmentID, model.ShipmentStatusDelivered)
	require.NoError(t, err)

	assert.Len(t, f.notifier.shipments, 2)
	assert.Equal(t, model.OrderStatusDelivered, orderStatus(t, f, "ORD-1"))
}
