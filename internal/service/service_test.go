package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/mock-oms/internal/client/mall"
	"github.com/d60-Lab/mock-oms/internal/repository"
	"github.com/d60-Lab/mock-oms/internal/testutil"
)

// recordingNotifier 记录收到的推送；err 非空时每次返回该错误
type recordingNotifier struct {
	mu        sync.Mutex
	err       error
	stocks    []mall.StockSyncRequest
	shipments []mall.ShipmentStatusRequest
}

func (n *recordingNotifier) SyncStocks(_ context.Context, req mall.StockSyncRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stocks = append(n.stocks, req)
	return n.err
}

func (n *recordingNotifier) SendShipmentStatus(_ context.Context, req mall.ShipmentStatusRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shipments = append(n.shipments, req)
	return n.err
}

type fixture struct {
	orders    OrderService
	claims    ClaimService
	shipments ShipmentService
	stocks    StockService
	notifier  *recordingNotifier
}

func newFixture(t *testing.T, notifyErr error) *fixture {
	t.Helper()
	db := testutil.OpenSQLite(t)
	require.NoError(t, repository.Migrate(db))

	tx := repository.NewTransactor(db)
	orderRepo := repository.NewOrderRepository(db)
	stockRepo := repository.NewStockRepository(db)
	n := &recordingNotifier{err: notifyErr}

	return &fixture{
		orders:    NewOrderService(tx, orderRepo, stockRepo, n),
		claims:    NewClaimService(tx, repository.NewClaimRepository(db), orderRepo, 100000),
		shipments: NewShipmentService(tx, repository.NewShipmentRepository(db), orderRepo, n),
		stocks:    NewStockService(tx, stockRepo, n),
		notifier:  n,
	}
}

var errMallDown = errors.New("mall down")

func orderRequest(orderID string, total int64, lines ...OrderLineRequest) *CreateOrderRequest {
	detail := "101-1203"
	return &CreateOrderRequest{
		OrderID:    orderID,
		OrderedAt:  time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		OrderLines: lines,
		Shipping: ShippingRequest{
			RecipientName: "Hong Gildong",
			PhoneNumber:   "010-1234-5678",
			ZipCode:       "06236",
			Address:       "Teheran-ro 1",
			AddressDetail: &detail,
		},
		TotalAmount: total,
	}
}

func line(lineID, productID, optionID string, qty int) OrderLineRequest {
	return OrderLineRequest{
		LineID:      lineID,
		ProductID:   productID,
		OptionID:    optionID,
		ProductName: "Product " + productID,
		OptionName:  "Option " + optionID,
		Quantity:    qty,
		UnitPrice:   1000,
		TotalPrice:  int64(qty) * 1000,
	}
}
