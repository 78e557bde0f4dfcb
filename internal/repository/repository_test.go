package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/mock-oms/internal/model"
	"github.com/d60-Lab/mock-oms/internal/testutil"
)

func setupDB(t *testing.T) *gorm.DB {
	db := testutil.OpenSQLite(t)
	require.NoError(t, Migrate(db))
	return db
}

func sampleOrder(id string) (*model.Order, []model.OrderLine) {
	now := time.Now().UTC().Truncate(time.Second)
	memo := "leave at door"
	o := &model.Order{
		OrderID:        id,
		SystemOrderRef: "OMS-ORD-" + id,
		Status:         model.OrderStatusReceived,
		Shipping: model.ShippingInfo{
			RecipientName: "Kim",
			PhoneNumber:   "010-0000-0000",
			ZipCode:       "12345",
			Address:       "Seoul",
			Memo:          &memo,
		},
		TotalAmount: 30000,
		OrderedAt:   now,
		ReceivedAt:  now,
	}
	lines := []model.OrderLine{
		{LineID: "L2", ProductID: "P1", OptionID: "O1", Quantity: 1, UnitPrice: 10000, TotalPrice: 10000},
		{LineID: "L1", ProductID: "P2", OptionID: "O1", Quantity: 2, UnitPrice: 10000, TotalPrice: 20000},
	}
	return o, lines
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o, lines := sampleOrder("ORD-1")
	require.NoError(t, repo.Create(ctx, o, lines))

	exists, err := repo.Exists(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.GetByOrderID(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, o.SystemOrderRef, got.SystemOrderRef)
	assert.Equal(t, "Seoul", got.Shipping.Address)
	require.NotNil(t, got.Shipping.Memo)
	assert.Equal(t, "leave at door", *got.Shipping.Memo)
	assert.Nil(t, got.Shipping.AddressDetail)
	assert.True(t, o.OrderedAt.Equal(got.OrderedAt))

	// 保持下单顺序，而不是按 line_id 排序
	gotLines, err := repo.ListLines(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, gotLines, 2)
	assert.Equal(t, "L2", gotLines[0].LineID)
	assert.Equal(t, "L1", gotLines[1].LineID)

	cnt, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func TestOrderRepository_NotFound(t *testing.T) {
	repo := NewOrderRepository(setupDB(t))
	ctx := context.Background()

	_, err := repo.GetByOrderID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", model.OrderStatusShipped), ErrNotFound)

	exists, err := repo.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOrderRepository_Duplicate(t *testing.T) {
	repo := NewOrderRepository(setupDB(t))
	ctx := context.Background()

	o, lines := sampleOrder("ORD-1")
	require.NoError(t, repo.Create(ctx, o, lines))

	dup, dupLines := sampleOrder("ORD-1")
	dup.SystemOrderRef = "OMS-ORD-OTHER"
	err := repo.Create(ctx, dup, dupLines)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := NewOrderRepository(setupDB(t))
	ctx := context.Background()

	o, lines := sampleOrder("ORD-1")
	require.NoError(t, repo.Create(ctx, o, lines))
	require.NoError(t, repo.UpdateStatus(ctx, "ORD-1", model.OrderStatusPacking))

	got, err := repo.GetByOrderID(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPacking, got.Status)
}

func TestTransactor_RollbackAndAfterCommit(t *testing.T) {
	db := setupDB(t)
	tx := NewTransactor(db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	hooks := 0
	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		assert.True(t, InTransaction(ctx))
		o, lines := sampleOrder("ORD-RB")
		require.NoError(t, repo.Create(ctx, o, lines))
		AfterCommit(ctx, func(context.Context) { hooks++ })
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, hooks)

	exists, err := repo.Exists(ctx, "ORD-RB")
	require.NoError(t, err)
	assert.False(t, exists)

	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		o, lines := sampleOrder("ORD-OK")
		AfterCommit(ctx, func(context.Context) { hooks++ })
		// 嵌套调用加入外层事务
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return repo.Create(ctx, o, lines)
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, hooks)
	assert.False(t, InTransaction(ctx))

	lines, err := repo.ListLines(ctx, "ORD-OK")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestAfterCommit_OutsideTransactionRunsImmediately(t *testing.T) {
	ran := false
	AfterCommit(context.Background(), func(context.Context) { ran = true })
	assert.True(t, ran)
}

func TestClaimRepository(t *testing.T) {
	repo := NewClaimRepository(setupDB(t))
	ctx := context.Background()

	reason := "broken"
	base := time.Now().UTC()
	c1 := &model.Claim{ClaimID: "CLM-1", OrderID: "ORD-1", ClaimType: model.ClaimTypeReturn,
		Status: model.ClaimStatusPendingApproval, CreatedAt: base}
	c2 := &model.Claim{ClaimID: "CLM-2", OrderID: "ORD-1", ClaimType: model.ClaimTypeExchange,
		Status: model.ClaimStatusPendingApproval, CreatedAt: base.Add(time.Second)}
	require.NoError(t, repo.Create(ctx, c1, []model.ClaimLine{{LineID: "L1", Quantity: 1, Reason: &reason}}))
	require.NoError(t, repo.Create(ctx, c2, []model.ClaimLine{{LineID: "L1", Quantity: 1}, {LineID: "L2", Quantity: 2}}))

	list, err := repo.ListByOrderID(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "CLM-1", list[0].ClaimID)

	lines, err := repo.ListLines(ctx, "CLM-1", "CLM-2")
	require.NoError(t, err)
	require.Len(t, lines["CLM-1"], 1)
	require.NotNil(t, lines["CLM-1"][0].Reason)
	assert.Equal(t, "broken", *lines["CLM-1"][0].Reason)
	require.Len(t, lines["CLM-2"], 2)
	assert.Nil(t, lines["CLM-2"][0].Reason)

	now := time.Now().UTC()
	c1.Status = model.ClaimStatusApproved
	c1.ApprovedAt = &now
	require.NoError(t, repo.UpdateStatus(ctx, c1))
	got, err := repo.GetByID(ctx, "CLM-1")
	require.NoError(t, err)
	assert.Equal(t, model.ClaimStatusApproved, got.Status)
	assert.NotNil(t, got.ApprovedAt)

	// 重复写入相同的值仍视为成功
	require.NoError(t, repo.UpdateStatus(ctx, c1))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, &model.Claim{ClaimID: "CLM-X", Status: model.ClaimStatusRejected}), ErrNotFound)

	_, err = repo.GetByID(ctx, "CLM-X")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShipmentRepository(t *testing.T) {
	repo := NewShipmentRepository(setupDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	sh := &model.Shipment{ShipmentID: "SHP-1", OrderID: "ORD-1", CarrierCode: "CJ", TrackingNumber: "T1",
		Status: model.ShipmentStatusPickedUp, StatusUpdatedAt: now, CreatedAt: now}
	require.NoError(t, repo.Create(ctx, sh, []string{"L3", "L1", "L2"}))

	ids, err := repo.ListLineIDs(ctx, "SHP-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"L3", "L1", "L2"}, ids["SHP-1"])

	later := now.Add(time.Minute)
	require.NoError(t, repo.UpdateStatus(ctx, "SHP-1", model.ShipmentStatusInTransit, later))
	got, err := repo.GetByID(ctx, "SHP-1")
	require.NoError(t, err)
	assert.Equal(t, model.ShipmentStatusInTransit, got.Status)
	assert.True(t, later.Equal(got.StatusUpdatedAt))

	list, err := repo.ListByOrderID(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "SHP-X", model.ShipmentStatusDelivered, later), ErrNotFound)
}

func TestStockRepository_Upsert(t *testing.T) {
	repo := NewStockRepository(setupDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "P1", "O1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Save(ctx, &model.Stock{ProductID: "P1", OptionID: "O1", AvailableQuantity: 10}))
	require.NoError(t, repo.Save(ctx, &model.Stock{ProductID: "P1", OptionID: "O1", AvailableQuantity: 7}))
	require.NoError(t, repo.Save(ctx, &model.Stock{ProductID: "P0", OptionID: "O1", AvailableQuantity: 1}))

	got, err := repo.Get(ctx, "P1", "O1")
	require.NoError(t, err)
	assert.Equal(t, 7, got.AvailableQuantity)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "P0", list[0].ProductID)
}
