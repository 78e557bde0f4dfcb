package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/mock-oms/internal/model"
)

func claimRequest(orderID string) *CreateClaimRequest {
	reason := "size mismatch"
	return &CreateClaimRequest{
		OrderID:   orderID,
		ClaimType: model.ClaimTypeReturn,
		ClaimLines: []ClaimLineRequest{
			{LineID: "L1", Quantity: 1, Reason: &reason},
		},
	}
}

func TestCreateClaim_AutoApproveThreshold(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.orders.CreateOrder(ctx, orderRequest("ORD-SMALL", 100000, line("L1", "P1", "O1", 1)))
	require.NoError(t, err)
	_, err = f.orders.CreateOrder(ctx, orderRequest("ORD-BIG", 100001, line("L1", "P1", "O1", 1)))
	require.NoError(t, err)

	small, err := f.claims.CreateClaim(ctx, claimRequest("ORD-SMALL"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(small.ClaimID, "CLM-"))
	assert.Len(t, small.ClaimID, len("CLM-")+8)
	assert.Equal(t, model.ClaimStatusApproved, small.Status)
	assert.NotNil(t, small.ApprovedAt)

	big, err := f.claims.CreateClaim(ctx, claimRequest("ORD-BIG"))
	require.NoError(t, err)
	assert.Equal(t, model.ClaimStatusPendingApproval, big.Status)
	assert.Nil(t, big.ApprovedAt)
}

func TestCreateClaim_OrderNotFound(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.claims.CreateClaim(context.Background(), claimRequest("missing"))
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestClaim_GetAndList(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.orders.CreateOrder(ctx, orderRequest("ORD-1", 500000, line("L1", "P1", "O1", 1)))
	require.NoError(t, err)

	req := claimRequest("ORD-1")
	req.ClaimType = model.ClaimTypeExchange
	req.ExchangeOption = &ExchangeOptionRequest{OptionID: "O2"}
	req.ClaimLines = append(req.ClaimLines, ClaimLineRequest{LineID: "L1", Quantity: 2})
	created, err := f.claims.CreateClaim(ctx, req)
	require.NoError(t, err)

	got, err := f.claims.GetClaim(ctx, created.ClaimID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", got.OrderID)
	assert.Equal(t, model.ClaimTypeExchange, got.ClaimType)
	require.NotNil(t, got.ExchangeOptionID)
	assert.Equal(t, "O2", *got.ExchangeOptionID)
	require.Len(t, got.ClaimLines, 2)
	require.NotNil(t, got.ClaimLines[0].Reason)
	assert.Equal(t, "size mismatch", *got.ClaimLines[0].Reason)
	assert.Nil(t, got.ClaimLines[1].Reason)
	assert.Equal(t, 2, got.ClaimLines[1].Quantity)

	list, err := f.claims.GetClaimsByOrderID(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ClaimID, list[0].ClaimID)
	assert.Len(t, list[0].ClaimLines, 2)

	empty, err := f.claims.GetClaimsByOrderID(ctx, "ORD-NONE")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = f.claims.GetClaim(ctx, "CLM-MISSING")
	assert.ErrorIs(t, err, ErrClaimNotFound)
}

func TestClaim_ApproveReject(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.orders.CreateOrder(ctx, orderRequest("ORD-1", 500000, line("L1", "P1", "O1", 1)))
	require.NoError(t, err)
	created, err := f.claims.CreateClaim(ctx, claimRequest("ORD-1"))
	require.NoError(t, err)
	require.Equal(t, model.ClaimStatusPendingApproval, created.Status)

	approved, err := f.claims.ApproveClaim(ctx, created.ClaimID)
	require.NoError(t, err)
	assert.Equal(t, model.ClaimStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	// 驳回不清空审批时间
	rejected, err := f.claims.RejectClaim(ctx, created.ClaimID)
	require.NoError(t, err)
	assert.Equal(t, model.ClaimStatusRejected, rejected.Status)
	assert.NotNil(t, rejected.ApprovedAt)

	// 不检查当前状态
	again, err := f.claims.ApproveClaim(ctx, created.ClaimID)
	require.NoError(t, err)
	assert.Equal(t, model.ClaimStatusApproved, again.Status)

	// 连续驳回两次，第二次不改变任何值
	_, err = f.claims.RejectClaim(ctx, created.ClaimID)
	require.NoError(t, err)
	rejectedTwice, err := f.claims.RejectClaim(ctx, created.ClaimID)
	require.NoError(t, err)
	assert.Equal(t, model.ClaimStatusRejected, rejectedTwice.Status)

	_, err = f.claims.ApproveClaim(ctx, "CLM-MISSING")
	assert.ErrorIs(t, err, ErrClaimNotFound)
	_, err = f.claims.RejectClaim(ctx, "CLM-MISSING")
	assert.ErrorIs(t, err, ErrClaimNotFound)
}
