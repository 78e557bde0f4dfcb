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

// ClaimService 退换货申请
type ClaimService interface {
	// CreateClaim 订单金额不超过自动审批阈值时直接审批通过
	CreateClaim(ctx context.Context, req *CreateClaimRequest) (*CreateClaimResponse, error)
	GetClaim(ctx context.Context, claimID string) (*ClaimResponse, error)
	GetClaimsByOrderID(ctx context.Context, orderID string) ([]*ClaimResponse, error)
	// ApproveClaim 不检查当前状态
	ApproveClaim(ctx context.Context, claimID string) (*ClaimResponse, error)
	// RejectClaim 不检查当前状态，保留审批时间
	RejectClaim(ctx context.Context, claimID string) (*ClaimResponse, error)
}

type claimService struct {
	tx                   repository.Transactor
	claims               repository.ClaimRepository
	orders               repository.OrderRepository
	autoApproveThreshold int64
}

func NewClaimService(tx repository.Transactor, claims repository.ClaimRepository, orders repository.OrderRepository, autoApproveThreshold int64) ClaimService {
	return &claimService{tx: tx, claims: claims, orders: orders, autoApproveThreshold: autoApproveThreshold}
}

func (s *claimService) CreateClaim(ctx context.Context, req *CreateClaimRequest) (*CreateClaimResponse, error) {
	now := time.Now().UTC()
	claim := &model.Claim{
		ClaimID:   newID("CLM-"),
		OrderID:   req.OrderID,
		ClaimType: req.ClaimType,
		Status:    model.ClaimStatusPendingApproval,
		CreatedAt: now,
	}
	if req.ExchangeOption != nil {
		optionID := req.ExchangeOption.OptionID
		claim.ExchangeOptionID = &optionID
	}
	lines := make([]model.ClaimLine, len(req.ClaimLines))
	for i, l := range req.ClaimLines {
		lines[i] = model.ClaimLine{LineID: l.LineID, Quantity: l.Quantity, Reason: l.Reason}
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetByOrderID(ctx, req.OrderID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.TotalAmount <= s.autoApproveThreshold {
			claim.Status = model.ClaimStatusApproved
			claim.ApprovedAt = &now
		}
		if err := s.claims.Create(ctx, claim, lines); err != nil {
			return fmt.Errorf("create claim: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ClaimsTotal.WithLabelValues(string(claim.Status)).Inc()
	logger.Info("claim created",
		zap.String("claim_id", claim.ClaimID),
		zap.String("order_id", claim.OrderID),
		zap.String("status", string(claim.Status)))

	return &CreateClaimResponse{ClaimID: claim.ClaimID, Status: claim.Status, ApprovedAt: claim.ApprovedAt}, nil
}

func (s *claimService) GetClaim(ctx context.Context, claimID string) (*ClaimResponse, error) {
	c, err := s.get(ctx, claimID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, c)
}

func (s *claimService) GetClaimsByOrderID(ctx context.Context, orderID string) ([]*ClaimResponse, error) {
	list, err := s.claims.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.ClaimID
	}
	lines, err := s.claims.ListLines(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("list claim lines: %w", err)
	}
	res := make([]*ClaimResponse, len(list))
	for i, c := range list {
		res[i] = toClaimResponse(c, lines[c.ClaimID])
	}
	return res, nil
}

func (s *claimService) ApproveClaim(ctx context.Context, claimID string) (*ClaimResponse, error) {
	return s.transition(ctx, claimID, func(c *model.Claim) {
		now := time.Now().UTC()
		c.Status = model.ClaimStatusApproved
		c.ApprovedAt = &now
	})
}

func (s *claimService) RejectClaim(ctx context.Context, claimID string) (*ClaimResponse, error) {
	return s.transition(ctx, claimID, func(c *model.Claim) {
		c.Status = model.ClaimStatusRejected
	})
}

func (s *claimService) transition(ctx context.Context, claimID string, apply func(*model.Claim)) (*ClaimResponse, error) {
	var resp *ClaimResponse
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.get(ctx, claimID)
		if err != nil {
			return err
		}
		apply(c)
		if err := s.claims.UpdateStatus(ctx, c); err != nil {
			return fmt.Errorf("update claim status: %w", err)
		}
		resp, err = s.project(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *claimService) get(ctx context.Context, claimID string) (*model.Claim, error) {
	c, err := s.claims.GetByID(ctx, claimID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrClaimNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	return c, nil
}

func (s *claimService) project(ctx context.Context, c *model.Claim) (*ClaimResponse, error) {
	lines, err := s.claims.ListLines(ctx, c.ClaimID)
	if err != nil {
		return nil, fmt.Errorf("list claim lines: %w", err)
	}
	return toClaimResponse(c, lines[c.ClaimID]), nil
}
