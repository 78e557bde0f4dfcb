package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/mock-oms/internal/model"
)

type ClaimRepository interface {
	Create(ctx context.Context, claim *model.Claim, lines []model.ClaimLine) error
	GetByID(ctx context.Context, claimID string) (*model.Claim, error)
	ListByOrderID(ctx context.Context, orderID string) ([]*model.Claim, error)
	// ListLines 批量加载售后行，按 claim_id 分组
	ListLines(ctx context.Context, claimIDs ...string) (map[string][]model.ClaimLine, error)
	// UpdateStatus 覆盖状态与审批时间
	UpdateStatus(ctx context.Context, claim *model.Claim) error
}

type claimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) ClaimRepository { return &claimRepository{db: db} }

func (r *claimRepository) Create(ctx context.Context, claim *model.Claim, lines []model.ClaimLine) error {
	return translate(conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(claim).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].ClaimID = claim.ClaimID
		}
		return tx.Create(&lines).Error
	}))
}

func (r *claimRepository) GetByID(ctx context.Context, claimID string) (*model.Claim, error) {
	var c model.Claim
	if err := conn(ctx, r.db).Where("claim_id = ?", claimID).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *claimRepository) ListByOrderID(ctx context.Context, orderID string) ([]*model.Claim, error) {
	var res []*model.Claim
	err := conn(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("created_at ASC, claim_id ASC").
		Find(&res).Error
	return res, err
}

func (r *claimRepository) ListLines(ctx context.Context, claimIDs ...string) (map[string][]model.ClaimLine, error) {
	out := make(map[string][]model.ClaimLine, len(claimIDs))
	if len(claimIDs) == 0 {
		return out, nil
	}
	var lines []model.ClaimLine
	if err := conn(ctx, r.db).
		Where("claim_id IN ?", claimIDs).
		Order("id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	for _, l := range lines {
		out[l.ClaimID] = append(out[l.ClaimID], l)
	}
	return out, nil
}

func (r *claimRepository) UpdateStatus(ctx context.Context, claim *model.Claim) error {
	res := conn(ctx, r.db).
		Model(&model.Claim{}).
		Where("claim_id = ?", claim.ClaimID).
		Updates(map[string]any{"status": claim.Status, "approved_at": claim.ApprovedAt})
	return updated(ctx, r.db, res, &model.Claim{}, "claim_id", claim.ClaimID)
}
