package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/mock-oms/internal/model"
)

type StockRepository interface {
	// Get 不存在时返回 ErrNotFound
	Get(ctx context.Context, productID, optionID string) (*model.Stock, error)
	// Save 不存在则插入，存在则覆盖数量
	Save(ctx context.Context, stock *model.Stock) error
	List(ctx context.Context) ([]*model.Stock, error)
}

type stockRepository struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepository{db: db} }

func (r *stockRepository) Get(ctx context.Context, productID, optionID string) (*model.Stock, error) {
	var s model.Stock
	err := conn(ctx, r.db).
		Where("product_id = ? AND option_id = ?", productID, optionID).
		First(&s).Error
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *stockRepository) Save(ctx context.Context, stock *model.Stock) error {
	return conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "option_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"available_quantity", "updated_at"}),
	}).Create(stock).Error
}

func (r *stockRepository) List(ctx context.Context) ([]*model.Stock, error) {
	var res []*model.Stock
	err := conn(ctx, r.db).Order("product_id ASC, option_id ASC").Find(&res).Error
	return res, err
}
