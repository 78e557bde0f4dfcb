package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d60-Lab/mock-oms/internal/model"
	"github.com/d60-Lab/mock-oms/internal/repository"
)

// StockService 可售库存台账
type StockService interface {
	// Get 不存在时返回 ErrStockNotFound
	Get(ctx context.Context, productID, optionID string) (*StockResponse, error)
	// Set 覆盖数量（不存在则创建），不做负数校验
	Set(ctx context.Context, productID, optionID string, quantity int) (*StockResponse, error)
	// Adjust 增减数量（不存在按 0 创建），结果不低于 0
	Adjust(ctx context.Context, productID, optionID string, delta int) (*StockResponse, error)
	List(ctx context.Context) ([]*StockResponse, error)
	// SyncAll 把全部库存一次性推送给商城；没有库存时不推送
	SyncAll(ctx context.Context) error
}

type stockService struct {
	tx       repository.Transactor
	stocks   repository.StockRepository
	notifier StockNotifier
}

func NewStockService(tx repository.Transactor, stocks repository.StockRepository, notifier StockNotifier) StockService {
	return &stockService{tx: tx, stocks: stocks, notifier: notifier}
}

func (s *stockService) Get(ctx context.Context, productID, optionID string) (*StockResponse, error) {
	st, err := s.stocks.Get(ctx, productID, optionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrStockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return toStockResponse(st), nil
}

func (s *stockService) Set(ctx context.Context, productID, optionID string, quantity int) (*StockResponse, error) {
	st := &model.Stock{ProductID: productID, OptionID: optionID, AvailableQuantity: quantity, UpdatedAt: time.Now().UTC()}
	if err := s.stocks.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("save stock: %w", err)
	}
	pushStocks(ctx, s.notifier, []*model.Stock{st})
	return toStockResponse(st), nil
}

func (s *stockService) Adjust(ctx context.Context, productID, optionID string, delta int) (*StockResponse, error) {
	var st *model.Stock
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		st, err = adjustStock(ctx, s.stocks, productID, optionID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}
	pushStocks(ctx, s.notifier, []*model.Stock{st})
	return toStockResponse(st), nil
}

func (s *stockService) List(ctx context.Context) ([]*StockResponse, error) {
	list, err := s.stocks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	res := make([]*StockResponse, len(list))
	for i, st := range list {
		res[i] = toStockResponse(st)
	}
	return res, nil
}

func (s *stockService) SyncAll(ctx context.Context) error {
	list, err := s.stocks.List(ctx)
	if err != nil {
		return fmt.Errorf("list stocks: %w", err)
	}
	pushStocks(ctx, s.notifier, list)
	return nil
}

// adjustStock 在调用方事务内执行 max(0, q+delta)；记录不存在时按 0 创建
func adjustStock(ctx context.Context, repo repository.StockRepository, productID, optionID string, delta int) (*model.Stock, error) {
	st, err := repo.Get(ctx, productID, optionID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		st = &model.Stock{ProductID: productID, OptionID: optionID}
	case err != nil:
		return nil, fmt.Errorf("get stock: %w", err)
	}
	st.AvailableQuantity += delta
	if st.AvailableQuantity < 0 {
		st.AvailableQuantity = 0
	}
	st.UpdatedAt = time.Now().UTC()
	if err := repo.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("save stock: %w", err)
	}
	return st, nil
}
