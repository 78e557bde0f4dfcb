package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/mock-oms/internal/model"
)

var (
	// ErrNotFound 记录不存在（屏蔽 gorm.ErrRecordNotFound）
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 主键或唯一索引冲突
	ErrDuplicate = errors.New("duplicate record")
)

// Transactor 在单个数据库事务中执行 fn；事务通过 ctx 传递给各仓储
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

type txState struct {
	tx          *gorm.DB
	afterCommit []func(context.Context)
}

type gormTransactor struct{ db *gorm.DB }

func NewTransactor(db *gorm.DB) Transactor { return &gormTransactor{db: db} }

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// 已在事务中：直接加入外层事务
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	state := &txState{}
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state.tx = tx
		return fn(context.WithValue(ctx, txKey{}, state))
	})
	if err != nil {
		return err
	}
	for _, f := range state.afterCommit {
		f(ctx)
	}
	return nil
}

// AfterCommit 登记事务提交后执行的回调；不在事务中时立即执行
func AfterCommit(ctx context.Context, fn func(context.Context)) {
	if st, ok := ctx.Value(txKey{}).(*txState); ok {
		st.afterCommit = append(st.afterCommit, fn)
		return
	}
	fn(ctx)
}

// InTransaction ctx 是否携带事务
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*txState)
	return ok
}

// conn 优先使用 ctx 中的事务连接
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if st, ok := ctx.Value(txKey{}).(*txState); ok {
		return st.tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

// updated 判定按主键的 UPDATE 是否命中记录。
// MySQL 的 RowsAffected 只统计值真正变化的行，0 行时需再查一次是否存在。
func updated(ctx context.Context, db *gorm.DB, res *gorm.DB, m any, column, id string) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var n int64
	if err := conn(ctx, db).Model(m).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Migrate 初始化全部表结构
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Order{}, &model.OrderLine{},
		&model.Claim{}, &model.ClaimLine{},
		&model.Shipment{}, &model.ShipmentLine{},
		&model.Stock{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
