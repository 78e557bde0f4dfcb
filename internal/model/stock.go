package model

import "time"

// Stock 可售库存，(product_id, option_id) 复合主键
type Stock struct {
	ProductID         string `gorm:"primaryKey;type:varchar(64)"`
	OptionID          string `gorm:"primaryKey;type:varchar(64)"`
	AvailableQuantity int    `gorm:"not null"`
	UpdatedAt         time.Time
}

func (Stock) TableName() string { return "stocks" }
