package model

import "time"

type ClaimType string

const (
	ClaimTypeReturn   ClaimType = "RETURN"   // 退货
	ClaimTypeExchange ClaimType = "EXCHANGE" // 换货
)

func (t ClaimType) Valid() bool {
	return t == ClaimTypeReturn || t == ClaimTypeExchange
}

type ClaimStatus string

const (
	ClaimStatusPendingApproval ClaimStatus = "PENDING_APPROVAL"
	ClaimStatusApproved        ClaimStatus = "APPROVED"
	ClaimStatusRejected        ClaimStatus = "REJECTED"
	// ClaimStatusCompleted 由外部流程设置，本服务不会流转到该状态
	ClaimStatusCompleted ClaimStatus = "COMPLETED"
)

// Claim 售后申请（退货/换货）；OrderID 仅为引用，非外键
type Claim struct {
	ClaimID          string      `gorm:"primaryKey;type:varchar(32)"`
	OrderID          string      `gorm:"type:varchar(64);index;not null"`
	ClaimType        ClaimType   `gorm:"type:varchar(16);not null"`
	Status           ClaimStatus `gorm:"type:varchar(32);index;not null"`
	ExchangeOptionID *string     `gorm:"type:varchar(64)"`
	CreatedAt        time.Time   `gorm:"not null"`
	ApprovedAt       *time.Time
}

func (Claim) TableName() string { return "claims" }

// ClaimLine 售后申请行
type ClaimLine struct {
	ID       uint    `gorm:"primaryKey;autoIncrement"`
	ClaimID  string  `gorm:"type:varchar(32);index;not null"`
	LineID   string  `gorm:"type:varchar(64);not null"`
	Quantity int     `gorm:"not null"`
	Reason   *string `gorm:"type:varchar(500)"`
}

func (ClaimLine) TableName() string { return "claim_lines" }
