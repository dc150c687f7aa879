package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction 表示一笔收支记录
// 金额用 decimal(10,2) 存储，避免浮点误差
type Transaction struct {
	ID         uint            `gorm:"primaryKey"`
	UserID     uint            `gorm:"index;not null"`
	CategoryID uint            `gorm:"index;not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Date       time.Time       `gorm:"index;not null"` // 交易日期（按天）
	Detail     string          `gorm:"type:text"`      // 备注，可为空
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User     User     `gorm:"constraint:OnDelete:CASCADE"`
	Category Category `gorm:"constraint:OnDelete:CASCADE"`
}
