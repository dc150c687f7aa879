package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget 表示某用户在某个月份的预算额度
// (user, month, year) 不做唯一约束，查询时取第一条匹配记录
type Budget struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"index;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Month     int             `gorm:"not null"` // 1-12
	Year      int             `gorm:"not null"` // 四位年份
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
