package models

import "time"

// Category type values.
const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

// Category represents income/expense category. Each category belongs to
// exactly one user; records of other users are never visible.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:100;not null"`
	Type      string `gorm:"size:16;index;not null"` // income / expense
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
