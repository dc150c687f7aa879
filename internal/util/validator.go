package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(10000000) // 限制最大金额为1千万

// ValidateAmount 验证金额（必须为正数、最多两位小数且不超过上限）
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("amount has more than 2 decimal places, got %s", amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidateDate 验证日期格式（必须为 YYYY-MM-DD）
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateMonth 验证月份取值（1-12）
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month out of range, got %d", month)
	}
	return nil
}

// ValidateCategoryName 验证分类名称（不能为空且长度合理）
func ValidateCategoryName(name string) error {
	if name == "" {
		return fmt.Errorf("category name is empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("category name too long, max 100 characters")
	}
	return nil
}
