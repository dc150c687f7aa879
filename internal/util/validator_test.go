package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

// TestValidateAmount_Positive 测试正数金额
func TestValidateAmount_Positive(t *testing.T) {
	testCases := []string{"0.01", "1", "100.5", "9999999.99"}

	for _, s := range testCases {
		err := ValidateAmount(dec(t, s))
		if err != nil {
			t.Errorf("ValidateAmount(%s) error = %v, want nil", s, err)
		}
	}
}

// TestValidateAmount_Zero 测试零金额（异常）
func TestValidateAmount_Zero(t *testing.T) {
	err := ValidateAmount(decimal.Zero)

	if err == nil {
		t.Error("ValidateAmount(0) error = nil, want error")
	}
}

// TestValidateAmount_Negative 测试负数金额（异常）
func TestValidateAmount_Negative(t *testing.T) {
	testCases := []string{"-0.01", "-100", "-9999.99"}

	for _, s := range testCases {
		err := ValidateAmount(dec(t, s))
		if err == nil {
			t.Errorf("ValidateAmount(%s) error = nil, want error", s)
		}
	}
}

// TestValidateAmount_TooManyDecimals 超过两位小数（异常）
func TestValidateAmount_TooManyDecimals(t *testing.T) {
	testCases := []string{"0.001", "12.345", "99.999"}

	for _, s := range testCases {
		err := ValidateAmount(dec(t, s))
		if err == nil {
			t.Errorf("ValidateAmount(%s) error = nil, want error", s)
		}
	}
}

// TestValidateAmount_TrailingZeros 多余的零不算多出的小数位
func TestValidateAmount_TrailingZeros(t *testing.T) {
	err := ValidateAmount(dec(t, "12.3400"))
	if err != nil {
		t.Errorf("ValidateAmount(12.3400) error = %v, want nil", err)
	}
}

// TestValidateAmount_TooLarge 测试金额过大（异常）
func TestValidateAmount_TooLarge(t *testing.T) {
	err := ValidateAmount(dec(t, "100000000")) // 1亿

	if err == nil {
		t.Error("ValidateAmount(100000000) error = nil, want error")
	}
}

// TestValidateDate_Valid 测试有效日期
func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

// TestValidateDate_InvalidFormat 测试无效格式（异常）
func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01", // 月份错误
		"2024-01-32", // 日期错误
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

// TestValidateMonth 月份取值范围 1-12
func TestValidateMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		if err := ValidateMonth(m); err != nil {
			t.Errorf("ValidateMonth(%d) error = %v, want nil", m, err)
		}
	}

	for _, m := range []int{0, -1, 13, 100} {
		if err := ValidateMonth(m); err == nil {
			t.Errorf("ValidateMonth(%d) error = nil, want error", m)
		}
	}
}

// TestValidateCategoryName_Valid 测试有效分类名称
func TestValidateCategoryName_Valid(t *testing.T) {
	testCases := []string{"餐饮", "交通", "购物", "娱乐", "工资", "Salary"}

	for _, name := range testCases {
		err := ValidateCategoryName(name)
		if err != nil {
			t.Errorf("ValidateCategoryName(%q) error = %v, want nil", name, err)
		}
	}
}

// TestValidateCategoryName_Empty 测试空分类名称（异常）
func TestValidateCategoryName_Empty(t *testing.T) {
	err := ValidateCategoryName("")

	if err == nil {
		t.Error("ValidateCategoryName(\"\") error = nil, want error")
	}
}

// TestValidateCategoryName_TooLong 测试过长分类名称（异常）
func TestValidateCategoryName_TooLong(t *testing.T) {
	long := make([]byte, 0, 120)
	for i := 0; i < 120; i++ {
		long = append(long, 'a')
	}

	err := ValidateCategoryName(string(long))

	if err == nil {
		t.Error("ValidateCategoryName() with long string error = nil, want error")
	}
}
