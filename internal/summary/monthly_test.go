package summary

import (
	"testing"

	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"
)

// TestMonthlyBreakdown_Empty 空月份返回空列表和全零汇总
func TestMonthlyBreakdown_Empty(t *testing.T) {
	daily, byCategory, totals := MonthlyBreakdown(nil)

	if len(daily) != 0 {
		t.Errorf("len(daily) = %d, want 0", len(daily))
	}
	if len(byCategory) != 0 {
		t.Errorf("len(byCategory) = %d, want 0", len(byCategory))
	}
	if !totals.Balance.IsZero() {
		t.Errorf("Balance = %s, want 0", totals.Balance)
	}
}

// TestMonthlyBreakdown_Grouping 同一天/同一分类的记录合并统计
func TestMonthlyBreakdown_Grouping(t *testing.T) {
	txs := []models.Transaction{
		testTx(1, 1, "工资", models.CategoryTypeIncome, "2000.00", "2025-03-05"),
		testTx(2, 3, "餐饮", models.CategoryTypeExpense, "50.00", "2025-03-05"),
		testTx(3, 3, "餐饮", models.CategoryTypeExpense, "30.50", "2025-03-05"),
		testTx(4, 2, "房租", models.CategoryTypeExpense, "1200.00", "2025-03-01"),
	}

	daily, byCategory, totals := MonthlyBreakdown(txs)

	if len(daily) != 2 {
		t.Fatalf("len(daily) = %d, want 2", len(daily))
	}
	// daily 按日期升序
	if daily[0].Date != "2025-03-01" || daily[1].Date != "2025-03-05" {
		t.Errorf("daily order = [%s, %s]", daily[0].Date, daily[1].Date)
	}
	if !daily[1].Expense.Equal(dec("80.50")) {
		t.Errorf("daily[1].Expense = %s, want 80.50", daily[1].Expense)
	}
	if !daily[1].Balance.Equal(dec("1919.50")) {
		t.Errorf("daily[1].Balance = %s, want 1919.50", daily[1].Balance)
	}

	if len(byCategory) != 3 {
		t.Fatalf("len(byCategory) = %d, want 3", len(byCategory))
	}
	for _, cs := range byCategory {
		if cs.Category == "餐饮" && !cs.Expense.Equal(dec("80.50")) {
			t.Errorf("餐饮 expense = %s, want 80.50", cs.Expense)
		}
	}

	// 分组后的总和要与整体汇总一致
	if !totals.TotalIncome.Equal(dec("2000.00")) || !totals.TotalExpense.Equal(dec("1280.50")) {
		t.Errorf("totals = %s / %s, want 2000.00 / 1280.50", totals.TotalIncome, totals.TotalExpense)
	}

	sumDaily := dec("0")
	for _, ds := range daily {
		sumDaily = sumDaily.Add(ds.Balance)
	}
	if !sumDaily.Equal(totals.Balance) {
		t.Errorf("sum of daily balances = %s, want %s", sumDaily, totals.Balance)
	}
}
