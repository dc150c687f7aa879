package summary

import (
	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// 预算状态取值（对外 API 字段，保持英文）
const (
	StatusOverBudget   = "Over Budget"
	StatusWithinBudget = "Within Budget"
)

// Result 收入/支出/结余汇总
type Result struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// Summarize 按分类类型汇总一组交易记录
// 要求每条记录已带上 Category；空集合返回全零而不是错误
func Summarize(txs []models.Transaction) Result {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for i := range txs {
		t := &txs[i]
		if t.Category.Type == models.CategoryTypeIncome {
			totalIncome = totalIncome.Add(t.Amount)
		} else if t.Category.Type == models.CategoryTypeExpense {
			totalExpense = totalExpense.Add(t.Amount)
		}
	}

	return Result{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}
}

// ExpenseTotal 只汇总支出类交易的金额
func ExpenseTotal(txs []models.Transaction) decimal.Decimal {
	return Summarize(txs).TotalExpense
}

// Comparison 预算与实际支出的对比结果
type Comparison struct {
	Budget        decimal.Decimal
	ActualExpense decimal.Decimal
	Remaining     decimal.Decimal
	Status        string
}

// Compare 比较预算额度和实际支出
// 超支判定用严格大于：实际支出恰好等于预算时仍算 Within Budget
func Compare(budget, actualExpense decimal.Decimal) Comparison {
	status := StatusWithinBudget
	if actualExpense.GreaterThan(budget) {
		status = StatusOverBudget
	}
	return Comparison{
		Budget:        budget,
		ActualExpense: actualExpense,
		Remaining:     budget.Sub(actualExpense),
		Status:        status,
	}
}
