package summary

import (
	"sort"

	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// DayStat 某一天的收支统计
type DayStat struct {
	Date    string // YYYY-MM-DD
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// CategoryStat 某个分类的收支统计
type CategoryStat struct {
	Category string
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Balance  decimal.Decimal
}

// MonthlyBreakdown 把一个月内的交易按天和按分类分组统计
// 输入应当已经按用户和月份筛选过，且带上 Category
func MonthlyBreakdown(txs []models.Transaction) (daily []DayStat, byCategory []CategoryStat, totals Result) {
	dailyMap := make(map[string]*DayStat)
	catMap := make(map[string]*CategoryStat)

	for i := range txs {
		t := &txs[i]

		dateKey := t.Date.Format(dateLayout)
		ds, ok := dailyMap[dateKey]
		if !ok {
			ds = &DayStat{Date: dateKey, Income: decimal.Zero, Expense: decimal.Zero}
			dailyMap[dateKey] = ds
		}

		cs, ok := catMap[t.Category.Name]
		if !ok {
			cs = &CategoryStat{Category: t.Category.Name, Income: decimal.Zero, Expense: decimal.Zero}
			catMap[t.Category.Name] = cs
		}

		if t.Category.Type == models.CategoryTypeIncome {
			ds.Income = ds.Income.Add(t.Amount)
			cs.Income = cs.Income.Add(t.Amount)
		} else if t.Category.Type == models.CategoryTypeExpense {
			ds.Expense = ds.Expense.Add(t.Amount)
			cs.Expense = cs.Expense.Add(t.Amount)
		}
	}

	daily = make([]DayStat, 0, len(dailyMap))
	for _, ds := range dailyMap {
		ds.Balance = ds.Income.Sub(ds.Expense)
		daily = append(daily, *ds)
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	byCategory = make([]CategoryStat, 0, len(catMap))
	for _, cs := range catMap {
		cs.Balance = cs.Income.Sub(cs.Expense)
		byCategory = append(byCategory, *cs)
	}
	sort.Slice(byCategory, func(i, j int) bool { return byCategory[i].Category < byCategory[j].Category })

	return daily, byCategory, Summarize(txs)
}
