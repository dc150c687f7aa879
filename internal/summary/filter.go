package summary

import (
	"sort"
	"strconv"
	"time"

	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Filter 交易列表的筛选条件，全部可选，同时生效时取交集
// 解析失败的条件直接当作未提供，不会让整个请求失败
type Filter struct {
	CategoryID *uint
	StartDate  *time.Time // 含当天
	EndDate    *time.Time // 含当天
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// ParseCategoryID 解析分类 ID，非法输入返回 false
func ParseCategoryID(s string) (uint, bool) {
	if s == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ParseDateRange 解析日期区间（YYYY-MM-DD，两端都含）
// 两个都传且都合法才生效，否则整个区间条件被跳过
func ParseDateRange(startStr, endStr string) (start, end time.Time, ok bool) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// ParseAmount 解析金额筛选值，非法输入返回 false
func ParseAmount(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseFilter 从查询参数构造 Filter，坏参数一律跳过
func ParseFilter(category, startDate, endDate, minAmount, maxAmount string) Filter {
	var f Filter

	if id, ok := ParseCategoryID(category); ok {
		f.CategoryID = &id
	}
	if start, end, ok := ParseDateRange(startDate, endDate); ok {
		f.StartDate = &start
		f.EndDate = &end
	}
	if min, ok := ParseAmount(minAmount); ok {
		f.MinAmount = &min
	}
	if max, ok := ParseAmount(maxAmount); ok {
		f.MaxAmount = &max
	}
	return f
}

// Match 判断单条交易是否满足所有已提供的条件
func (f Filter) Match(t *models.Transaction) bool {
	if f.CategoryID != nil && t.CategoryID != *f.CategoryID {
		return false
	}
	if f.StartDate != nil && f.EndDate != nil {
		// 按日期字符串比较，避免时区引起的边界问题
		d := t.Date.Format(dateLayout)
		if d < f.StartDate.Format(dateLayout) || d > f.EndDate.Format(dateLayout) {
			return false
		}
	}
	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

// Apply 过滤并按日期倒序（同日期按 ID 倒序）返回新切片
func (f Filter) Apply(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for i := range txs {
		if f.Match(&txs[i]) {
			out = append(out, txs[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// MonthWindow 返回某年某月的时间区间 [月初, 下月初)
func MonthWindow(year, month int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// ResolvePeriod 解析汇总接口的 month/year 参数
// 缺失、非法或超出 1-12 范围的 month 都回退到 now 对应的月份，
// 避免 month=13 之类的输入被日期运算悄悄折算到下一年的一月
func ResolvePeriod(monthStr, yearStr string, now time.Time) (month, year int) {
	month = int(now.Month())
	year = now.Year()

	if monthStr != "" {
		if m, err := strconv.Atoi(monthStr); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	if yearStr != "" {
		if y, err := strconv.Atoi(yearStr); err == nil {
			year = y
		}
	}
	return month, year
}
