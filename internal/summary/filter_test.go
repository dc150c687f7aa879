package summary

import (
	"testing"
	"time"

	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"
)

// TestParseDateRange_Valid 两端都合法才生效
func TestParseDateRange_Valid(t *testing.T) {
	start, end, ok := ParseDateRange("2025-03-01", "2025-03-31")
	if !ok {
		t.Fatal("ParseDateRange ok = false, want true")
	}
	if start.Format("2006-01-02") != "2025-03-01" || end.Format("2006-01-02") != "2025-03-31" {
		t.Errorf("got [%s, %s]", start, end)
	}
}

// TestParseDateRange_Invalid 任何一端非法或缺失都整体跳过
func TestParseDateRange_Invalid(t *testing.T) {
	testCases := [][2]string{
		{"", ""},
		{"2025-03-01", ""},
		{"", "2025-03-31"},
		{"not-a-date", "2025-03-31"},
		{"2025-03-01", "not-a-date"},
		{"2025/03/01", "2025-03-31"},
		{"2025-3-1", "2025-03-31"},
	}

	for _, tc := range testCases {
		if _, _, ok := ParseDateRange(tc[0], tc[1]); ok {
			t.Errorf("ParseDateRange(%q, %q) ok = true, want false", tc[0], tc[1])
		}
	}
}

// TestParseAmount_Invalid 非法金额返回 false
func TestParseAmount_Invalid(t *testing.T) {
	testCases := []string{"", "abc", "12.3.4", "1,000"}

	for _, s := range testCases {
		if _, ok := ParseAmount(s); ok {
			t.Errorf("ParseAmount(%q) ok = true, want false", s)
		}
	}
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		testTx(1, 1, "工资", models.CategoryTypeIncome, "2000.00", "2025-03-05"),
		testTx(2, 2, "房租", models.CategoryTypeExpense, "1200.00", "2025-03-01"),
		testTx(3, 3, "餐饮", models.CategoryTypeExpense, "300.50", "2025-03-10"),
		testTx(4, 3, "餐饮", models.CategoryTypeExpense, "58.00", "2025-04-02"),
	}
}

// TestFilter_DateRangeInclusive 日期区间两端都包含
func TestFilter_DateRangeInclusive(t *testing.T) {
	f := ParseFilter("", "2025-03-01", "2025-03-10", "", "")
	got := f.Apply(sampleTransactions())

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// 边界日期 03-01 和 03-10 都应该在结果里
	ids := map[uint]bool{}
	for _, tx := range got {
		ids[tx.ID] = true
	}
	if !ids[2] || !ids[3] {
		t.Errorf("boundary transactions missing, got ids %v", ids)
	}
}

// TestFilter_AmountRangeInclusive 金额区间两端都包含
func TestFilter_AmountRangeInclusive(t *testing.T) {
	f := ParseFilter("", "", "", "300.50", "1200.00")
	got := f.Apply(sampleTransactions())

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, tx := range got {
		if tx.ID != 2 && tx.ID != 3 {
			t.Errorf("unexpected transaction id %d", tx.ID)
		}
	}
}

// TestFilter_Category 按分类精确匹配
func TestFilter_Category(t *testing.T) {
	f := ParseFilter("3", "", "", "", "")
	got := f.Apply(sampleTransactions())

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, tx := range got {
		if tx.CategoryID != 3 {
			t.Errorf("CategoryID = %d, want 3", tx.CategoryID)
		}
	}
}

// TestFilter_MalformedDateIgnored 坏的日期参数整体忽略，其余条件照常生效
func TestFilter_MalformedDateIgnored(t *testing.T) {
	f := ParseFilter("", "not-a-date", "2025-03-31", "", "")
	got := f.Apply(sampleTransactions())

	if len(got) != 4 {
		t.Errorf("len = %d, want 4 (date filter skipped)", len(got))
	}
}

// TestFilter_MalformedAmountIgnored 坏的金额参数同样忽略
func TestFilter_MalformedAmountIgnored(t *testing.T) {
	f := ParseFilter("", "", "", "abc", "")
	got := f.Apply(sampleTransactions())

	if len(got) != 4 {
		t.Errorf("len = %d, want 4 (amount filter skipped)", len(got))
	}
}

// TestFilter_Idempotent 同一个过滤器用两次结果不变
func TestFilter_Idempotent(t *testing.T) {
	f := ParseFilter("3", "2025-03-01", "2025-04-30", "50.00", "500.00")

	once := f.Apply(sampleTransactions())
	twice := f.Apply(once)

	if len(once) != len(twice) {
		t.Fatalf("len(once) = %d, len(twice) = %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("order changed at %d: %d vs %d", i, once[i].ID, twice[i].ID)
		}
	}
}

// TestFilter_SortDateDesc 结果按日期倒序（最近的在前）
func TestFilter_SortDateDesc(t *testing.T) {
	f := ParseFilter("", "", "", "", "")
	got := f.Apply(sampleTransactions())

	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	wantOrder := []uint{4, 3, 1, 2}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %d, want %d", i, got[i].ID, id)
		}
	}
}

// TestFilter_Combined 多条件同时生效取交集
func TestFilter_Combined(t *testing.T) {
	f := ParseFilter("3", "2025-03-01", "2025-03-31", "100.00", "2000.00")
	got := f.Apply(sampleTransactions())

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != 3 {
		t.Errorf("got id %d, want 3", got[0].ID)
	}
}

// TestResolvePeriod 合法参数直接采用，其余一律回退到 now
func TestResolvePeriod(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		monthStr, yearStr   string
		wantMonth, wantYear int
	}{
		{"", "", 9, 2025},
		{"3", "2024", 3, 2024},
		{"12", "2025", 12, 2025},
		{"13", "2025", 9, 2025}, // 超出 1-12 的月份按当前月处理
		{"0", "2025", 9, 2025},
		{"-1", "2025", 9, 2025},
		{"abc", "2025", 9, 2025},
		{"3", "abc", 3, 2025},
		{"3.5", "2025", 9, 2025},
	}

	for _, tc := range testCases {
		month, year := ResolvePeriod(tc.monthStr, tc.yearStr, now)
		if month != tc.wantMonth || year != tc.wantYear {
			t.Errorf("ResolvePeriod(%q, %q) = (%d, %d), want (%d, %d)",
				tc.monthStr, tc.yearStr, month, year, tc.wantMonth, tc.wantYear)
		}
	}
}
