package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"
	"github.com/KhanJunaid23/personal-budget-tracker/internal/summary"
	"github.com/KhanJunaid23/personal-budget-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatsHandler 负责汇总统计相关接口
type StatsHandler struct {
	DB *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{DB: db}
}

// monthTransactions 查询某用户在某年某月内的全部交易（带分类）
func (h *StatsHandler) monthTransactions(userID uint, year, month int) ([]models.Transaction, error) {
	from, to := summary.MonthWindow(year, month)

	var transactions []models.Transaction
	err := h.DB.Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Find(&transactions).Error
	return transactions, err
}

// firstBudget 取 (user, month, year) 的第一条预算记录
func (h *StatsHandler) firstBudget(userID uint, month, year int) (*models.Budget, error) {
	var budget models.Budget
	err := h.DB.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("id ASC").
		First(&budget).Error
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// TransactionSummary 返回当前用户全部交易的收入/支出/结余汇总
func (h *StatsHandler) TransactionSummary(c *gin.Context) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	var transactions []models.Transaction
	if err := h.DB.Preload("Category").
		Where("user_id = ?", user.ID).
		Find(&transactions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	result := summary.Summarize(transactions)

	util.Success(c, util.Response{
		"total_income":  result.TotalIncome.StringFixed(2),
		"total_expense": result.TotalExpense.StringFixed(2),
		"balance":       result.Balance.StringFixed(2),
	})
}

// BudgetSummary 返回某月份的预算执行情况
// month/year 缺省时取当前日期；该月没有预算时按 0 处理而不是报错
func (h *StatsHandler) BudgetSummary(c *gin.Context) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	// 非法或超界的 month/year 参数按缺省处理，不让请求失败
	month, year := summary.ResolvePeriod(c.Query("month"), c.Query("year"), time.Now())

	budgetAmount := decimal.Zero
	budget, err := h.firstBudget(user.ID, month, year)
	if err != nil && err != gorm.ErrRecordNotFound {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}
	if budget != nil {
		budgetAmount = budget.Amount
	}

	transactions, err := h.monthTransactions(user.ID, year, month)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	actualExpense := summary.ExpenseTotal(transactions)
	comparison := summary.Compare(budgetAmount, actualExpense)

	util.Success(c, util.Response{
		"month":          month,
		"year":           year,
		"budget":         comparison.Budget.StringFixed(2),
		"actual_expense": comparison.ActualExpense.StringFixed(2),
		"remaining":      comparison.Remaining.StringFixed(2),
		"status":         comparison.Status,
	})
}

// BudgetStatus 严格版的预算状态接口
// month/year 必填；该月没有预算时返回 404 而不是按 0 处理
func (h *StatsHandler) BudgetStatus(c *gin.Context) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr == "" || yearStr == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "缺少 month 或 year 参数")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month 参数不合法")
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "year 参数不合法")
		return
	}

	budget, err := h.firstBudget(user.ID, month, year)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "该月份未设置预算")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	transactions, err := h.monthTransactions(user.ID, year, month)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	actualExpense := summary.ExpenseTotal(transactions)
	comparison := summary.Compare(budget.Amount, actualExpense)

	util.Success(c, util.Response{
		"budget":         comparison.Budget.StringFixed(2),
		"total_expenses": comparison.ActualExpense.StringFixed(2),
		"remaining":      comparison.Remaining.StringFixed(2),
		"status":         comparison.Status,
	})
}

// GetMonthlyStats 返回指定月份的统计数据（每日收支 + 类别汇总）
func (h *StatsHandler) GetMonthlyStats(c *gin.Context) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	// 月份参数：?month=2025-12
	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = time.Now().Format("2006-01")
	}

	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份格式错误，应为 YYYY-MM")
		return
	}

	transactions, err := h.monthTransactions(user.ID, t.Year(), int(t.Month()))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	daily, byCategory, totals := summary.MonthlyBreakdown(transactions)

	dailyList := make([]gin.H, 0, len(daily))
	for _, ds := range daily {
		dailyList = append(dailyList, gin.H{
			"date":    ds.Date,
			"income":  ds.Income.StringFixed(2),
			"expense": ds.Expense.StringFixed(2),
			"balance": ds.Balance.StringFixed(2),
		})
	}

	catList := make([]gin.H, 0, len(byCategory))
	for _, cs := range byCategory {
		catList = append(catList, gin.H{
			"category": cs.Category,
			"income":   cs.Income.StringFixed(2),
			"expense":  cs.Expense.StringFixed(2),
			"balance":  cs.Balance.StringFixed(2),
		})
	}

	util.Success(c, util.Response{
		"month":         monthStr,
		"daily":         dailyList,
		"by_category":   catList,
		"total_income":  totals.TotalIncome.StringFixed(2),
		"total_expense": totals.TotalExpense.StringFixed(2),
		"total_balance": totals.Balance.StringFixed(2),
	})
}
