package handler

import (
	"net/http"
	"strconv"

	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"
	"github.com/KhanJunaid23/personal-budget-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BudgetHandler 负责预算相关接口
type BudgetHandler struct {
	DB *gorm.DB
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{DB: db}
}

// ---------- 请求/响应结构 ----------

type budgetReq struct {
	Amount string `json:"amount" binding:"required"`
	Month  int    `json:"month" binding:"required"`
	Year   int    `json:"year" binding:"required"`
}

type budgetResp struct {
	ID     uint   `json:"id"`
	Amount string `json:"amount"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

func toBudgetResp(b *models.Budget) budgetResp {
	return budgetResp{
		ID:     b.ID,
		Amount: b.Amount.StringFixed(2),
		Month:  b.Month,
		Year:   b.Year,
	}
}

// validateBudgetPeriod 校验月份和年份取值
func validateBudgetPeriod(month, year int) bool {
	if util.ValidateMonth(month) != nil {
		return false
	}
	return year >= 1000 && year <= 9999
}

// ListBudgets 列出当前用户的全部预算
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
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

	var budgets []models.Budget
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("year DESC, month DESC").
		Find(&budgets).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	items := make([]budgetResp, 0, len(budgets))
	for i := range budgets {
		items = append(items, toBudgetResp(&budgets[i]))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

// CreateBudget 新建某月份的预算
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
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

	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	if !validateBudgetPeriod(req.Month, req.Year) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份或年份不合法")
		return
	}

	amount, err := parseAmountField(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请输入有效金额")
		return
	}

	budget := models.Budget{
		UserID: user.ID,
		Amount: amount,
		Month:  req.Month,
		Year:   req.Year,
	}
	if err := h.DB.Create(&budget).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	util.Created(c, util.Response{
		"budget": toBudgetResp(&budget),
	})
}

// UpdateBudget 修改预算（只能修改自己的）
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
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

	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	if !validateBudgetPeriod(req.Month, req.Year) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份或年份不合法")
		return
	}

	amount, err := parseAmountField(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请输入有效金额")
		return
	}

	var budget models.Budget
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&budget).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "预算不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	budget.Amount = amount
	budget.Month = req.Month
	budget.Year = req.Year

	if err := h.DB.Save(&budget).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	util.Success(c, util.Response{
		"budget": toBudgetResp(&budget),
	})
}

// DeleteBudget 删除预算（只能删除自己的）
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
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

	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	// 不存在和不属于当前用户统一按 404 处理
	result := h.DB.
		Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.Budget{})
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "预算不存在")
		return
	}

	util.Success(c, util.Response{
		"message": "删除成功",
	})
}
