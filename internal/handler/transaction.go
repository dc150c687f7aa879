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

// TransactionHandler 负责交易记录相关接口
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

// ---------- 请求/响应结构 ----------

type transactionReq struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Date       string `json:"date"` // 可选，默认今天
	Detail     string `json:"detail" binding:"max=255"`
}

type transactionResp struct {
	ID         uint      `json:"id"`
	CategoryID uint      `json:"category_id"`
	Category   string    `json:"category"`
	Type       string    `json:"type"`
	Amount     string    `json:"amount"` // 两位小数字符串，方便前端直接显示
	Date       string    `json:"date"`   // YYYY-MM-DD
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		ID:         t.ID,
		CategoryID: t.CategoryID,
		Category:   t.Category.Name,
		Type:       t.Category.Type,
		Amount:     t.Amount.StringFixed(2),
		Date:       t.Date.Format("2006-01-02"),
		Detail:     t.Detail,
		CreatedAt:  t.CreatedAt,
	}
}

// ---------- 工具函数 ----------

// parseAmountField 解析请求里的金额字符串并做有效性校验
func parseAmountField(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if err := util.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// parseDateField 解析交易日期，支持多种格式；为空时默认今天
// 只保留日期部分并统一按 UTC 存储，带时区的输入不会落到相邻的月份
func parseDateField(s string) time.Time {
	occurred := time.Now()
	if s != "" {
		layouts := []string{
			time.RFC3339,          // 2025-12-03T00:00:00+08:00
			"2006-01-02T15:04:05", // 2025-12-03T00:00:00
			"2006-01-02",          // 2025-12-03
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				occurred = t
				break
			}
		}
	}
	return time.Date(occurred.Year(), occurred.Month(), occurred.Day(), 0, 0, 0, 0, time.UTC)
}

// findOwnCategory 查询属于当前用户的分类
func findOwnCategory(db *gorm.DB, userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	err := db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ---------- 记一笔 ----------

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
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

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	// 分类必须存在且属于当前用户
	category, err := findOwnCategory(h.DB, user.ID, req.CategoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "分类不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	amount, err := parseAmountField(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请输入有效金额")
		return
	}

	// 交易日期：默认为今天；不能晚于今天
	date := parseDateField(req.Date)
	if date.Format("2006-01-02") > time.Now().Format("2006-01-02") {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "交易日期不能晚于今天")
		return
	}

	transaction := models.Transaction{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     amount,
		Date:       date,
		Detail:     req.Detail,
	}

	if err := h.DB.Create(&transaction).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	transaction.Category = *category
	util.Created(c, util.Response{
		"transaction": toTransactionResp(&transaction),
	})
}

// ListTransactions 查询交易列表，支持分类、日期区间、金额区间筛选
// 非法的筛选参数直接忽略，不会让整个请求失败；结果按日期倒序
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
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

	filter := summary.ParseFilter(
		c.Query("category"),
		c.Query("startDate"),
		c.Query("endDate"),
		c.Query("minAmount"),
		c.Query("maxAmount"),
	)

	var transactions []models.Transaction
	if err := h.DB.Preload("Category").
		Where("user_id = ?", user.ID).
		Find(&transactions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	filtered := filter.Apply(transactions)

	items := make([]transactionResp, 0, len(filtered))
	for i := range filtered {
		items = append(items, toTransactionResp(&filtered[i]))
	}

	util.Success(c, util.Response{
		"items": items,
		"total": len(items),
	})
}

// GetTransaction 查询单条交易记录
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
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

	var transaction models.Transaction
	if err := h.DB.Preload("Category").
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&transaction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	util.Success(c, util.Response{
		"transaction": toTransactionResp(&transaction),
	})
}

// UpdateTransaction 修改一条已有的交易记录（只能修改自己的）
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
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

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	var transaction models.Transaction
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&transaction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	category, err := findOwnCategory(h.DB, user.ID, req.CategoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "分类不存在")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	amount, err := parseAmountField(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "请输入有效金额")
		return
	}

	date := parseDateField(req.Date)
	if date.Format("2006-01-02") > time.Now().Format("2006-01-02") {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "交易日期不能晚于今天")
		return
	}

	transaction.CategoryID = category.ID
	transaction.Amount = amount
	transaction.Date = date
	transaction.Detail = req.Detail

	if err := h.DB.Save(&transaction).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	transaction.Category = *category
	util.Success(c, util.Response{
		"transaction": toTransactionResp(&transaction),
	})
}

// ---------- 删除一条记录 ----------

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
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

	// 只允许删除自己的记录；不存在和不属于当前用户统一按 404 处理
	result := h.DB.
		Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		return
	}

	util.Success(c, util.Response{
		"message": "删除成功",
	})
}
