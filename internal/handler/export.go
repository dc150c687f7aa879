package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"
	"github.com/KhanJunaid23/personal-budget-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler 负责交易记录导出接口
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

// userTransactions 查询当前用户全部交易（带分类，按日期倒序）
func (h *ExportHandler) userTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := h.DB.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&transactions).Error
	return transactions, err
}

func typeText(t string) string {
	if t == models.CategoryTypeIncome {
		return "收入"
	}
	return "支出"
}

// ExportCSV 导出交易记录为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
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

	transactions, err := h.userTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	// 设置响应头
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM（让 Excel 正确识别中文）
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// 写入表头
	writer.Write([]string{"类型", "类别", "金额", "备注", "日期"})

	// 写入数据
	for i := range transactions {
		t := &transactions[i]
		writer.Write([]string{
			typeText(t.Category.Type),
			t.Category.Name,
			t.Amount.StringFixed(2),
			t.Detail,
			t.Date.Format("2006-01-02"),
		})
	}
}

// ExportXLSX 导出交易记录为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
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

	transactions, err := h.userTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	f := excelize.NewFile()
	sheetName := "交易明细"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}
	f.SetActiveSheet(index)

	// 设置表头
	headers := []string{"类型", "类别", "金额", "备注", "日期"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	// 写入数据
	for idx := range transactions {
		t := &transactions[idx]
		row := idx + 2

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), typeText(t.Category.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Category.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Amount.StringFixed(2))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Detail)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Date.Format("2006-01-02"))
	}

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "导出失败")
	}
}
