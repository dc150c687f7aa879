package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/KhanJunaid23/personal-budget-tracker/internal/database"
	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 新建一个内存数据库并建表
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

// deleteContext 构造一个带路径参数和当前用户的 DELETE 请求上下文
func deleteContext(t *testing.T, user *models.User, target, id string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, target, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Set("currentUser", user)
	return c, w
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return &user
}

func createTestTransaction(t *testing.T, db *gorm.DB, userID uint) *models.Transaction {
	t.Helper()
	category := models.Category{UserID: userID, Name: "餐饮", Type: models.CategoryTypeExpense}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("创建测试分类失败: %v", err)
	}
	tx := models.Transaction{
		UserID:     userID,
		CategoryID: category.ID,
		Amount:     decimal.RequireFromString("58.00"),
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&tx).Error; err != nil {
		t.Fatalf("创建测试交易失败: %v", err)
	}
	return &tx
}

// TestDeleteTransaction_NotFound 删除不存在的交易返回 404
func TestDeleteTransaction_NotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")

	h := NewTransactionHandler(db)
	c, w := deleteContext(t, user, "/api/transactions/999", "999")
	h.DeleteTransaction(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

// TestDeleteTransaction_NotOwned 不能删除别人的交易，且对方数据不受影响
func TestDeleteTransaction_NotOwned(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	tx := createTestTransaction(t, db, bob.ID)

	h := NewTransactionHandler(db)
	idStr := strconv.Itoa(int(tx.ID))
	c, w := deleteContext(t, alice, "/api/transactions/"+idStr, idStr)
	h.DeleteTransaction(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var count int64
	db.Model(&models.Transaction{}).Where("id = ?", tx.ID).Count(&count)
	if count != 1 {
		t.Errorf("交易记录数 = %d, want 1", count)
	}
}

// TestDeleteTransaction_OK 删除自己的交易成功
func TestDeleteTransaction_OK(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	tx := createTestTransaction(t, db, user.ID)

	h := NewTransactionHandler(db)
	idStr := strconv.Itoa(int(tx.ID))
	c, w := deleteContext(t, user, "/api/transactions/"+idStr, idStr)
	h.DeleteTransaction(c)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var count int64
	db.Model(&models.Transaction{}).Where("id = ?", tx.ID).Count(&count)
	if count != 0 {
		t.Errorf("交易记录数 = %d, want 0", count)
	}
}

// TestDeleteBudget_NotFound 删除不存在的预算返回 404
func TestDeleteBudget_NotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")

	h := NewBudgetHandler(db)
	c, w := deleteContext(t, user, "/api/budgets/999", "999")
	h.DeleteBudget(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

// TestDeleteBudget_OK 删除自己的预算成功
func TestDeleteBudget_OK(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")

	budget := models.Budget{
		UserID: user.ID,
		Amount: decimal.RequireFromString("1500.00"),
		Month:  3,
		Year:   2025,
	}
	if err := db.Create(&budget).Error; err != nil {
		t.Fatalf("创建测试预算失败: %v", err)
	}

	h := NewBudgetHandler(db)
	idStr := strconv.Itoa(int(budget.ID))
	c, w := deleteContext(t, user, "/api/budgets/"+idStr, idStr)
	h.DeleteBudget(c)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var count int64
	db.Model(&models.Budget{}).Where("id = ?", budget.ID).Count(&count)
	if count != 0 {
		t.Errorf("预算记录数 = %d, want 0", count)
	}
}
