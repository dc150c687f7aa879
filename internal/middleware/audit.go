package middleware

import (
	"github.com/KhanJunaid23/personal-budget-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditMiddleware 把写操作记录到 audit_logs 表（查询类请求不记）
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取用户 ID
		var userID uint
		if v, ok := c.Get("currentUser"); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}

		// 执行请求
		c.Next()

		// 只记录登录用户的写操作
		if userID == 0 {
			return
		}
		method := c.Request.Method
		if method == "GET" || method == "HEAD" || method == "OPTIONS" {
			return
		}

		path := c.Request.URL.Path
		log := models.AuditLog{
			UserID:    &userID,
			Path:      path,
			Method:    method,
			Action:    method + " " + path,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&log).Error
	}
}
