package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/database"
	"github.com/ishwarpande/translogix-app/lifecycle"
	"github.com/ishwarpande/translogix-app/models"
	"github.com/ishwarpande/translogix-app/utils"
)

// currentUser mengambil record user dari klaim token di context.
// Selalu baca ulang dari DB, jangan percaya cache, supaya perubahan
// status/role langsung terasa.
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, error) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		return nil, errors.New("user id not found in context")
	}
	userID, ok := userIDInterface.(string)
	if !ok || userID == "" {
		return nil, errors.New("invalid user id in context")
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// writeLog menulis satu entry audit lalu memangkas retensi.
// Fire-and-forget: kegagalan hanya dicatat, tidak pernah menggagalkan
// atau membatalkan operasi yang sudah commit.
func writeLog(db *gorm.DB, actor *models.User, action string) {
	entry := lifecycle.NewLogEntry(*actor, action, time.Now())
	if err := db.Create(&entry).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to write activity log: %v", err)
		return
	}
	if err := database.PruneActivityLogs(db, database.LogRetention); err != nil {
		utils.ErrorLogger.Printf("Failed to prune activity logs: %v", err)
	}
}
