package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/models"
	"github.com/ishwarpande/translogix-app/utils"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// GetAllLogs -> jejak audit terbaru lebih dulu. Entry tidak bisa
// diubah atau dihapus lewat API; retensi diurus layer database.
func (lc *ActivityLogController) GetAllLogs(c *gin.Context) {
	var logs []models.ActivityLog
	if err := lc.DB.Order("timestamp desc").Find(&logs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Activity logs", logs)
}
