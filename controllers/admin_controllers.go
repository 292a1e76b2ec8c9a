package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/lifecycle"
	"github.com/ishwarpande/translogix-app/models"
	"github.com/ishwarpande/translogix-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> angka ringkasan untuk dashboard: job pending,
// job yang sedang berjalan, job selesai, driver available, dan breakdown
// status armada. Job ARCHIVED tidak ikut dihitung.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var pendingCount, inFlightCount, completedCount int64
	var availableDrivers int64
	var activeVehicles, maintenanceVehicles, outOfServiceVehicles int64

	ac.DB.Model(&models.Job{}).Where("status = ?", models.JobPending).Count(&pendingCount)
	ac.DB.Model(&models.Job{}).Where("status IN ?", []string{
		models.JobApproved, models.JobAccepted, models.JobReached, models.JobOnWork,
	}).Count(&inFlightCount)
	ac.DB.Model(&models.Job{}).Where("status = ?", models.JobCompleted).Count(&completedCount)

	ac.DB.Model(&models.User{}).
		Where("role = ? AND status = ?", models.RoleDriver, models.DriverAvailable).
		Count(&availableDrivers)

	ac.DB.Model(&models.Vehicle{}).Where("status = ?", models.VehicleActive).Count(&activeVehicles)
	ac.DB.Model(&models.Vehicle{}).Where("status = ?", models.VehicleMaintenance).Count(&maintenanceVehicles)
	ac.DB.Model(&models.Vehicle{}).Where("status = ?", models.VehicleOutOfService).Count(&outOfServiceVehicles)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"pending_jobs":      pendingCount,
		"approved_jobs":     inFlightCount,
		"completed_jobs":    completedCount,
		"available_drivers": availableDrivers,
		"vehicles": gin.H{
			"active":         activeVehicles,
			"maintenance":    maintenanceVehicles,
			"out_of_service": outOfServiceVehicles,
		},
	})
}

// ReconcileDrivers -> operasi repair eksplisit: hitung ulang status
// setiap driver dari job yang sedang berjalan. Membereskan driver yang
// tertinggal ASSIGNED karena job-nya diarsip/ditolak setelah approve,
// atau karena write status driver pernah gagal.
func (ac *AdminController) ReconcileDrivers(c *gin.Context) {
	actor, err := currentUser(c, ac.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var users []models.User
	if err := ac.DB.Where("role = ?", models.RoleDriver).Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var jobs []models.Job
	if err := ac.DB.Find(&jobs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	changed := lifecycle.ReconcileDrivers(users, jobs)
	for i := range changed {
		if err := ac.DB.Save(&changed[i]).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	writeLog(ac.DB, actor, lifecycle.ActionDriversReconciled(len(changed)))
	utils.InfoLogger.Printf("Driver reconciliation corrected %d records", len(changed))
	utils.RespondJSON(c, http.StatusOK, "Drivers reconciled", gin.H{
		"corrected": len(changed),
		"drivers":   changed,
	})
}
