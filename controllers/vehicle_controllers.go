package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/lifecycle"
	"github.com/ishwarpande/translogix-app/models"
	"github.com/ishwarpande/translogix-app/utils"
)

type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

// GetAllVehicles -> seluruh armada, opsional filter status
func (vc *VehicleController) GetAllVehicles(c *gin.Context) {
	query := vc.DB.Order("name")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of vehicles", vehicles)
}

// CreateVehicle -> menambahkan kendaraan baru
func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var req struct {
		Name               string `json:"name" binding:"required"`
		RegistrationNumber string `json:"registration_number" binding:"required"`
		Status             string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := req.Status
	if status == "" {
		status = models.VehicleActive
	}
	if !validVehicleStatus(status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid vehicle status"))
		return
	}

	vehicle := models.Vehicle{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Status:             status,
	}

	if err := vc.DB.Create(&vehicle).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if actor, err := currentUser(c, vc.DB); err == nil {
		writeLog(vc.DB, actor, lifecycle.ActionVehicleAdded(vehicle.Name))
	}

	utils.InfoLogger.Printf("New vehicle created: %s (%s)", vehicle.Name, vehicle.RegistrationNumber)
	utils.RespondJSON(c, http.StatusCreated, "Vehicle created", vehicle)
}

// UpdateVehicle -> ubah status / nama kendaraan
func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	var vehicle models.Vehicle
	if err := vc.DB.Where("id = ?", vehicleID).First(&vehicle).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name               *string `json:"name"`
		RegistrationNumber *string `json:"registration_number"`
		Status             *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.RegistrationNumber != nil {
		vehicle.RegistrationNumber = *req.RegistrationNumber
	}
	if req.Status != nil {
		if !validVehicleStatus(*req.Status) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid vehicle status"))
			return
		}
		vehicle.Status = *req.Status
	}

	if err := vc.DB.Save(&vehicle).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Vehicle %s status changed to %s", vehicle.Name, vehicle.Status)
	utils.RespondJSON(c, http.StatusOK, "Vehicle updated", vehicle)
}

// DeleteVehicle -> hapus kendaraan; job lama tetap menyimpan namanya
func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	var vehicle models.Vehicle
	if err := vc.DB.Where("id = ?", vehicleID).First(&vehicle).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := vc.DB.Delete(&vehicle).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if actor, err := currentUser(c, vc.DB); err == nil {
		writeLog(vc.DB, actor, lifecycle.ActionVehicleDeleted(vehicle.Name))
	}

	utils.InfoLogger.Printf("Vehicle %s deleted", vehicle.Name)
	utils.RespondJSON(c, http.StatusOK, "Vehicle deleted", gin.H{"id": vehicle.ID})
}

func validVehicleStatus(status string) bool {
	switch status {
	case models.VehicleActive, models.VehicleMaintenance, models.VehicleOutOfService:
		return true
	}
	return false
}
