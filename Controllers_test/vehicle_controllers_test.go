package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishwarpande/translogix-app/models"
)

func TestVehicleCRUD(t *testing.T) {
	db := setupTestDB(t, "vehicles_crud")
	r := setupAppRouter(db)

	admin := seedUser(t, db, models.RoleAdmin, "Ishwar Admin", "Active")
	driver := seedUser(t, db, models.RoleDriver, "Driver One", models.DriverAvailable)

	// Buat kendaraan, status default ACTIVE
	w := doRequest(t, r, "POST", "/vehicles", map[string]string{
		"name":                "Tata Ace",
		"registration_number": "MH-12-AB-1234",
	}, &admin)
	assert.Equal(t, http.StatusCreated, w.Code)
	created := decodeData(t, w)
	assert.Equal(t, models.VehicleActive, created["status"])
	vehicleID := created["id"].(string)

	// Status di luar enum ditolak
	w = doRequest(t, r, "PATCH", "/vehicles/"+vehicleID, map[string]string{
		"status": "BROKEN",
	}, &admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// MAINTENANCE valid
	w = doRequest(t, r, "PATCH", "/vehicles/"+vehicleID, map[string]string{
		"status": models.VehicleMaintenance,
	}, &admin)
	assert.Equal(t, http.StatusOK, w.Code)

	// Semua role boleh melihat armada
	w = doRequest(t, r, "GET", "/vehicles", nil, &driver)
	assert.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []models.Vehicle `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Data, 1)
	assert.Equal(t, models.VehicleMaintenance, listResp.Data[0].Status)

	// Tapi hanya admin yang boleh mengubah
	w = doRequest(t, r, "DELETE", "/vehicles/"+vehicleID, nil, &driver)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "DELETE", "/vehicles/"+vehicleID, nil, &admin)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Vehicle{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// Kendaraan non-ACTIVE tidak bisa dipakai approve
func TestInactiveVehicleNotAssignable(t *testing.T) {
	db := setupTestDB(t, "vehicles_assign")
	r := setupAppRouter(db)

	admin := seedUser(t, db, models.RoleAdmin, "Ishwar Admin", "Active")
	supervisor := seedUser(t, db, models.RoleSupervisor, "Supervisor One", "Active")
	driver := seedUser(t, db, models.RoleDriver, "Driver One", models.DriverAvailable)
	vehicle := seedVehicle(t, db, "Tata Ace", models.VehicleMaintenance)

	job := createJobAs(t, r, &supervisor, "2024-06-09", "09:00-12:00")

	w := doRequest(t, r, "POST", "/jobs/"+job.ID+"/approve", map[string]string{
		"driver_id": driver.ID, "vehicle_id": vehicle.ID,
	}, &admin)
	assert.Equal(t, http.StatusConflict, w.Code)

	var j models.Job
	db.First(&j, "id = ?", job.ID)
	assert.Equal(t, models.JobPending, j.Status)
}
