package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishwarpande/translogix-app/models"
)

func TestLoginAndProfile(t *testing.T) {
	db := setupTestDB(t, "users_login")
	r := setupAppRouter(db)

	admin := seedUser(t, db, models.RoleAdmin, "Ishwar Admin", "Active")

	// --- Login sukses ---
	w := doRequest(t, r, "POST", "/login", map[string]string{
		"username": admin.Username,
		"password": "password",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// --- Password salah ---
	w = doRequest(t, r, "POST", "/login", map[string]string{
		"username": admin.Username,
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// --- Profile dengan token ---
	w = doRequest(t, r, "GET", "/profile", nil, &admin)
	assert.Equal(t, http.StatusOK, w.Code)
	profile := decodeData(t, w)
	assert.Equal(t, admin.ID, profile["id"])
	assert.Equal(t, models.RoleAdmin, profile["role"])

	// --- Tanpa token ditolak ---
	w = doRequest(t, r, "GET", "/profile", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Login tercatat di activity log
	var count int64
	db.Model(&models.ActivityLog{}).Where("action = ?", "Logged in").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUserCRUDRequiresAdmin(t *testing.T) {
	db := setupTestDB(t, "users_crud")
	r := setupAppRouter(db)

	admin := seedUser(t, db, models.RoleAdmin, "Ishwar Admin", "Active")
	supervisor := seedUser(t, db, models.RoleSupervisor, "Supervisor One", "Active")

	// Supervisor tidak boleh membuat user
	w := doRequest(t, r, "POST", "/users", map[string]string{
		"username": "drv1", "password": "password", "name": "Driver One", "role": "DRIVER",
	}, &supervisor)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin membuat driver, status default AVAILABLE
	w = doRequest(t, r, "POST", "/users", map[string]string{
		"username": "drv1", "password": "password", "name": "Driver One", "role": "DRIVER",
	}, &admin)
	assert.Equal(t, http.StatusCreated, w.Code)
	created := decodeData(t, w)
	assert.Equal(t, models.DriverAvailable, created["status"])
	driverID := created["id"].(string)

	// Status driver di luar enum ditolak
	w = doRequest(t, r, "PATCH", "/users/"+driverID, map[string]string{
		"status": "SLEEPING",
	}, &admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// ON_LEAVE valid
	w = doRequest(t, r, "PATCH", "/users/"+driverID, map[string]string{
		"status": models.DriverOnLeave,
	}, &admin)
	assert.Equal(t, http.StatusOK, w.Code)

	// Filter per role
	w = doRequest(t, r, "GET", "/users?role=DRIVER", nil, &admin)
	assert.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []models.User `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Data, 1)

	// Hapus driver
	w = doRequest(t, r, "DELETE", "/users/"+driverID, nil, &admin)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(2), count)
}
