package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/models"
	"github.com/ishwarpande/translogix-app/router"
	"github.com/ishwarpande/translogix-app/utils"
)

// setupTestDB membuka SQLite in-memory (nama unik per test supaya tidak
// saling mengotori) dan memigrasi semua model.
func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Job{},
		&models.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupAppRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	return router.SetupRouter(db)
}

func seedUser(t *testing.T, db *gorm.DB, role, name, status string) models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.NewString(),
		Username: uuid.NewString()[:8],
		Password: "password",
		Role:     role,
		Name:     name,
		Status:   status,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedVehicle(t *testing.T, db *gorm.DB, name, status string) models.Vehicle {
	t.Helper()
	vehicle := models.Vehicle{
		ID:                 uuid.NewString(),
		Name:               name,
		RegistrationNumber: "MH-12-" + uuid.NewString()[:4],
		Status:             status,
	}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}
	return vehicle
}

// doRequest mengirim request JSON dengan token user yang bersangkutan
func doRequest(t *testing.T, r *gin.Engine, method, url string, body interface{}, asUser *models.User) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if asUser != nil {
		token, err := utils.GenerateToken(asUser.ID, asUser.Role)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeData membongkar field data dari envelope JSON standar
func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	data, _ := resp["data"].(map[string]interface{})
	return data
}
