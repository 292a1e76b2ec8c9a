package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/models"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.ActivityLog{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSeedAdminOnlyOnEmptyTable(t *testing.T) {
	db := openTestDB(t, "db_seed")

	assert.NoError(t, SeedAdmin(db))

	var admin models.User
	assert.NoError(t, db.Where("username = ?", "ishwar").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Panggilan kedua tidak menduplikasi
	assert.NoError(t, SeedAdmin(db))
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPruneActivityLogsKeepsMostRecent(t *testing.T) {
	db := openTestDB(t, "db_prune")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 510; i++ {
		entry := models.ActivityLog{
			ID:        uuid.NewString(),
			UserID:    "u1",
			UserName:  "User One",
			Role:      models.RoleAdmin,
			Action:    fmt.Sprintf("entry %d", i),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		assert.NoError(t, db.Create(&entry).Error)
	}

	assert.NoError(t, PruneActivityLogs(db, LogRetention))

	var count int64
	db.Model(&models.ActivityLog{}).Count(&count)
	assert.Equal(t, int64(LogRetention), count)

	// Yang terbaru selamat, yang tertua terpangkas
	var survivors []models.ActivityLog
	db.Order("timestamp asc").Limit(1).Find(&survivors)
	assert.Equal(t, "entry 10", survivors[0].Action)
}

func TestPruneActivityLogsNoopUnderLimit(t *testing.T) {
	db := openTestDB(t, "db_prune_noop")

	entry := models.ActivityLog{
		ID: uuid.NewString(), UserID: "u1", UserName: "User One",
		Role: models.RoleAdmin, Action: "only entry", Timestamp: time.Now(),
	}
	assert.NoError(t, db.Create(&entry).Error)

	assert.NoError(t, PruneActivityLogs(db, LogRetention))

	var count int64
	db.Model(&models.ActivityLog{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
