package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/models"
)

// LogRetention = jumlah activity log terbaru yang dipertahankan.
// Sama dengan batas aplikasi lama.
const LogRetention = 500

// SeedAdmin membuat akun admin awal bila tabel user masih kosong,
// supaya instalasi baru langsung bisa login.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		ID:       uuid.NewString(),
		Username: "ishwar",
		Password: "ishwar@121",
		Role:     models.RoleAdmin,
		Name:     "Ishwar Admin",
		Status:   "Active",
	}
	return db.Create(&admin).Error
}

// PruneActivityLogs menghapus entry di luar N terbaru. Dipanggil saat
// startup dan setelah append; kegagalan di sini tidak pernah menggagalkan
// operasi yang memicunya.
func PruneActivityLogs(db *gorm.DB, keep int) error {
	// MySQL tidak mendukung LIMIT di dalam subquery IN, jadi ambil dulu
	// id yang dipertahankan lalu hapus sisanya.
	var ids []string
	err := db.Model(&models.ActivityLog{}).
		Order("timestamp desc").
		Limit(keep).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return db.Where("id NOT IN ?", ids).
		Delete(&models.ActivityLog{}).Error
}
