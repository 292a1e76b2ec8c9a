package models

const (
	VehicleActive       = "ACTIVE"
	VehicleMaintenance  = "MAINTENANCE"
	VehicleOutOfService = "OUT_OF_SERVICE"
)

type Vehicle struct {
	ID                 string `gorm:"primaryKey;size:36" json:"id"`
	Name               string `gorm:"type:varchar(255);not null" json:"name"`
	RegistrationNumber string `gorm:"type:varchar(50);not null" json:"registration_number"`
	Status             string `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
}
