package models

// Role untuk user aplikasi
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleDriver     = "DRIVER"
)

// Status khusus untuk driver. Supervisor/admin memakai status bebas
// (mis. "Active").
const (
	DriverAvailable = "AVAILABLE"
	DriverAssigned  = "ASSIGNED"
	DriverOnLeave   = "ON_LEAVE"
)

type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Username string `gorm:"type:varchar(100);unique;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null" json:"role"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Status   string `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
}

// IsDriver -> helper untuk cek role
func (u *User) IsDriver() bool {
	return u.Role == RoleDriver
}
