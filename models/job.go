package models

import "time"

// Status lifecycle untuk job transport.
// PENDING adalah status awal; REJECTED, COMPLETED dan ARCHIVED terminal.
const (
	JobPending   = "PENDING"
	JobApproved  = "APPROVED"
	JobRejected  = "REJECTED"
	JobAccepted  = "ACCEPTED"
	JobReached   = "REACHED"
	JobOnWork    = "ON_WORK"
	JobCompleted = "COMPLETED"
	JobArchived  = "ARCHIVED"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Origin menandai siapa pemilik awal job: pool admin (open requirement
// yang bisa di-claim supervisor) atau supervisor tertentu. Dulu ini
// dikodekan lewat sentinel supervisor_id == "admin"; sekarang eksplisit.
const (
	OriginAdminPool  = "ADMIN_POOL"
	OriginSupervisor = "SUPERVISOR"
)

// AdminPoolID masih ditulis ke kolom supervisor_id untuk kompatibilitas
// data lama; logika aplikasi bercabang pada kolom Origin.
const AdminPoolID = "admin"

// AdminPoolName adalah display name untuk open requirement.
const AdminPoolName = "Admin Requirement"

// TimeSlots adalah daftar slot waktu yang bisa dipilih saat membuat job.
var TimeSlots = []string{
	"06:00-09:00",
	"09:00-12:00",
	"12:00-15:00",
	"15:00-18:00",
	"18:00-21:00",
}

// ValidTimeSlot -> cek apakah slot ada di daftar
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Job adalah permintaan transport. Relasi ke User dan Vehicle sengaja
// weak reference (id + nama denormalisasi, tanpa foreign key): record
// yang dirujuk boleh dihapus dan job tetap bisa ditampilkan.
type Job struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	Origin         string `gorm:"type:varchar(20);not null;default:'SUPERVISOR'" json:"origin"`
	SupervisorID   string `gorm:"index;size:36;not null" json:"supervisor_id"`
	SupervisorName string `gorm:"type:varchar(255);not null" json:"supervisor_name"`

	FromPlace string `gorm:"type:varchar(255);not null" json:"from_place"`
	ToPlace   string `gorm:"type:varchar(255);not null" json:"to_place"`
	Date      string `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	TimeSlot  string `gorm:"type:varchar(20);index;not null" json:"time_slot"`
	Purpose   string `gorm:"type:text" json:"purpose"`
	Priority  string `gorm:"type:varchar(10);not null;default:'MEDIUM'" json:"priority"`

	Status string `gorm:"type:varchar(15);index;not null;default:'PENDING'" json:"status"`

	// Terisi hanya setelah approve
	DriverID    string `gorm:"index;size:36" json:"driver_id,omitempty"`
	DriverName  string `gorm:"type:varchar(255)" json:"driver_name,omitempty"`
	VehicleID   string `gorm:"index;size:36" json:"vehicle_id,omitempty"`
	VehicleName string `gorm:"type:varchar(255)" json:"vehicle_name,omitempty"`

	Remarks string `gorm:"type:text" json:"remarks,omitempty"`

	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsOpenRequirement -> job pool admin yang masih PENDING, tampil di board
func (j *Job) IsOpenRequirement() bool {
	return j.Origin == OriginAdminPool && j.Status == JobPending
}

// IsTerminal -> tidak ada transisi lagi dari status ini
func (j *Job) IsTerminal() bool {
	return j.Status == JobRejected || j.Status == JobCompleted || j.Status == JobArchived
}

// IsAssigned -> driver/vehicle sudah terikat ke job ini
func (j *Job) IsAssigned() bool {
	return j.DriverID != "" && j.VehicleID != ""
}

// InFlight -> job yang sedang memakai kendaraan (belum selesai,
// belum ditolak, belum diarsip)
func (j *Job) InFlight() bool {
	switch j.Status {
	case JobApproved, JobAccepted, JobReached, JobOnWork:
		return true
	}
	return false
}
