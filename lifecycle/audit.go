package lifecycle

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ishwarpande/translogix-app/models"
)

// NewLogEntry membentuk satu entry audit untuk transisi yang sudah
// commit. Murni proyeksi data; penulisan ke storage (dan kegagalannya)
// urusan caller, tidak boleh memblokir atau membatalkan transisi.
func NewLogEntry(actor models.User, action string, now time.Time) models.ActivityLog {
	return models.ActivityLog{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Role:      actor.Role,
		Action:    action,
		Timestamp: now,
	}
}

// Teks aksi di bawah meniru wording aplikasi lama apa adanya supaya
// riwayat lama dan baru terbaca seragam.

func ActionLoggedIn() string  { return "Logged in" }
func ActionLoggedOut() string { return "Logged out" }

func ActionJobCreated(job *models.Job) string {
	return fmt.Sprintf("Created job: %s (%s to %s)", job.Purpose, job.FromPlace, job.ToPlace)
}

func ActionJobClaimed(jobID string) string {
	return fmt.Sprintf("Applied for Admin job: %s", jobID)
}

func ActionJobApproved(jobID, driverName string) string {
	return fmt.Sprintf("Approved job %s and assigned to %s", jobID, driverName)
}

func ActionJobRejected(jobID string) string {
	return fmt.Sprintf("Rejected job: %s", jobID)
}

func ActionJobArchived(jobID string) string {
	return fmt.Sprintf("Archived job: %s", jobID)
}

func ActionStatusUpdated(status string) string {
	return fmt.Sprintf("Updated job status: %s", status)
}

func ActionUserAdded(role, name string) string {
	return fmt.Sprintf("Added %s: %s", roleLabel(role), name)
}

func ActionUserDeleted(role, name string) string {
	return fmt.Sprintf("Deleted %s: %s", roleLabel(role), name)
}

func ActionVehicleAdded(name string) string {
	return fmt.Sprintf("Added vehicle: %s", name)
}

func ActionVehicleDeleted(name string) string {
	return fmt.Sprintf("Deleted vehicle: %s", name)
}

func ActionDriversReconciled(count int) string {
	return fmt.Sprintf("Reconciled driver statuses (%d corrected)", count)
}

func roleLabel(role string) string {
	switch role {
	case models.RoleDriver:
		return "driver"
	case models.RoleSupervisor:
		return "supervisor"
	default:
		return "user"
	}
}
