package lifecycle

import (
	"time"

	"github.com/ishwarpande/translogix-app/models"
)

// VehicleBusy -> true bila ada job lain yang sudah memegang kendaraan
// tersebut untuk tanggal + slot yang sama dan belum selesai / ditolak /
// diarsip. Ini aturan anti double-booking inti.
func VehicleBusy(jobs []models.Job, job *models.Job, vehicleID string) bool {
	for i := range jobs {
		j := &jobs[i]
		if j.ID != job.ID &&
			j.VehicleID == vehicleID &&
			j.Date == job.Date &&
			j.TimeSlot == job.TimeSlot &&
			j.InFlight() {
			return true
		}
	}
	return false
}

// ResolveAssignment meng-approve job PENDING dengan mengikat satu driver
// dan satu kendaraan. Fungsi murni: menerima snapshot dan mengembalikan
// salinan job + driver yang sudah diubah, tanpa menulis apapun. Caller
// yang bertanggung jawab menyimpan keduanya (job ditulis lebih dulu
// sebagai source of truth).
//
// Urutan pengecekan: missing selection -> policy -> kesiapan resource ->
// konflik jadwal. Gagal di titik manapun berarti tidak ada mutasi.
func ResolveAssignment(job models.Job, driver models.User, vehicle models.Vehicle, allJobs []models.Job, now time.Time) (models.Job, models.User, error) {
	if driver.ID == "" || vehicle.ID == "" {
		return job, driver, ErrMissingSelection
	}
	if job.Status != models.JobPending {
		return job, driver, &PolicyViolationError{
			Role: models.RoleAdmin,
			From: job.Status,
			To:   models.JobApproved,
		}
	}
	if driver.Role != models.RoleDriver || driver.Status != models.DriverAvailable {
		return job, driver, ErrDriverUnavailable
	}
	if vehicle.Status != models.VehicleActive {
		return job, driver, ErrVehicleNotActive
	}
	if VehicleBusy(allJobs, &job, vehicle.ID) {
		return job, driver, ErrVehicleBusy
	}

	job.Status = models.JobApproved
	job.DriverID = driver.ID
	job.DriverName = driver.Name
	job.VehicleID = vehicle.ID
	job.VehicleName = vehicle.Name
	t := now
	job.ApprovedAt = &t

	driver.Status = models.DriverAssigned
	return job, driver, nil
}

// ReleaseDriver mengembalikan driver ke AVAILABLE setelah job selesai.
func ReleaseDriver(driver models.User) models.User {
	driver.Status = models.DriverAvailable
	return driver
}

// ReconcileDrivers menghitung ulang status setiap driver dari job yang
// sedang berjalan. Operasi repair eksplisit untuk dua kondisi yang memang
// bisa terjadi: write kedua (driver) gagal setelah job tersimpan, dan job
// ter-assign yang diarsip/ditolak tanpa melepas drivernya. Driver
// ON_LEAVE tidak disentuh. Hanya driver yang statusnya berubah yang
// dikembalikan.
func ReconcileDrivers(users []models.User, jobs []models.Job) []models.User {
	busy := make(map[string]bool)
	for i := range jobs {
		if jobs[i].InFlight() {
			busy[jobs[i].DriverID] = true
		}
	}

	var changed []models.User
	for _, u := range users {
		if u.Role != models.RoleDriver || u.Status == models.DriverOnLeave {
			continue
		}
		want := models.DriverAvailable
		if busy[u.ID] {
			want = models.DriverAssigned
		}
		if u.Status != want {
			u.Status = want
			changed = append(changed, u)
		}
	}
	return changed
}
