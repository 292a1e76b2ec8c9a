package lifecycle

import (
	"strings"

	"github.com/ishwarpande/translogix-app/models"
)

// VisibleJobs menyaring job aktif sesuai role viewer:
//   - admin melihat semua job aktif
//   - supervisor melihat job miliknya sendiri
//   - driver hanya job yang ditugaskan padanya dan sudah lewat PENDING
//
// ARCHIVED tidak pernah muncul di view aktif manapun.
func VisibleJobs(jobs []models.Job, viewer *models.User) []models.Job {
	var out []models.Job
	for _, j := range jobs {
		if j.Status == models.JobArchived {
			continue
		}
		switch viewer.Role {
		case models.RoleDriver:
			if j.DriverID == viewer.ID && j.Status != models.JobPending {
				out = append(out, j)
			}
		case models.RoleSupervisor:
			if j.SupervisorID == viewer.ID {
				out = append(out, j)
			}
		default:
			out = append(out, j)
		}
	}
	return out
}

// CanView -> apakah viewer boleh membuka detail satu job (termasuk job
// yang sudah ada di history). Aturannya sama dengan VisibleJobs, plus
// supervisor boleh melihat open requirement di board.
func CanView(job *models.Job, viewer *models.User) bool {
	switch viewer.Role {
	case models.RoleAdmin:
		return true
	case models.RoleSupervisor:
		return job.SupervisorID == viewer.ID || job.IsOpenRequirement()
	case models.RoleDriver:
		return job.DriverID == viewer.ID && job.Status != models.JobPending
	}
	return false
}

// BoardJobs -> open requirement yang masih bisa di-claim supervisor
func BoardJobs(jobs []models.Job) []models.Job {
	var out []models.Job
	for _, j := range jobs {
		if j.IsOpenRequirement() {
			out = append(out, j)
		}
	}
	return out
}

// HistoryJobs -> job yang sudah berakhir (selesai, ditolak, diarsip),
// tetap dibatasi visibility role yang sama dengan view aktif.
func HistoryJobs(jobs []models.Job, viewer *models.User) []models.Job {
	var out []models.Job
	for _, j := range jobs {
		switch j.Status {
		case models.JobCompleted, models.JobRejected, models.JobArchived:
		default:
			continue
		}
		switch viewer.Role {
		case models.RoleDriver:
			if j.DriverID != viewer.ID {
				continue
			}
		case models.RoleSupervisor:
			if j.SupervisorID != viewer.ID {
				continue
			}
		}
		out = append(out, j)
	}
	return out
}

// MatchesSearch meniru pencarian free-text di tabel job: purpose, nama
// supervisor, tempat asal/tujuan dan nama driver.
func MatchesSearch(job *models.Job, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{
		job.Purpose,
		job.SupervisorName,
		job.FromPlace,
		job.ToPlace,
		job.DriverName,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// DisplayName -> nama denormalisasi bisa kosong kalau record asalnya
// sudah dihapus; tampilkan "Unknown", jangan gagal.
func DisplayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Unknown"
	}
	return name
}
