package lifecycle

import (
	"time"

	"github.com/ishwarpande/translogix-app/models"
)

// transition = satu baris pada tabel state machine: target status plus
// role yang boleh melakukannya.
type transition struct {
	To   string
	Role string
}

// allowTransition mendefinisikan seluruh flow job sebagai graf berarah.
// PENDING adalah status awal; REJECTED / COMPLETED / ARCHIVED terminal.
// ARCHIVED sengaja tidak ada di sini, aturannya butuh konteks kepemilikan
// (lihat canArchive).
var allowTransition = map[string][]transition{
	models.JobPending: {
		{To: models.JobApproved, Role: models.RoleAdmin},
		{To: models.JobRejected, Role: models.RoleAdmin},
	},
	models.JobApproved: {
		{To: models.JobAccepted, Role: models.RoleDriver},
	},
	models.JobAccepted: {
		{To: models.JobReached, Role: models.RoleDriver},
	},
	models.JobReached: {
		{To: models.JobOnWork, Role: models.RoleDriver},
	},
	models.JobOnWork: {
		{To: models.JobCompleted, Role: models.RoleDriver},
	},
	// terminal: tidak ada transisi keluar
	models.JobRejected:  {},
	models.JobCompleted: {},
	models.JobArchived:  {},
}

// ValidateTransition memutuskan apakah actor boleh memindahkan job ke
// status target. Mengembalikan nil bila boleh, *PolicyViolationError bila
// tidak. Tidak ada efek samping; job tidak disentuh.
func ValidateTransition(job *models.Job, actor *models.User, target string) error {
	violation := &PolicyViolationError{Role: actor.Role, From: job.Status, To: target}

	if target == models.JobArchived {
		if canArchive(job, actor) {
			return nil
		}
		return violation
	}

	for _, tr := range allowTransition[job.Status] {
		if tr.To != target || tr.Role != actor.Role {
			continue
		}
		// Progress oleh driver hanya boleh dilakukan driver yang
		// memang ditugaskan ke job ini.
		if tr.Role == models.RoleDriver && job.DriverID != actor.ID {
			return violation
		}
		return nil
	}
	return violation
}

// canArchive: admin boleh mengarsip job apapun yang belum terminal,
// supervisor hanya job miliknya sendiri yang masih PENDING.
// Mengarsip job yang sudah ARCHIVED ditolak (idempoten: tidak pernah
// menghasilkan log ganda).
func canArchive(job *models.Job, actor *models.User) bool {
	if job.IsTerminal() {
		return false
	}
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleSupervisor:
		return job.Status == models.JobPending && job.SupervisorID == actor.ID
	}
	return false
}

// ApplyTransition menerapkan perpindahan status yang sudah lolos
// ValidateTransition dan merawat field waktu terkait. Job tidak pernah
// mundur ke status sebelumnya karena grafnya satu arah.
func ApplyTransition(job *models.Job, actor *models.User, target string, now time.Time) error {
	if err := ValidateTransition(job, actor, target); err != nil {
		return err
	}

	job.Status = target
	if target == models.JobCompleted && job.CompletedAt == nil {
		t := now
		job.CompletedAt = &t
	}
	return nil
}

// ClaimOpenJob memindahkan kepemilikan open requirement (job pool admin)
// ke supervisor yang mengambilnya. Status tidak berubah, hanya identitas
// requester yang diganti. Job yang sudah di-claim hilang dari board.
func ClaimOpenJob(job models.Job, supervisor models.User) (models.Job, error) {
	if supervisor.Role != models.RoleSupervisor || !job.IsOpenRequirement() {
		return job, &PolicyViolationError{
			Role: supervisor.Role,
			From: job.Status,
			To:   job.Status,
		}
	}

	job.Origin = models.OriginSupervisor
	job.SupervisorID = supervisor.ID
	job.SupervisorName = supervisor.Name
	return job, nil
}
