package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishwarpande/translogix-app/models"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{ID: "j1", Origin: models.OriginSupervisor, SupervisorID: "sup-1", Status: models.JobPending},
		{ID: "j2", Origin: models.OriginSupervisor, SupervisorID: "sup-2", Status: models.JobApproved, DriverID: "drv-1"},
		{ID: "j3", Origin: models.OriginAdminPool, SupervisorID: models.AdminPoolID, Status: models.JobPending},
		{ID: "j4", Origin: models.OriginSupervisor, SupervisorID: "sup-1", Status: models.JobArchived},
		{ID: "j5", Origin: models.OriginSupervisor, SupervisorID: "sup-2", Status: models.JobPending, DriverID: "drv-1"},
		{ID: "j6", Origin: models.OriginSupervisor, SupervisorID: "sup-1", Status: models.JobCompleted, DriverID: "drv-1"},
	}
}

func TestVisibleJobsPerRole(t *testing.T) {
	jobs := sampleJobs()

	admin := &models.User{ID: "adm-1", Role: models.RoleAdmin}
	visible := VisibleJobs(jobs, admin)
	assert.Len(t, visible, 5) // semua kecuali yang ARCHIVED

	sup := &models.User{ID: "sup-1", Role: models.RoleSupervisor}
	visible = VisibleJobs(jobs, sup)
	ids := []string{}
	for _, j := range visible {
		ids = append(ids, j.ID)
	}
	assert.ElementsMatch(t, []string{"j1", "j6"}, ids)

	// Driver: hanya job miliknya yang sudah lewat PENDING
	drv := &models.User{ID: "drv-1", Role: models.RoleDriver}
	visible = VisibleJobs(jobs, drv)
	ids = ids[:0]
	for _, j := range visible {
		ids = append(ids, j.ID)
	}
	assert.ElementsMatch(t, []string{"j2", "j6"}, ids)
}

// Detail job memakai aturan visibility yang sama dengan list
func TestCanView(t *testing.T) {
	pending := models.Job{ID: "j1", Origin: models.OriginSupervisor, SupervisorID: "sup-1", Status: models.JobPending}
	assigned := models.Job{ID: "j2", Origin: models.OriginSupervisor, SupervisorID: "sup-1", Status: models.JobApproved, DriverID: "drv-1"}
	open := models.Job{ID: "j3", Origin: models.OriginAdminPool, SupervisorID: models.AdminPoolID, Status: models.JobPending}

	admin := &models.User{ID: "adm-1", Role: models.RoleAdmin}
	owner := &models.User{ID: "sup-1", Role: models.RoleSupervisor}
	stranger := &models.User{ID: "sup-2", Role: models.RoleSupervisor}
	driver := &models.User{ID: "drv-1", Role: models.RoleDriver}
	otherDriver := &models.User{ID: "drv-2", Role: models.RoleDriver}

	assert.True(t, CanView(&pending, admin))
	assert.True(t, CanView(&pending, owner))
	assert.False(t, CanView(&pending, stranger))

	// Driver tidak melihat job PENDING orang lain, baru setelah ditugaskan
	assert.False(t, CanView(&pending, driver))
	assert.True(t, CanView(&assigned, driver))
	assert.False(t, CanView(&assigned, otherDriver))

	// Open requirement terlihat oleh supervisor manapun (board)
	assert.True(t, CanView(&open, stranger))
	assert.False(t, CanView(&open, driver))
}

func TestBoardJobs(t *testing.T) {
	jobs := sampleJobs()
	board := BoardJobs(jobs)

	assert.Len(t, board, 1)
	assert.Equal(t, "j3", board[0].ID)

	// Setelah di-claim, hilang dari board
	claimed, err := ClaimOpenJob(board[0], models.User{ID: "sup-1", Name: "S", Role: models.RoleSupervisor})
	assert.NoError(t, err)
	jobs[2] = claimed
	assert.Empty(t, BoardJobs(jobs))
}

func TestHistoryJobs(t *testing.T) {
	jobs := sampleJobs()

	admin := &models.User{ID: "adm-1", Role: models.RoleAdmin}
	history := HistoryJobs(jobs, admin)
	assert.Len(t, history, 2) // j4 (archived) + j6 (completed)

	drv := &models.User{ID: "drv-1", Role: models.RoleDriver}
	history = HistoryJobs(jobs, drv)
	assert.Len(t, history, 1)
	assert.Equal(t, "j6", history[0].ID)
}

func TestMatchesSearch(t *testing.T) {
	job := models.Job{
		Purpose:        "Deliver spare parts",
		SupervisorName: "Ravi Kumar",
		FromPlace:      "Central Depot",
		ToPlace:        "North Yard",
		DriverName:     "Driver One",
	}

	assert.True(t, MatchesSearch(&job, ""))
	assert.True(t, MatchesSearch(&job, "spare"))
	assert.True(t, MatchesSearch(&job, "ravi"))
	assert.True(t, MatchesSearch(&job, "DEPOT"))
	assert.True(t, MatchesSearch(&job, "driver one"))
	assert.False(t, MatchesSearch(&job, "gearbox"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Unknown", DisplayName(""))
	assert.Equal(t, "Unknown", DisplayName("   "))
	assert.Equal(t, "Driver One", DisplayName("Driver One"))
}
