package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/lifecycle"
	"github.com/ishwarpande/translogix-app/models"
	"github.com/ishwarpande/translogix-app/utils"
)

type JobController struct {
	DB *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db}
}

// respondLifecycleError memetakan taxonomy error engine ke status HTTP:
// PolicyViolation 403, ResourceConflict 409, selebihnya input 400.
func respondLifecycleError(c *gin.Context, err error) {
	switch {
	case lifecycle.IsPolicyViolation(err):
		utils.RespondError(c, http.StatusForbidden, err)
	case lifecycle.IsConflict(err):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.RespondError(c, http.StatusBadRequest, err)
	}
}

// GetAllJobs -> job aktif sesuai role, dengan pencarian free-text (?q=)
func (jc *JobController) GetAllJobs(c *gin.Context) {
	actor, err := currentUser(c, jc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var jobs []models.Job
	if err := jc.DB.Order("created_at desc").Find(&jobs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	visible := lifecycle.VisibleJobs(jobs, actor)

	term := c.Query("q")
	filtered := make([]models.Job, 0, len(visible))
	for i := range visible {
		if lifecycle.MatchesSearch(&visible[i], term) {
			filtered = append(filtered, visible[i])
		}
	}

	utils.RespondJSON(c, http.StatusOK, "List of jobs", filtered)
}

// GetBoard -> open requirement yang bisa di-claim (khusus supervisor)
func (jc *JobController) GetBoard(c *gin.Context) {
	var jobs []models.Job
	if err := jc.DB.Where("status = ?", models.JobPending).
		Order("created_at desc").Find(&jobs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Open requirements", lifecycle.BoardJobs(jobs))
}

// GetHistory -> job yang sudah berakhir, tetap dibatasi per role
func (jc *JobController) GetHistory(c *gin.Context) {
	actor, err := currentUser(c, jc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var jobs []models.Job
	if err := jc.DB.Order("created_at desc").Find(&jobs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Job history", lifecycle.HistoryJobs(jobs, actor))
}

// GetJobByID -> detail satu job. Visibility-nya sama dengan list:
// job milik orang lain dijawab 404, bukan 403, supaya keberadaannya
// tidak bocor.
func (jc *JobController) GetJobByID(c *gin.Context) {
	actor, err := currentUser(c, jc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	jobID := c.Param("job_id")

	var job models.Job
	if err := jc.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !lifecycle.CanView(&job, actor) {
		utils.RespondError(c, http.StatusNotFound, errors.New("record not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Job detail", job)
}

// CreateJob -> supervisor membuat job sendiri; admin membuat open
// requirement di pool yang bisa diambil supervisor manapun.
func (jc *JobController) CreateJob(c *gin.Context) {
	actor, err := currentUser(c, jc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var req struct {
		FromPlace string `json:"from_place" binding:"required"`
		ToPlace   string `json:"to_place" binding:"required"`
		Date      string `json:"date" binding:"required"` // YYYY-MM-DD
		TimeSlot  string `json:"time_slot" binding:"required"`
		Purpose   string `json:"purpose" binding:"required"`
		Priority  string `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidTimeSlot(req.TimeSlot) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid time slot"))
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid priority"))
		return
	}

	job := models.Job{
		ID:        uuid.NewString(),
		FromPlace: req.FromPlace,
		ToPlace:   req.ToPlace,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Purpose:   req.Purpose,
		Priority:  priority,
		Status:    models.JobPending,
		CreatedAt: time.Now(),
	}

	if actor.Role == models.RoleAdmin {
		job.Origin = models.OriginAdminPool
		job.SupervisorID = models.AdminPoolID
		job.SupervisorName = models.AdminPoolName
	} else {
		job.Origin = models.OriginSupervisor
		job.SupervisorID = actor.ID
		job.SupervisorName = actor.Name
	}

	if err := jc.DB.Create(&job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	writeLog(jc.DB, actor, lifecycle.ActionJobCreated(&job))
	utils.InfoLogger.Printf("New job created: %s (%s, %s %s)", job.ID, job.Purpose, job.Date, job.TimeSlot)
	utils.RespondJSON(c, http.StatusCreated, "Job created", job)
}

// ApproveJob -> admin mengikat driver + kendaraan ke job PENDING.
// Seluruh pengecekan diulang di dalam transaksi terhadap snapshot segar,
// untuk mempersempit (bukan menghilangkan) race dua approval bersamaan.
// Job dan driver ditulis dalam satu transaksi; job dianggap source of
// truth bila suatu saat store-nya tidak transaksional lagi.
func (jc *JobController) ApproveJob(c *gin.Context) {
	actor, err := currentUser(c, jc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	jobID := c.Param("job_id")

	var req struct {
		DriverID  string `json:"driver_id"`
		VehicleID string `json:"vehicle_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.DriverID == "" || req.VehicleID == "" {
		respondLifecycleError(c, lifecycle.ErrMissingSelection)
		return
	}

	var approved models.Job
	var assignedDriver models.User

	txErr := jc.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.Where("id = ?", jobID).First(&job).Error; err != nil {
			return err
		}
		if err := lifecycle.ValidateTransition(&job, actor, models.JobApproved); err != nil {
			return err
		}

		var driver models.User
		if err := tx.Where("id = ?", req.DriverID).First(&driver).Error; err != nil {
			return lifecycle.ErrMissingSelection
		}
		var vehicle models.Vehicle
		if err := tx.Where("id = ?", req.VehicleID).First(&vehicle).Error; err != nil {
			return lifecycle.ErrMissingSelection
		}

		var allJobs []models.Job
		if err := tx.Find(&allJobs).Error; err != nil {
			return err
		}

		job, driver, rerr := lifecycle.ResolveAssignment(job, driver, vehicle, allJobs, time.Now())
		if rerr != nil {
			return rerr
		}

		// Job dulu, baru driver
		if err := tx.Save(&job).Error; err != nil {
			return err
		}
		if err := tx.Save(&driver).Error; err != nil {
			return err
		}

		approved = job
		assignedDriver = driver
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, txErr)
			return
		}
		respondLifecycleError(c, txErr)
		return
	}

	writeLog(jc.DB, actor, lifecycle.ActionJobApproved(approved.ID, assignedDriver.Name))
	utils.InfoLogger.Printf("Job %s approved, driver=%s vehicle=%s", approved.ID, assignedDriver.Name, approved.VehicleName)
	utils.RespondJSON(c, http.StatusOK, "Job approved", approved)
}

// RejectJob -> admin menolak job PENDING dengan alasan wajib
func (jc *JobController) RejectJob(c *gin.Context) {
	actor, err := currentUser(c, jc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	jobID := c.Param("job_id")

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Reason == "" {
		utils.RespondError(c, http.StatusBadRequest, lifecycle.ErrRejectReasonRequired)
		return
	}

	var job models.Job
	if err := jc.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := lifecycle.ValidateTransition(&job, actor, models.JobRejected); err != nil {
		respondLifecycleError(c, err)
		return
	}

	job.Status = models.JobRejected
	job.Remarks = req.Reason
	if err := jc.DB.Save(&job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	writeLog(jc.DB, actor, lifecycle.ActionJobRejected(job.ID))
	utils.RespondJSON(c, http.StatusOK, "Job rejected", job)
}

// ClaimJob -> supervisor mengambil open requirement dari board.
// Status tidak berubah, hanya identitas requester.
func (jc *JobController) ClaimJob(c *gin.Context) {
	actor, err := currentUser(c, jc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	jobID := c.Param("job_id")

	var job models.Job
	if err := jc.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	claimed, err := lifecycle.ClaimOpenJob(job, *actor)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	if err := jc.DB.Save(&claimed).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	writeLog(jc.DB, actor, lifecycle.ActionJobClaimed(claimed.ID))
	utils.RespondJSON(c, http.StatusOK, "Job claimed", claimed)
}

// UpdateJobStatus -> progress oleh driver yang ditugaskan:
// APPROVED -> ACCEPTED -> REACHED -> ON_WORK -> COMPLETED.
// Saat COMPLETED, driver dikembalikan ke AVAILABLE; job ditulis lebih
// dulu. Kalau write kedua gagal, job tetap selesai dan status driver
// dibereskan lewat reconcile.
func (jc *JobController) UpdateJobStatus(c *gin.Context) {
	actor, err := currentUser(c, jc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	jobID := c.Param("job_id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var job models.Job
	if err := jc.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := lifecycle.ApplyTransition(&job, actor, req.Status, time.Now()); err != nil {
		respondLifecycleError(c, err)
		return
	}

	if err := jc.DB.Save(&job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if job.Status == models.JobCompleted {
		released := lifecycle.ReleaseDriver(*actor)
		if err := jc.DB.Save(&released).Error; err != nil {
			// Window inkonsistensi yang diterima; reconcile membereskan
			utils.ErrorLogger.Printf("Failed to release driver %s after job %s: %v", actor.ID, job.ID, err)
		}
	}

	writeLog(jc.DB, actor, lifecycle.ActionStatusUpdated(job.Status))
	utils.InfoLogger.Printf("Job %s moved to %s by %s", job.ID, job.Status, actor.Name)
	utils.RespondJSON(c, http.StatusOK, "Job status updated", job)
}

// ArchiveJob -> soft delete. Admin boleh mengarsip job non-terminal
// apapun; supervisor hanya job miliknya yang masih PENDING. Job yang
// sudah diarsip ditolak, tidak pernah menghasilkan log ganda.
func (jc *JobController) ArchiveJob(c *gin.Context) {
	actor, err := currentUser(c, jc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	jobID := c.Param("job_id")

	var job models.Job
	if err := jc.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := lifecycle.ValidateTransition(&job, actor, models.JobArchived); err != nil {
		respondLifecycleError(c, err)
		return
	}

	job.Status = models.JobArchived
	if err := jc.DB.Save(&job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	writeLog(jc.DB, actor, lifecycle.ActionJobArchived(job.ID))
	utils.RespondJSON(c, http.StatusOK, "Job archived", gin.H{"id": job.ID})
}
