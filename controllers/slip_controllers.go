package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/lifecycle"
	"github.com/ishwarpande/translogix-app/models"
	"github.com/ishwarpande/translogix-app/utils"
)

type SlipController struct {
	DB *gorm.DB
}

func NewSlipController(db *gorm.DB) *SlipController {
	return &SlipController{DB: db}
}

// GenerateSlip -> slip job siap cetak dalam bentuk PDF. Nama driver /
// kendaraan bisa saja merujuk record yang sudah dihapus; slip tetap
// dirender dengan "Unknown".
func (sc *SlipController) GenerateSlip(c *gin.Context) {
	actor, err := currentUser(c, sc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	jobID := c.Param("job_id")

	var job models.Job
	if err := sc.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	// Visibility slip sama dengan detail job
	if !lifecycle.CanView(&job, actor) {
		utils.RespondError(c, http.StatusNotFound, errors.New("record not found"))
		return
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "TransLogix - Job Slip")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Job ID: %s", job.ID))
	pdf.Ln(8)

	rows := [][2]string{
		{"Status", job.Status},
		{"Priority", job.Priority},
		{"Requested By", lifecycle.DisplayName(job.SupervisorName)},
		{"From", job.FromPlace},
		{"To", job.ToPlace},
		{"Date", job.Date},
		{"Time Slot", job.TimeSlot},
		{"Purpose", job.Purpose},
	}
	if job.IsAssigned() {
		rows = append(rows,
			[2]string{"Driver", lifecycle.DisplayName(job.DriverName)},
			[2]string{"Vehicle", lifecycle.DisplayName(job.VehicleName)},
		)
	}
	if job.Remarks != "" {
		rows = append(rows, [2]string{"Remarks", job.Remarks})
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Printed at %s", time.Now().Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=job-slip-%s.pdf", job.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
