package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/controllers"
	"github.com/ishwarpande/translogix-app/middlewares"
	"github.com/ishwarpande/translogix-app/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Rate limiter global per IP, dipasang sebelum route didaftarkan
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	vehicleCtrl := controllers.NewVehicleController(db)
	jobCtrl := controllers.NewJobController(db)
	logCtrl := controllers.NewActivityLogController(db)
	adminCtrl := controllers.NewAdminController(db)
	slipCtrl := controllers.NewSlipController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/profile", userCtrl.GetProfile)
	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	// USERS (admin): termasuk view Drivers & Supervisors (?role=)
	adminOnly := auth.Group("/")
	adminOnly.Use(middlewares.RequireRole(models.RoleAdmin))
	{
		adminOnly.GET("/users", userCtrl.GetAllUsers)
		adminOnly.POST("/users", userCtrl.CreateUser)
		adminOnly.PATCH("/users/:user_id", userCtrl.UpdateUser)
		adminOnly.DELETE("/users/:user_id", userCtrl.DeleteUser)

		// VEHICLES (admin)
		adminOnly.POST("/vehicles", vehicleCtrl.CreateVehicle)
		adminOnly.PATCH("/vehicles/:vehicle_id", vehicleCtrl.UpdateVehicle)
		adminOnly.DELETE("/vehicles/:vehicle_id", vehicleCtrl.DeleteVehicle)

		// AUDIT & REPAIR (admin)
		adminOnly.GET("/logs", logCtrl.GetAllLogs)
		adminOnly.POST("/admin/reconcile-drivers", adminCtrl.ReconcileDrivers)
	}

	// Semua role boleh melihat armada (dipakai form approve)
	auth.GET("/vehicles", vehicleCtrl.GetAllVehicles)

	// JOBS
	auth.GET("/jobs", jobCtrl.GetAllJobs)
	auth.GET("/jobs/history", jobCtrl.GetHistory)
	auth.GET("/jobs/board", middlewares.RequireRole(models.RoleSupervisor), jobCtrl.GetBoard)
	auth.GET("/jobs/:job_id", jobCtrl.GetJobByID)
	auth.GET("/jobs/:job_id/slip", slipCtrl.GenerateSlip)
	auth.POST("/jobs", middlewares.RequireRole(models.RoleAdmin, models.RoleSupervisor), jobCtrl.CreateJob)
	auth.POST("/jobs/:job_id/approve", middlewares.RequireRole(models.RoleAdmin), jobCtrl.ApproveJob)
	auth.POST("/jobs/:job_id/reject", middlewares.RequireRole(models.RoleAdmin), jobCtrl.RejectJob)
	auth.POST("/jobs/:job_id/claim", middlewares.RequireRole(models.RoleSupervisor), jobCtrl.ClaimJob)
	auth.POST("/jobs/:job_id/status", middlewares.RequireRole(models.RoleDriver), jobCtrl.UpdateJobStatus)
	auth.DELETE("/jobs/:job_id", jobCtrl.ArchiveJob)

	return r
}
