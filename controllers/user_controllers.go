package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ishwarpande/translogix-app/lifecycle"
	"github.com/ishwarpande/translogix-app/models"
	"github.com/ishwarpande/translogix-app/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Login -> lookup username + password apa adanya, return JWT.
// Password memang dibandingkan verbatim; hardening autentikasi bukan
// scope aplikasi ini.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Trim untuk menghindari masalah spasi saat login
	var user models.User
	if err := uc.DB.Where("username = ?", strings.TrimSpace(input.Username)).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid credentials. Please contact your administrator."))
		return
	}

	if user.Password != input.Password {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid credentials. Please contact your administrator."))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	writeLog(uc.DB, &user, lifecycle.ActionLoggedIn())
	utils.InfoLogger.Printf("Login successful for user: %s (role=%s)", user.Username, user.Role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":     user.ID,
			"name":   user.Name,
			"role":   user.Role,
			"status": user.Status,
		},
	})
}

// Logout -> catat log dan blacklist token yang dipakai
func (uc *UserController) Logout(c *gin.Context) {
	user, err := currentUser(c, uc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	if tok, exists := c.Get("token"); exists {
		if tokenString, ok := tok.(string); ok && tokenString != "" {
			utils.BlacklistToken(tokenString)
		}
	}

	writeLog(uc.DB, user, lifecycle.ActionLoggedOut())
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// GetProfile -> data user dari token
func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := currentUser(c, uc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"name":     user.Name,
		"role":     user.Role,
		"status":   user.Status,
	})
}

// GetAllUsers -> list user, bisa difilter per role (?role=DRIVER)
func (uc *UserController) GetAllUsers(c *gin.Context) {
	query := uc.DB.Order("name")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", strings.ToUpper(role))
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All users", users)
}

// CreateUser -> admin menambahkan supervisor / driver
func (uc *UserController) CreateUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Role     string `json:"role" binding:"required"` // SUPERVISOR / DRIVER
		Status   string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role := strings.ToUpper(req.Role)
	if role != models.RoleSupervisor && role != models.RoleDriver && role != models.RoleAdmin {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid role"))
		return
	}

	status := req.Status
	if role == models.RoleDriver {
		// Driver terikat ke enum status
		if status == "" {
			status = models.DriverAvailable
		}
		if !validDriverStatus(status) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid driver status"))
			return
		}
	} else if status == "" {
		status = "Active"
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
		Name:     req.Name,
		Role:     role,
		Status:   status,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if actor, err := currentUser(c, uc.DB); err == nil {
		writeLog(uc.DB, actor, lifecycle.ActionUserAdded(user.Role, user.Name))
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Username, user.Role)
	utils.RespondJSON(c, http.StatusCreated, "User created", user)
}

// UpdateUser -> ubah nama / password / status. Read-merge-write satu
// record utuh, bukan patch per kolom.
func (uc *UserController) UpdateUser(c *gin.Context) {
	userID := c.Param("user_id")

	var user models.User
	if err := uc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Password *string `json:"password"`
		Status   *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		user.Password = *req.Password
	}
	if req.Status != nil {
		if user.Role == models.RoleDriver && !validDriverStatus(*req.Status) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid driver status"))
			return
		}
		user.Status = *req.Status
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User %s updated (status=%s)", user.Username, user.Status)
	utils.RespondJSON(c, http.StatusOK, "User updated", user)
}

// DeleteUser -> hapus user. Job yang merujuk user ini dibiarkan;
// referensinya weak dan nama denormalisasi tetap tampil.
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID := c.Param("user_id")

	var user models.User
	if err := uc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if actor, err := currentUser(c, uc.DB); err == nil {
		writeLog(uc.DB, actor, lifecycle.ActionUserDeleted(user.Role, user.Name))
	}

	utils.InfoLogger.Printf("User %s deleted", user.Username)
	utils.RespondJSON(c, http.StatusOK, "User deleted", gin.H{"id": user.ID})
}

func validDriverStatus(status string) bool {
	switch status {
	case models.DriverAvailable, models.DriverAssigned, models.DriverOnLeave:
		return true
	}
	return false
}
