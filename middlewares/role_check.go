package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ishwarpande/translogix-app/models"
	"github.com/ishwarpande/translogix-app/utils"
)

// RequireRole membatasi route untuk role tertentu. Admin tidak otomatis
// lolos: tabel transisi job memang membedakan aksi admin dan aksi
// supervisor/driver, jadi pembatasannya harfiah.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access required", roleWord(roles)))
		c.Abort()
	}
}

func roleWord(roles []string) string {
	if len(roles) == 1 {
		switch roles[0] {
		case models.RoleAdmin:
			return "admin"
		case models.RoleSupervisor:
			return "supervisor"
		case models.RoleDriver:
			return "driver"
		}
	}
	return "elevated"
}
