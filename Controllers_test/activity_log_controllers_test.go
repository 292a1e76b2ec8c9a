package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishwarpande/translogix-app/models"
)

func TestActivityLogsAdminOnly(t *testing.T) {
	db := setupTestDB(t, "logs_access")
	r := setupAppRouter(db)

	admin := seedUser(t, db, models.RoleAdmin, "Ishwar Admin", "Active")
	supervisor := seedUser(t, db, models.RoleSupervisor, "Supervisor One", "Active")

	createJobAs(t, r, &supervisor, "2024-06-10", "09:00-12:00")

	// Supervisor tidak boleh membaca audit trail
	w := doRequest(t, r, "GET", "/logs", nil, &supervisor)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "GET", "/logs", nil, &admin)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.ActivityLog `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Contains(t, resp.Data[0].Action, "Created job:")
	assert.Equal(t, supervisor.ID, resp.Data[0].UserID)
}
