package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishwarpande/translogix-app/models"
)

// Limiter login membatasi per IP: 5 percobaan burst, setelah itu 429.
func TestLoginRateLimitedPerIP(t *testing.T) {
	db := setupTestDB(t, "rate_login")
	r := setupAppRouter(db)

	seedUser(t, db, models.RoleAdmin, "Ishwar Admin", "Active")

	body := map[string]string{"username": "nobody", "password": "wrong"}
	for i := 0; i < 5; i++ {
		w := doRequest(t, r, "POST", "/login", body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "attempt %d should pass the limiter", i+1)
	}

	w := doRequest(t, r, "POST", "/login", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

// Limiter global terdaftar sebelum route, jadi benar-benar berjalan
func TestGlobalRateLimiterActive(t *testing.T) {
	db := setupTestDB(t, "rate_global")
	r := setupAppRouter(db)

	throttled := false
	for i := 0; i < 60; i++ {
		w := doRequest(t, r, "GET", "/ping", nil, nil)
		if w.Code == http.StatusTooManyRequests {
			throttled = true
			break
		}
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.True(t, throttled, "expected the per-IP limiter to kick in within 60 requests")
}
