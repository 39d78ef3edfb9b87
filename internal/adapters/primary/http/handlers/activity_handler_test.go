package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

func TestListActivities_DefaultsToUpcomingOnly(t *testing.T) {
	env := setupRouter()

	env.activities.On("List", mock.Anything, mock.MatchedBy(func(f ports.ActivityFilter) bool {
		return f.UpcomingOnly
	})).Return([]*domain.Activity{}, nil)

	w := doJSON(env.router, "GET", "/api/activities", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env.activities.AssertExpectations(t)
}

func TestListActivities_AllWhenDisabled(t *testing.T) {
	env := setupRouter()

	env.activities.On("List", mock.Anything, mock.MatchedBy(func(f ports.ActivityFilter) bool {
		return !f.UpcomingOnly
	})).Return([]*domain.Activity{}, nil)

	w := doJSON(env.router, "GET", "/api/activities?upcoming_only=false", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	env.activities.AssertExpectations(t)
}

func TestCreateActivity_CustomerRejected(t *testing.T) {
	env := setupRouter()
	customer := &domain.User{ID: 3, Username: "alice", Role: domain.RoleCustomer}
	auth := env.authHeader(t, customer)

	w := doJSON(env.router, "POST", "/api/activities", auth, map[string]interface{}{
		"title":        "goat yoga",
		"starts_at":    time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339),
		"max_capacity": 12,
		"category":     "wellness",
		"location":     "north barn",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestToggleActivity(t *testing.T) {
	env := setupRouter()
	admin := &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin}
	auth := env.authHeader(t, admin)

	env.activities.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Activity{ID: 7, Title: "goat yoga", IsActive: true}, nil)
	env.activities.On("Update", mock.Anything, mock.AnythingOfType("*domain.Activity")).Return(nil)

	w := doJSON(env.router, "PATCH", "/api/activities/7/toggle", auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, false, resp["is_active"])
}
